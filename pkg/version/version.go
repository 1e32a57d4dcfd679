// Package version provides Solidity version parsing, comparison, and the
// pragma version-requirement tree (Plain | Operator | Range | Or).
package version

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

// Version represents a major[.minor[.patch]] version triple as it appears
// in a pragma solidity directive. Minor and Patch are nil when the pragma
// omitted that component, e.g. `pragma solidity 0.8;`.
type Version struct {
	Major int
	Minor *int
	Patch *int
}

// New creates a fully-specified Version.
func New(major, minor, patch int) Version {
	return Version{Major: major, Minor: &minor, Patch: &patch}
}

// String renders the version the way it was written, omitting components
// that were never supplied.
func (v Version) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d", v.Major)
	if v.Minor != nil {
		fmt.Fprintf(&b, ".%d", *v.Minor)
	}
	if v.Patch != nil {
		fmt.Fprintf(&b, ".%d", *v.Patch)
	}
	return b.String()
}

// Canonical returns the version as a "vMAJOR.MINOR.PATCH" string suitable
// for golang.org/x/mod/semver, defaulting missing components to zero.
func (v Version) Canonical() string {
	minor, patch := 0, 0
	if v.Minor != nil {
		minor = *v.Minor
	}
	if v.Patch != nil {
		patch = *v.Patch
	}
	return fmt.Sprintf("v%d.%d.%d", v.Major, minor, patch)
}

// Compare compares two versions using semver.Compare on their canonical
// form. Returns -1, 0, or 1.
func (v Version) Compare(other Version) int {
	return semver.Compare(v.Canonical(), other.Canonical())
}

func (v Version) LessThan(other Version) bool           { return v.Compare(other) < 0 }
func (v Version) LessThanOrEqual(other Version) bool     { return v.Compare(other) <= 0 }
func (v Version) GreaterThan(other Version) bool         { return v.Compare(other) > 0 }
func (v Version) GreaterThanOrEqual(other Version) bool  { return v.Compare(other) >= 0 }
func (v Version) Equal(other Version) bool               { return v.Compare(other) == 0 }

// IsZero returns true if the version is the unset 0.0.0 value.
func (v Version) IsZero() bool {
	return v.Major == 0 && (v.Minor == nil || *v.Minor == 0) && (v.Patch == nil || *v.Patch == 0)
}

// ParseVersionComponents parses up to three dot-separated numeric
// components into a Version. It rejects non-numeric components and more
// than three components, mirroring the pragma resolver's parse_version.
func ParseVersionComponents(parts []string) (Version, error) {
	if len(parts) == 0 {
		return Version{}, fmt.Errorf("empty version")
	}
	if len(parts) > 3 {
		return Version{}, fmt.Errorf("no more than three numbers allowed - major.minor.patch")
	}

	nums := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Version{}, fmt.Errorf("'%s' is not a valid number", p)
		}
		nums[i] = n
	}

	v := Version{Major: nums[0]}
	if len(nums) > 1 {
		v.Minor = &nums[1]
	}
	if len(nums) > 2 {
		v.Patch = &nums[2]
	}
	return v, nil
}

// Parse parses a version string like "0.8.20" or "0.8".
func Parse(s string) (Version, error) {
	return ParseVersionComponents(strings.Split(strings.TrimSpace(s), "."))
}

// MustParse parses a version string and panics on error.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// Operator is a pragma version comparator operator.
type Operator string

const (
	OpExact       Operator = "="
	OpGreater     Operator = ">"
	OpGreaterEq   Operator = ">="
	OpLess        Operator = "<"
	OpLessEq      Operator = "<="
	OpTilde       Operator = "~"
	OpCaret       Operator = "^"
)

// Req is a node in the pragma version-requirement tree. A pragma like
// `pragma solidity >=0.8.0 <0.9.0;` is a sequence of Req values implicitly
// ANDed; `||` combines them into an Or node explicitly.
type Req interface {
	// Satisfies reports whether actual meets this requirement.
	Satisfies(actual Version) bool
	String() string
	isReq()
}

// Plain requires the actual version to match exactly on every component
// the requirement specifies (missing components are wildcards).
type Plain struct {
	Version Version
}

func (p Plain) isReq() {}
func (p Plain) String() string { return p.Version.String() }
func (p Plain) Satisfies(actual Version) bool {
	if p.Version.Major != actual.Major {
		return false
	}
	if p.Version.Minor != nil && (actual.Minor == nil || *p.Version.Minor != *actual.Minor) {
		return false
	}
	if p.Version.Patch != nil && (actual.Patch == nil || *p.Version.Patch != *actual.Patch) {
		return false
	}
	return true
}

// OperatorReq requires the actual version to satisfy a comparator such as
// `>=0.8.0`, `^0.8.0`, or `~0.8.0`.
type OperatorReq struct {
	Op      Operator
	Version Version
}

func (o OperatorReq) isReq() {}
func (o OperatorReq) String() string { return string(o.Op) + o.Version.String() }

func (o OperatorReq) Satisfies(actual Version) bool {
	switch o.Op {
	case OpExact:
		return Plain{o.Version}.Satisfies(actual)
	case OpGreater:
		return actual.GreaterThan(o.Version)
	case OpGreaterEq:
		return actual.GreaterThanOrEqual(o.Version)
	case OpLess:
		return actual.LessThan(o.Version)
	case OpLessEq:
		return actual.LessThanOrEqual(o.Version)
	case OpTilde:
		// ~0.8.2 allows patch-level changes if a patch is given, otherwise
		// minor-level changes: >=0.8.2 <0.9.0, or >=0.8 <0.9 with no patch.
		upper := o.Version
		upperMinor := 0
		if o.Version.Minor != nil {
			upperMinor = *o.Version.Minor + 1
		}
		upper.Minor = &upperMinor
		upper.Patch = nil
		return actual.GreaterThanOrEqual(o.Version) && actual.LessThan(upper)
	case OpCaret:
		// ^0.8.2 allows changes that do not modify the left-most non-zero
		// component, matching npm-style caret ranges used by solc pragmas.
		upper := caretUpperBound(o.Version)
		return actual.GreaterThanOrEqual(o.Version) && actual.LessThan(upper)
	default:
		return false
	}
}

func caretUpperBound(v Version) Version {
	if v.Major != 0 {
		major := v.Major + 1
		return Version{Major: major}
	}
	minor := 0
	if v.Minor != nil {
		minor = *v.Minor
	}
	if minor != 0 {
		nextMinor := minor + 1
		return Version{Major: 0, Minor: &nextMinor}
	}
	patch := 0
	if v.Patch != nil {
		patch = *v.Patch
	}
	nextPatch := patch + 1
	zero := 0
	return Version{Major: 0, Minor: &zero, Patch: &nextPatch}
}

// Range requires the actual version to fall within [From, To] inclusive.
// The pragma resolver rejects a bare Range outside of an Or combinator.
type Range struct {
	From Version
	To   Version
}

func (r Range) isReq() {}
func (r Range) String() string { return r.From.String() + " - " + r.To.String() }
func (r Range) Satisfies(actual Version) bool {
	return actual.GreaterThanOrEqual(r.From) && actual.LessThanOrEqual(r.To)
}

// Or requires either side of the combinator to be satisfied.
type Or struct {
	Left  Req
	Right Req
}

func (o Or) isReq() {}
func (o Or) String() string { return o.Left.String() + " || " + o.Right.String() }
func (o Or) Satisfies(actual Version) bool {
	return o.Left.Satisfies(actual) || o.Right.Satisfies(actual)
}

// ContainsRange reports whether req, or any of its Or-combined children,
// is a bare Range node. Used by the pragma resolver to enforce "version
// ranges can only be combined with the || operator" across a pragma's
// top-level comparator list.
func ContainsRange(req Req) bool {
	switch r := req.(type) {
	case Range:
		return true
	case Or:
		return ContainsRange(r.Left) || ContainsRange(r.Right)
	default:
		return false
	}
}

// DetectedVersion represents the version info extracted from source code.
type DetectedVersion struct {
	Raw        string
	Constraint string
	Version    Version
}

// Detect extracts the first Solidity version pragma from source code.
func Detect(source string) (*DetectedVersion, error) {
	all, err := DetectAll(source)
	if err != nil {
		return nil, err
	}
	return all[0], nil
}

// DetectAll extracts all Solidity version pragmas from source code, in the
// lightweight textual form used by CLI summaries; the authoritative parse
// goes through internal/sema's pragma resolver against the real token
// stream, not this regex-free scan.
func DetectAll(source string) ([]*DetectedVersion, error) {
	var results []*DetectedVersion
	lines := strings.Split(source, "\n")
	for _, line := range lines {
		trimmed := strings.Join(strings.Fields(line), " ")
		const prefix = "pragma solidity"
		idx := strings.Index(trimmed, prefix)
		if idx != 0 {
			continue
		}
		rest := strings.TrimSpace(trimmed[len(prefix):])
		rest = strings.TrimSpace(strings.TrimSuffix(rest, ";"))
		if rest == "" {
			continue
		}
		constraint, versionStr := splitConstraint(rest)
		v, err := Parse(versionStr)
		if err != nil {
			continue
		}
		results = append(results, &DetectedVersion{
			Raw:        rest,
			Constraint: constraint,
			Version:    v,
		})
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("no pragma solidity found")
	}
	return results, nil
}

func splitConstraint(s string) (constraint, rest string) {
	for _, op := range []string{">=", "<=", "^", "~", ">", "<", "="} {
		if strings.HasPrefix(s, op) {
			return op, strings.TrimSpace(s[len(op):])
		}
	}
	return "", s
}
