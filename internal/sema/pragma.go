package sema

import (
	"fmt"
	"strings"

	"github.com/solastlang/solast/pkg/ast"
	"github.com/solastlang/solast/pkg/diag"
	"github.com/solastlang/solast/pkg/source"
	"github.com/solastlang/solast/pkg/version"
)

// PragmaPass resolves every top-level pragma directive in unit, pushing a
// Pragma entry onto ctx.Pragmas for each and rejecting any annotations
// that preceded one. annotations is the per-part slice AnnotatePass
// returned for unit.Children.
func PragmaPass(ctx *Context, fileNo int, unit *ast.SourceUnit, annotations [][]*ast.Annotation) {
	for i, part := range unit.Children {
		pragma, ok := part.(*ast.PragmaDirective)
		if !ok {
			continue
		}
		ctx.Reject(fileNo, AnnotationsFor(annotations, i), "pragma")
		resolvePragma(ctx, fileNo, pragma)
	}
}

func resolvePragma(ctx *Context, fileNo int, p *ast.PragmaDirective) {
	loc := nodeLoc(fileNo, p)

	if p.Name == "solidity" {
		resolveSolidityVersion(ctx, loc, p)
		return
	}

	plainPragma(ctx, loc, p.Name, p.Value)
	ctx.Pragmas = append(ctx.Pragmas, Pragma{
		Kind:  PragmaIdentifier,
		Loc:   loc,
		Name:  p.Name,
		Value: p.Value,
	})
}

// plainPragma checks a non-version pragma's (name, value) pair against the
// fixed set of pragmas this resolver recognizes, emitting a debug note for
// the ones it silently accepts and an error for everything else.
func plainPragma(ctx *Context, loc source.Loc, name, value string) {
	switch {
	case name == "experimental" && value == "ABIEncoderV2":
		ctx.Diagnostics.Push(diag.Debugf(loc, "pragma 'experimental' with value 'ABIEncoderV2' is ignored"))
	case name == "experimental" && value == "solidity":
		ctx.Diagnostics.Push(diag.Errorf(loc, "experimental solidity features are not supported"))
	case name == "abicoder" && (value == "v1" || value == "v2"):
		ctx.Diagnostics.Push(diag.Debugf(loc, "pragma 'abicoder' ignored"))
	default:
		ctx.Diagnostics.Push(diag.Errorf(loc, "unknown pragma '%s' with value '%s'", name, value))
	}
}

func resolveSolidityVersion(ctx *Context, loc source.Loc, p *ast.PragmaDirective) {
	if p.Name != "solidity" {
		ctx.Diagnostics.Push(diag.Errorf(loc, "unknown pragma '%s'", p.Name))
		return
	}

	reqs, err := parseVersionConstraint(p.Value)
	if err != nil {
		ctx.Diagnostics.Push(diag.Errorf(loc, "%s", err.Error()))
		return
	}

	if len(reqs) > 1 {
		for _, r := range reqs {
			if version.ContainsRange(r) {
				ctx.Diagnostics.Push(diag.Errorf(loc,
					"version ranges can only be combined with the || operator"))
				break
			}
		}
	}

	ctx.Pragmas = append(ctx.Pragmas, Pragma{
		Kind:     PragmaSolidityVersion,
		Loc:      loc,
		Name:     "solidity",
		Versions: reqs,
	})
}

// parseVersionConstraint parses the text following `pragma solidity`. The
// builder reassembles a pragma's value by joining its tokens with single
// spaces (internal/builder/builder.go's parsePragmaDirective), so a version
// like "0.8.0" arrives as two tokens ("0.8", ".0"): the lexer's first
// numeric literal ends at the second '.', which then starts a new literal.
// mergeDotTokens collapses those back into one field before the requirement grammar below
// - a whitespace-separated list of requirements (implicit AND) where each
// requirement may itself be an "a || b" alternation or an "A - B" range -
// is applied to the result.
func parseVersionConstraint(raw string) ([]version.Req, error) {
	fields := mergeDotTokens(strings.Fields(raw))
	var out []version.Req

	var i int
	for i < len(fields) {
		req, consumed, err := parseOneRequirement(fields[i:])
		if err != nil {
			return nil, err
		}
		out = append(out, req)
		i += consumed
	}
	return out, nil
}

// mergeDotTokens rejoins the pieces the lexer splits a two-dot version
// literal into (readNumber stops at the second '.' since a single numeric
// literal has at most one) back into a single field: a following field that
// starts with '.' is appended, e.g. ["0.8", ".0"] -> ["0.8.0"], and so is a
// lone "." together with the field after it, e.g. ["0", ".", "8"] -> ["0.8"].
func mergeDotTokens(tokens []string) []string {
	var out []string
	i := 0
	for i < len(tokens) {
		tok := tokens[i]
		i++
		for i < len(tokens) {
			if tokens[i] == "." && i+1 < len(tokens) {
				tok = tok + "." + tokens[i+1]
				i += 2
			} else if len(tokens[i]) > 1 && tokens[i][0] == '.' {
				tok += tokens[i]
				i++
			} else {
				break
			}
		}
		out = append(out, tok)
	}
	return out
}

// parseOneRequirement parses a single implicit-AND slot from a
// dot-merged field sequence: either a bare comparator (one field, or an
// operator field followed by its version field), an "A - B" range, or an
// "a || b [|| c ...]" alternation. It reports how many fields it consumed.
func parseOneRequirement(fields []string) (version.Req, int, error) {
	if len(fields) >= 3 && fields[1] == "-" {
		from, err := parseComparatorVersion(fields[0])
		if err != nil {
			return nil, 0, err
		}
		to, err := parseComparatorVersion(fields[2])
		if err != nil {
			return nil, 0, err
		}
		return version.Range{From: from, To: to}, 3, nil
	}

	left, consumed, err := parseComparator(fields)
	if err != nil {
		return nil, 0, err
	}

	for consumed < len(fields) && fields[consumed] == "||" {
		right, n, err := parseComparator(fields[consumed+1:])
		if err != nil {
			return nil, 0, err
		}
		left = version.Or{Left: left, Right: right}
		consumed += 1 + n
	}

	return left, consumed, nil
}

var constraintOperators = map[string]version.Operator{
	">=": version.OpGreaterEq,
	"<=": version.OpLessEq,
	">":  version.OpGreater,
	"<":  version.OpLess,
	"^":  version.OpCaret,
	"~":  version.OpTilde,
	"=":  version.OpExact,
}

// parseComparator reads one comparator off the front of fields. The
// builder's token-for-token reconstruction always keeps an operator like
// "^" or ">=" in its own field, separate from the version that follows it,
// so a comparator is either that pair (two fields consumed) or, lacking a
// leading operator, a bare version field (one field consumed).
func parseComparator(fields []string) (version.Req, int, error) {
	if len(fields) == 0 {
		return nil, 0, fmt.Errorf("expected a version requirement")
	}

	if op, ok := constraintOperators[fields[0]]; ok {
		if len(fields) < 2 {
			return nil, 0, fmt.Errorf("operator '%s' is missing a version", fields[0])
		}
		v, err := parseComparatorVersion(fields[1])
		if err != nil {
			return nil, 0, err
		}
		return version.OperatorReq{Op: op, Version: v}, 2, nil
	}

	v, err := parseComparatorVersion(fields[0])
	if err != nil {
		return nil, 0, err
	}
	return version.Plain{Version: v}, 1, nil
}

func parseComparatorVersion(s string) (version.Version, error) {
	return version.ParseVersionComponents(strings.Split(s, "."))
}
