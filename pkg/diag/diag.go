// Package diag implements the diagnostic model and collector shared by
// every semantic pass: a leveled, typed message with a source location and
// an ordered sequence of secondary note-labels.
package diag

import (
	"fmt"
	"sort"

	"github.com/solastlang/solast/pkg/source"
)

// Level is the severity of a Diagnostic.
type Level int

const (
	Debug Level = iota
	Info
	Warning
	Error
)

func (l Level) String() string {
	switch l {
	case Debug:
		return "debug"
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Kind classifies a Diagnostic beyond its Level.
type Kind int

const (
	KindNone Kind = iota
	KindParser
	KindSyntax
	KindDeclaration
	KindCast
	KindType
	KindWarning
)

// Note is a secondary label attached to a Diagnostic, pointing at another
// source location relevant to the primary message (e.g. "previous
// definition here").
type Note struct {
	Loc     source.Loc
	Message string
}

// Diagnostic is one reported finding.
type Diagnostic struct {
	Loc     source.Loc
	Level   Level
	Kind    Kind
	Message string
	Notes   []Note
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s: %s", d.Loc, d.Level, d.Message)
}

// WithNote returns a copy of d with an additional note appended.
func (d Diagnostic) WithNote(loc source.Loc, message string) Diagnostic {
	d.Notes = append(append([]Note{}, d.Notes...), Note{Loc: loc, Message: message})
	return d
}

func Debugf(loc source.Loc, format string, args ...any) Diagnostic {
	return Diagnostic{Loc: loc, Level: Debug, Kind: KindNone, Message: fmt.Sprintf(format, args...)}
}

func Infof(loc source.Loc, format string, args ...any) Diagnostic {
	return Diagnostic{Loc: loc, Level: Info, Kind: KindNone, Message: fmt.Sprintf(format, args...)}
}

func Warningf(loc source.Loc, format string, args ...any) Diagnostic {
	return Diagnostic{Loc: loc, Level: Warning, Kind: KindWarning, Message: fmt.Sprintf(format, args...)}
}

func Errorf(loc source.Loc, format string, args ...any) Diagnostic {
	return Diagnostic{Loc: loc, Level: Error, Kind: KindSyntax, Message: fmt.Sprintf(format, args...)}
}

// TypedErrorf builds an Error-level diagnostic of a specific Kind, for
// passes that need to distinguish declaration/cast/type errors from plain
// syntax errors.
func TypedErrorf(loc source.Loc, kind Kind, format string, args ...any) Diagnostic {
	return Diagnostic{Loc: loc, Level: Error, Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Collector accumulates diagnostics for one compile, tracking whether any
// error-level diagnostic has been recorded so passes downstream of a
// failure can skip expensive work (spec: "any_errors set before mutability
// checking skips unused-symbol warnings").
type Collector struct {
	items    []Diagnostic
	hasError bool
}

// NewCollector returns an empty Collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Push appends one diagnostic.
func (c *Collector) Push(d Diagnostic) {
	c.items = append(c.items, d)
	if d.Level == Error {
		c.hasError = true
	}
}

// Extend copies every diagnostic from other into c, without consuming
// other.
func (c *Collector) Extend(other *Collector) {
	for _, d := range other.items {
		c.Push(d)
	}
}

// Append moves every diagnostic from a plain slice into c.
func (c *Collector) Append(ds []Diagnostic) {
	for _, d := range ds {
		c.Push(d)
	}
}

// HasError reports whether any Error-level diagnostic has been pushed.
func (c *Collector) HasError() bool {
	return c.hasError
}

// All returns every diagnostic pushed so far, in push order.
func (c *Collector) All() []Diagnostic {
	return c.items
}

// Filter returns the subset of diagnostics at or above minLevel.
func (c *Collector) Filter(minLevel Level) []Diagnostic {
	var out []Diagnostic
	for _, d := range c.items {
		if d.Level >= minLevel {
			out = append(out, d)
		}
	}
	return out
}

// Errors returns only Error-level diagnostics.
func (c *Collector) Errors() []Diagnostic { return c.Filter(Error) }

// Warnings returns only Warning-level-and-above diagnostics.
func (c *Collector) Warnings() []Diagnostic { return c.Filter(Warning) }

// ContainsMessage reports whether any diagnostic's message exactly equals
// msg, regardless of location or level.
func (c *Collector) ContainsMessage(msg string) bool {
	for _, d := range c.items {
		if d.Message == msg {
			return true
		}
	}
	return false
}

// Normalize sorts diagnostics by (file_no, start, level) and removes exact
// duplicates keyed on (loc, level, message), returning the normalized
// slice. The Collector's own storage is replaced with the result so
// repeated calls are idempotent.
func (c *Collector) Normalize() []Diagnostic {
	sorted := append([]Diagnostic{}, c.items...)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Loc.IsImplicit() != b.Loc.IsImplicit() {
			return b.Loc.IsImplicit()
		}
		if a.Loc.File() != b.Loc.File() {
			return a.Loc.File() < b.Loc.File()
		}
		if a.Loc.Start() != b.Loc.Start() {
			return a.Loc.Start() < b.Loc.Start()
		}
		return a.Level < b.Level
	})

	type key struct {
		file    int
		start   int
		end     int
		implicit bool
		level   Level
		message string
	}
	seen := make(map[key]bool)
	out := sorted[:0:0]
	for _, d := range sorted {
		k := key{d.Loc.File(), d.Loc.Start(), d.Loc.End(), d.Loc.IsImplicit(), d.Level, d.Message}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, d)
	}
	c.items = out
	return out
}
