// Package report renders a diag.Collector's diagnostics to a terminal or
// file: one block per diagnostic with its source snippet and notes, plus a
// trailing summary table of counts by level.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dekarrin/rosed"
	"github.com/mattn/go-isatty"

	"github.com/solastlang/solast/pkg/diag"
	"github.com/solastlang/solast/pkg/source"
)

// Renderer writes diagnostics from one FileSet to an io.Writer, wrapping
// message text to Width and coloring level labels when the writer is a
// terminal.
type Renderer struct {
	w     io.Writer
	files *source.FileSet
	Width int
	Color bool
}

// New builds a Renderer for w, auto-detecting color support via isatty
// when w is an *os.File.
func New(w io.Writer, files *source.FileSet) *Renderer {
	return &Renderer{w: w, files: files, Width: 100, Color: autoColor(w)}
}

type fileNamer interface{ Fd() uintptr }

func autoColor(w io.Writer) bool {
	f, ok := w.(fileNamer)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

var levelColor = map[diag.Level]string{
	diag.Debug:   "\x1b[2m",
	diag.Info:    "\x1b[36m",
	diag.Warning: "\x1b[33m",
	diag.Error:   "\x1b[31;1m",
}

const colorReset = "\x1b[0m"

func (r *Renderer) colorize(code, s string) string {
	if !r.Color {
		return s
	}
	return code + s + colorReset
}

// Render writes every diagnostic in ds, in order, followed by a summary
// table of counts per level.
func (r *Renderer) Render(ds []diag.Diagnostic) {
	for _, d := range ds {
		r.renderOne(d)
	}
	r.renderSummary(ds)
}

func (r *Renderer) renderOne(d diag.Diagnostic) {
	label := r.colorize(levelColor[d.Level], strings.ToUpper(d.Level.String()))
	header := fmt.Sprintf("%s: %s", label, r.locString(d.Loc))
	fmt.Fprintln(r.w, header)

	body := rosed.Edit(d.Message).Wrap(r.Width).String()
	fmt.Fprintln(r.w, indent(body, "  "))

	if line, lineNo, col, ok := r.files.Snippet(d.Loc); ok {
		fmt.Fprintf(r.w, "  %d | %s\n", lineNo, line)
		fmt.Fprintf(r.w, "  %s | %s^\n", strings.Repeat(" ", len(strconv.Itoa(lineNo))), strings.Repeat(" ", col-1))
	}

	for _, n := range d.Notes {
		fmt.Fprintf(r.w, "  note: %s\n", r.locString(n.Loc))
		fmt.Fprintln(r.w, indent(rosed.Edit(n.Message).Wrap(r.Width).String(), "    "))
	}

	fmt.Fprintln(r.w)
}

func (r *Renderer) locString(loc source.Loc) string {
	if loc.IsImplicit() {
		return "<implicit>"
	}
	_, lineNo, col, ok := r.files.Snippet(loc)
	path := "<unknown>"
	if f := r.files.Get(loc.File()); f != nil {
		path = f.FullPath
	}
	if !ok {
		return path
	}
	return fmt.Sprintf("%s:%d:%d", path, lineNo, col)
}

func (r *Renderer) renderSummary(ds []diag.Diagnostic) {
	counts := map[diag.Level]int{}
	for _, d := range ds {
		counts[d.Level]++
	}

	data := [][]string{
		{"level", "count"},
		{"debug", strconv.Itoa(counts[diag.Debug])},
		{"info", strconv.Itoa(counts[diag.Info])},
		{"warning", strconv.Itoa(counts[diag.Warning])},
		{"error", strconv.Itoa(counts[diag.Error])},
	}

	table := rosed.Edit("").
		InsertTableOpts(0, data, r.Width, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()

	fmt.Fprintln(r.w, table)
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}
