package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solastlang/solast/pkg/diag"
	"github.com/solastlang/solast/pkg/source"
)

func newFileSet(t *testing.T, contents string) (*source.FileSet, int) {
	t.Helper()
	fs := source.NewFileSet()
	no := fs.Add(&source.File{FullPath: "Token.sol", Contents: contents})
	return fs, no
}

func Test_Render_IncludesSnippetAndMessage(t *testing.T) {
	fs, fileNo := newFileSet(t, "contract C {\n  uint x;\n}\n")
	loc := source.File(fileNo, 15, 19)

	var buf bytes.Buffer
	r := New(&buf, fs)
	r.Color = false

	r.Render([]diag.Diagnostic{
		diag.TypedErrorf(loc, diag.KindDeclaration, "variable 'x' must be constant"),
	})

	out := buf.String()
	assert.Contains(t, out, "ERROR")
	assert.Contains(t, out, "Token.sol:2:")
	assert.Contains(t, out, "variable 'x' must be constant")
	assert.Contains(t, out, "uint x;")
}

func Test_Render_ImplicitLocationSkipsSnippet(t *testing.T) {
	fs, _ := newFileSet(t, "contract C {}\n")

	var buf bytes.Buffer
	r := New(&buf, fs)
	r.Color = false

	r.Render([]diag.Diagnostic{diag.Warningf(source.Implicit(), "synthesized accessor shadows a member")})

	out := buf.String()
	assert.Contains(t, out, "WARNING")
	assert.Contains(t, out, "<implicit>")
}

func Test_Render_NotesAreIndentedUnderPrimary(t *testing.T) {
	fs, fileNo := newFileSet(t, "enum E { A, A }\n")
	loc := source.File(fileNo, 0, 15)
	note := source.File(fileNo, 9, 10)

	var buf bytes.Buffer
	r := New(&buf, fs)
	r.Color = false

	d := diag.TypedErrorf(loc, diag.KindDeclaration, "duplicate enum value 'A'").WithNote(note, "enum declared here")
	r.Render([]diag.Diagnostic{d})

	out := buf.String()
	assert.Contains(t, out, "note:")
	assert.Contains(t, out, "enum declared here")
}

func Test_Render_SummaryCountsByLevel(t *testing.T) {
	fs, fileNo := newFileSet(t, "x\n")
	loc := source.File(fileNo, 0, 1)

	var buf bytes.Buffer
	r := New(&buf, fs)
	r.Color = false

	r.Render([]diag.Diagnostic{
		diag.Errorf(loc, "first"),
		diag.Errorf(loc, "second"),
		diag.Warningf(loc, "third"),
	})

	out := buf.String()
	require.Contains(t, out, "error")
	assert.Contains(t, out, "2")
	assert.Contains(t, out, "warning")
}

func Test_AutoColor_FalseForNonFileWriter(t *testing.T) {
	var buf bytes.Buffer
	fs := source.NewFileSet()
	r := New(&buf, fs)
	assert.False(t, r.Color)
}
