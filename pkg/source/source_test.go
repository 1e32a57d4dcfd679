package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_FileSet_AddAndLookup(t *testing.T) {
	fs := NewFileSet()
	no := fs.Add(&File{FullPath: "contracts/Token.sol", Contents: "contract Token {}"})

	assert.Equal(t, 0, no)
	got, ok := fs.Lookup("contracts/Token.sol")
	require.True(t, ok)
	assert.Equal(t, no, got)

	second := fs.Add(&File{FullPath: "contracts/Vault.sol", Contents: "contract Vault {}"})
	assert.Equal(t, 1, second)
}

func Test_FileSet_Add_PanicsOnDuplicatePath(t *testing.T) {
	fs := NewFileSet()
	fs.Add(&File{FullPath: "a.sol", Contents: "x"})
	assert.Panics(t, func() {
		fs.Add(&File{FullPath: "a.sol", Contents: "y"})
	})
}

func Test_Loc_ImplicitVsFile(t *testing.T) {
	implicit := Implicit()
	assert.True(t, implicit.IsImplicit())
	assert.Equal(t, "<implicit>", implicit.String())

	loc := File(2, 10, 20)
	assert.False(t, loc.IsImplicit())
	assert.Equal(t, 2, loc.File())
	assert.Equal(t, 10, loc.Start())
	assert.Equal(t, 20, loc.End())
	assert.Equal(t, "file#2[10:20)", loc.String())
}

func Test_FileSet_Snippet(t *testing.T) {
	fs := NewFileSet()
	no := fs.Add(&File{FullPath: "C.sol", Contents: "contract C {\n  uint x;\n  uint y;\n}\n"})

	// "uint x;" starts at offset 15, on line 2.
	line, lineNo, col, ok := fs.Snippet(File(no, 15, 22))
	require.True(t, ok)
	assert.Equal(t, "  uint x;", line)
	assert.Equal(t, 2, lineNo)
	assert.Equal(t, 3, col)
}

func Test_FileSet_Snippet_ImplicitIsNotOk(t *testing.T) {
	fs := NewFileSet()
	_, _, _, ok := fs.Snippet(Implicit())
	assert.False(t, ok)
}

func Test_FileSet_Snippet_OutOfRangeIsNotOk(t *testing.T) {
	fs := NewFileSet()
	no := fs.Add(&File{FullPath: "C.sol", Contents: "contract C {}"})
	_, _, _, ok := fs.Snippet(File(no, 1000, 1001))
	assert.False(t, ok)
}
