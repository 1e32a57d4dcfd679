package resolvefs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solastlang/solast/pkg/source"
)

func fakeFS(files map[string]string) func(string) ([]byte, error) {
	return func(p string) ([]byte, error) {
		if data, ok := files[p]; ok {
			return []byte(data), nil
		}
		return nil, &NotFoundError{Requested: p}
	}
}

func Test_Resolve_RelativeImport(t *testing.T) {
	fs := source.NewFileSet()
	r := New(fs)
	r.read = fakeFS(map[string]string{
		"contracts/Token.sol": "contract Token {}",
	})

	fileNo, err := r.Resolve("./Token.sol", -1, "")
	require.Error(t, err) // no parent file known yet

	parentNo := fs.Add(&source.File{FullPath: "contracts/Main.sol", Contents: "import \"./Token.sol\";"})
	fileNo, err = r.Resolve("./Token.sol", parentNo, "contracts")
	require.NoError(t, err)
	assert.Equal(t, "contract Token {}", fs.Get(fileNo).Contents)
}

func Test_Resolve_SearchRoot(t *testing.T) {
	fs := source.NewFileSet()
	r := New(fs)
	r.AddEntry(Entry{Base: "lib"})
	r.read = fakeFS(map[string]string{
		"lib/Math.sol": "library Math {}",
	})

	fileNo, err := r.Resolve("Math.sol", -1, "")
	require.NoError(t, err)
	assert.Equal(t, "library Math {}", fs.Get(fileNo).Contents)
}

func Test_Resolve_NotFound(t *testing.T) {
	fs := source.NewFileSet()
	r := New(fs)
	r.AddEntry(Entry{Base: "lib"})
	r.read = fakeFS(map[string]string{})

	_, err := r.Resolve("Missing.sol", -1, "")
	require.Error(t, err)
	var nf *NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func Test_Resolve_Ambiguous(t *testing.T) {
	fs := source.NewFileSet()
	r := New(fs)
	r.AddEntry(Entry{Base: "lib"})
	r.AddEntry(Entry{Base: "vendor"})
	r.read = fakeFS(map[string]string{
		"lib/Math.sol":    "library Math {}",
		"vendor/Math.sol": "library Math {}",
	})

	_, err := r.Resolve("Math.sol", -1, "")
	require.Error(t, err)
	var amb *AmbiguousError
	assert.ErrorAs(t, err, &amb)
}

func Test_DuplicateContent(t *testing.T) {
	fs := source.NewFileSet()
	r := New(fs)
	r.AddEntry(Entry{Base: "lib"})
	r.AddEntry(Entry{Prefix: "@oz/", Base: "vendor/oz"})
	r.read = fakeFS(map[string]string{
		"lib/Math.sol":           "library Math {}",
		"lib/vendor/oz/Math.sol": "library Math {}",
	})

	a, err := r.Resolve("Math.sol", -1, "")
	require.NoError(t, err)
	b, err := r.Resolve("@oz/Math.sol", -1, "")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.Contains(t, r.DuplicateContent(a), "lib/vendor/oz/Math.sol")
}
