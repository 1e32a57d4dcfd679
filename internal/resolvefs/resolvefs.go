// Package resolvefs maps Solidity import strings onto on-disk content,
// following the ordered remap/search-path algorithm of the front-end's
// file resolver and caching results by canonical path.
package resolvefs

import (
	"fmt"
	"os"
	"path"
	"strings"

	"golang.org/x/crypto/blake2b"

	"github.com/solastlang/solast/pkg/source"
)

// Entry is one import-path search entry: either an unnamed search root
// (Prefix == "") or a named remap ("@openzeppelin/" -> "vendor/oz").
type Entry struct {
	Prefix string
	Base   string
}

// NotFoundError reports that no candidate path produced a readable file.
type NotFoundError struct {
	Requested string
	Tried     []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("file not found: %q (tried %s)", e.Requested, strings.Join(e.Tried, ", "))
}

// AmbiguousError reports that more than one candidate path resolved.
type AmbiguousError struct {
	Requested  string
	Candidates []string
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("ambiguous import %q: matches %s", e.Requested, strings.Join(e.Candidates, ", "))
}

type cacheEntry struct {
	fileNo int
	digest [32]byte
}

// Resolver resolves import strings to file content, backed by an ordered
// entry list and a FileSet that owns the stable file_no each resolved path
// receives.
type Resolver struct {
	entries []Entry
	files   *source.FileSet
	cache   map[string]cacheEntry
	digests map[[32]byte][]string
	read    func(string) ([]byte, error)
}

// New creates a Resolver backed by fs, appending resolved files to files.
func New(files *source.FileSet) *Resolver {
	return &Resolver{
		files:   files,
		cache:   make(map[string]cacheEntry),
		digests: make(map[[32]byte][]string),
		read:    os.ReadFile,
	}
}

// AddEntry appends one search-root or remap entry; order matters, entries
// are tried in the order added.
func (r *Resolver) AddEntry(e Entry) {
	r.entries = append(r.entries, e)
}

// Canonicalize strips "." and ".." path components from p.
func Canonicalize(p string) string {
	return path.Clean(p)
}

// Resolve resolves an import path requested from parentFile (the file_no
// of the file containing the import directive, or -1 for a CLI-supplied
// root file) and parentDir (that file's directory, ignored when
// parentFile < 0). It returns the file_no of the resolved file, reading
// and caching its content the first time a given canonical path is seen.
func (r *Resolver) Resolve(requested string, parentFile int, parentDir string) (int, error) {
	// Step 1: relative import resolved against the parent's directory.
	if parentFile >= 0 && (strings.HasPrefix(requested, "./") || strings.HasPrefix(requested, "../")) {
		full := Canonicalize(path.Join(parentDir, requested))
		return r.readOrCached(requested, full)
	}

	// Step 2: no parent and a literal path — try as-is.
	if parentFile < 0 {
		if fileNo, err := r.tryPath(requested, Canonicalize(requested)); err == nil {
			return fileNo, nil
		}
	}

	// Steps 3-5: apply remap entries, then unnamed search roots, then the
	// remapped path directly if no search root is configured.
	var tried []string
	var matches []int
	var matchPaths []string

	remapped := requested
	for _, e := range r.entries {
		if e.Prefix != "" && strings.HasPrefix(requested, e.Prefix) {
			remapped = path.Join(e.Base, strings.TrimPrefix(requested, e.Prefix))
			break
		}
	}

	anyBase := false
	for _, e := range r.entries {
		if e.Prefix != "" {
			continue
		}
		anyBase = true
		candidate := Canonicalize(path.Join(e.Base, remapped))
		tried = append(tried, candidate)
		if fileNo, err := r.tryPath(requested, candidate); err == nil {
			matches = append(matches, fileNo)
			matchPaths = append(matchPaths, candidate)
		}
	}

	if !anyBase {
		candidate := Canonicalize(remapped)
		tried = append(tried, candidate)
		if fileNo, err := r.tryPath(requested, candidate); err == nil {
			matches = append(matches, fileNo)
			matchPaths = append(matchPaths, candidate)
		}
	}

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return -1, &NotFoundError{Requested: requested, Tried: tried}
	default:
		return -1, &AmbiguousError{Requested: requested, Candidates: matchPaths}
	}
}

func (r *Resolver) tryPath(requested, full string) (int, error) {
	return r.readOrCached(requested, full)
}

func (r *Resolver) readOrCached(requested, full string) (int, error) {
	if cached, ok := r.cache[full]; ok {
		return cached.fileNo, nil
	}
	if fileNo, ok := r.files.Lookup(full); ok {
		return fileNo, nil
	}

	data, err := r.read(full)
	if err != nil {
		return -1, &NotFoundError{Requested: requested, Tried: []string{full}}
	}

	digest := blake2b.Sum256(data)
	fileNo := r.files.Add(&source.File{
		PathAsGiven: requested,
		FullPath:    full,
		Contents:    string(data),
		ImportNo:    -1,
		Digest:      digest,
	})
	r.cache[full] = cacheEntry{fileNo: fileNo, digest: digest}
	r.digests[digest] = append(r.digests[digest], full)
	return fileNo, nil
}

// DuplicateContent returns, for the file at fileNo, every other resolved
// path whose content digest is byte-identical — the vendored/remapped
// monorepo case the resolver cache is meant to short-circuit.
func (r *Resolver) DuplicateContent(fileNo int) []string {
	f := r.files.Get(fileNo)
	var dup []string
	for _, p := range r.digests[f.Digest] {
		if p != f.FullPath {
			dup = append(dup, p)
		}
	}
	return dup
}
