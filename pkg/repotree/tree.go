package repotree

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/proposaltools/proposalcheck/internal/platform"
)

// Tree is an indexed view of a local repository checkout.
// The index is built once per run and maps base filenames to every relative
// path carrying that name; the checkout is assumed not to change while a
// check is in flight.
type Tree struct {
	root   string
	byName map[string][]string // base filename -> relative paths, walk order
}

// New walks the tree rooted at rootPath and builds the filename index.
// Directories matching an exclude pattern are skipped entirely.
// A missing or non-directory root is a fatal error, not a per-file miss.
func New(rootPath string, exclude []string) (*Tree, error) {
	absPath, err := filepath.Abs(rootPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to access path: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", absPath)
	}

	t := &Tree{
		root:   absPath,
		byName: make(map[string][]string),
	}

	err = filepath.WalkDir(absPath, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if p != absPath && excluded(d.Name(), exclude) {
				return filepath.SkipDir
			}
			return nil
		}

		relPath, err := filepath.Rel(absPath, p)
		if err != nil {
			return err
		}

		relPath = filepath.ToSlash(relPath)
		t.byName[d.Name()] = append(t.byName[d.Name()], relPath)

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to index tree: %w", err)
	}

	return t, nil
}

// Root returns the absolute root path of the tree
func (t *Tree) Root() string {
	return t.root
}

// Resolve finds the unique local file corresponding to a path declared by a
// proposal. The declared path's prefix is unknown: the project may sit
// anywhere inside the checkout, possibly under a renamed directory, so
// matching starts from the full declared path and drops one leading segment
// at a time. The first suffix with exactly one match wins, which prefers the
// most specific suffix that still resolves uniquely. Zero or multiple
// matches at a given length just shrink the suffix further; reaching the
// bare filename without a unique match means the file is missing.
func (t *Tree) Resolve(declared string) (string, bool) {
	segments := platform.Segments(declared)
	if len(segments) == 0 {
		return "", false
	}

	// Every possible match carries the declared base name, so the filename
	// index narrows the candidate set before any suffix comparison.
	candidates := t.byName[segments[len(segments)-1]]

	for i := 0; i < len(segments); i++ {
		suffix := segments[i:]

		var matches []string
		for _, rel := range candidates {
			if hasSuffixSegments(rel, suffix) {
				matches = append(matches, rel)
			}
		}

		if len(matches) == 1 {
			return filepath.Join(t.root, filepath.FromSlash(matches[0])), true
		}
	}

	return "", false
}

// hasSuffixSegments reports whether rel ends with the given path segments.
// The comparison is segment-wise, so "bar/baz.sol" is not a suffix of
// "foobar/baz.sol".
func hasSuffixSegments(rel string, suffix []string) bool {
	parts := strings.Split(rel, "/")
	if len(parts) < len(suffix) {
		return false
	}

	offset := len(parts) - len(suffix)
	for i, segment := range suffix {
		if parts[offset+i] != segment {
			return false
		}
	}

	return true
}

// excluded reports whether a directory name matches any exclude pattern.
// Patterns may carry a trailing slash ("node_modules/") or be plain globs.
func excluded(name string, patterns []string) bool {
	for _, pattern := range patterns {
		pattern = strings.TrimSuffix(pattern, "/")
		if pattern == "" {
			continue
		}
		if matched, _ := path.Match(pattern, name); matched {
			return true
		}
	}
	return false
}
