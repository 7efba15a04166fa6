package platform

import (
	"path"
	"strings"
)

// NormalizeDeclared normalizes a proposal-declared path. Declared paths are
// platform neutral, but some proposal sources emit Windows-style separators.
func NormalizeDeclared(p string) string {
	p = strings.ReplaceAll(p, "\\", "/")
	return path.Clean(p)
}

// Segments splits a declared path into its ordered path segments.
// An empty or root-only path yields no segments.
func Segments(p string) []string {
	p = NormalizeDeclared(p)
	p = strings.Trim(p, "/")
	if p == "" || p == "." {
		return nil
	}
	return strings.Split(p, "/")
}
