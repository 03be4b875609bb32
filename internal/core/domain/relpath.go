package domain

import (
	"path/filepath"
	"slices"
)

// RelativePath is a file path relative to a root, always slash-separated.
// Two files from different roots are the same file iff their relative paths are equal.
type RelativePath string

// NewRelativePath computes the relative path of path under root.
func NewRelativePath(root, path string) (RelativePath, error) {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return "", err
	}
	return RelativePath(filepath.ToSlash(rel)), nil
}

// String returns the slash-separated form.
func (p RelativePath) String() string { return string(p) }

// In joins the relative path onto root using the OS separator.
func (p RelativePath) In(root string) string {
	return filepath.Join(root, filepath.FromSlash(string(p)))
}

// SortedUnion merges path lists into one sorted, duplicate-free list.
func SortedUnion(lists ...[]RelativePath) []RelativePath {
	size := 0
	for _, l := range lists {
		size += len(l)
	}

	out := make([]RelativePath, 0, size)
	for _, l := range lists {
		out = append(out, l...)
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// PathStrings converts relative paths to plain strings, preserving order.
func PathStrings(paths []RelativePath) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = p.String()
	}
	return out
}
