// Package fs provides file system adapters for walking, resolving and comparing directory trees.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"

	"go.trai.ch/diffdirs/internal/core/domain"
)

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields every regular file under root as a path relative to root.
// Directories and symlinks are not yielded and symlinks are not followed.
// An entry that cannot be read is reported to onErr and skipped; the walk goes on.
func (w *Walker) WalkFiles(root string, onErr func(path string, err error)) iter.Seq[domain.RelativePath] {
	report := func(path string, err error) {
		if onErr != nil {
			onErr(path, err)
		}
	}

	return func(yield func(domain.RelativePath) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				report(path, err)
				return nil
			}

			if !d.Type().IsRegular() {
				return nil
			}

			rel, err := domain.NewRelativePath(root, path)
			if err != nil {
				report(path, err)
				return nil
			}

			if !yield(rel) {
				return filepath.SkipAll
			}

			return nil
		})
	}
}
