package fs

import (
	"context"
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/diffdirs/internal/core/domain"
	"go.trai.ch/diffdirs/internal/core/ports"
)

var _ ports.FileSetResolver = (*Resolver)(nil)

// Resolver implements ports.FileSetResolver by walking both roots.
type Resolver struct {
	walker *Walker
	logger ports.Logger
}

// NewResolver creates a new Resolver.
func NewResolver(walker *Walker, logger ports.Logger) *Resolver {
	return &Resolver{walker: walker, logger: logger}
}

// NewResolverFactory returns a factory of Resolvers sharing walker.
func NewResolverFactory(walker *Walker) ports.FileSetResolverFactory {
	return func(log ports.Logger) ports.FileSetResolver {
		return NewResolver(walker, log)
	}
}

// Resolve walks left, then right, and returns the sorted union of the files found.
// The output root of a three-way session is never passed here.
func (r *Resolver) Resolve(ctx context.Context, left, right string) ([]domain.RelativePath, error) {
	lists := make([][]domain.RelativePath, 0, 2)
	for _, root := range []string{left, right} {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		lists = append(lists, r.collect(root))
	}
	return domain.SortedUnion(lists...), nil
}

func (r *Resolver) collect(root string) []domain.RelativePath {
	info, err := os.Stat(root)
	switch {
	case errors.Is(err, iofs.ErrNotExist):
		r.logger.Warn(fmt.Sprintf("%s: %s", domain.ErrRootNotFound.Error(), root))
		return nil
	case err != nil:
		r.warnTraversal(root, err)
		return nil
	case !info.IsDir():
		r.warnTraversal(root, errors.New("not a directory"))
		return nil
	}

	// WalkDir does not descend through a symlinked root, so walk its target.
	// Symlinks below the root are still skipped by the walker.
	resolved, err := filepath.EvalSymlinks(root)
	if err != nil {
		r.warnTraversal(root, err)
		return nil
	}

	var paths []domain.RelativePath
	for rel := range r.walker.WalkFiles(resolved, r.warnTraversal) {
		paths = append(paths, rel)
	}
	return paths
}

func (r *Resolver) warnTraversal(path string, err error) {
	r.logger.Warn(fmt.Sprintf("%s: %s: %v", domain.ErrTraversal.Error(), path, err))
}
