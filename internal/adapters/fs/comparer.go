package fs

import (
	"context"
	"errors"
	"io"
	iofs "io/fs"
	"os"
	"runtime"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/diffdirs/internal/core/domain"
	"go.trai.ch/diffdirs/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.FileComparer = (*Comparer)(nil)

// Comparer classifies paths across two roots by size and XXHash of content.
type Comparer struct {
	limit int
}

// NewComparer creates a new Comparer hashing up to runtime.NumCPU() files at once.
func NewComparer() *Comparer {
	return &Comparer{limit: runtime.NumCPU()}
}

// Compare returns one entry per path, in input order.
func (c *Comparer) Compare(
	ctx context.Context,
	left, right string,
	paths []domain.RelativePath,
) ([]domain.FileEntry, error) {
	entries := make([]domain.FileEntry, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.limit)

	for i, p := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			status, err := c.classify(p.In(left), p.In(right))
			if err != nil {
				return zerr.With(err, "path", p.String())
			}
			entries[i] = domain.FileEntry{Path: p, Status: status}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *Comparer) classify(leftPath, rightPath string) (domain.FileStatus, error) {
	leftInfo, err := statFile(leftPath)
	if err != nil {
		return "", err
	}
	rightInfo, err := statFile(rightPath)
	if err != nil {
		return "", err
	}

	switch {
	case leftInfo == nil:
		return domain.StatusOnlyRight, nil
	case rightInfo == nil:
		return domain.StatusOnlyLeft, nil
	case leftInfo.Size() != rightInfo.Size():
		return domain.StatusModified, nil
	}

	leftHash, err := ComputeFileHash(leftPath)
	if err != nil {
		return "", err
	}
	rightHash, err := ComputeFileHash(rightPath)
	if err != nil {
		return "", err
	}
	if leftHash != rightHash {
		return domain.StatusModified, nil
	}
	return domain.StatusIdentical, nil
}

// statFile returns nil info when path does not exist or is not a regular file.
func statFile(path string) (iofs.FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to stat path"), "path", path)
	}
	if !info.Mode().IsRegular() {
		return nil, nil
	}
	return info, nil
}

// ComputeFileHash computes the XXHash of a file's content.
func ComputeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(domain.Classify(domain.ErrFileOpenFailed, err), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(domain.Classify(domain.ErrFileHashFailed, err), "path", path)
	}

	return hasher.Sum64(), nil
}
