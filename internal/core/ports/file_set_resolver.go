package ports

import (
	"context"

	"go.trai.ch/diffdirs/internal/core/domain"
)

// FileSetResolver computes the set of comparable files across two roots.
//
//go:generate go run go.uber.org/mock/mockgen -source=file_set_resolver.go -destination=mocks/mock_file_set_resolver.go -package=mocks
type FileSetResolver interface {
	// Resolve returns the sorted, duplicate-free union of file paths under left or right,
	// relative to their root. Entries that fail to enumerate are skipped.
	Resolve(ctx context.Context, left, right string) ([]domain.RelativePath, error)
}

// FileSetResolverFactory creates a FileSetResolver that reports skipped entries to log.
type FileSetResolverFactory func(log Logger) FileSetResolver
