package ports

import (
	"context"

	"go.trai.ch/diffdirs/internal/core/domain"
)

// FileComparer classifies resolved paths by comparing their content across roots.
//
//go:generate go run go.uber.org/mock/mockgen -source=comparer.go -destination=mocks/mock_comparer.go -package=mocks
type FileComparer interface {
	// Compare returns one entry per path, in the same order.
	Compare(ctx context.Context, left, right string, paths []domain.RelativePath) ([]domain.FileEntry, error)
}
