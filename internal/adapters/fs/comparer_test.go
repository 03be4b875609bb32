package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/diffdirs/internal/adapters/fs"
	"go.trai.ch/diffdirs/internal/core/domain"
)

func TestComparer_Compare(t *testing.T) {
	left, right := t.TempDir(), t.TempDir()
	writeTree(t, left, map[string]string{
		"gone.txt":  "left only",
		"same.txt":  "identical",
		"size.txt":  "short",
		"bytes.txt": "abc",
	})
	writeTree(t, right, map[string]string{
		"new.txt":   "right only",
		"same.txt":  "identical",
		"size.txt":  "much longer",
		"bytes.txt": "abd",
	})

	paths := []domain.RelativePath{"bytes.txt", "gone.txt", "new.txt", "same.txt", "size.txt"}
	entries, err := fs.NewComparer().Compare(context.Background(), left, right, paths)
	require.NoError(t, err)

	assert.Equal(t, []domain.FileEntry{
		{Path: "bytes.txt", Status: domain.StatusModified},
		{Path: "gone.txt", Status: domain.StatusOnlyLeft},
		{Path: "new.txt", Status: domain.StatusOnlyRight},
		{Path: "same.txt", Status: domain.StatusIdentical},
		{Path: "size.txt", Status: domain.StatusModified},
	}, entries)
}

func TestComparer_Compare_Empty(t *testing.T) {
	entries, err := fs.NewComparer().Compare(context.Background(), t.TempDir(), t.TempDir(), nil)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestComputeFileHash(t *testing.T) {
	tmpDir := t.TempDir()
	a := filepath.Join(tmpDir, "a")
	b := filepath.Join(tmpDir, "b")
	require.NoError(t, os.WriteFile(a, []byte("hello"), 0o600))
	require.NoError(t, os.WriteFile(b, []byte("hello"), 0o600))

	hashA, err := fs.ComputeFileHash(a)
	require.NoError(t, err)
	hashB, err := fs.ComputeFileHash(b)
	require.NoError(t, err)
	assert.Equal(t, hashA, hashB)

	_, err = fs.ComputeFileHash(filepath.Join(tmpDir, "missing"))
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrFileOpenFailed)
}
