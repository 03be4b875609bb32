package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/diffdirs/internal/adapters/fs"
	"go.trai.ch/diffdirs/internal/core/domain"
)

// writeTree creates files (slash-separated, relative to root) with the given content.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
}

func collect(w *fs.Walker, root string, onErr func(string, error)) []domain.RelativePath {
	files := make([]domain.RelativePath, 0)
	for rel := range w.WalkFiles(root, onErr) {
		files = append(files, rel)
	}
	return files
}

func TestWalker_WalkFiles(t *testing.T) {
	tmpDir := t.TempDir()
	writeTree(t, tmpDir, map[string]string{
		"file1.txt":      "content1",
		"dir1/file2.txt": "content2",
		"dir2/a/b/c.txt": "content3",
	})

	files := collect(fs.NewWalker(), tmpDir, nil)

	assert.ElementsMatch(t, []domain.RelativePath{"file1.txt", "dir1/file2.txt", "dir2/a/b/c.txt"}, files)
}

func TestWalker_WalkFiles_SkipsDirectoriesAndSymlinks(t *testing.T) {
	tmpDir := t.TempDir()
	writeTree(t, tmpDir, map[string]string{"real.txt": "x"})
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "empty"), 0o750))
	require.NoError(t, os.Symlink(filepath.Join(tmpDir, "real.txt"), filepath.Join(tmpDir, "link.txt")))
	require.NoError(t, os.Symlink(filepath.Join(tmpDir, "missing"), filepath.Join(tmpDir, "dangling")))

	var reported []string
	files := collect(fs.NewWalker(), tmpDir, func(path string, _ error) {
		reported = append(reported, path)
	})

	assert.Equal(t, []domain.RelativePath{"real.txt"}, files)
	assert.Empty(t, reported)
}

func TestWalker_WalkFiles_EmptyDirectory(t *testing.T) {
	files := collect(fs.NewWalker(), t.TempDir(), nil)
	assert.Empty(t, files)
}

func TestWalker_WalkFiles_MissingRootReportsError(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")

	var reported []string
	files := collect(fs.NewWalker(), missing, func(path string, err error) {
		require.Error(t, err)
		reported = append(reported, path)
	})

	assert.Empty(t, files)
	assert.Equal(t, []string{missing}, reported)
}

func TestWalker_WalkFiles_UnreadableDirectoryIsSkipped(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}

	tmpDir := t.TempDir()
	writeTree(t, tmpDir, map[string]string{
		"ok.txt":        "x",
		"locked/secret": "y",
		"zzz/after.txt": "z",
	})
	locked := filepath.Join(tmpDir, "locked")
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o750) }) //nolint:gosec // Restore for cleanup

	var reported []string
	files := collect(fs.NewWalker(), tmpDir, func(path string, _ error) {
		reported = append(reported, path)
	})

	assert.ElementsMatch(t, []domain.RelativePath{"ok.txt", "zzz/after.txt"}, files)
	assert.Equal(t, []string{locked}, reported)
}

func TestWalker_WalkFiles_StopsWhenConsumerStops(t *testing.T) {
	tmpDir := t.TempDir()
	writeTree(t, tmpDir, map[string]string{"a": "1", "b": "2", "c": "3"})

	count := 0
	for range fs.NewWalker().WalkFiles(tmpDir, nil) {
		count++
		break
	}

	assert.Equal(t, 1, count)
}
