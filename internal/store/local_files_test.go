package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestCollectLocalFiles_SingleFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.pdf")
	writeFile(t, path, "pdf")

	files, err := CollectLocalFiles(path)

	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "report.pdf", files[0].Name())
	assert.Equal(t, int64(3), files[0].Size())
}

func TestCollectLocalFiles_DirectoryIsWalkedInOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.txt"), "b")
	writeFile(t, filepath.Join(dir, "a.txt"), "a")
	writeFile(t, filepath.Join(dir, "nested", "c.txt"), "c")

	files, err := CollectLocalFiles(dir)

	require.NoError(t, err)
	var names []string
	for _, f := range files {
		names = append(names, f.Name())
	}
	assert.Equal(t, []string{"a.txt", "b.txt", "c.txt"}, names)
}

func TestCollectLocalFiles_EmptyDirectory(t *testing.T) {
	_, err := CollectLocalFiles(t.TempDir())

	assert.ErrorIs(t, err, ErrNoRegularFiles)
}

func TestCollectLocalFiles_MissingPath(t *testing.T) {
	_, err := CollectLocalFiles(filepath.Join(t.TempDir(), "nope"))

	assert.ErrorIs(t, err, os.ErrNotExist)
}
