package storage_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mplus-labs/bonsai-api/internal/storage"
)

func TestSaveAndRemove(t *testing.T) {
	store, err := storage.NewDisk(t.TempDir())
	require.NoError(t, err)

	path, size, err := store.Save("report.pdf", strings.NewReader("hello"))
	require.NoError(t, err)
	assert.EqualValues(t, 5, size)
	assert.Equal(t, ".pdf", filepath.Ext(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	require.NoError(t, store.Remove(path))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestSaveSameNameGetsDistinctPaths(t *testing.T) {
	store, err := storage.NewDisk(t.TempDir())
	require.NoError(t, err)

	a, _, err := store.Save("notes.txt", strings.NewReader("a"))
	require.NoError(t, err)
	b, _, err := store.Save("notes.txt", strings.NewReader("b"))
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestSaveFilenameWithoutExtension(t *testing.T) {
	store, err := storage.NewDisk(t.TempDir())
	require.NoError(t, err)

	path, _, err := store.Save("README", strings.NewReader("x"))
	require.NoError(t, err)
	assert.Empty(t, filepath.Ext(path))
}

func TestRemoveMissingBlobIsNotAnError(t *testing.T) {
	store, err := storage.NewDisk(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, store.Remove(filepath.Join(t.TempDir(), "never-existed")))
}

func TestNewDiskCreatesBaseDir(t *testing.T) {
	base := filepath.Join(t.TempDir(), "nested", "uploads")
	_, err := storage.NewDisk(base)
	require.NoError(t, err)

	info, err := os.Stat(base)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
