package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func TestSaveKeepsExtensionAndUniquifiesName(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), zap.NewNop())
	require.NoError(t, err)

	path, err := store.Save("lecture.pdf", strings.NewReader("%PDF-fake"))
	require.NoError(t, err)

	assert.Equal(t, ".pdf", filepath.Ext(path))
	assert.NotEqual(t, "lecture.pdf", filepath.Base(path))
	assert.True(t, strings.HasSuffix(filepath.Base(path), "_lecture.pdf"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-fake", string(data))
}

func TestSaveSameFilenameDoesNotCollide(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), zap.NewNop())
	require.NoError(t, err)

	first, err := store.Save("notes.txt", strings.NewReader("first"))
	require.NoError(t, err)
	second, err := store.Save("notes.txt", strings.NewReader("second"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	a, _ := os.ReadFile(first)
	b, _ := os.ReadFile(second)
	assert.Equal(t, "first", string(a))
	assert.Equal(t, "second", string(b))
}

func TestConcurrentSavesWithSameFilenameStayIsolated(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), zap.NewNop())
	require.NoError(t, err)

	var g errgroup.Group
	paths := make([]string, 8)
	for i := range paths {
		content := strings.Repeat("x", i+1)
		g.Go(func() error {
			p, err := store.Save("collide.txt", strings.NewReader(content))
			if err != nil {
				return err
			}
			paths[i] = p
			return nil
		})
	}
	require.NoError(t, g.Wait())

	seen := make(map[string]bool)
	for i, p := range paths {
		require.False(t, seen[p], "duplicate storage key %s", p)
		seen[p] = true

		data, err := os.ReadFile(p)
		require.NoError(t, err)
		assert.Len(t, string(data), i+1, "file %s holds another request's bytes", p)
	}
}

func TestSaveStripsDirectoryFromFilename(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir, zap.NewNop())
	require.NoError(t, err)

	path, err := store.Save("../escape.txt", strings.NewReader("content"))
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))
}

func TestRemove(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), zap.NewNop())
	require.NoError(t, err)

	path, err := store.Save("gone.txt", strings.NewReader("bye"))
	require.NoError(t, err)

	require.NoError(t, store.Remove(path))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Double-remove is fine.
	assert.NoError(t, store.Remove(path))
}
