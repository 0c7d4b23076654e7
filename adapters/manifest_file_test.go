package adapters

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"mytargets/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManifestFile_Panics(t *testing.T) {
	assert.PanicsWithValue(t, "adapters.manifest_file.go: path is required", func() {
		ManifestFile("")
	})
}

func TestManifestFile_Write(t *testing.T) {
	t.Run("creates_missing_directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "prometheus", "targets", "rest-servers.json")
		store := ManifestFile(path)
		assert.Equal(t, path, store.Location())

		require.NoError(t, store.Write(context.Background(), []byte("[]")))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "[]", string(got))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
	})

	t.Run("replaces_content_without_leftovers", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "rest-servers.json")
		require.NoError(t, os.WriteFile(path, []byte(`[{"targets":["old:1"]}]`), 0o600))

		store := ManifestFile(path)
		require.NoError(t, store.Write(context.Background(), []byte(`[{"targets":["new:2"]}]`)))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, `[{"targets":["new:2"]}]`, string(got))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "rest-servers.json", entries[0].Name())
	})

	t.Run("parent_is_a_file", func(t *testing.T) {
		dir := t.TempDir()
		blocker := filepath.Join(dir, "targets")
		require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

		err := ManifestFile(filepath.Join(blocker, "rest-servers.json")).Write(context.Background(), []byte("[]"))
		require.Error(t, err)
		assert.True(t, service.IsFilesystemError(err))
	})

	t.Run("target_is_a_directory", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "rest-servers.json")
		require.NoError(t, os.MkdirAll(filepath.Join(path, "child"), 0o755))

		err := ManifestFile(path).Write(context.Background(), []byte("[]"))
		require.Error(t, err)
		assert.True(t, service.IsFilesystemError(err))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1, "temporary file is removed on failure")
	})

	t.Run("cancelled_context", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rest-servers.json")
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := ManifestFile(path).Write(ctx, []byte("[]"))
		assert.True(t, service.IsFilesystemError(err))
		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr))
	})
}
