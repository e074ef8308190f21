package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func newRepoRoot(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".git"), 0750))
	return dir
}

func TestGetRepoConfig(t *testing.T) {
	t.Parallel()

	t.Run("returns defaults when config does not exist", func(t *testing.T) {
		t.Parallel()
		root := newRepoRoot(t)

		config, err := GetRepoConfig(root)
		require.NoError(t, err)
		require.Equal(t, "origin", config.RemoteName())
		require.Equal(t, DefaultHistoryLimit, config.HistoryLimitOrDefault())
		require.True(t, config.ShowStatusAfterAddOrDefault())
	})

	t.Run("round trips saved values", func(t *testing.T) {
		t.Parallel()
		root := newRepoRoot(t)

		config := &RepoConfig{}
		require.NoError(t, config.SetValue(KeyRemote, "upstream"))
		require.NoError(t, config.SetValue(KeyHistoryLimit, "25"))
		require.NoError(t, config.SetValue(KeyShowStatusAfterAdd, "false"))
		require.NoError(t, config.Save(root))

		loaded, err := GetRepoConfig(root)
		require.NoError(t, err)
		require.Equal(t, "upstream", loaded.RemoteName())
		require.Equal(t, 25, loaded.HistoryLimitOrDefault())
		require.False(t, loaded.ShowStatusAfterAddOrDefault())
	})

	t.Run("fails on malformed json", func(t *testing.T) {
		t.Parallel()
		root := newRepoRoot(t)
		require.NoError(t, os.WriteFile(filepath.Join(root, ".git", ".snailgit_config"), []byte("{"), 0600))

		_, err := GetRepoConfig(root)
		require.Error(t, err)
	})
}

func TestSetValue(t *testing.T) {
	t.Parallel()

	config := &RepoConfig{}
	require.Error(t, config.SetValue(KeyHistoryLimit, "0"))
	require.Error(t, config.SetValue(KeyHistoryLimit, "101"))
	require.Error(t, config.SetValue(KeyHistoryLimit, "many"))
	require.Error(t, config.SetValue(KeyShowStatusAfterAdd, "maybe"))
	require.Error(t, config.SetValue(KeyRemote, "  "))
	require.Error(t, config.SetValue("trunk", "main"))

	require.NoError(t, config.SetValue(KeyHistoryLimit, "100"))
	value, err := config.GetValue(KeyHistoryLimit)
	require.NoError(t, err)
	require.Equal(t, "100", value)
}
