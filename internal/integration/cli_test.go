package integration

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"snailgit.dev/snailgit/internal/config"
	"snailgit.dev/snailgit/internal/tui"
	"snailgit.dev/snailgit/testhelpers"
)

func TestStatusAndCheckRemote(t *testing.T) {
	sh := NewTestShell(t, testhelpers.RemoteSceneSetup)
	require.NoError(t, sh.scene.Repo.WriteFile("notes.txt", "todo\n"))

	sh.Run("--status")
	require.Contains(t, sh.Log(), "notes.txt")

	require.NoError(t, sh.scene.Repo.CommitFile("a.txt", "a\n", "add a"))
	sh.Run("--check-remote")
	require.Contains(t, sh.Log(), "ahead 1, behind 0 (ready to push)")
}

func TestPushOnlyWithNothingToPush(t *testing.T) {
	sh := NewTestShell(t, testhelpers.RemoteSceneSetup)

	sh.Run("--push-only")
	require.Contains(t, sh.Log(), "Nothing to push")
}

func TestPromptingModesFailWithoutATerminal(t *testing.T) {
	sh := NewTestShell(t, testhelpers.RemoteSceneSetup)
	require.NoError(t, sh.scene.Repo.WriteFile("a.txt", "a\n"))

	err := sh.RunExpectError()
	require.ErrorIs(t, err, tui.ErrInteractiveDisabled)
	staged := testhelpers.Must(sh.scene.Repo.StagedFiles())
	require.Empty(t, staged)
}

func TestOutsideRepository(t *testing.T) {
	sh := NewTestShell(t, nil)
	sh.scene.Dir = filepath.Join(t.TempDir(), "missing")

	sh.RunExpectError("--status")
}

func TestConfigRoundTrip(t *testing.T) {
	sh := NewTestShell(t, testhelpers.BasicSceneSetup)

	sh.Run("config", "set", "remote", "upstream")
	sh.Run("config", "get", "remote")
	require.Equal(t, "upstream\n", sh.Output())

	cfg, err := config.GetRepoConfig(sh.scene.Dir)
	require.NoError(t, err)
	require.Equal(t, "upstream", cfg.RemoteName())

	sh.RunExpectError("config", "set", "status.afterAdd", "maybe")
}
