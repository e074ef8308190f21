// Package integration runs the snailgit command line against real repositories.
package integration

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"snailgit.dev/snailgit/internal/cli"
	"snailgit.dev/snailgit/testhelpers"
)

// TestShell wraps a test scene and runs snailgit commands against it, so
// tests read like a terminal session.
type TestShell struct {
	t       *testing.T
	scene   *testhelpers.Scene
	logFile string
	stdout  bytes.Buffer
}

// NewTestShell creates a shell over a fresh scene. Prompts are disabled, so
// any command that would ask a question fails instead of blocking.
func NewTestShell(t *testing.T, setup testhelpers.SceneSetup) *TestShell {
	t.Helper()
	logFile := filepath.Join(t.TempDir(), "snailgit.log")
	t.Setenv("SNAILGIT_TEST_NO_INTERACTIVE", "1")
	t.Setenv("SNAILGIT_LOG_FILE", logFile)
	return &TestShell{t: t, scene: testhelpers.NewScene(t, setup), logFile: logFile}
}

// Run executes snailgit with --cwd pointing at the scene and expects success.
func (s *TestShell) Run(args ...string) *TestShell {
	s.t.Helper()
	require.NoError(s.t, s.exec(args...), "snailgit %v failed", args)
	return s
}

// RunExpectError executes snailgit and expects it to fail.
func (s *TestShell) RunExpectError(args ...string) error {
	s.t.Helper()
	err := s.exec(args...)
	require.Error(s.t, err, "snailgit %v should have failed", args)
	return err
}

func (s *TestShell) exec(args ...string) error {
	s.stdout.Reset()
	cmd := cli.NewRootCmd("test", "none", "unknown")
	cmd.SetOut(&s.stdout)
	cmd.SetErr(&s.stdout)
	cmd.SetArgs(append([]string{"--cwd", s.scene.Dir}, args...))
	return cmd.Execute()
}

// Output returns what the last command wrote through cobra.
func (s *TestShell) Output() string {
	return s.stdout.String()
}

// Log returns the contents of the session log file.
func (s *TestShell) Log() string {
	s.t.Helper()
	data, err := os.ReadFile(s.logFile)
	require.NoError(s.t, err)
	return string(data)
}

// Git runs a raw git command in the scene.
func (s *TestShell) Git(args ...string) *TestShell {
	s.t.Helper()
	require.NoError(s.t, s.scene.Repo.RunGitCommand(args...))
	return s
}
