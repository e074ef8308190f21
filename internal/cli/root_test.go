package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	snailerrors "snailgit.dev/snailgit/internal/errors"
	"snailgit.dev/snailgit/internal/git"
	"snailgit.dev/snailgit/internal/runtime"
	"snailgit.dev/snailgit/internal/tui"
	"snailgit.dev/snailgit/testhelpers"
)

type harness struct {
	git      *testhelpers.FakeRunner
	prompter *testhelpers.ScriptedPrompter
	log      *bytes.Buffer
	stdout   *bytes.Buffer
}

func newHarness(t *testing.T, answers ...testhelpers.Answer) *harness {
	t.Helper()
	fake := testhelpers.NewFakeRunner()
	fake.Root = t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(fake.Root, ".git"), 0750))
	return &harness{
		git:      fake,
		prompter: testhelpers.NewScriptedPrompter(answers...),
		log:      &bytes.Buffer{},
		stdout:   &bytes.Buffer{},
	}
}

func (h *harness) execute(args ...string) error {
	cmd := newRootCmd(buildInfo{version: "1.2.3", commit: "abc", date: "today"}, runtime.Options{
		Git:      h.git,
		Splog:    tui.NewSplogWithWriter(h.log),
		Prompter: h.prompter,
	})
	cmd.SetOut(h.stdout)
	cmd.SetErr(h.stdout)
	cmd.SetArgs(args)
	return cmd.Execute()
}

func TestRootModes(t *testing.T) {
	t.Parallel()

	t.Run("status prints and exits", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t)
		h.git.StatusResult = &git.Status{Current: "main", Modified: []string{"a.txt"}}

		require.NoError(t, h.execute("--status"))
		require.Contains(t, h.log.String(), "a.txt")
		require.Empty(t, h.git.CallsWithPrefix("Add"))
	})

	t.Run("check-remote reports divergence", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t)
		h.git.Track("main", "origin/main", 2, 3)

		require.NoError(t, h.execute("--check-remote"))
		require.Contains(t, h.log.String(), "ahead 2, behind 3 (needs merge)")
	})

	t.Run("push-only with nothing to push", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t)
		h.git.Track("main", "origin/main", 0, 0)

		require.NoError(t, h.execute("--push-only"))
		require.Contains(t, h.log.String(), "Nothing to push")
		require.Empty(t, h.git.CallsWithPrefix("Push"))
	})

	t.Run("commit-only commits what is staged", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t,
			testhelpers.SelectAnswer("fix"),
			testhelpers.InputAnswer(""),
			testhelpers.InputAnswer("typo"),
			testhelpers.MultilineAnswer(""),
			testhelpers.ConfirmAnswer(true),
		)
		h.git.StatusResult = &git.Status{Current: "main", Staged: []string{"a.txt"}}

		require.NoError(t, h.execute("--commit-only"))
		require.True(t, h.git.HasCall("Commit fix: typo"))
	})

	t.Run("mode flags are exclusive", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t)

		require.Error(t, h.execute("--status", "--push-only"))
	})
}

func TestRootAddFlow(t *testing.T) {
	t.Parallel()

	t.Run("all pre-checks files and no-status skips the status", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t,
			testhelpers.CheckboxAnswer("a.txt"),
			testhelpers.ConfirmAnswer(false),
		)
		h.git.StatusResult = &git.Status{Current: "main", Modified: []string{"a.txt"}}

		require.NoError(t, h.execute("--all", "--no-status"))
		require.True(t, h.prompter.Checkboxes[0][0].Checked)
		require.Equal(t, []string{"Add a.txt"}, h.git.CallsWithPrefix("Add"))
		require.Len(t, h.git.CallsWithPrefix("Status"), 2)
	})

	t.Run("status is shown after staging by default", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t,
			testhelpers.CheckboxAnswer("a.txt"),
			testhelpers.ConfirmAnswer(false),
		)
		h.git.StatusResult = &git.Status{Current: "main", Modified: []string{"a.txt"}}

		require.NoError(t, h.execute())
		require.Len(t, h.git.CallsWithPrefix("Status"), 3)
	})

	t.Run("ctrl+c exits cleanly", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t, testhelpers.CancelAnswer(testhelpers.PromptCheckbox, snailerrors.ErrCanceled))
		h.git.StatusResult = &git.Status{Current: "main", Modified: []string{"a.txt"}}

		require.NoError(t, h.execute())
		require.Contains(t, h.log.String(), "Canceled")
	})

	t.Run("outside a repository is an error", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t)
		h.git.NotRepo = true

		require.Error(t, h.execute())
	})

	t.Run("staging failure is an error", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t, testhelpers.CheckboxAnswer("a.txt"))
		h.git.StatusResult = &git.Status{Current: "main", Modified: []string{"a.txt"}}
		h.git.Errors["Add"] = os.ErrPermission

		err := h.execute()
		require.ErrorIs(t, err, snailerrors.ErrStagingFailed)
	})
}

func TestConfigCommand(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	require.NoError(t, h.execute("config", "get", "history.limit"))
	require.Equal(t, "10\n", h.stdout.String())

	require.NoError(t, h.execute("config", "set", "history.limit", "25"))
	require.Error(t, h.execute("config", "set", "history.limit", "0"))
	require.Error(t, h.execute("config", "get", "nope"))

	h.stdout.Reset()
	require.NoError(t, h.execute("config", "list"))
	require.Equal(t, "history.limit=25\nremote=origin\nstatus.afterAdd=true\n", h.stdout.String())
}

func TestVersion(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	require.NoError(t, h.execute("version"))
	require.Equal(t, "snailgit 1.2.3 (commit abc, built today)\n", h.stdout.String())
}
