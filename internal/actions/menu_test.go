package actions_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"snailgit.dev/snailgit/internal/actions"
	snailerrors "snailgit.dev/snailgit/internal/errors"
	"snailgit.dev/snailgit/internal/git"
	"snailgit.dev/snailgit/testhelpers"
	"snailgit.dev/snailgit/testhelpers/scenario"
)

func TestMenuAction(t *testing.T) {
	t.Parallel()

	t.Run("exits from the main menu", func(t *testing.T) {
		t.Parallel()
		s := scenario.NewScenario(t).WithAnswers(testhelpers.SelectAnswer("exit"))

		require.NoError(t, actions.MenuAction(s.Context, actions.MenuOptions{}))
		require.Contains(t, s.Out(), "Bye!")
	})

	t.Run("returns to the main menu after a sub-menu and after errors", func(t *testing.T) {
		t.Parallel()
		s := scenario.NewScenario(t).WithAnswers(
			testhelpers.SelectAnswer("branches"),
			testhelpers.SelectAnswer("list"),
			testhelpers.SelectAnswer("back"),
			testhelpers.SelectAnswer("push"),
			testhelpers.SelectAnswer("exit"),
		)
		s.Git.Branches = []string{"main", "feature"}
		s.Git.Errors["CurrentBranch"] = errors.New("HEAD is not on a branch")

		require.NoError(t, actions.MenuAction(s.Context, actions.MenuOptions{}))
		require.Contains(t, s.Out(), "feature")
		require.Contains(t, s.Out(), "HEAD is not on a branch")
		require.Zero(t, s.Prompter.Remaining())
	})

	t.Run("many rounds do not nest", func(t *testing.T) {
		t.Parallel()
		s := scenario.NewScenario(t)
		for i := 0; i < 500; i++ {
			s.WithAnswers(testhelpers.SelectAnswer("status"))
		}
		s.WithAnswers(testhelpers.SelectAnswer("exit"))

		require.NoError(t, actions.MenuAction(s.Context, actions.MenuOptions{}))
		require.Len(t, s.Git.CallsWithPrefix("Status"), 500)
	})

	t.Run("ctrl+c at the main menu ends the session", func(t *testing.T) {
		t.Parallel()
		s := scenario.NewScenario(t).WithAnswers(
			testhelpers.CancelAnswer(testhelpers.PromptSelect, snailerrors.ErrCanceled),
		)

		require.NoError(t, actions.MenuAction(s.Context, actions.MenuOptions{}))
	})

	t.Run("advanced tools are not available yet", func(t *testing.T) {
		t.Parallel()
		s := scenario.NewScenario(t).WithAnswers(
			testhelpers.SelectAnswer("advanced"),
			testhelpers.SelectAnswer("bisect"),
			testhelpers.SelectAnswer("back"),
			testhelpers.SelectAnswer("exit"),
		)

		require.NoError(t, actions.MenuAction(s.Context, actions.MenuOptions{}))
		require.Contains(t, s.Out(), "Bisect is not available yet.")
	})
}

func TestBranchMenu(t *testing.T) {
	t.Parallel()

	t.Run("creates and switches to a validated branch", func(t *testing.T) {
		t.Parallel()
		s := scenario.NewScenario(t).WithAnswers(
			testhelpers.SelectAnswer("branches"),
			testhelpers.SelectAnswer("create"),
			testhelpers.InputAnswer("bad name"),
			testhelpers.InputAnswer("feature/login"),
			testhelpers.ConfirmAnswer(true),
			testhelpers.SelectAnswer("back"),
			testhelpers.SelectAnswer("exit"),
		)

		require.NoError(t, actions.MenuAction(s.Context, actions.MenuOptions{}))
		require.Equal(t, []string{"bad name"}, s.Prompter.Rejected)
		require.True(t, s.Git.HasCall("CreateBranch feature/login"))
		require.Equal(t, "feature/login", s.Git.Branch)
	})

	t.Run("force deletes an unmerged branch after asking", func(t *testing.T) {
		t.Parallel()
		s := scenario.NewScenario(t).WithAnswers(
			testhelpers.SelectAnswer("branches"),
			testhelpers.SelectAnswer("delete"),
			testhelpers.SelectAnswer("old"),
			testhelpers.ConfirmAnswer(true),
			testhelpers.ConfirmAnswer(true),
			testhelpers.SelectAnswer("back"),
			testhelpers.SelectAnswer("exit"),
		)
		s.Git.Branches = []string{"main", "old"}
		s.Git.Unmerged = []string{"old"}

		require.NoError(t, actions.MenuAction(s.Context, actions.MenuOptions{}))
		require.Equal(t, []string{"DeleteBranch old", "DeleteBranch old --force"}, s.Git.CallsWithPrefix("DeleteBranch"))
		require.Equal(t, []string{"main"}, s.Git.Branches)
	})
}

func TestStashTagRemoteMenus(t *testing.T) {
	t.Parallel()

	t.Run("stash save uses the default message", func(t *testing.T) {
		t.Parallel()
		s := scenario.NewScenario(t).WithAnswers(
			testhelpers.SelectAnswer("stash"),
			testhelpers.SelectAnswer("save"),
			testhelpers.InputAnswer(""),
			testhelpers.SelectAnswer("back"),
			testhelpers.SelectAnswer("exit"),
		)

		require.NoError(t, actions.MenuAction(s.Context, actions.MenuOptions{}))
		require.True(t, s.Git.HasCall("StashSave "+actions.DefaultStashMessage))
	})

	t.Run("stash apply offers existing entries", func(t *testing.T) {
		t.Parallel()
		s := scenario.NewScenario(t).WithAnswers(
			testhelpers.SelectAnswer("stash"),
			testhelpers.SelectAnswer("apply"),
			testhelpers.SelectAnswer("stash@{1}"),
			testhelpers.SelectAnswer("back"),
			testhelpers.SelectAnswer("exit"),
		)
		s.Git.Stashes = []git.StashEntry{
			{Ref: "stash@{0}", Message: "wip", Date: "2 minutes ago"},
			{Ref: "stash@{1}", Message: "older", Date: "1 day ago"},
		}

		require.NoError(t, actions.MenuAction(s.Context, actions.MenuOptions{}))
		require.True(t, s.Git.HasCall("StashApply stash@{1}"))
	})

	t.Run("tag names are validated", func(t *testing.T) {
		t.Parallel()
		s := scenario.NewScenario(t).WithAnswers(
			testhelpers.SelectAnswer("tags"),
			testhelpers.SelectAnswer("create"),
			testhelpers.InputAnswer("v1/0"),
			testhelpers.InputAnswer("v1.0.0"),
			testhelpers.InputAnswer("first release"),
			testhelpers.SelectAnswer("push"),
			testhelpers.SelectAnswer("back"),
			testhelpers.SelectAnswer("exit"),
		)

		require.NoError(t, actions.MenuAction(s.Context, actions.MenuOptions{}))
		require.Equal(t, []string{"v1/0"}, s.Prompter.Rejected)
		require.True(t, s.Git.HasCall("CreateTag v1.0.0 first release"))
		require.True(t, s.Git.HasCall("PushTags origin"))
	})

	t.Run("remote removal needs confirmation", func(t *testing.T) {
		t.Parallel()
		s := scenario.NewScenario(t).WithAnswers(
			testhelpers.SelectAnswer("remote"),
			testhelpers.SelectAnswer("remove"),
			testhelpers.SelectAnswer("origin"),
			testhelpers.ConfirmAnswer(false),
			testhelpers.SelectAnswer("back"),
			testhelpers.SelectAnswer("exit"),
		)
		s.Git.RemoteList = []git.Remote{{Name: "origin", URLs: []string{"git@example.com:repo.git"}}}

		require.NoError(t, actions.MenuAction(s.Context, actions.MenuOptions{}))
		require.Empty(t, s.Git.CallsWithPrefix("RemoveRemote"))
	})
}

func TestConfigAndUndoMenus(t *testing.T) {
	t.Parallel()

	t.Run("sets user email in the chosen scope", func(t *testing.T) {
		t.Parallel()
		s := scenario.NewScenario(t).WithAnswers(
			testhelpers.SelectAnswer("config"),
			testhelpers.SelectAnswer("user.email"),
			testhelpers.SelectAnswer("global"),
			testhelpers.InputAnswer("me@example.com"),
			testhelpers.SelectAnswer("list"),
			testhelpers.SelectAnswer("back"),
			testhelpers.SelectAnswer("exit"),
		)

		require.NoError(t, actions.MenuAction(s.Context, actions.MenuOptions{}))
		require.True(t, s.Git.HasCall("ConfigSet global user.email me@example.com"))
		require.Contains(t, s.Out(), "user.email=me@example.com")
	})

	t.Run("hard reset is only done after confirmation", func(t *testing.T) {
		t.Parallel()
		s := scenario.NewScenario(t).WithAnswers(
			testhelpers.SelectAnswer("undo"),
			testhelpers.SelectAnswer("hard"),
			testhelpers.ConfirmAnswer(false),
			testhelpers.SelectAnswer("soft"),
			testhelpers.SelectAnswer("unstage"),
			testhelpers.SelectAnswer("back"),
			testhelpers.SelectAnswer("exit"),
		)
		s.Context.Selection.Set([]string{"a.txt"})

		require.NoError(t, actions.MenuAction(s.Context, actions.MenuOptions{}))
		require.Empty(t, s.Git.CallsWithPrefix("ResetHard"))
		require.True(t, s.Git.HasCall("ResetSoft HEAD~1"))
		require.True(t, s.Git.HasCall("ResetIndex"))
		require.True(t, s.Context.Selection.IsEmpty())
	})
}

func TestHistoryAction(t *testing.T) {
	t.Parallel()

	s := scenario.NewScenario(t).WithAnswers(
		testhelpers.InputAnswer("0"),
		testhelpers.InputAnswer("101"),
		testhelpers.InputAnswer("1"),
	)
	s.Git.History = []git.LogEntry{
		{Hash: "aaaaaaaaaaaa", Author: "Ada", Date: "2024-01-02", Subject: "second"},
		{Hash: "bbbbbbbbbbbb", Author: "Ada", Date: "2024-01-01", Subject: "first"},
	}

	require.NoError(t, actions.HistoryAction(s.Context, actions.HistoryOptions{}))
	require.Equal(t, []string{"0", "101"}, s.Prompter.Rejected)
	require.True(t, s.Git.HasCall("Log 1"))
	require.Contains(t, s.Out(), "aaaaaaaa 2024-01-02 Ada second")
	require.NotContains(t, s.Out(), "first")
}
