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

func TestCheckRemoteBranches(t *testing.T) {
	t.Parallel()

	t.Run("compares every branch against its own upstream", func(t *testing.T) {
		t.Parallel()
		s := scenario.NewScenario(t)
		s.Git.Track("main", "origin/main", 1, 0).
			Track("feature", "origin/feature", 0, 4).
			Track("docs", "upstream/docs", 2, 2)

		statuses, err := actions.CheckRemoteBranches(s.Context, "origin")
		require.NoError(t, err)
		require.Equal(t, []actions.RemoteBranchStatus{
			{Name: "main", Upstream: "origin/main", Ahead: 1, Behind: 0, Current: true},
			{Name: "docs", Upstream: "upstream/docs", Ahead: 2, Behind: 2, NeedsMerge: true},
			{Name: "feature", Upstream: "origin/feature", Ahead: 0, Behind: 4, NeedsMerge: true},
		}, statuses)

		require.True(t, s.Git.HasCall("AheadBehind feature origin/feature"))
		require.True(t, s.Git.HasCall("AheadBehind docs upstream/docs"))
		require.True(t, s.Git.HasCall("Fetch origin"))
	})

	t.Run("fetches every remote an upstream lives on", func(t *testing.T) {
		t.Parallel()
		s := scenario.NewScenario(t)
		s.Git.Track("main", "origin/main", 0, 0).
			Track("docs", "upstream/docs", 0, 0).
			Track("wiki", "upstream/wiki", 0, 0)

		_, err := actions.CheckRemoteBranches(s.Context, "origin")
		require.NoError(t, err)
		require.Equal(t, []string{"Fetch origin", "Fetch upstream"}, s.Git.CallsWithPrefix("Fetch"))
	})

	t.Run("skips branches that cannot be evaluated", func(t *testing.T) {
		t.Parallel()
		s := scenario.NewScenario(t)
		s.Git.Track("main", "origin/main", 0, 0)
		s.Git.Upstreams["gone"] = "origin/gone"

		statuses, err := actions.CheckRemoteBranches(s.Context, "origin")
		require.NoError(t, err)
		require.Len(t, statuses, 1)
		require.Equal(t, "main", statuses[0].Name)
	})

	t.Run("continues with stale refs when fetch fails", func(t *testing.T) {
		t.Parallel()
		s := scenario.NewScenario(t)
		s.Git.Track("main", "origin/main", 0, 1)
		s.Git.Errors["Fetch"] = errors.New("could not resolve host")

		statuses, err := actions.CheckRemoteBranches(s.Context, "origin")
		require.NoError(t, err)
		require.True(t, statuses[0].NeedsMerge)
		require.Contains(t, s.Out(), "Could not fetch origin")
	})
}

func TestCheckRemoteAction(t *testing.T) {
	t.Parallel()

	s := scenario.NewScenario(t)
	s.Git.Track("main", "origin/main", 2, 3)

	require.NoError(t, actions.CheckRemoteAction(s.Context, actions.CheckRemoteOptions{}))
	require.Contains(t, s.Out(), "origin/main: ahead 2, behind 3 (needs merge)")
	require.Empty(t, s.Git.CallsWithPrefix("Push"))
}

func TestPushAction(t *testing.T) {
	t.Parallel()

	t.Run("nothing to push performs no push", func(t *testing.T) {
		t.Parallel()
		s := scenario.NewScenario(t)
		s.Git.Track("main", "origin/main", 0, 0)

		summary, err := actions.PushAction(s.Context, actions.PushOptions{})
		require.NoError(t, err)
		require.Nil(t, summary)
		require.Empty(t, s.Git.CallsWithPrefix("Push"))
		require.Contains(t, s.Out(), "Nothing to push")
	})

	t.Run("divergence requires a choice before pushing", func(t *testing.T) {
		t.Parallel()
		s := scenario.NewScenario(t).WithAnswers(testhelpers.SelectAnswer("cancel"))
		s.Git.Track("main", "origin/main", 2, 3)

		summary, err := actions.PushAction(s.Context, actions.PushOptions{})
		require.NoError(t, err)
		require.Nil(t, summary)
		require.Empty(t, s.Git.CallsWithPrefix("Push"))
		require.Empty(t, s.Git.CallsWithPrefix("Pull"))

		values := []string{}
		for _, opt := range s.Prompter.Options[0] {
			values = append(values, opt.Value)
		}
		require.Equal(t, []string{"pull", "force", "cancel"}, values)
	})

	t.Run("pulls diverged branches then pushes", func(t *testing.T) {
		t.Parallel()
		s := scenario.NewScenario(t).WithAnswers(
			testhelpers.SelectAnswer("pull"),
			testhelpers.ConfirmAnswer(true),
		)
		s.Git.Track("main", "origin/main", 2, 3).Track("feature", "origin/feature", 0, 1)
		s.Git.PushResponse = &git.PushResult{Remote: "origin", Hash: "abcdef0123456789"}
		s.Context.Selection.Set([]string{"a.txt"})

		summary, err := actions.PushAction(s.Context, actions.PushOptions{})
		require.NoError(t, err)
		require.Equal(t, &actions.PushSummary{Branch: "main", Remote: "origin", Commits: 2, Hash: "abcdef01"}, summary)

		require.True(t, s.Git.HasCall("Pull origin main"))
		require.True(t, s.Git.HasCall("FastForward feature origin feature"))
		require.True(t, s.Git.HasCall("Push origin main"))
		require.True(t, s.Context.Selection.IsEmpty())
	})

	t.Run("failed pull asks to continue and declining aborts", func(t *testing.T) {
		t.Parallel()
		s := scenario.NewScenario(t).WithAnswers(
			testhelpers.SelectAnswer("pull"),
			testhelpers.ConfirmAnswer(false),
		)
		s.Git.Track("main", "origin/main", 1, 1)
		s.Git.Errors["Pull"] = errors.New("merge conflict")

		summary, err := actions.PushAction(s.Context, actions.PushOptions{})
		require.NoError(t, err)
		require.Nil(t, summary)
		require.Empty(t, s.Git.CallsWithPrefix("Push"))
		require.Contains(t, s.Out(), "failed to pull main: merge conflict")
	})

	t.Run("failed pull can be overridden", func(t *testing.T) {
		t.Parallel()
		s := scenario.NewScenario(t).WithAnswers(
			testhelpers.SelectAnswer("pull"),
			testhelpers.ConfirmAnswer(true),
			testhelpers.ConfirmAnswer(true),
		)
		s.Git.Track("main", "origin/main", 1, 0).Track("stale", "origin/stale", 1, 1)
		s.Git.Errors["FastForward"] = errors.New("not a fast-forward")

		summary, err := actions.PushAction(s.Context, actions.PushOptions{})
		require.NoError(t, err)
		require.NotNil(t, summary)
		require.True(t, s.Git.HasCall("Push origin main"))
	})

	t.Run("force pushes with lease", func(t *testing.T) {
		t.Parallel()
		s := scenario.NewScenario(t).WithAnswers(
			testhelpers.SelectAnswer("force"),
			testhelpers.ConfirmAnswer(true),
		)
		s.Git.Track("main", "origin/main", 2, 3)

		_, err := actions.PushAction(s.Context, actions.PushOptions{})
		require.NoError(t, err)
		require.True(t, s.Git.HasCall("Push origin main --force-with-lease"))
		require.Empty(t, s.Git.CallsWithPrefix("Pull"))
	})

	t.Run("branch without upstream pushes unpushed commits and sets upstream", func(t *testing.T) {
		t.Parallel()
		s := scenario.NewScenario(t).WithAnswers(testhelpers.ConfirmAnswer(true))
		s.Git.Unpushed = 3

		summary, err := actions.PushAction(s.Context, actions.PushOptions{})
		require.NoError(t, err)
		require.Equal(t, 3, summary.Commits)
		require.True(t, s.Git.HasCall("Push origin main -u"))
		require.Contains(t, s.Out(), "Changed files: (unavailable)")
	})

	t.Run("pushes to an upstream with a different name", func(t *testing.T) {
		t.Parallel()
		s := scenario.NewScenario(t).WithAnswers(testhelpers.ConfirmAnswer(true))
		s.Git.Branch = "feature"
		s.Git.Track("feature", "origin/main", 1, 0)

		summary, err := actions.PushAction(s.Context, actions.PushOptions{})
		require.NoError(t, err)
		require.Equal(t, "feature", summary.Branch)
		require.Equal(t, []string{"Push origin feature:main"}, s.Git.CallsWithPrefix("Push"))
		require.Equal(t, "Push 1 commit to origin/main?", s.Prompter.Messages[0])
	})

	t.Run("falls back to the local head hash", func(t *testing.T) {
		t.Parallel()
		s := scenario.NewScenario(t).WithAnswers(testhelpers.ConfirmAnswer(true))
		s.Git.Track("main", "origin/main", 1, 0)

		summary, err := actions.PushAction(s.Context, actions.PushOptions{})
		require.NoError(t, err)
		require.Equal(t, "01234567", summary.Hash)
	})

	t.Run("declining the confirmation does not push", func(t *testing.T) {
		t.Parallel()
		s := scenario.NewScenario(t).WithAnswers(testhelpers.ConfirmAnswer(false))
		s.Git.Track("main", "origin/main", 1, 0)
		s.Context.Selection.Set([]string{"a.txt"})

		summary, err := actions.PushAction(s.Context, actions.PushOptions{})
		require.NoError(t, err)
		require.Nil(t, summary)
		require.Empty(t, s.Git.CallsWithPrefix("Push"))
		require.False(t, s.Context.Selection.IsEmpty())
	})

	t.Run("shows outgoing commits and files", func(t *testing.T) {
		t.Parallel()
		s := scenario.NewScenario(t).WithAnswers(testhelpers.ConfirmAnswer(false))
		s.Git.Track("main", "origin/main", 1, 0)
		s.Git.Outgoing = []git.LogEntry{{Hash: "1234567890abcdef", Subject: "feat: add login"}}
		s.Git.Changed = []string{"login.go"}

		_, err := actions.PushAction(s.Context, actions.PushOptions{})
		require.NoError(t, err)
		require.Contains(t, s.Out(), "12345678 feat: add login")
		require.Contains(t, s.Out(), "login.go")
	})

	t.Run("wraps push failures and keeps the selection", func(t *testing.T) {
		t.Parallel()
		s := scenario.NewScenario(t).WithAnswers(testhelpers.ConfirmAnswer(true))
		s.Git.Track("main", "origin/main", 1, 0)
		s.Git.Errors["Push"] = errors.New("rejected")
		s.Context.Selection.Set([]string{"a.txt"})

		summary, err := actions.PushAction(s.Context, actions.PushOptions{})
		require.Error(t, err)
		require.Nil(t, summary)
		require.True(t, errors.Is(err, snailerrors.ErrPushFailed))
		require.False(t, s.Context.Selection.IsEmpty())
	})
}

func TestPushActionRepository(t *testing.T) {
	t.Parallel()

	t.Run("updates an upstream named differently from the local branch", func(t *testing.T) {
		t.Parallel()
		s := scenario.NewRepoScenario(t, testhelpers.RemoteSceneSetup).
			WithAnswers(testhelpers.ConfirmAnswer(true))
		repo := s.Scene.Repo
		require.NoError(t, repo.RunGitCommand("checkout", "--quiet", "-b", "feature", "--track", "origin/main"))
		require.NoError(t, repo.CommitFile("f.txt", "f\n", "feature work"))

		summary, err := actions.PushAction(s.Context, actions.PushOptions{})
		require.NoError(t, err)
		require.Equal(t, "feature", summary.Branch)
		require.Equal(t, 1, summary.Commits)

		counts := testhelpers.Must(repo.RunGitCommandAndGetOutput("rev-list", "--left-right", "--count", "feature...origin/main"))
		require.Equal(t, "0\t0", counts)
		heads := testhelpers.Must(repo.RunGitCommandAndGetOutput("ls-remote", "--heads", "origin"))
		require.NotContains(t, heads, "refs/heads/feature")

		again, err := actions.PushAction(s.Context, actions.PushOptions{})
		require.NoError(t, err)
		require.Nil(t, again)
	})
}
