package actions_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"snailgit.dev/snailgit/internal/actions"
	snailerrors "snailgit.dev/snailgit/internal/errors"
	"snailgit.dev/snailgit/internal/git"
	"snailgit.dev/snailgit/testhelpers/scenario"
)

func TestClassifyStatus(t *testing.T) {
	t.Parallel()

	t.Run("lists staged entries first as modified", func(t *testing.T) {
		t.Parallel()
		entries := actions.ClassifyStatus(&git.Status{
			Staged:    []string{"new.go", "gone.go"},
			Created:   []string{"new.go"},
			Modified:  []string{"edit.go"},
			Untracked: []string{"notes.txt"},
		})

		require.Equal(t, []actions.FileEntry{
			{Path: "new.go", Kind: actions.ChangeModified, Staged: true},
			{Path: "gone.go", Kind: actions.ChangeModified, Staged: true},
			{Path: "edit.go", Kind: actions.ChangeModified},
			{Path: "notes.txt", Kind: actions.ChangeAdded},
		}, entries)
	})

	t.Run("tags unstaged kinds and uses rename destinations", func(t *testing.T) {
		t.Parallel()
		entries := actions.ClassifyStatus(&git.Status{
			Deleted: []string{"old.txt"},
			Renamed: []git.RenamedPath{{From: "a.txt", To: "b.txt"}},
		})

		require.Equal(t, []actions.FileEntry{
			{Path: "old.txt", Kind: actions.ChangeDeleted},
			{Path: "b.txt", Kind: actions.ChangeRenamed},
		}, entries)
	})

	t.Run("intent-to-add paths are unstaged additions", func(t *testing.T) {
		t.Parallel()
		status, err := git.ParseStatus("1 .A N... 000000 000000 100644 000 000 ita.txt\x00")
		require.NoError(t, err)

		require.Equal(t, []actions.FileEntry{
			{Path: "ita.txt", Kind: actions.ChangeAdded},
		}, actions.ClassifyStatus(status))
	})

	t.Run("staged and unstaged sets are disjoint and cover every reported path", func(t *testing.T) {
		t.Parallel()
		statuses := []*git.Status{
			{Staged: []string{"a"}, Modified: []string{"a", "b"}},
			{Staged: []string{"x"}, Deleted: []string{"x"}, Untracked: []string{"y"}},
			{Staged: []string{"r2"}, Renamed: []git.RenamedPath{{From: "r1", To: "r2"}}, Modified: []string{"r2"}},
			{Modified: []string{"m"}, Untracked: []string{"u"}, Deleted: []string{"d"}, Renamed: []git.RenamedPath{{From: "p", To: "q"}}},
			{},
		}

		for _, status := range statuses {
			entries := actions.ClassifyStatus(status)

			staged := map[string]bool{}
			unstaged := map[string]bool{}
			for _, e := range entries {
				if e.Staged {
					staged[e.Path] = true
				} else {
					require.False(t, unstaged[e.Path], "duplicate unstaged path %s", e.Path)
					unstaged[e.Path] = true
				}
			}
			for path := range staged {
				require.False(t, unstaged[path], "path %s is both staged and unstaged", path)
			}

			reported := append(append(append([]string{}, status.Modified...), status.Untracked...), status.Deleted...)
			for _, r := range status.Renamed {
				reported = append(reported, r.To)
			}
			for _, path := range reported {
				require.True(t, staged[path] || unstaged[path], "path %s is missing", path)
			}
		}
	})
}

func TestClassify(t *testing.T) {
	t.Parallel()

	t.Run("reports status failures as repository access errors", func(t *testing.T) {
		t.Parallel()
		s := scenario.NewScenario(t)
		s.Git.Errors["Status"] = errors.New("fatal: not a git repository")

		_, err := actions.Classify(s.Context)
		require.Error(t, err)
		require.True(t, errors.Is(err, snailerrors.ErrNotARepository))

		var accessErr *snailerrors.RepositoryAccessError
		require.True(t, errors.As(err, &accessErr))
	})

	t.Run("reads the live status", func(t *testing.T) {
		t.Parallel()
		s := scenario.NewScenario(t).WithStatus(&git.Status{Modified: []string{"main.go"}})

		entries, err := actions.Classify(s.Context)
		require.NoError(t, err)
		require.Equal(t, []actions.FileEntry{{Path: "main.go", Kind: actions.ChangeModified}}, entries)
	})
}
