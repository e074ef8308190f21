package actions

import (
	"errors"

	snailerrors "snailgit.dev/snailgit/internal/errors"
	"snailgit.dev/snailgit/internal/git"
	"snailgit.dev/snailgit/internal/runtime"
)

// ChangeKind describes how a path differs from HEAD
type ChangeKind string

const (
	ChangeModified ChangeKind = "modified"
	ChangeAdded    ChangeKind = "added"
	ChangeDeleted  ChangeKind = "deleted"
	ChangeRenamed  ChangeKind = "renamed"
)

// FileEntry is one selectable path. A path appears at most once, in its most
// staged state.
type FileEntry struct {
	Path   string
	Kind   ChangeKind
	Staged bool
}

// Classify reads the repository status and partitions it into file entries
func Classify(ctx *runtime.Context) ([]FileEntry, error) {
	status, err := queryStatus(ctx)
	if err != nil {
		return nil, err
	}
	return ClassifyStatus(status), nil
}

// ClassifyStatus turns a parsed status into file entries: staged paths first
// (always reported as modified), then unstaged modified, untracked, deleted
// and renamed paths that are not already staged.
func ClassifyStatus(status *git.Status) []FileEntry {
	seen := make(map[string]bool)
	entries := make([]FileEntry, 0, len(status.Staged)+len(status.Modified)+len(status.Untracked))

	for _, path := range status.Staged {
		if seen[path] {
			continue
		}
		seen[path] = true
		entries = append(entries, FileEntry{Path: path, Kind: ChangeModified, Staged: true})
	}

	add := func(path string, kind ChangeKind) {
		if seen[path] {
			return
		}
		seen[path] = true
		entries = append(entries, FileEntry{Path: path, Kind: kind})
	}
	created := make(map[string]bool, len(status.Created))
	for _, path := range status.Created {
		created[path] = true
	}
	for _, path := range status.Modified {
		if created[path] {
			add(path, ChangeAdded)
			continue
		}
		add(path, ChangeModified)
	}
	for _, path := range status.Untracked {
		add(path, ChangeAdded)
	}
	for _, path := range status.Deleted {
		add(path, ChangeDeleted)
	}
	for _, rename := range status.Renamed {
		add(rename.To, ChangeRenamed)
	}
	return entries
}

// queryStatus reads status, reporting every failure as a repository access error
func queryStatus(ctx *runtime.Context) (*git.Status, error) {
	status, err := ctx.Git.Status(ctx)
	if err != nil {
		var accessErr *snailerrors.RepositoryAccessError
		if errors.As(err, &accessErr) {
			return nil, err
		}
		return nil, snailerrors.NewRepositoryAccessError(ctx.RepoRoot, err)
	}
	return status, nil
}

func stagedPaths(entries []FileEntry) []string {
	var paths []string
	for _, e := range entries {
		if e.Staged {
			paths = append(paths, e.Path)
		}
	}
	return paths
}
