package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"

	snailerrors "snailgit.dev/snailgit/internal/errors"
)

// LogEntry is a single commit as shown in history and push summaries
type LogEntry struct {
	Hash    string
	Author  string
	Date    string
	Subject string
}

// ShortHash returns the first eight characters of the commit hash
func (e LogEntry) ShortHash() string {
	return ShortHash(e.Hash)
}

// ShortHash abbreviates a hash to eight characters
func ShortHash(hash string) string {
	if len(hash) > 8 {
		return hash[:8]
	}
	return hash
}

// Remote describes a configured remote
type Remote struct {
	Name string
	URLs []string
}

// OpenRepository opens the git repository containing dir
func OpenRepository(dir string) (*gogit.Repository, string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, "", fmt.Errorf("failed to get working directory: %w", err)
		}
		dir = wd
	}

	absPath, err := filepath.Abs(dir)
	if err != nil {
		return nil, "", fmt.Errorf("failed to resolve path: %w", err)
	}

	repo, err := gogit.PlainOpenWithOptions(absPath, &gogit.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if errors.Is(err, gogit.ErrRepositoryNotExists) {
		err = fmt.Errorf("%w: %w", snailerrors.ErrNotARepository, err)
	}
	if err != nil {
		return nil, "", snailerrors.NewRepositoryAccessError(absPath, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, "", snailerrors.NewRepositoryAccessError(absPath, err)
	}

	return repo, worktree.Filesystem.Root(), nil
}

func (r *realRunner) open() (*gogit.Repository, error) {
	repo, root, err := OpenRepository(r.dir)
	if err != nil {
		return nil, err
	}
	r.root = root
	return repo, nil
}

func (r *realRunner) CheckRepo(_ context.Context) error {
	_, err := r.open()
	return err
}

func (r *realRunner) RepoRoot() string {
	if r.root == "" {
		_, _ = r.open()
	}
	return r.root
}

func (r *realRunner) HeadHash(_ context.Context) (string, error) {
	repo, err := r.open()
	if err != nil {
		return "", err
	}
	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("failed to get HEAD: %w", err)
	}
	return head.Hash().String(), nil
}

func (r *realRunner) CurrentBranch(_ context.Context) (string, error) {
	repo, err := r.open()
	if err != nil {
		return "", err
	}
	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("failed to get HEAD: %w", err)
	}
	if !head.Name().IsBranch() {
		return "", fmt.Errorf("HEAD is not on a branch")
	}
	return head.Name().Short(), nil
}

func (r *realRunner) BranchNames(_ context.Context) ([]string, error) {
	repo, err := r.open()
	if err != nil {
		return nil, err
	}
	branches, err := repo.Branches()
	if err != nil {
		return nil, fmt.Errorf("failed to get branches: %w", err)
	}

	var names []string
	err = branches.ForEach(func(ref *plumbing.Reference) error {
		names = append(names, ref.Name().Short())
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate branches: %w", err)
	}
	sort.Strings(names)
	return names, nil
}

func (r *realRunner) RemoteBranchNames(_ context.Context) ([]string, error) {
	repo, err := r.open()
	if err != nil {
		return nil, err
	}
	refs, err := repo.References()
	if err != nil {
		return nil, fmt.Errorf("failed to get references: %w", err)
	}

	var names []string
	err = refs.ForEach(func(ref *plumbing.Reference) error {
		if !ref.Name().IsRemote() || ref.Type() == plumbing.SymbolicReference {
			return nil
		}
		if strings.HasSuffix(ref.Name().String(), "/HEAD") {
			return nil
		}
		names = append(names, ref.Name().Short())
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate references: %w", err)
	}
	sort.Strings(names)
	return names, nil
}

func (r *realRunner) Tags(_ context.Context) ([]string, error) {
	repo, err := r.open()
	if err != nil {
		return nil, err
	}
	tags, err := repo.Tags()
	if err != nil {
		return nil, fmt.Errorf("failed to get tags: %w", err)
	}

	var names []string
	err = tags.ForEach(func(ref *plumbing.Reference) error {
		names = append(names, ref.Name().Short())
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate tags: %w", err)
	}
	sort.Strings(names)
	return names, nil
}

func (r *realRunner) Remotes(_ context.Context) ([]Remote, error) {
	repo, err := r.open()
	if err != nil {
		return nil, err
	}
	remotes, err := repo.Remotes()
	if err != nil {
		return nil, fmt.Errorf("failed to get remotes: %w", err)
	}

	result := make([]Remote, 0, len(remotes))
	for _, remote := range remotes {
		cfg := remote.Config()
		result = append(result, Remote{Name: cfg.Name, URLs: cfg.URLs})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

// Log walks history from HEAD, newest first.
func (r *realRunner) Log(_ context.Context, maxCount int) ([]LogEntry, error) {
	repo, err := r.open()
	if err != nil {
		return nil, err
	}
	head, err := repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return []LogEntry{}, nil
		}
		return nil, fmt.Errorf("failed to get HEAD: %w", err)
	}

	iter, err := repo.Log(&gogit.LogOptions{From: head.Hash(), Order: gogit.LogOrderCommitterTime})
	if err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}
	defer iter.Close()

	var entries []LogEntry
	err = iter.ForEach(func(c *object.Commit) error {
		if maxCount > 0 && len(entries) >= maxCount {
			return storer.ErrStop
		}
		entries = append(entries, logEntryFromCommit(c))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate history: %w", err)
	}
	return entries, nil
}

func logEntryFromCommit(c *object.Commit) LogEntry {
	return LogEntry{
		Hash:    c.Hash.String(),
		Author:  c.Author.Name,
		Date:    c.Author.When.Format("2006-01-02 15:04:05 -0700"),
		Subject: strings.SplitN(strings.TrimSpace(c.Message), "\n", 2)[0],
	}
}
