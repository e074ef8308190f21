package git

import (
	"context"
)

// Runner defines the interface for git operations used by actions.
// This allows actions to be used with both real git and fake implementations.
type Runner interface {
	// Repository
	CheckRepo(ctx context.Context) error
	RepoRoot() string

	// Working tree and index
	Status(ctx context.Context) (*Status, error)
	Add(ctx context.Context, path string) error
	ResetIndex(ctx context.Context) error
	DiscardWorktree(ctx context.Context) error

	// Commits and history
	Commit(ctx context.Context, message string) error
	ResetSoft(ctx context.Context, revision string) error
	ResetHard(ctx context.Context, revision string) error
	HeadHash(ctx context.Context) (string, error)
	Log(ctx context.Context, maxCount int) ([]LogEntry, error)
	LogRange(ctx context.Context, base, head string) ([]LogEntry, error)
	ChangedFiles(ctx context.Context, base, head string) ([]string, error)

	// Remote synchronisation
	Fetch(ctx context.Context, remote string) error
	Pull(ctx context.Context, remote, branch string) error
	FastForward(ctx context.Context, remote, remoteBranch, localBranch string) error
	Push(ctx context.Context, opts PushOptions) (*PushResult, error)
	AheadBehind(ctx context.Context, local, upstream string) (ahead int, behind int, err error)
	BranchUpstreams(ctx context.Context) (map[string]string, error)
	UnpushedCount(ctx context.Context) (int, error)

	// Branches
	CurrentBranch(ctx context.Context) (string, error)
	BranchNames(ctx context.Context) ([]string, error)
	RemoteBranchNames(ctx context.Context) ([]string, error)
	CreateBranch(ctx context.Context, name string) error
	CheckoutBranch(ctx context.Context, name string) error
	DeleteBranch(ctx context.Context, name string, force bool) error
	MergeBranch(ctx context.Context, name string) error

	// Stash
	StashList(ctx context.Context) ([]StashEntry, error)
	StashSave(ctx context.Context, message string) error
	StashApply(ctx context.Context, ref string) error
	StashDrop(ctx context.Context, ref string) error
	StashBranch(ctx context.Context, branch string) error

	// Tags
	Tags(ctx context.Context) ([]string, error)
	CreateTag(ctx context.Context, name, message string) error
	DeleteTag(ctx context.Context, name string) error
	PushTags(ctx context.Context, remote string) error

	// Remotes
	Remotes(ctx context.Context) ([]Remote, error)
	AddRemote(ctx context.Context, name, url string) error
	RenameRemote(ctx context.Context, oldName, newName string) error
	RemoveRemote(ctx context.Context, name string) error

	// Config
	ConfigList(ctx context.Context, scope ConfigScope) (string, error)
	ConfigGet(ctx context.Context, scope ConfigScope, key string) (string, error)
	ConfigSet(ctx context.Context, scope ConfigScope, key, value string) error
}

// NewRunner returns the standard implementation of Runner rooted at dir.
// An empty dir means the process working directory.
func NewRunner(dir string) Runner {
	return &realRunner{cmd: NewCommandRunner(dir), dir: dir}
}

// realRunner implements Runner with the git binary and go-git
type realRunner struct {
	cmd  *CommandRunner
	dir  string
	root string
}
