package runtime

import (
	"context"

	"snailgit.dev/snailgit/internal/config"
	"snailgit.dev/snailgit/internal/git"
	"snailgit.dev/snailgit/internal/tui"
)

// Context provides access to the repository, output and prompts for actions
type Context struct {
	context.Context
	Git       git.Runner
	Splog     *tui.Splog
	Prompter  tui.Prompter
	RepoRoot  string
	Config    *config.RepoConfig
	Selection *Selection
}

// Options configures NewContext. Zero values select the production defaults.
type Options struct {
	// Dir is the directory to operate in; empty means the working directory
	Dir      string
	Git      git.Runner
	Splog    *tui.Splog
	Prompter tui.Prompter
}

// NewContext builds a session context. Each call returns an independent
// instance with its own session selection.
func NewContext(ctx context.Context, opts Options) *Context {
	if ctx == nil {
		ctx = context.Background()
	}
	runner := opts.Git
	if runner == nil {
		runner = git.NewRunner(opts.Dir)
	}
	splog := opts.Splog
	if splog == nil {
		splog = tui.NewSplog()
	}
	prompter := opts.Prompter
	if prompter == nil {
		prompter = tui.NewPrompter()
	}
	return &Context{
		Context:   ctx,
		Git:       runner,
		Splog:     splog,
		Prompter:  prompter,
		Config:    &config.RepoConfig{},
		Selection: &Selection{},
	}
}

// Open verifies the directory is a repository and loads its configuration
func (c *Context) Open() error {
	if err := c.Git.CheckRepo(c); err != nil {
		return err
	}
	c.RepoRoot = c.Git.RepoRoot()
	cfg, err := config.GetRepoConfig(c.RepoRoot)
	if err != nil {
		c.Splog.Warn("Ignoring repository config: %v", err)
		return nil
	}
	c.Config = cfg
	return nil
}

// Remote returns the remote name operations should use
func (c *Context) Remote() string {
	if c.Config == nil {
		return config.DefaultRemote
	}
	return c.Config.RemoteName()
}
