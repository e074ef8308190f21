package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"snailgit.dev/snailgit/internal/actions"
	"snailgit.dev/snailgit/internal/runtime"
)

// rootFlags holds the mode and add-flow flags of the root command
type rootFlags struct {
	cwd         string
	status      bool
	all         bool
	noStatus    bool
	autoCommit  bool
	autoPush    bool
	commitOnly  bool
	pushOnly    bool
	checkRemote bool
	menu        bool
}

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	return newRootCmd(buildInfo{version: version, commit: commit, date: date}, runtime.Options{})
}

// newRootCmd builds the command tree. base supplies the runner, logger and
// prompter; zero values select the terminal implementations.
func newRootCmd(info buildInfo, base runtime.Options) *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "snailgit",
		Short: "Interactive staging, committing and pushing for git",
		Long: `snailgit walks you through staging files, writing a conventional commit
and pushing it, one prompt at a time.

Without a mode flag it runs the add flow: pick files, stage them, then
optionally commit and push. Use --menu for the full interactive session.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, flags.cwd, base, func(ctx *runtime.Context) error {
				return dispatch(ctx, flags)
			})
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.cwd, "cwd", "", "Run as if snailgit was started in this directory")
	rootCmd.Flags().BoolVar(&flags.status, "status", false, "Print the repository status and exit")
	rootCmd.Flags().BoolVar(&flags.all, "all", false, "Pre-check every unstaged file")
	rootCmd.Flags().BoolVar(&flags.noStatus, "no-status", false, "Do not print the status after staging")
	rootCmd.Flags().BoolVar(&flags.autoCommit, "auto-commit", false, "Go straight to the commit prompts after staging")
	rootCmd.Flags().BoolVar(&flags.autoPush, "auto-push", false, "Go straight to the push after committing")
	rootCmd.Flags().BoolVar(&flags.commitOnly, "commit-only", false, "Commit what is already staged and exit")
	rootCmd.Flags().BoolVar(&flags.pushOnly, "push-only", false, "Push the current branch and exit")
	rootCmd.Flags().BoolVar(&flags.checkRemote, "check-remote", false, "Report how local branches relate to their upstreams and exit")
	rootCmd.Flags().BoolVar(&flags.menu, "menu", false, "Start the interactive menu")
	rootCmd.MarkFlagsMutuallyExclusive("status", "commit-only", "push-only", "check-remote", "menu")

	rootCmd.Version = info.String()
	rootCmd.SetVersionTemplate("snailgit {{.Version}}\n")

	rootCmd.AddCommand(newConfigCmd(base))
	rootCmd.AddCommand(newVersionCmd(info))

	return rootCmd
}

// dispatch runs the action selected by the mode flags
func dispatch(ctx *runtime.Context, flags *rootFlags) error {
	switch {
	case flags.status:
		return actions.StatusAction(ctx, actions.StatusOptions{})
	case flags.checkRemote:
		return actions.CheckRemoteAction(ctx, actions.CheckRemoteOptions{})
	case flags.commitOnly:
		_, err := actions.CommitAction(ctx, actions.CommitOptions{})
		return err
	case flags.pushOnly:
		_, err := actions.PushAction(ctx, actions.PushOptions{})
		return err
	case flags.menu:
		return actions.MenuAction(ctx, actions.MenuOptions{})
	}

	return actions.AddAction(ctx, actions.AddOptions{
		ShowStatus: !flags.noStatus && ctx.Config.ShowStatusAfterAddOrDefault(),
		SelectAll:  flags.all,
		AutoCommit: flags.autoCommit,
		AutoPush:   flags.autoPush,
	})
}

type buildInfo struct {
	version string
	commit  string
	date    string
}

func (b buildInfo) String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", b.version, b.commit, b.date)
}
