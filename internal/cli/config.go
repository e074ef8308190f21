package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"snailgit.dev/snailgit/internal/config"
	"snailgit.dev/snailgit/internal/runtime"
)

// newConfigCmd creates the config command
func newConfigCmd(base runtime.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Get and set repository configuration",
		Long: `Get and set snailgit settings for the current repository.
Settings are stored in .git/.snailgit_config.

Examples:
  snailgit config get remote
  snailgit config set history.limit 25
  snailgit config set status.afterAdd false`,
	}

	cmd.AddCommand(newConfigGetCmd(base))
	cmd.AddCommand(newConfigSetCmd(base))
	cmd.AddCommand(newConfigListCmd(base))

	return cmd
}

func completeConfigKeys(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return config.Keys(), cobra.ShellCompDirectiveNoFileComp
}

// newConfigGetCmd creates the config get command
func newConfigGetCmd(base runtime.Options) *cobra.Command {
	return &cobra.Command{
		Use:               "get <key>",
		Short:             "Get a configuration value",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeConfigKeys,
		SilenceUsage:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, _ := cmd.Flags().GetString("cwd")
			return run(cmd, cwd, base, func(ctx *runtime.Context) error {
				value, err := ctx.Config.GetValue(args[0])
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), value)
				return err
			})
		},
	}
}

// newConfigSetCmd creates the config set command
func newConfigSetCmd(base runtime.Options) *cobra.Command {
	return &cobra.Command{
		Use:               "set <key> <value>",
		Short:             "Set a configuration value",
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: completeConfigKeys,
		SilenceUsage:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, _ := cmd.Flags().GetString("cwd")
			return run(cmd, cwd, base, func(ctx *runtime.Context) error {
				if err := ctx.Config.SetValue(args[0], args[1]); err != nil {
					return err
				}
				if err := ctx.Config.Save(ctx.RepoRoot); err != nil {
					return fmt.Errorf("failed to save config: %w", err)
				}
				ctx.Splog.Success("Set %s to %s", args[0], args[1])
				return nil
			})
		},
	}
}

// newConfigListCmd prints every key with its effective value
func newConfigListCmd(base runtime.Options) *cobra.Command {
	return &cobra.Command{
		Use:          "list",
		Short:        "List configuration values",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cwd, _ := cmd.Flags().GetString("cwd")
			return run(cmd, cwd, base, func(ctx *runtime.Context) error {
				for _, key := range config.Keys() {
					value, err := ctx.Config.GetValue(key)
					if err != nil {
						return err
					}
					if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", key, value); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}
