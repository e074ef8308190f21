package actions

import (
	"fmt"
	"strings"

	"snailgit.dev/snailgit/internal/git"
	"snailgit.dev/snailgit/internal/runtime"
	"snailgit.dev/snailgit/internal/tui"
)

func configMenu() menu {
	return subMenu("Config",
		menuEntry{Label: "📋 Show config", Value: "list", Run: listGitConfig},
		menuEntry{Label: "👤 Set user name", Value: "user.name", Run: setGitConfig("user.name")},
		menuEntry{Label: "📧 Set user email", Value: "user.email", Run: setGitConfig("user.email")},
	)
}

func listGitConfig(ctx *runtime.Context) error {
	for _, scope := range []git.ConfigScope{git.ConfigLocal, git.ConfigGlobal} {
		output, err := ctx.Git.ConfigList(ctx, scope)
		if err != nil {
			// A missing global config file is not worth an error
			ctx.Splog.Debug("No %s config: %v", scope, err)
			continue
		}
		ctx.Splog.Info("%s config:", tui.Bold(string(scope)))
		if output == "" {
			ctx.Splog.Info("  %s", tui.ColorDim("(empty)"))
			continue
		}
		for _, line := range strings.Split(output, "\n") {
			ctx.Splog.Info("  %s", line)
		}
	}
	return nil
}

func setGitConfig(key string) func(*runtime.Context) error {
	return func(ctx *runtime.Context) error {
		scope, err := ctx.Prompter.Select("Where should it be set?", []tui.SelectOption{
			{Label: "This repository", Value: string(git.ConfigLocal)},
			{Label: "Global (all repositories)", Value: string(git.ConfigGlobal)},
		}, string(git.ConfigLocal))
		if err != nil {
			return err
		}

		current, err := ctx.Git.ConfigGet(ctx, git.ConfigScope(scope), key)
		if err != nil {
			ctx.Splog.Debug("Failed to read %s: %v", key, err)
		}
		value, err := ctx.Prompter.Input(fmt.Sprintf("%s:", key), current, validateRequired(key))
		if err != nil {
			return err
		}
		if err := ctx.Git.ConfigSet(ctx, git.ConfigScope(scope), key, strings.TrimSpace(value)); err != nil {
			return err
		}
		ctx.Splog.Success("Set %s %s to %s", scope, key, strings.TrimSpace(value))
		return nil
	}
}
