package actions

import (
	"fmt"
	"strings"

	"snailgit.dev/snailgit/internal/git"
	"snailgit.dev/snailgit/internal/runtime"
	"snailgit.dev/snailgit/internal/tui"
)

// DefaultStashMessage is used when the user leaves the stash message empty
const DefaultStashMessage = "Stash by snailgit"

func stashMenu() menu {
	return subMenu("Stash",
		menuEntry{Label: "💾 Stash current changes", Value: "save", Run: stashSave},
		menuEntry{Label: "📋 List stashes", Value: "list", Run: stashList},
		menuEntry{Label: "🔄 Apply a stash", Value: "apply", Run: stashApply},
		menuEntry{Label: "🗑️  Drop a stash", Value: "drop", Run: stashDrop},
		menuEntry{Label: "🌿 Create branch from stash", Value: "branch", Run: stashBranch},
	)
}

func stashSave(ctx *runtime.Context) error {
	message, err := ctx.Prompter.Input("Stash message (optional):", "", nil)
	if err != nil {
		return err
	}
	if strings.TrimSpace(message) == "" {
		message = DefaultStashMessage
	}
	if err := ctx.Git.StashSave(ctx, message); err != nil {
		return err
	}
	ctx.Splog.Success("Stashed current changes")
	return nil
}

func formatStash(e git.StashEntry) string {
	return fmt.Sprintf("%s: %s (%s)", e.Ref, e.Message, e.Date)
}

func stashList(ctx *runtime.Context) error {
	entries, err := ctx.Git.StashList(ctx)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		ctx.Splog.Warn("No stashes")
		return nil
	}
	for _, e := range entries {
		ctx.Splog.Info("%s", formatStash(e))
	}
	return nil
}

// promptStash asks for a stash entry; ok is false when the stash is empty
func promptStash(ctx *runtime.Context, message string) (ref string, ok bool, err error) {
	entries, err := ctx.Git.StashList(ctx)
	if err != nil {
		return "", false, err
	}
	if len(entries) == 0 {
		ctx.Splog.Warn("No stashes")
		return "", false, nil
	}
	options := make([]tui.SelectOption, len(entries))
	for i, e := range entries {
		options[i] = tui.SelectOption{Label: formatStash(e), Value: e.Ref}
	}
	ref, err = ctx.Prompter.Select(message, options, "")
	if err != nil {
		return "", false, err
	}
	return ref, true, nil
}

func stashApply(ctx *runtime.Context) error {
	ref, ok, err := promptStash(ctx, "Apply which stash?")
	if err != nil || !ok {
		return err
	}
	if err := ctx.Git.StashApply(ctx, ref); err != nil {
		return err
	}
	ctx.Splog.Success("Applied %s", ref)
	return nil
}

func stashDrop(ctx *runtime.Context) error {
	ref, ok, err := promptStash(ctx, "Drop which stash?")
	if err != nil || !ok {
		return err
	}
	confirmed, err := ctx.Prompter.Confirm(fmt.Sprintf("Drop %s? This cannot be undone.", ref), false)
	if err != nil || !confirmed {
		return err
	}
	if err := ctx.Git.StashDrop(ctx, ref); err != nil {
		return err
	}
	ctx.Splog.Success("Dropped %s", ref)
	return nil
}

func stashBranch(ctx *runtime.Context) error {
	name, err := ctx.Prompter.Input("New branch name:", "", ValidateBranchName)
	if err != nil {
		return err
	}
	if err := ctx.Git.StashBranch(ctx, name); err != nil {
		return fmt.Errorf("failed to create branch from stash: %w", err)
	}
	ctx.Splog.Success("Created branch %s from the latest stash", tui.ColorBranchName(name, true))
	return nil
}
