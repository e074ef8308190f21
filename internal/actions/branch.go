package actions

import (
	"fmt"

	"snailgit.dev/snailgit/internal/git"
	"snailgit.dev/snailgit/internal/runtime"
	"snailgit.dev/snailgit/internal/tui"
)

func branchMenu() menu {
	return subMenu("Branches",
		menuEntry{Label: "📋 List branches", Value: "list", Run: listBranches},
		menuEntry{Label: "🌿 Create branch", Value: "create", Run: createBranch},
		menuEntry{Label: "🔄 Switch branch", Value: "switch", Run: switchBranch},
		menuEntry{Label: "🗑️  Delete branch", Value: "delete", Run: deleteBranch},
		menuEntry{Label: "📤 Push branch to remote", Value: "push", Run: pushBranch},
		menuEntry{Label: "🔀 Merge branch into current", Value: "merge", Run: mergeBranch},
	)
}

func listBranches(ctx *runtime.Context) error {
	current, _ := ctx.Git.CurrentBranch(ctx)
	local, err := ctx.Git.BranchNames(ctx)
	if err != nil {
		return err
	}
	ctx.Splog.Info("Local branches:")
	for _, name := range local {
		marker := "  "
		if name == current {
			marker = "* "
		}
		ctx.Splog.Info("%s%s", marker, tui.ColorBranchName(name, name == current))
	}

	remote, err := ctx.Git.RemoteBranchNames(ctx)
	if err != nil {
		return err
	}
	if len(remote) > 0 {
		ctx.Splog.Info("Remote branches:")
		for _, name := range remote {
			ctx.Splog.Info("  %s", tui.ColorDim(name))
		}
	}
	return nil
}

func createBranch(ctx *runtime.Context) error {
	name, err := ctx.Prompter.Input("New branch name:", "", ValidateBranchName)
	if err != nil {
		return err
	}
	if err := ctx.Git.CreateBranch(ctx, name); err != nil {
		return err
	}
	ctx.Splog.Success("Created branch %s", tui.ColorBranchName(name, false))

	switchNow, err := ctx.Prompter.Confirm(fmt.Sprintf("Switch to %s now?", name), true)
	if err != nil || !switchNow {
		return err
	}
	if err := ctx.Git.CheckoutBranch(ctx, name); err != nil {
		return err
	}
	ctx.Splog.Success("Switched to %s", tui.ColorBranchName(name, true))
	return nil
}

// promptOtherBranch asks for a local branch other than the current one.
// ok is false when there is none.
func promptOtherBranch(ctx *runtime.Context, message string) (name string, ok bool, err error) {
	current, _ := ctx.Git.CurrentBranch(ctx)
	names, err := ctx.Git.BranchNames(ctx)
	if err != nil {
		return "", false, err
	}

	var options []tui.SelectOption
	for _, n := range names {
		if n != current {
			options = append(options, tui.SelectOption{Label: n, Value: n})
		}
	}
	if len(options) == 0 {
		ctx.Splog.Info("There are no other branches.")
		return "", false, nil
	}

	name, err = ctx.Prompter.Select(message, options, "")
	if err != nil {
		return "", false, err
	}
	return name, true, nil
}

func switchBranch(ctx *runtime.Context) error {
	name, ok, err := promptOtherBranch(ctx, "Switch to:")
	if err != nil || !ok {
		return err
	}
	if err := ctx.Git.CheckoutBranch(ctx, name); err != nil {
		return err
	}
	ctx.Splog.Success("Switched to %s", tui.ColorBranchName(name, true))
	return nil
}

func deleteBranch(ctx *runtime.Context) error {
	name, ok, err := promptOtherBranch(ctx, "Delete which branch?")
	if err != nil || !ok {
		return err
	}
	confirmed, err := ctx.Prompter.Confirm(fmt.Sprintf("Delete branch %s?", name), false)
	if err != nil || !confirmed {
		return err
	}

	if err := ctx.Git.DeleteBranch(ctx, name, false); err != nil {
		ctx.Splog.Warn("%v", err)
		force, perr := ctx.Prompter.Confirm(fmt.Sprintf("%s is not fully merged. Delete it anyway?", name), false)
		if perr != nil || !force {
			return perr
		}
		if err := ctx.Git.DeleteBranch(ctx, name, true); err != nil {
			return err
		}
	}
	ctx.Splog.Success("Deleted branch %s", name)
	return nil
}

func pushBranch(ctx *runtime.Context) error {
	current, _ := ctx.Git.CurrentBranch(ctx)
	names, err := ctx.Git.BranchNames(ctx)
	if err != nil {
		return err
	}
	options := make([]tui.SelectOption, len(names))
	for i, n := range names {
		options[i] = tui.SelectOption{Label: n, Value: n}
	}
	name, err := ctx.Prompter.Select("Push which branch?", options, current)
	if err != nil {
		return err
	}

	remote := ctx.Remote()
	err = tui.RunWithSpinner(fmt.Sprintf("Pushing %s to %s...", name, remote), func() error {
		_, pushErr := ctx.Git.Push(ctx, git.PushOptions{Remote: remote, Branch: name, SetUpstream: true})
		return pushErr
	})
	if err != nil {
		return err
	}
	ctx.Splog.Success("Pushed %s to %s", tui.ColorBranchName(name, name == current), remote)
	return nil
}

func mergeBranch(ctx *runtime.Context) error {
	name, ok, err := promptOtherBranch(ctx, "Merge which branch into the current one?")
	if err != nil || !ok {
		return err
	}
	current, _ := ctx.Git.CurrentBranch(ctx)
	confirmed, err := ctx.Prompter.Confirm(fmt.Sprintf("Merge %s into %s?", name, current), true)
	if err != nil || !confirmed {
		return err
	}
	if err := ctx.Git.MergeBranch(ctx, name); err != nil {
		return err
	}
	ctx.Splog.Success("Merged %s into %s", name, current)
	return nil
}
