package actions

import (
	"snailgit.dev/snailgit/internal/runtime"
)

func undoMenu() menu {
	return subMenu("Undo",
		menuEntry{Label: "📤 Unstage all files", Value: "unstage", Run: unstageAll},
		menuEntry{Label: "🧹 Discard working tree changes", Value: "discard", Run: discardChanges},
		menuEntry{Label: "↩️  Undo last commit (keep changes)", Value: "soft", Run: undoCommit(false)},
		menuEntry{Label: "💥 Undo last commit (drop changes)", Value: "hard", Run: undoCommit(true)},
	)
}

func unstageAll(ctx *runtime.Context) error {
	if err := ctx.Git.ResetIndex(ctx); err != nil {
		return err
	}
	ctx.Selection.Reset()
	ctx.Splog.Success("Unstaged all files")
	return nil
}

func discardChanges(ctx *runtime.Context) error {
	confirmed, err := ctx.Prompter.Confirm("Discard all unstaged changes to tracked files? This cannot be undone.", false)
	if err != nil || !confirmed {
		return err
	}
	if err := ctx.Git.DiscardWorktree(ctx); err != nil {
		return err
	}
	ctx.Splog.Success("Discarded working tree changes")
	return nil
}

func undoCommit(hard bool) func(*runtime.Context) error {
	return func(ctx *runtime.Context) error {
		if hard {
			confirmed, err := ctx.Prompter.Confirm("Drop the last commit and all uncommitted changes? This cannot be undone.", false)
			if err != nil || !confirmed {
				return err
			}
			if err := ctx.Git.ResetHard(ctx, "HEAD~1"); err != nil {
				return err
			}
			ctx.Splog.Success("Dropped the last commit")
			return nil
		}
		if err := ctx.Git.ResetSoft(ctx, "HEAD~1"); err != nil {
			return err
		}
		ctx.Splog.Success("Undid the last commit; its changes are staged")
		return nil
	}
}
