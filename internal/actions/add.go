package actions

import (
	"snailgit.dev/snailgit/internal/runtime"
)

// AddOptions contains options for the default add flow
type AddOptions struct {
	// ShowStatus prints the refreshed status after staging
	ShowStatus bool
	// SelectAll pre-checks every unstaged file
	SelectAll bool
	// AutoCommit skips the "commit now?" question
	AutoCommit bool
	// AutoPush skips the "push now?" question
	AutoPush bool
}

// AddAction runs select → stage → commit → push, asking before the last two
func AddAction(ctx *runtime.Context, opts AddOptions) error {
	ctx.Selection.Reset()

	entries, err := Classify(ctx)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		ctx.Splog.Info("No changes to stage.")
		return nil
	}

	selection, err := SelectFiles(ctx, entries, SelectOptions{SelectAll: opts.SelectAll})
	if err != nil {
		return err
	}
	ctx.Selection.Set(selection)

	if err := StageFiles(ctx, selection, opts.ShowStatus); err != nil {
		return err
	}

	commit := opts.AutoCommit
	if !commit {
		if commit, err = ctx.Prompter.Confirm("Commit the staged changes now?", true); err != nil {
			return err
		}
	}
	if !commit {
		return nil
	}

	info, err := CommitAction(ctx, CommitOptions{})
	if err != nil || info == nil {
		return err
	}

	push := opts.AutoPush
	if !push {
		if push, err = ctx.Prompter.Confirm("Push to the remote now?", false); err != nil {
			return err
		}
	}
	if !push {
		return nil
	}
	_, err = PushAction(ctx, PushOptions{})
	return err
}
