package git

import (
	"context"
	"fmt"
)

// Pull merges the remote branch into the current branch
func (r *realRunner) Pull(ctx context.Context, remote, branch string) error {
	if _, err := r.cmd.Run(ctx, "pull", "--no-edit", remote, branch); err != nil {
		return fmt.Errorf("failed to pull %s/%s: %w", remote, branch, err)
	}
	return nil
}

// FastForward updates a local branch that is not checked out from its
// remote counterpart. It fails when the branches have diverged.
func (r *realRunner) FastForward(ctx context.Context, remote, remoteBranch, localBranch string) error {
	refspec := fmt.Sprintf("%s:%s", remoteBranch, localBranch)
	if _, err := r.cmd.Run(ctx, "fetch", remote, refspec); err != nil {
		return fmt.Errorf("failed to fast-forward %s from %s/%s: %w", localBranch, remote, remoteBranch, err)
	}
	return nil
}
