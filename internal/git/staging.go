package git

import (
	"context"
	"fmt"
)

// Add stages a single path. Deleted paths are staged as removals.
func (r *realRunner) Add(ctx context.Context, path string) error {
	if _, err := r.cmd.Run(ctx, "add", "-A", "--", path); err != nil {
		return fmt.Errorf("failed to stage %s: %w", path, err)
	}
	return nil
}

// ResetIndex unstages everything, keeping worktree changes
func (r *realRunner) ResetIndex(ctx context.Context) error {
	if _, err := r.cmd.Run(ctx, "reset", "--quiet"); err != nil {
		return fmt.Errorf("failed to unstage changes: %w", err)
	}
	return nil
}

// DiscardWorktree drops unstaged modifications to tracked files
func (r *realRunner) DiscardWorktree(ctx context.Context) error {
	if _, err := r.cmd.Run(ctx, "checkout", "--", "."); err != nil {
		return fmt.Errorf("failed to discard changes: %w", err)
	}
	return nil
}
