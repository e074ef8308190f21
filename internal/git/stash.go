package git

import (
	"context"
	"fmt"
	"strings"
)

// StashEntry is a single entry of the stash list
type StashEntry struct {
	Ref     string // stash@{N}
	Message string
	Date    string
}

func (r *realRunner) StashList(ctx context.Context) ([]StashEntry, error) {
	lines, err := r.cmd.RunLines(ctx, "stash", "list", "--format=%gd%x1f%gs%x1f%cr")
	if err != nil {
		return nil, fmt.Errorf("failed to list stashes: %w", err)
	}
	entries := make([]StashEntry, 0, len(lines))
	for _, line := range lines {
		parts := strings.SplitN(line, "\x1f", 3)
		if len(parts) < 3 {
			continue
		}
		entries = append(entries, StashEntry{Ref: parts[0], Message: parts[1], Date: parts[2]})
	}
	return entries, nil
}

func (r *realRunner) StashSave(ctx context.Context, message string) error {
	args := []string{"stash", "push", "--include-untracked"}
	if message != "" {
		args = append(args, "-m", message)
	}
	if _, err := r.cmd.Run(ctx, args...); err != nil {
		return fmt.Errorf("failed to stash changes: %w", err)
	}
	return nil
}

func (r *realRunner) StashApply(ctx context.Context, ref string) error {
	if _, err := r.cmd.Run(ctx, "stash", "apply", ref); err != nil {
		return fmt.Errorf("failed to apply %s: %w", ref, err)
	}
	return nil
}

func (r *realRunner) StashDrop(ctx context.Context, ref string) error {
	if _, err := r.cmd.Run(ctx, "stash", "drop", ref); err != nil {
		return fmt.Errorf("failed to drop %s: %w", ref, err)
	}
	return nil
}

// StashBranch creates branch from the latest stash and applies it there
func (r *realRunner) StashBranch(ctx context.Context, branch string) error {
	if _, err := r.cmd.Run(ctx, "stash", "branch", branch); err != nil {
		return fmt.Errorf("failed to create branch %s from stash: %w", branch, err)
	}
	return nil
}
