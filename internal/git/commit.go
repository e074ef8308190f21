package git

import (
	"context"
	"errors"
	"fmt"
	"strings"

	snailerrors "snailgit.dev/snailgit/internal/errors"
)

// Commit creates a commit from the index with the given message.
// The message is passed on stdin so it is recorded verbatim.
func (r *realRunner) Commit(ctx context.Context, message string) error {
	if _, err := r.cmd.RunWithInput(ctx, message, "commit", "--cleanup=verbatim", "-F", "-"); err != nil {
		if emptyIndex(err) {
			return fmt.Errorf("failed to commit: %w: %w", snailerrors.ErrNothingStaged, err)
		}
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// emptyIndex reports whether git refused a commit because nothing was staged.
// git prints that on stdout.
func emptyIndex(err error) bool {
	var cmdErr *snailerrors.GitCommandError
	if !errors.As(err, &cmdErr) {
		return false
	}
	out := cmdErr.Stdout + cmdErr.Stderr
	return strings.Contains(out, "nothing to commit") || strings.Contains(out, "no changes added to commit") ||
		strings.Contains(out, "nothing added to commit")
}

// ResetSoft moves HEAD to revision keeping index and worktree
func (r *realRunner) ResetSoft(ctx context.Context, revision string) error {
	if _, err := r.cmd.Run(ctx, "reset", "--soft", revision); err != nil {
		return fmt.Errorf("failed to soft reset to %s: %w", revision, err)
	}
	return nil
}

// ResetHard moves HEAD to revision discarding index and worktree changes
func (r *realRunner) ResetHard(ctx context.Context, revision string) error {
	if _, err := r.cmd.Run(ctx, "reset", "--hard", revision); err != nil {
		return fmt.Errorf("failed to hard reset to %s: %w", revision, err)
	}
	return nil
}

// LogRange returns commits reachable from head but not base, newest first
func (r *realRunner) LogRange(ctx context.Context, base, head string) ([]LogEntry, error) {
	output, err := r.cmd.Run(ctx, "log", "--format=%H%x1f%an%x1f%ad%x1f%s%x1e", "--date=iso", base+".."+head)
	if err != nil {
		return nil, fmt.Errorf("failed to list commits %s..%s: %w", base, head, err)
	}
	return parseLogRecords(output), nil
}

// ChangedFiles returns the paths touched between base and head
func (r *realRunner) ChangedFiles(ctx context.Context, base, head string) ([]string, error) {
	lines, err := r.cmd.RunLines(ctx, "diff", "--name-only", base+".."+head)
	if err != nil {
		return nil, fmt.Errorf("failed to list changed files: %w", err)
	}
	return lines, nil
}

func parseLogRecords(output string) []LogEntry {
	var entries []LogEntry
	for _, record := range strings.Split(output, "\x1e") {
		record = strings.TrimSpace(record)
		if record == "" {
			continue
		}
		parts := strings.SplitN(record, "\x1f", 4)
		if len(parts) < 4 {
			continue
		}
		entries = append(entries, LogEntry{
			Hash:    parts[0],
			Author:  parts[1],
			Date:    parts[2],
			Subject: parts[3],
		})
	}
	return entries
}
