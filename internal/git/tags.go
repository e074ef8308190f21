package git

import (
	"context"
	"fmt"
)

// CreateTag creates a lightweight tag, or an annotated one when message is set
func (r *realRunner) CreateTag(ctx context.Context, name, message string) error {
	args := []string{"tag", name}
	if message != "" {
		args = []string{"tag", "-a", name, "-m", message}
	}
	if _, err := r.cmd.Run(ctx, args...); err != nil {
		return fmt.Errorf("failed to create tag %s: %w", name, err)
	}
	return nil
}

func (r *realRunner) DeleteTag(ctx context.Context, name string) error {
	if _, err := r.cmd.Run(ctx, "tag", "-d", name); err != nil {
		return fmt.Errorf("failed to delete tag %s: %w", name, err)
	}
	return nil
}
