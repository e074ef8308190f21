package git

import (
	"context"
	"fmt"
	"strings"
)

// DefaultRemote is used when neither the branch nor the repo config names one
const DefaultRemote = "origin"

// Fetch refreshes remote-tracking refs
func (r *realRunner) Fetch(ctx context.Context, remote string) error {
	args := []string{"fetch", "--quiet"}
	if remote != "" {
		args = append(args, remote)
	}
	if _, err := r.cmd.Run(ctx, args...); err != nil {
		return fmt.Errorf("failed to fetch %s: %w", remote, err)
	}
	return nil
}

func (r *realRunner) AddRemote(ctx context.Context, name, url string) error {
	if _, err := r.cmd.Run(ctx, "remote", "add", name, url); err != nil {
		return fmt.Errorf("failed to add remote %s: %w", name, err)
	}
	return nil
}

func (r *realRunner) RenameRemote(ctx context.Context, oldName, newName string) error {
	if _, err := r.cmd.Run(ctx, "remote", "rename", oldName, newName); err != nil {
		return fmt.Errorf("failed to rename remote %s: %w", oldName, err)
	}
	return nil
}

func (r *realRunner) RemoveRemote(ctx context.Context, name string) error {
	if _, err := r.cmd.Run(ctx, "remote", "remove", name); err != nil {
		return fmt.Errorf("failed to remove remote %s: %w", name, err)
	}
	return nil
}

// RemoteOf returns the remote part of an upstream such as origin/main
func RemoteOf(upstream string) string {
	remote, _, found := strings.Cut(upstream, "/")
	if !found {
		return ""
	}
	return remote
}

// BranchOf returns the branch part of an upstream such as origin/feature/x
func BranchOf(upstream string) string {
	_, branch, found := strings.Cut(upstream, "/")
	if !found {
		return upstream
	}
	return branch
}
