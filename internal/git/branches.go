package git

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

func (r *realRunner) CreateBranch(ctx context.Context, name string) error {
	if _, err := r.cmd.Run(ctx, "branch", name); err != nil {
		return fmt.Errorf("failed to create branch %s: %w", name, err)
	}
	return nil
}

func (r *realRunner) CheckoutBranch(ctx context.Context, name string) error {
	if _, err := r.cmd.Run(ctx, "checkout", "--quiet", name); err != nil {
		return fmt.Errorf("failed to checkout %s: %w", name, err)
	}
	return nil
}

func (r *realRunner) DeleteBranch(ctx context.Context, name string, force bool) error {
	flag := "-d"
	if force {
		flag = "-D"
	}
	if _, err := r.cmd.Run(ctx, "branch", flag, name); err != nil {
		return fmt.Errorf("failed to delete branch %s: %w", name, err)
	}
	return nil
}

// MergeBranch merges name into the current branch
func (r *realRunner) MergeBranch(ctx context.Context, name string) error {
	if _, err := r.cmd.Run(ctx, "merge", "--no-edit", name); err != nil {
		return fmt.Errorf("failed to merge %s: %w", name, err)
	}
	return nil
}

// BranchUpstreams maps every local branch that has one to its upstream
func (r *realRunner) BranchUpstreams(ctx context.Context) (map[string]string, error) {
	lines, err := r.cmd.RunLines(ctx, "for-each-ref", "--format=%(refname:short)%00%(upstream:short)", "refs/heads")
	if err != nil {
		return nil, fmt.Errorf("failed to read branch upstreams: %w", err)
	}
	upstreams := make(map[string]string)
	for _, line := range lines {
		branch, upstream, _ := strings.Cut(line, "\x00")
		if branch != "" && upstream != "" {
			upstreams[branch] = upstream
		}
	}
	return upstreams, nil
}

// AheadBehind counts commits on local not on upstream and vice versa
func (r *realRunner) AheadBehind(ctx context.Context, local, upstream string) (int, int, error) {
	output, err := r.cmd.Run(ctx, "rev-list", "--left-right", "--count", local+"..."+upstream)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to compare %s with %s: %w", local, upstream, err)
	}
	return parseLeftRight(output)
}

// UnpushedCount counts commits on HEAD that are on no remote-tracking ref
func (r *realRunner) UnpushedCount(ctx context.Context) (int, error) {
	output, err := r.cmd.Run(ctx, "rev-list", "--count", "HEAD", "--not", "--remotes")
	if err != nil {
		return 0, fmt.Errorf("failed to count unpushed commits: %w", err)
	}
	count, err := strconv.Atoi(output)
	if err != nil {
		return 0, fmt.Errorf("unexpected rev-list output %q: %w", output, err)
	}
	return count, nil
}

func parseLeftRight(output string) (int, int, error) {
	parts := strings.Fields(output)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("unexpected rev-list output %q", output)
	}
	ahead, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("unexpected rev-list output %q: %w", output, err)
	}
	behind, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("unexpected rev-list output %q: %w", output, err)
	}
	return ahead, behind, nil
}
