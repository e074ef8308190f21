package git

import (
	"context"
	"fmt"
	"strings"
)

// PushOptions controls a push of a single branch
type PushOptions struct {
	Remote         string
	Branch         string
	// RemoteBranch is the destination branch when it differs from Branch,
	// as with a local branch tracking an upstream of another name.
	RemoteBranch   string
	SetUpstream    bool
	ForceWithLease bool
}

// Refspec is the ref argument passed to git push
func (o PushOptions) Refspec() string {
	if o.RemoteBranch == "" || o.RemoteBranch == o.Branch {
		return o.Branch
	}
	return o.Branch + ":" + o.RemoteBranch
}

// PushResult is what git reported for the pushed ref
type PushResult struct {
	Remote    string
	RemoteURL string
	// Hash is the new remote tip as abbreviated by git. Empty when git
	// did not report one (new branch, up to date).
	Hash     string
	UpToDate bool
}

// Push pushes a branch to its remote
func (r *realRunner) Push(ctx context.Context, opts PushOptions) (*PushResult, error) {
	args := []string{"push", "--porcelain"}
	if opts.SetUpstream {
		args = append(args, "-u")
	}
	if opts.ForceWithLease {
		args = append(args, "--force-with-lease")
	}
	if opts.Remote != "" {
		args = append(args, opts.Remote)
		if opts.Branch != "" {
			args = append(args, opts.Refspec())
		}
	}

	output, err := r.cmd.Run(ctx, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to push %s: %w", opts.Branch, err)
	}

	result := ParsePushOutput(output)
	result.Remote = opts.Remote
	return result, nil
}

// PushTags pushes all tags to remote
func (r *realRunner) PushTags(ctx context.Context, remote string) error {
	if _, err := r.cmd.Run(ctx, "push", remote, "--tags"); err != nil {
		return fmt.Errorf("failed to push tags to %s: %w", remote, err)
	}
	return nil
}

// ParsePushOutput extracts the destination and new remote tip from
// `git push --porcelain` output. Only the first ref line is considered.
func ParsePushOutput(output string) *PushResult {
	result := &PushResult{}
	for _, line := range strings.Split(output, "\n") {
		if url, ok := strings.CutPrefix(line, "To "); ok {
			result.RemoteURL = strings.TrimSpace(url)
			continue
		}
		if len(line) < 2 || line[1] != '\t' {
			continue
		}

		fields := strings.Split(line[2:], "\t")
		if len(fields) < 2 {
			continue
		}
		flag, summary := line[0], fields[1]
		if flag == '=' {
			result.UpToDate = true
		}
		summary, _, _ = strings.Cut(summary, " ")
		if _, newHash, found := strings.Cut(summary, "..."); found {
			result.Hash = newHash
		} else if _, newHash, found := strings.Cut(summary, ".."); found {
			result.Hash = newHash
		}
		break
	}
	return result
}
