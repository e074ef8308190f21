package actions

import (
	"fmt"
	"sort"

	snailerrors "snailgit.dev/snailgit/internal/errors"
	"snailgit.dev/snailgit/internal/git"
	"snailgit.dev/snailgit/internal/runtime"
	"snailgit.dev/snailgit/internal/tui"
)

// RemoteBranchStatus compares a local branch with its upstream.
// Computed fresh for every push attempt.
type RemoteBranchStatus struct {
	Name       string
	Upstream   string
	Ahead      int
	Behind     int
	NeedsMerge bool
	Current    bool
}

// PushSummary describes a completed push
type PushSummary struct {
	Branch  string
	Remote  string
	Commits int
	Hash    string
}

// PushOptions contains options for the push command
type PushOptions struct {
	// Remote overrides the configured remote for branches without an upstream
	Remote string
}

const (
	reconcilePull   = "pull"
	reconcileForce  = "force"
	reconcileCancel = "cancel"
)

// CheckRemoteBranches refreshes the remote and compares every local branch
// that has an upstream against that upstream. The current branch comes first.
// Other branches that cannot be evaluated are skipped.
func CheckRemoteBranches(ctx *runtime.Context, remote string) ([]RemoteBranchStatus, error) {
	upstreams, err := ctx.Git.BranchUpstreams(ctx)
	if err != nil {
		ctx.Splog.Debug("Failed to read branch upstreams: %v", err)
		upstreams = map[string]string{}
	}

	for _, r := range remotesToFetch(remote, upstreams) {
		if err := ctx.Git.Fetch(ctx, r); err != nil {
			ctx.Splog.Warn("Could not fetch %s, using the last known remote state: %v", r, err)
		}
	}

	current, err := ctx.Git.CurrentBranch(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to determine current branch: %w", err)
	}

	var statuses []RemoteBranchStatus
	if upstream, ok := upstreams[current]; ok && upstream != "" {
		ahead, behind, err := ctx.Git.AheadBehind(ctx, current, upstream)
		if err != nil {
			return nil, fmt.Errorf("failed to compare %s with %s: %w", current, upstream, err)
		}
		statuses = append(statuses, newRemoteBranchStatus(current, upstream, ahead, behind, true))
	}

	names := make([]string, 0, len(upstreams))
	for name := range upstreams {
		if name != current && upstreams[name] != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	for _, name := range names {
		ahead, behind, err := ctx.Git.AheadBehind(ctx, name, upstreams[name])
		if err != nil {
			ctx.Splog.Debug("Skipping %s: %v", name, err)
			continue
		}
		statuses = append(statuses, newRemoteBranchStatus(name, upstreams[name], ahead, behind, false))
	}
	return statuses, nil
}

// remotesToFetch lists remote followed by every other remote an upstream lives on
func remotesToFetch(remote string, upstreams map[string]string) []string {
	seen := map[string]bool{remote: true}
	var others []string
	for _, upstream := range upstreams {
		r := git.RemoteOf(upstream)
		if r == "" || seen[r] {
			continue
		}
		seen[r] = true
		others = append(others, r)
	}
	sort.Strings(others)
	return append([]string{remote}, others...)
}

func newRemoteBranchStatus(name, upstream string, ahead, behind int, current bool) RemoteBranchStatus {
	return RemoteBranchStatus{
		Name:       name,
		Upstream:   upstream,
		Ahead:      ahead,
		Behind:     behind,
		NeedsMerge: behind > 0,
		Current:    current,
	}
}

// CheckRemoteOptions contains options for the check-remote command
type CheckRemoteOptions struct {
	Remote string
}

// CheckRemoteAction prints how each tracking branch relates to its upstream
func CheckRemoteAction(ctx *runtime.Context, opts CheckRemoteOptions) error {
	remote := opts.Remote
	if remote == "" {
		remote = ctx.Remote()
	}

	statuses, err := CheckRemoteBranches(ctx, remote)
	if err != nil {
		return err
	}
	if len(statuses) == 0 {
		ctx.Splog.Info("No local branch tracks a remote branch.")
		return nil
	}
	for _, st := range statuses {
		printRemoteBranchStatus(ctx, st)
	}
	return nil
}

func printRemoteBranchStatus(ctx *runtime.Context, st RemoteBranchStatus) {
	state := tui.ColorGreen("up to date")
	switch {
	case st.NeedsMerge:
		state = tui.ColorYellow("needs merge")
	case st.Ahead > 0:
		state = tui.ColorCyan("ready to push")
	}
	ctx.Splog.Info("%s → %s: ahead %d, behind %d (%s)",
		tui.ColorBranchName(st.Name, st.Current), st.Upstream, st.Ahead, st.Behind, state)
}

// PushAction pushes the current branch after reconciling it with the remote.
// It returns a nil summary when the push was canceled or there was nothing to push.
func PushAction(ctx *runtime.Context, opts PushOptions) (*PushSummary, error) {
	splog := ctx.Splog
	remote := opts.Remote
	if remote == "" {
		remote = ctx.Remote()
	}

	statuses, err := CheckRemoteBranches(ctx, remote)
	if err != nil {
		return nil, err
	}
	branch, err := ctx.Git.CurrentBranch(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to determine current branch: %w", err)
	}

	var diverged []RemoteBranchStatus
	var upstream string
	for _, st := range statuses {
		if st.NeedsMerge {
			diverged = append(diverged, st)
		}
		if st.Current {
			upstream = st.Upstream
		}
	}

	force := false
	if len(diverged) > 0 {
		choice, err := chooseReconciliation(ctx, diverged)
		if err != nil {
			return nil, err
		}
		switch choice {
		case reconcileCancel:
			splog.Info("Push canceled.")
			return nil, nil
		case reconcileForce:
			splog.Warn("Force pushing overwrites commits on the remote that you do not have.")
			force = true
		case reconcilePull:
			proceed, err := pullDiverged(ctx, diverged)
			if err != nil {
				return nil, err
			}
			if !proceed {
				splog.Info("Push aborted.")
				return nil, nil
			}
		}
	}

	pushRemote, remoteBranch := remote, branch
	ahead := 0
	if upstream != "" {
		pushRemote, remoteBranch = git.RemoteOf(upstream), git.BranchOf(upstream)
		ahead, _, err = ctx.Git.AheadBehind(ctx, branch, upstream)
		if err != nil {
			return nil, fmt.Errorf("failed to compare %s with %s: %w", branch, upstream, err)
		}
	} else {
		ahead, err = ctx.Git.UnpushedCount(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count unpushed commits: %w", err)
		}
	}

	if ahead == 0 {
		splog.Info("Nothing to push: %s has no outgoing commits.", tui.ColorBranchName(branch, true))
		return nil, nil
	}

	showOutgoing(ctx, branch, upstream, ahead)

	confirmed, err := ctx.Prompter.Confirm(fmt.Sprintf("Push %s to %s/%s?", plural(ahead, "commit"), pushRemote, remoteBranch), true)
	if err != nil {
		return nil, err
	}
	if !confirmed {
		splog.Info("Push canceled.")
		return nil, nil
	}

	pushOpts := git.PushOptions{
		Remote:         pushRemote,
		Branch:         branch,
		RemoteBranch:   remoteBranch,
		SetUpstream:    upstream == "",
		ForceWithLease: force,
	}
	var result *git.PushResult
	err = tui.RunWithSpinner(fmt.Sprintf("Pushing %s to %s...", branch, pushRemote), func() error {
		var pushErr error
		result, pushErr = ctx.Git.Push(ctx, pushOpts)
		return pushErr
	})
	if err != nil {
		return nil, snailerrors.NewPushError(err)
	}

	summary := &PushSummary{
		Branch:  branch,
		Remote:  pushRemote,
		Commits: ahead,
		Hash:    pushedHash(ctx, result),
	}
	ctx.Selection.Reset()

	splog.Success("Pushed %s to %s", plural(summary.Commits, "commit"), tui.ColorCyan(summary.Remote))
	splog.Info("  Branch: %s", tui.ColorBranchName(summary.Branch, true))
	splog.Info("  Commit: %s", summary.Hash)
	return summary, nil
}

func chooseReconciliation(ctx *runtime.Context, diverged []RemoteBranchStatus) (string, error) {
	ctx.Splog.Warn("The remote has commits you do not have locally:")
	for _, st := range diverged {
		printRemoteBranchStatus(ctx, st)
	}
	options := []tui.SelectOption{
		{Label: "Pull and merge the remote changes first", Value: reconcilePull},
		{Label: "Force push (discouraged: overwrites remote commits)", Value: reconcileForce},
		{Label: "Cancel", Value: reconcileCancel},
	}
	return ctx.Prompter.Select("How do you want to continue?", options, reconcilePull)
}

// pullDiverged merges each diverged branch's upstream. It reports false when
// the user declines to continue after a failed pull.
func pullDiverged(ctx *runtime.Context, diverged []RemoteBranchStatus) (bool, error) {
	for _, st := range diverged {
		remote, remoteBranch := git.RemoteOf(st.Upstream), git.BranchOf(st.Upstream)

		var err error
		if st.Current {
			err = ctx.Git.Pull(ctx, remote, remoteBranch)
		} else {
			err = ctx.Git.FastForward(ctx, remote, remoteBranch, st.Name)
		}
		if err != nil {
			ctx.Splog.Error("%v", snailerrors.NewPullError(st.Name, err))
			proceed, cerr := ctx.Prompter.Confirm("Continue with the push anyway?", false)
			if cerr != nil {
				return false, cerr
			}
			if !proceed {
				return false, nil
			}
			continue
		}
		ctx.Splog.Success("Updated %s from %s", st.Name, st.Upstream)
	}
	return true, nil
}

// showOutgoing lists the commits and files about to be pushed
func showOutgoing(ctx *runtime.Context, branch, upstream string, ahead int) {
	splog := ctx.Splog
	splog.Info("%s ready to push from %s:", plural(ahead, "commit"), tui.ColorBranchName(branch, true))

	var commits []git.LogEntry
	var err error
	if upstream != "" {
		commits, err = ctx.Git.LogRange(ctx, upstream, "HEAD")
	} else {
		commits, err = ctx.Git.Log(ctx, ahead)
	}
	if err != nil {
		splog.Debug("Failed to list outgoing commits: %v", err)
	}
	for _, c := range commits {
		splog.Info("  %s %s", tui.ColorYellow(c.ShortHash()), c.Subject)
	}

	if files := ctx.Selection.Files(); len(files) > 0 {
		splog.Info("Files selected this session: %d", len(files))
	}

	var changed []string
	if upstream != "" {
		changed, err = ctx.Git.ChangedFiles(ctx, upstream, "HEAD")
	} else {
		err = snailerrors.ErrNoUpstream
	}
	if err != nil {
		splog.Info("Changed files: %s", tui.ColorDim("(unavailable)"))
		return
	}
	splog.Info("Changed files:")
	for _, f := range changed {
		splog.Info("  %s", f)
	}
}

// pushedHash prefers the hash reported by the push and falls back to HEAD
func pushedHash(ctx *runtime.Context, result *git.PushResult) string {
	if result != nil && result.Hash != "" {
		return git.ShortHash(result.Hash)
	}
	head, err := ctx.Git.HeadHash(ctx)
	if err != nil {
		ctx.Splog.Debug("Failed to read HEAD: %v", err)
		return "unknown"
	}
	return git.ShortHash(head)
}
