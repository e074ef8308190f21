package actions

import (
	"fmt"

	"snailgit.dev/snailgit/internal/git"
	"snailgit.dev/snailgit/internal/runtime"
	"snailgit.dev/snailgit/internal/tui"
)

// StatusOptions contains options for the status command
type StatusOptions struct{}

// StatusAction prints the branch and the working tree state
func StatusAction(ctx *runtime.Context, _ StatusOptions) error {
	status, err := queryStatus(ctx)
	if err != nil {
		return err
	}
	printStatus(ctx, status)
	return nil
}

func printStatus(ctx *runtime.Context, status *git.Status) {
	splog := ctx.Splog

	switch {
	case status.Current == "":
		splog.Info("HEAD detached")
	case status.Tracking != "":
		splog.Info("On branch %s tracking %s (ahead %d, behind %d)",
			tui.ColorBranchName(status.Current, true), tui.ColorCyan(status.Tracking), status.Ahead, status.Behind)
	default:
		splog.Info("On branch %s (no upstream)", tui.ColorBranchName(status.Current, true))
	}

	if status.IsClean() {
		splog.Success("Working tree clean")
		return
	}

	section := func(title string, paths []string, marker string, color func(string) string) {
		if len(paths) == 0 {
			return
		}
		splog.Info("%s (%d):", title, len(paths))
		for _, p := range paths {
			splog.Info("  %s", color(marker+" "+p))
		}
	}

	section("Staged", status.Staged, "+", tui.ColorGreen)
	section("Modified", status.Modified, "~", tui.ColorYellow)
	section("Untracked", status.Untracked, "?", tui.ColorDim)
	section("Deleted", status.Deleted, "-", tui.ColorRed)
	renamed := make([]string, 0, len(status.Renamed))
	for _, r := range status.Renamed {
		renamed = append(renamed, fmt.Sprintf("%s → %s", r.From, r.To))
	}
	section("Renamed", renamed, "»", tui.ColorCyan)
	section("Conflicted", status.Conflicted, "!", tui.ColorRed)
}
