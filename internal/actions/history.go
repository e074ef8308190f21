package actions

import (
	"fmt"
	"strconv"
	"strings"

	"snailgit.dev/snailgit/internal/config"
	"snailgit.dev/snailgit/internal/runtime"
	"snailgit.dev/snailgit/internal/tui"
)

// HistoryOptions contains options for the history view
type HistoryOptions struct {
	// Limit is the number of commits to show; zero asks the user
	Limit int
}

// HistoryAction prints the most recent commits
func HistoryAction(ctx *runtime.Context, opts HistoryOptions) error {
	limit := opts.Limit
	if limit == 0 {
		answer, err := ctx.Prompter.Input("How many commits?", strconv.Itoa(ctx.Config.HistoryLimitOrDefault()), validateHistoryLimit)
		if err != nil {
			return err
		}
		limit, _ = strconv.Atoi(strings.TrimSpace(answer))
	}
	if err := validateHistoryLimit(strconv.Itoa(limit)); err != nil {
		return err
	}

	entries, err := ctx.Git.Log(ctx, limit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		ctx.Splog.Info("No commits yet.")
		return nil
	}

	ctx.Splog.Info("Last %s:", plural(len(entries), "commit"))
	for _, e := range entries {
		ctx.Splog.Info("%s %s %s %s",
			tui.ColorYellow(e.ShortHash()), tui.ColorDim(e.Date), tui.ColorCyan(e.Author), e.Subject)
	}
	return nil
}

func validateHistoryLimit(value string) error {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 1 || n > config.MaxHistoryLimit {
		return fmt.Errorf("enter a number between 1 and %d", config.MaxHistoryLimit)
	}
	return nil
}
