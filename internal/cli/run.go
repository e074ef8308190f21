package cli

import (
	"errors"

	"github.com/spf13/cobra"

	snailerrors "snailgit.dev/snailgit/internal/errors"
	"snailgit.dev/snailgit/internal/runtime"
	"snailgit.dev/snailgit/internal/tui"
)

// run opens a session context for cmd and hands it to fn.
// A prompt canceled with Ctrl+C ends the command without an error.
func run(cmd *cobra.Command, cwd string, base runtime.Options, fn func(ctx *runtime.Context) error) error {
	opts := base
	if cwd != "" {
		opts.Dir = cwd
	}
	if opts.Splog == nil {
		splog, err := tui.NewSplogWithFile(tui.GetLogFilePath())
		if err != nil {
			splog = tui.NewSplog()
			splog.Debug("Logging to the console only: %v", err)
		}
		defer func() { _ = splog.Close() }()
		opts.Splog = splog
	}

	ctx := runtime.NewContext(cmd.Context(), opts)
	if err := ctx.Open(); err != nil {
		return err
	}
	ctx.Splog.Debug("snailgit %s in %s", cmd.CommandPath(), ctx.RepoRoot)

	err := fn(ctx)
	if errors.Is(err, snailerrors.ErrCanceled) {
		ctx.Splog.Info("Canceled")
		return nil
	}
	return err
}
