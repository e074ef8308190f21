package actions

import (
	snailerrors "snailgit.dev/snailgit/internal/errors"
	"snailgit.dev/snailgit/internal/runtime"
)

// StageFiles adds paths to the index one at a time, skipping paths that are
// already staged. The first failure stops staging and clears the session
// selection.
func StageFiles(ctx *runtime.Context, paths []string, showStatus bool) error {
	status, err := queryStatus(ctx)
	if err != nil {
		return err
	}

	seen := make(map[string]bool, len(paths))
	var pending []string
	for _, path := range paths {
		if seen[path] || status.IsStaged(path) {
			continue
		}
		seen[path] = true
		pending = append(pending, path)
	}

	if len(pending) == 0 {
		ctx.Splog.Info("Selected files are already staged.")
	}
	for _, path := range pending {
		if err := ctx.Git.Add(ctx, path); err != nil {
			ctx.Selection.Reset()
			return snailerrors.NewStagingError(path, err)
		}
		ctx.Splog.Success("Staged %s", path)
	}

	if showStatus {
		ctx.Splog.Newline()
		return StatusAction(ctx, StatusOptions{})
	}
	return nil
}
