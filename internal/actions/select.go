package actions

import (
	"errors"
	"fmt"

	snailerrors "snailgit.dev/snailgit/internal/errors"
	"snailgit.dev/snailgit/internal/runtime"
	"snailgit.dev/snailgit/internal/tui"
)

// SelectOptions controls the file selection prompt
type SelectOptions struct {
	// SelectAll pre-checks every unstaged entry
	SelectAll bool
}

// SelectFiles asks which files to stage. Staged entries are shown checked and
// cannot be unchecked. An empty selection is reported and asked again.
// The result holds every staged path followed by the chosen unstaged paths.
func SelectFiles(ctx *runtime.Context, entries []FileEntry, opts SelectOptions) ([]string, error) {
	for {
		chosen, err := ctx.Prompter.Checkbox("Select files to stage", checkboxItems(entries, opts.SelectAll))
		if err != nil {
			return nil, err
		}

		selection, err := buildSelection(entries, chosen)
		if err == nil {
			return selection, nil
		}
		if !errors.Is(err, snailerrors.ErrEmptySelection) {
			return nil, err
		}
		ctx.Splog.Warn("%s", err.Error())
	}
}

func checkboxItems(entries []FileEntry, selectAll bool) []tui.CheckboxItem {
	items := make([]tui.CheckboxItem, 0, len(entries))
	for _, e := range entries {
		item := tui.CheckboxItem{
			Label: fmt.Sprintf("%-9s %s", e.Kind, e.Path),
			Value: e.Path,
		}
		if e.Staged {
			item.Group = "Staged"
			item.Checked = true
			item.Locked = true
		} else {
			item.Group = "Changes"
			item.Checked = selectAll
		}
		items = append(items, item)
	}
	return items
}

// buildSelection keeps every staged path regardless of what was chosen
func buildSelection(entries []FileEntry, chosen []string) ([]string, error) {
	picked := make(map[string]bool, len(chosen))
	for _, path := range chosen {
		picked[path] = true
	}

	selection := stagedPaths(entries)
	for _, e := range entries {
		if !e.Staged && picked[e.Path] {
			selection = append(selection, e.Path)
		}
	}
	if len(selection) == 0 {
		return nil, &snailerrors.EmptySelectionError{}
	}
	return selection, nil
}
