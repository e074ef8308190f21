package actions

import (
	"fmt"
	"strings"

	"snailgit.dev/snailgit/internal/runtime"
	"snailgit.dev/snailgit/internal/tui"
)

func remoteMenu() menu {
	return subMenu("Remotes",
		menuEntry{Label: "📋 List remotes", Value: "list", Run: listRemotes},
		menuEntry{Label: "➕ Add remote", Value: "add", Run: addRemote},
		menuEntry{Label: "✏️  Rename remote", Value: "rename", Run: renameRemote},
		menuEntry{Label: "🗑️  Remove remote", Value: "remove", Run: removeRemote},
	)
}

func listRemotes(ctx *runtime.Context) error {
	remotes, err := ctx.Git.Remotes(ctx)
	if err != nil {
		return err
	}
	if len(remotes) == 0 {
		ctx.Splog.Warn("No remotes configured")
		return nil
	}
	for _, r := range remotes {
		ctx.Splog.Info("%s  %s", tui.ColorCyan(r.Name), strings.Join(r.URLs, ", "))
	}
	return nil
}

func addRemote(ctx *runtime.Context) error {
	name, err := ctx.Prompter.Input("Remote name:", "", validateRequired("remote name"))
	if err != nil {
		return err
	}
	url, err := ctx.Prompter.Input("Remote URL:", "", validateRequired("remote URL"))
	if err != nil {
		return err
	}
	if err := ctx.Git.AddRemote(ctx, strings.TrimSpace(name), strings.TrimSpace(url)); err != nil {
		return err
	}
	ctx.Splog.Success("Added remote %s", name)
	return nil
}

// promptRemote asks for a configured remote; ok is false when there are none
func promptRemote(ctx *runtime.Context, message string) (name string, ok bool, err error) {
	remotes, err := ctx.Git.Remotes(ctx)
	if err != nil {
		return "", false, err
	}
	if len(remotes) == 0 {
		ctx.Splog.Warn("No remotes configured")
		return "", false, nil
	}
	options := make([]tui.SelectOption, len(remotes))
	for i, r := range remotes {
		options[i] = tui.SelectOption{Label: r.Name, Value: r.Name}
	}
	name, err = ctx.Prompter.Select(message, options, "")
	if err != nil {
		return "", false, err
	}
	return name, true, nil
}

func renameRemote(ctx *runtime.Context) error {
	oldName, ok, err := promptRemote(ctx, "Rename which remote?")
	if err != nil || !ok {
		return err
	}
	newName, err := ctx.Prompter.Input("New name:", "", validateRequired("remote name"))
	if err != nil {
		return err
	}
	if err := ctx.Git.RenameRemote(ctx, oldName, strings.TrimSpace(newName)); err != nil {
		return err
	}
	ctx.Splog.Success("Renamed remote %s to %s", oldName, newName)
	return nil
}

func removeRemote(ctx *runtime.Context) error {
	name, ok, err := promptRemote(ctx, "Remove which remote?")
	if err != nil || !ok {
		return err
	}
	confirmed, err := ctx.Prompter.Confirm(fmt.Sprintf("Remove remote %s?", name), false)
	if err != nil || !confirmed {
		return err
	}
	if err := ctx.Git.RemoveRemote(ctx, name); err != nil {
		return err
	}
	ctx.Splog.Success("Removed remote %s", name)
	return nil
}
