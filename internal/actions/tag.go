package actions

import (
	"fmt"
	"strings"

	"snailgit.dev/snailgit/internal/runtime"
	"snailgit.dev/snailgit/internal/tui"
)

func tagMenu() menu {
	return subMenu("Tags",
		menuEntry{Label: "🏷️  Create tag", Value: "create", Run: createTag},
		menuEntry{Label: "📋 List tags", Value: "list", Run: listTags},
		menuEntry{Label: "🗑️  Delete tag", Value: "delete", Run: deleteTag},
		menuEntry{Label: "📤 Push tags to remote", Value: "push", Run: pushTags},
	)
}

func createTag(ctx *runtime.Context) error {
	name, err := ctx.Prompter.Input("Tag name:", "", ValidateTagName)
	if err != nil {
		return err
	}
	message, err := ctx.Prompter.Input("Annotation (optional, empty for a lightweight tag):", "", nil)
	if err != nil {
		return err
	}
	if err := ctx.Git.CreateTag(ctx, name, strings.TrimSpace(message)); err != nil {
		return err
	}
	ctx.Splog.Success("Created tag %s", name)
	return nil
}

func listTags(ctx *runtime.Context) error {
	tags, err := ctx.Git.Tags(ctx)
	if err != nil {
		return err
	}
	if len(tags) == 0 {
		ctx.Splog.Warn("No tags")
		return nil
	}
	for _, t := range tags {
		ctx.Splog.Info("  %s", t)
	}
	return nil
}

func deleteTag(ctx *runtime.Context) error {
	tags, err := ctx.Git.Tags(ctx)
	if err != nil {
		return err
	}
	if len(tags) == 0 {
		ctx.Splog.Warn("No tags")
		return nil
	}
	options := make([]tui.SelectOption, len(tags))
	for i, t := range tags {
		options[i] = tui.SelectOption{Label: t, Value: t}
	}
	name, err := ctx.Prompter.Select("Delete which tag?", options, "")
	if err != nil {
		return err
	}
	confirmed, err := ctx.Prompter.Confirm(fmt.Sprintf("Delete tag %s?", name), false)
	if err != nil || !confirmed {
		return err
	}
	if err := ctx.Git.DeleteTag(ctx, name); err != nil {
		return err
	}
	ctx.Splog.Success("Deleted tag %s", name)
	return nil
}

func pushTags(ctx *runtime.Context) error {
	remote := ctx.Remote()
	err := tui.RunWithSpinner(fmt.Sprintf("Pushing tags to %s...", remote), func() error {
		return ctx.Git.PushTags(ctx, remote)
	})
	if err != nil {
		return err
	}
	ctx.Splog.Success("Pushed tags to %s", remote)
	return nil
}
