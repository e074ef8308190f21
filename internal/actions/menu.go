package actions

import (
	"errors"

	snailerrors "snailgit.dev/snailgit/internal/errors"
	"snailgit.dev/snailgit/internal/runtime"
	"snailgit.dev/snailgit/internal/tui"
)

const (
	menuBack = "back"
	menuExit = "exit"
)

// menuEntry is one choice of a menu and the action it runs
type menuEntry struct {
	Label string
	Value string
	Run   func(ctx *runtime.Context) error
}

// menu is a loop over the selected entry; choosing the exit value ends it
type menu struct {
	Title     string
	Entries   []menuEntry
	ExitValue string
	ExitLabel string
}

func (m menu) options() []tui.SelectOption {
	options := make([]tui.SelectOption, 0, len(m.Entries)+1)
	for _, e := range m.Entries {
		options = append(options, tui.SelectOption{Label: e.Label, Value: e.Value})
	}
	return append(options, tui.SelectOption{Label: m.ExitLabel, Value: m.ExitValue})
}

func (m menu) entry(value string) (menuEntry, bool) {
	for _, e := range m.Entries {
		if e.Value == value {
			return e, true
		}
	}
	return menuEntry{}, false
}

// run shows the menu until the exit entry is chosen or the prompt is
// interrupted. Errors from entries are reported and the menu is shown again.
func (m menu) run(ctx *runtime.Context) error {
	options := m.options()
	for {
		choice, err := ctx.Prompter.Select(m.Title, options, "")
		if err != nil {
			if errors.Is(err, snailerrors.ErrCanceled) {
				return nil
			}
			return err
		}
		if choice == m.ExitValue {
			return nil
		}

		entry, ok := m.entry(choice)
		if !ok {
			continue
		}
		if err := entry.Run(ctx); err != nil {
			reportMenuError(ctx, err)
		}
		ctx.Splog.Newline()
	}
}

func reportMenuError(ctx *runtime.Context, err error) {
	if errors.Is(err, snailerrors.ErrCanceled) {
		ctx.Splog.Info("Canceled.")
		return
	}
	ctx.Splog.Error("%v", err)
}

func subMenu(title string, entries ...menuEntry) menu {
	return menu{Title: title, Entries: entries, ExitValue: menuBack, ExitLabel: "↩️  Back"}
}

func mainMenu() menu {
	return menu{
		Title: "What would you like to do?",
		Entries: []menuEntry{
			{Label: "📊 Show status", Value: "status", Run: func(ctx *runtime.Context) error {
				return StatusAction(ctx, StatusOptions{})
			}},
			{Label: "➕ Stage files", Value: "add", Run: func(ctx *runtime.Context) error {
				return AddAction(ctx, AddOptions{ShowStatus: ctx.Config.ShowStatusAfterAddOrDefault()})
			}},
			{Label: "📝 Commit staged changes", Value: "commit", Run: func(ctx *runtime.Context) error {
				_, err := CommitAction(ctx, CommitOptions{})
				return err
			}},
			{Label: "📤 Push", Value: "push", Run: func(ctx *runtime.Context) error {
				_, err := PushAction(ctx, PushOptions{})
				return err
			}},
			{Label: "🔍 Check remote branches", Value: "check-remote", Run: func(ctx *runtime.Context) error {
				return CheckRemoteAction(ctx, CheckRemoteOptions{})
			}},
			{Label: "🌿 Branches", Value: "branches", Run: func(ctx *runtime.Context) error {
				return branchMenu().run(ctx)
			}},
			{Label: "📜 History", Value: "history", Run: func(ctx *runtime.Context) error {
				return HistoryAction(ctx, HistoryOptions{})
			}},
			{Label: "💾 Stash", Value: "stash", Run: func(ctx *runtime.Context) error {
				return stashMenu().run(ctx)
			}},
			{Label: "🏷️  Tags", Value: "tags", Run: func(ctx *runtime.Context) error {
				return tagMenu().run(ctx)
			}},
			{Label: "🌐 Remotes", Value: "remote", Run: func(ctx *runtime.Context) error {
				return remoteMenu().run(ctx)
			}},
			{Label: "⚙️  Config", Value: "config", Run: func(ctx *runtime.Context) error {
				return configMenu().run(ctx)
			}},
			{Label: "↩️  Undo", Value: "undo", Run: func(ctx *runtime.Context) error {
				return undoMenu().run(ctx)
			}},
			{Label: "🛠️  Advanced tools", Value: "advanced", Run: func(ctx *runtime.Context) error {
				return advancedMenu().run(ctx)
			}},
		},
		ExitValue: menuExit,
		ExitLabel: "🚪 Exit",
	}
}

// MenuOptions contains options for the interactive session
type MenuOptions struct{}

// MenuAction runs the interactive session until the user exits
func MenuAction(ctx *runtime.Context, _ MenuOptions) error {
	ctx.Splog.Info("🐌 %s", tui.Bold("snailgit: interactive git"))
	ctx.Splog.Newline()

	if err := mainMenu().run(ctx); err != nil {
		return err
	}
	ctx.Splog.Info("Bye! 👋")
	return nil
}

func advancedMenu() menu {
	notYet := func(name string) func(*runtime.Context) error {
		return func(ctx *runtime.Context) error {
			ctx.Splog.Warn("%s is not available yet.", name)
			return nil
		}
	}
	return subMenu("Advanced tools",
		menuEntry{Label: "🔄 Interactive rebase", Value: "rebase", Run: notYet("Interactive rebase")},
		menuEntry{Label: "🍒 Cherry-pick", Value: "cherry-pick", Run: notYet("Cherry-pick")},
		menuEntry{Label: "🔍 Bisect", Value: "bisect", Run: notYet("Bisect")},
	)
}
