// Package actions provides the business logic behind snailgit's commands.
//
// The staging workflow runs in one direction, each step re-reading live
// repository state:
//
//	Classify → SelectFiles → StageFiles → CommitAction → PushAction
//
// Key patterns:
//   - Actions accept runtime.Context, which carries the git runner, Splog,
//     the prompter and the session selection
//   - Actions talk to the repository only through git.Runner
//   - Menus are loops over a selected state; no action calls itself
//
// Dependencies:
//   - git: repository access
//   - tui: logging, colors, prompts and progress
//   - config: per-repository settings
package actions
