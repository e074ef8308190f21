// Package git provides low-level Git operations.
//
// It wraps git command execution and provides a Go-friendly interface for:
//   - Working tree state (porcelain status, staging, undo)
//   - Commit operations and history
//   - Branch, stash, tag and remote management
//   - Remote synchronisation (fetch, pull, push)
//
// Mutations and status queries run the git binary. Read-only metadata
// (repository discovery, refs, history) is read through go-git.
//
// This package should be the only place where direct git commands are executed.
package git
