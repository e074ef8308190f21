// Package errors provides sentinel errors and custom error types for snailgit.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions
var (
	// ErrNotARepository indicates the working directory is not inside a git repository
	ErrNotARepository = errors.New("not a git repository")

	// ErrRepositoryAccess is matched by every RepositoryAccessError
	ErrRepositoryAccess = errors.New("repository access failed")

	// ErrEmptySelection indicates the user confirmed a file selection with nothing in it
	ErrEmptySelection = errors.New("empty selection")

	// ErrCanceled indicates the user aborted a prompt
	ErrCanceled = errors.New("canceled")

	// ErrNothingStaged indicates a commit was requested against an empty index
	ErrNothingStaged = errors.New("nothing staged")

	// ErrNoUpstream indicates the current branch has no tracking branch
	ErrNoUpstream = errors.New("no upstream branch")

	// ErrStagingFailed, ErrCommitFailed, ErrPullFailed and ErrPushFailed
	// are matched by the corresponding typed errors.
	ErrStagingFailed = errors.New("staging failed")
	ErrCommitFailed  = errors.New("commit failed")
	ErrPullFailed    = errors.New("pull failed")
	ErrPushFailed    = errors.New("push failed")
)

// RepositoryAccessError is returned when the repository cannot be opened or queried
type RepositoryAccessError struct {
	Path string
	Err  error
}

func (e *RepositoryAccessError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("cannot access repository at %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("cannot access repository: %v", e.Err)
}

func (e *RepositoryAccessError) Unwrap() error {
	return e.Err
}

// Is matches ErrRepositoryAccess, and ErrNotARepository only when git
// reported that the path is outside any repository.
func (e *RepositoryAccessError) Is(target error) bool {
	switch target {
	case ErrRepositoryAccess:
		return true
	case ErrNotARepository:
		return e.Err != nil && strings.Contains(e.Err.Error(), ErrNotARepository.Error())
	}
	return false
}

// NewRepositoryAccessError creates a new RepositoryAccessError
func NewRepositoryAccessError(path string, err error) *RepositoryAccessError {
	return &RepositoryAccessError{Path: path, Err: err}
}

// EmptySelectionError is reported when a checkbox prompt is confirmed with
// no staged files and no chosen files.
type EmptySelectionError struct{}

func (e *EmptySelectionError) Error() string {
	return "select at least one file"
}

// Is returns true if the target error is ErrEmptySelection
func (e *EmptySelectionError) Is(target error) bool {
	return target == ErrEmptySelection
}

// StagingError represents a failure to add a single path to the index
type StagingError struct {
	Path string
	Err  error
}

func (e *StagingError) Error() string {
	return fmt.Sprintf("failed to stage %s: %v", e.Path, e.Err)
}

func (e *StagingError) Unwrap() error {
	return e.Err
}

// Is returns true if the target error is ErrStagingFailed
func (e *StagingError) Is(target error) bool {
	return target == ErrStagingFailed
}

// NewStagingError creates a new StagingError
func NewStagingError(path string, err error) *StagingError {
	return &StagingError{Path: path, Err: err}
}

// CommitError represents a rejected commit (empty index, hook failure, ...)
type CommitError struct {
	Err error
}

func (e *CommitError) Error() string {
	return fmt.Sprintf("commit failed: %v", e.Err)
}

func (e *CommitError) Unwrap() error {
	return e.Err
}

// Is returns true if the target error is ErrCommitFailed
func (e *CommitError) Is(target error) bool {
	return target == ErrCommitFailed
}

// NewCommitError creates a new CommitError
func NewCommitError(err error) *CommitError {
	return &CommitError{Err: err}
}

// PullError represents a failed reconciliation pull of one branch
type PullError struct {
	Branch string
	Err    error
}

func (e *PullError) Error() string {
	return fmt.Sprintf("failed to pull %s: %v", e.Branch, e.Err)
}

func (e *PullError) Unwrap() error {
	return e.Err
}

// Is returns true if the target error is ErrPullFailed
func (e *PullError) Is(target error) bool {
	return target == ErrPullFailed
}

// NewPullError creates a new PullError
func NewPullError(branch string, err error) *PullError {
	return &PullError{Branch: branch, Err: err}
}

// PushError represents a failed push. Repository state is left as git left it.
type PushError struct {
	Err error
}

func (e *PushError) Error() string {
	return fmt.Sprintf("push failed: %v", e.Err)
}

func (e *PushError) Unwrap() error {
	return e.Err
}

// Is returns true if the target error is ErrPushFailed
func (e *PushError) Is(target error) bool {
	return target == ErrPushFailed
}

// NewPushError creates a new PushError
func NewPushError(err error) *PushError {
	return &PushError{Err: err}
}

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("%s %s", e.Command, strings.Join(e.Args, " "))
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += ": " + stderr
	} else if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}
