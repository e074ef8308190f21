// Package testhelpers provides testing utilities for snailgit, including
// temporary git repositories, a scriptable fake runner and a scripted prompter.
package testhelpers

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// Must is a generic helper function that panics if err is not nil,
// otherwise returns the value. Useful in test setup code.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// ExpectStaged asserts that the index holds exactly the expected paths.
func ExpectStaged(t *testing.T, repo *GitRepo, expected []string) {
	t.Helper()

	staged, err := repo.StagedFiles()
	require.NoError(t, err, "Failed to list staged files")

	sort.Strings(staged)
	sorted := append([]string{}, expected...)
	sort.Strings(sorted)
	require.Equal(t, sorted, staged, "Staged files do not match")
}

// ExpectLastCommitMessage asserts the message of HEAD.
func ExpectLastCommitMessage(t *testing.T, repo *GitRepo, expected string) {
	t.Helper()

	message, err := repo.LastCommitMessage()
	require.NoError(t, err, "Failed to read HEAD message")
	require.Equal(t, expected, message)
}
