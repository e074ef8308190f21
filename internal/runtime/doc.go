// Package runtime provides the execution context for snailgit commands.
//
// It encapsulates the dependencies shared by actions: the git runner, the
// logger, the prompter, the repository configuration, and the files the user
// selected during the current session.
package runtime
