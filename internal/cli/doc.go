// Package cli wires the snailgit command line onto the actions package.
package cli
