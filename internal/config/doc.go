// Package config manages snailgit's per-repository settings.
//
// Settings live as JSON in .git/.snailgit_config and are all optional;
// accessors fall back to defaults when a key is unset.
package config
