package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

const (
	// DefaultRemote is used when no remote is configured
	DefaultRemote = "origin"
	// DefaultHistoryLimit is the number of commits shown by the history view
	DefaultHistoryLimit = 10
	// MaxHistoryLimit bounds the history view
	MaxHistoryLimit = 100
)

// Keys accepted by GetValue and SetValue
const (
	KeyRemote             = "remote"
	KeyHistoryLimit       = "history.limit"
	KeyShowStatusAfterAdd = "status.afterAdd"
)

// RepoConfig represents the repository configuration
type RepoConfig struct {
	Remote             *string `json:"remote,omitempty"`
	HistoryLimit       *int    `json:"historyLimit,omitempty"`
	ShowStatusAfterAdd *bool   `json:"showStatusAfterAdd,omitempty"`
}

func configPath(repoRoot string) string {
	return filepath.Join(repoRoot, ".git", ".snailgit_config")
}

// GetRepoConfig reads the repository configuration.
// A missing file yields an empty configuration.
func GetRepoConfig(repoRoot string) (*RepoConfig, error) {
	data, err := os.ReadFile(configPath(repoRoot))
	if err != nil {
		if os.IsNotExist(err) {
			return &RepoConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read repo config: %w", err)
	}

	var config RepoConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse repo config: %w", err)
	}
	return &config, nil
}

// Save writes the configuration back to the repository
func (c *RepoConfig) Save(repoRoot string) error {
	configJSON, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(configPath(repoRoot), configJSON, 0600)
}

// RemoteName returns the remote to push to
func (c *RepoConfig) RemoteName() string {
	if c.Remote != nil && *c.Remote != "" {
		return *c.Remote
	}
	return DefaultRemote
}

// HistoryLimitOrDefault returns the number of commits the history view shows
func (c *RepoConfig) HistoryLimitOrDefault() int {
	if c.HistoryLimit != nil && *c.HistoryLimit > 0 {
		return min(*c.HistoryLimit, MaxHistoryLimit)
	}
	return DefaultHistoryLimit
}

// ShowStatusAfterAddOrDefault reports whether status is shown after staging
func (c *RepoConfig) ShowStatusAfterAddOrDefault() bool {
	if c.ShowStatusAfterAdd != nil {
		return *c.ShowStatusAfterAdd
	}
	return true
}

// Keys returns the supported configuration keys, sorted
func Keys() []string {
	keys := []string{KeyRemote, KeyHistoryLimit, KeyShowStatusAfterAdd}
	sort.Strings(keys)
	return keys
}

// GetValue returns the effective value of key as a string
func (c *RepoConfig) GetValue(key string) (string, error) {
	switch key {
	case KeyRemote:
		return c.RemoteName(), nil
	case KeyHistoryLimit:
		return strconv.Itoa(c.HistoryLimitOrDefault()), nil
	case KeyShowStatusAfterAdd:
		return strconv.FormatBool(c.ShowStatusAfterAddOrDefault()), nil
	default:
		return "", unknownKeyError(key)
	}
}

// SetValue parses value and stores it under key
func (c *RepoConfig) SetValue(key, value string) error {
	switch key {
	case KeyRemote:
		value = strings.TrimSpace(value)
		if value == "" {
			return fmt.Errorf("remote cannot be empty")
		}
		c.Remote = &value
	case KeyHistoryLimit:
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 || n > MaxHistoryLimit {
			return fmt.Errorf("history.limit must be a number between 1 and %d", MaxHistoryLimit)
		}
		c.HistoryLimit = &n
	case KeyShowStatusAfterAdd:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("status.afterAdd must be true or false")
		}
		c.ShowStatusAfterAdd = &b
	default:
		return unknownKeyError(key)
	}
	return nil
}

func unknownKeyError(key string) error {
	return fmt.Errorf("unknown config key %q (valid keys: %s)", key, strings.Join(Keys(), ", "))
}
