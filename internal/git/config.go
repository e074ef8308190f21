package git

import (
	"context"
	"fmt"
)

// ConfigScope selects which git config file to read or write
type ConfigScope string

const (
	ConfigLocal  ConfigScope = "local"
	ConfigGlobal ConfigScope = "global"
)

func (r *realRunner) ConfigList(ctx context.Context, scope ConfigScope) (string, error) {
	output, err := r.cmd.Run(ctx, "config", "--"+string(scope), "--list")
	if err != nil {
		return "", fmt.Errorf("failed to read %s config: %w", scope, err)
	}
	return output, nil
}

// ConfigGet returns the value of key, or an empty string when unset
func (r *realRunner) ConfigGet(ctx context.Context, scope ConfigScope, key string) (string, error) {
	output, err := r.cmd.Run(ctx, "config", "--"+string(scope), "--default", "", "--get", key)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", key, err)
	}
	return output, nil
}

func (r *realRunner) ConfigSet(ctx context.Context, scope ConfigScope, key, value string) error {
	if _, err := r.cmd.Run(ctx, "config", "--"+string(scope), key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}
