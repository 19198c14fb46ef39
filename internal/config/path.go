// Package config loads tend settings from viper and resolves config paths.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultConfigDir is where tend looks for config.yaml when --config is unset.
const DefaultConfigDir = "~/.config/tend"

// ExpandPath expands a leading ~ and any $VAR references in path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
		}
	}

	return os.ExpandEnv(path)
}
