// SPDX-FileCopyrightText: 2025 The Algolab Authors
// SPDX-License-Identifier: EUPL-1.2

package config

import (
	"os"
	"path/filepath"
)

const (
	appName  = "algolab"
	fileName = "config.toml"
)

// GetXDGConfigHome returns XDG config directory.
func GetXDGConfigHome() string {
	return GetXDGConfigHomeWithEnv(os.Getenv("XDG_CONFIG_HOME"))
}

// GetXDGConfigHomeWithEnv returns XDG config directory with custom environment override for testing.
func GetXDGConfigHomeWithEnv(xdgConfigHome string) string {
	if xdgConfigHome != "" {
		return xdgConfigHome
	}

	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config")
	}

	return ""
}

// DefaultPath returns the config file location.
func DefaultPath() string {
	return DefaultPathWithEnv(os.Getenv("XDG_CONFIG_HOME"))
}

// DefaultPathWithEnv returns the config file location for a given XDG_CONFIG_HOME.
func DefaultPathWithEnv(xdgConfigHome string) string {
	return filepath.Join(GetXDGConfigHomeWithEnv(xdgConfigHome), appName, fileName)
}
