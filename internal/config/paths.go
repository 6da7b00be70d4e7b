package config

import (
	"os"
	"path/filepath"
)

// AppName names the configuration directories.
const AppName = "spec-kit-assistant"

// UserConfigPath returns the path to the user-level config file.
// This follows the platform config directory:
// - Linux: ~/.config/spec-kit-assistant/config.yml
// - macOS: ~/Library/Application Support/spec-kit-assistant/config.yml
// - Windows: %APPDATA%\spec-kit-assistant\config.yml
//
// If XDG_CONFIG_HOME is set, it will be respected on Linux.
func UserConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, AppName, "config.yml"), nil
}

// ProjectConfigPath returns the project-level config file relative to the project directory.
func ProjectConfigPath() string {
	return filepath.Join(ProjectConfigDir(), "config.yml")
}

// ProjectConfigDir returns the project-level config directory name.
func ProjectConfigDir() string {
	return "." + AppName
}

// LegacyProjectConfigPath returns the JSON project config relative to the project directory.
func LegacyProjectConfigPath() string {
	return filepath.Join(ProjectConfigDir(), "config.json")
}
