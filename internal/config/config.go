// Package config provides layered configuration for spec-kit-assistant using koanf.
// Configuration is loaded with priority: --config file > environment variables (SKA_*)
// > project config (.spec-kit-assistant/config.yml) > user config
// (<user config dir>/spec-kit-assistant/config.yml) > defaults. A legacy JSON project
// config (.spec-kit-assistant/config.json) is read when no YAML project config exists.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment variable read by LoadWithOptions.
const EnvPrefix = "SKA_"

// Configuration represents the spec-kit-assistant CLI configuration
type Configuration struct {
	// Namespace is the directory under .claude/commands that holds the commands.
	Namespace string `koanf:"namespace"`
	// SourceDir installs commands from a directory instead of the bundled set.
	SourceDir string `koanf:"source_dir"`
	// SkipConfirmations answers yes to overwrite/remove prompts (also SKA_YES).
	SkipConfirmations bool `koanf:"skip_confirmations"`
	// Debug enables debug logging on stderr.
	Debug bool `koanf:"debug"`

	Validation ValidationConfig `koanf:"validation"`
}

// ValidationConfig tunes the command file validator.
type ValidationConfig struct {
	MinLength int    `koanf:"min_length" json:"min_length"`
	Branding  string `koanf:"branding" json:"branding"`
}

// LoadOptions configures how configuration is loaded
type LoadOptions struct {
	// ConfigPath is an explicit config file (--config). It must exist.
	ConfigPath string
	// ProjectDir is where the project config is looked up (default: current directory).
	ProjectDir string
	// UserConfigPath overrides the user config location (default: UserConfigPath()).
	UserConfigPath string
	// WarningWriter receives deprecation warnings (default: os.Stderr)
	WarningWriter io.Writer
	// SkipWarnings suppresses deprecation warnings
	SkipWarnings bool
}

// LoadWithOptions loads configuration with custom options
func LoadWithOptions(opts LoadOptions) (*Configuration, error) {
	k := koanf.New(".")
	warningWriter := getWarningWriter(opts.WarningWriter)

	loadDefaults(k)

	if err := loadUserConfig(k, opts.UserConfigPath); err != nil {
		return nil, err
	}

	if err := loadProjectConfig(k, opts.ProjectDir, warningWriter, opts.SkipWarnings); err != nil {
		return nil, err
	}

	if err := loadEnvironmentConfig(k); err != nil {
		return nil, err
	}

	if opts.ConfigPath != "" {
		if !fileExists(opts.ConfigPath) {
			return nil, fmt.Errorf("config file not found: %s", opts.ConfigPath)
		}
		if err := loadYAMLConfig(k, opts.ConfigPath, "explicit"); err != nil {
			return nil, err
		}
	}

	return finalizeConfig(k)
}

// getWarningWriter returns the warning writer or defaults to stderr
func getWarningWriter(w io.Writer) io.Writer {
	if w == nil {
		return os.Stderr
	}
	return w
}

// loadDefaults applies default configuration values
func loadDefaults(k *koanf.Koanf) {
	for key, value := range GetDefaults() {
		k.Set(key, value)
	}
}

// loadUserConfig loads the user-level YAML config when present.
func loadUserConfig(k *koanf.Koanf, override string) error {
	path := override
	if path == "" {
		var err error
		if path, err = UserConfigPath(); err != nil {
			// No user config dir (e.g. HOME unset): defaults still apply.
			return nil
		}
	}
	if !fileExists(path) {
		return nil
	}
	if err := loadYAMLConfig(k, path, "user"); err != nil {
		return fmt.Errorf("loading user YAML config: %w", err)
	}
	return nil
}

// loadProjectConfig loads project-level config (YAML preferred, legacy JSON supported).
func loadProjectConfig(k *koanf.Koanf, projectDir string, warningWriter io.Writer, skipWarnings bool) error {
	yamlPath := filepath.Join(projectDir, ProjectConfigPath())
	jsonPath := filepath.Join(projectDir, LegacyProjectConfigPath())

	yamlExists := fileExists(yamlPath)
	jsonExists := fileExists(jsonPath)

	switch {
	case yamlExists:
		if err := loadYAMLConfig(k, yamlPath, "project"); err != nil {
			return fmt.Errorf("loading project YAML config: %w", err)
		}
		if jsonExists && !skipWarnings {
			fmt.Fprintf(warningWriter, "Warning: JSON config found at %s (ignored, using %s)\n\n", jsonPath, yamlPath)
		}
	case jsonExists:
		if err := k.Load(file.Provider(jsonPath), json.Parser()); err != nil {
			return fmt.Errorf("failed to load project config %s: %w", jsonPath, err)
		}
		if !skipWarnings {
			fmt.Fprintf(warningWriter, "Warning: Using JSON config at %s\n", jsonPath)
			fmt.Fprintf(warningWriter, "  Consider converting it to %s.\n\n", yamlPath)
		}
	}
	return nil
}

// loadYAMLConfig validates and loads a YAML config file
func loadYAMLConfig(k *koanf.Koanf, path, configType string) error {
	if err := ValidateYAMLSyntax(path); err != nil {
		return fmt.Errorf("validating YAML syntax for %s config: %w", configType, err)
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("failed to load %s config %s: %w", configType, path, err)
	}
	return nil
}

// loadEnvironmentConfig loads environment variable overrides
func loadEnvironmentConfig(k *koanf.Koanf) error {
	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return fmt.Errorf("failed to load environment config: %w", err)
	}
	return nil
}

// finalizeConfig unmarshals, validates, and applies final transformations
func finalizeConfig(k *koanf.Koanf) (*Configuration, error) {
	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	cfg.SourceDir = expandHomePath(cfg.SourceDir)

	if v := os.Getenv(EnvPrefix + "YES"); v != "" {
		yes, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %sYES value %q: %w", EnvPrefix, v, err)
		}
		if yes {
			cfg.SkipConfirmations = true
		}
	}

	return &cfg, nil
}

// fileExists returns true if the file exists and is readable
func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// envTransform converts environment variable names to config keys
// Example: SKA_SOURCE_DIR -> source_dir, SKA_VALIDATION_MIN_LENGTH -> validation.min_length
func envTransform(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	if rest, ok := strings.CutPrefix(key, "validation_"); ok {
		return "validation." + rest
	}
	return key
}

// expandHomePath expands ~ to the user's home directory
func expandHomePath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(homeDir, path[2:])
		}
	}
	return path
}
