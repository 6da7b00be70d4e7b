package config

// GetDefaultConfigTemplate returns a fully commented config template
// that helps users understand all available options
func GetDefaultConfigTemplate() string {
	return `# Spec Kit Assistant configuration

namespace: spec-kit-assistant         # Directory under .claude/commands
source_dir: ""                        # Install from this directory instead of the bundled commands
skip_confirmations: false             # Answer yes to overwrite/remove prompts
debug: false                          # Debug logging on stderr

# Command file validation
validation:
  min_length: 500                     # Warn when a command is shorter (characters)
  branding: Spec Kit Assistant        # Warn when this text is missing
`
}

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"namespace":          "spec-kit-assistant",
		"source_dir":         "",
		"skip_confirmations": false,
		"debug":              false,
		"validation": map[string]interface{}{
			"min_length": 500,
			"branding":   "Spec Kit Assistant",
		},
	}
}
