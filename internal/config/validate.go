package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

// ValidationError points at a problem in a config file.
type ValidationError struct {
	FilePath string
	// Line is 1-based; 0 when the parser reported no position.
	Line    int
	Message string
}

func (e *ValidationError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", e.FilePath, e.Line, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.FilePath, e.Message)
}

// ValidateYAMLSyntax parses the file at filePath as YAML. A missing or blank
// file is accepted since defaults then apply.
func ValidateYAMLSyntax(filePath string) error {
	data, err := os.ReadFile(filePath)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return nil
	case errors.Is(err, os.ErrPermission):
		return &ValidationError{FilePath: filePath, Message: "permission denied"}
	case err != nil:
		return &ValidationError{FilePath: filePath, Message: err.Error()}
	}
	return ValidateYAMLSyntaxFromBytes(data, filePath)
}

// ValidateYAMLSyntaxFromBytes is ValidateYAMLSyntax for in-memory content.
func ValidateYAMLSyntaxFromBytes(data []byte, filePath string) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	var node yaml.Node
	err := yaml.Unmarshal(data, &node)
	if err == nil {
		return nil
	}

	var typeErr *yaml.TypeError
	if errors.As(err, &typeErr) {
		return &ValidationError{FilePath: filePath, Message: strings.Join(typeErr.Errors, "; ")}
	}
	line, msg := splitYAMLError(err.Error())
	return &ValidationError{FilePath: filePath, Line: line, Message: msg}
}

// yamlLinePrefix matches the "yaml: line N: " prefix of yaml.v3 parse errors.
var yamlLinePrefix = regexp.MustCompile(`^yaml: line (\d+): `)

// splitYAMLError separates the line number from a yaml.v3 error message.
func splitYAMLError(msg string) (int, string) {
	m := yamlLinePrefix.FindStringSubmatch(msg)
	if m == nil {
		return 0, strings.TrimPrefix(msg, "yaml: ")
	}
	line, _ := strconv.Atoi(m[1])
	return line, msg[len(m[0]):]
}

// Validate checks configuration values.
func (c *Configuration) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Namespace, validation.Required, validation.By(isPlainDirName)),
		validation.Field(&c.Validation),
	)
}

// Validate checks validator thresholds.
func (v ValidationConfig) Validate() error {
	return validation.ValidateStruct(&v,
		validation.Field(&v.MinLength, validation.Min(0)),
	)
}

// isPlainDirName rejects names that would escape .claude/commands.
func isPlainDirName(value interface{}) error {
	s, _ := value.(string)
	if s == "." || s == ".." || strings.ContainsAny(s, `/\`) {
		return errors.New("must be a single directory name")
	}
	return nil
}
