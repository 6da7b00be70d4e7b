package errors

import "fmt"

// Common error messages for the spec-kit-assistant CLI.
// These templates keep wording and remediation consistent across commands.

// ConflictingScopeFlags creates an error for --project combined with --global.
func ConflictingScopeFlags(command string) *CLIError {
	return NewArgumentErrorWithUsage(
		"--project and --global cannot be used together",
		fmt.Sprintf("spec-kit-assistant %s [directory] [--project | --global]", command),
		"Pick one installation scope",
		"Omit both flags to use the project scope",
	)
}

// WatchNeedsDirectory creates an error for validate --watch without a directory.
func WatchNeedsDirectory(commandPath string) *CLIError {
	return NewArgumentErrorWithUsage(
		"--watch needs a directory to watch",
		commandPath+" <directory> --watch",
		"Pass the directory holding your command files",
	)
}

// SourceCommandsNotFound creates an error when the command sources are missing or empty.
func SourceCommandsNotFound(source string, err error) *CLIError {
	return NewNotFoundError(
		fmt.Sprintf("no command files found in %s", source),
		"Reinstall spec-kit-assistant to restore the bundled commands",
		"Or unset source_dir in your configuration to use the bundled commands",
	).withCause(err)
}

// InstallFailed creates an error when copying command files fails.
func InstallFailed(target string, err error) *CLIError {
	return NewIOError(
		fmt.Sprintf("installation to %s failed: %v", target, err),
		"Check directory permissions: ls -la "+target,
		"Ensure the disk is not full",
		"Re-run with --force once the problem is fixed",
	).withCause(err)
}

// UninstallFailed creates an error when the install directory cannot be removed.
func UninstallFailed(target string, err error) *CLIError {
	return NewIOError(
		fmt.Sprintf("could not remove %s: %v", target, err),
		"Check that no other process holds files in the directory open",
		"Check directory permissions: ls -la "+target,
	).withCause(err)
}

// StatusFailed creates an error when an installation cannot be inspected.
func StatusFailed(err error) *CLIError {
	return NewIOError(
		fmt.Sprintf("status check failed: %v", err),
		"Check that the target directory is readable",
	).withCause(err)
}

// UpdateFailed creates an error when refreshing an installation fails.
func UpdateFailed(err error) *CLIError {
	return NewIOError(
		fmt.Sprintf("update failed: %v", err),
		"Check directory permissions of the installed scopes",
		"Run 'spec-kit-assistant status' to see which scopes are installed",
	).withCause(err)
}

// CommandsUnreadable creates an error when a command file cannot be read for validation.
func CommandsUnreadable(source string, err error) *CLIError {
	return NewIOError(
		fmt.Sprintf("reading commands in %s: %v", source, err),
		"Check file permissions in "+source,
	).withCause(err)
}

// ConfigWriteFailed creates an error when a config file cannot be written.
func ConfigWriteFailed(path string, err error) *CLIError {
	return NewIOError(
		fmt.Sprintf("writing config %s: %v", path, err),
		"Check directory permissions: ls -la "+path,
	).withCause(err)
}

// ConfigExists creates an error when config init would overwrite a file.
func ConfigExists(path string) *CLIError {
	return NewConfigError(
		fmt.Sprintf("config already exists: %s", path),
		"Re-run with --force to overwrite it",
	)
}

// ConfigParseError creates an error for an unreadable or invalid config file.
func ConfigParseError(path string, err error) *CLIError {
	return NewConfigError(
		fmt.Sprintf("failed to load config: %s: %v", path, err),
		"Check the file for YAML syntax errors",
		"Remove the file to fall back to defaults",
	).withCause(err)
}

// ValidationFailed creates an error when one or more command files fail validation.
func ValidationFailed(failed int) *CLIError {
	return NewValidationError(
		fmt.Sprintf("command validation failed: %d file(s) invalid", failed),
		"Every command file must start with a '---' frontmatter block",
		"The frontmatter must contain a description: field",
	)
}

// HomeDirUnavailable creates an error when the user's home directory cannot be determined.
func HomeDirUnavailable(err error) *CLIError {
	return NewConfigError(
		fmt.Sprintf("cannot determine home directory: %v", err),
		"Set the HOME environment variable",
	).withCause(err)
}
