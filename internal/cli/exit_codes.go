package cli

// Exit codes for the spec-kit-assistant binaries
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = 0

	// ExitFailure indicates any error, including failed validation
	ExitFailure = 1
)

// ExitCode maps the error returned by Execute to a process exit code.
func ExitCode(err error) int {
	if err != nil {
		return ExitFailure
	}
	return ExitSuccess
}
