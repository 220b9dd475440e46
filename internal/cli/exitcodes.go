package cli

import "github.com/yaklabco/gomatlex/pkg/runner"

// Exit codes for gomatlex.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitScanErrors indicates the run completed but some files failed.
	ExitScanErrors = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeFromResult determines the exit code based on the run result.
func ExitCodeFromResult(result *runner.Result) int {
	if result == nil {
		return ExitSuccess
	}
	if result.HasErrors() {
		return ExitScanErrors
	}
	return ExitSuccess
}
