package paramflip

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	report, err := toggler.Toggle(ctx, group, name)
//	if errors.Is(err, paramflip.ErrAdminAPI) {
//	    // RDS rejected or failed the call
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrAdminAPI indicates a call to the database administration API failed.
	ErrAdminAPI = errors.New("administration API call failed")

	// ErrProbeFailed indicates the live setting probe could not read the value.
	// Probe failures are logged and never fail an invocation.
	ErrProbeFailed = errors.New("probe failed")
)

// usageErrorPatterns are cobra/pflag messages for command line misuse.
var usageErrorPatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"required flag",
	"invalid argument",
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrAdminAPI):
		return ExitAdminAPI
	}

	errStr := err.Error()
	for _, p := range usageErrorPatterns {
		if strings.Contains(errStr, p) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}
