package tui

import (
	"os"

	"golang.org/x/term"
)

// Mode represents how output is presented.
type Mode int

const (
	// ModeNonInteractive is used for Lambda, CI/CD pipelines, scripts, and piped output.
	ModeNonInteractive Mode = iota
	// ModeInteractive is used when a human is at the terminal.
	ModeInteractive
)

// isTerminal is swapped in tests.
var isTerminal = term.IsTerminal

// automated reports environments where nobody can answer a prompt.
func automated() bool {
	if os.Getenv("PARAMFLIP_NON_INTERACTIVE") == "1" {
		return true
	}
	return os.Getenv("CI") != "" || os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != ""
}

// DetectMode determines whether output should be styled for a terminal.
//
// Returns ModeNonInteractive if:
//   - PARAMFLIP_NON_INTERACTIVE=1 is set
//   - CI is set (common CI/CD convention)
//   - AWS_LAMBDA_FUNCTION_NAME is set (running inside Lambda)
//   - NO_COLOR is set
//   - stdout is not a terminal
//
// Returns ModeInteractive otherwise.
func DetectMode() Mode {
	if automated() || os.Getenv("NO_COLOR") != "" {
		return ModeNonInteractive
	}
	if !isTerminal(int(os.Stdout.Fd())) {
		return ModeNonInteractive
	}
	return ModeInteractive
}

// IsInteractive is a convenience function that returns true if running in interactive mode.
func IsInteractive() bool {
	return DetectMode() == ModeInteractive
}

// CanPrompt reports whether a confirmation question can be answered: stdin is
// a terminal and the environment is not automated. Redirected stdout and
// NO_COLOR do not matter; prompts go to stderr.
func CanPrompt() bool {
	if automated() {
		return false
	}
	return isTerminal(int(os.Stdin.Fd()))
}
