// Package errmsg provides consistent error formatting for status line messages.
package errmsg

import (
	"errors"
	"fmt"

	"github.com/llehouerou/specview/internal/cmdline"
)

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Command prompt
	OpCommandRun Op = "run command"

	// Options
	OpOptionSet   Op = "set option"
	OpOptionReset Op = "reset option"

	// Hotkeys
	OpHotkeyRegister Op = "register hotkey"
	OpPromptOpen     Op = "open prompt"

	// Startup
	OpConfigLoad  Op = "load config"
	OpStartupRun  Op = "run startup command"
	OpInitialize  Op = "initialize application"
	OpLogFileOpen Op = "open log file"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}

// FormatCommand reports a failed command line. Usage errors are shown
// as the usage text alone.
func FormatCommand(line string, err error) string {
	if err == nil {
		return ""
	}
	var usage *cmdline.UsageError
	if errors.As(err, &usage) {
		return usage.Error()
	}
	return FormatWith(OpCommandRun, line, err)
}
