package errmsg

import (
	"errors"
	"fmt"
	"testing"

	"github.com/llehouerou/specview/internal/cmdline"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpCommandRun,
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with operation",
			op:       OpConfigLoad,
			err:      errors.New("toml: expected value"),
			expected: "Failed to load config: toml: expected value",
		},
		{
			name:     "option operation",
			op:       OpOptionSet,
			err:      errors.New("unknown option"),
			expected: "Failed to set option: unknown option",
		},
		{
			name:     "prompt operation",
			op:       OpPromptOpen,
			err:      errors.New("edit session already active"),
			expected: "Failed to open prompt: edit session already active",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.op, tt.err)
			if result != tt.expected {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpOptionSet,
			context:  "display.YMinVisibleRegion",
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with context",
			op:       OpOptionSet,
			context:  "display.YMinVisibleRegion",
			err:      errors.New("invalid value \"x\""),
			expected: "Failed to set option 'display.YMinVisibleRegion': invalid value \"x\"",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpHotkeyRegister,
			context:  "",
			err:      errors.New("conflict"),
			expected: "Failed to register hotkey: conflict",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatWith(tt.op, tt.context, tt.err)
			if result != tt.expected {
				t.Errorf("FormatWith(%q, %q, %v) = %q, want %q", tt.op, tt.context, tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatCommand(t *testing.T) {
	usage := &cmdline.UsageError{Name: "window view region", Usage: "<start> <end>"}

	tests := []struct {
		name     string
		line     string
		err      error
		expected string
	}{
		{"nil error", "window view center 1", nil, ""},
		{"usage error", "window view region 1", usage, "usage: window view region <start> <end>"},
		{"wrapped usage error", "window view region 1", fmt.Errorf("run: %w", usage), "usage: window view region <start> <end>"},
		{"other error", "frobnicate", cmdline.ErrUnknownCommand, "Failed to run command 'frobnicate': unknown command"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatCommand(tt.line, tt.err)
			if result != tt.expected {
				t.Errorf("FormatCommand(%q, %v) = %q, want %q", tt.line, tt.err, result, tt.expected)
			}
		})
	}
}

func TestOpConstants(t *testing.T) {
	ops := []Op{
		OpCommandRun,
		OpOptionSet, OpOptionReset,
		OpHotkeyRegister, OpPromptOpen,
		OpConfigLoad, OpStartupRun, OpInitialize, OpLogFileOpen,
	}

	testErr := errors.New("test error")

	for _, op := range ops {
		t.Run(string(op), func(t *testing.T) {
			if op == "" {
				t.Error("Op constant should not be empty")
			}

			expected := "Failed to " + string(op) + ": test error"
			if result := Format(op, testErr); result != expected {
				t.Errorf("Format = %q, want %q", result, expected)
			}
		})
	}
}
