package render

import "testing"

func TestSanitize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain text unchanged", "Position: 661.7", "Position: 661.7"},
		{"control characters dropped", "a\x1b[31mb\x07", "a[31mb"},
		{"tab becomes space", "a\tb", "a b"},
		{"wide characters kept", "峰 ✓", "峰 ✓"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.expected {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		expected string
	}{
		{"no truncation needed", "hello", 10, "hello"},
		{"exact fit", "hello", 5, "hello"},
		{"truncation with ellipsis", "Command: g r", 8, "Comma..."},
		{"empty string", "", 5, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.maxWidth); got != tt.expected {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.expected)
			}
		})
	}
}

func TestPad(t *testing.T) {
	if got := Pad("ab", 4); got != "ab  " {
		t.Errorf("Pad = %q, want %q", got, "ab  ")
	}
	if got := Pad("abcdef", 4); got != "abcdef" {
		t.Errorf("Pad wider = %q, want unchanged", got)
	}
	if got := PadLeft("7", 3); got != "  7" {
		t.Errorf("PadLeft = %q, want %q", got, "  7")
	}
}

func TestTruncateAndPad(t *testing.T) {
	if got := TruncateAndPad("hello world", 8); got != "hello..." {
		t.Errorf("TruncateAndPad = %q, want %q", got, "hello...")
	}
	if got := TruncateAndPad("hi", 4); got != "hi  " {
		t.Errorf("TruncateAndPad = %q, want %q", got, "hi  ")
	}
}

func TestRow(t *testing.T) {
	tests := []struct {
		name     string
		left     string
		right    string
		width    int
		expected string
	}{
		{"basic row", "left", "right", 12, "left   right"},
		{"tight fit", "left", "right", 9, "left right"},
		{"too narrow keeps one space", "left", "right", 4, "left right"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Row(tt.left, tt.right, tt.width); got != tt.expected {
				t.Errorf("Row(%q, %q, %d) = %q, want %q", tt.left, tt.right, tt.width, got, tt.expected)
			}
		})
	}
}
