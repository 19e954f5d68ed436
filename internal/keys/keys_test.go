//nolint:goconst // test cases intentionally repeat strings for readability
package keys

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		input    string
		expected Key
	}{
		{"h", Char('h')},
		{"A", Char('A')},
		{"!", Char('!')},
		{"|", Char('|')},
		{"space", Char(' ')},
		{"Space", Char(' ')},
		{"left", Special(Left)},
		{"F1", Special(F1)},
		{"esc", Special(Escape)},
		{"escape", Special(Escape)},
		{"return", Special(Return)},
		{"enter", Special(Enter)},
		{"pgdown", Special(PageDown)},
		{"ctrl+x", Ctrl(Char('x'))},
		{"alt+ctrl+up", Key{Code: Up, Mod: ModCtrl | ModAlt}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseKey(tt.input)
			if err != nil {
				t.Fatalf("ParseKey(%q) error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ParseKey(%q) = %+v, want %+v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseKey_Invalid(t *testing.T) {
	for _, input := range []string{"", "nosuchkey", "ctrl+"} {
		if _, err := ParseKey(input); err == nil {
			t.Errorf("ParseKey(%q) succeeded, want error", input)
		}
	}
}

func TestParse(t *testing.T) {
	seq, err := Parse("g  r")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(seq) != 2 || seq[0] != Char('g') || seq[1] != Char('r') {
		t.Errorf("Parse(\"g  r\") = %v", seq)
	}

	if _, err := Parse("   "); !errors.Is(err, ErrEmpty) {
		t.Errorf("Parse(blank) error = %v, want ErrEmpty", err)
	}
}

func TestSequenceString_RoundTrips(t *testing.T) {
	for _, s := range []string{"g r", "space", "ctrl+x left", "f12", "!"} {
		seq := MustParse(s)
		if got := seq.String(); got != s {
			t.Errorf("MustParse(%q).String() = %q", s, got)
		}
	}
}

func TestIsModifier(t *testing.T) {
	for _, c := range []Code{Shift, Control, Meta, Alt, CapsLock, NumLock, ScrollLock} {
		if !Special(c).IsModifier() {
			t.Errorf("%v should be a modifier", Special(c))
		}
	}
	for _, k := range []Key{Char('a'), Special(Escape), Special(F12), Special(Unknown)} {
		if k.IsModifier() {
			t.Errorf("%v should not be a modifier", k)
		}
	}
}

func TestEventDisplay(t *testing.T) {
	if got := KeyEvent(Char('h')).Display(); got != "h" {
		t.Errorf("Display() = %q, want %q", got, "h")
	}
	if got := KeyEvent(Special(Left)).Display(); got != "<?>" {
		t.Errorf("Display() = %q, want %q", got, "<?>")
	}
	if got := KeyEvent(Ctrl(Char('x'))).Text; got != "" {
		t.Errorf("ctrl+x Text = %q, want empty", got)
	}
}

func TestFromTea(t *testing.T) {
	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected Event
	}{
		{
			name:     "rune",
			msg:      tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'h'}},
			expected: Event{Key: Char('h'), Text: "h"},
		},
		{
			name:     "space",
			msg:      tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}},
			expected: Event{Key: Char(' '), Text: " "},
		},
		{
			name:     "alt rune has no text",
			msg:      tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true},
			expected: Event{Key: Key{Code: Rune, Rune: 'x', Mod: ModAlt}},
		},
		{
			name:     "enter",
			msg:      tea.KeyMsg{Type: tea.KeyEnter},
			expected: Event{Key: Special(Return)},
		},
		{
			name:     "escape",
			msg:      tea.KeyMsg{Type: tea.KeyEsc},
			expected: Event{Key: Special(Escape)},
		},
		{
			name:     "backspace",
			msg:      tea.KeyMsg{Type: tea.KeyBackspace},
			expected: Event{Key: Special(Backspace)},
		},
		{
			name:     "arrow",
			msg:      tea.KeyMsg{Type: tea.KeyLeft},
			expected: Event{Key: Special(Left)},
		},
		{
			name:     "ctrl letter",
			msg:      tea.KeyMsg{Type: tea.KeyCtrlX},
			expected: Event{Key: Ctrl(Char('x'))},
		},
		{
			name:     "empty runes",
			msg:      tea.KeyMsg{Type: tea.KeyRunes},
			expected: Event{Key: Special(Unknown)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromTea(tt.msg)
			if got != tt.expected {
				t.Errorf("FromTea() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}
