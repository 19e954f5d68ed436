// Package keys defines key symbols, key events and key sequences.
package keys

import "strings"

// Code identifies a physical or logical key.
type Code int

const (
	// Unknown is a key the terminal could not identify.
	Unknown Code = iota
	// Rune is a character key; the character is in Key.Rune.
	Rune

	Escape
	Backspace
	Return
	Enter // keypad enter
	Tab
	Delete
	Insert
	Up
	Down
	Left
	Right
	Home
	End
	PageUp
	PageDown
	F1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	F10
	F11
	F12

	// Modifier keys, reported on their own by some event sources.
	Shift
	Control
	Meta
	Alt
	CapsLock
	NumLock
	ScrollLock
)

// Mod is a set of modifiers held while a key was pressed.
type Mod uint8

const (
	ModCtrl Mod = 1 << iota
	ModAlt
)

// Key is a single key symbol. Keys are comparable and used as map keys.
type Key struct {
	Code Code
	Rune rune
	Mod  Mod
}

// Char returns the key for a printable character.
func Char(r rune) Key {
	return Key{Code: Rune, Rune: r}
}

// Special returns the key for a non-character code.
func Special(c Code) Key {
	return Key{Code: c}
}

// Ctrl returns k with the control modifier held.
func Ctrl(k Key) Key {
	k.Mod |= ModCtrl
	return k
}

// IsModifier reports whether k is a bare modifier key.
func (k Key) IsModifier() bool {
	return k.Code >= Shift && k.Code <= ScrollLock
}

var codeNames = map[Code]string{
	Unknown:    "unknown",
	Escape:     "esc",
	Backspace:  "backspace",
	Return:     "return",
	Enter:      "enter",
	Tab:        "tab",
	Delete:     "delete",
	Insert:     "insert",
	Up:         "up",
	Down:       "down",
	Left:       "left",
	Right:      "right",
	Home:       "home",
	End:        "end",
	PageUp:     "pgup",
	PageDown:   "pgdown",
	F1:         "f1",
	F2:         "f2",
	F3:         "f3",
	F4:         "f4",
	F5:         "f5",
	F6:         "f6",
	F7:         "f7",
	F8:         "f8",
	F9:         "f9",
	F10:        "f10",
	F11:        "f11",
	F12:        "f12",
	Shift:      "shift",
	Control:    "control",
	Meta:       "meta",
	Alt:        "alt",
	CapsLock:   "capslock",
	NumLock:    "numlock",
	ScrollLock: "scrolllock",
}

// String returns the key name in the same syntax Parse accepts.
func (k Key) String() string {
	var b strings.Builder
	if k.Mod&ModCtrl != 0 {
		b.WriteString("ctrl+")
	}
	if k.Mod&ModAlt != 0 {
		b.WriteString("alt+")
	}
	switch {
	case k.Code == Rune && k.Rune == ' ':
		b.WriteString("space")
	case k.Code == Rune:
		b.WriteRune(k.Rune)
	default:
		b.WriteString(codeNames[k.Code])
	}
	return b.String()
}

// Event is a key press as delivered by the host window.
type Event struct {
	Key Key
	// Text is the printable text the key produced, empty for keys
	// that produce none (arrows, function keys, control combinations).
	Text string
}

// KeyEvent returns the event for a key, deriving its text.
func KeyEvent(k Key) Event {
	ev := Event{Key: k}
	if k.Code == Rune && k.Mod == 0 {
		ev.Text = string(k.Rune)
	}
	return ev
}

// Display returns the text echoed on the status line for this event.
func (e Event) Display() string {
	if e.Text == "" {
		return "<?>"
	}
	return e.Text
}
