package keys

import tea "github.com/charmbracelet/bubbletea"

var teaCodes = map[tea.KeyType]Code{
	tea.KeyEsc:       Escape,
	tea.KeyBackspace: Backspace,
	tea.KeyEnter:     Return,
	tea.KeyTab:       Tab,
	tea.KeyDelete:    Delete,
	tea.KeyInsert:    Insert,
	tea.KeyUp:        Up,
	tea.KeyDown:      Down,
	tea.KeyLeft:      Left,
	tea.KeyRight:     Right,
	tea.KeyHome:      Home,
	tea.KeyEnd:       End,
	tea.KeyPgUp:      PageUp,
	tea.KeyPgDown:    PageDown,
	tea.KeyF1:        F1,
	tea.KeyF2:        F2,
	tea.KeyF3:        F3,
	tea.KeyF4:        F4,
	tea.KeyF5:        F5,
	tea.KeyF6:        F6,
	tea.KeyF7:        F7,
	tea.KeyF8:        F8,
	tea.KeyF9:        F9,
	tea.KeyF10:       F10,
	tea.KeyF11:       F11,
	tea.KeyF12:       F12,
}

// FromTea converts a bubbletea key message into a key event.
// Keys bubbletea cannot name map to Unknown.
func FromTea(msg tea.KeyMsg) Event {
	var mod Mod
	if msg.Alt {
		mod |= ModAlt
	}

	switch msg.Type {
	case tea.KeyRunes, tea.KeySpace:
		if len(msg.Runes) == 0 {
			return Event{Key: Key{Code: Unknown}}
		}
		k := Key{Code: Rune, Rune: msg.Runes[0], Mod: mod}
		if mod != 0 {
			return Event{Key: k}
		}
		return Event{Key: k, Text: string(msg.Runes)}
	}

	if c, ok := teaCodes[msg.Type]; ok {
		return Event{Key: Key{Code: c, Mod: mod}}
	}

	// Control characters: ctrl+a is 1 through ctrl+z at 26. Tab, enter
	// and escape share codes with ctrl+i, ctrl+m and ctrl+[ and were
	// matched above.
	if msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ {
		r := 'a' + rune(msg.Type-tea.KeyCtrlA)
		return Event{Key: Key{Code: Rune, Rune: r, Mod: mod | ModCtrl}}
	}
	return Event{Key: Key{Code: Unknown, Mod: mod}}
}
