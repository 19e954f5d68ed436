package keys

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Sequence is an ordered list of keys forming one hotkey.
type Sequence []Key

// ErrEmpty is returned when parsing a sequence with no keys.
var ErrEmpty = errors.New("empty key sequence")

// String joins the key names with spaces.
func (s Sequence) String() string {
	parts := make([]string, len(s))
	for i, k := range s {
		parts[i] = k.String()
	}
	return strings.Join(parts, " ")
}

var namedCodes = func() map[string]Code {
	m := make(map[string]Code, len(codeNames)+4)
	for c, name := range codeNames {
		if c != Unknown {
			m[name] = c
		}
	}
	m["escape"] = Escape
	m["pageup"] = PageUp
	m["pagedown"] = PageDown
	m["del"] = Delete
	return m
}()

// ParseKey parses a single key name such as "h", "space", "left", "F1"
// or "ctrl+x".
func ParseKey(s string) (Key, error) {
	var mod Mod
	rest := s
	for {
		lower := strings.ToLower(rest)
		switch {
		case strings.HasPrefix(lower, "ctrl+") && len(rest) > len("ctrl+"):
			mod |= ModCtrl
			rest = rest[len("ctrl+"):]
			continue
		case strings.HasPrefix(lower, "alt+") && len(rest) > len("alt+"):
			mod |= ModAlt
			rest = rest[len("alt+"):]
			continue
		}
		break
	}

	if rest == "" {
		return Key{}, fmt.Errorf("parse key %q: %w", s, ErrEmpty)
	}
	if utf8.RuneCountInString(rest) == 1 {
		r, _ := utf8.DecodeRuneInString(rest)
		return Key{Code: Rune, Rune: r, Mod: mod}, nil
	}
	lower := strings.ToLower(rest)
	if lower == "space" {
		return Key{Code: Rune, Rune: ' ', Mod: mod}, nil
	}
	if c, ok := namedCodes[lower]; ok {
		return Key{Code: c, Mod: mod}, nil
	}
	return Key{}, fmt.Errorf("parse key %q: unknown key name", s)
}

// Parse parses a space separated key sequence such as "g r".
func Parse(s string) (Sequence, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, ErrEmpty
	}
	seq := make(Sequence, 0, len(fields))
	for _, f := range fields {
		k, err := ParseKey(f)
		if err != nil {
			return nil, err
		}
		seq = append(seq, k)
	}
	return seq, nil
}

// MustParse is like Parse but panics on error. Intended for static tables.
func MustParse(s string) Sequence {
	seq, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return seq
}
