package input

import (
	"github.com/rivo/uniseg"

	"github.com/llehouerou/specview/internal/keys"
)

// editSession is an open status line prompt.
type editSession struct {
	prompt     string
	buf        string
	onComplete func(text string)
}

// EnterEditMode turns the status line into a text prompt. Keys are
// captured until Enter, which calls onComplete with the typed text, or
// Escape, which drops it. Opening a prompt while one is already open
// fails with ErrEditSessionActive. A hotkey action may open a prompt.
func (c *Controller) EnterEditMode(prompt string, onComplete func(text string)) error {
	if c.edit != nil {
		return ErrEditSessionActive
	}
	if onComplete == nil {
		onComplete = func(string) {}
	}
	c.edit = &editSession{prompt: prompt, onComplete: onComplete}
	c.cursor = c.table.Root()
	c.echo = ""
	c.status.SetStatusText(prompt)
	return nil
}

// EditText returns the prompt and the text typed so far. ok is false
// when no prompt is open.
func (c *Controller) EditText() (prompt, text string, ok bool) {
	if c.edit == nil {
		return "", "", false
	}
	return c.edit.prompt, c.edit.buf, true
}

func (c *Controller) handleEditKey(ev keys.Event) Result {
	s := c.edit

	switch ev.Key.Code {
	case keys.Backspace:
		s.buf = trimLastGrapheme(s.buf)
		c.status.SetStatusText(s.prompt + s.buf)
		return Handled

	case keys.Return, keys.Enter:
		// Close the session before the callback so the callback can open
		// a new prompt.
		c.edit = nil
		c.status.SetStatusText("")
		s.onComplete(s.buf)
		return Handled
	}

	if ev.Text == "" {
		return NotHandled
	}
	first, _, _, _ := uniseg.FirstGraphemeClusterInString(ev.Text, -1)
	s.buf += first
	c.status.SetStatusText(s.prompt + s.buf)
	return Handled
}

// trimLastGrapheme drops the last user-perceived character of s.
func trimLastGrapheme(s string) string {
	last := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		last, _ = g.Positions()
	}
	return s[:last]
}
