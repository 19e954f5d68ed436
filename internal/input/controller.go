// Package input routes key events either to hotkey resolution or to a
// text prompt shown on the status line.
package input

import (
	"errors"

	"github.com/llehouerou/specview/internal/hotkey"
	"github.com/llehouerou/specview/internal/keys"
)

// ErrEditSessionActive is returned by EnterEditMode while a prompt is
// already open.
var ErrEditSessionActive = errors.New("input: edit session already active")

// StatusSink displays a single line of status text.
type StatusSink interface {
	SetStatusText(text string)
}

// Result tells the host what happened to a key event.
type Result int

const (
	// NotHandled means the key was ignored or is not a valid hotkey.
	NotHandled Result = iota
	// Handled means the key was consumed.
	Handled
	// NeedsMoreInput means the key is a prefix of a longer hotkey.
	NeedsMoreInput
)

func (r Result) String() string {
	switch r {
	case NotHandled:
		return "not handled"
	case Handled:
		return "handled"
	case NeedsMoreInput:
		return "needs more input"
	default:
		return "unknown"
	}
}

// State is the controller's input mode.
type State int

const (
	// Idle is command mode with no partial sequence.
	Idle State = iota
	// PartialSequence is command mode in the middle of a multi-key hotkey.
	PartialSequence
	// Editing means keys are captured into the status line prompt.
	Editing
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case PartialSequence:
		return "partial"
	case Editing:
		return "editing"
	default:
		return "unknown"
	}
}

// Controller is the single entry point for key events of a window.
// It is not safe for concurrent use; events are expected one at a time
// from the host's event loop.
type Controller struct {
	table  *hotkey.Table
	status StatusSink
	cursor hotkey.Cursor
	edit   *editSession
	echo   string // keys typed so far in the current sequence
}

// New creates a controller resolving hotkeys against table and writing
// feedback to status.
func New(table *hotkey.Table, status StatusSink) *Controller {
	return &Controller{
		table:  table,
		status: status,
		cursor: table.Root(),
	}
}

// Table returns the hotkey table.
func (c *Controller) Table() *hotkey.Table {
	return c.table
}

// AddHotkey binds seq to action. See hotkey.Table.Register.
func (c *Controller) AddHotkey(seq keys.Sequence, action hotkey.Action) error {
	return c.table.Register(seq, action)
}

// State returns the current input mode.
func (c *Controller) State() State {
	switch {
	case c.edit != nil:
		return Editing
	case !c.cursor.AtRoot():
		return PartialSequence
	default:
		return Idle
	}
}

// Pending returns the keys typed so far of an unfinished hotkey.
func (c *Controller) Pending() string {
	return c.echo
}

// HandleKey processes one key event.
func (c *Controller) HandleKey(ev keys.Event) Result {
	if ev.Key.IsModifier() || ev.Key.Code == keys.Unknown {
		return NotHandled
	}

	if ev.Key.Code == keys.Escape {
		c.reset()
		c.status.SetStatusText("")
		return Handled
	}

	if c.edit != nil {
		return c.handleEditKey(ev)
	}
	return c.handleHotkey(ev)
}

func (c *Controller) handleHotkey(ev keys.Event) Result {
	res := c.table.Resolve(c.cursor, ev.Key)

	switch res.Outcome {
	case hotkey.Partial:
		c.cursor = res.Cursor
		c.echo += ev.Display()
		c.status.SetStatusText("Command: " + c.echo)
		return NeedsMoreInput

	case hotkey.Matched:
		c.cursor = c.table.Root()
		c.echo = ""
		res.Action()
		if c.edit == nil {
			c.status.SetStatusText("")
		}
		return Handled

	default:
		c.cursor = c.table.Root()
		c.echo += ev.Display()
		c.status.SetStatusText("Invalid hotkey " + c.echo)
		c.echo = ""
		return NotHandled
	}
}

// ResetHotkeyState forces the controller back to Idle, dropping a partial
// sequence and abandoning an open prompt without calling its callback.
// The status line is cleared only if something was pending.
func (c *Controller) ResetHotkeyState() {
	if c.State() == Idle {
		c.echo = ""
		return
	}
	c.reset()
	c.status.SetStatusText("")
}

func (c *Controller) reset() {
	c.cursor = c.table.Root()
	c.edit = nil
	c.echo = ""
}
