package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/specview/internal/keys"
)

func TestEnterEditMode_ShowsPrompt(t *testing.T) {
	c, status := newController(t)

	require.NoError(t, c.EnterEditMode("Position: ", nil))

	assert.Equal(t, Editing, c.State())
	assert.Equal(t, "Position: ", status.last())
	prompt, text, ok := c.EditText()
	assert.True(t, ok)
	assert.Equal(t, "Position: ", prompt)
	assert.Equal(t, "", text)
}

func TestEditMode_TypingAndConfirm(t *testing.T) {
	c, status := newController(t)
	var got []string
	require.NoError(t, c.EnterEditMode("Position: ", func(s string) { got = append(got, s) }))

	typeText(c, "1332")
	assert.Equal(t, "Position: 1332", status.last())

	assert.Equal(t, Handled, press(c, "backspace"))
	assert.Equal(t, "Position: 133", status.last())

	assert.Equal(t, Handled, press(c, "return"))
	assert.Equal(t, []string{"133"}, got)
	assert.Equal(t, Idle, c.State())
	assert.Equal(t, "", status.last())
}

func TestEditMode_KeypadEnterConfirms(t *testing.T) {
	c, _ := newController(t)
	var got []string
	require.NoError(t, c.EnterEditMode("> ", func(s string) { got = append(got, s) }))
	typeText(c, "ab")

	assert.Equal(t, Handled, press(c, "enter"))
	assert.Equal(t, []string{"ab"}, got)
}

func TestEditMode_ConfirmEmptyText(t *testing.T) {
	c, _ := newController(t)
	calls := 0
	var got string
	require.NoError(t, c.EnterEditMode("> ", func(s string) {
		calls++
		got = s
	}))

	press(c, "return")

	assert.Equal(t, 1, calls)
	assert.Equal(t, "", got)
}

func TestEditMode_BackspaceOnEmptyBuffer(t *testing.T) {
	c, status := newController(t)
	require.NoError(t, c.EnterEditMode("Position: ", nil))

	assert.Equal(t, Handled, press(c, "backspace"))

	_, text, _ := c.EditText()
	assert.Equal(t, "", text)
	assert.Equal(t, "Position: ", status.last())
	assert.Equal(t, Editing, c.State())
}

func TestEditMode_BackspaceRemovesWholeGrapheme(t *testing.T) {
	c, _ := newController(t)
	require.NoError(t, c.EnterEditMode("> ", nil))

	c.HandleKey(keys.Event{Key: keys.Char('e'), Text: "é"})
	c.HandleKey(keys.Event{Key: keys.Char('µ'), Text: "µ"})
	_, text, _ := c.EditText()
	require.Equal(t, "éµ", text)

	press(c, "backspace")
	_, text, _ = c.EditText()
	assert.Equal(t, "é", text)

	press(c, "backspace")
	_, text, _ = c.EditText()
	assert.Equal(t, "", text)
}

func TestEditMode_AppendsFirstCharacterOnly(t *testing.T) {
	c, _ := newController(t)
	require.NoError(t, c.EnterEditMode("> ", nil))

	c.HandleKey(keys.Event{Key: keys.Char('x'), Text: "xyz"})

	_, text, _ := c.EditText()
	assert.Equal(t, "x", text)
}

func TestEditMode_NonPrintableNotHandled(t *testing.T) {
	c, status := newController(t)
	require.NoError(t, c.EnterEditMode("> ", nil))
	typeText(c, "a")
	before := len(status.lines)

	assert.Equal(t, NotHandled, press(c, "left"))
	assert.Equal(t, NotHandled, press(c, "ctrl+x"))

	_, text, _ := c.EditText()
	assert.Equal(t, "a", text)
	assert.Len(t, status.lines, before)
	assert.Equal(t, Editing, c.State())
}

func TestEditMode_HotkeysAreNotResolved(t *testing.T) {
	c, _ := newController(t)
	fired := false
	require.NoError(t, c.AddHotkey(keys.MustParse("e"), func() { fired = true }))
	require.NoError(t, c.EnterEditMode("> ", nil))

	assert.Equal(t, Handled, press(c, "e"))

	assert.False(t, fired)
	_, text, _ := c.EditText()
	assert.Equal(t, "e", text)
}

func TestEditMode_EscapeDiscardsWithoutCallback(t *testing.T) {
	c, status := newController(t)
	called := false
	require.NoError(t, c.EnterEditMode("Position: ", func(string) { called = true }))
	typeText(c, "100")

	assert.Equal(t, Handled, press(c, "esc"))

	assert.False(t, called)
	assert.Equal(t, Idle, c.State())
	assert.Equal(t, "", status.last())
	_, _, ok := c.EditText()
	assert.False(t, ok)
}

func TestEnterEditMode_WhileEditingFails(t *testing.T) {
	c, status := newController(t)
	require.NoError(t, c.EnterEditMode("first: ", nil))
	typeText(c, "1")

	err := c.EnterEditMode("second: ", nil)

	assert.ErrorIs(t, err, ErrEditSessionActive)
	prompt, text, _ := c.EditText()
	assert.Equal(t, "first: ", prompt)
	assert.Equal(t, "1", text)
	assert.Equal(t, "first: 1", status.last())
}

func TestEnterEditMode_FromHotkeyAction(t *testing.T) {
	c, status := newController(t)
	var got string
	require.NoError(t, c.AddHotkey(keys.MustParse("i"), func() {
		require.NoError(t, c.EnterEditMode("Position: ", func(s string) { got = s }))
	}))

	assert.Equal(t, Handled, press(c, "i"))
	assert.Equal(t, Editing, c.State())
	assert.Equal(t, "Position: ", status.last(), "status must keep the prompt")

	typeText(c, "42")
	press(c, "return")
	assert.Equal(t, "42", got)
}

func TestEnterEditMode_FromPartialSequenceAction(t *testing.T) {
	c, _ := newController(t)
	require.NoError(t, c.AddHotkey(keys.MustParse("g i"), func() {
		require.NoError(t, c.EnterEditMode("> ", nil))
	}))

	press(c, "g")
	press(c, "i")

	assert.Equal(t, Editing, c.State())
	assert.Equal(t, "", c.Pending())
}

func TestEditMode_CallbackCanReopenPrompt(t *testing.T) {
	c, status := newController(t)
	var answers []string
	var ask func(prompt string)
	ask = func(prompt string) {
		require.NoError(t, c.EnterEditMode(prompt, func(s string) {
			answers = append(answers, s)
			if len(answers) == 1 {
				ask("End: ")
			}
		}))
	}
	ask("Start: ")

	typeText(c, "10")
	press(c, "return")
	assert.Equal(t, Editing, c.State())
	assert.Equal(t, "End: ", status.last())

	typeText(c, "20")
	press(c, "return")
	assert.Equal(t, []string{"10", "20"}, answers)
	assert.Equal(t, Idle, c.State())
}
