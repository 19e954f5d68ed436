// Package hotkey implements a table of multi-key hotkeys.
//
// The table is a trie keyed by keys.Key. Every node is either an action
// (a leaf) or a branch holding further keys, never both. Resolution state
// lives in a Cursor owned by the caller, so a table can be shared and
// resolved from reentrantly once built.
package hotkey

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/llehouerou/specview/internal/keys"
)

// Action is the callback bound to a hotkey.
type Action func()

// ErrEmptySequence is returned when registering a sequence with no keys.
var ErrEmptySequence = errors.New("hotkey: empty key sequence")

// ErrNilAction is returned when registering a nil action.
var ErrNilAction = errors.New("hotkey: nil action")

// ConflictError reports a registration that would have to turn an
// already bound hotkey into the prefix of a longer one.
type ConflictError struct {
	Sequence keys.Sequence // sequence being registered
	Bound    keys.Sequence // shorter sequence already bound to an action
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("refusing to overwrite non-matching hotkey %q with %q",
		e.Bound.String(), e.Sequence.String())
}

type kind uint8

const (
	kindBranch kind = iota
	kindAction
)

type node struct {
	kind     kind
	action   Action             // kindAction only
	children map[keys.Key]*node // kindBranch only
}

func newBranch() *node {
	return &node{kind: kindBranch, children: make(map[keys.Key]*node)}
}

// Table maps key sequences to actions.
type Table struct {
	root *node
}

// New creates an empty table.
func New() *Table {
	return &Table{root: newBranch()}
}

// Register binds seq to action.
//
// Intermediate keys descend into existing branches or create new ones.
// If an intermediate key reaches an action, registration fails with a
// *ConflictError and the table is left unchanged. The final key always
// takes the action, replacing a previous action or discarding every
// longer binding below a branch at that position.
func (t *Table) Register(seq keys.Sequence, action Action) error {
	if len(seq) == 0 {
		return ErrEmptySequence
	}
	if action == nil {
		return ErrNilAction
	}

	// Nodes are only created after the walk leaves existing nodes, and a
	// conflict can only happen on an existing node, so a failed
	// registration never mutates the table.
	cur := t.root
	for i, k := range seq[:len(seq)-1] {
		child, ok := cur.children[k]
		if !ok {
			child = newBranch()
			cur.children[k] = child
		} else if child.kind == kindAction {
			return &ConflictError{
				Sequence: slices.Clone(seq),
				Bound:    slices.Clone(seq[:i+1]),
			}
		}
		cur = child
	}

	cur.children[seq[len(seq)-1]] = &node{kind: kindAction, action: action}
	return nil
}

// Check reports the error Register would return for seq without
// changing the table.
func (t *Table) Check(seq keys.Sequence) error {
	if len(seq) == 0 {
		return ErrEmptySequence
	}
	cur := t.root
	for i, k := range seq[:len(seq)-1] {
		child, ok := cur.children[k]
		if !ok {
			return nil
		}
		if child.kind == kindAction {
			return &ConflictError{
				Sequence: slices.Clone(seq),
				Bound:    slices.Clone(seq[:i+1]),
			}
		}
		cur = child
	}
	return nil
}

// Root returns a cursor positioned at the table root.
func (t *Table) Root() Cursor {
	return Cursor{}
}

// Bindings returns every bound sequence, sorted by its string form.
func (t *Table) Bindings() []keys.Sequence {
	var out []keys.Sequence
	var walk func(n *node, prefix keys.Sequence)
	walk = func(n *node, prefix keys.Sequence) {
		for k, child := range n.children {
			seq := append(slices.Clone(prefix), k)
			if child.kind == kindAction {
				out = append(out, seq)
				continue
			}
			walk(child, seq)
		}
	}
	walk(t.root, nil)
	slices.SortFunc(out, func(a, b keys.Sequence) int {
		return strings.Compare(a.String(), b.String())
	})
	return out
}

// Lookup returns the action bound to exactly seq.
func (t *Table) Lookup(seq keys.Sequence) (Action, bool) {
	cur := t.root
	for _, k := range seq {
		if cur.kind != kindBranch {
			return nil, false
		}
		child, ok := cur.children[k]
		if !ok {
			return nil, false
		}
		cur = child
	}
	if cur.kind != kindAction {
		return nil, false
	}
	return cur.action, true
}
