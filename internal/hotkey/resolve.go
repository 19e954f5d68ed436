package hotkey

import "github.com/llehouerou/specview/internal/keys"

// Cursor is a position inside a table, marking progress through a
// partially typed sequence. The zero value is the root.
type Cursor struct {
	n *node
}

// AtRoot reports whether no key of a sequence has been consumed yet.
func (c Cursor) AtRoot() bool {
	return c.n == nil
}

// Outcome is the result kind of resolving one key.
type Outcome int

const (
	// NoMatch means the key is not bound below the cursor.
	NoMatch Outcome = iota
	// Partial means the key starts or continues a longer sequence.
	Partial
	// Matched means the key completed a sequence.
	Matched
)

func (o Outcome) String() string {
	switch o {
	case NoMatch:
		return "no match"
	case Partial:
		return "partial"
	case Matched:
		return "matched"
	default:
		return "unknown"
	}
}

// Resolution is the result of Resolve.
type Resolution struct {
	Outcome Outcome
	// Cursor is the advanced cursor for Partial, the root otherwise.
	Cursor Cursor
	// Action is set for Matched.
	Action Action
}

// Resolve looks k up below cur. It does not modify the table; the caller
// keeps the returned cursor for the next key.
func (t *Table) Resolve(cur Cursor, k keys.Key) Resolution {
	n := cur.n
	if n == nil {
		n = t.root
	}
	child, ok := n.children[k]
	if !ok {
		return Resolution{Outcome: NoMatch}
	}
	if child.kind == kindBranch {
		return Resolution{Outcome: Partial, Cursor: Cursor{n: child}}
	}
	return Resolution{Outcome: Matched, Action: child.action}
}
