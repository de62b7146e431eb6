package parser

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/

import (
	"fmt"

	sus "github.com/VonTum/sus-compiler"
)

// ActionType enumerates the kinds of parse actions found in the tables.
type ActionType uint8

const (
	// Shift consumes the lookahead token and pushes a new state.
	Shift ActionType = iota
	// ShiftExtra consumes the lookahead as trivia; the automaton state does
	// not change.
	ShiftExtra
	// ShiftRepeat is a shift following a reduce within the same table entry.
	// The table generator emits it for left-recursive repetitions; the driver
	// treats it like a plain shift.
	ShiftRepeat
	// Reduce pops a production's children off the stack and pushes the
	// resulting non-terminal node.
	Reduce
	// Accept ends the parse successfully.
	Accept
	// Recover marks entries of the generator's built-in recovery state. The
	// driver runs its own resynchronization and never executes these.
	Recover
)

func (t ActionType) String() string {
	switch t {
	case Shift:
		return "SHIFT"
	case ShiftExtra:
		return "SHIFT_EXTRA"
	case ShiftRepeat:
		return "SHIFT_REPEAT"
	case Reduce:
		return "REDUCE"
	case Accept:
		return "ACCEPT"
	case Recover:
		return "RECOVER"
	}
	return "?"
}

// An Action is one instruction of the parse table.
type Action struct {
	Type       ActionType
	State      uint16     // shift target state
	Symbol     sus.Symbol // reduce LHS symbol
	ChildCount int        // reduce RHS length
	Production uint16     // reduce production id, indexes the field maps
}

func (a Action) String() string {
	switch a.Type {
	case Shift, ShiftRepeat, ShiftExtra:
		return fmt.Sprintf("%s(%d)", a.Type, a.State)
	case Reduce:
		return fmt.Sprintf("REDUCE(%d,%d)", a.Symbol, a.ChildCount)
	}
	return a.Type.String()
}

// An ActionEntry is one cell payload of the parse table. Entries usually hold
// a single action; repetition states pair a Reduce with a ShiftRepeat, which
// the driver applies in order. The Reusable flag is metadata for incremental
// re-parsing and is carried but unused.
type ActionEntry struct {
	Reusable bool
	Actions  []Action
}
