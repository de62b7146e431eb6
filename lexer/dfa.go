package lexer

import (
	sus "github.com/VonTum/sus-compiler"
	"github.com/VonTum/sus-compiler/charclass"
)

// --- Lexer DFA tables --------------------------------------------------------

// CharClass selects a predicate from package charclass for transitions that
// cover an identifier character class instead of an explicit rune range. The
// grammar generator emits these for the (large) Unicode identifier sets, so
// that a single transition replaces hundreds of range entries.
type CharClass uint8

const (
	ClassNone CharClass = iota // transition matches by Lo…Hi range
	ClassIdentStart
	ClassIdentContinue
)

// Transition is one edge of the lexer DFA. It matches a lookahead rune either
// by an inclusive range [Lo, Hi] or by a character-class predicate. A Skip
// transition consumes the rune but restarts the token behind it (whitespace
// and other trivia that never becomes part of a token).
type Transition struct {
	Lo, Hi rune
	Class  CharClass
	Next   int16
	Skip   bool
}

// Matches tests a lookahead rune against the transition.
func (t Transition) Matches(r rune) bool {
	switch t.Class {
	case ClassIdentStart:
		return charclass.IsIdentifierStart(r)
	case ClassIdentContinue:
		return charclass.IsIdentifierContinue(r)
	}
	return r >= t.Lo && r <= t.Hi
}

// State is one state of the lexer DFA. Transitions are ordered; the executor
// takes the first match. A state with HasAccept marks the scanned span as a
// token of symbol Accept whenever it is entered; the executor keeps scanning
// for a longer match afterwards (maximal munch).
type State struct {
	Accept      sus.Symbol
	HasAccept   bool
	EOFNext     int16 // state entered on end of input, -1 if none
	Transitions []Transition
}

// DFA is a complete lexer automaton. Lex modes are entry states: the parse
// tables map every parse state to the DFA state lexing starts from, which is
// how the same characters tokenize differently in different syntactic
// positions.
type DFA struct {
	States []State
}

// NoState marks the absence of a successor state.
const NoState int16 = -1
