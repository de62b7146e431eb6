package parser

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/

import (
	"fmt"
	"strings"

	sus "github.com/VonTum/sus-compiler"
)

// ErrorClass distinguishes the two recoverable error classes of a parse.
type ErrorClass uint8

const (
	// LexicalError marks input the lexer DFA could not tokenize.
	LexicalError ErrorClass = iota
	// SyntaxError marks a token for which the parse table holds no action.
	SyntaxError
)

func (c ErrorClass) String() string {
	if c == LexicalError {
		return "lexical error"
	}
	return "syntax error"
}

// An ErrorSpan locates one recovered error in the input. Errors never abort
// the parse; the driver collects them and returns the full list alongside
// the best-effort tree.
type ErrorSpan struct {
	Class    ErrorClass
	Span     sus.Span
	Point    sus.Point
	Expected []string // terminals that would have been valid, syntax errors only
}

func (e ErrorSpan) String() string {
	if e.Class == LexicalError || len(e.Expected) == 0 {
		return fmt.Sprintf("%s at %s %s", e.Class, e.Point, e.Span)
	}
	return fmt.Sprintf("%s at %s %s, expected one of: %s",
		e.Class, e.Point, e.Span, strings.Join(e.Expected, " "))
}
