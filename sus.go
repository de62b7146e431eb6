package sus

import "fmt"

// --- Grammar symbols --------------------------------------------------------

// Symbol identifies a grammar symbol (terminal or non-terminal). Symbol ids are
// assigned by the grammar's table generator; the engine treats them as opaque
// dense integers. Two ids are reserved for every grammar:
//
//	EndSymbol   = 0       // synthetic end-of-input terminal
//	ErrorSymbol = 0xffff  // synthetic symbol for error nodes and tokens
type Symbol uint16

// EndSymbol is the synthetic end-of-input terminal, present in every grammar.
const EndSymbol Symbol = 0

// ErrorSymbol tags tokens and nodes produced by error recovery. It is never a
// member of a grammar's symbol table.
const ErrorSymbol Symbol = 0xffff

// SymbolStringer is a type to be provided by a grammar to be able to print out
// symbol names.
type SymbolStringer func(Symbol) string

// --- Tokens -----------------------------------------------------------------

// A Token is a run of input bytes recognized by the lexer, tagged with a
// terminal symbol. Ownership transfers to the parse driver, which either turns
// it into a leaf node (on shift) or attaches it to an error node.
//
// An example would be a token for a number literal:
//
//	Symbol     = 43        // sym_number in the grammar's symbol table
//	Span       = 12…15     // covers bytes 12, 13 and 14 of the input
//	StartPoint = (2, 4)    // row 2, column 4
type Token struct {
	Symbol     Symbol
	Span       Span
	StartPoint Point
	EndPoint   Point
}

// IsEnd is true for the synthetic end-of-input token.
func (t Token) IsEnd() bool {
	return t.Symbol == EndSymbol
}

// IsError is true for tokens produced by lexical error recovery.
func (t Token) IsError() bool {
	return t.Symbol == ErrorSymbol
}

func (t Token) String() string {
	return fmt.Sprintf("token[%d]%s", t.Symbol, t.Span)
}

// --- Points -----------------------------------------------------------------

// Point is a position in the input in terms of rows and columns, both
// 0-based. Columns count bytes, not runes, to keep the lexer allocation-free.
type Point struct {
	Row uint32
	Col uint32
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Before returns true if p is located before other in the input.
func (p Point) Before(other Point) bool {
	return p.Row < other.Row || (p.Row == other.Row && p.Col < other.Col)
}

// --- Spans ------------------------------------------------------------------

// Span is a small type for capturing a run of input bytes. For every terminal
// and non-terminal, the syntax tree tracks which input bytes the symbol
// covers. A span denotes a start position and the position just behind the
// end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) IsNull() bool {
	return s == Span{}
}

func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
