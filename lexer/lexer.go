/*
Package lexer executes a grammar's lexer DFA against source bytes.

The lexer is table-driven: all knowledge about the language's tokens lives in
a DFA generated at grammar-compile time and consumed here as opaque data. The
executor implements maximal munch (always prefer the longest match from the
current position), lex modes (the parser selects the DFA entry state matching
its current expectation), and two-pass keyword recognition: identifiers are
scanned by the main DFA and afterwards re-scanned by a keyword DFA covering
the reserved words, which keeps the main DFA's state count independent of the
size of the keyword list.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package lexer

import (
	"unicode/utf8"

	sus "github.com/VonTum/sus-compiler"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'sus.lexer'.
func tracer() tracing.Trace {
	return tracing.Select("sus.lexer")
}

// A Lexer scans one source text. It holds a cursor into the source and the
// immutable DFA tables; the tables may be shared by arbitrarily many lexers,
// the cursor state is exclusive to one parse.
type Lexer struct {
	main     *DFA
	keywords *DFA
	capture  sus.Symbol // token symbol subject to keyword reclassification
	src      []byte
	pos      int
	point    sus.Point
}

// New creates a lexer over src. keywords may be nil for grammars without
// reserved words; capture names the token symbol (usually the generic
// identifier) that triggers the keyword re-scan.
func New(main, keywords *DFA, capture sus.Symbol, src []byte) *Lexer {
	return &Lexer{
		main:     main,
		keywords: keywords,
		capture:  capture,
		src:      src,
	}
}

// Pos returns the current byte offset of the cursor.
func (l *Lexer) Pos() uint64 {
	return uint64(l.pos)
}

// Point returns the current (row, column) position of the cursor.
func (l *Lexer) Point() sus.Point {
	return l.point
}

// Next scans the next token, starting the DFA at entry state mode. The cursor
// advances to the end of the returned token.
//
// Whenever an accepting state is entered, the span scanned so far is recorded
// as a candidate token; scanning continues as long as transitions match, and
// on a dead end the cursor falls back to the longest recorded candidate. Skip
// transitions consume trivia and restart the token behind it.
//
// An unrecognized span yields a token with sus.ErrorSymbol covering all bytes
// consumed before the DFA got stuck (at least one rune); end of input mid-
// token yields the same if the current state is not accepting. Next never
// fails, it only produces error tokens.
func (l *Lexer) Next(mode uint16) sus.Token {
	start := l.pos
	startPoint := l.point
	state := int16(mode)
	var accSym sus.Symbol
	accPos := -1
	var accPoint sus.Point

	for state >= 0 && int(state) < len(l.main.States) {
		st := &l.main.States[state]
		if st.HasAccept {
			accSym, accPos, accPoint = st.Accept, l.pos, l.point
		}
		if l.pos >= len(l.src) {
			if st.EOFNext == NoState {
				break
			}
			state = st.EOFNext // end-of-input edge, consumes nothing
			continue
		}
		r, size := utf8.DecodeRune(l.src[l.pos:])
		tr := st.match(r)
		if tr == nil {
			break
		}
		l.advance(r, size)
		if tr.Skip {
			start, startPoint = l.pos, l.point
			accPos = -1
		}
		state = tr.Next
	}

	if accPos >= 0 {
		l.pos, l.point = accPos, accPoint // fall back to longest match
		tok := sus.Token{
			Symbol:     accSym,
			Span:       sus.Span{uint64(start), uint64(accPos)},
			StartPoint: startPoint,
			EndPoint:   accPoint,
		}
		if tok.Symbol == l.capture && l.keywords != nil {
			if kw, ok := l.reclassify(l.src[start:accPos]); ok {
				tracer().Debugf("reclassified %q to keyword symbol %d", l.src[start:accPos], kw)
				tok.Symbol = kw
			}
		}
		return tok
	}

	if l.pos == start {
		if start >= len(l.src) { // end of input without an end-token edge
			return sus.Token{
				Symbol:     sus.EndSymbol,
				Span:       sus.Span{uint64(start), uint64(start)},
				StartPoint: startPoint,
				EndPoint:   startPoint,
			}
		}
		r, size := utf8.DecodeRune(l.src[l.pos:]) // skip at least one rune
		l.advance(r, size)
	}
	tracer().Debugf("lexical error at %d…%d", start, l.pos)
	return sus.Token{
		Symbol:     sus.ErrorSymbol,
		Span:       sus.Span{uint64(start), uint64(l.pos)},
		StartPoint: startPoint,
		EndPoint:   l.point,
	}
}

// reclassify re-scans an identifier-shaped span through the keyword DFA.
// The span is reclassified only if the DFA lands on an accepting state after
// consuming the span completely, which guarantees that a reserved word
// followed by further identifier characters stays a plain identifier.
func (l *Lexer) reclassify(span []byte) (sus.Symbol, bool) {
	state := int16(0)
	for i := 0; i < len(span); {
		if state < 0 || int(state) >= len(l.keywords.States) {
			return 0, false
		}
		r, size := utf8.DecodeRune(span[i:])
		tr := l.keywords.States[state].match(r)
		if tr == nil {
			return 0, false
		}
		state = tr.Next
		i += size
	}
	if state >= 0 && int(state) < len(l.keywords.States) {
		if st := &l.keywords.States[state]; st.HasAccept {
			return st.Accept, true
		}
	}
	return 0, false
}

// match returns the first transition matching r, or nil.
func (st *State) match(r rune) *Transition {
	for i := range st.Transitions {
		if st.Transitions[i].Matches(r) {
			return &st.Transitions[i]
		}
	}
	return nil
}

func (l *Lexer) advance(r rune, size int) {
	l.pos += size
	if r == '\n' {
		l.point.Row++
		l.point.Col = 0
	} else {
		l.point.Col += uint32(size)
	}
}
