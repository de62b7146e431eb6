package lexer

import (
	"testing"

	sus "github.com/VonTum/sus-compiler"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// A small hand-built DFA for testing, roughly:
//
//	ident  = identstart identcont*      symbol 1
//	number = [0-9]+                     symbol 2
//	plus   = '+'                        symbol 3
//	eq     = '='                        symbol 5
//	eqeq   = '=='                       symbol 6
//	kw_if  = 'if'                       symbol 4, via keyword DFA
//
// with blanks, tabs and newlines skipped.
const (
	tIdent sus.Symbol = iota + 1
	tNumber
	tPlus
	tIf
	tEq
	tEqEq
)

func testDFA() *DFA {
	return &DFA{States: []State{
		0: {EOFNext: 6, Transitions: []Transition{
			{Lo: ' ', Hi: ' ', Next: 0, Skip: true},
			{Lo: '\t', Hi: '\t', Next: 0, Skip: true},
			{Lo: '\n', Hi: '\n', Next: 0, Skip: true},
			{Lo: '0', Hi: '9', Next: 1},
			{Lo: '+', Hi: '+', Next: 2},
			{Lo: '=', Hi: '=', Next: 4},
			{Class: ClassIdentStart, Next: 3},
		}},
		1: {Accept: tNumber, HasAccept: true, EOFNext: NoState, Transitions: []Transition{
			{Lo: '0', Hi: '9', Next: 1},
		}},
		2: {Accept: tPlus, HasAccept: true, EOFNext: NoState},
		3: {Accept: tIdent, HasAccept: true, EOFNext: NoState, Transitions: []Transition{
			{Class: ClassIdentContinue, Next: 3},
		}},
		4: {Accept: tEq, HasAccept: true, EOFNext: NoState, Transitions: []Transition{
			{Lo: '=', Hi: '=', Next: 5},
		}},
		5: {Accept: tEqEq, HasAccept: true, EOFNext: NoState},
		6: {Accept: sus.EndSymbol, HasAccept: true, EOFNext: NoState},
	}}
}

func testKeywordDFA() *DFA {
	return &DFA{States: []State{
		0: {EOFNext: NoState, Transitions: []Transition{
			{Lo: 'i', Hi: 'i', Next: 1},
		}},
		1: {EOFNext: NoState, Transitions: []Transition{
			{Lo: 'f', Hi: 'f', Next: 2},
		}},
		2: {Accept: tIf, HasAccept: true, EOFNext: NoState},
	}}
}

func newTestLexer(src string) *Lexer {
	return New(testDFA(), testKeywordDFA(), tIdent, []byte(src))
}

func collect(l *Lexer) []sus.Token {
	var toks []sus.Token
	for {
		tok := l.Next(0)
		toks = append(toks, tok)
		if tok.IsEnd() {
			return toks
		}
	}
}

func TestLexerSimple(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sus.lexer")
	defer teardown()
	toks := collect(newTestLexer("ab + 12"))
	want := []sus.Symbol{tIdent, tPlus, tNumber, sus.EndSymbol}
	if len(toks) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %v", len(want), len(toks), toks)
	}
	for i, tok := range toks {
		if tok.Symbol != want[i] {
			t.Errorf("token #%d: expected symbol %d, got %d", i, want[i], tok.Symbol)
		}
	}
	if toks[0].Span != (sus.Span{0, 2}) {
		t.Errorf("expected 'ab' to span (0…2), has %s", toks[0].Span)
	}
	if toks[2].Span != (sus.Span{5, 7}) {
		t.Errorf("expected '12' to span (5…7), has %s", toks[2].Span)
	}
}

func TestLexerMaximalMunch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sus.lexer")
	defer teardown()
	toks := collect(newTestLexer("== ="))
	want := []sus.Symbol{tEqEq, tEq, sus.EndSymbol}
	for i, tok := range toks {
		if tok.Symbol != want[i] {
			t.Errorf("token #%d: expected symbol %d, got %d", i, want[i], tok.Symbol)
		}
	}
}

func TestLexerKeywords(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sus.lexer")
	defer teardown()
	toks := collect(newTestLexer("if iffy fi"))
	want := []sus.Symbol{tIf, tIdent, tIdent, sus.EndSymbol}
	for i, tok := range toks {
		if tok.Symbol != want[i] {
			t.Errorf("token #%d: expected symbol %d, got %d", i, want[i], tok.Symbol)
		}
	}
}

func TestLexerPoints(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sus.lexer")
	defer teardown()
	toks := collect(newTestLexer("a\nbc"))
	if p := toks[0].StartPoint; p != (sus.Point{Row: 0, Col: 0}) {
		t.Errorf("expected 'a' to start at (0,0), starts at %s", p)
	}
	if p := toks[1].StartPoint; p != (sus.Point{Row: 1, Col: 0}) {
		t.Errorf("expected 'bc' to start at (1,0), starts at %s", p)
	}
	if p := toks[1].EndPoint; p != (sus.Point{Row: 1, Col: 2}) {
		t.Errorf("expected 'bc' to end at (1,2), ends at %s", p)
	}
}

func TestLexerErrorToken(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sus.lexer")
	defer teardown()
	toks := collect(newTestLexer("a § b"))
	want := []sus.Symbol{tIdent, sus.ErrorSymbol, tIdent, sus.EndSymbol}
	for i, tok := range toks {
		if tok.Symbol != want[i] {
			t.Errorf("token #%d: expected symbol %d, got %d", i, want[i], tok.Symbol)
		}
	}
	if toks[1].Span.Len() != 2 { // '§' is 2 bytes of UTF-8
		t.Errorf("expected error token of length 2, has %s", toks[1].Span)
	}
}

func TestLexerEmptyInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sus.lexer")
	defer teardown()
	toks := collect(newTestLexer("   "))
	if len(toks) != 1 || !toks[0].IsEnd() {
		t.Fatalf("expected a single end token, got %v", toks)
	}
	if toks[0].Span != (sus.Span{3, 3}) {
		t.Errorf("expected end token at (3…3), has %s", toks[0].Span)
	}
}
