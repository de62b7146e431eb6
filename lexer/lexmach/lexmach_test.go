package lexmach

import (
	"testing"

	sus "github.com/VonTum/sus-compiler"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/timtadh/lexmachine"
)

const (
	symWord sus.Symbol = iota + 1
	symNum
	symEq
)

func testAdapter(t *testing.T) *LMAdapter {
	t.Helper()
	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`[a-z]+`), MakeToken(symWord))
		lexer.Add([]byte(`[0-9]+`), MakeToken(symNum))
		lexer.Add([]byte(`( |\t|\n)+`), Skip)
	}
	adapter, err := NewLMAdapter(init, []string{"="}, nil, map[string]sus.Symbol{"=": symEq})
	if err != nil {
		t.Fatal(err)
	}
	return adapter
}

func TestLMScan(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sus.lexer")
	defer teardown()
	sc, err := testAdapter(t).Scanner("x = 42")
	if err != nil {
		t.Fatal(err)
	}
	want := []struct {
		sym  sus.Symbol
		span sus.Span
	}{
		{symWord, sus.Span{0, 1}},
		{symEq, sus.Span{2, 3}},
		{symNum, sus.Span{4, 6}},
		{sus.EndSymbol, sus.Span{6, 6}},
	}
	for i, w := range want {
		tok := sc.Next(0)
		if tok.Symbol != w.sym || tok.Span != w.span {
			t.Errorf("token #%d is %v %s, want %v %s", i, tok.Symbol, tok.Span, w.sym, w.span)
		}
	}
}

func TestLMUnconsumedInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sus.lexer")
	defer teardown()
	sc, err := testAdapter(t).Scanner("a ? b")
	if err != nil {
		t.Fatal(err)
	}
	if tok := sc.Next(0); tok.Symbol != symWord {
		t.Fatalf("expected a word first, got %v", tok)
	}
	tok := sc.Next(0)
	if !tok.IsError() {
		t.Fatalf("expected an error token for '?', got %v", tok)
	}
	if tok.Span != (sus.Span{2, 3}) {
		t.Errorf("error token covers %s, want (2…3)", tok.Span)
	}
	// the scanner moved past the bad input and keeps producing tokens
	if tok := sc.Next(0); tok.Symbol != symWord || tok.Span != (sus.Span{4, 5}) {
		t.Errorf("expected a word after the error, got %v %s", tok.Symbol, tok.Span)
	}
	if tok := sc.Next(0); !tok.IsEnd() {
		t.Errorf("expected end of input, got %v", tok)
	}
}
