package parser

import (
	"context"
	"testing"

	sus "github.com/VonTum/sus-compiler"
	"github.com/VonTum/sus-compiler/lexer/lexmach"
	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/timtadh/lexmachine"
)

// A synthetic grammar for testing the driver:
//
//	source_file -> stmt                  production 1
//	stmt        -> word '=' _expr        production 2, fields name/value
//	_expr       -> num                   production 3, invisible
//
// with comments as extras. The handmade tables use both encodings: states 0
// and 1 are large, the rest are small.
const (
	symEnd     sus.Symbol = 0
	symWord    sus.Symbol = 1
	symEq      sus.Symbol = 2
	symNum     sus.Symbol = 3
	symComment sus.Symbol = 4
	symSource  sus.Symbol = 5
	symStmt    sus.Symbol = 6
	symExpr    sus.Symbol = 7
)

func testTables() *Tables {
	return &Tables{
		Language:   "test",
		Version:    1,
		TokenCount: 5,
		Symbols: []SymbolInfo{
			symEnd:     {Name: "end"},
			symWord:    {Name: "identifier", Named: true, Visible: true},
			symEq:      {Name: "=", Visible: true},
			symNum:     {Name: "number", Named: true, Visible: true},
			symComment: {Name: "comment", Named: true, Visible: true},
			symSource:  {Name: "source_file", Named: true, Visible: true},
			symStmt:    {Name: "stmt", Named: true, Visible: true},
			symExpr:    {Name: "_expr"},
		},
		Fields:      []string{"", "name", "value"},
		FieldSlices: []FieldMapSlice{{0, 0}, {0, 0}, {0, 2}, {0, 0}},
		FieldEntries: []FieldMapEntry{
			{Field: 1, ChildIndex: 0},
			{Field: 2, ChildIndex: 2},
		},
		StateCount:      8,
		LargeStateCount: 2,
		StartState:      1,
		Large: [][]uint16{
			0: make([]uint16, 8),
			1: {0, 1, 0, 0, 2, 6, 3, 0},
		},
		Small: []SmallState{
			0: {{Value: 3, Symbols: []sus.Symbol{symEq}}, {Value: 2, Symbols: []sus.Symbol{symComment}}},
			1: {{Value: 6, Symbols: []sus.Symbol{symEnd, symComment}}},
			2: {{Value: 4, Symbols: []sus.Symbol{symNum}}, {Value: 2, Symbols: []sus.Symbol{symComment}},
				{Value: 5, Symbols: []sus.Symbol{symExpr}}},
			3: {{Value: 5, Symbols: []sus.Symbol{symEnd, symComment}}},
			4: {{Value: 7, Symbols: []sus.Symbol{symEnd}}, {Value: 2, Symbols: []sus.Symbol{symComment}}},
			5: {{Value: 8, Symbols: []sus.Symbol{symEnd, symComment}}},
		},
		Actions: []ActionEntry{
			0: {},
			1: {Actions: []Action{{Type: Shift, State: 2}}},
			2: {Actions: []Action{{Type: ShiftExtra}}},
			3: {Actions: []Action{{Type: Shift, State: 4}}},
			4: {Actions: []Action{{Type: Shift, State: 7}}},
			5: {Actions: []Action{{Type: Reduce, Symbol: symStmt, ChildCount: 3, Production: 2}}},
			6: {Actions: []Action{{Type: Reduce, Symbol: symSource, ChildCount: 1, Production: 1}}},
			7: {Actions: []Action{{Type: Accept}}},
			8: {Actions: []Action{{Type: Reduce, Symbol: symExpr, ChildCount: 1, Production: 3}}},
		},
		LexModes: make([]uint16, 8),
	}
}

// sliceSource feeds a fixed token stream, then end tokens.
type sliceSource struct {
	toks []sus.Token
	i    int
}

func (s *sliceSource) Next(mode uint16) sus.Token {
	if s.i >= len(s.toks) {
		var end uint64
		if len(s.toks) > 0 {
			end = s.toks[len(s.toks)-1].Span.To()
		}
		return sus.Token{Symbol: symEnd, Span: sus.Span{end, end}}
	}
	t := s.toks[s.i]
	s.i++
	return t
}

func tk(sym sus.Symbol, from, to uint64) sus.Token {
	return sus.Token{
		Symbol:     sym,
		Span:       sus.Span{from, to},
		StartPoint: sus.Point{Col: uint32(from)},
		EndPoint:   sus.Point{Col: uint32(to)},
	}
}

func parseToks(t *testing.T, src string, toks ...sus.Token) (string, []ErrorSpan) {
	t.Helper()
	p := NewParser(testTables())
	tr, errs, err := p.ParseFrom(context.Background(), []byte(src), &sliceSource{toks: toks})
	if err != nil {
		t.Fatalf("parse returned %v", err)
	}
	return tr.Dump(), errs
}

func TestParseSimple(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sus.parser")
	defer teardown()
	dump, errs := parseToks(t, "a = 1",
		tk(symWord, 0, 1), tk(symEq, 2, 3), tk(symNum, 4, 5))
	want := "(source_file (stmt name: (identifier) value: (number)))"
	if dump != want {
		t.Errorf("tree dumped as %s, expected %s", dump, want)
	}
	if len(errs) != 0 {
		t.Errorf("expected error-free parse, got %v", errs)
	}
}

func TestParseFieldsThroughInvisible(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sus.parser")
	defer teardown()
	p := NewParser(testTables())
	src := "a = 1"
	toks := &sliceSource{toks: []sus.Token{
		tk(symWord, 0, 1), tk(symEq, 2, 3), tk(symNum, 4, 5)}}
	tr, _, err := p.ParseFrom(context.Background(), []byte(src), toks)
	if err != nil {
		t.Fatal(err)
	}
	stmt := tr.Root().NamedChildren()[0]
	if name := stmt.Field("name"); name == nil || tr.Text(name) != "a" {
		t.Errorf("expected field 'name' to cover \"a\"")
	}
	// 'value' addresses the invisible _expr and must resolve to the number
	value := stmt.Field("value")
	if value == nil {
		t.Fatalf("field 'value' not resolved")
	}
	if value.Kind() != "number" || tr.Text(value) != "1" {
		t.Errorf("expected field 'value' on (number) \"1\", got (%s) %q",
			value.Kind(), tr.Text(value))
	}
}

func TestParseInteriorTrivia(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sus.parser")
	defer teardown()
	dump, errs := parseToks(t, "a = //c\n1",
		tk(symWord, 0, 1), tk(symEq, 2, 3), tk(symComment, 4, 7), tk(symNum, 8, 9))
	want := "(source_file (stmt name: (identifier) (comment) value: (number)))"
	if dump != want {
		t.Errorf("tree dumped as %s, expected %s", dump, want)
	}
	if len(errs) != 0 {
		t.Errorf("expected error-free parse, got %v", errs)
	}
}

func TestParseLeadingTrivia(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sus.parser")
	defer teardown()
	dump, _ := parseToks(t, "//c\na = 1",
		tk(symComment, 0, 3), tk(symWord, 4, 5), tk(symEq, 6, 7), tk(symNum, 8, 9))
	want := "(source_file (comment) (stmt name: (identifier) value: (number)))"
	if dump != want {
		t.Errorf("tree dumped as %s, expected %s", dump, want)
	}
}

func TestParseRecoveryPopsStack(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sus.parser")
	defer teardown()
	// 'a b = 1': the first word opens a stmt that never completes; recovery
	// wraps it in an error node and the parse resumes with 'b = 1'.
	dump, errs := parseToks(t, "a b = 1",
		tk(symWord, 0, 1), tk(symWord, 2, 3), tk(symEq, 4, 5), tk(symNum, 6, 7))
	want := "(source_file (ERROR (identifier)) (stmt name: (identifier) value: (number)))"
	if dump != want {
		t.Errorf("tree dumped as %s, expected %s", dump, want)
	}
	wantErrs := []ErrorSpan{{
		Class:    SyntaxError,
		Span:     sus.Span{2, 3},
		Point:    sus.Point{Col: 2},
		Expected: []string{"=", "comment"},
	}}
	if diff := cmp.Diff(wantErrs, errs); diff != "" {
		t.Errorf("error spans differ (-want +got):\n%s", diff)
	}
}

func TestParseRecoverySkipsToken(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sus.parser")
	defer teardown()
	// 'a = = 1': the stray '=' is grouped under an error node inside the stmt,
	// the stmt itself survives.
	dump, errs := parseToks(t, "a = = 1",
		tk(symWord, 0, 1), tk(symEq, 2, 3), tk(symEq, 4, 5), tk(symNum, 6, 7))
	want := "(source_file (stmt name: (identifier) (ERROR) value: (number)))"
	if dump != want {
		t.Errorf("tree dumped as %s, expected %s", dump, want)
	}
	if len(errs) != 1 || errs[0].Class != SyntaxError {
		t.Errorf("expected one syntax error, got %v", errs)
	}
}

func TestParseRecoveryBudgetExhaustion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sus.parser")
	defer teardown()
	// 'a 1 1 1' with a skip budget of one token: every resynchronization
	// attempt exhausts its budget and force-closes the pending construct.
	// Each episode starts at the token after the previous force-close, so
	// the recorded spans are distinct and strictly increasing.
	p := NewParser(testTables(), RecoveryBudget(1))
	toks := &sliceSource{toks: []sus.Token{
		tk(symWord, 0, 1), tk(symNum, 2, 3), tk(symNum, 4, 5), tk(symNum, 6, 7)}}
	tr, errs, err := p.ParseFrom(context.Background(), []byte("a 1 1 1"), toks)
	if err != nil {
		t.Fatal(err)
	}
	if !tr.Root().IsError() {
		t.Errorf("expected an error root, got (%s)", tr.Root().Kind())
	}
	wantErrs := []ErrorSpan{
		{Class: SyntaxError, Span: sus.Span{2, 3}, Point: sus.Point{Col: 2},
			Expected: []string{"=", "comment"}},
		{Class: SyntaxError, Span: sus.Span{4, 5}, Point: sus.Point{Col: 4},
			Expected: []string{"comment", "identifier"}},
		{Class: SyntaxError, Span: sus.Span{6, 7}, Point: sus.Point{Col: 6},
			Expected: []string{"comment", "identifier"}},
	}
	if diff := cmp.Diff(wantErrs, errs); diff != "" {
		t.Errorf("error spans differ (-want +got):\n%s", diff)
	}
	for i := 1; i < len(errs); i++ {
		if errs[i].Span.From() <= errs[i-1].Span.From() {
			t.Errorf("error span #%d does not advance past #%d", i, i-1)
		}
	}
}

func TestParseLexicalError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sus.parser")
	defer teardown()
	dump, errs := parseToks(t, "a § = 1",
		tk(symWord, 0, 1),
		tk(sus.ErrorSymbol, 2, 4),
		tk(symEq, 5, 6), tk(symNum, 7, 8))
	want := "(source_file (stmt name: (identifier) (ERROR) value: (number)))"
	if dump != want {
		t.Errorf("tree dumped as %s, expected %s", dump, want)
	}
	if len(errs) != 1 || errs[0].Class != LexicalError {
		t.Errorf("expected one lexical error, got %v", errs)
	}
	if errs[0].Span != (sus.Span{2, 4}) {
		t.Errorf("expected lexical error at (2…4), got %s", errs[0].Span)
	}
}

func TestParseGiveUp(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sus.parser")
	defer teardown()
	p := NewParser(testTables())
	toks := &sliceSource{toks: []sus.Token{tk(symEq, 0, 1)}}
	tr, errs, err := p.ParseFrom(context.Background(), []byte("="), toks)
	if err != nil {
		t.Fatal(err)
	}
	root := tr.Root()
	if !root.IsError() || !root.HasError() {
		t.Errorf("expected an error root for unparseable input, got (%s)", root.Kind())
	}
	if len(errs) == 0 {
		t.Errorf("expected recorded error spans")
	}
}

func TestParseCancellation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sus.parser")
	defer teardown()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := NewParser(testTables())
	toks := &sliceSource{toks: []sus.Token{tk(symWord, 0, 1)}}
	tr, _, err := p.ParseFrom(ctx, []byte("a"), toks)
	if err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if tr != nil {
		t.Errorf("expected no tree from a cancelled parse")
	}
}

func TestParseWithLexmachine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sus.parser")
	defer teardown()
	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`//[^\n]*`), lexmach.MakeToken(symComment))
		lexer.Add([]byte(`[a-z]+`), lexmach.MakeToken(symWord))
		lexer.Add([]byte(`[0-9]+`), lexmach.MakeToken(symNum))
		lexer.Add([]byte(`( |\t|\n)+`), lexmach.Skip)
	}
	adapter, err := lexmach.NewLMAdapter(init, []string{"="}, nil,
		map[string]sus.Symbol{"=": symEq})
	if err != nil {
		t.Fatal(err)
	}
	src := "a = 1 // trailing"
	scan, err := adapter.Scanner(src)
	if err != nil {
		t.Fatal(err)
	}
	p := NewParser(testTables())
	tr, errs, err := p.ParseFrom(context.Background(), []byte(src), scan)
	if err != nil {
		t.Fatal(err)
	}
	want := "(source_file (stmt name: (identifier) value: (number)) (comment))"
	if dump := tr.Dump(); dump != want {
		t.Errorf("tree dumped as %s, expected %s", dump, want)
	}
	if len(errs) != 0 {
		t.Errorf("expected error-free parse, got %v", errs)
	}
}
