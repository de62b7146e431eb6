package grammar_test

import (
	"testing"

	sus "github.com/VonTum/sus-compiler"
	"github.com/VonTum/sus-compiler/grammar"
	"github.com/VonTum/sus-compiler/parser"
	"github.com/VonTum/sus-compiler/tree"
	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func parseSUS(t *testing.T, input string) (*tree.Tree, []parser.ErrorSpan) {
	t.Helper()
	p := parser.NewParser(grammar.Tables())
	tr, errs := p.Parse([]byte(input))
	if tr == nil || tr.Root() == nil {
		t.Fatalf("parse of %q produced no tree", input)
	}
	return tr, errs
}

func TestGrammarValidates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sus.grammar")
	defer teardown()
	T := grammar.Tables()
	if T.Language != "sus" {
		t.Errorf("expected language 'sus', got %q", T.Language)
	}
	if T.Fingerprint() == "" {
		t.Errorf("embedded tables have no fingerprint")
	}
}

func TestParseEmptyModule(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sus.parser")
	defer teardown()
	tr, errs := parseSUS(t, "module m {}")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	want := "(source_file item: (module name: (identifier) block: (block)))"
	if diff := cmp.Diff(want, tr.Dump()); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
	module := tr.Root().Field("item")
	if module == nil || module.Kind() != "module" {
		t.Fatalf("missing module under source_file, got %v", module)
	}
	if name := module.Field("name"); name == nil || tr.Text(name) != "m" {
		t.Errorf("module name field does not cover 'm'")
	}
}

func TestParseRegisterDeclaration(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sus.parser")
	defer teardown()
	tr, errs := parseSUS(t, "module m {\n\treg int x = 3\n}")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	want := "(source_file item: (module name: (identifier) block: (block" +
		" item: (decl_assign_statement assign_left: (assign_left_side" +
		" item: (assign_to write_modifiers: (write_modifiers)" +
		" expr_or_decl: (declaration type: (template_global item: (identifier))" +
		" name: (identifier)))) assign_value: (number)))))"
	if diff := cmp.Diff(want, tr.Dump()); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestParseIfElseFields(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sus.parser")
	defer teardown()
	tr, errs := parseSUS(t, "module m {\n\tif a {b} else {c}\n}")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	block := tr.Root().Field("item").Field("block")
	ifStmt := block.Field("item")
	if ifStmt == nil || ifStmt.Kind() != "if_statement" {
		t.Fatalf("expected if_statement in block, got %v", ifStmt)
	}
	for _, field := range []string{"condition", "then_block", "else_block"} {
		if ifStmt.Field(field) == nil {
			t.Errorf("if_statement lacks field %q", field)
		}
	}
	if cond := ifStmt.Field("condition"); tr.Text(cond) != "a" {
		t.Errorf("condition field covers %q, want 'a'", tr.Text(cond))
	}
}

func TestParseForInRange(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sus.parser")
	defer teardown()
	tr, errs := parseSUS(t, "module m {\n\tfor int i in 0..10 {}\n}")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	want := "(source_file item: (module name: (identifier) block: (block" +
		" item: (for_statement for_decl: (declaration" +
		" type: (template_global item: (identifier)) name: (identifier))" +
		" from: (number) to: (number) block: (block)))))"
	if diff := cmp.Diff(want, tr.Dump()); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
	forStmt := tr.Root().Field("item").Field("block").Field("item")
	if from, to := forStmt.Field("from"), forStmt.Field("to"); tr.Text(from) != "0" || tr.Text(to) != "10" {
		t.Errorf("range bounds cover %q..%q, want 0..10", tr.Text(from), tr.Text(to))
	}
}

func TestParseInterfacePorts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sus.parser")
	defer teardown()
	tr, errs := parseSUS(t, "module m {\n\tinterface go : int a -> int b\n}")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	ports := tr.Root().Field("item").Field("block").Field("item").Field("interface_ports")
	if ports == nil {
		t.Fatalf("interface_statement lacks interface_ports field")
	}
	if ports.Field("inputs") == nil || ports.Field("outputs") == nil {
		t.Errorf("interface_ports lacks inputs/outputs fields")
	}
}

func TestParseKeywordPrefixIdentifier(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sus.parser")
	defer teardown()
	// 'iffy' shares a prefix with the keyword 'if' but is an identifier
	tr, errs := parseSUS(t, "module m {\n\tint iffy = 1\n}")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	decl := tr.Root().Field("item").Field("block").Field("item").
		Field("assign_left").Field("item").Field("expr_or_decl")
	if decl == nil || decl.Kind() != "declaration" {
		t.Fatalf("expected a declaration, got %v", decl)
	}
	if name := decl.Field("name"); tr.Text(name) != "iffy" {
		t.Errorf("declared name covers %q, want 'iffy'", tr.Text(name))
	}
}

func TestParseUnterminatedBlockComment(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sus.parser")
	defer teardown()
	input := "module m {\n/* abc"
	tr, errs := parseSUS(t, input)
	if len(errs) == 0 {
		t.Fatalf("expected errors for unterminated comment")
	}
	if errs[0].Class != parser.LexicalError {
		t.Errorf("expected a lexical error first, got %v", errs[0])
	}
	if errs[0].Span.To() != uint64(len(input)) {
		t.Errorf("error token ends at %d, want end of input %d", errs[0].Span.To(), len(input))
	}
	if !tr.Root().HasError() {
		t.Errorf("tree does not flag the error")
	}
}

func TestParseRecoveryKeepsSiblings(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sus.parser")
	defer teardown()
	tr, errs := parseSUS(t, "module m {\n\tint y = 1\n\tx[\n}")
	if len(errs) != 1 || errs[0].Class != parser.SyntaxError {
		t.Fatalf("expected one syntax error, got %v", errs)
	}
	want := "(source_file item: (module name: (identifier) block: (block" +
		" item: (decl_assign_statement assign_left: (assign_left_side" +
		" item: (assign_to expr_or_decl: (declaration" +
		" type: (template_global item: (identifier)) name: (identifier))))" +
		" assign_value: (number)) (ERROR (template_global item: (identifier))))))"
	if diff := cmp.Diff(want, tr.Dump()); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestParseLexicalGarbage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sus.parser")
	defer teardown()
	tr, errs := parseSUS(t, "module m {\n\tint x = 1 $ 2\n}")
	lexical := 0
	for _, e := range errs {
		if e.Class == parser.LexicalError {
			lexical++
		}
	}
	if lexical == 0 {
		t.Fatalf("expected lexical errors, got %v", errs)
	}
	// the surrounding statement still parses
	stmt := tr.Root().Field("item").Field("block").Field("item")
	if stmt == nil || stmt.Kind() != "decl_assign_statement" {
		t.Errorf("statement around garbage not recovered, got %v", stmt)
	}
}

func TestParseEmptyInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sus.parser")
	defer teardown()
	tr, errs := parseSUS(t, "")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if diff := cmp.Diff("(source_file)", tr.Dump()); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestParseCommentOnlyInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sus.parser")
	defer teardown()
	tr, errs := parseSUS(t, "// hello\n")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if diff := cmp.Diff("(source_file (single_line_comment))", tr.Dump()); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestParseCoversInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sus.parser")
	defer teardown()
	inputs := []string{
		"module m {}",
		"module m {\n\treg int x = 3\n}",
		"module m {\n\tint y = 1\n\tx[\n}",
		"module m {\n\tint x = 1 $ 2\n}",
	}
	for _, input := range inputs {
		tr, _ := parseSUS(t, input)
		var leaves []*tree.Node
		collectLeaves(tr.Root(), &leaves)
		var at uint64
		for _, leaf := range leaves {
			span := leaf.Span()
			if span.From() < at {
				t.Errorf("%q: leaf spans overlap at %d", input, span.From())
			}
			for _, r := range input[at:span.From()] {
				if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
					t.Errorf("%q: non-whitespace gap before %d", input, span.From())
				}
			}
			at = span.To()
		}
	}
}

func collectLeaves(n *tree.Node, out *[]*tree.Node) {
	if n.IsLeaf() {
		if n.Span().Len() > 0 {
			*out = append(*out, n)
		}
		return
	}
	for _, c := range n.RawChildren() {
		collectLeaves(c, out)
	}
}

func TestParseDeterministic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sus.parser")
	defer teardown()
	input := "module m {\n\tif a {b} else {c}\n}"
	first, _ := parseSUS(t, input)
	second, _ := parseSUS(t, input)
	if diff := cmp.Diff(first.Dump(), second.Dump()); diff != "" {
		t.Errorf("repeated parses differ (-first +second):\n%s", diff)
	}
}

func TestParseNodeExtents(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sus.parser")
	defer teardown()
	input := "module m {}"
	tr, _ := parseSUS(t, input)
	module := tr.Root().Field("item")
	if module.Span() != (sus.Span{0, uint64(len(input))}) {
		t.Errorf("module span %v does not cover the input", module.Span())
	}
	if module.StartPoint() != (sus.Point{Row: 0, Col: 0}) {
		t.Errorf("module starts at %v, want row 0 col 0", module.StartPoint())
	}
}
