package parser

import (
	"testing"

	sus "github.com/VonTum/sus-compiler"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestTablesValidate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sus.parser")
	defer teardown()
	T := testTables()
	if err := T.Validate(); err != nil {
		t.Errorf("consistent tables rejected: %v", err)
	}
	T.LexModes = T.LexModes[:3]
	if err := T.Validate(); err == nil {
		t.Errorf("truncated lex mode table not detected")
	}
}

func TestTablesLookup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sus.parser")
	defer teardown()
	T := testTables()
	// large state
	acts := T.ActionsFor(1, symWord)
	if len(acts) != 1 || acts[0].Type != Shift || acts[0].State != 2 {
		t.Errorf("expected SHIFT(2) for word in state 1, got %v", acts)
	}
	if target, ok := T.Goto(1, symStmt); !ok || target != 3 {
		t.Errorf("expected goto 3 for stmt in state 1, got %d", target)
	}
	// small state
	acts = T.ActionsFor(2, symEq)
	if len(acts) != 1 || acts[0].Type != Shift || acts[0].State != 4 {
		t.Errorf("expected SHIFT(4) for '=' in state 2, got %v", acts)
	}
	if target, ok := T.Goto(4, symExpr); !ok || target != 5 {
		t.Errorf("expected goto 5 for _expr in state 4, got %d", target)
	}
	// absent cells
	if acts := T.ActionsFor(1, symEq); acts != nil {
		t.Errorf("expected no action for '=' in state 1, got %v", acts)
	}
	if _, ok := T.Goto(1, symWord); ok {
		t.Errorf("terminals must not have goto entries")
	}
}

func TestTablesCanonicalStates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sus.parser")
	defer teardown()
	T := testTables()
	if T.Canonical(7) != 7 {
		t.Errorf("expected identity canonicalization without a primary table")
	}
	T.Primary = []uint16{0, 1, 2, 3, 4, 5, 6, 5} // state 7 aliases state 5
	acts := T.ActionsFor(7, symEnd)
	if len(acts) != 1 || acts[0].Type != Reduce || acts[0].Symbol != symStmt {
		t.Errorf("expected aliased state 7 to act like state 5, got %v", acts)
	}
}

func TestTablesExpectedSymbols(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sus.parser")
	defer teardown()
	T := testTables()
	names := T.ExpectedSymbols(2)
	if len(names) != 2 || names[0] != "=" || names[1] != "comment" {
		t.Errorf("expected [= comment] for state 2, got %v", names)
	}
}

func TestTablesFieldMap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sus.parser")
	defer teardown()
	T := testTables()
	entries := T.FieldMap(2)
	if len(entries) != 2 {
		t.Fatalf("expected 2 field entries for production 2, got %d", len(entries))
	}
	if T.Fields[entries[0].Field] != "name" || entries[0].ChildIndex != 0 {
		t.Errorf("unexpected first field entry %v", entries[0])
	}
	if entries := T.FieldMap(1); len(entries) != 0 {
		t.Errorf("expected no field entries for production 1, got %v", entries)
	}
}

func TestTablesFingerprint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sus.parser")
	defer teardown()
	a, b := testTables(), testTables()
	if a.Fingerprint() == "" {
		t.Fatalf("empty fingerprint")
	}
	if a.Fingerprint() != b.Fingerprint() {
		t.Errorf("identical tables fingerprint differently")
	}
	b.StartState = 2
	if a.Fingerprint() == b.Fingerprint() {
		t.Errorf("differing tables share a fingerprint")
	}
}

func TestTablesSymbolName(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sus.parser")
	defer teardown()
	T := testTables()
	if name := T.SymbolName(symStmt); name != "stmt" {
		t.Errorf("expected symbol name 'stmt', got %q", name)
	}
	if name := T.SymbolName(sus.ErrorSymbol); name != "ERROR" {
		t.Errorf("expected ERROR for the error symbol, got %q", name)
	}
}
