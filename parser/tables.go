package parser

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/

import (
	"fmt"

	sus "github.com/VonTum/sus-compiler"
	"github.com/VonTum/sus-compiler/lexer"
	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/sets/treeset"
)

// SymbolInfo describes one grammar symbol.
type SymbolInfo struct {
	Name    string
	Named   bool // named rules yield named tree nodes, anonymous tokens do not
	Visible bool // invisible helper symbols are spliced away in the tree
}

// A FieldMapEntry labels one child of a production with a field. ChildIndex
// counts the production's structural children, i.e. trivia interspersed at
// parse time does not shift the indices. Inherited entries state that the
// field is to be found inside the (invisible) child at ChildIndex, carrying
// the child's own assignments for that field upwards.
type FieldMapEntry struct {
	Field      uint16 // index into Tables.Fields
	ChildIndex uint16
	Inherited  bool
}

// A FieldMapSlice is one production's window into Tables.FieldEntries.
type FieldMapSlice struct {
	Index  uint16
	Length uint16
}

// Tables is the complete, immutable description of one grammar, produced by
// the grammar's table generator and consumed here as opaque data.
//
// The ACTION and GOTO tables are merged and compressed. The first
// LargeStateCount states store a dense row over all symbols; all remaining
// states store run-length groups of symbols sharing a cell value. In either
// encoding, a cell holds an index into Actions if the symbol is a terminal,
// and a GOTO target state if it is a non-terminal. Cell value 0 means "no
// action".
type Tables struct {
	Language string
	Version  int

	Symbols    []SymbolInfo // indexed by symbol id; terminals first
	TokenCount int          // symbols below this id are terminals

	Fields       []string // field id -> field name; id 0 is unused
	FieldSlices  []FieldMapSlice
	FieldEntries []FieldMapEntry

	StateCount      int
	LargeStateCount int
	StartState      uint16
	Large           [][]uint16   // dense rows for the busiest states
	Small           []SmallState // run-length rows for the rest
	Actions         []ActionEntry
	Primary         []uint16 // state id -> canonical state id; nil for identity
	LexModes        []uint16 // parse state -> lexer DFA entry state

	Lexer          *lexer.DFA
	Keywords       *lexer.DFA
	KeywordCapture sus.Symbol
}

// A SmallState row groups symbols sharing a cell value.
type SmallState []SmallEntry

// A SmallEntry is one run of a small state row.
type SmallEntry struct {
	Value   uint16
	Symbols []sus.Symbol
}

// Canonical maps a state to its canonical representative. States whose cores
// are indistinguishable share a canonical id; lookups always go through it.
func (T *Tables) Canonical(state uint16) uint16 {
	if len(T.Primary) == 0 {
		return state
	}
	return T.Primary[state]
}

// lookup finds the raw cell value for (state, symbol), or 0.
func (T *Tables) lookup(state uint16, sym sus.Symbol) uint16 {
	state = T.Canonical(state)
	if int(state) < T.LargeStateCount {
		row := T.Large[state]
		if int(sym) < len(row) {
			return row[sym]
		}
		return 0
	}
	small := int(state) - T.LargeStateCount
	if small >= len(T.Small) {
		return 0
	}
	for _, group := range T.Small[small] {
		for _, s := range group.Symbols {
			if s == sym {
				return group.Value
			}
		}
	}
	return 0
}

// ActionsFor returns the parse actions for a terminal lookahead in a state,
// or nil if the table holds no action for the pair.
func (T *Tables) ActionsFor(state uint16, terminal sus.Symbol) []Action {
	if int(terminal) >= T.TokenCount {
		return nil
	}
	entry := T.lookup(state, terminal)
	if entry == 0 || int(entry) >= len(T.Actions) {
		return nil
	}
	return T.Actions[entry].Actions
}

// Goto returns the GOTO target for a non-terminal in a state.
func (T *Tables) Goto(state uint16, nonterminal sus.Symbol) (uint16, bool) {
	if int(nonterminal) < T.TokenCount {
		return 0, false
	}
	target := T.lookup(state, nonterminal)
	return target, target != 0
}

// LexMode returns the lexer DFA entry state for a parse state. Parse state 0
// is the recovery mode, whose DFA entry state recognizes every token of the
// grammar.
func (T *Tables) LexMode(state uint16) uint16 {
	if int(state) >= len(T.LexModes) {
		return 0
	}
	return T.LexModes[state]
}

// SymbolName returns the display name of a symbol.
func (T *Tables) SymbolName(sym sus.Symbol) string {
	if sym == sus.ErrorSymbol {
		return "ERROR"
	}
	if int(sym) >= len(T.Symbols) {
		return fmt.Sprintf("symbol-%d", sym)
	}
	return T.Symbols[sym].Name
}

// KeywordSymbols collects the terminals produced by keyword reclassification
// of the capture token, i.e. the accept symbols of the keyword DFA.
func (T *Tables) KeywordSymbols() map[sus.Symbol]bool {
	keywords := make(map[sus.Symbol]bool)
	if T.Keywords == nil {
		return keywords
	}
	for _, st := range T.Keywords.States {
		if st.HasAccept {
			keywords[st.Accept] = true
		}
	}
	return keywords
}

// ExpectedSymbols returns the names of all terminals for which a state has an
// action, sorted and deduplicated. Used for error reporting.
func (T *Tables) ExpectedSymbols(state uint16) []string {
	set := treeset.NewWithStringComparator()
	for sym := 0; sym < T.TokenCount; sym++ {
		if T.lookup(state, sus.Symbol(sym)) != 0 {
			set.Add(T.Symbols[sym].Name)
		}
	}
	names := make([]string, 0, set.Size())
	for _, v := range set.Values() {
		names = append(names, v.(string))
	}
	return names
}

// FieldMap returns the field map entries for a production.
func (T *Tables) FieldMap(production uint16) []FieldMapEntry {
	if int(production) >= len(T.FieldSlices) {
		return nil
	}
	slice := T.FieldSlices[production]
	return T.FieldEntries[slice.Index : slice.Index+slice.Length]
}

// Fingerprint returns a stable hash over the table data, suitable for
// detecting that a tree and the grammar it was parsed with belong together.
func (T *Tables) Fingerprint() string {
	h, err := structhash.Hash(T, T.Version)
	if err != nil {
		tracer().Errorf("cannot fingerprint grammar tables: %v", err)
		return ""
	}
	return h
}

// Validate checks the structural consistency of the tables. Inconsistent
// tables indicate a broken generator or a corrupted embedding and are the
// only fatal error class of the engine.
func (T *Tables) Validate() error {
	if len(T.Symbols) == 0 {
		return fmt.Errorf("grammar %q: empty symbol table", T.Language)
	}
	if T.TokenCount <= 0 || T.TokenCount > len(T.Symbols) {
		return fmt.Errorf("grammar %q: token count %d out of range", T.Language, T.TokenCount)
	}
	if T.StateCount <= 0 || int(T.StartState) >= T.StateCount {
		return fmt.Errorf("grammar %q: start state %d out of range", T.Language, T.StartState)
	}
	if len(T.Large) != T.LargeStateCount {
		return fmt.Errorf("grammar %q: %d large rows for %d large states",
			T.Language, len(T.Large), T.LargeStateCount)
	}
	if len(T.Small) != T.StateCount-T.LargeStateCount {
		return fmt.Errorf("grammar %q: %d small rows for %d small states",
			T.Language, len(T.Small), T.StateCount-T.LargeStateCount)
	}
	if len(T.LexModes) != T.StateCount {
		return fmt.Errorf("grammar %q: %d lex modes for %d states",
			T.Language, len(T.LexModes), T.StateCount)
	}
	if len(T.Primary) != 0 && len(T.Primary) != T.StateCount {
		return fmt.Errorf("grammar %q: %d canonical state ids for %d states",
			T.Language, len(T.Primary), T.StateCount)
	}
	for i, row := range T.Large {
		if len(row) != len(T.Symbols) {
			return fmt.Errorf("grammar %q: large row %d covers %d of %d symbols",
				T.Language, i, len(row), len(T.Symbols))
		}
	}
	for i, entry := range T.Actions {
		for _, a := range entry.Actions {
			if err := T.validateAction(a); err != nil {
				return fmt.Errorf("grammar %q: action entry %d: %v", T.Language, i, err)
			}
		}
	}
	for i, slice := range T.FieldSlices {
		if int(slice.Index)+int(slice.Length) > len(T.FieldEntries) {
			return fmt.Errorf("grammar %q: field slice %d exceeds entry table", T.Language, i)
		}
	}
	for i, e := range T.FieldEntries {
		if int(e.Field) >= len(T.Fields) {
			return fmt.Errorf("grammar %q: field entry %d names unknown field %d",
				T.Language, i, e.Field)
		}
	}
	return nil
}

func (T *Tables) validateAction(a Action) error {
	switch a.Type {
	case Shift, ShiftRepeat:
		if int(a.State) >= T.StateCount {
			return fmt.Errorf("shift to unknown state %d", a.State)
		}
	case Reduce:
		if int(a.Symbol) >= len(T.Symbols) {
			return fmt.Errorf("reduce to unknown symbol %d", a.Symbol)
		}
		if int(a.Production) >= len(T.FieldSlices) && len(T.FieldSlices) > 0 {
			return fmt.Errorf("reduce with unknown production %d", a.Production)
		}
	}
	return nil
}
