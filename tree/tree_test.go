package tree

import (
	"strings"
	"testing"

	sus "github.com/VonTum/sus-compiler"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// Hand-built tree for "let x = 1", with an invisible _expr node between the
// let statement and the number literal:
//
//	(let_stmt "let" (identifier) "=" [_expr (number)])
func testTree() *Tree {
	src := []byte("let x = 1")
	tok := func(sym sus.Symbol, from, to uint64) sus.Token {
		return sus.Token{
			Symbol:     sym,
			Span:       sus.Span{from, to},
			StartPoint: sus.Point{Row: 0, Col: uint32(from)},
			EndPoint:   sus.Point{Row: 0, Col: uint32(to)},
		}
	}
	kwLet := NewLeaf(1, "let", false, false, tok(1, 0, 3))
	ident := NewLeaf(2, "identifier", true, false, tok(2, 4, 5))
	eq := NewLeaf(3, "=", false, false, tok(3, 6, 7))
	number := NewLeaf(4, "number", true, false, tok(4, 8, 9))
	expr := NewInner(5, "_expr", true, false, 2, []*Node{number}, nil,
		number.Span(), number.StartPoint())
	stmt := NewInner(6, "let_stmt", true, true, 1,
		[]*Node{kwLet, ident, eq, expr},
		[]FieldAssign{{Name: "name", Node: ident}, {Name: "value", Node: number}},
		sus.Span{0, 9}, sus.Point{})
	return NewTree(stmt, src)
}

func TestNodeSplicing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sus.tree")
	defer teardown()
	root := testTree().Root()
	if len(root.RawChildren()) != 4 {
		t.Errorf("expected 4 raw children, got %d", len(root.RawChildren()))
	}
	children := root.Children()
	if len(children) != 4 {
		t.Fatalf("expected 4 spliced children, got %d", len(children))
	}
	if children[3].Kind() != "number" {
		t.Errorf("expected _expr spliced to (number), got (%s)", children[3].Kind())
	}
	named := root.NamedChildren()
	if len(named) != 2 {
		t.Fatalf("expected 2 named children, got %d", len(named))
	}
	if named[0].Kind() != "identifier" || named[1].Kind() != "number" {
		t.Errorf("unexpected named children: %s, %s", named[0].Kind(), named[1].Kind())
	}
}

func TestNodeFields(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sus.tree")
	defer teardown()
	tree := testTree()
	root := tree.Root()
	name := root.Field("name")
	if name == nil || tree.Text(name) != "x" {
		t.Errorf("expected field 'name' to cover \"x\", node is %v", name)
	}
	value := root.Field("value")
	if value == nil || tree.Text(value) != "1" {
		t.Errorf("expected field 'value' to cover \"1\", node is %v", value)
	}
	if root.Field("nosuchfield") != nil {
		t.Errorf("expected no node for unknown field")
	}
	if n := root.FieldName(name); n != "name" {
		t.Errorf("expected reverse field lookup to yield 'name', got %q", n)
	}
}

func TestTreeDump(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sus.tree")
	defer teardown()
	dump := testTree().Dump()
	want := "(let_stmt name: (identifier) value: (number))"
	if dump != want {
		t.Errorf("tree dumped as %s, expected %s", dump, want)
	}
}

func TestNodeExtents(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sus.tree")
	defer teardown()
	root := testTree().Root()
	if root.Span() != (sus.Span{0, 9}) {
		t.Errorf("expected root to span (0…9), has %s", root.Span())
	}
	if root.EndPoint() != (sus.Point{Row: 0, Col: 9}) {
		t.Errorf("expected root to end at (0,9), ends at %s", root.EndPoint())
	}
}

func TestErrorFlagPropagation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sus.tree")
	defer teardown()
	bad := NewErrorLeaf(sus.Token{Symbol: sus.ErrorSymbol, Span: sus.Span{0, 1}})
	parent := NewInner(7, "block", true, true, 3, []*Node{bad}, nil,
		sus.Span{0, 1}, sus.Point{})
	if !parent.HasError() {
		t.Errorf("expected error flag to propagate to parent")
	}
	if parent.IsError() {
		t.Errorf("parent must not itself be an error node")
	}
}

func TestCursorWalk(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sus.tree")
	defer teardown()
	tree := testTree()
	c := tree.SetCursor(nil)
	if _, ok := c.Down(LtoR); !ok {
		t.Fatalf("cannot move cursor down from root")
	}
	kinds := []string{c.Node().Kind()}
	for {
		n, ok := c.Sibling()
		if !ok {
			break
		}
		kinds = append(kinds, n.Kind())
	}
	got := strings.Join(kinds, " ")
	if got != "let identifier = number" {
		t.Errorf("cursor visited [%s]", got)
	}
	if n, ok := c.Up(); !ok || n != tree.Root() {
		t.Errorf("expected cursor to return to root")
	}
}

type countingListener struct {
	leaves int
	inner  int
	fields []string
}

func (l *countingListener) EnterNode(n *Node, ctxt NodeCtxt) bool {
	l.inner++
	return true
}

func (l *countingListener) ExitNode(n *Node, ctxt NodeCtxt) interface{} {
	return l.inner
}

func (l *countingListener) Leaf(n *Node, ctxt NodeCtxt) interface{} {
	l.leaves++
	if ctxt.Field != "" {
		l.fields = append(l.fields, ctxt.Field)
	}
	return nil
}

func TestListenerWalk(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sus.tree")
	defer teardown()
	tree := testTree()
	l := &countingListener{}
	tree.SetCursor(nil).TopDown(l, LtoR, Continue)
	if l.leaves != 4 {
		t.Errorf("expected walk to visit 4 leaves, visited %d", l.leaves)
	}
	if l.inner != 1 {
		t.Errorf("expected walk to enter 1 inner node, entered %d", l.inner)
	}
	got := strings.Join(l.fields, " ")
	if got != "name value" {
		t.Errorf("expected field labels [name value], got [%s]", got)
	}
}
