/*
Package tree holds concrete syntax trees (CSTs) produced by the parse driver.

A CST keeps every input token, including trivia such as comments, and mirrors
the grammar's productions. Nodes carry the grammar symbol, a byte span into
the source, row/column points, and named fields: a production may label
children ("name", "condition", ...) and clients retrieve them by label
instead of by child index.

Nodes may be invisible: grammar-internal helper symbols that structure the
tables but are not part of the language's surface syntax. The accessors
Children, NamedChildren and the s-expression dump splice invisible nodes
away, presenting their children in their place, so that clients only ever
see the surface tree.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package tree

import (
	"strings"

	sus "github.com/VonTum/sus-compiler"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'sus.tree'.
func tracer() tracing.Trace {
	return tracing.Select("sus.tree")
}

// ErrorKind is the kind string of nodes produced by error recovery.
const ErrorKind = "ERROR"

// A FieldAssign labels one child node with a field name from the grammar.
type FieldAssign struct {
	Name string
	Node *Node
}

// A Node is one vertex of a concrete syntax tree. Nodes are immutable after
// the parse; they may be shared between goroutines without locking.
type Node struct {
	symbol     sus.Symbol
	kind       string
	named      bool
	visible    bool
	extra      bool
	isError    bool
	hasError   bool
	production int
	span       sus.Span
	startPoint sus.Point
	endPoint   sus.Point
	children   []*Node
	fields     []FieldAssign
}

// NewLeaf creates a terminal node from a token. extra marks trivia (comments
// and friends) that the grammar allows anywhere.
func NewLeaf(sym sus.Symbol, kind string, named bool, extra bool, tok sus.Token) *Node {
	return &Node{
		symbol:     sym,
		kind:       kind,
		named:      named,
		visible:    true,
		extra:      extra,
		production: -1,
		span:       tok.Span,
		startPoint: tok.StartPoint,
		endPoint:   tok.EndPoint,
	}
}

// NewErrorLeaf wraps a token the lexer could not recognize.
func NewErrorLeaf(tok sus.Token) *Node {
	return &Node{
		symbol:     sus.ErrorSymbol,
		kind:       ErrorKind,
		named:      true,
		visible:    true,
		extra:      true,
		isError:    true,
		hasError:   true,
		production: -1,
		span:       tok.Span,
		startPoint: tok.StartPoint,
		endPoint:   tok.EndPoint,
	}
}

// NewInner creates a node for a reduced production. The node's extent is the
// union of the children's extents; a childless node sits zero-width at `at`.
func NewInner(sym sus.Symbol, kind string, named, visible bool, production int,
	children []*Node, fields []FieldAssign, at sus.Span, atPoint sus.Point) *Node {
	//
	n := &Node{
		symbol:     sym,
		kind:       kind,
		named:      named,
		visible:    visible,
		production: production,
		span:       sus.Span{at.From(), at.From()},
		startPoint: atPoint,
		endPoint:   atPoint,
		children:   children,
		fields:     fields,
	}
	n.adoptExtents()
	return n
}

// NewErrorNode groups nodes skipped during error recovery. Error nodes are
// visible and named, but count as extra so that surrounding productions keep
// their shape.
func NewErrorNode(children []*Node, at sus.Span, atPoint sus.Point) *Node {
	n := &Node{
		symbol:     sus.ErrorSymbol,
		kind:       ErrorKind,
		named:      true,
		visible:    true,
		extra:      true,
		isError:    true,
		hasError:   true,
		production: -1,
		span:       sus.Span{at.From(), at.From()},
		startPoint: atPoint,
		endPoint:   atPoint,
		children:   children,
	}
	n.adoptExtents()
	return n
}

func (n *Node) adoptExtents() {
	if len(n.children) > 0 {
		first, last := n.children[0], n.children[len(n.children)-1]
		n.span = sus.Span{first.span.From(), last.span.To()}
		n.startPoint, n.endPoint = first.startPoint, last.endPoint
	}
	for _, ch := range n.children {
		if ch.hasError {
			n.hasError = true
		}
	}
}

// Adopt appends further children to n, extending its extent. The driver uses
// this to attach trailing trivia to the root node; client code never mutates
// nodes.
func (n *Node) Adopt(children ...*Node) {
	n.children = append(n.children, children...)
	n.adoptExtents()
}

// AdoptBefore prepends children to n, extending its extent. Counterpart of
// Adopt for trivia preceding the root node.
func (n *Node) AdoptBefore(children ...*Node) {
	if len(children) == 0 {
		return
	}
	n.children = append(children, n.children...)
	n.adoptExtents()
}

// Symbol returns the node's grammar symbol.
func (n *Node) Symbol() sus.Symbol {
	return n.symbol
}

// Kind returns the node's kind, i.e. the display name of its grammar symbol.
// Anonymous token nodes are named after their text ("{", "=="), error nodes
// have kind ERROR.
func (n *Node) Kind() string {
	return n.kind
}

// IsNamed is true for nodes of named grammar rules. Anonymous nodes, such as
// punctuation tokens, structure the tree but are skipped by NamedChildren.
func (n *Node) IsNamed() bool {
	return n.named
}

// IsVisible is false for grammar-internal helper nodes which the accessors
// splice away.
func (n *Node) IsVisible() bool {
	return n.visible
}

// IsExtra is true for trivia nodes the grammar allows anywhere, and for
// error nodes.
func (n *Node) IsExtra() bool {
	return n.extra
}

// IsError is true for nodes produced by error recovery.
func (n *Node) IsError() bool {
	return n.isError
}

// HasError is true if the subtree below (and including) n contains an error
// node.
func (n *Node) HasError() bool {
	return n.hasError
}

// Production returns the index of the grammar production this node was
// reduced by, or -1 for leaves and error nodes.
func (n *Node) Production() int {
	return n.production
}

// Span returns the byte extent of the node within the source.
func (n *Node) Span() sus.Span {
	return n.span
}

// StartPoint returns the row/column position of the node's first byte.
func (n *Node) StartPoint() sus.Point {
	return n.startPoint
}

// EndPoint returns the row/column position just behind the node's last byte.
func (n *Node) EndPoint() sus.Point {
	return n.endPoint
}

// IsLeaf is true for terminal nodes.
func (n *Node) IsLeaf() bool {
	return len(n.children) == 0 && n.production < 0
}

// RawChildren returns the structural children, including invisible nodes.
// Most clients will want Children or NamedChildren instead.
func (n *Node) RawChildren() []*Node {
	return n.children
}

// Children returns the node's children with invisible nodes spliced away:
// an invisible child is replaced by its own (spliced) children, recursively.
func (n *Node) Children() []*Node {
	if len(n.children) == 0 {
		return nil
	}
	spliced := make([]*Node, 0, len(n.children))
	return appendSpliced(spliced, n.children)
}

func appendSpliced(dest []*Node, children []*Node) []*Node {
	for _, ch := range children {
		if ch.visible {
			dest = append(dest, ch)
		} else {
			dest = appendSpliced(dest, ch.children)
		}
	}
	return dest
}

// ChildCount returns the number of (spliced) children.
func (n *Node) ChildCount() int {
	return len(n.Children())
}

// NamedChildren returns the named nodes among the (spliced) children.
func (n *Node) NamedChildren() []*Node {
	var named []*Node
	for _, ch := range n.Children() {
		if ch.named {
			named = append(named, ch)
		}
	}
	return named
}

// Field returns the first child labelled with the given field name, in
// document order, or nil.
func (n *Node) Field(name string) *Node {
	for _, f := range n.fields {
		if f.Name == name {
			return f.Node
		}
	}
	return nil
}

// Fields returns all children labelled with the given field name, in
// document order.
func (n *Node) Fields(name string) []*Node {
	var nodes []*Node
	for _, f := range n.fields {
		if f.Name == name {
			nodes = append(nodes, f.Node)
		}
	}
	return nodes
}

// FieldAssignments returns all of the node's field labels in document order.
func (n *Node) FieldAssignments() []FieldAssign {
	return n.fields
}

// FieldName returns the field label of a direct child, or "" if the child is
// unlabelled.
func (n *Node) FieldName(child *Node) string {
	for _, f := range n.fields {
		if f.Node == child {
			return f.Name
		}
	}
	return ""
}

// --- Trees -------------------------------------------------------------------

// A Tree ties a root node to the source text it was parsed from.
type Tree struct {
	root *Node
	src  []byte
}

// NewTree creates a tree from a root node and its source text.
func NewTree(root *Node, src []byte) *Tree {
	return &Tree{root: root, src: src}
}

// Root returns the root node of the tree.
func (t *Tree) Root() *Node {
	return t.root
}

// Source returns the source text the tree was parsed from.
func (t *Tree) Source() []byte {
	return t.src
}

// Text returns the slice of the source text covered by a node.
func (t *Tree) Text(n *Node) string {
	if n == nil || n.span.To() > uint64(len(t.src)) {
		return ""
	}
	return string(t.src[n.span.From():n.span.To()])
}

// Dump renders the tree as an s-expression over its named nodes, with field
// labels as prefixes, e.g.
//
//	(source_file (module name: (identifier) block: (block)))
func (t *Tree) Dump() string {
	var sb strings.Builder
	if t.root != nil {
		sexp(&sb, t.root, "")
	}
	return sb.String()
}

func sexp(sb *strings.Builder, n *Node, field string) {
	if sb.Len() > 0 {
		sb.WriteByte(' ')
	}
	if field != "" {
		sb.WriteString(field)
		sb.WriteString(": ")
	}
	sb.WriteByte('(')
	sb.WriteString(n.kind)
	for _, ch := range n.Children() {
		if !ch.named {
			continue
		}
		sexp(sb, ch, fieldNameOf(n, ch))
	}
	sb.WriteByte(')')
}

// fieldNameOf finds the field label of a spliced child, looking through
// invisible intermediate nodes.
func fieldNameOf(n *Node, child *Node) string {
	if name := n.FieldName(child); name != "" {
		return name
	}
	for _, ch := range n.children {
		if !ch.visible && contains(ch, child) {
			return fieldNameOf(ch, child)
		}
	}
	return ""
}

func contains(n *Node, child *Node) bool {
	for _, ch := range n.children {
		if ch == child {
			return true
		}
		if !ch.visible && contains(ch, child) {
			return true
		}
	}
	return false
}
