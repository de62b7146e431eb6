package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/

import (
	sus "github.com/VonTum/sus-compiler"
)

// A Cursor is a movable mark within a syntax tree, intended for navigating
// over nodes without materializing child slices at every step. Cursors see
// the spliced view of the tree: invisible helper nodes are skipped.
type Cursor struct {
	tree    *Tree
	current *Node
	stack   []frame
}

type frame struct {
	parent   *Node
	siblings []*Node
	index    int
}

// SetCursor sets up a cursor at a given node. If n is nil, the cursor starts
// at the root of the tree.
func (t *Tree) SetCursor(n *Node) *Cursor {
	if n == nil {
		n = t.root
	}
	if n == nil {
		return nil
	}
	return &Cursor{
		tree:    t,
		current: n,
		stack:   make([]frame, 0, 32),
	}
}

// Node returns the node the cursor currently rests on.
func (c *Cursor) Node() *Node {
	return c.current
}

// Field returns the field label of the current node within its parent, or ""
// if the node is unlabelled or the cursor is at its start node.
func (c *Cursor) Field() string {
	if len(c.stack) == 0 {
		return ""
	}
	return fieldNameOf(c.stack[len(c.stack)-1].parent, c.current)
}

// Up moves the cursor to the parent of the current node, if any.
func (c *Cursor) Up() (*Node, bool) {
	if len(c.stack) == 0 {
		return c.current, false
	}
	top := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	c.current = top.parent
	tracer().Debugf("UP cursor @ %s", c.current.Kind())
	return c.current, true
}

// Down moves the cursor to the first child of the current node, if any.
// dir lets clients start at either the leftmost child (default) or the
// rightmost child.
func (c *Cursor) Down(dir Direction) (*Node, bool) {
	children := c.current.Children()
	if len(children) == 0 {
		return c.current, false
	}
	index := 0
	if dir == RtoL {
		index = len(children) - 1
	}
	c.stack = append(c.stack, frame{parent: c.current, siblings: children, index: index})
	c.current = children[index]
	tracer().Debugf("DOWN cursor @ %s", c.current.Kind())
	return c.current, true
}

// Sibling moves the cursor to the next sibling of the current node in the
// direction the cursor descended with, if any.
func (c *Cursor) Sibling() (*Node, bool) {
	if len(c.stack) == 0 {
		return c.current, false
	}
	top := &c.stack[len(c.stack)-1]
	next := top.index + 1
	if next >= len(top.siblings) {
		return c.current, false
	}
	top.index = next
	c.current = top.siblings[next]
	tracer().Debugf("SIBLING cursor @ %s", c.current.Kind())
	return c.current, true
}

// TopDown traverses the subtree below the cursor, applying Listener methods
// for all nodes encountered. It returns a user-defined value, calculated by
// the listener.
func (c *Cursor) TopDown(listener Listener, dir Direction, breakmode Breakmode) interface{} {
	tracer().Debugf("TopDown starting at node %s", c.current.Kind())
	return c.traverseTopDown(listener, dir, breakmode, 0)
}

func (c *Cursor) traverseTopDown(listener Listener, dir Direction, breakmode Breakmode, level int) interface{} {
	ctxt := NodeCtxt{
		Span:  c.current.Span(),
		Level: level,
		Field: c.Field(),
	}
	if c.current.IsLeaf() {
		return listener.Leaf(c.current, ctxt)
	}
	doContinue := listener.EnterNode(c.current, ctxt)
	if doContinue || breakmode == Continue {
		if _, ok := c.Down(dir); ok {
			for ; ok; _, ok = c.Sibling() {
				value := c.traverseTopDown(listener, dir, breakmode, level+1)
				tracer().Debugf("child value = %v", value)
			}
			c.Up()
		}
	}
	return listener.ExitNode(c.current, ctxt)
}

// Direction lets clients decide wether children nodes should be traversed
// left-to-right (default) or right-to-left.
type Direction int

// Children nodes may be traversed left-to-right (default) or right-to-left.
const (
	LtoR Direction = 1
	RtoL Direction = -1
)

// Breakmode is a client hint wether to stop traversing on break-signals or
// not.
type Breakmode int

// Setting Continue will always traverse a complete (sub-)tree. Break will
// skip traversing a sub-tree as soon as an Enter-function signals a break.
const (
	Continue Breakmode = iota
	Break
)

// --- Listener ----------------------------------------------------------------

// Listener is a type for walking a syntax tree.
//
// EnterNode returns a boolean value indicating if the traversal should
// continue to the children of this node. ExitNode and Leaf may return
// user-defined values to be propagated upwards of the tree.
type Listener interface {
	EnterNode(*Node, NodeCtxt) bool
	ExitNode(*Node, NodeCtxt) interface{}
	Leaf(*Node, NodeCtxt) interface{}
}

// NodeCtxt is a context structure for Listeners.
type NodeCtxt struct {
	Span  sus.Span // byte extent of the node
	Level int      // nesting level
	Field string   // field label of the node within its parent, or ""
}
