/*
Package parser runs a shift-reduce automaton over compressed grammar tables.

The parser is the generic half of a table-driven engine: all knowledge about
the language lives in a Tables value produced by the grammar's table
generator, the driver in this package merely executes it. It maintains a
stack of (state, subtree) pairs, consults the ACTION/GOTO tables with the
current state and lookahead terminal, and shifts, reduces or recovers until
the input is accepted. Reductions attach named fields to the new node as
described by the grammar's field maps.

Errors never abort a parse. Lexical errors become error leaves, syntax
errors trigger bounded resynchronization: the driver skips lookahead tokens
and unwinds the stack until a state is found that has an action for the
lookahead, grouping everything skipped under an error node. The result is
always a complete tree covering the input, plus a list of error spans.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package parser

import (
	"context"

	sus "github.com/VonTum/sus-compiler"
	"github.com/VonTum/sus-compiler/lexer"
	"github.com/VonTum/sus-compiler/tree"
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'sus.parser'.
func tracer() tracing.Trace {
	return tracing.Select("sus.parser")
}

// DefaultRecoveryBudget bounds the number of lookahead tokens a single
// resynchronization attempt may skip before the pending construct is
// force-closed as an error node.
const DefaultRecoveryBudget = 32

// A TokenSource feeds terminals to the parse driver. mode selects the lexer
// DFA entry state; sources that do not support modes may ignore it.
type TokenSource interface {
	Next(mode uint16) sus.Token
}

// A Parser executes one grammar. Parsers are stateless between calls and may
// be shared by concurrent goroutines; per-parse state lives on the stack of
// Parse.
type Parser struct {
	tables   *Tables
	keywords map[sus.Symbol]bool
	budget   int
}

// Option configures a Parser.
type Option func(*Parser)

// RecoveryBudget overrides the token-skip bound of error resynchronization.
func RecoveryBudget(n int) Option {
	return func(p *Parser) {
		if n > 0 {
			p.budget = n
		}
	}
}

// NewParser creates a parser for a grammar. The tables are trusted input;
// call Tables.Validate to check an embedding of unknown provenance.
func NewParser(tables *Tables, opts ...Option) *Parser {
	p := &Parser{
		tables:   tables,
		keywords: tables.KeywordSymbols(),
		budget:   DefaultRecoveryBudget,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse parses a complete source text. It always returns a tree; if the
// input contained errors, the tree contains error nodes and the error list
// locates them.
func (p *Parser) Parse(src []byte) (*tree.Tree, []ErrorSpan) {
	t, errs, _ := p.ParseContext(context.Background(), src)
	return t, errs
}

// ParseContext is Parse with cancellation. The context is polled between
// token steps; on cancellation the parse stops and returns ctx.Err together
// with a nil tree.
func (p *Parser) ParseContext(ctx context.Context, src []byte) (*tree.Tree, []ErrorSpan, error) {
	T := p.tables
	lex := lexer.New(T.Lexer, T.Keywords, T.KeywordCapture, src)
	return p.ParseFrom(ctx, src, lex)
}

// ParseFrom parses tokens from an arbitrary source. Parse and ParseContext
// funnel into this; tests and tooling may feed hand-made token streams.
func (p *Parser) ParseFrom(ctx context.Context, src []byte, toks TokenSource) (*tree.Tree, []ErrorSpan, error) {
	s := &session{
		p:    p,
		T:    p.tables,
		toks: toks,
		errs: arraylist.New(),
	}
	s.push(p.tables.StartState, nil)
	root, err := s.run(ctx)
	if err != nil {
		return nil, s.errorSpans(), err
	}
	return tree.NewTree(root, src), s.errorSpans(), nil
}

// --- Parse session -----------------------------------------------------------

type stackItem struct {
	state uint16
	node  *tree.Node
}

// session is the per-parse state of the driver.
type session struct {
	p     *Parser
	T     *Tables
	toks  TokenSource
	stack []stackItem
	errs  *arraylist.List
}

func (s *session) run(ctx context.Context) (*tree.Node, error) {
	look := s.next()
	for {
		if err := ctx.Err(); err != nil {
			tracer().Infof("parse cancelled: %v", err)
			return nil, err
		}
		state := s.state()
		acts := s.T.ActionsFor(state, look.Symbol)
		if len(acts) == 0 && s.p.keywords[look.Symbol] {
			// a reserved word where only an identifier fits
			if fallback := s.T.ActionsFor(state, s.T.KeywordCapture); len(fallback) > 0 {
				look.Symbol = s.T.KeywordCapture
				acts = fallback
			}
		}
		if len(acts) == 0 {
			if look.IsError() {
				s.recordLexical(look)
				s.pushExtra(tree.NewErrorLeaf(look))
				look = s.next()
				continue
			}
			var root *tree.Node
			look, root = s.recover(look)
			if root != nil {
				return root, nil
			}
			continue
		}
		consumed := false
		reduced := false
		for _, a := range acts {
			tracer().Debugf("state %d, lookahead %s: %s", s.state(), s.T.SymbolName(look.Symbol), a)
			switch a.Type {
			case Shift, ShiftRepeat:
				s.push(a.State, s.leaf(look, false))
				consumed = true
			case ShiftExtra:
				s.pushExtra(s.leaf(look, true))
				consumed = true
			case Reduce:
				// conflict entries carry alternative reductions; the first one
				// wins, only a paired repetition shift may follow it
				if reduced {
					continue
				}
				s.reduce(a, look)
				reduced = true
			case Accept:
				return s.accept(), nil
			case Recover:
				// the driver never enters the generator's recovery state
			}
			if consumed {
				break
			}
		}
		if consumed {
			look = s.next()
		}
	}
}

// next pulls a token, with the lex mode of the current parse state.
func (s *session) next() sus.Token {
	return s.toks.Next(s.T.LexMode(s.state()))
}

func (s *session) state() uint16 {
	return s.stack[len(s.stack)-1].state
}

func (s *session) push(state uint16, n *tree.Node) {
	s.stack = append(s.stack, stackItem{state: state, node: n})
}

// pushExtra pushes a trivia or error node; the automaton state stays put.
func (s *session) pushExtra(n *tree.Node) {
	s.push(s.state(), n)
}

func (s *session) leaf(tok sus.Token, extra bool) *tree.Node {
	info := s.T.Symbols[tok.Symbol]
	return tree.NewLeaf(tok.Symbol, info.Name, info.Named, extra, tok)
}

// reduce pops a production's children and pushes the reduced node under the
// GOTO successor state. Trivia interspersed between the children is popped
// along with them but does not count against the production's length.
func (s *session) reduce(a Action, look sus.Token) {
	i := len(s.stack)
	for n := a.ChildCount; n > 0 && i > 1; {
		i--
		if !s.stack[i].node.IsExtra() {
			n--
		}
	}
	var children []*tree.Node
	if i < len(s.stack) {
		children = make([]*tree.Node, len(s.stack)-i)
		for j, item := range s.stack[i:] {
			children[j] = item.node
		}
		s.stack = s.stack[:i]
	}
	info := s.T.Symbols[a.Symbol]
	fields := s.resolveFields(a, children)
	at := sus.Span{look.Span.From(), look.Span.From()}
	node := tree.NewInner(a.Symbol, info.Name, info.Named, info.Visible, int(a.Production),
		children, fields, at, look.StartPoint)
	target, ok := s.T.Goto(s.state(), a.Symbol)
	if !ok {
		// cannot happen with consistent tables; keep the state to stay afloat
		tracer().Errorf("no goto for %s in state %d", s.T.SymbolName(a.Symbol), s.state())
		target = s.state()
	}
	tracer().Debugf("reduced %d children to %s, goto %d", len(children), info.Name, target)
	s.push(target, node)
}

// resolveFields applies a production's field map to freshly popped children.
// Field maps address structural children; a non-inherited entry labels the
// child itself (expanding invisible children to the visible nodes they
// splice to), an inherited entry carries the labels the invisible child
// already resolved for that field.
func (s *session) resolveFields(a Action, children []*tree.Node) []tree.FieldAssign {
	entries := s.T.FieldMap(a.Production)
	if len(entries) == 0 {
		return nil
	}
	var fields []tree.FieldAssign
	structIdx := uint16(0)
	for _, ch := range children {
		if ch.IsExtra() {
			continue
		}
		for _, e := range entries {
			if e.ChildIndex != structIdx {
				continue
			}
			name := s.T.Fields[e.Field]
			if e.Inherited {
				for _, fa := range ch.FieldAssignments() {
					if fa.Name == name {
						fields = append(fields, fa)
					}
				}
			} else {
				fields = appendFieldTargets(fields, name, ch)
			}
		}
		structIdx++
	}
	return fields
}

func appendFieldTargets(fields []tree.FieldAssign, name string, n *tree.Node) []tree.FieldAssign {
	if n.IsVisible() {
		return append(fields, tree.FieldAssign{Name: name, Node: n})
	}
	for _, ch := range n.RawChildren() {
		if ch.IsExtra() {
			continue
		}
		fields = appendFieldTargets(fields, name, ch)
	}
	return fields
}

// accept finishes the parse. Trivia that never got absorbed by a reduction,
// e.g. a comment preceding the first construct of the file, still sits on
// the stack and is adopted by the root node.
func (s *session) accept() *tree.Node {
	items := s.stack[1:]
	rootIdx := -1
	for i := len(items) - 1; i >= 0; i-- {
		if !items[i].node.IsExtra() {
			rootIdx = i
			break
		}
	}
	if rootIdx < 0 {
		// nothing but stray trivia; should not happen with consistent tables
		nodes := make([]*tree.Node, len(items))
		for i, item := range items {
			nodes[i] = item.node
		}
		return tree.NewErrorNode(nodes, sus.Span{}, sus.Point{})
	}
	root := items[rootIdx].node
	var lead, trail []*tree.Node
	for i := 0; i < rootIdx; i++ {
		lead = append(lead, items[i].node)
	}
	for i := rootIdx + 1; i < len(items); i++ {
		trail = append(trail, items[i].node)
	}
	root.AdoptBefore(lead...)
	root.Adopt(trail...)
	tracer().Infof("input accepted, root %s %s", root.Kind(), root.Span())
	return root
}

// --- Error recovery ----------------------------------------------------------

// recover resynchronizes after a syntax error. It skips lookahead tokens,
// bounded by the recovery budget, until some state on the stack has an
// action for the lookahead; the stack is unwound to that state and
// everything in between, skipped tokens included, is grouped under an error
// node pushed as trivia. On budget exhaustion the outermost pending
// construct is force-closed the same way, so the parse always terminates
// with a best-effort tree. A non-nil second return value is a finished root,
// produced when not even end-of-input can be resynchronized.
func (s *session) recover(look sus.Token) (sus.Token, *tree.Node) {
	s.recordSyntax(look)
	var skipped []*tree.Node
	budget := s.p.budget
	for {
		for k := len(s.stack) - 1; k >= 0; k-- {
			if len(s.T.ActionsFor(s.stack[k].state, look.Symbol)) == 0 {
				continue
			}
			if k == len(s.stack)-1 && len(skipped) == 0 {
				continue // nothing to wrap
			}
			s.wrapError(k, skipped, look)
			return look, nil
		}
		if look.IsEnd() {
			// not even end-of-input fits anywhere: close out the whole stack
			nodes := make([]*tree.Node, 0, len(s.stack)-1+len(skipped))
			for _, item := range s.stack[1:] {
				nodes = append(nodes, item.node)
			}
			nodes = append(nodes, skipped...)
			at := sus.Span{look.Span.From(), look.Span.From()}
			tracer().Infof("parse gave up, %d nodes under error root", len(nodes))
			return look, tree.NewErrorNode(nodes, at, look.StartPoint)
		}
		if budget <= 0 {
			// force-close the outermost pending construct and retry
			s.wrapError(0, skipped, look)
			return look, nil
		}
		tracer().Debugf("recovery skips %s", s.T.SymbolName(look.Symbol))
		skipped = append(skipped, s.skippedLeaf(look))
		budget--
		look = s.toks.Next(s.T.LexMode(0))
	}
}

// wrapError pops the stack down to item k and pushes an error node over the
// popped subtrees and the skipped tokens.
func (s *session) wrapError(k int, skipped []*tree.Node, look sus.Token) {
	popped := s.stack[k+1:]
	children := make([]*tree.Node, 0, len(popped)+len(skipped))
	for _, item := range popped {
		children = append(children, item.node)
	}
	children = append(children, skipped...)
	s.stack = s.stack[:k+1]
	at := sus.Span{look.Span.From(), look.Span.From()}
	node := tree.NewErrorNode(children, at, look.StartPoint)
	tracer().Debugf("resynchronized at state %d, error node %s", s.state(), node.Span())
	s.pushExtra(node)
}

func (s *session) skippedLeaf(tok sus.Token) *tree.Node {
	if tok.IsError() {
		s.recordLexical(tok)
		return tree.NewErrorLeaf(tok)
	}
	return s.leaf(tok, false)
}

func (s *session) recordLexical(tok sus.Token) {
	s.errs.Add(ErrorSpan{
		Class: LexicalError,
		Span:  tok.Span,
		Point: tok.StartPoint,
	})
}

func (s *session) recordSyntax(tok sus.Token) {
	e := ErrorSpan{
		Class:    SyntaxError,
		Span:     tok.Span,
		Point:    tok.StartPoint,
		Expected: s.T.ExpectedSymbols(s.state()),
	}
	tracer().Infof("%s", e)
	s.errs.Add(e)
}

func (s *session) errorSpans() []ErrorSpan {
	if s.errs.Size() == 0 {
		return nil
	}
	spans := make([]ErrorSpan, 0, s.errs.Size())
	s.errs.Each(func(_ int, v interface{}) {
		spans = append(spans, v.(ErrorSpan))
	})
	return spans
}
