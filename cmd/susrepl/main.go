package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/VonTum/sus-compiler/grammar"
	"github.com/VonTum/sus-compiler/parser"
	"github.com/VonTum/sus-compiler/tree"
	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/

// main() starts an interactive CLI where users may enter SUS source code.
// Input is parsed with the embedded grammar tables and the syntax tree is
// printed as a tree on the terminal. Lines are collected until braces
// balance, so complete modules may be entered across several lines.
//
// A file argument is parsed and printed instead of entering interactive
// mode.
func main() {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	flag.Parse()
	tracer().SetTraceLevel(tracing.TraceLevelFromString(*tlevel))
	p := parser.NewParser(grammar.Tables())
	if flag.NArg() > 0 {
		os.Exit(parseFile(p, flag.Arg(0)))
	}
	pterm.Info.Println("Welcome to the SUS REPL")
	tracer().Infof("Quit with <ctrl>D")
	repl, err := readline.New("sus> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	interact(p, repl)
	println("Good bye!")
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func parseFile(p *parser.Parser, filename string) int {
	src, err := os.ReadFile(filename)
	if err != nil {
		tracer().Errorf("unable to read %s: %v", filename, err)
		return 1
	}
	t, errs := p.Parse(src)
	display(t, errs)
	if len(errs) > 0 {
		return 1
	}
	return 0
}

func interact(p *parser.Parser, repl *readline.Instance) {
	var pending []string
	depth := 0
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if strings.TrimSpace(line) == "" && depth == 0 {
			continue
		}
		pending = append(pending, line)
		depth += braceBalance(line)
		if depth > 0 {
			repl.SetPrompt("...> ")
			continue
		}
		repl.SetPrompt("sus> ")
		input := strings.Join(pending, "\n")
		pending, depth = nil, 0
		t, errs := p.Parse([]byte(input))
		display(t, errs)
	}
}

// braceBalance counts unmatched braces of a line, ignoring those inside
// comments and strings only as far as a line-local scan can.
func braceBalance(line string) int {
	depth := 0
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '{':
			depth++
		case '}':
			depth--
		case '/':
			if i+1 < len(line) && line[i+1] == '/' {
				return depth
			}
		}
	}
	return depth
}

func display(t *tree.Tree, errs []parser.ErrorSpan) {
	for _, e := range errs {
		pterm.Error.Println(e.String())
	}
	root := pterm.NewTreeFromLeveledList(leveledNodes(t, t.Root(), "", nil, 0))
	if err := pterm.DefaultTree.WithRoot(root).Render(); err != nil {
		tracer().Errorf("cannot render tree: %v", err)
	}
}

// leveledNodes flattens the syntax tree into pterm's leveled list format.
// Invisible helper nodes are spliced away, leaves show their source text.
func leveledNodes(t *tree.Tree, n *tree.Node, field string, ll pterm.LeveledList, level int) pterm.LeveledList {
	ll = append(ll, pterm.LeveledListItem{
		Level: level,
		Text:  nodeLabel(t, n, field),
	})
	for _, child := range n.Children() {
		ll = leveledNodes(t, child, n.FieldName(child), ll, level+1)
	}
	return ll
}

func nodeLabel(t *tree.Tree, n *tree.Node, field string) string {
	var b strings.Builder
	if field != "" {
		b.WriteString(pterm.Gray(field + ": "))
	}
	if n.IsError() {
		b.WriteString(pterm.Red(n.Kind()))
	} else {
		b.WriteString(n.Kind())
	}
	if n.IsLeaf() {
		text := t.Text(n)
		if text != "" && text != n.Kind() {
			b.WriteString(" " + pterm.Cyan(fmt.Sprintf("%q", text)))
		}
	}
	b.WriteString(pterm.Gray(" " + n.Span().String()))
	return b.String()
}
