/*
Package lexmach adapts lexmachine scanners as token sources for the parse
driver.

The engine's own lexer executes a generated DFA and needs grammar tables to
exist. Tools and tests that want to drive the parser with an ad-hoc token
stream can define their patterns with lexmachine instead and feed the parser
through this adapter. Lex modes are ignored; lexmachine scanners have a
single mode.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package lexmach

import (
	"strings"

	sus "github.com/VonTum/sus-compiler"
	"github.com/npillmayer/schuko/tracing"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// tracer traces with key 'sus.lexer'.
func tracer() tracing.Trace {
	return tracing.Select("sus.lexer")
}

// LMAdapter wraps a compiled lexmachine lexer.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
}

// NewLMAdapter creates a new lexmachine adapter. It receives an init function
// for client patterns, a list of literals ('[', ';', …), a list of keywords
// ("if", "for", …) and a map for translating token strings to grammar
// symbols.
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter(init func(*lexmachine.Lexer), literals []string, keywords []string,
	symbols map[string]sus.Symbol) (*LMAdapter, error) {
	//
	adapter := &LMAdapter{Lexer: lexmachine.NewLexer()}
	if init != nil {
		init(adapter.Lexer)
	}
	for _, lit := range literals {
		r := "\\" + strings.Join(strings.Split(lit, ""), "\\")
		adapter.Lexer.Add([]byte(r), MakeToken(symbols[lit]))
	}
	for _, name := range keywords {
		adapter.Lexer.Add([]byte(strings.ToLower(name)), MakeToken(symbols[name]))
	}
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// Scanner creates a token source for a given input.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return nil, err
	}
	return &LMScanner{scanner: s, length: len(input)}, nil
}

// LMScanner scans one input text. It satisfies the parse driver's
// TokenSource interface.
type LMScanner struct {
	scanner *lexmachine.Scanner
	length  int
}

// Next returns the next token. The mode argument is ignored. Input that
// matches no pattern yields an error token covering the failed span; end of
// input yields the end token.
func (lms *LMScanner) Next(mode uint16) sus.Token {
	tok, err, eof := lms.scanner.Next()
	if err != nil {
		if ui, is := err.(*machines.UnconsumedInput); is {
			lms.scanner.TC = ui.FailTC
			if ui.FailTC <= ui.StartTC { // always make progress
				lms.scanner.TC = ui.StartTC + 1
			}
			tracer().Debugf("unconsumed input at %d…%d", ui.StartTC, lms.scanner.TC)
			return sus.Token{
				Symbol:     sus.ErrorSymbol,
				Span:       sus.Span{uint64(ui.StartTC), uint64(lms.scanner.TC)},
				StartPoint: sus.Point{Row: uint32(ui.StartLine - 1), Col: uint32(ui.StartColumn - 1)},
				EndPoint:   sus.Point{Row: uint32(ui.FailLine - 1), Col: uint32(ui.FailColumn)},
			}
		}
		tracer().Errorf("scanner error: %v", err)
		eof = true
	}
	if eof {
		end := uint64(lms.length)
		return sus.Token{Symbol: sus.EndSymbol, Span: sus.Span{end, end}}
	}
	token := tok.(*lexmachine.Token)
	return sus.Token{
		Symbol:     sus.Symbol(token.Type),
		Span:       sus.Span{uint64(token.TC), uint64(token.TC + len(token.Lexeme))},
		StartPoint: sus.Point{Row: uint32(token.StartLine - 1), Col: uint32(token.StartColumn - 1)},
		EndPoint:   sus.Point{Row: uint32(token.EndLine - 1), Col: uint32(token.EndColumn)},
	}
}

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token.
func MakeToken(sym sus.Symbol) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(sym), string(m.Bytes), m), nil
	}
}
