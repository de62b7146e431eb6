/*
Package grammar embeds the precompiled parse tables for the SUS hardware
description language.

The tables are generated from the tree-sitter-sus grammar by
gen/gen_tables.py and checked into tables.go. Clients obtain them through
Tables and hand them to a parser:

	p := parser.NewParser(grammar.Tables())
	tree, errs := p.Parse(src)

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package grammar

import (
	"sync"

	"github.com/VonTum/sus-compiler/parser"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'sus.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("sus.grammar")
}

var validateOnce sync.Once

// Tables returns the parse tables for the SUS language. The tables are
// validated on first use; an inconsistency means the generated embedding is
// corrupt and panics.
func Tables() *parser.Tables {
	validateOnce.Do(func() {
		if err := susTables.Validate(); err != nil {
			tracer().Errorf("embedded grammar tables are inconsistent: %v", err)
			panic(err)
		}
	})
	return susTables
}
