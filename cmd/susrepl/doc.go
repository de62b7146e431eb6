/*
Package susrepl/main provides an interactive command line tool for the SUS
hardware description language. Lines of SUS source are parsed with the
embedded grammar tables and the resulting syntax tree is rendered on the
terminal, together with any syntax or lexical errors. The tool serves as a
sandbox for grammar experiments and for inspecting how the parser recovers
from malformed input.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/

package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'sus.repl'
func tracer() tracing.Trace {
	return tracing.Select("sus.repl")
}
