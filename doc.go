/*
Package sus is the parsing core of the SUS compiler.

It executes precompiled grammar tables against source text and produces a
concrete syntax tree (CST) with named fields. Package structure is as
follows:

■ charclass: Package charclass classifies Unicode code points into the
identifier-start and identifier-continue classes of the grammar.

■ lexer: Package lexer executes the grammar's lexer DFA, including lex modes
and two-pass keyword reclassification.

■ parser: Package parser decodes the compressed ACTION/GOTO tables and runs
the shift-reduce driver, including field attachment and error recovery.

■ tree: Package tree holds the resulting concrete syntax tree, together with
cursors and listeners for navigating it.

■ grammar: Package grammar carries the generated tables for the SUS language.
The engine consumes these tables as opaque, immutable input data; it never
constructs or edits grammar tables itself.

The base package contains data types which are used throughout all the other
packages.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package sus
