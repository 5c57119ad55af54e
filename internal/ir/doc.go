// Package ir defines the intermediate representation a parsed statement is
// held in between parsing and printing: a strictly owned, immutable tree of
// statements, clauses, and expressions, with comment anchors on every node
// that owns an output line. Literal text is stored exactly as lexed.
package ir
