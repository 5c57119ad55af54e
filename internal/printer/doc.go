// Package printer renders the IR back to text in canonical form. Layout is
// fixed: one clause per line, set operators on their own line, CTE bodies
// indented one level. Keywords are uppercased, literals are emitted exactly
// as stored, and binary operator spacing comes from a single table.
package printer
