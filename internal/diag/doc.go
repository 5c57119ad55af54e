// Package diag carries diagnostics produced by the lexing, parsing, and
// comment-attachment phases: codes, severities, the bounded Bag collector, and
// the Reporter seam the phases report through.
package diag
