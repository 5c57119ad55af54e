// Package parser builds the IR for a single statement from the lexer's token
// stream. Expressions use precedence climbing over a fixed operator table;
// clauses are accepted in any written order, at most once each. Alongside the
// tree the parser records every comment it saw and every comment anchor it
// opened, in source order, for the attachment pass.
package parser
