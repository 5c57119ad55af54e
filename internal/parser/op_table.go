package parser

import (
	"sparkfmt/internal/token"
)

// Binary operator precedence, higher binds tighter. Conditions in WHERE,
// HAVING, and ON parse expressions at precCondition so AND/OR stay list
// connectors instead of becoming expression operators; inside parentheses the
// floor resets and AND/OR parse as ordinary binary operators.
const (
	precOr             = 1  // OR
	precAnd            = 2  // AND
	precFatArrow       = 3  // =>
	precComparison     = 4  // = != <> < <= > >= <=>
	precPipeline       = 5  // |>
	precConcat         = 6  // ||
	precShift          = 7  // << >> >>>
	precAdditive       = 8  // + -
	precMultiplicative = 9  // * / %
	precPostfix        = 10 // :: ->

	precLowest    = precOr
	precCondition = precFatArrow
)

// binaryPrec returns the precedence of a binary operator token, or ok=false
// when the token is not a binary operator. Every operator is left-associative.
func binaryPrec(kind token.Kind) (int, bool) {
	switch kind {
	case token.KwOr:
		return precOr, true
	case token.KwAnd:
		return precAnd, true
	case token.FatArrow:
		return precFatArrow, true
	case token.Eq, token.BangEq, token.LtGt, token.Lt, token.LtEq,
		token.Gt, token.GtEq, token.NullSafeEq:
		return precComparison, true
	case token.PipeGt:
		return precPipeline, true
	case token.PipePipe:
		return precConcat, true
	case token.Shl, token.Shr, token.UShr:
		return precShift, true
	case token.Plus, token.Minus:
		return precAdditive, true
	case token.Star, token.Slash, token.Percent:
		return precMultiplicative, true
	case token.ColonColon, token.Arrow:
		return precPostfix, true
	default:
		return 0, false
	}
}

// opText returns the canonical operator text stored in the IR: symbolic
// operators keep their lexed spelling, keyword operators are uppercased.
func opText(tok token.Token) string {
	switch tok.Kind {
	case token.KwAnd:
		return "AND"
	case token.KwOr:
		return "OR"
	default:
		return tok.Text
	}
}
