package token

import (
	"sparkfmt/internal/source"
)

// Token represents a single source token with its location and leading trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is a numeric, string, or hex literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case NumberLit, StringLit, HexLit, KwNull, KwTrue, KwFalse:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a SQL keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwSelect, KwDistinct, KwFrom, KwWhere, KwGroup, KwBy, KwHaving, KwOrder,
		KwLimit, KwWith, KwAs, KwUnion, KwAll, KwJoin, KwInner, KwLeft, KwRight,
		KwFull, KwCross, KwOuter, KwOn, KwAnd, KwOr, KwAsc, KwDesc, KwNull,
		KwTrue, KwFalse, KwCluster, KwDistribute, KwSort:
		return true
	default:
		return false
	}
}

