package ir

// Expression is a closed set of expression variants. The tree is strictly
// owned top-down and immutable once built.
type Expression interface {
	exprNode()
}

// Identifier is a plain or dotted name rendered exactly as lexed.
type Identifier struct {
	Name string
}

// Star is the bare * select item or argument.
type Star struct{}

// QualifiedStar is a qualified star like t.*.
type QualifiedStar struct {
	Qualifier string
}

// FuncCall is a function application with an ordered argument list.
type FuncCall struct {
	Name string
	Args []Expression
}

// BinaryOp is a binary operation; Op holds the canonical operator text
// (symbolic operators as lexed, keyword operators uppercased).
type BinaryOp struct {
	Left  Expression
	Op    string
	Right Expression
}

// Literal is any literal with its exact lexed text: suffix, exponent, and
// hex discriminator case preserved verbatim.
type Literal struct {
	Text string
}

// Paren is an explicitly parenthesized sub-expression.
type Paren struct {
	Inner Expression
}

func (*Identifier) exprNode()    {}
func (*Star) exprNode()          {}
func (*QualifiedStar) exprNode() {}
func (*FuncCall) exprNode()      {}
func (*BinaryOp) exprNode()      {}
func (*Literal) exprNode()       {}
func (*Paren) exprNode()         {}
