package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident

	// KwSelect represents the 'SELECT' keyword.
	KwSelect // SELECT
	// KwDistinct represents the 'DISTINCT' keyword.
	KwDistinct // DISTINCT
	// KwFrom represents the 'FROM' keyword.
	KwFrom // FROM
	// KwWhere represents the 'WHERE' keyword.
	KwWhere // WHERE
	// KwGroup represents the 'GROUP' keyword.
	KwGroup // GROUP
	// KwBy represents the 'BY' keyword.
	KwBy // BY
	// KwHaving represents the 'HAVING' keyword.
	KwHaving // HAVING
	// KwOrder represents the 'ORDER' keyword.
	KwOrder // ORDER
	// KwLimit represents the 'LIMIT' keyword.
	KwLimit // LIMIT
	// KwWith represents the 'WITH' keyword.
	KwWith // WITH
	// KwAs represents the 'AS' keyword.
	KwAs // AS
	// KwUnion represents the 'UNION' keyword.
	KwUnion // UNION
	// KwAll represents the 'ALL' keyword.
	KwAll // ALL
	// KwJoin represents the 'JOIN' keyword.
	KwJoin // JOIN
	// KwInner represents the 'INNER' keyword.
	KwInner // INNER
	// KwLeft represents the 'LEFT' keyword.
	KwLeft // LEFT
	// KwRight represents the 'RIGHT' keyword.
	KwRight // RIGHT
	// KwFull represents the 'FULL' keyword.
	KwFull // FULL
	// KwCross represents the 'CROSS' keyword.
	KwCross // CROSS
	// KwOuter represents the 'OUTER' keyword.
	KwOuter // OUTER
	// KwOn represents the 'ON' keyword.
	KwOn // ON
	// KwAnd represents the 'AND' keyword.
	KwAnd // AND
	// KwOr represents the 'OR' keyword.
	KwOr // OR
	// KwAsc represents the 'ASC' keyword.
	KwAsc // ASC
	// KwDesc represents the 'DESC' keyword.
	KwDesc // DESC
	// KwNull represents the 'NULL' keyword.
	KwNull // NULL
	// KwTrue represents the 'TRUE' keyword.
	KwTrue // TRUE
	// KwFalse represents the 'FALSE' keyword.
	KwFalse // FALSE
	// KwCluster represents the 'CLUSTER' keyword.
	KwCluster // CLUSTER
	// KwDistribute represents the 'DISTRIBUTE' keyword.
	KwDistribute // DISTRIBUTE
	// KwSort represents the 'SORT' keyword.
	KwSort // SORT

	// NumberLit represents an integer or decimal literal, including any
	// exponent and type suffix as lexed.
	NumberLit
	// StringLit represents a single-quoted string literal.
	StringLit
	// HexLit represents a hex/binary literal (X'..' or x'..').
	HexLit

	// Eq represents the = operator.
	Eq // =
	// Lt represents the < operator.
	Lt // <
	// Gt represents the > operator.
	Gt // >
	// LtEq represents the <= operator.
	LtEq // <=
	// GtEq represents the >= operator.
	GtEq // >=
	// BangEq represents the != operator.
	BangEq // !=
	// LtGt represents the <> operator.
	LtGt // <>
	// NullSafeEq represents the <=> operator.
	NullSafeEq // <=>
	// Plus represents the + operator.
	Plus // +
	// Minus represents the - operator.
	Minus // -
	// Star represents the * token (operator or star select item).
	Star // *
	// Slash represents the / operator.
	Slash // /
	// Percent represents the % operator.
	Percent // %
	// PipePipe represents the || operator.
	PipePipe // ||
	// Arrow represents the -> operator.
	Arrow // ->
	// FatArrow represents the => operator.
	FatArrow // =>
	// PipeGt represents the |> operator.
	PipeGt // |>
	// Shl represents the << operator.
	Shl // <<
	// Shr represents the >> operator.
	Shr // >>
	// UShr represents the >>> operator.
	UShr // >>>
	// ColonColon represents the :: operator.
	ColonColon // ::

	// LParen represents the ( punctuation.
	LParen // (
	// RParen represents the ) punctuation.
	RParen // )
	// Comma represents the , punctuation.
	Comma // ,
	// Dot represents the . punctuation.
	Dot // .
	// Semicolon represents the ; punctuation.
	Semicolon // ;
)

var kindNames = map[Kind]string{
	Invalid:      "Invalid",
	EOF:          "EOF",
	Ident:        "Ident",
	KwSelect:     "SELECT",
	KwDistinct:   "DISTINCT",
	KwFrom:       "FROM",
	KwWhere:      "WHERE",
	KwGroup:      "GROUP",
	KwBy:         "BY",
	KwHaving:     "HAVING",
	KwOrder:      "ORDER",
	KwLimit:      "LIMIT",
	KwWith:       "WITH",
	KwAs:         "AS",
	KwUnion:      "UNION",
	KwAll:        "ALL",
	KwJoin:       "JOIN",
	KwInner:      "INNER",
	KwLeft:       "LEFT",
	KwRight:      "RIGHT",
	KwFull:       "FULL",
	KwCross:      "CROSS",
	KwOuter:      "OUTER",
	KwOn:         "ON",
	KwAnd:        "AND",
	KwOr:         "OR",
	KwAsc:        "ASC",
	KwDesc:       "DESC",
	KwNull:       "NULL",
	KwTrue:       "TRUE",
	KwFalse:      "FALSE",
	KwCluster:    "CLUSTER",
	KwDistribute: "DISTRIBUTE",
	KwSort:       "SORT",
	NumberLit:    "Number",
	StringLit:    "String",
	HexLit:       "Hex",
	Eq:           "=",
	Lt:           "<",
	Gt:           ">",
	LtEq:         "<=",
	GtEq:         ">=",
	BangEq:       "!=",
	LtGt:         "<>",
	NullSafeEq:   "<=>",
	Plus:         "+",
	Minus:        "-",
	Star:         "*",
	Slash:        "/",
	Percent:      "%",
	PipePipe:     "||",
	Arrow:        "->",
	FatArrow:     "=>",
	PipeGt:       "|>",
	Shl:          "<<",
	Shr:          ">>",
	UShr:         ">>>",
	ColonColon:   "::",
	LParen:       "(",
	RParen:       ")",
	Comma:        ",",
	Dot:          ".",
	Semicolon:    ";",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Kind(?)"
}
