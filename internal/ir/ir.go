package ir

// Statement is either a single select query or a set operation chaining a
// select query with another statement.
type Statement interface {
	stmtNode()
}

// SetOperator is the operator joining the sides of a set operation.
type SetOperator uint8

const (
	Union SetOperator = iota
	UnionAll
)

func (op SetOperator) String() string {
	if op == UnionAll {
		return "UNION ALL"
	}
	return "UNION"
}

// SetOperation joins a select query (left) with a statement (right), giving
// right-leaning chains of arbitrary length.
type SetOperation struct {
	Anchor // the UNION / UNION ALL line
	Left   *SelectQuery
	Op     SetOperator
	Right  Statement
}

// SelectQuery is a single SELECT with its optional clauses. The embedded
// Anchor is the SELECT line (keyword through the end of the select list);
// leading standalone comments attach to it.
type SelectQuery struct {
	Anchor
	With         *WithClause
	Distinct     bool
	Hint         string // raw /*+ ... */ text, empty when absent
	Items        []*SelectItem
	From         *FromClause
	Where        *WhereClause
	GroupBy      *GroupByClause
	Having       *HavingClause
	OrderBy      *OrderByClause
	ClusterBy    *ExprListClause
	DistributeBy *ExprListClause
	SortBy       *ExprListClause
	Limit        *LimitClause
}

func (*SelectQuery) stmtNode()  {}
func (*SetOperation) stmtNode() {}

// WithClause is an ordered, non-empty CTE list.
type WithClause struct {
	Ctes []*Cte
}

// Cte is one named sub-query of a WITH clause. The Anchor is the
// "WITH name AS (" head line; its span covers the whole CTE so trailing
// comments after the closing paren attach here.
type Cte struct {
	Anchor
	Name  string
	Query Statement
}

// SelectItem is one select-list entry with an optional alias.
type SelectItem struct {
	Expr  Expression
	Alias string
}

// JoinKind enumerates the supported join kinds.
type JoinKind uint8

const (
	JoinInner JoinKind = iota
	JoinLeft
	JoinRight
	JoinFull
	JoinCross
)

func (k JoinKind) String() string {
	switch k {
	case JoinLeft:
		return "LEFT JOIN"
	case JoinRight:
		return "RIGHT JOIN"
	case JoinFull:
		return "FULL JOIN"
	case JoinCross:
		return "CROSS JOIN"
	}
	return "JOIN"
}

// TableRef is a base table reference with an optional alias.
type TableRef struct {
	Name  string
	Alias string
}

// Join is one join of a FROM clause with its ordered ON conditions.
type Join struct {
	Anchor
	Kind  JoinKind
	Table TableRef
	On    []*Condition
}

// FromClause is the base table plus its ordered joins.
type FromClause struct {
	Anchor
	Table TableRef
	Joins []*Join
}

// Connector links a condition to the next one in its list.
type Connector uint8

const (
	ConnNone Connector = iota
	ConnAnd
	ConnOr
)

func (c Connector) String() string {
	switch c {
	case ConnAnd:
		return "AND"
	case ConnOr:
		return "OR"
	}
	return ""
}

// Condition is one predicate in a flat list-with-connectors; Connector is the
// logical operator to the NEXT condition (ConnNone on the last).
type Condition struct {
	Expr      Expression
	Connector Connector
}

// WhereClause holds the ordered WHERE conditions.
type WhereClause struct {
	Anchor
	Conds []*Condition
}

// HavingClause holds the ordered HAVING conditions.
type HavingClause struct {
	Anchor
	Conds []*Condition
}

// GroupByClause holds the ordered GROUP BY expressions.
type GroupByClause struct {
	Anchor
	Items []Expression
}

// ExprListClause holds the expression list of a CLUSTER BY, DISTRIBUTE BY,
// or SORT BY clause.
type ExprListClause struct {
	Anchor
	Items []Expression
}

// Direction is an order-by item's explicit direction; DirNone means the
// direction was not written and is omitted on output.
type Direction uint8

const (
	DirNone Direction = iota
	DirAsc
	DirDesc
)

func (d Direction) String() string {
	switch d {
	case DirAsc:
		return "ASC"
	case DirDesc:
		return "DESC"
	}
	return ""
}

// OrderByItem is one ORDER BY entry.
type OrderByItem struct {
	Expr Expression
	Dir  Direction
}

// OrderByClause holds the ordered ORDER BY items.
type OrderByClause struct {
	Anchor
	Items []*OrderByItem
}

// LimitClause stores the limit count as the literal's exact text; it is never
// parsed to a number.
type LimitClause struct {
	Anchor
	Count string
}
