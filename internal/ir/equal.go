package ir

// EqualStmt reports structural equality of two statements: structure, literal
// text, comment text, and attachment classes. Spans are ignored.
func EqualStmt(a, b Statement) bool {
	switch x := a.(type) {
	case *SelectQuery:
		y, ok := b.(*SelectQuery)
		return ok && equalSelect(x, y)
	case *SetOperation:
		y, ok := b.(*SetOperation)
		return ok && x.Op == y.Op &&
			x.Anchor.commentsEqual(&y.Anchor) &&
			equalSelect(x.Left, y.Left) &&
			EqualStmt(x.Right, y.Right)
	}
	return a == nil && b == nil
}

func equalSelect(a, b *SelectQuery) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Distinct != b.Distinct || a.Hint != b.Hint {
		return false
	}
	if !a.Anchor.commentsEqual(&b.Anchor) {
		return false
	}
	if !equalWith(a.With, b.With) {
		return false
	}
	if len(a.Items) != len(b.Items) {
		return false
	}
	for i := range a.Items {
		if a.Items[i].Alias != b.Items[i].Alias || !EqualExpr(a.Items[i].Expr, b.Items[i].Expr) {
			return false
		}
	}
	return equalFrom(a.From, b.From) &&
		equalConds(condClause(a.Where), condClause(b.Where)) &&
		equalGroupBy(a.GroupBy, b.GroupBy) &&
		equalConds(havingClause(a.Having), havingClause(b.Having)) &&
		equalOrderBy(a.OrderBy, b.OrderBy) &&
		equalExprList(a.ClusterBy, b.ClusterBy) &&
		equalExprList(a.DistributeBy, b.DistributeBy) &&
		equalExprList(a.SortBy, b.SortBy) &&
		equalLimit(a.Limit, b.Limit)
}

type condsWithAnchor struct {
	anchor *Anchor
	conds  []*Condition
}

func condClause(w *WhereClause) *condsWithAnchor {
	if w == nil {
		return nil
	}
	return &condsWithAnchor{anchor: &w.Anchor, conds: w.Conds}
}

func havingClause(h *HavingClause) *condsWithAnchor {
	if h == nil {
		return nil
	}
	return &condsWithAnchor{anchor: &h.Anchor, conds: h.Conds}
}

func equalConds(a, b *condsWithAnchor) bool {
	if a == nil || b == nil {
		return a == b
	}
	if !a.anchor.commentsEqual(b.anchor) {
		return false
	}
	if len(a.conds) != len(b.conds) {
		return false
	}
	for i := range a.conds {
		if a.conds[i].Connector != b.conds[i].Connector || !EqualExpr(a.conds[i].Expr, b.conds[i].Expr) {
			return false
		}
	}
	return true
}

func equalWith(a, b *WithClause) bool {
	if a == nil || b == nil {
		return a == b
	}
	if len(a.Ctes) != len(b.Ctes) {
		return false
	}
	for i := range a.Ctes {
		ca, cb := a.Ctes[i], b.Ctes[i]
		if ca.Name != cb.Name || !ca.Anchor.commentsEqual(&cb.Anchor) || !EqualStmt(ca.Query, cb.Query) {
			return false
		}
	}
	return true
}

func equalFrom(a, b *FromClause) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Table != b.Table || !a.Anchor.commentsEqual(&b.Anchor) {
		return false
	}
	if len(a.Joins) != len(b.Joins) {
		return false
	}
	for i := range a.Joins {
		ja, jb := a.Joins[i], b.Joins[i]
		if ja.Kind != jb.Kind || ja.Table != jb.Table || !ja.Anchor.commentsEqual(&jb.Anchor) {
			return false
		}
		if len(ja.On) != len(jb.On) {
			return false
		}
		for k := range ja.On {
			if ja.On[k].Connector != jb.On[k].Connector || !EqualExpr(ja.On[k].Expr, jb.On[k].Expr) {
				return false
			}
		}
	}
	return true
}

func equalGroupBy(a, b *GroupByClause) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Anchor.commentsEqual(&b.Anchor) && equalExprs(a.Items, b.Items)
}

func equalExprList(a, b *ExprListClause) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Anchor.commentsEqual(&b.Anchor) && equalExprs(a.Items, b.Items)
}

func equalOrderBy(a, b *OrderByClause) bool {
	if a == nil || b == nil {
		return a == b
	}
	if !a.Anchor.commentsEqual(&b.Anchor) || len(a.Items) != len(b.Items) {
		return false
	}
	for i := range a.Items {
		if a.Items[i].Dir != b.Items[i].Dir || !EqualExpr(a.Items[i].Expr, b.Items[i].Expr) {
			return false
		}
	}
	return true
}

func equalLimit(a, b *LimitClause) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Count == b.Count && a.Anchor.commentsEqual(&b.Anchor)
}

func equalExprs(a, b []Expression) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !EqualExpr(a[i], b[i]) {
			return false
		}
	}
	return true
}

// EqualExpr reports structural equality of two expressions, comparing literal
// text byte-for-byte.
func EqualExpr(a, b Expression) bool {
	switch x := a.(type) {
	case *Identifier:
		y, ok := b.(*Identifier)
		return ok && x.Name == y.Name
	case *Star:
		_, ok := b.(*Star)
		return ok
	case *QualifiedStar:
		y, ok := b.(*QualifiedStar)
		return ok && x.Qualifier == y.Qualifier
	case *FuncCall:
		y, ok := b.(*FuncCall)
		return ok && x.Name == y.Name && equalExprs(x.Args, y.Args)
	case *BinaryOp:
		y, ok := b.(*BinaryOp)
		return ok && x.Op == y.Op && EqualExpr(x.Left, y.Left) && EqualExpr(x.Right, y.Right)
	case *Literal:
		y, ok := b.(*Literal)
		return ok && x.Text == y.Text
	case *Paren:
		y, ok := b.(*Paren)
		return ok && EqualExpr(x.Inner, y.Inner)
	}
	return a == nil && b == nil
}
