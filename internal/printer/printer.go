package printer

import (
	"strings"

	"sparkfmt/internal/ir"
)

// Print renders a statement in canonical form: one clause per line, keywords
// uppercase, literals byte-identical to the source, comments placed by their
// attachment class. The output always ends with a single newline.
func Print(stmt ir.Statement, opt Options) []byte {
	w := NewWriter(opt)
	p := printer{w: w}
	p.printStmt(stmt)
	return w.Bytes()
}

type printer struct {
	w *Writer
}

func (p *printer) printStmt(s ir.Statement) {
	switch st := s.(type) {
	case *ir.SelectQuery:
		p.printSelect(st)
	case *ir.SetOperation:
		p.printSelect(st.Left)
		p.line(&st.Anchor, st.Op.String())
		p.printStmt(st.Right)
	}
}

// line emits one output line owned by the anchor: leading comments above it,
// inline trailers on it, own-line trailers below it.
func (p *printer) line(a *ir.Anchor, text string) {
	p.leadComments(a)
	p.w.WriteString(text)
	p.trailComments(a)
}

func (p *printer) leadComments(a *ir.Anchor) {
	for _, c := range a.Lead {
		p.w.WriteString(c.Text)
		p.w.Newline()
	}
}

func (p *printer) trailComments(a *ir.Anchor) {
	for _, c := range a.Trail {
		if c.Attachment == ir.AttachTrailingInline {
			p.w.Space()
			p.w.WriteString(c.Text)
		}
	}
	p.w.Newline()
	for _, c := range a.Trail {
		if c.Attachment == ir.AttachTrailingOwnLine {
			p.w.WriteString(c.Text)
			p.w.Newline()
		}
	}
}

func (p *printer) printSelect(q *ir.SelectQuery) {
	if q.With != nil {
		p.printWith(q.With)
	}

	var sb strings.Builder
	sb.WriteString("SELECT")
	if q.Hint != "" {
		sb.WriteByte(' ')
		sb.WriteString(q.Hint)
	}
	if q.Distinct {
		sb.WriteString(" DISTINCT")
	}
	for i, item := range q.Items {
		if i == 0 {
			sb.WriteByte(' ')
		} else {
			sb.WriteString(", ")
		}
		writeExpr(&sb, item.Expr)
		if item.Alias != "" {
			sb.WriteString(" AS ")
			sb.WriteString(item.Alias)
		}
	}
	p.line(&q.Anchor, sb.String())

	if q.From != nil {
		p.printFrom(q.From)
	}
	if q.Where != nil {
		p.line(&q.Where.Anchor, "WHERE "+condsText(q.Where.Conds))
	}
	if q.GroupBy != nil {
		p.line(&q.GroupBy.Anchor, "GROUP BY "+exprListText(q.GroupBy.Items))
	}
	if q.Having != nil {
		p.line(&q.Having.Anchor, "HAVING "+condsText(q.Having.Conds))
	}
	if q.OrderBy != nil {
		p.printOrderBy(q.OrderBy)
	}
	if q.ClusterBy != nil {
		p.line(&q.ClusterBy.Anchor, "CLUSTER BY "+exprListText(q.ClusterBy.Items))
	}
	if q.DistributeBy != nil {
		p.line(&q.DistributeBy.Anchor, "DISTRIBUTE BY "+exprListText(q.DistributeBy.Items))
	}
	if q.SortBy != nil {
		p.line(&q.SortBy.Anchor, "SORT BY "+exprListText(q.SortBy.Items))
	}
	if q.Limit != nil {
		p.line(&q.Limit.Anchor, "LIMIT "+q.Limit.Count)
	}
}

func (p *printer) printWith(with *ir.WithClause) {
	for i, cte := range with.Ctes {
		p.leadComments(&cte.Anchor)

		head := cte.Name + " AS ("
		if i == 0 {
			head = "WITH " + head
		}
		p.w.WriteString(head)
		p.w.Newline()

		p.w.IndentPush()
		p.printStmt(cte.Query)
		p.w.IndentPop()

		tail := ")"
		if i < len(with.Ctes)-1 {
			tail = "),"
		}
		p.w.WriteString(tail)
		p.trailComments(&cte.Anchor)
	}
}

func (p *printer) printFrom(f *ir.FromClause) {
	p.line(&f.Anchor, "FROM "+tableText(f.Table))
	for _, j := range f.Joins {
		text := j.Kind.String() + " " + tableText(j.Table)
		if len(j.On) > 0 {
			text += " ON " + condsText(j.On)
		}
		p.line(&j.Anchor, text)
	}
}

func (p *printer) printOrderBy(ob *ir.OrderByClause) {
	var sb strings.Builder
	sb.WriteString("ORDER BY ")
	for i, item := range ob.Items {
		if i > 0 {
			sb.WriteString(", ")
		}
		writeExpr(&sb, item.Expr)
		if item.Dir != ir.DirNone {
			sb.WriteByte(' ')
			sb.WriteString(item.Dir.String())
		}
	}
	p.line(&ob.Anchor, sb.String())
}

func tableText(t ir.TableRef) string {
	if t.Alias == "" {
		return t.Name
	}
	return t.Name + " AS " + t.Alias
}

func condsText(conds []*ir.Condition) string {
	var sb strings.Builder
	for _, c := range conds {
		writeExpr(&sb, c.Expr)
		if c.Connector != ir.ConnNone {
			sb.WriteByte(' ')
			sb.WriteString(c.Connector.String())
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

func exprListText(items []ir.Expression) string {
	var sb strings.Builder
	for i, e := range items {
		if i > 0 {
			sb.WriteString(", ")
		}
		writeExpr(&sb, e)
	}
	return sb.String()
}
