package parser

import (
	"fmt"

	"sparkfmt/internal/diag"
	"sparkfmt/internal/ir"
	"sparkfmt/internal/token"
)

// parseStatement parses a select query or a right-leaning set-operation chain.
func (p *Parser) parseStatement() (ir.Statement, bool) {
	if !p.enter() {
		return nil, false
	}
	defer p.leave()

	left, ok := p.parseSelectQuery()
	if !ok {
		return nil, false
	}
	if !p.at(token.KwUnion) {
		return left, true
	}

	op := &ir.SetOperation{Left: left, Op: ir.Union}
	unionTok := p.advance()
	p.openAnchor(&op.Anchor, unionTok.Span.Start, unionTok.Span.File)
	if p.at(token.KwAll) {
		p.advance()
		op.Op = ir.UnionAll
	}
	p.closeAnchor(&op.Anchor)

	right, ok := p.parseStatement()
	if !ok {
		return nil, false
	}
	op.Right = right
	return op, true
}

// parseSelectQuery parses one SELECT with its optional WITH prefix and
// clauses. Clauses are accepted in any order, each at most once; the printer
// restores the canonical order.
func (p *Parser) parseSelectQuery() (*ir.SelectQuery, bool) {
	q := &ir.SelectQuery{}

	if p.at(token.KwWith) {
		with, ok := p.parseWith()
		if !ok {
			return nil, false
		}
		q.With = with
	}

	p.hintSink = &q.Hint
	selTok, ok := p.expect(token.KwSelect, diag.SynExpectSelect)
	if !ok {
		p.hintSink = nil
		return nil, false
	}
	p.openAnchor(&q.Anchor, selTok.Span.Start, selTok.Span.File)

	// a hint may also follow the SELECT keyword
	p.hintSink = &q.Hint
	if p.at(token.KwDistinct) {
		p.advance()
		q.Distinct = true
	}

	for {
		item, ok := p.parseSelectItem()
		if !ok {
			return nil, false
		}
		q.Items = append(q.Items, item)
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	p.closeAnchor(&q.Anchor)

	if !p.parseClauses(q) {
		return nil, false
	}
	return q, true
}

func (p *Parser) parseWith() (*ir.WithClause, bool) {
	withTok := p.advance() // WITH
	with := &ir.WithClause{}
	start := withTok.Span.Start

	for {
		cte := &ir.Cte{}
		nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier)
		if !ok {
			return nil, false
		}
		cte.Name = nameTok.Text
		p.openAnchor(&cte.Anchor, start, nameTok.Span.File)

		if _, ok := p.expect(token.KwAs, diag.SynUnexpectedToken); !ok {
			return nil, false
		}
		if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken); !ok {
			return nil, false
		}
		query, ok := p.parseStatement()
		if !ok {
			return nil, false
		}
		cte.Query = query
		if _, ok := p.expect(token.RParen, diag.SynUnclosedParen); !ok {
			return nil, false
		}
		p.closeAnchor(&cte.Anchor)
		with.Ctes = append(with.Ctes, cte)

		if p.at(token.Comma) {
			p.advance()
			// the next CTE's anchor starts at its name
			start = p.lx.Peek().Span.Start
			continue
		}
		break
	}
	return with, true
}

func (p *Parser) parseSelectItem() (*ir.SelectItem, bool) {
	expr, ok := p.parseItemExpr()
	if !ok {
		return nil, false
	}
	item := &ir.SelectItem{Expr: expr}

	if p.at(token.KwAs) {
		p.advance()
		alias, ok := p.expect(token.Ident, diag.SynExpectIdentifier)
		if !ok {
			return nil, false
		}
		item.Alias = alias.Text
	} else if p.at(token.Ident) {
		item.Alias = p.advance().Text
	}
	return item, true
}

// parseClauses consumes the query's tail clauses in whatever order they were
// written, rejecting duplicates.
func (p *Parser) parseClauses(q *ir.SelectQuery) bool {
	for {
		tok := p.lx.Peek()
		switch tok.Kind {
		case token.KwFrom:
			if !p.onceClause(q.From == nil, tok, "FROM") {
				return false
			}
			from, ok := p.parseFrom()
			if !ok {
				return false
			}
			q.From = from

		case token.KwWhere:
			if !p.onceClause(q.Where == nil, tok, "WHERE") {
				return false
			}
			w := &ir.WhereClause{}
			kw := p.advance()
			p.openAnchor(&w.Anchor, kw.Span.Start, kw.Span.File)
			conds, ok := p.parseConditionList()
			if !ok {
				return false
			}
			w.Conds = conds
			p.closeAnchor(&w.Anchor)
			q.Where = w

		case token.KwGroup:
			if !p.onceClause(q.GroupBy == nil, tok, "GROUP BY") {
				return false
			}
			g := &ir.GroupByClause{}
			kw := p.advance()
			p.openAnchor(&g.Anchor, kw.Span.Start, kw.Span.File)
			items, ok := p.parseByList()
			if !ok {
				return false
			}
			g.Items = items
			p.closeAnchor(&g.Anchor)
			q.GroupBy = g

		case token.KwHaving:
			if !p.onceClause(q.Having == nil, tok, "HAVING") {
				return false
			}
			h := &ir.HavingClause{}
			kw := p.advance()
			p.openAnchor(&h.Anchor, kw.Span.Start, kw.Span.File)
			conds, ok := p.parseConditionList()
			if !ok {
				return false
			}
			h.Conds = conds
			p.closeAnchor(&h.Anchor)
			q.Having = h

		case token.KwOrder:
			if !p.onceClause(q.OrderBy == nil, tok, "ORDER BY") {
				return false
			}
			ob, ok := p.parseOrderBy()
			if !ok {
				return false
			}
			q.OrderBy = ob

		case token.KwCluster:
			if !p.onceClause(q.ClusterBy == nil, tok, "CLUSTER BY") {
				return false
			}
			c, ok := p.parseExprListClause()
			if !ok {
				return false
			}
			q.ClusterBy = c

		case token.KwDistribute:
			if !p.onceClause(q.DistributeBy == nil, tok, "DISTRIBUTE BY") {
				return false
			}
			c, ok := p.parseExprListClause()
			if !ok {
				return false
			}
			q.DistributeBy = c

		case token.KwSort:
			if !p.onceClause(q.SortBy == nil, tok, "SORT BY") {
				return false
			}
			c, ok := p.parseExprListClause()
			if !ok {
				return false
			}
			q.SortBy = c

		case token.KwLimit:
			if !p.onceClause(q.Limit == nil, tok, "LIMIT") {
				return false
			}
			l := &ir.LimitClause{}
			kw := p.advance()
			p.openAnchor(&l.Anchor, kw.Span.Start, kw.Span.File)
			count, ok := p.expect(token.NumberLit, diag.SynUnexpectedToken)
			if !ok {
				return false
			}
			l.Count = count.Text
			p.closeAnchor(&l.Anchor)
			q.Limit = l

		default:
			return true
		}
	}
}

func (p *Parser) onceClause(fresh bool, tok token.Token, name string) bool {
	if fresh {
		return true
	}
	p.err(diag.SynUnexpectedToken, tok.Span, fmt.Sprintf("duplicate %s clause", name))
	return false
}

func (p *Parser) parseFrom() (*ir.FromClause, bool) {
	from := &ir.FromClause{}
	kw := p.advance() // FROM
	p.openAnchor(&from.Anchor, kw.Span.Start, kw.Span.File)

	table, ok := p.parseTableRef()
	if !ok {
		return nil, false
	}
	from.Table = table
	p.closeAnchor(&from.Anchor)

	for {
		j, ok, more := p.parseJoin()
		if !more {
			break
		}
		if !ok {
			return nil, false
		}
		from.Joins = append(from.Joins, j)
	}
	return from, true
}

// parseTableRef parses a possibly dotted table name with an optional alias.
func (p *Parser) parseTableRef() (ir.TableRef, bool) {
	nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier)
	if !ok {
		return ir.TableRef{}, false
	}
	name := nameTok.Text
	for p.at(token.Dot) {
		p.advance()
		part, ok := p.expect(token.Ident, diag.SynExpectIdentifier)
		if !ok {
			return ir.TableRef{}, false
		}
		name = name + "." + part.Text
	}

	ref := ir.TableRef{Name: name}
	if p.at(token.KwAs) {
		p.advance()
		alias, ok := p.expect(token.Ident, diag.SynExpectIdentifier)
		if !ok {
			return ir.TableRef{}, false
		}
		ref.Alias = alias.Text
	} else if p.at(token.Ident) {
		ref.Alias = p.advance().Text
	}
	return ref, true
}

// parseJoin parses one join; more=false means the lookahead does not start a
// join and the caller should stop.
func (p *Parser) parseJoin() (j *ir.Join, ok bool, more bool) {
	tok := p.lx.Peek()
	kind := ir.JoinInner
	switch tok.Kind {
	case token.KwJoin:
		p.advance()
	case token.KwInner:
		p.advance()
		if _, ok := p.expect(token.KwJoin, diag.SynUnexpectedToken); !ok {
			return nil, false, true
		}
	case token.KwLeft, token.KwRight, token.KwFull:
		p.advance()
		switch tok.Kind {
		case token.KwLeft:
			kind = ir.JoinLeft
		case token.KwRight:
			kind = ir.JoinRight
		default:
			kind = ir.JoinFull
		}
		if p.at(token.KwOuter) {
			p.advance()
		}
		if _, ok := p.expect(token.KwJoin, diag.SynUnexpectedToken); !ok {
			return nil, false, true
		}
	case token.KwCross:
		p.advance()
		kind = ir.JoinCross
		if _, ok := p.expect(token.KwJoin, diag.SynUnexpectedToken); !ok {
			return nil, false, true
		}
	default:
		return nil, true, false
	}

	j = &ir.Join{Kind: kind}
	p.openAnchor(&j.Anchor, tok.Span.Start, tok.Span.File)

	table, tableOK := p.parseTableRef()
	if !tableOK {
		return nil, false, true
	}
	j.Table = table

	if p.at(token.KwOn) {
		p.advance()
		conds, ok := p.parseConditionList()
		if !ok {
			return nil, false, true
		}
		j.On = conds
	}
	p.closeAnchor(&j.Anchor)
	return j, true, true
}

// parseConditionList parses a flat AND/OR-connected predicate list. Each
// condition records the connector to the next one.
func (p *Parser) parseConditionList() ([]*ir.Condition, bool) {
	var conds []*ir.Condition
	for {
		expr, ok := p.parseConditionExpr()
		if !ok {
			return nil, false
		}
		cond := &ir.Condition{Expr: expr}
		conds = append(conds, cond)

		switch p.lx.Peek().Kind {
		case token.KwAnd:
			p.advance()
			cond.Connector = ir.ConnAnd
		case token.KwOr:
			p.advance()
			cond.Connector = ir.ConnOr
		default:
			return conds, true
		}
	}
}

// parseByList parses "BY expr, expr, ..." after GROUP, CLUSTER, DISTRIBUTE,
// or SORT has been consumed.
func (p *Parser) parseByList() ([]ir.Expression, bool) {
	if _, ok := p.expect(token.KwBy, diag.SynExpectClause); !ok {
		return nil, false
	}
	var items []ir.Expression
	for {
		expr, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		items = append(items, expr)
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		return items, true
	}
}

func (p *Parser) parseExprListClause() (*ir.ExprListClause, bool) {
	c := &ir.ExprListClause{}
	kw := p.advance() // CLUSTER, DISTRIBUTE, or SORT
	p.openAnchor(&c.Anchor, kw.Span.Start, kw.Span.File)
	items, ok := p.parseByList()
	if !ok {
		return nil, false
	}
	c.Items = items
	p.closeAnchor(&c.Anchor)
	return c, true
}

func (p *Parser) parseOrderBy() (*ir.OrderByClause, bool) {
	ob := &ir.OrderByClause{}
	kw := p.advance() // ORDER
	p.openAnchor(&ob.Anchor, kw.Span.Start, kw.Span.File)
	if _, ok := p.expect(token.KwBy, diag.SynExpectClause); !ok {
		return nil, false
	}
	for {
		expr, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		item := &ir.OrderByItem{Expr: expr}
		switch p.lx.Peek().Kind {
		case token.KwAsc:
			p.advance()
			item.Dir = ir.DirAsc
		case token.KwDesc:
			p.advance()
			item.Dir = ir.DirDesc
		}
		ob.Items = append(ob.Items, item)
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	p.closeAnchor(&ob.Anchor)
	return ob, true
}
