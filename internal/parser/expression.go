package parser

import (
	"fmt"

	"sparkfmt/internal/diag"
	"sparkfmt/internal/ir"
	"sparkfmt/internal/token"
)

// parseExpr parses an expression with the lowest precedence floor.
func (p *Parser) parseExpr() (ir.Expression, bool) {
	return p.parseBinaryExpr(precLowest)
}

// parseConditionExpr parses one predicate of a condition list: AND/OR are
// excluded at the top level so they remain list connectors.
func (p *Parser) parseConditionExpr() (ir.Expression, bool) {
	return p.parseBinaryExpr(precCondition)
}

// parseBinaryExpr is the precedence-climbing loop.
func (p *Parser) parseBinaryExpr(minPrec int) (ir.Expression, bool) {
	if !p.enter() {
		return nil, false
	}
	defer p.leave()

	left, ok := p.parsePrimary()
	if !ok {
		return nil, false
	}

	for {
		tok := p.lx.Peek()
		prec, isOp := binaryPrec(tok.Kind)
		if !isOp || prec < minPrec {
			break
		}

		opTok := p.advance()

		right, ok := p.parseBinaryExpr(prec + 1)
		if !ok {
			p.err(diag.SynExpectExpression, opTok.Span,
				fmt.Sprintf("expected expression after '%s'", opTok.Text))
			return nil, false
		}

		left = &ir.BinaryOp{Left: left, Op: opText(opTok), Right: right}
	}

	return left, true
}

func (p *Parser) parsePrimary() (ir.Expression, bool) {
	tok := p.lx.Peek()

	switch tok.Kind {
	case token.NumberLit, token.StringLit, token.HexLit:
		p.advance()
		return &ir.Literal{Text: tok.Text}, true

	case token.KwNull, token.KwTrue, token.KwFalse:
		// keyword literals normalize to uppercase like any keyword
		p.advance()
		return &ir.Literal{Text: tok.Kind.String()}, true

	case token.Ident:
		return p.parseNameExpr()

	case token.LParen:
		p.advance()
		inner, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		if _, ok := p.expect(token.RParen, diag.SynUnclosedParen); !ok {
			return nil, false
		}
		return &ir.Paren{Inner: inner}, true

	default:
		p.err(diag.SynExpectExpression, tok.Span,
			fmt.Sprintf("expected expression, found %s", describe(tok)))
		return nil, false
	}
}

// parseNameExpr parses a possibly dotted name and its follow-ons: a qualified
// star (t.*) or a function call (name(args)).
func (p *Parser) parseNameExpr() (ir.Expression, bool) {
	nameTok := p.advance()
	name := nameTok.Text

	for p.at(token.Dot) {
		p.advance()
		if p.at(token.Star) {
			p.advance()
			return &ir.QualifiedStar{Qualifier: name}, true
		}
		part, ok := p.expect(token.Ident, diag.SynExpectIdentifier)
		if !ok {
			return nil, false
		}
		name = name + "." + part.Text
	}

	if p.at(token.LParen) {
		return p.parseCall(name)
	}

	return &ir.Identifier{Name: name}, true
}

func (p *Parser) parseCall(name string) (ir.Expression, bool) {
	p.advance() // '('
	call := &ir.FuncCall{Name: name}

	if p.at(token.RParen) {
		p.advance()
		return call, true
	}

	for {
		arg, ok := p.parseItemExpr()
		if !ok {
			return nil, false
		}
		call.Args = append(call.Args, arg)

		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}

	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen); !ok {
		return nil, false
	}
	return call, true
}

// parseItemExpr parses an expression in a position where a bare star is
// allowed (select items, function arguments like count(*)).
func (p *Parser) parseItemExpr() (ir.Expression, bool) {
	if p.at(token.Star) {
		p.advance()
		return &ir.Star{}, true
	}
	return p.parseExpr()
}
