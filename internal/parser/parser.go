package parser

import (
	"fmt"
	"strings"

	"sparkfmt/internal/diag"
	"sparkfmt/internal/ir"
	"sparkfmt/internal/lexer"
	"sparkfmt/internal/source"
	"sparkfmt/internal/token"
)

// DefaultMaxDepth bounds expression and sub-query nesting.
const DefaultMaxDepth = 200

type Options struct {
	Reporter diag.Reporter
	MaxDepth int
}

func (o Options) withDefaults() Options {
	if o.MaxDepth <= 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	return o
}

// Result carries the parsed statement plus the raw material the comment
// attacher needs: every lexed comment with its neighbor positions, and every
// anchor the parser registered, in source order.
type Result struct {
	Stmt     ir.Statement
	Comments []ir.PendingComment
	Anchors  []*ir.Anchor
}

// Parser holds the state for parsing one statement.
type Parser struct {
	lx       *lexer.Lexer
	opts     Options
	depth    int
	comments []ir.PendingComment
	anchors  []*ir.Anchor
	prevEnd  uint32 // end offset of the last consumed significant token
	hasPrev  bool
	hintSink *string // one-shot: the next consumed token's /*+ */ trivia lands here
	failed   bool
}

// Parse consumes the lexer's token stream and builds the IR for a single
// statement (or set-operation chain). It never panics; syntax problems are
// reported through opts.Reporter and leave Result.Stmt nil.
func Parse(lx *lexer.Lexer, opts Options) Result {
	p := Parser{
		lx:   lx,
		opts: opts.withDefaults(),
	}

	stmt, ok := p.parseStatement()
	if ok {
		if p.at(token.Semicolon) {
			p.advance()
		}
		if !p.at(token.EOF) {
			tok := p.lx.Peek()
			p.err(diag.SynTrailingInput, tok.Span,
				fmt.Sprintf("expected end of statement, found %s", describe(tok)))
			ok = false
		}
	}
	// consume EOF so trailing comments are recorded
	p.advance()

	res := Result{
		Comments: p.comments,
		Anchors:  p.anchors,
	}
	if ok && !p.failed {
		res.Stmt = stmt
	}
	return res
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

// advance consumes the next significant token and records its leading comment
// trivia. A pending hint sink captures the first /*+ ... */ block instead; any
// further hint-shaped block stays an ordinary comment so nothing is lost.
func (p *Parser) advance() token.Token {
	tok := p.lx.Next()
	sink := p.hintSink
	p.hintSink = nil
	for _, tr := range tok.Leading {
		if !tr.IsComment() {
			continue
		}
		if sink != nil && *sink == "" && tr.Kind == token.TriviaBlockComment && strings.HasPrefix(tr.Text, "/*+") {
			*sink = tr.Text
			continue
		}
		pc := ir.PendingComment{
			Text:    tr.Text,
			IsLine:  tr.Kind == token.TriviaLineComment,
			Span:    tr.Span,
			PrevEnd: p.prevEnd,
			HasPrev: p.hasPrev,
		}
		if tok.Kind != token.EOF {
			pc.NextPos = tok.Span.Start
			pc.HasNext = true
		}
		p.comments = append(p.comments, pc)
	}
	if tok.Kind != token.EOF {
		p.prevEnd = tok.Span.End
		p.hasPrev = true
	}
	return tok
}

// expect consumes a token of kind k or reports an expected-vs-found error.
func (p *Parser) expect(k token.Kind, code diag.Code) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	tok := p.lx.Peek()
	p.err(code, tok.Span, fmt.Sprintf("expected %s, found %s", quoteKind(k), describe(tok)))
	return tok, false
}

func (p *Parser) err(code diag.Code, sp source.Span, msg string) {
	p.failed = true
	if p.opts.Reporter != nil {
		p.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}

// enter guards recursion depth; callers must pair it with leave on success.
func (p *Parser) enter() bool {
	p.depth++
	if p.depth > p.opts.MaxDepth {
		tok := p.lx.Peek()
		p.err(diag.LimitRecursionDepth, tok.Span,
			fmt.Sprintf("nesting depth exceeds limit of %d", p.opts.MaxDepth))
		return false
	}
	return true
}

func (p *Parser) leave() {
	p.depth--
}

// openAnchor registers a node's embedded anchor, starting its span at start;
// closeAnchor extends it once the node's tokens are consumed. Anchors must be
// opened in source order.
func (p *Parser) openAnchor(a *ir.Anchor, start uint32, file source.FileID) {
	a.Span = source.Span{File: file, Start: start, End: start}
	p.anchors = append(p.anchors, a)
}

// closeAnchor extends the anchor to the end of the last consumed token.
func (p *Parser) closeAnchor(a *ir.Anchor) {
	if p.hasPrev && p.prevEnd > a.Span.End {
		a.Span.End = p.prevEnd
	}
}

func describe(tok token.Token) string {
	switch tok.Kind {
	case token.EOF:
		return "end of input"
	case token.Ident, token.NumberLit, token.StringLit, token.HexLit:
		return fmt.Sprintf("'%s'", tok.Text)
	default:
		return fmt.Sprintf("'%s'", tok.Kind)
	}
}

func quoteKind(k token.Kind) string {
	return fmt.Sprintf("'%s'", k)
}
