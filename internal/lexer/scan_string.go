package lexer

import (
	"sparkfmt/internal/diag"
	"sparkfmt/internal/token"
)

// scanString scans a single-quoted string literal. Backslash escapes and ''
// quote doubling both keep the closing quote from terminating the literal.
// The token text is the exact source slice including quotes.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '\\' {
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				break
			}
			lx.cursor.Bump()
			continue
		}
		if b == '\'' {
			if _, b1, ok := lx.cursor.Peek2(); ok && b1 == '\'' {
				// doubled quote stays inside the literal
				lx.cursor.Bump()
				lx.cursor.Bump()
				continue
			}
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.StringLit, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

// scanHex scans X'...' / x'...'; the discriminator case and quoted payload are
// preserved verbatim.
func (lx *Lexer) scanHex() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // 'x' or 'X'
	lx.cursor.Eat('\'')
	for !lx.cursor.EOF() {
		if lx.cursor.Peek() == '\'' {
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.HexLit, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedHex, sp, "unterminated hex literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
