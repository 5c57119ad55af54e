package lexer

import (
	"sparkfmt/internal/diag"
	"sparkfmt/internal/token"
)

// scanNumber scans an integer or decimal mantissa, an optional exponent
// ([eE][+-]?digits), and an optional type suffix (L, S, Y, F, D, or BD in any
// case) with no intervening space. The suffix stays inside Token.Text; its
// spelling is part of the literal's identity and is never normalized.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	// fractional part
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDec(b1) {
		lx.cursor.Bump() // '.'
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	// exponent
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		mark := lx.cursor.Mark()
		lx.cursor.Bump()
		if lx.cursor.Peek() == '+' || lx.cursor.Peek() == '-' {
			lx.cursor.Bump()
		}
		if isDec(lx.cursor.Peek()) {
			for isDec(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
		} else {
			// not an exponent after all; "1e" alone is a malformed literal,
			// but "2D" style suffixes must not get here, so rewind
			lx.cursor.Reset(mark)
		}
	}

	lx.scanNumberSuffix()

	sp := lx.cursor.SpanFrom(start)
	if isIdentContinueByte(lx.cursor.Peek()) {
		for isIdentContinueByte(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		sp = lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexBadNumber, sp, "malformed numeric literal")
		return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}
	return token.Token{Kind: token.NumberLit, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

// scanNumberSuffix consumes a trailing BD/bd or single-letter type suffix.
func (lx *Lexer) scanNumberSuffix() {
	b0, b1, ok := lx.cursor.Peek2()
	if ok && (b0 == 'b' || b0 == 'B') && (b1 == 'd' || b1 == 'D') {
		lx.cursor.Bump()
		lx.cursor.Bump()
		return
	}
	switch lx.cursor.Peek() {
	case 'l', 'L', 's', 'S', 'y', 'Y', 'f', 'F', 'd', 'D':
		lx.cursor.Bump()
	}
}
