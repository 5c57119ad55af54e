package lexer

import (
	"sparkfmt/internal/diag"
	"sparkfmt/internal/token"
)

// collectLeadingTrivia gathers consecutive trivia before a significant token.
// - runs of ' ' and '\t' coalesce into one TriviaSpace
// - runs of '\n' coalesce into one TriviaNewline
// - "--" to end of line -> TriviaLineComment
// - "/* ... */" -> TriviaBlockComment (not nested; unterminated is reported
//   and the trivia runs to EOF)
func (lx *Lexer) collectLeadingTrivia() {
	lx.hold = lx.hold[:0]
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		b := lx.cursor.Peek()

		if b == ' ' || b == '\t' || b == '\r' {
			for {
				b2 := lx.cursor.Peek()
				if b2 != ' ' && b2 != '\t' && b2 != '\r' {
					break
				}
				lx.cursor.Bump()
			}
			sp := lx.cursor.SpanFrom(start)
			lx.hold = append(lx.hold, token.Trivia{
				Kind: token.TriviaSpace,
				Span: sp,
				Text: string(lx.file.Content[sp.Start:sp.End]),
			})
			continue
		}

		if b == '\n' {
			for lx.cursor.Peek() == '\n' {
				lx.cursor.Bump()
			}
			sp := lx.cursor.SpanFrom(start)
			lx.hold = append(lx.hold, token.Trivia{
				Kind: token.TriviaNewline,
				Span: sp,
				Text: string(lx.file.Content[sp.Start:sp.End]),
			})
			continue
		}

		if b == '-' {
			if lx.scanLineCommentIntoHold() {
				continue
			}
		}

		if b == '/' {
			if lx.scanBlockCommentIntoHold() {
				continue
			}
		}

		break
	}
}

// "--" to end of line.
func (lx *Lexer) scanLineCommentIntoHold() bool {
	start := lx.cursor.Mark()
	if !lx.try2('-', '-') {
		return false
	}
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.hold = append(lx.hold, token.Trivia{
		Kind: token.TriviaLineComment,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	})
	return true
}

// "/* ... */", scanned to the first terminator.
func (lx *Lexer) scanBlockCommentIntoHold() bool {
	start := lx.cursor.Mark()
	if !lx.try2('/', '*') {
		return false
	}
	closed := false
	for !lx.cursor.EOF() {
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '*' && b1 == '/' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			closed = true
			break
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	if !closed {
		// consume to EOF so the span covers what was scanned
		for !lx.cursor.EOF() {
			lx.cursor.Bump()
		}
		sp = lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnterminatedBlockComment, sp, "unterminated block comment")
	}
	lx.hold = append(lx.hold, token.Trivia{
		Kind: token.TriviaBlockComment,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	})
	return true
}
