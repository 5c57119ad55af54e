package token

import "sparkfmt/internal/source"

// TriviaKind classifies non-semantic source fragments carried between tokens.
type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota
	TriviaNewline
	TriviaLineComment
	TriviaBlockComment
)

// Trivia is a single whitespace or comment fragment. Comment trivia keep the
// exact source text including delimiters; it is never re-wrapped.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}

// IsComment reports whether the trivia is a line or block comment.
func (tr Trivia) IsComment() bool {
	return tr.Kind == TriviaLineComment || tr.Kind == TriviaBlockComment
}
