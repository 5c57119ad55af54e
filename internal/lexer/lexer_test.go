package lexer_test

import (
	"fmt"
	"strings"
	"testing"

	"sparkfmt/internal/diag"
	"sparkfmt/internal/lexer"
	"sparkfmt/internal/source"
	"sparkfmt/internal/token"
)

// testReporter collects every diagnostic the lexer reports.
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
	})
}

func (r *testReporter) HasErrors() bool {
	for _, d := range r.diagnostics {
		if d.Severity == diag.SevError {
			return true
		}
	}
	return false
}

func (r *testReporter) Codes() []diag.Code {
	codes := make([]diag.Code, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		codes = append(codes, d.Code)
	}
	return codes
}

func makeTestLexer(input string) (*lexer.Lexer, *testReporter) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.sql", []byte(input)))
	reporter := &testReporter{}
	return lexer.New(file, lexer.Options{Reporter: reporter}), reporter
}

func collectAllTokens(lx *lexer.Lexer) []token.Token {
	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens
}

func expectTokens(t *testing.T, input string, expected []token.Kind) {
	t.Helper()
	lx, reporter := makeTestLexer(input)
	tokens := collectAllTokens(lx)

	// drop EOF from the comparison
	tokens = tokens[:len(tokens)-1]

	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d\ninput: %q\ntokens: %v\nerrors: %v",
			len(expected), len(tokens), input, tokensToString(tokens), reporter.Codes())
	}
	for i, tok := range tokens {
		if tok.Kind != expected[i] {
			t.Errorf("token %d: expected %v, got %v (text: %q)", i, expected[i], tok.Kind, tok.Text)
		}
	}
}

func expectSingleToken(t *testing.T, input string, expectedKind token.Kind, expectedText string) {
	t.Helper()
	lx, _ := makeTestLexer(input)
	tok := lx.Next()
	if tok.Kind != expectedKind {
		t.Errorf("input %q: expected kind %v, got %v", input, expectedKind, tok.Kind)
	}
	if tok.Text != expectedText {
		t.Errorf("input %q: expected text %q, got %q", input, expectedText, tok.Text)
	}
}

func tokensToString(tokens []token.Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = fmt.Sprintf("%v(%q)", tok.Kind, tok.Text)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func TestKeywords_CaseInsensitive(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"SELECT", token.KwSelect},
		{"select", token.KwSelect},
		{"SeLeCt", token.KwSelect},
		{"FROM", token.KwFrom},
		{"where", token.KwWhere},
		{"GROUP", token.KwGroup},
		{"by", token.KwBy},
		{"HAVING", token.KwHaving},
		{"order", token.KwOrder},
		{"LIMIT", token.KwLimit},
		{"with", token.KwWith},
		{"AS", token.KwAs},
		{"union", token.KwUnion},
		{"ALL", token.KwAll},
		{"join", token.KwJoin},
		{"LEFT", token.KwLeft},
		{"outer", token.KwOuter},
		{"CROSS", token.KwCross},
		{"on", token.KwOn},
		{"AND", token.KwAnd},
		{"or", token.KwOr},
		{"NULL", token.KwNull},
		{"true", token.KwTrue},
		{"FALSE", token.KwFalse},
		{"cluster", token.KwCluster},
		{"DISTRIBUTE", token.KwDistribute},
		{"sort", token.KwSort},
		{"distinct", token.KwDistinct},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectSingleToken(t, tt.input, tt.kind, tt.input)
		})
	}
}

func TestIdentifiers(t *testing.T) {
	tests := []string{"foo", "_bar", "x123", "camelCase", "selected", "fromage"}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			expectSingleToken(t, input, token.Ident, input)
		})
	}
}

func TestNumberLiterals_SuffixesKeptVerbatim(t *testing.T) {
	tests := []string{
		"100", "100L", "100l", "42S", "7Y", "3F", "1.5D", "1.5d",
		"99.99BD", "99.99bd", "2E-5", "2e-5", "1E10", "6.02e+23", "1.5e3F",
	}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			expectSingleToken(t, input, token.NumberLit, input)
		})
	}
}

func TestNumberLiterals_Malformed(t *testing.T) {
	tests := []string{"1e", "123abc", "42sec", "1.5x"}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			lx, reporter := makeTestLexer(input)
			tok := lx.Next()
			if tok.Kind != token.Invalid {
				t.Errorf("expected Invalid token, got %v (%q)", tok.Kind, tok.Text)
			}
			if !reporter.HasErrors() {
				t.Error("expected LexBadNumber diagnostic")
			}
		})
	}
}

func TestStringLiterals(t *testing.T) {
	tests := []string{
		`'hello'`,
		`''`,
		`'it\'s'`,
		`'it''s'`,
		`'tab\tnewline\n'`,
	}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			expectSingleToken(t, input, token.StringLit, input)
		})
	}
}

func TestHexLiterals_CasePreserved(t *testing.T) {
	expectSingleToken(t, "X'1F2A'", token.HexLit, "X'1F2A'")
	expectSingleToken(t, "x'1f2a'", token.HexLit, "x'1f2a'")
}

func TestHexStart_NotHexWhenNoQuote(t *testing.T) {
	// x followed by anything but a quote is an ordinary identifier
	expectSingleToken(t, "x1", token.Ident, "x1")
	expectSingleToken(t, "Xavier", token.Ident, "Xavier")
}

func TestOperators_MaximalMunch(t *testing.T) {
	tests := []struct {
		input    string
		expected []token.Kind
	}{
		{"<=>", []token.Kind{token.NullSafeEq}},
		{"<=", []token.Kind{token.LtEq}},
		{"<>", []token.Kind{token.LtGt}},
		{"<", []token.Kind{token.Lt}},
		{">>>", []token.Kind{token.UShr}},
		{">>", []token.Kind{token.Shr}},
		{"<<", []token.Kind{token.Shl}},
		{"::", []token.Kind{token.ColonColon}},
		{"->", []token.Kind{token.Arrow}},
		{"=>", []token.Kind{token.FatArrow}},
		{"||", []token.Kind{token.PipePipe}},
		{"|>", []token.Kind{token.PipeGt}},
		{"!=", []token.Kind{token.BangEq}},
		{"a<=>b", []token.Kind{token.Ident, token.NullSafeEq, token.Ident}},
		{"x>>>2", []token.Kind{token.Ident, token.UShr, token.NumberLit}},
		{"x>> >2", []token.Kind{token.Ident, token.Shr, token.Gt, token.NumberLit}},
		{"a||b|>c", []token.Kind{token.Ident, token.PipePipe, token.Ident, token.PipeGt, token.Ident}},
		{"v::int->f", []token.Kind{token.Ident, token.ColonColon, token.Ident, token.Arrow, token.Ident}},
		{"x<=>=y", []token.Kind{token.Ident, token.NullSafeEq, token.Eq, token.Ident}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectTokens(t, tt.input, tt.expected)
		})
	}
}

func TestPunctuation(t *testing.T) {
	expectTokens(t, "f(a, b.c);", []token.Kind{
		token.Ident, token.LParen, token.Ident, token.Comma,
		token.Ident, token.Dot, token.Ident, token.RParen, token.Semicolon,
	})
}

func TestUnterminated_String(t *testing.T) {
	lx, reporter := makeTestLexer("'abc")
	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Errorf("expected Invalid, got %v", tok.Kind)
	}
	if got := reporter.Codes(); len(got) != 1 || got[0] != diag.LexUnterminatedString {
		t.Errorf("expected LexUnterminatedString, got %v", got)
	}
}

func TestUnterminated_Hex(t *testing.T) {
	lx, reporter := makeTestLexer("X'1F")
	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Errorf("expected Invalid, got %v", tok.Kind)
	}
	if got := reporter.Codes(); len(got) != 1 || got[0] != diag.LexUnterminatedHex {
		t.Errorf("expected LexUnterminatedHex, got %v", got)
	}
}

func TestUnterminated_BlockComment(t *testing.T) {
	lx, reporter := makeTestLexer("SELECT /* oops")
	_ = lx.Next() // SELECT
	tok := lx.Next()
	if tok.Kind != token.EOF {
		t.Errorf("expected EOF, got %v", tok.Kind)
	}
	if got := reporter.Codes(); len(got) != 1 || got[0] != diag.LexUnterminatedBlockComment {
		t.Errorf("expected LexUnterminatedBlockComment, got %v", got)
	}
}

func TestUnknownChar(t *testing.T) {
	lx, reporter := makeTestLexer("a @ b")
	_ = lx.Next()
	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Errorf("expected Invalid, got %v", tok.Kind)
	}
	if got := reporter.Codes(); len(got) != 1 || got[0] != diag.LexUnknownChar {
		t.Errorf("expected LexUnknownChar, got %v", got)
	}
}

func TestComments_AttachAsLeadingTrivia(t *testing.T) {
	lx, _ := makeTestLexer("-- first\n/* second */ SELECT")
	tok := lx.Next()
	if tok.Kind != token.KwSelect {
		t.Fatalf("expected SELECT, got %v", tok.Kind)
	}
	var comments []string
	for _, tr := range tok.Leading {
		if tr.IsComment() {
			comments = append(comments, tr.Text)
		}
	}
	if len(comments) != 2 || comments[0] != "-- first" || comments[1] != "/* second */" {
		t.Errorf("unexpected comments: %v", comments)
	}
}

func TestComments_TrailingAtEOFSurvive(t *testing.T) {
	lx, _ := makeTestLexer("SELECT 1\n-- done")
	var eof token.Token
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			eof = tok
			break
		}
	}
	found := false
	for _, tr := range eof.Leading {
		if tr.Kind == token.TriviaLineComment && tr.Text == "-- done" {
			found = true
		}
	}
	if !found {
		t.Errorf("trailing comment missing from EOF trivia: %v", eof.Leading)
	}
}

func TestPeek_DoesNotConsume(t *testing.T) {
	lx, _ := makeTestLexer("SELECT a")
	if got := lx.Peek().Kind; got != token.KwSelect {
		t.Fatalf("peek: expected SELECT, got %v", got)
	}
	if got := lx.Next().Kind; got != token.KwSelect {
		t.Fatalf("next after peek: expected SELECT, got %v", got)
	}
	if got := lx.Next().Kind; got != token.Ident {
		t.Fatalf("expected Ident, got %v", got)
	}
}
