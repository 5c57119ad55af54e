package token_test

import (
	"testing"

	"sparkfmt/internal/token"
)

func TestLookupKeyword_CaseInsensitive(t *testing.T) {
	for _, spelling := range []string{"select", "SELECT", "SeLeCt"} {
		k, ok := token.LookupKeyword(spelling)
		if !ok || k != token.KwSelect {
			t.Errorf("%q: got %v ok=%v", spelling, k, ok)
		}
	}
	if _, ok := token.LookupKeyword("selects"); ok {
		t.Error("'selects' must not be a keyword")
	}
}

func TestTokenClassification(t *testing.T) {
	tests := []struct {
		kind    token.Kind
		keyword bool
		literal bool
	}{
		{token.KwSelect, true, false},
		{token.KwOn, true, false},
		{token.KwNull, true, true}, // keyword literal
		{token.NumberLit, false, true},
		{token.StringLit, false, true},
		{token.HexLit, false, true},
		{token.Ident, false, false},
		{token.Eq, false, false},
		{token.LParen, false, false},
	}
	for _, tt := range tests {
		tok := token.Token{Kind: tt.kind}
		if tok.IsKeyword() != tt.keyword {
			t.Errorf("%s: IsKeyword = %v", tt.kind, tok.IsKeyword())
		}
		if tok.IsLiteral() != tt.literal {
			t.Errorf("%s: IsLiteral = %v", tt.kind, tok.IsLiteral())
		}
	}
}
