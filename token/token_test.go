package token

import "testing"

func TestLookupIdentKeyword(t *testing.T) {
	if tt := LookupIdent("while"); tt != WHILE {
		t.Fatalf("expected WHILE, got %s", tt)
	}
}

func TestLookupIdentNotKeyword(t *testing.T) {
	if tt := LookupIdent("counter"); tt != IDENTIFIER {
		t.Fatalf("expected IDENTIFIER, got %s", tt)
	}
}

func TestTokenString(t *testing.T) {
	tok := Token{Type: NUMBER, Lexeme: "42", Literal: float64(42), Line: 3}
	got := tok.String()
	if got == "" {
		t.Fatal("expected non-empty String()")
	}
}
