package token_test

import (
	"testing"

	"github.com/carllerche/minifmt/internal/token"
)

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		text string
		want token.Kind
		ok   bool
	}{
		{"struct", token.KwStruct, true},
		{"Self", token.KwSelfType, true},
		{"self", token.KwSelfValue, true},
		{"SELF", token.Invalid, false},
		{"structs", token.Invalid, false},
	}
	for _, tt := range tests {
		got, ok := token.LookupKeyword(tt.text)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("LookupKeyword(%q) = %v,%v want %v,%v", tt.text, got, ok, tt.want, tt.ok)
		}
	}
}

func TestKeywordRange(t *testing.T) {
	for text := range map[string]struct{}{"as": {}, "while": {}, "impl": {}} {
		k, _ := token.LookupKeyword(text)
		if !(token.Token{Kind: k}).IsKeyword() {
			t.Errorf("%q must be a keyword", text)
		}
	}
	for _, k := range []token.Kind{token.Ident, token.IntLit, token.Lifetime, token.DocOuter} {
		if (token.Token{Kind: k}).IsKeyword() {
			t.Errorf("%v must not be a keyword", k)
		}
	}
}

func TestKindString(t *testing.T) {
	if got := token.ColonColon.String(); got != "::" {
		t.Fatalf("ColonColon.String() = %q", got)
	}
	if got := token.KwImpl.String(); got != "impl" {
		t.Fatalf("KwImpl.String() = %q", got)
	}
}
