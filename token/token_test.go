package token

import "testing"

func TestLookupIdent(t *testing.T) {
	cases := map[string]Type{
		"if":       IF,
		"function": FUNCTION,
		"this":     THIS,
		"finally":  FINALLY,
		"banana":   IDENT,
		"":         IDENT,
	}
	for text, want := range cases {
		if got := LookupIdent(text); got != want {
			t.Errorf("LookupIdent(%q) = %s, want %s", text, got, want)
		}
	}
}
