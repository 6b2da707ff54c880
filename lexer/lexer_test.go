package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sawickiap/MinScriptLang-sub001/token"
)

func tokenTypes(t *testing.T, src string) []token.Type {
	t.Helper()
	toks, err := New(src).Tokenize()
	require.NoError(t, err)
	types := make([]token.Type, len(toks))
	for i, tok := range toks {
		types[i] = tok.Type
	}
	return types
}

func TestTokenizePunctuationLongestMatchFirst(t *testing.T) {
	types := tokenTypes(t, "<<= << < <=")
	require.Equal(t, []token.Type{token.SHL_ASSIGN, token.SHL, token.LT, token.LTE, token.EOF}, types)
}

func TestTokenizeNumbers(t *testing.T) {
	toks, err := New("0x1F 3.14 2e10 5").Tokenize()
	require.NoError(t, err)
	require.Len(t, toks, 5) // 4 numbers + EOF
	for i, want := range []string{"0x1F", "3.14", "2e10", "5"} {
		require.Equal(t, token.NUMBER, toks[i].Type)
		require.Equal(t, want, toks[i].Literal)
	}
}

func TestTokenizeHexNumberRequiresDigit(t *testing.T) {
	_, err := New("0x").Tokenize()
	require.Error(t, err)
}

func TestTokenizeStringEscapes(t *testing.T) {
	toks, err := New(`"a\nb\x41B"`).Tokenize()
	require.NoError(t, err)
	require.Equal(t, "a\nbAB", toks[0].Literal)
}

func TestTokenizeAdjacentStringConcatenation(t *testing.T) {
	toks, err := New(`"foo" "bar"`).Tokenize()
	require.NoError(t, err)
	require.Len(t, toks, 2) // one merged STRING + EOF
	require.Equal(t, "foobar", toks[0].Literal)
}

func TestTokenizeUnterminatedStringIsParseError(t *testing.T) {
	_, err := New(`"unterminated`).Tokenize()
	require.Error(t, err)
}

func TestTokenizeSkipsCommentsAndWhitespace(t *testing.T) {
	types := tokenTypes(t, "// line comment\n/* block */ x")
	require.Equal(t, []token.Type{token.IDENT, token.EOF}, types)
}

func TestTokenizeUnterminatedBlockComment(t *testing.T) {
	_, err := New("/* never closes").Tokenize()
	require.Error(t, err)
}

func TestTokenizeKeywordsVsIdentifiers(t *testing.T) {
	types := tokenTypes(t, "if myVar function")
	require.Equal(t, []token.Type{token.IF, token.IDENT, token.FUNCTION, token.EOF}, types)
}
