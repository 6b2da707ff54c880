// ==============================================================================================
// FILE: lexer/lexer.go
// ==============================================================================================
// PACKAGE: lexer
// PURPOSE: Hand-written lexer. Turns a source string into the full token vector the parser
//          rewinds over: identifiers, keywords, numbers, strings, punctuation and the
//          compound operators, skipping whitespace and comments along the way.
// ==============================================================================================

package lexer

import (
	"strings"

	"github.com/sawickiap/MinScriptLang-sub001/langerr"
	"github.com/sawickiap/MinScriptLang-sub001/token"
)

// operators lists multi-character operators longest-match-first, so that e.g.
// "<<=" is recognized before "<<" before "<".
var operators = []struct {
	text string
	typ  token.Type
}{
	{"<<=", token.SHL_ASSIGN},
	{">>=", token.SHR_ASSIGN},
	{"+=", token.PLUS_ASSIGN},
	{"-=", token.MINUS_ASSIGN},
	{"*=", token.STAR_ASSIGN},
	{"/=", token.SLASH_ASSIGN},
	{"%=", token.PERCENT_ASSIGN},
	{"&=", token.AND_ASSIGN},
	{"^=", token.XOR_ASSIGN},
	{"|=", token.OR_ASSIGN},
	{"==", token.EQ},
	{"!=", token.NEQ},
	{"<=", token.LTE},
	{">=", token.GTE},
	{"<<", token.SHL},
	{">>", token.SHR},
	{"&&", token.AND},
	{"||", token.OR},
	{"++", token.INC},
	{"--", token.DEC},
	{"+", token.PLUS},
	{"-", token.MINUS},
	{"*", token.STAR},
	{"/", token.SLASH},
	{"%", token.PERCENT},
	{"!", token.BANG},
	{"~", token.TILDE},
	{"=", token.ASSIGN},
	{"<", token.LT},
	{">", token.GT},
	{"&", token.AMP},
	{"^", token.CARET},
	{"|", token.PIPE},
	{"?", token.QMARK},
	{":", token.COLON},
	{",", token.COMMA},
	{";", token.SEMI},
	{".", token.DOT},
	{"(", token.LPAREN},
	{")", token.RPAREN},
	{"{", token.LBRACE},
	{"}", token.RBRACE},
	{"[", token.LBRACK},
	{"]", token.RBRACK},
}

// Lexer turns source text into a token vector.
type Lexer struct {
	c *cursor
}

// New creates a Lexer over src. Tokenize does the actual scanning.
func New(src string) *Lexer {
	return &Lexer{c: newCursor(src)}
}

// Tokenize scans the whole input into a token vector terminated by an EOF
// token, then concatenates adjacent string literals. It stops at the first
// malformed token and returns a *langerr.ParseError.
func (l *Lexer) Tokenize() ([]token.Token, error) {
	var toks []token.Token
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			break
		}
	}
	return concatAdjacentStrings(toks), nil
}

// concatAdjacentStrings merges runs of adjacent STRING tokens into one,
// matching the source-level rule that "a" "b" reads as the literal "ab".
func concatAdjacentStrings(toks []token.Token) []token.Token {
	out := make([]token.Token, 0, len(toks))
	for i := 0; i < len(toks); i++ {
		tok := toks[i]
		if tok.Type == token.STRING {
			var b strings.Builder
			b.WriteString(tok.Literal)
			for i+1 < len(toks) && toks[i+1].Type == token.STRING {
				i++
				b.WriteString(toks[i].Literal)
			}
			tok.Literal = b.String()
		}
		out = append(out, tok)
	}
	return out
}

func (l *Lexer) next() (token.Token, error) {
	if err := l.skipWhitespaceAndComments(); err != nil {
		return token.Token{}, err
	}

	place := l.c.place()

	if l.c.eof() {
		return token.Token{Type: token.EOF, Place: place}, nil
	}

	ch := l.c.current()

	switch {
	case isDigit(ch) || (ch == '.' && isDigit(l.c.peekAt(1))):
		return l.readNumber()
	case ch == '"' || ch == '\'':
		return l.readString()
	case isIdentStart(ch):
		return l.readIdentifier()
	}

	for _, op := range operators {
		if l.c.hasPrefix(op.text) {
			l.c.advanceN(len(op.text))
			return token.Token{Type: op.typ, Literal: op.text, Place: place}, nil
		}
	}

	return token.Token{}, langerr.NewParseError(place, "unexpected character %q", ch)
}

func (l *Lexer) skipWhitespaceAndComments() error {
	for {
		switch {
		case !l.c.eof() && isSpace(l.c.current()):
			l.c.advance()
		case l.c.hasPrefix("//"):
			for !l.c.eof() && l.c.current() != '\n' {
				l.c.advance()
			}
		case l.c.hasPrefix("/*"):
			start := l.c.place()
			l.c.advanceN(2)
			closed := false
			for !l.c.eof() {
				if l.c.hasPrefix("*/") {
					l.c.advanceN(2)
					closed = true
					break
				}
				l.c.advance()
			}
			if !closed {
				return langerr.NewParseError(start, "unterminated multi-line comment")
			}
		default:
			return nil
		}
	}
}

func (l *Lexer) readIdentifier() (token.Token, error) {
	place := l.c.place()
	start := l.c.index
	for !l.c.eof() && isIdentPart(l.c.current()) {
		l.c.advance()
	}
	text := l.c.src[start:l.c.index]
	return token.Token{Type: token.LookupIdent(text), Literal: text, Place: place}, nil
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' || ch == '\v' || ch == '\f'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isHexDigit(ch byte) bool {
	return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func isIdentStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}

func isAlpha(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}
