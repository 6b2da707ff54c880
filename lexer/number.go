// ==============================================================================================
// FILE: lexer/number.go
// ==============================================================================================
package lexer

import (
	"github.com/sawickiap/MinScriptLang-sub001/langerr"
	"github.com/sawickiap/MinScriptLang-sub001/token"
)

// readNumber scans a hex integer (0x...), or a decimal with an optional
// fractional part and optional [eE][+-]?digits exponent. A bare '.' without
// surrounding digits never reaches here (the caller only dispatches to
// readNumber when a digit follows the dot). An alpha character immediately
// following the number is a parse error.
func (l *Lexer) readNumber() (token.Token, error) {
	place := l.c.place()
	start := l.c.index

	if l.c.current() == '0' && (l.c.peekAt(1) == 'x' || l.c.peekAt(1) == 'X') {
		l.c.advanceN(2)
		digits := 0
		for !l.c.eof() && isHexDigit(l.c.current()) {
			l.c.advance()
			digits++
		}
		if digits == 0 {
			return token.Token{}, langerr.NewParseError(place, "hexadecimal number requires at least one digit")
		}
		if !l.c.eof() && isAlpha(l.c.current()) {
			return token.Token{}, langerr.NewParseError(l.c.place(), "unexpected character after number")
		}
		return token.Token{Type: token.NUMBER, Literal: l.c.src[start:l.c.index], Place: place}, nil
	}

	for !l.c.eof() && isDigit(l.c.current()) {
		l.c.advance()
	}
	if l.c.current() == '.' && isDigit(l.c.peekAt(1)) {
		l.c.advance()
		for !l.c.eof() && isDigit(l.c.current()) {
			l.c.advance()
		}
	} else if l.c.current() == '.' {
		// A lone trailing dot with no following digit belongs to the next token
		// (e.g. member access `1 .toString`), so only consume it if digits follow.
	}
	if ch := l.c.current(); ch == 'e' || ch == 'E' {
		save := *l.c
		l.c.advance()
		if ch := l.c.current(); ch == '+' || ch == '-' {
			l.c.advance()
		}
		digits := 0
		for !l.c.eof() && isDigit(l.c.current()) {
			l.c.advance()
			digits++
		}
		if digits == 0 {
			// Not actually an exponent; rewind.
			*l.c = save
		}
	}

	if !l.c.eof() && isAlpha(l.c.current()) {
		return token.Token{}, langerr.NewParseError(l.c.place(), "unexpected character after number")
	}

	return token.Token{Type: token.NUMBER, Literal: l.c.src[start:l.c.index], Place: place}, nil
}
