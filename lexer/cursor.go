// ==============================================================================================
// FILE: lexer/cursor.go
// ==============================================================================================
// PACKAGE: lexer
// PURPOSE: Tracks a position into the source text as the lexer advances one byte at a time.
// ==============================================================================================

package lexer

import "github.com/sawickiap/MinScriptLang-sub001/token"

// cursor walks source text byte-by-byte, tracking row/column for diagnostics.
// Bytes are treated as 8-bit units; lexing rules are ASCII-only even though
// string literal bodies may carry arbitrary UTF-8.
type cursor struct {
	src    string
	index  int
	row    int
	column int
}

func newCursor(src string) *cursor {
	return &cursor{src: src, index: 0, row: 1, column: 1}
}

func (c *cursor) place() token.Place {
	return token.Place{Index: c.index, Row: c.row, Column: c.column}
}

func (c *cursor) eof() bool {
	return c.index >= len(c.src)
}

func (c *cursor) current() byte {
	if c.eof() {
		return 0
	}
	return c.src[c.index]
}

// peekAt returns the byte offset bytes ahead of the current one, or 0 past EOF.
func (c *cursor) peekAt(offset int) byte {
	i := c.index + offset
	if i < 0 || i >= len(c.src) {
		return 0
	}
	return c.src[i]
}

// advance moves one byte forward, updating row/column on newline.
func (c *cursor) advance() {
	if c.eof() {
		return
	}
	if c.src[c.index] == '\n' {
		c.row++
		c.column = 1
	} else {
		c.column++
	}
	c.index++
}

// advanceN repeats advance n times.
func (c *cursor) advanceN(n int) {
	for i := 0; i < n; i++ {
		c.advance()
	}
}

// hasPrefix reports whether the remaining source begins with s, without advancing.
func (c *cursor) hasPrefix(s string) bool {
	end := c.index + len(s)
	if end > len(c.src) {
		return false
	}
	return c.src[c.index:end] == s
}

func (c *cursor) remaining() string {
	return c.src[c.index:]
}
