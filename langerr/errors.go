// ==============================================================================================
// FILE: langerr/errors.go
// ==============================================================================================
// PACKAGE: langerr
// PURPOSE: The two error kinds the interpreter ever raises: ParseError (lexer/parser) and
//          ExecutionError (evaluator). Both carry a source Place and a message, and both
//          format the same way when surfaced to a host: "(row,column): message".
// ==============================================================================================

package langerr

import (
	"fmt"

	"github.com/sawickiap/MinScriptLang-sub001/token"
)

// ParseError is raised by the lexer or parser for any malformed source: a bad
// number, a bad escape sequence, an unterminated comment/string, a missing
// expected symbol, a duplicate parameter name, a duplicate switch constant, or
// a repeated object-literal key.
type ParseError struct {
	Place   token.Place
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("(%d,%d): %s", e.Place.Row, e.Place.Column, e.Message)
}

// NewParseError constructs a ParseError at the given place.
func NewParseError(place token.Place, format string, args ...any) *ParseError {
	return &ParseError{Place: place, Message: fmt.Sprintf(format, args...)}
}

// ExecutionError is raised by the evaluator for any runtime violation: a type
// mismatch, wrong argument count, an invalid index or l-value, break/continue
// escaping every loop, `this` used where none is bound, `local` used outside
// any call, a call-stack overflow, or an operand of the wrong type.
type ExecutionError struct {
	Place   token.Place
	Message string
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("(%d,%d): %s", e.Place.Row, e.Place.Column, e.Message)
}

// NewExecutionError constructs an ExecutionError at the given place.
func NewExecutionError(place token.Place, format string, args ...any) *ExecutionError {
	return &ExecutionError{Place: place, Message: fmt.Sprintf(format, args...)}
}

// ThrownValue wraps a user `throw` of any value that escapes all the way to
// the host uncaught. It carries the place of the throw and the thrown value
// itself; the value's concrete type lives in package value, so this field is
// typed as `any` to avoid an import cycle and is type-asserted by callers
// that already import value.
type ThrownValue struct {
	Place   token.Place
	Value   any
	Inspect string // pre-rendered description of Value, for Error()/logging
}

func (e *ThrownValue) Error() string {
	return fmt.Sprintf("(%d,%d): uncaught thrown value: %s", e.Place.Row, e.Place.Column, e.Inspect)
}
