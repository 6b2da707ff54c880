// ==============================================================================================
// FILE: value/string.go
// ==============================================================================================
package value

import (
	"github.com/sawickiap/MinScriptLang-sub001/langerr"
	"github.com/sawickiap/MinScriptLang-sub001/token"
)

// StringBox is the shared-mutable storage behind a KindString Value. It is
// addressed by pointer so that a StringCharacter lvalue write is visible
// through every Value that still aliases the same box — which, after
// cloneForStore's copy-on-assign, is only Values reached without crossing
// an assignment boundary.
//
// Data is held as bytes rather than runes: indices are code units (byte
// offsets), matching the byte-oriented source cursor and lexer.
type StringBox struct {
	data []byte
}

func NewStringBox(s string) *StringBox {
	return &StringBox{data: []byte(s)}
}

func (b *StringBox) Data() string { return string(b.data) }

func (b *StringBox) Len() int { return len(b.data) }

func (b *StringBox) Clone() *StringBox {
	cp := make([]byte, len(b.data))
	copy(cp, b.data)
	return &StringBox{data: cp}
}

// CharAt returns the one-character string at index i, or an error if i is
// out of bounds.
func (b *StringBox) CharAt(place token.Place, i int) (Value, error) {
	if i < 0 || i >= len(b.data) {
		return Value{}, langerr.NewExecutionError(place, "string index %d out of bounds (length %d)", i, len(b.data))
	}
	return String(string(b.data[i : i+1])), nil
}

// SetCharAt overwrites the byte at index i in place, requiring c to be a
// single-character string.
func (b *StringBox) SetCharAt(place token.Place, i int, c Value) error {
	if i < 0 || i >= len(b.data) {
		return langerr.NewExecutionError(place, "string index %d out of bounds (length %d)", i, len(b.data))
	}
	if c.Kind != KindString || c.Str.Len() != 1 {
		return langerr.NewExecutionError(place, "character assignment requires a single-character string")
	}
	b.data[i] = c.Str.data[0]
	return nil
}
