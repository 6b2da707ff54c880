// ==============================================================================================
// FILE: value/array.go
// ==============================================================================================
package value

import (
	"github.com/sawickiap/MinScriptLang-sub001/langerr"
	"github.com/sawickiap/MinScriptLang-sub001/token"
)

// Array is a shared-mutable ordered sequence of Value (spec §3).
type Array struct {
	elements []Value
}

func NewArray() *Array {
	return &Array{}
}

func (a *Array) Len() int { return len(a.elements) }

// Get returns the element at i, or an ExecutionError if out of bounds.
func (a *Array) Get(place token.Place, i int) (Value, error) {
	if i < 0 || i >= len(a.elements) {
		return Value{}, langerr.NewExecutionError(place, "array index %d out of bounds (length %d)", i, len(a.elements))
	}
	return a.elements[i], nil
}

// Set overwrites the element at i, or an ExecutionError if out of bounds.
func (a *Array) Set(place token.Place, i int, v Value) error {
	if i < 0 || i >= len(a.elements) {
		return langerr.NewExecutionError(place, "array index %d out of bounds (length %d)", i, len(a.elements))
	}
	a.elements[i] = cloneForStore(v)
	return nil
}

// Append adds v to the end (the `add` built-in method).
func (a *Array) Append(v Value) {
	a.elements = append(a.elements, cloneForStore(v))
}

// Insert places v at index i, shifting later elements right. i == Len() is
// valid (append at the end); anything else out of [0, Len()] fails.
func (a *Array) Insert(place token.Place, i int, v Value) error {
	if i < 0 || i > len(a.elements) {
		return langerr.NewExecutionError(place, "array insert index %d out of bounds (length %d)", i, len(a.elements))
	}
	v = cloneForStore(v)
	a.elements = append(a.elements, Value{})
	copy(a.elements[i+1:], a.elements[i:])
	a.elements[i] = v
	return nil
}

// Remove deletes and returns the element at index i.
func (a *Array) Remove(place token.Place, i int) (Value, error) {
	if i < 0 || i >= len(a.elements) {
		return Value{}, langerr.NewExecutionError(place, "array remove index %d out of bounds (length %d)", i, len(a.elements))
	}
	removed := a.elements[i]
	a.elements = append(a.elements[:i], a.elements[i+1:]...)
	return removed, nil
}

// Snapshot returns a copy of the current element slice, used by range-for
// so that mutation of the array during iteration doesn't change which
// elements are visited (the Open Question decision recorded in
// DESIGN.md).
func (a *Array) Snapshot() []Value {
	cp := make([]Value, len(a.elements))
	copy(cp, a.elements)
	return cp
}

// ShallowCopy returns a new Array with the same elements (Object/Array
// elements shared, not deep-copied; String elements go through
// cloneForStore), matching the Object.ShallowCopy contract used by the
// `Array(a)` copy constructor.
func (a *Array) ShallowCopy() *Array {
	cp := NewArray()
	for _, v := range a.elements {
		cp.elements = append(cp.elements, cloneForStore(v))
	}
	return cp
}
