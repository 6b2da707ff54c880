// ==============================================================================================
// FILE: value/lvalue.go
// ==============================================================================================
// PACKAGE: value (continued)
// PURPOSE: The l-value protocol (spec §3/§4.4): three reference kinds produced only during
//          evaluation of an assignment or increment target, never stored in a Value. Plain
//          rvalue member/index reads do NOT go through here — a missing object key or
//          out-of-range string/array index as a bare expression read is handled directly by the
//          evaluator (returning null for objects, failing for strings/arrays per spec §4.5);
//          LValue.Get is the stricter read used only when an existing value must be combined
//          with a new one (`+=`, `++`, `--`).
// ==============================================================================================

package value

import (
	"github.com/sawickiap/MinScriptLang-sub001/langerr"
	"github.com/sawickiap/MinScriptLang-sub001/token"
)

// LValue is implemented by ObjectMember, ArrayElement, and StringCharacter.
type LValue interface {
	// Get reads the current value, failing if the target doesn't exist yet
	// (a missing object key, an out-of-bounds array/string index).
	Get() (Value, error)
	// Set writes v through the reference. For ObjectMember, a null v
	// removes the key instead of storing it.
	Set(v Value) error
}

// ObjectMember is an l-value into one key of an Object (including a scope,
// which is itself an Object).
type ObjectMember struct {
	Obj   *Object
	Key   string
	Place token.Place
}

func (m ObjectMember) Get() (Value, error) {
	v, ok := m.Obj.Get(m.Key)
	if !ok {
		return Value{}, langerr.NewExecutionError(m.Place, "object has no member %q", m.Key)
	}
	return v, nil
}

func (m ObjectMember) Set(v Value) error {
	m.Obj.Set(m.Key, v)
	return nil
}

// ArrayElement is an l-value into one index of an Array.
type ArrayElement struct {
	Arr   *Array
	Index int
	Place token.Place
}

func (e ArrayElement) Get() (Value, error) {
	return e.Arr.Get(e.Place, e.Index)
}

func (e ArrayElement) Set(v Value) error {
	return e.Arr.Set(e.Place, e.Index, v)
}

// StringCharacter is an l-value into one byte of a StringBox. Writing
// mutates the shared buffer in place — this is the one write path in the
// whole language that bypasses cloneForStore by design (spec §9).
type StringCharacter struct {
	Box   *StringBox
	Index int
	Place token.Place
}

func (c StringCharacter) Get() (Value, error) {
	return c.Box.CharAt(c.Place, c.Index)
}

func (c StringCharacter) Set(v Value) error {
	return c.Box.SetCharAt(c.Place, c.Index, v)
}
