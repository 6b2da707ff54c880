// ==============================================================================================
// FILE: value/value.go
// ==============================================================================================
// PACKAGE: value
// PURPOSE: The tagged-union runtime value every part of the interpreter passes around: eight
//          variants carried in one struct so that a plain Go assignment (`v2 := v1`) already
//          gives the language's by-value/by-reference split for free — scalar fields (Num, the
//          *StringBox pointer) copy or alias exactly the way Number/String should, and the
//          Obj/Arr pointer fields alias exactly the way shared Object/Array values should.
//          Eloquence models the same idea with an Object interface and one concrete struct per
//          variant (object.Integer, object.String, ...); that shape fits a GC'd tree of
//          heterogeneous pointers well, but would need an explicit deep-copy step bolted onto
//          every assignment site to reproduce the string copy-on-assign rule below. A flat
//          struct gets that for free, so it's the form used here.
// ==============================================================================================

package value

import (
	"fmt"
	"strconv"

	"github.com/sawickiap/MinScriptLang-sub001/ast"
)

// Kind discriminates the eight Value variants.
type Kind int

const (
	KindNull Kind = iota
	KindNumber
	KindString
	KindFunction
	KindSystemFunction
	KindObject
	KindArray
	KindTypeTag
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindFunction:
		return "function"
	case KindSystemFunction:
		return "system function"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindTypeTag:
		return "type"
	default:
		return "unknown"
	}
}

// TypeTag names the seven type-constructor identities scripts can observe
// via typeOf(v) or by naming a type directly (Null, Number, ...). Both
// ordinary Function values and SystemFunction values report as TagFunction.
type TypeTag int

const (
	TagNull TypeTag = iota
	TagNumber
	TagString
	TagObject
	TagArray
	TagFunction
	TagType
)

func (t TypeTag) String() string {
	switch t {
	case TagNull:
		return "Null"
	case TagNumber:
		return "Number"
	case TagString:
		return "String"
	case TagObject:
		return "Object"
	case TagArray:
		return "Array"
	case TagFunction:
		return "Function"
	case TagType:
		return "Type"
	default:
		return "Unknown"
	}
}

// SysTag names a built-in callable that isn't a user-written Function.
type SysTag int

const (
	SysPrint SysTag = iota
	SysTypeOf
	SysArrayAdd
	SysArrayInsert
	SysArrayRemove
)

func (t SysTag) String() string {
	switch t {
	case SysPrint:
		return "print"
	case SysTypeOf:
		return "typeOf"
	case SysArrayAdd:
		return "add"
	case SysArrayInsert:
		return "insert"
	case SysArrayRemove:
		return "remove"
	default:
		return "system function"
	}
}

// Value is the tagged union. Only the fields relevant to Kind are
// meaningful; the rest are zero. Str/Obj/Arr are pointers so that copying a
// Value (parameter passing, storing into a container) shares Object/Array
// state and — except across the copy-on-assign boundary described in
// StringBox — shares String state too.
type Value struct {
	Kind Kind

	Num float64
	Str *StringBox
	Fn  *ast.FunctionLiteral
	Sys SysTag
	Obj *Object
	Arr *Array
	Tag TypeTag

	// BoundArr is set only for SysArrayAdd/Insert/Remove values produced by
	// member access on an array (spec §4.5): the receiver bound as `this`.
	BoundArr *Array
}

// Null is the singleton-shaped null value (Values are plain structs, so
// every zero-Kind Value already equals this; the constant exists for
// readability at call sites).
var Null = Value{Kind: KindNull}

func Number(n float64) Value { return Value{Kind: KindNumber, Num: n} }

func String(s string) Value { return Value{Kind: KindString, Str: NewStringBox(s)} }

func Bool(b bool) Value {
	if b {
		return Number(1)
	}
	return Number(0)
}

func Function(fn *ast.FunctionLiteral) Value { return Value{Kind: KindFunction, Fn: fn} }

func SystemFunction(tag SysTag) Value { return Value{Kind: KindSystemFunction, Sys: tag} }

func BoundArrayMethod(tag SysTag, arr *Array) Value {
	return Value{Kind: KindSystemFunction, Sys: tag, BoundArr: arr}
}

func ObjectValue(o *Object) Value { return Value{Kind: KindObject, Obj: o} }

func ArrayValue(a *Array) Value { return Value{Kind: KindArray, Arr: a} }

func Type(tag TypeTag) Value { return Value{Kind: KindTypeTag, Tag: tag} }

// IsNull reports whether v is the null value.
func (v Value) IsNull() bool { return v.Kind == KindNull }

// Truthy implements the language's truthiness rule (spec §3).
func (v Value) Truthy() bool {
	switch v.Kind {
	case KindNull:
		return false
	case KindNumber:
		return v.Num != 0
	case KindString:
		return v.Str.Len() > 0
	case KindTypeTag:
		return v.Tag != TagNull
	default: // Function, SystemFunction, Object, Array
		return true
	}
}

// Equal implements variant-wise equality (spec §3): numbers and strings by
// content, functions by node identity, system functions by tag (the bound
// receiver is not part of equality), objects and arrays by reference
// identity, type tags by tag, null equals null.
func (v Value) Equal(other Value) bool {
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case KindNull:
		return true
	case KindNumber:
		return v.Num == other.Num
	case KindString:
		return v.Str.Data() == other.Str.Data()
	case KindFunction:
		return v.Fn == other.Fn
	case KindSystemFunction:
		return v.Sys == other.Sys
	case KindObject:
		return v.Obj == other.Obj
	case KindArray:
		return v.Arr == other.Arr
	case KindTypeTag:
		return v.Tag == other.Tag
	default:
		return false
	}
}

// TypeOf reports the TypeTag scripts observe via typeOf(v).
func (v Value) TypeOf() TypeTag {
	switch v.Kind {
	case KindNull:
		return TagNull
	case KindNumber:
		return TagNumber
	case KindString:
		return TagString
	case KindFunction, KindSystemFunction:
		return TagFunction
	case KindObject:
		return TagObject
	case KindArray:
		return TagArray
	case KindTypeTag:
		return TagType
	default:
		return TagNull
	}
}

// Inspect renders v the way print(v) does (spec §6): Null -> "null",
// Number -> %g, String -> itself, Object/Array/Function/SystemFunction ->
// their literal tag word, TypeTag -> its tag name. This is the single
// rendering used both by the print built-in and by debug/error contexts
// that need a short display form.
func (v Value) Inspect() string {
	switch v.Kind {
	case KindNull:
		return "null"
	case KindNumber:
		return formatNumber(v.Num)
	case KindString:
		return v.Str.Data()
	case KindFunction, KindSystemFunction:
		return "function"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindTypeTag:
		return v.Tag.String()
	default:
		return "?"
	}
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'g', -1, 64)
}

// cloneForStore is applied at every point a Value is written into a
// container (a scope/object member, an array element, a freshly-bound
// parameter): String values are deep-copied so that `t = s;` followed by
// `s[i] = c;` leaves t unaffected, matching the design note in spec §9.
// Object and Array values are left aliased — their whole point is shared
// mutable state.
func cloneForStore(v Value) Value {
	if v.Kind != KindString {
		return v
	}
	return Value{Kind: KindString, Str: v.Str.Clone()}
}

// GoString supports %#v / debugger display without implying this is the
// format print() uses.
func (v Value) GoString() string {
	return fmt.Sprintf("Value{Kind:%s, %s}", v.Kind, v.Inspect())
}
