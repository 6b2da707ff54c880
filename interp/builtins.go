// ==============================================================================================
// FILE: interp/builtins.go
// ==============================================================================================
// PACKAGE: interp (continued)
// PURPOSE: The handful of names the evaluator synthesizes rather than resolves from a scope:
//          `print`/`typeOf`, the array `add`/`insert`/`remove` methods bound via BoundArr, and
//          the seven type values acting as constructors/converters when called directly (spec
//          §6, supplemented with the variadic multi-line print behavior from the reference
//          implementation this language was distilled from).
// ==============================================================================================

package interp

import (
	"github.com/sawickiap/MinScriptLang-sub001/ast"
	"github.com/sawickiap/MinScriptLang-sub001/value"
)

func (in *Interp) callSystemFunction(e *ast.CallExpression, fn value.Value, args []value.Value) (value.Value, error) {
	switch fn.Sys {
	case value.SysPrint:
		for _, a := range args {
			in.Out.Print(a.Inspect())
			in.Out.Print("\n")
		}
		return value.Null, nil
	case value.SysTypeOf:
		if len(args) != 1 {
			return value.Value{}, execErrorAt(e.Place(), "typeOf expects 1 argument, got %d", len(args))
		}
		return value.Type(args[0].TypeOf()), nil
	case value.SysArrayAdd:
		if len(args) != 1 {
			return value.Value{}, execErrorAt(e.Place(), "add expects 1 argument, got %d", len(args))
		}
		fn.BoundArr.Append(args[0])
		return value.Null, nil
	case value.SysArrayInsert:
		if len(args) != 2 {
			return value.Value{}, execErrorAt(e.Place(), "insert expects 2 arguments, got %d", len(args))
		}
		if args[0].Kind != value.KindNumber {
			return value.Value{}, execErrorAt(e.Place(), "insert index must be a number")
		}
		if err := fn.BoundArr.Insert(e.Place(), int(args[0].Num), args[1]); err != nil {
			return value.Value{}, err
		}
		return value.Null, nil
	case value.SysArrayRemove:
		if len(args) != 1 {
			return value.Value{}, execErrorAt(e.Place(), "remove expects 1 argument, got %d", len(args))
		}
		if args[0].Kind != value.KindNumber {
			return value.Value{}, execErrorAt(e.Place(), "remove index must be a number")
		}
		return fn.BoundArr.Remove(e.Place(), int(args[0].Num))
	}
	return value.Value{}, execErrorAt(e.Place(), "unknown built-in function")
}

// constructType implements calling a type value directly: `Number()`,
// `Object(other)`, etc. (spec §6). Zero arguments yields that type's zero
// value, except `Function()`, which has none and is rejected; one argument
// must already be the target type (rejected otherwise as an ExecutionError —
// no cross-kind coercion), shallow-copied for Object/Array, and `Null`
// accepts no argument at all; any other argument count is also an error.
func constructType(e *ast.CallExpression, tag value.TypeTag, args []value.Value) (value.Value, error) {
	if len(args) > 1 {
		return value.Value{}, execErrorAt(e.Place(), "%s constructor takes at most 1 argument, got %d", tag, len(args))
	}

	switch tag {
	case value.TagNull:
		if len(args) != 0 {
			return value.Value{}, execErrorAt(e.Place(), "Null takes no arguments")
		}
		return value.Null, nil

	case value.TagNumber:
		if len(args) == 0 {
			return value.Number(0), nil
		}
		if args[0].Kind != value.KindNumber {
			return value.Value{}, execErrorAt(e.Place(), "Number can be constructed only from another number")
		}
		return value.Number(args[0].Num), nil

	case value.TagString:
		if len(args) == 0 {
			return value.String(""), nil
		}
		if args[0].Kind != value.KindString {
			return value.Value{}, execErrorAt(e.Place(), "String can be constructed only from another string")
		}
		return value.String(args[0].Str.Data()), nil

	case value.TagObject:
		if len(args) == 0 {
			return value.ObjectValue(value.NewObject()), nil
		}
		if args[0].Kind != value.KindObject {
			return value.Value{}, execErrorAt(e.Place(), "Object(x) requires x to be an object")
		}
		return value.ObjectValue(args[0].Obj.ShallowCopy()), nil

	case value.TagArray:
		if len(args) == 0 {
			return value.ArrayValue(value.NewArray()), nil
		}
		if args[0].Kind != value.KindArray {
			return value.Value{}, execErrorAt(e.Place(), "Array(x) requires x to be an array")
		}
		return value.ArrayValue(args[0].Arr.ShallowCopy()), nil

	case value.TagFunction:
		if len(args) == 0 {
			return value.Value{}, execErrorAt(e.Place(), "Function() requires an argument to convert")
		}
		if args[0].Kind != value.KindFunction && args[0].Kind != value.KindSystemFunction {
			return value.Value{}, execErrorAt(e.Place(), "Function(x) requires x to be a function")
		}
		return args[0], nil

	case value.TagType:
		if len(args) == 0 {
			return value.Type(value.TagNull), nil
		}
		if args[0].Kind != value.KindTypeTag {
			return value.Value{}, execErrorAt(e.Place(), "Type(x) requires x to be a type")
		}
		return args[0], nil
	}
	return value.Value{}, execErrorAt(e.Place(), "unknown type constructor")
}
