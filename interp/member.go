// ==============================================================================================
// FILE: interp/member.go
// ==============================================================================================
// PACKAGE: interp (continued)
// PURPOSE: Rvalue member/index reads (spec §4.5): `.member`/`[index]` on a string, object, or
//          array, including the synthetic `count` member and the array `add`/`insert`/`remove`
//          bound methods. These are deliberately more permissive than the LValue reads in
//          value/lvalue.go — a missing object key reads as null here, but fails as an l-value.
// ==============================================================================================

package interp

import (
	"github.com/sawickiap/MinScriptLang-sub001/ast"
	"github.com/sawickiap/MinScriptLang-sub001/value"
)

func (in *Interp) evalMemberRead(e *ast.MemberExpression) (evalOut, error) {
	left, err := in.evalExpr(e.Object)
	if err != nil {
		return evalOut{}, err
	}
	v, err := in.readMember(e, left.Val, e.Property)
	if err != nil {
		return evalOut{}, err
	}
	if left.Val.Kind == value.KindObject || left.Val.Kind == value.KindArray {
		return evalOut{Val: v, This: value.ThisBinding{Present: true, Value: left.Val}}, nil
	}
	return plain(v), nil
}

func (in *Interp) readMember(e *ast.MemberExpression, left value.Value, name string) (value.Value, error) {
	switch left.Kind {
	case value.KindString:
		if name == "count" {
			return value.Number(float64(left.Str.Len())), nil
		}
		return value.Value{}, execErrorAt(e.Place(), "string has no member %q", name)
	case value.KindObject:
		if name == "count" {
			return value.Number(float64(left.Obj.Count())), nil
		}
		if v, ok := left.Obj.Get(name); ok {
			return v, nil
		}
		return value.Null, nil
	case value.KindArray:
		switch name {
		case "count":
			return value.Number(float64(left.Arr.Len())), nil
		case "add":
			return value.BoundArrayMethod(value.SysArrayAdd, left.Arr), nil
		case "insert":
			return value.BoundArrayMethod(value.SysArrayInsert, left.Arr), nil
		case "remove":
			return value.BoundArrayMethod(value.SysArrayRemove, left.Arr), nil
		}
		return value.Null, nil
	}
	return value.Value{}, execErrorAt(e.Place(), "cannot access member %q of a %s", name, left.Kind)
}

func (in *Interp) evalIndexRead(e *ast.IndexExpression) (evalOut, error) {
	left, err := in.evalExpr(e.Left)
	if err != nil {
		return evalOut{}, err
	}
	idx, err := in.evalExpr(e.Index)
	if err != nil {
		return evalOut{}, err
	}

	switch left.Val.Kind {
	case value.KindString:
		if idx.Val.Kind != value.KindNumber {
			return evalOut{}, execErrorAt(e.Place(), "string index must be a number")
		}
		v, err := left.Val.Str.CharAt(e.Place(), int(idx.Val.Num))
		if err != nil {
			return evalOut{}, err
		}
		return plain(v), nil
	case value.KindArray:
		if idx.Val.Kind != value.KindNumber {
			return evalOut{}, execErrorAt(e.Place(), "array index must be a number")
		}
		v, err := left.Val.Arr.Get(e.Place(), int(idx.Val.Num))
		if err != nil {
			return evalOut{}, err
		}
		return evalOut{Val: v, This: value.ThisBinding{Present: true, Value: left.Val}}, nil
	case value.KindObject:
		if idx.Val.Kind != value.KindString {
			return evalOut{}, execErrorAt(e.Place(), "object index must be a string")
		}
		if v, ok := left.Val.Obj.Get(idx.Val.Str.Data()); ok {
			return evalOut{Val: v, This: value.ThisBinding{Present: true, Value: left.Val}}, nil
		}
		return evalOut{Val: value.Null, This: value.ThisBinding{Present: true, Value: left.Val}}, nil
	}
	return evalOut{}, execErrorAt(e.Place(), "cannot index a %s", left.Val.Kind)
}
