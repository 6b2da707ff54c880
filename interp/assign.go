// ==============================================================================================
// FILE: interp/assign.go
// ==============================================================================================
// PACKAGE: interp (continued)
// PURPOSE: L-value resolution and assignment (spec §4.4/§4.5): identifiers, `.member`, and
//          `[index]` (on strings, objects, and arrays) all resolve to one of the three
//          value.LValue kinds; `=` stores directly, compound operators read-combine-store.
// ==============================================================================================

package interp

import (
	"github.com/sawickiap/MinScriptLang-sub001/ast"
	"github.com/sawickiap/MinScriptLang-sub001/value"
)

// lvalueOf resolves expr to an assignable/incrementable reference, used by
// evalAssign and by the ++/-- operators in operators.go.
func (in *Interp) lvalueOf(expr ast.Expression) (value.LValue, error) {
	switch e := expr.(type) {
	case *ast.Identifier:
		return in.lvalueIdentifier(e)
	case *ast.MemberExpression:
		obj, err := in.evalExpr(e.Object)
		if err != nil {
			return nil, err
		}
		if obj.Val.Kind != value.KindObject {
			return nil, execErrorAt(e.Place(), "member assignment target must be an object")
		}
		return value.ObjectMember{Obj: obj.Val.Obj, Key: e.Property, Place: e.Place()}, nil
	case *ast.IndexExpression:
		return in.lvalueIndex(e)
	case *ast.GroupedExpression:
		return in.lvalueOf(e.Inner)
	}
	return nil, execErrorAt(expr.Place(), "invalid assignment target")
}

func (in *Interp) lvalueIndex(e *ast.IndexExpression) (value.LValue, error) {
	left, err := in.evalExpr(e.Left)
	if err != nil {
		return nil, err
	}
	idx, err := in.evalExpr(e.Index)
	if err != nil {
		return nil, err
	}

	switch left.Val.Kind {
	case value.KindString:
		if idx.Val.Kind != value.KindNumber {
			return nil, execErrorAt(e.Place(), "string index must be a number")
		}
		return value.StringCharacter{Box: left.Val.Str, Index: int(idx.Val.Num), Place: e.Place()}, nil
	case value.KindArray:
		if idx.Val.Kind != value.KindNumber {
			return nil, execErrorAt(e.Place(), "array index must be a number")
		}
		return value.ArrayElement{Arr: left.Val.Arr, Index: int(idx.Val.Num), Place: e.Place()}, nil
	case value.KindObject:
		if idx.Val.Kind != value.KindString {
			return nil, execErrorAt(e.Place(), "object index must be a string")
		}
		return value.ObjectMember{Obj: left.Val.Obj, Key: idx.Val.Str.Data(), Place: e.Place()}, nil
	}
	return nil, execErrorAt(e.Place(), "cannot index a %s", left.Val.Kind)
}

// evalAssign resolves the left side of an AssignExpression, computes the
// stored value (directly for `=`, via the matching binary operator for any
// compound form), and stores it.
func (in *Interp) evalAssign(e *ast.AssignExpression) (value.Value, error) {
	lv, err := in.lvalueOf(e.Left)
	if err != nil {
		return value.Value{}, err
	}

	rhs, err := in.evalExpr(e.Right)
	if err != nil {
		return value.Value{}, err
	}

	if e.Operator == "=" {
		if err := lv.Set(rhs.Val); err != nil {
			return value.Value{}, err
		}
		return rhs.Val, nil
	}

	cur, err := lv.Get()
	if err != nil {
		return value.Value{}, err
	}
	op := compoundBinaryOp(e.Operator)
	combined, err := in.applyBinary(e.Place(), op, cur, rhs.Val)
	if err != nil {
		return value.Value{}, err
	}
	if err := lv.Set(combined); err != nil {
		return value.Value{}, err
	}
	return combined, nil
}

// compoundBinaryOp strips the trailing `=` from a compound assignment
// operator to recover the binary operator it's built from.
func compoundBinaryOp(op string) string {
	return op[:len(op)-1]
}
