// ==============================================================================================
// FILE: interp/expr.go
// ==============================================================================================
// PACKAGE: interp (continued)
// PURPOSE: Expression evaluation. evalExpr returns the value AND a this-candidate (spec §4.7):
//          only member access, bracket-indexing of an object/array, grouping, the right-hand
//          side of `,`/`?:`, and an identifier resolved through the current `this` object's
//          members propagate a candidate to an enclosing call; every other expression form
//          resets it to absent.
// ==============================================================================================

package interp

import (
	"github.com/sawickiap/MinScriptLang-sub001/ast"
	"github.com/sawickiap/MinScriptLang-sub001/value"
)

// evalOut is one expression's result: its value plus whatever this
// candidate it propagates outward.
type evalOut struct {
	Val  value.Value
	This value.ThisBinding
}

func plain(v value.Value) evalOut { return evalOut{Val: v} }

func (in *Interp) evalExpr(expr ast.Expression) (evalOut, error) {
	switch e := expr.(type) {
	case *ast.NumberLiteral:
		return plain(value.Number(e.Value)), nil
	case *ast.StringLiteral:
		return plain(value.String(e.Value)), nil
	case *ast.BoolLiteral:
		return plain(value.Bool(e.Value)), nil
	case *ast.NullLiteral:
		return plain(value.Null), nil
	case *ast.Identifier:
		v, this, err := in.readIdentifier(e)
		if err != nil {
			return evalOut{}, err
		}
		return evalOut{Val: v, This: this}, nil
	case *ast.ThisExpression:
		this := in.Scopes.This()
		if !this.Present {
			return evalOut{}, execErrorAt(e.Place(), "'this' used where none is bound")
		}
		return plain(this.Value), nil
	case *ast.GroupedExpression:
		inner, err := in.evalExpr(e.Inner)
		if err != nil {
			return evalOut{}, err
		}
		return inner, nil
	case *ast.ArrayLiteral:
		return in.evalArrayLiteral(e)
	case *ast.ObjectLiteral:
		return in.evalObjectLiteral(e)
	case *ast.FunctionLiteral:
		return plain(value.Function(e)), nil
	case *ast.PrefixExpression:
		return in.evalPrefix(e)
	case *ast.PostfixExpression:
		return in.evalPostfix(e)
	case *ast.InfixExpression:
		return in.evalInfix(e)
	case *ast.TernaryExpression:
		return in.evalTernary(e)
	case *ast.CommaExpression:
		if _, err := in.evalExpr(e.Left); err != nil {
			return evalOut{}, err
		}
		right, err := in.evalExpr(e.Right)
		if err != nil {
			return evalOut{}, err
		}
		return right, nil
	case *ast.AssignExpression:
		v, err := in.evalAssign(e)
		if err != nil {
			return evalOut{}, err
		}
		return plain(v), nil
	case *ast.CallExpression:
		v, err := in.evalCall(e)
		if err != nil {
			return evalOut{}, err
		}
		return plain(v), nil
	case *ast.MemberExpression:
		return in.evalMemberRead(e)
	case *ast.IndexExpression:
		return in.evalIndexRead(e)
	}
	return evalOut{}, execErrorAt(expr.Place(), "cannot evaluate expression")
}

func (in *Interp) evalArrayLiteral(e *ast.ArrayLiteral) (evalOut, error) {
	arr := value.NewArray()
	for _, elemExpr := range e.Elements {
		out, err := in.evalExpr(elemExpr)
		if err != nil {
			return evalOut{}, err
		}
		arr.Append(out.Val)
	}
	return plain(value.ArrayValue(arr)), nil
}

func (in *Interp) evalObjectLiteral(e *ast.ObjectLiteral) (evalOut, error) {
	var obj *value.Object
	if e.Base != nil {
		baseOut, err := in.evalExpr(e.Base)
		if err != nil {
			return evalOut{}, err
		}
		if baseOut.Val.Kind != value.KindObject {
			return evalOut{}, execErrorAt(e.Place(), "base of class literal must be an object")
		}
		obj = baseOut.Val.Obj.ShallowCopy()
	} else {
		obj = value.NewObject()
	}
	for _, entry := range e.Entries {
		out, err := in.evalExpr(entry.Value)
		if err != nil {
			return evalOut{}, err
		}
		obj.Set(entry.Key, out.Val)
	}
	return plain(value.ObjectValue(obj)), nil
}

func (in *Interp) evalTernary(e *ast.TernaryExpression) (evalOut, error) {
	cond, err := in.evalExpr(e.Condition)
	if err != nil {
		return evalOut{}, err
	}
	if cond.Val.Truthy() {
		return in.evalExpr(e.Consequence)
	}
	return in.evalExpr(e.Alternative)
}
