// ==============================================================================================
// FILE: interp/call.go
// ==============================================================================================
// PACKAGE: interp (continued)
// PURPOSE: Call dispatch (spec §4.5/§4.8): a Function value pushes a scope/this activation and
//          runs its body; a SystemFunction dispatches to a built-in; a TypeTag value constructs
//          or converts; an Object value with a `""` member desugars to calling that member with
//          the object bound as `this` (the class-call sugar from spec §4.10), and an Object
//          value with no `""` member, called with no arguments, yields a shallow copy of itself.
// ==============================================================================================

package interp

import (
	"github.com/sawickiap/MinScriptLang-sub001/ast"
	"github.com/sawickiap/MinScriptLang-sub001/value"
)

func (in *Interp) evalCall(e *ast.CallExpression) (value.Value, error) {
	callee, err := in.evalExpr(e.Callee)
	if err != nil {
		return value.Value{}, err
	}

	args := make([]value.Value, len(e.Arguments))
	for i, argExpr := range e.Arguments {
		out, err := in.evalExpr(argExpr)
		if err != nil {
			return value.Value{}, err
		}
		args[i] = out.Val
	}

	switch callee.Val.Kind {
	case value.KindFunction:
		return in.callFunction(e, callee.Val.Fn, callee.This, args)
	case value.KindSystemFunction:
		return in.callSystemFunction(e, callee.Val, args)
	case value.KindTypeTag:
		return constructType(e, callee.Val.Tag, args)
	case value.KindObject:
		ctor, ok := callee.Val.Obj.Get("")
		if !ok {
			if len(args) != 0 {
				return value.Value{}, execErrorAt(e.Place(), "object without a '' member takes no arguments, got %d", len(args))
			}
			return value.ObjectValue(callee.Val.Obj.ShallowCopy()), nil
		}
		if ctor.Kind != value.KindFunction {
			return value.Value{}, execErrorAt(e.Place(), "object is not callable")
		}
		return in.callFunction(e, ctor.Fn, value.ThisBinding{Present: true, Value: callee.Val}, args)
	}
	return value.Value{}, execErrorAt(e.Place(), "%s is not callable", callee.Val.Kind)
}

func (in *Interp) callFunction(e *ast.CallExpression, fn *ast.FunctionLiteral, this value.ThisBinding, args []value.Value) (value.Value, error) {
	if len(args) != len(fn.Parameters) {
		return value.Value{}, execErrorAt(e.Place(), "function expects %d argument(s), got %d", len(fn.Parameters), len(args))
	}
	if err := in.Scopes.Push(e.Place(), this); err != nil {
		return value.Value{}, err
	}
	defer in.Scopes.Pop()

	local := in.Scopes.Local()
	for i, param := range fn.Parameters {
		local.Set(param.Value, args[i])
	}

	for _, stmt := range fn.Body.Statements {
		if err := in.execStatement(stmt); err != nil {
			if rs, ok := err.(returnSignal); ok {
				return rs.Value, nil
			}
			return value.Value{}, escapeSignalToError(stmt, err)
		}
	}
	return value.Null, nil
}
