// ==============================================================================================
// FILE: interp/identifier.go
// ==============================================================================================
// PACKAGE: interp (continued)
// PURPOSE: Identifier resolution (spec §4.6): unqualified reads/writes search the local scope,
//          then the current `this` object's members, then the global scope, then built-in type
//          and function names. `local.` pins the search to just the local scope. `global.` skips
//          the local-scope and this-member steps but still falls through to built-in type/function
//          names on a global-scope miss, so `global.print` reaches the `print` built-in exactly
//          like the unqualified form does (spec §8 end-to-end scenario 3).
// ==============================================================================================

package interp

import (
	"github.com/sawickiap/MinScriptLang-sub001/ast"
	"github.com/sawickiap/MinScriptLang-sub001/value"
)

var builtinTypeNames = map[string]value.TypeTag{
	"Null":     value.TagNull,
	"Number":   value.TagNumber,
	"String":   value.TagString,
	"Object":   value.TagObject,
	"Array":    value.TagArray,
	"Function": value.TagFunction,
	"Type":     value.TagType,
}

var builtinFuncNames = map[string]value.SysTag{
	"typeOf": value.SysTypeOf,
	"print":  value.SysPrint,
}

// readIdentifier resolves ident for a read, per the order in spec §4.6,
// and reports a candidate `this` binding when resolution went through
// rule 2 (the current this object's own member).
func (in *Interp) readIdentifier(ident *ast.Identifier) (value.Value, value.ThisBinding, error) {
	switch ident.Qualifier {
	case "local":
		if !in.Scopes.InCall() {
			return value.Value{}, value.ThisBinding{}, execErrorAt(ident.Place(), "'local' used outside any call")
		}
		if v, ok := in.Scopes.Local().Get(ident.Value); ok {
			return v, value.ThisBinding{}, nil
		}
		return value.Null, value.ThisBinding{}, nil
	case "global":
		if v, ok := in.Scopes.Global.Get(ident.Value); ok {
			return v, value.ThisBinding{}, nil
		}
		if tag, ok := builtinTypeNames[ident.Value]; ok {
			return value.Type(tag), value.ThisBinding{}, nil
		}
		if sys, ok := builtinFuncNames[ident.Value]; ok {
			return value.SystemFunction(sys), value.ThisBinding{}, nil
		}
		return value.Null, value.ThisBinding{}, nil
	}

	if in.Scopes.InCall() {
		if v, ok := in.Scopes.Local().Get(ident.Value); ok {
			return v, value.ThisBinding{}, nil
		}
	}
	if this := in.Scopes.This(); this.Present && this.Value.Kind == value.KindObject {
		if v, ok := this.Value.Obj.Get(ident.Value); ok {
			return v, value.ThisBinding{Present: true, Value: this.Value}, nil
		}
	}
	if v, ok := in.Scopes.Global.Get(ident.Value); ok {
		return v, value.ThisBinding{}, nil
	}
	if tag, ok := builtinTypeNames[ident.Value]; ok {
		return value.Type(tag), value.ThisBinding{}, nil
	}
	if sys, ok := builtinFuncNames[ident.Value]; ok {
		return value.SystemFunction(sys), value.ThisBinding{}, nil
	}
	return value.Null, value.ThisBinding{}, nil
}

// lvalueIdentifier resolves ident for a write/increment target, following
// the same order as readIdentifier but creating a new-variable l-value on
// total miss (spec §4.6).
func (in *Interp) lvalueIdentifier(ident *ast.Identifier) (value.LValue, error) {
	switch ident.Qualifier {
	case "local":
		if !in.Scopes.InCall() {
			return nil, execErrorAt(ident.Place(), "'local' used outside any call")
		}
		return value.ObjectMember{Obj: in.Scopes.Local(), Key: ident.Value, Place: ident.Place()}, nil
	case "global":
		return value.ObjectMember{Obj: in.Scopes.Global, Key: ident.Value, Place: ident.Place()}, nil
	}

	if in.Scopes.InCall() {
		if _, ok := in.Scopes.Local().Get(ident.Value); ok {
			return value.ObjectMember{Obj: in.Scopes.Local(), Key: ident.Value, Place: ident.Place()}, nil
		}
	}
	if this := in.Scopes.This(); this.Present && this.Value.Kind == value.KindObject {
		if _, ok := this.Value.Obj.Get(ident.Value); ok {
			return value.ObjectMember{Obj: this.Value.Obj, Key: ident.Value, Place: ident.Place()}, nil
		}
	}
	if _, ok := in.Scopes.Global.Get(ident.Value); ok {
		return value.ObjectMember{Obj: in.Scopes.Global, Key: ident.Value, Place: ident.Place()}, nil
	}

	if in.Scopes.InCall() {
		return value.ObjectMember{Obj: in.Scopes.Local(), Key: ident.Value, Place: ident.Place()}, nil
	}
	return value.ObjectMember{Obj: in.Scopes.Global, Key: ident.Value, Place: ident.Place()}, nil
}
