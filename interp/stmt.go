// ==============================================================================================
// FILE: interp/stmt.go
// ==============================================================================================
// PACKAGE: interp (continued)
// PURPOSE: Statement execution (spec §4.9/§4.11): control flow is carried entirely through the
//          error return — break/continue/return signals and user throws/execution errors all
//          travel the same channel and are peeled off at the construct that owns them (a loop
//          catches break/continue, a call catches return, a try catches throws/execution
//          errors).
// ==============================================================================================

package interp

import (
	"github.com/sawickiap/MinScriptLang-sub001/ast"
	"github.com/sawickiap/MinScriptLang-sub001/langerr"
	"github.com/sawickiap/MinScriptLang-sub001/value"
)

func (in *Interp) execStatement(stmt ast.Statement) error {
	switch s := stmt.(type) {
	case *ast.EmptyStatement:
		return nil
	case *ast.Block:
		for _, inner := range s.Statements {
			if err := in.execStatement(inner); err != nil {
				return err
			}
		}
		return nil
	case *ast.ExpressionStatement:
		_, err := in.evalExpr(s.Expr)
		return err
	case *ast.IfStatement:
		return in.execIf(s)
	case *ast.WhileStatement:
		return in.execWhile(s)
	case *ast.DoWhileStatement:
		return in.execDoWhile(s)
	case *ast.ForStatement:
		return in.execFor(s)
	case *ast.RangeForStatement:
		return in.execRangeFor(s)
	case *ast.BreakStatement:
		return breakSignal{}
	case *ast.ContinueStatement:
		return continueSignal{}
	case *ast.ReturnStatement:
		return in.execReturn(s)
	case *ast.SwitchStatement:
		return in.execSwitch(s)
	case *ast.ThrowStatement:
		return in.execThrow(s)
	case *ast.TryStatement:
		return in.execTry(s)
	}
	return execErrorAt(stmt.Place(), "cannot execute statement")
}

func (in *Interp) execIf(s *ast.IfStatement) error {
	cond, err := in.evalExpr(s.Condition)
	if err != nil {
		return err
	}
	if cond.Val.Truthy() {
		return in.execStatement(s.Consequence)
	}
	if s.Alternative != nil {
		return in.execStatement(s.Alternative)
	}
	return nil
}

func (in *Interp) execWhile(s *ast.WhileStatement) error {
	for {
		cond, err := in.evalExpr(s.Condition)
		if err != nil {
			return err
		}
		if !cond.Val.Truthy() {
			return nil
		}
		if err := in.execStatement(s.Body); err != nil {
			if _, ok := err.(breakSignal); ok {
				return nil
			}
			if _, ok := err.(continueSignal); ok {
				continue
			}
			return err
		}
	}
}

func (in *Interp) execDoWhile(s *ast.DoWhileStatement) error {
	for {
		if err := in.execStatement(s.Body); err != nil {
			if _, ok := err.(breakSignal); ok {
				return nil
			}
			if _, ok := err.(continueSignal); ok {
				// fall through to condition check below
			} else {
				return err
			}
		}
		cond, err := in.evalExpr(s.Condition)
		if err != nil {
			return err
		}
		if !cond.Val.Truthy() {
			return nil
		}
	}
}

func (in *Interp) execFor(s *ast.ForStatement) error {
	if s.Init != nil {
		if err := in.execStatement(s.Init); err != nil {
			return err
		}
	}
	for {
		if s.Cond != nil {
			cond, err := in.evalExpr(s.Cond)
			if err != nil {
				return err
			}
			if !cond.Val.Truthy() {
				return nil
			}
		}
		if err := in.execStatement(s.Body); err != nil {
			if _, ok := err.(breakSignal); ok {
				return nil
			}
			if _, ok := err.(continueSignal); !ok {
				return err
			}
		}
		if s.Iter != nil {
			if _, err := in.evalExpr(s.Iter); err != nil {
				return err
			}
		}
	}
}

// execRangeFor iterates a snapshot taken at loop entry (spec §8): for a
// string or array, mutating it during the loop never changes which elements
// are visited; for an object, the key list is fixed at entry, but a key
// removed during the loop is skipped when its turn comes and each value is
// read as it stands at that iteration. The loop-control identifiers are (re)assigned every iteration and
// reset to null once the loop finishes, by any path.
func (in *Interp) execRangeFor(s *ast.RangeForStatement) error {
	rangeOut, err := in.evalExpr(s.Range)
	if err != nil {
		return err
	}

	runErr := in.runRangeFor(s, rangeOut.Val)

	if lv, err := in.lvalueIdentifier(s.ValueName); err == nil {
		lv.Set(value.Null)
	}
	if s.KeyName != nil {
		if lv, err := in.lvalueIdentifier(s.KeyName); err == nil {
			lv.Set(value.Null)
		}
	}
	return runErr
}

func (in *Interp) runRangeFor(s *ast.RangeForStatement, rv value.Value) error {
	switch rv.Kind {
	case value.KindString:
		data := rv.Str.Data()
		for i := 0; i < len(data); i++ {
			if err := in.bindRangeVars(s, value.Number(float64(i)), value.String(string(data[i]))); err != nil {
				return err
			}
			if stop, err := in.execRangeBody(s.Body); stop || err != nil {
				return err
			}
		}
		return nil
	case value.KindArray:
		elems := rv.Arr.Snapshot()
		for i, elem := range elems {
			if err := in.bindRangeVars(s, value.Number(float64(i)), elem); err != nil {
				return err
			}
			if stop, err := in.execRangeBody(s.Body); stop || err != nil {
				return err
			}
		}
		return nil
	case value.KindObject:
		keys := rv.Obj.Keys()
		for _, key := range keys {
			elem, ok := rv.Obj.Get(key)
			if !ok {
				continue // removed by a previous iteration's body
			}
			if err := in.bindRangeVars(s, value.String(key), elem); err != nil {
				return err
			}
			if stop, err := in.execRangeBody(s.Body); stop || err != nil {
				return err
			}
		}
		return nil
	}
	return execErrorAt(s.Place(), "cannot range over a %s", rv.Kind)
}

func (in *Interp) bindRangeVars(s *ast.RangeForStatement, key, val value.Value) error {
	if s.KeyName != nil {
		lv, err := in.lvalueIdentifier(s.KeyName)
		if err != nil {
			return err
		}
		if err := lv.Set(key); err != nil {
			return err
		}
	}
	lv, err := in.lvalueIdentifier(s.ValueName)
	if err != nil {
		return err
	}
	return lv.Set(val)
}

// execRangeBody runs one iteration's body, reporting (true, nil) when the
// loop should stop (a break), or an error for anything else that isn't a
// plain continue.
func (in *Interp) execRangeBody(body ast.Statement) (bool, error) {
	if err := in.execStatement(body); err != nil {
		if _, ok := err.(breakSignal); ok {
			return true, nil
		}
		if _, ok := err.(continueSignal); ok {
			return false, nil
		}
		return false, err
	}
	return false, nil
}

func (in *Interp) execReturn(s *ast.ReturnStatement) error {
	if s.Value == nil {
		return returnSignal{Value: value.Null}
	}
	out, err := in.evalExpr(s.Value)
	if err != nil {
		return err
	}
	return returnSignal{Value: out.Val}
}

// execSwitch evaluates the subject once, finds the matching case (or the
// default clause if none matches), and runs every statement from there
// through the end of the switch, falling through clause boundaries exactly
// like C unless a `break` intervenes (spec §4.9).
func (in *Interp) execSwitch(s *ast.SwitchStatement) error {
	subject, err := in.evalExpr(s.Subject)
	if err != nil {
		return err
	}

	start := -1
	defaultIdx := -1
	for i, clause := range s.Clauses {
		if clause.IsDefault {
			defaultIdx = i
			continue
		}
		c, err := in.evalExpr(clause.Const)
		if err != nil {
			return err
		}
		if subject.Val.Equal(c.Val) {
			start = i
			break
		}
	}
	if start == -1 {
		start = defaultIdx
	}
	if start == -1 {
		return nil
	}

	for i := start; i < len(s.Clauses); i++ {
		for _, stmt := range s.Clauses[i].Statements {
			if err := in.execStatement(stmt); err != nil {
				if _, ok := err.(breakSignal); ok {
					return nil
				}
				return err
			}
		}
	}
	return nil
}

func (in *Interp) execThrow(s *ast.ThrowStatement) error {
	out, err := in.evalExpr(s.Value)
	if err != nil {
		return err
	}
	return &langerr.ThrownValue{Place: s.Place(), Value: out.Val, Inspect: out.Val.Inspect()}
}

// execTry runs the protected block, routes a catchable error (a throw or an
// execution error — never break/continue/return) through the catch clause
// if present, clears the catch-bound name once the clause has run, and
// always runs finally. If the try/catch path already raised an error, a
// new error surfacing from finally is discarded in its favor; finally only
// gets to set the outcome when the try/catch path succeeded.
func (in *Interp) execTry(s *ast.TryStatement) error {
	err := in.execStatement(s.Try)

	if err != nil && s.Catch != nil && isCatchable(err) {
		caught := caughtValue(err)
		if s.CatchName != nil {
			lv, lerr := in.lvalueIdentifier(s.CatchName)
			if lerr != nil {
				return lerr
			}
			if serr := lv.Set(caught); serr != nil {
				return serr
			}
		}
		err = in.execStatement(s.Catch)

		if s.CatchName != nil {
			if lv, lerr := in.lvalueIdentifier(s.CatchName); lerr == nil {
				lv.Set(value.Null)
			}
		}
	}

	if s.Finally != nil {
		if ferr := in.execStatement(s.Finally); ferr != nil && err == nil {
			err = ferr
		}
	}
	return err
}

// caughtValue converts an escaping throw/execution-error into the value a
// catch clause binds: a user throw yields the thrown value unchanged; an
// execution error is wrapped into a synthetic
// {Type, Message, Index, Row, Column} object so scripts can inspect it.
func caughtValue(err error) value.Value {
	switch e := err.(type) {
	case *langerr.ThrownValue:
		if v, ok := e.Value.(value.Value); ok {
			return v
		}
		return value.String(e.Inspect)
	case *langerr.ExecutionError:
		obj := value.NewObject()
		obj.Set("Type", value.String("ExecutionError"))
		obj.Set("Message", value.String(e.Message))
		obj.Set("Index", value.Number(float64(e.Place.Index)))
		obj.Set("Row", value.Number(float64(e.Place.Row)))
		obj.Set("Column", value.Number(float64(e.Place.Column)))
		return value.ObjectValue(obj)
	}
	return value.Null
}
