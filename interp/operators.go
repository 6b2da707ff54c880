// ==============================================================================================
// FILE: interp/operators.go
// ==============================================================================================
// PACKAGE: interp (continued)
// PURPOSE: Unary and binary operator semantics (spec §4.5). The language has no boolean
//          variant — `true`/`false` literals and every comparison and `!` result are Numbers
//          (0 or 1), while `&&`/`||` yield the last operand they evaluated — so `!x` requires a
//          numeric operand exactly like the other unary forms.
//          applyBinary is the shared core used both by `evalInfix` and by the compound
//          assignment operators in assign.go (`+=` etc. reduce to the matching binary op).
// ==============================================================================================

package interp

import (
	"github.com/sawickiap/MinScriptLang-sub001/ast"
	"github.com/sawickiap/MinScriptLang-sub001/token"
	"github.com/sawickiap/MinScriptLang-sub001/value"
)

func (in *Interp) evalPrefix(e *ast.PrefixExpression) (evalOut, error) {
	switch e.Operator {
	case "++", "--":
		lv, err := in.lvalueOf(e.Right)
		if err != nil {
			return evalOut{}, err
		}
		cur, err := lv.Get()
		if err != nil {
			return evalOut{}, err
		}
		if cur.Kind != value.KindNumber {
			return evalOut{}, execErrorAt(e.Place(), "%s requires a number", e.Operator)
		}
		delta := 1.0
		if e.Operator == "--" {
			delta = -1.0
		}
		updated := value.Number(cur.Num + delta)
		if err := lv.Set(updated); err != nil {
			return evalOut{}, err
		}
		return plain(updated), nil
	}

	right, err := in.evalExpr(e.Right)
	if err != nil {
		return evalOut{}, err
	}
	if right.Val.Kind != value.KindNumber {
		return evalOut{}, execErrorAt(e.Place(), "unary %s requires a number", e.Operator)
	}
	switch e.Operator {
	case "+":
		return plain(value.Number(right.Val.Num)), nil
	case "-":
		return plain(value.Number(-right.Val.Num)), nil
	case "!":
		if right.Val.Num != 0 {
			return plain(value.Number(0)), nil
		}
		return plain(value.Number(1)), nil
	case "~":
		return plain(value.Number(value.FromInt64(^value.ToInt64(right.Val.Num)))), nil
	}
	return evalOut{}, execErrorAt(e.Place(), "unknown unary operator %q", e.Operator)
}

func (in *Interp) evalPostfix(e *ast.PostfixExpression) (evalOut, error) {
	lv, err := in.lvalueOf(e.Left)
	if err != nil {
		return evalOut{}, err
	}
	cur, err := lv.Get()
	if err != nil {
		return evalOut{}, err
	}
	if cur.Kind != value.KindNumber {
		return evalOut{}, execErrorAt(e.Place(), "%s requires a number", e.Operator)
	}
	delta := 1.0
	if e.Operator == "--" {
		delta = -1.0
	}
	if err := lv.Set(value.Number(cur.Num + delta)); err != nil {
		return evalOut{}, err
	}
	return plain(cur), nil
}

func (in *Interp) evalInfix(e *ast.InfixExpression) (evalOut, error) {
	switch e.Operator {
	case "&&":
		left, err := in.evalExpr(e.Left)
		if err != nil {
			return evalOut{}, err
		}
		if !left.Val.Truthy() {
			return plain(left.Val), nil
		}
		right, err := in.evalExpr(e.Right)
		if err != nil {
			return evalOut{}, err
		}
		return plain(right.Val), nil
	case "||":
		left, err := in.evalExpr(e.Left)
		if err != nil {
			return evalOut{}, err
		}
		if left.Val.Truthy() {
			return plain(left.Val), nil
		}
		right, err := in.evalExpr(e.Right)
		if err != nil {
			return evalOut{}, err
		}
		return plain(right.Val), nil
	}

	left, err := in.evalExpr(e.Left)
	if err != nil {
		return evalOut{}, err
	}
	right, err := in.evalExpr(e.Right)
	if err != nil {
		return evalOut{}, err
	}
	v, err := in.applyBinary(e.Place(), e.Operator, left.Val, right.Val)
	if err != nil {
		return evalOut{}, err
	}
	return plain(v), nil
}

// applyBinary evaluates one non-short-circuit binary operator over already-
// evaluated operands. Shared by evalInfix and by compound assignment.
func (in *Interp) applyBinary(place token.Place, op string, l, r value.Value) (value.Value, error) {
	switch op {
	case "==":
		return value.Bool(l.Equal(r)), nil
	case "!=":
		return value.Bool(!l.Equal(r)), nil
	case "<", "<=", ">", ">=":
		return evalRelational(place, op, l, r)
	case "+":
		return evalPlus(place, l, r)
	case "-", "*", "/", "%":
		return evalArithmetic(place, op, l, r)
	case "<<", ">>", "&", "^", "|":
		return evalBitwise(place, op, l, r)
	}
	return value.Value{}, execErrorAt(place, "unknown operator %q", op)
}

func evalPlus(place token.Place, l, r value.Value) (value.Value, error) {
	if l.Kind == value.KindString && r.Kind == value.KindString {
		return value.String(l.Str.Data() + r.Str.Data()), nil
	}
	if l.Kind == value.KindNumber && r.Kind == value.KindNumber {
		return value.Number(l.Num + r.Num), nil
	}
	return value.Value{}, execErrorAt(place, "'+' requires two numbers or two strings")
}

func evalArithmetic(place token.Place, op string, l, r value.Value) (value.Value, error) {
	if l.Kind != value.KindNumber || r.Kind != value.KindNumber {
		return value.Value{}, execErrorAt(place, "'%s' requires two numbers", op)
	}
	switch op {
	case "-":
		return value.Number(l.Num - r.Num), nil
	case "*":
		return value.Number(l.Num * r.Num), nil
	case "/":
		return value.Number(l.Num / r.Num), nil
	case "%":
		return value.Number(modFloat(l.Num, r.Num)), nil
	}
	return value.Value{}, execErrorAt(place, "unknown arithmetic operator %q", op)
}

func modFloat(a, b float64) float64 {
	if b == 0 {
		return a
	}
	return a - b*float64(int64(a/b))
}

func evalBitwise(place token.Place, op string, l, r value.Value) (value.Value, error) {
	if l.Kind != value.KindNumber || r.Kind != value.KindNumber {
		return value.Value{}, execErrorAt(place, "'%s' requires two numbers", op)
	}
	li, ri := value.ToInt64(l.Num), value.ToInt64(r.Num)
	var result int64
	switch op {
	case "<<":
		result = li << uint(ri)
	case ">>":
		result = li >> uint(ri)
	case "&":
		result = li & ri
	case "^":
		result = li ^ ri
	case "|":
		result = li | ri
	}
	return value.Number(value.FromInt64(result)), nil
}

func evalRelational(place token.Place, op string, l, r value.Value) (value.Value, error) {
	if l.Kind == value.KindNumber && r.Kind == value.KindNumber {
		switch op {
		case "<":
			return value.Bool(l.Num < r.Num), nil
		case "<=":
			return value.Bool(l.Num <= r.Num), nil
		case ">":
			return value.Bool(l.Num > r.Num), nil
		case ">=":
			return value.Bool(l.Num >= r.Num), nil
		}
	}
	if l.Kind == value.KindString && r.Kind == value.KindString {
		ls, rs := l.Str.Data(), r.Str.Data()
		switch op {
		case "<":
			return value.Bool(ls < rs), nil
		case "<=":
			return value.Bool(ls <= rs), nil
		case ">":
			return value.Bool(ls > rs), nil
		case ">=":
			return value.Bool(ls >= rs), nil
		}
	}
	return value.Value{}, execErrorAt(place, "'%s' requires two numbers or two strings of the same type", op)
}
