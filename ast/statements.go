// ==============================================================================================
// FILE: ast/statements.go
// ==============================================================================================
package ast

import (
	"strings"

	"github.com/sawickiap/MinScriptLang-sub001/token"
)

// EmptyStatement is a lone `;`.
type EmptyStatement struct {
	Tok token.Token
}

func (e *EmptyStatement) Place() token.Place { return e.Tok.Place }
func (e *EmptyStatement) String() string     { return ";" }
func (e *EmptyStatement) statementNode()     {}

// ExpressionStatement is `expr;` — including the `name = value;` and
// `function name(...) {...}` / `class Name {...}` desugarings, which both
// produce an AssignExpression wrapped here.
type ExpressionStatement struct {
	Tok  token.Token
	Expr Expression
}

func (e *ExpressionStatement) Place() token.Place { return e.Tok.Place }
func (e *ExpressionStatement) String() string     { return e.Expr.String() + ";" }
func (e *ExpressionStatement) statementNode()     {}

// IfStatement is `if (cond) then [else alt]`.
type IfStatement struct {
	Tok         token.Token
	Condition   Expression
	Consequence Statement
	Alternative Statement
}

func (i *IfStatement) Place() token.Place { return i.Tok.Place }
func (i *IfStatement) String() string {
	s := "if (" + i.Condition.String() + ") " + i.Consequence.String()
	if i.Alternative != nil {
		s += " else " + i.Alternative.String()
	}
	return s
}
func (i *IfStatement) statementNode() {}

// WhileStatement is `while (cond) body`.
type WhileStatement struct {
	Tok       token.Token
	Condition Expression
	Body      Statement
}

func (w *WhileStatement) Place() token.Place { return w.Tok.Place }
func (w *WhileStatement) String() string     { return "while (" + w.Condition.String() + ") " + w.Body.String() }
func (w *WhileStatement) statementNode()     {}

// DoWhileStatement is `do body while (cond);`.
type DoWhileStatement struct {
	Tok       token.Token
	Body      Statement
	Condition Expression
}

func (d *DoWhileStatement) Place() token.Place { return d.Tok.Place }
func (d *DoWhileStatement) String() string {
	return "do " + d.Body.String() + " while (" + d.Condition.String() + ");"
}
func (d *DoWhileStatement) statementNode() {}

// ForStatement is the C-style `for(init?; cond?; iter?) body`. Init is
// either an ExpressionStatement or nil; Cond/Iter are nil when omitted.
type ForStatement struct {
	Tok  token.Token
	Init Statement
	Cond Expression
	Iter Expression
	Body Statement
}

func (f *ForStatement) Place() token.Place { return f.Tok.Place }
func (f *ForStatement) String() string {
	init, cond, iter := "", "", ""
	if f.Init != nil {
		init = f.Init.String()
	}
	if f.Cond != nil {
		cond = f.Cond.String()
	}
	if f.Iter != nil {
		iter = f.Iter.String()
	}
	return "for (" + init + " " + cond + "; " + iter + ") " + f.Body.String()
}
func (f *ForStatement) statementNode() {}

// RangeForStatement is `for(val : range)` or `for(key, val : range)` over a
// string, object, or array.
type RangeForStatement struct {
	Tok       token.Token
	KeyName   *Identifier // nil in the one-variable form
	ValueName *Identifier
	Range     Expression
	Body      Statement
}

func (r *RangeForStatement) Place() token.Place { return r.Tok.Place }
func (r *RangeForStatement) String() string {
	vars := r.ValueName.String()
	if r.KeyName != nil {
		vars = r.KeyName.String() + ", " + vars
	}
	return "for (" + vars + " : " + r.Range.String() + ") " + r.Body.String()
}
func (r *RangeForStatement) statementNode() {}

// BreakStatement is `break;`.
type BreakStatement struct{ Tok token.Token }

func (b *BreakStatement) Place() token.Place { return b.Tok.Place }
func (b *BreakStatement) String() string     { return "break;" }
func (b *BreakStatement) statementNode()     {}

// ContinueStatement is `continue;`.
type ContinueStatement struct{ Tok token.Token }

func (c *ContinueStatement) Place() token.Place { return c.Tok.Place }
func (c *ContinueStatement) String() string     { return "continue;" }
func (c *ContinueStatement) statementNode()     {}

// ReturnStatement is `return [expr];`.
type ReturnStatement struct {
	Tok   token.Token
	Value Expression // nil when bare `return;`
}

func (r *ReturnStatement) Place() token.Place { return r.Tok.Place }
func (r *ReturnStatement) String() string {
	if r.Value == nil {
		return "return;"
	}
	return "return " + r.Value.String() + ";"
}
func (r *ReturnStatement) statementNode() {}

// SwitchClause is one `case Const:` or `default:` arm plus the statements
// until the next arm; a switch falls through an arm with no statements and
// no break, exactly like C.
type SwitchClause struct {
	IsDefault  bool
	Const      Expression // nil when IsDefault
	Statements []Statement
}

// SwitchStatement is `switch (subject) { case c: ... default: ... }`.
type SwitchStatement struct {
	Tok     token.Token
	Subject Expression
	Clauses []SwitchClause
}

func (s *SwitchStatement) Place() token.Place { return s.Tok.Place }
func (s *SwitchStatement) String() string {
	var parts []string
	for _, c := range s.Clauses {
		label := "default:"
		if !c.IsDefault {
			label = "case " + c.Const.String() + ":"
		}
		stmts := make([]string, len(c.Statements))
		for i, st := range c.Statements {
			stmts[i] = st.String()
		}
		parts = append(parts, label+" "+strings.Join(stmts, " "))
	}
	return "switch (" + s.Subject.String() + ") { " + strings.Join(parts, " ") + " }"
}
func (s *SwitchStatement) statementNode() {}

// ThrowStatement is `throw expr;`.
type ThrowStatement struct {
	Tok   token.Token
	Value Expression
}

func (t *ThrowStatement) Place() token.Place { return t.Tok.Place }
func (t *ThrowStatement) String() string     { return "throw " + t.Value.String() + ";" }
func (t *ThrowStatement) statementNode()     {}

// TryStatement is `try S [catch(id) C] [finally F]`. At least one of Catch
// and Finally is present, enforced by the parser.
type TryStatement struct {
	Tok         token.Token
	Try         *Block
	CatchName   *Identifier // nil when there is no catch clause
	Catch       *Block
	Finally     *Block
}

func (t *TryStatement) Place() token.Place { return t.Tok.Place }
func (t *TryStatement) String() string {
	s := "try " + t.Try.String()
	if t.Catch != nil {
		s += " catch(" + t.CatchName.String() + ") " + t.Catch.String()
	}
	if t.Finally != nil {
		s += " finally " + t.Finally.String()
	}
	return s
}
func (t *TryStatement) statementNode() {}
