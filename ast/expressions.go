// ==============================================================================================
// FILE: ast/expressions.go
// ==============================================================================================
package ast

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/sawickiap/MinScriptLang-sub001/token"
)

// Identifier is a bare name, optionally qualified with `local.` or `global.`
// (spec §4.6). Qualifier is "", "local", or "global".
type Identifier struct {
	Tok       token.Token
	Value     string
	Qualifier string
}

func (i *Identifier) Place() token.Place { return i.Tok.Place }
func (i *Identifier) String() string {
	if i.Qualifier != "" {
		return i.Qualifier + "." + i.Value
	}
	return i.Value
}
func (i *Identifier) expressionNode() {}

// ThisExpression is the bare `this` keyword.
type ThisExpression struct {
	Tok token.Token
}

func (t *ThisExpression) Place() token.Place { return t.Tok.Place }
func (t *ThisExpression) String() string     { return "this" }
func (t *ThisExpression) expressionNode()    {}

// NumberLiteral is a decimal or hexadecimal numeric constant, always stored
// as a float64 (the language has one numeric type).
type NumberLiteral struct {
	Tok   token.Token
	Value float64
}

func (n *NumberLiteral) Place() token.Place { return n.Tok.Place }
func (n *NumberLiteral) String() string     { return strconv.FormatFloat(n.Value, 'g', -1, 64) }
func (n *NumberLiteral) expressionNode()    {}

// StringLiteral is a string constant (already escape-decoded and, when
// adjacent to another string token, already concatenated by the lexer).
type StringLiteral struct {
	Tok   token.Token
	Value string
}

func (s *StringLiteral) Place() token.Place { return s.Tok.Place }
func (s *StringLiteral) String() string     { return strconv.Quote(s.Value) }
func (s *StringLiteral) expressionNode()    {}

// BoolLiteral is `true` or `false`.
type BoolLiteral struct {
	Tok   token.Token
	Value bool
}

func (b *BoolLiteral) Place() token.Place { return b.Tok.Place }
func (b *BoolLiteral) String() string     { return strconv.FormatBool(b.Value) }
func (b *BoolLiteral) expressionNode()    {}

// NullLiteral is the `null` keyword.
type NullLiteral struct {
	Tok token.Token
}

func (n *NullLiteral) Place() token.Place { return n.Tok.Place }
func (n *NullLiteral) String() string     { return "null" }
func (n *NullLiteral) expressionNode()    {}

// ArrayLiteral is `[e1, e2, ...]`.
type ArrayLiteral struct {
	Tok      token.Token
	Elements []Expression
}

func (a *ArrayLiteral) Place() token.Place { return a.Tok.Place }
func (a *ArrayLiteral) String() string {
	parts := make([]string, len(a.Elements))
	for i, e := range a.Elements {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
func (a *ArrayLiteral) expressionNode() {}

// ObjectEntry is one `key: value` pair inside an ObjectLiteral. A value of
// NullLiteral in a class-derived literal removes an inherited key at
// evaluation time (spec §4.10).
type ObjectEntry struct {
	Key   string
	KeyAt token.Place
	Value Expression
}

// ObjectLiteral is `{ k: v, ... }`. When parsed from `class Name : Base {...}`
// sugar, Base carries the base expression to shallow-copy from first; other
// object literals leave Base nil.
type ObjectLiteral struct {
	Tok     token.Token
	Entries []ObjectEntry
	Base    Expression
}

func (o *ObjectLiteral) Place() token.Place { return o.Tok.Place }
func (o *ObjectLiteral) String() string {
	parts := make([]string, len(o.Entries))
	for i, e := range o.Entries {
		parts[i] = strconv.Quote(e.Key) + ": " + e.Value.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
func (o *ObjectLiteral) expressionNode() {}

// FunctionLiteral is `function(params) { body }`, with parameter names
// required to be pairwise distinct by the parser.
type FunctionLiteral struct {
	Tok        token.Token
	Parameters []*Identifier
	Body       *Block
}

func (f *FunctionLiteral) Place() token.Place { return f.Tok.Place }
func (f *FunctionLiteral) String() string {
	params := make([]string, len(f.Parameters))
	for i, p := range f.Parameters {
		params[i] = p.String()
	}
	return "function(" + strings.Join(params, ", ") + ") " + f.Body.String()
}
func (f *FunctionLiteral) expressionNode() {}

// GroupedExpression is `(e)`. It is kept as its own node (rather than folded
// away) because grouping is one of the syntactic forms that propagates a
// `this` candidate through to an enclosing call (spec §4.7).
type GroupedExpression struct {
	Tok   token.Token
	Inner Expression
}

func (g *GroupedExpression) Place() token.Place { return g.Tok.Place }
func (g *GroupedExpression) String() string     { return "(" + g.Inner.String() + ")" }
func (g *GroupedExpression) expressionNode()    {}

// PrefixExpression is a prefix unary operator: + - ! ~ ++ --.
type PrefixExpression struct {
	Tok      token.Token
	Operator string
	Right    Expression
}

func (p *PrefixExpression) Place() token.Place { return p.Tok.Place }
func (p *PrefixExpression) String() string      { return "(" + p.Operator + p.Right.String() + ")" }
func (p *PrefixExpression) expressionNode()     {}

// PostfixExpression is a postfix ++ or --.
type PostfixExpression struct {
	Tok      token.Token
	Operator string
	Left     Expression
}

func (p *PostfixExpression) Place() token.Place { return p.Tok.Place }
func (p *PostfixExpression) String() string      { return "(" + p.Left.String() + p.Operator + ")" }
func (p *PostfixExpression) expressionNode()     {}

// InfixExpression is any left-associative binary operator from levels 5-15 of
// the precedence ladder (arithmetic, shifts, comparisons, bitwise, logical).
type InfixExpression struct {
	Tok      token.Token
	Left     Expression
	Operator string
	Right    Expression
}

func (i *InfixExpression) Place() token.Place { return i.Tok.Place }
func (i *InfixExpression) String() string {
	return "(" + i.Left.String() + " " + i.Operator + " " + i.Right.String() + ")"
}
func (i *InfixExpression) expressionNode() {}

// TernaryExpression is `cond ? then : else`.
type TernaryExpression struct {
	Tok         token.Token
	Condition   Expression
	Consequence Expression
	Alternative Expression
}

func (t *TernaryExpression) Place() token.Place { return t.Tok.Place }
func (t *TernaryExpression) String() string {
	return "(" + t.Condition.String() + " ? " + t.Consequence.String() + " : " + t.Alternative.String() + ")"
}
func (t *TernaryExpression) expressionNode() {}

// AssignExpression is `=` or any compound assignment (+= -= *= /= %= <<= >>=
// &= ^= |=). Left must resolve to an l-value at evaluation time.
type AssignExpression struct {
	Tok      token.Token
	Left     Expression
	Operator string
	Right    Expression
}

func (a *AssignExpression) Place() token.Place { return a.Tok.Place }
func (a *AssignExpression) String() string {
	return "(" + a.Left.String() + " " + a.Operator + " " + a.Right.String() + ")"
}
func (a *AssignExpression) expressionNode() {}

// CommaExpression is `left , right`: evaluates left, discards it, yields right.
type CommaExpression struct {
	Tok   token.Token
	Left  Expression
	Right Expression
}

func (c *CommaExpression) Place() token.Place { return c.Tok.Place }
func (c *CommaExpression) String() string     { return "(" + c.Left.String() + ", " + c.Right.String() + ")" }
func (c *CommaExpression) expressionNode()    {}

// CallExpression is `callee(args...)`.
type CallExpression struct {
	Tok       token.Token
	Callee    Expression
	Arguments []Expression
}

func (c *CallExpression) Place() token.Place { return c.Tok.Place }
func (c *CallExpression) String() string {
	args := make([]string, len(c.Arguments))
	for i, a := range c.Arguments {
		args[i] = a.String()
	}
	var out bytes.Buffer
	out.WriteString(c.Callee.String())
	out.WriteString("(")
	out.WriteString(strings.Join(args, ", "))
	out.WriteString(")")
	return out.String()
}
func (c *CallExpression) expressionNode() {}

// IndexExpression is `left[index]`.
type IndexExpression struct {
	Tok   token.Token
	Left  Expression
	Index Expression
}

func (i *IndexExpression) Place() token.Place { return i.Tok.Place }
func (i *IndexExpression) String() string      { return i.Left.String() + "[" + i.Index.String() + "]" }
func (i *IndexExpression) expressionNode()     {}

// MemberExpression is `object.name`.
type MemberExpression struct {
	Tok      token.Token
	Object   Expression
	Property string
}

func (m *MemberExpression) Place() token.Place { return m.Tok.Place }
func (m *MemberExpression) String() string      { return m.Object.String() + "." + m.Property }
func (m *MemberExpression) expressionNode()     {}
