// ==============================================================================================
// FILE: ast/ast.go
// ==============================================================================================
// PACKAGE: ast
// PURPOSE: The tagged tree the parser builds and the evaluator walks. Every node carries the
//          Place of its leading token so diagnostics can always point back at source.
// ==============================================================================================

package ast

import (
	"bytes"
	"strings"

	"github.com/sawickiap/MinScriptLang-sub001/token"
)

// Node is implemented by every statement and expression.
type Node interface {
	Place() token.Place
	String() string
}

// Statement is a node that can appear directly inside a Block.
type Statement interface {
	Node
	statementNode()
}

// Expression is a node that produces a value.
type Expression interface {
	Node
	expressionNode()
}

// Program is the root of the tree produced by parsing a whole script.
type Program struct {
	Statements []Statement
}

func (p *Program) Place() token.Place { return token.Place{Row: 1, Column: 1} }
func (p *Program) String() string {
	var out bytes.Buffer
	for _, s := range p.Statements {
		out.WriteString(s.String())
		out.WriteString("\n")
	}
	return out.String()
}

// Block is a brace-delimited sequence of statements. It is shared by every
// construct that needs one: function bodies, braced if/while/for bodies, and
// try/catch/finally (where a single unbraced statement is wrapped in one).
// The top-level program is a Program, not a Block.
type Block struct {
	Tok        token.Token
	Statements []Statement
}

func (b *Block) Place() token.Place { return b.Tok.Place }
func (b *Block) String() string {
	var out bytes.Buffer
	out.WriteString("{ ")
	parts := make([]string, 0, len(b.Statements))
	for _, s := range b.Statements {
		parts = append(parts, s.String())
	}
	out.WriteString(strings.Join(parts, " "))
	out.WriteString(" }")
	return out.String()
}
func (b *Block) statementNode() {}
