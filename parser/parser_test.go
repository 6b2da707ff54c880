package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sawickiap/MinScriptLang-sub001/ast"
)

func parseProgram(t *testing.T, src string) *ast.Program {
	t.Helper()
	p, err := New(src)
	require.NoError(t, err)
	prog, err := p.ParseProgram()
	require.NoError(t, err)
	return prog
}

func TestParseGroupedExpressionAllowsComma(t *testing.T) {
	prog := parseProgram(t, "(1, 2, 3);")
	require.Len(t, prog.Statements, 1)
	stmt := prog.Statements[0].(*ast.ExpressionStatement)
	grouped, ok := stmt.Expr.(*ast.GroupedExpression)
	require.True(t, ok)
	_, ok = grouped.Inner.(*ast.CommaExpression)
	require.True(t, ok, "expected a comma expression inside parens")
}

func TestParseTernaryIsRightAssociative(t *testing.T) {
	prog := parseProgram(t, "a ? b : c ? d : e;")
	stmt := prog.Statements[0].(*ast.ExpressionStatement)
	outer, ok := stmt.Expr.(*ast.TernaryExpression)
	require.True(t, ok)
	_, ok = outer.Alternative.(*ast.TernaryExpression)
	require.True(t, ok, "the alternative branch should itself be a ternary")
}

func TestParseAssignmentIsRightAssociative(t *testing.T) {
	prog := parseProgram(t, "a = b = 1;")
	stmt := prog.Statements[0].(*ast.ExpressionStatement)
	outer, ok := stmt.Expr.(*ast.AssignExpression)
	require.True(t, ok)
	_, ok = outer.Right.(*ast.AssignExpression)
	require.True(t, ok)
}

func TestParseQualifiedIdentifierRecordsQualifier(t *testing.T) {
	prog := parseProgram(t, "local.x; global.y;")
	require.Len(t, prog.Statements, 2)

	local := prog.Statements[0].(*ast.ExpressionStatement).Expr.(*ast.Identifier)
	require.Equal(t, "local", local.Qualifier)
	require.Equal(t, "x", local.Value)

	global := prog.Statements[1].(*ast.ExpressionStatement).Expr.(*ast.Identifier)
	require.Equal(t, "global", global.Qualifier)
	require.Equal(t, "y", global.Value)
}

func TestParseFunctionStatementDesugarsToAssignment(t *testing.T) {
	prog := parseProgram(t, "function add(a, b) { return a + b; }")
	require.Len(t, prog.Statements, 1)
	stmt := prog.Statements[0].(*ast.ExpressionStatement)
	assign, ok := stmt.Expr.(*ast.AssignExpression)
	require.True(t, ok)
	require.Equal(t, "add", assign.Left.(*ast.Identifier).Value)
	_, ok = assign.Right.(*ast.FunctionLiteral)
	require.True(t, ok)
}

func TestParseClassStatementDesugarsToObjectLiteralAssignment(t *testing.T) {
	prog := parseProgram(t, "class Point : Base { x: 0, y: 0 }")
	stmt := prog.Statements[0].(*ast.ExpressionStatement)
	assign := stmt.Expr.(*ast.AssignExpression)
	require.Equal(t, "Point", assign.Left.(*ast.Identifier).Value)
	obj, ok := assign.Right.(*ast.ObjectLiteral)
	require.True(t, ok)
	require.NotNil(t, obj.Base)
	require.Equal(t, "Base", obj.Base.(*ast.Identifier).Value)
}

func TestParseDuplicateObjectKeyIsParseError(t *testing.T) {
	_, perr := New("x = { a: 1, a: 2 };")
	require.NoError(t, perr)
	p, _ := New("x = { a: 1, a: 2 };")
	_, err := p.ParseProgram()
	require.Error(t, err)
}

func TestParseDuplicateParameterNameIsParseError(t *testing.T) {
	p, err := New("function f(a, a) {}")
	require.NoError(t, err)
	_, err = p.ParseProgram()
	require.Error(t, err)
}

func TestParseRangeForOneAndTwoVariableForms(t *testing.T) {
	prog := parseProgram(t, "for (v : arr) {} for (k, v : arr) {}")
	require.Len(t, prog.Statements, 2)

	one := prog.Statements[0].(*ast.RangeForStatement)
	require.Nil(t, one.KeyName)
	require.Equal(t, "v", one.ValueName.Value)

	two := prog.Statements[1].(*ast.RangeForStatement)
	require.NotNil(t, two.KeyName)
	require.Equal(t, "k", two.KeyName.Value)
	require.Equal(t, "v", two.ValueName.Value)
}

func TestParseCStyleForWithAllClauses(t *testing.T) {
	prog := parseProgram(t, "for (i = 0; i < 10; i++) {}")
	forStmt := prog.Statements[0].(*ast.ForStatement)
	require.NotNil(t, forStmt.Init)
	require.NotNil(t, forStmt.Cond)
	require.NotNil(t, forStmt.Iter)
}

func TestParseTryRequiresCatchOrFinally(t *testing.T) {
	p, err := New("try { x = 1; }")
	require.NoError(t, err)
	_, err = p.ParseProgram()
	require.Error(t, err)
}

func TestParseSwitchDuplicateConstIsParseError(t *testing.T) {
	p, err := New("switch (x) { case 1: break; case 1: break; }")
	require.NoError(t, err)
	_, err = p.ParseProgram()
	require.Error(t, err)
}

func TestParseBraceDisambiguatesBlockFromObjectLiteral(t *testing.T) {
	prog := parseProgram(t, "{ x = 1; } y = { a: 1 };")
	_, ok := prog.Statements[0].(*ast.Block)
	require.True(t, ok)
	exprStmt := prog.Statements[1].(*ast.ExpressionStatement)
	assign := exprStmt.Expr.(*ast.AssignExpression)
	_, ok = assign.Right.(*ast.ObjectLiteral)
	require.True(t, ok)
}
