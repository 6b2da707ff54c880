// ==============================================================================================
// FILE: parser/statements.go
// ==============================================================================================
package parser

import (
	"github.com/sawickiap/MinScriptLang-sub001/ast"
	"github.com/sawickiap/MinScriptLang-sub001/langerr"
	"github.com/sawickiap/MinScriptLang-sub001/token"
)

func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.cur().Type {
	case token.SEMI:
		tok := p.advance()
		return &ast.EmptyStatement{Tok: tok}, nil
	case token.LBRACE:
		if p.braceStartsObjectLiteral() {
			return p.parseExpressionStatement()
		}
		return p.parseBlock()
	case token.IF:
		return p.parseIfStatement()
	case token.WHILE:
		return p.parseWhileStatement()
	case token.DO:
		return p.parseDoWhileStatement()
	case token.FOR:
		return p.parseForStatement()
	case token.BREAK:
		tok := p.advance()
		if _, err := p.expect(token.SEMI); err != nil {
			return nil, err
		}
		return &ast.BreakStatement{Tok: tok}, nil
	case token.CONTINUE:
		tok := p.advance()
		if _, err := p.expect(token.SEMI); err != nil {
			return nil, err
		}
		return &ast.ContinueStatement{Tok: tok}, nil
	case token.RETURN:
		return p.parseReturnStatement()
	case token.SWITCH:
		return p.parseSwitchStatement()
	case token.THROW:
		return p.parseThrowStatement()
	case token.TRY:
		return p.parseTryStatement()
	case token.FUNCTION:
		return p.parseFunctionStatement()
	case token.CLASS:
		return p.parseClassStatement()
	default:
		return p.parseExpressionStatement()
	}
}

// braceStartsObjectLiteral implements the `{` disambiguation rule: it opens
// an object literal, rather than a block, only when immediately followed by
// `}`, `identifier :`, or `string :`.
func (p *Parser) braceStartsObjectLiteral() bool {
	next := p.peek()
	if next.Type == token.RBRACE {
		return true
	}
	if next.Type != token.IDENT && next.Type != token.STRING {
		return false
	}
	if p.pos+2 >= len(p.toks) {
		return false
	}
	return p.toks[p.pos+2].Type == token.COLON
}

func (p *Parser) parseBlock() (*ast.Block, error) {
	tok, err := p.expect(token.LBRACE)
	if err != nil {
		return nil, err
	}
	block := &ast.Block{Tok: tok}
	for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)
	}
	if _, err := p.expect(token.RBRACE); err != nil {
		return nil, err
	}
	return block, nil
}

func (p *Parser) parseExpressionStatement() (ast.Statement, error) {
	tok := p.cur()
	expr, err := p.parseExpression(COMMA)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMI); err != nil {
		return nil, err
	}
	return &ast.ExpressionStatement{Tok: tok, Expr: expr}, nil
}

func (p *Parser) parseIfStatement() (ast.Statement, error) {
	tok := p.advance() // 'if'
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression(COMMA)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	then, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	stmt := &ast.IfStatement{Tok: tok, Condition: cond, Consequence: then}
	if p.curIs(token.ELSE) {
		p.advance()
		alt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmt.Alternative = alt
	}
	return stmt, nil
}

func (p *Parser) parseWhileStatement() (ast.Statement, error) {
	tok := p.advance() // 'while'
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression(COMMA)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return &ast.WhileStatement{Tok: tok, Condition: cond, Body: body}, nil
}

func (p *Parser) parseDoWhileStatement() (ast.Statement, error) {
	tok := p.advance() // 'do'
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.WHILE); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression(COMMA)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMI); err != nil {
		return nil, err
	}
	return &ast.DoWhileStatement{Tok: tok, Body: body, Condition: cond}, nil
}

// parseForStatement handles both the C-style for(init?; cond?; iter?) and
// the range-for for(id [, id] : range) forms, disambiguated by scanning
// ahead for the first ':' vs ';' once an identifier-then-comma-or-colon
// pattern is spotted at the head of the parens.
func (p *Parser) parseForStatement() (ast.Statement, error) {
	tok := p.advance() // 'for'
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}

	if p.looksLikeRangeFor() {
		return p.parseRangeForStatement(tok)
	}

	var init ast.Statement
	if p.curIs(token.SEMI) {
		p.advance()
	} else {
		stmt, err := p.parseExpressionStatement()
		if err != nil {
			return nil, err
		}
		init = stmt
	}

	var cond ast.Expression
	if !p.curIs(token.SEMI) {
		c, err := p.parseExpression(COMMA)
		if err != nil {
			return nil, err
		}
		cond = c
	}
	if _, err := p.expect(token.SEMI); err != nil {
		return nil, err
	}

	var iter ast.Expression
	if !p.curIs(token.RPAREN) {
		it, err := p.parseExpression(COMMA)
		if err != nil {
			return nil, err
		}
		iter = it
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}

	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return &ast.ForStatement{Tok: tok, Init: init, Cond: cond, Iter: iter, Body: body}, nil
}

// looksLikeRangeFor requires the head just inside the for's '(' to be an
// identifier followed by ',' or ':', then scans forward from there without
// consuming tokens, looking for a ':' before the first ';' or the closing
// ')' at depth 0.
func (p *Parser) looksLikeRangeFor() bool {
	if !p.curIs(token.IDENT) || (!p.peekIs(token.COMMA) && !p.peekIs(token.COLON)) {
		return false
	}
	depth := 0
	for i := p.pos; i < len(p.toks); i++ {
		switch p.toks[i].Type {
		case token.LPAREN, token.LBRACK, token.LBRACE:
			depth++
		case token.RPAREN, token.RBRACK, token.RBRACE:
			if depth == 0 {
				return false
			}
			depth--
		case token.SEMI:
			if depth == 0 {
				return false
			}
		case token.COLON:
			if depth == 0 {
				return true
			}
		}
	}
	return false
}

func (p *Parser) parseRangeForStatement(tok token.Token) (ast.Statement, error) {
	firstTok, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	first := &ast.Identifier{Tok: firstTok, Value: firstTok.Literal}

	var keyName, valName *ast.Identifier
	if p.curIs(token.COMMA) {
		p.advance()
		secondTok, err := p.expect(token.IDENT)
		if err != nil {
			return nil, err
		}
		keyName = first
		valName = &ast.Identifier{Tok: secondTok, Value: secondTok.Literal}
	} else {
		valName = first
	}

	if _, err := p.expect(token.COLON); err != nil {
		return nil, err
	}
	rangeExpr, err := p.parseExpression(COMMA)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return &ast.RangeForStatement{Tok: tok, KeyName: keyName, ValueName: valName, Range: rangeExpr, Body: body}, nil
}

func (p *Parser) parseReturnStatement() (ast.Statement, error) {
	tok := p.advance() // 'return'
	if p.curIs(token.SEMI) {
		p.advance()
		return &ast.ReturnStatement{Tok: tok}, nil
	}
	val, err := p.parseExpression(COMMA)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMI); err != nil {
		return nil, err
	}
	return &ast.ReturnStatement{Tok: tok, Value: val}, nil
}

func (p *Parser) parseSwitchStatement() (ast.Statement, error) {
	tok := p.advance() // 'switch'
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	subject, err := p.parseExpression(COMMA)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LBRACE); err != nil {
		return nil, err
	}

	stmt := &ast.SwitchStatement{Tok: tok, Subject: subject}
	sawDefault := false
	type constKey struct{ kind token.Type; lit string }
	seen := map[constKey]bool{}

	for !p.curIs(token.RBRACE) {
		var clause ast.SwitchClause
		switch p.cur().Type {
		case token.CASE:
			caseTok := p.advance()
			constExpr, err := p.parseExpression(ASSIGN)
			if err != nil {
				return nil, err
			}
			if lit, ok := constLiteralKey(constExpr); ok {
				if seen[lit] {
					return nil, langerr.NewParseError(caseTok.Place, "duplicate case constant")
				}
				seen[lit] = true
			}
			clause.Const = constExpr
			if _, err := p.expect(token.COLON); err != nil {
				return nil, err
			}
		case token.DEFAULT:
			defTok := p.advance()
			if sawDefault {
				return nil, langerr.NewParseError(defTok.Place, "duplicate default clause")
			}
			sawDefault = true
			clause.IsDefault = true
			if _, err := p.expect(token.COLON); err != nil {
				return nil, err
			}
		default:
			return nil, langerr.NewParseError(p.cur().Place, "expected case or default, got %q", p.cur().Literal)
		}

		for !p.curIs(token.CASE) && !p.curIs(token.DEFAULT) && !p.curIs(token.RBRACE) {
			s, err := p.parseStatement()
			if err != nil {
				return nil, err
			}
			clause.Statements = append(clause.Statements, s)
		}
		stmt.Clauses = append(stmt.Clauses, clause)
	}
	if _, err := p.expect(token.RBRACE); err != nil {
		return nil, err
	}
	return stmt, nil
}

// constLiteralKey produces a comparable key for case-constant uniqueness
// checking when the constant is a literal; non-literal constants (rare, but
// the grammar allows any Expr16) are not checked at parse time.
func constLiteralKey(e ast.Expression) (struct {
	kind token.Type
	lit  string
}, bool) {
	switch v := e.(type) {
	case *ast.NumberLiteral:
		return struct {
			kind token.Type
			lit  string
		}{token.NUMBER, v.String()}, true
	case *ast.StringLiteral:
		return struct {
			kind token.Type
			lit  string
		}{token.STRING, v.Value}, true
	}
	return struct {
		kind token.Type
		lit  string
	}{}, false
}

func (p *Parser) parseThrowStatement() (ast.Statement, error) {
	tok := p.advance() // 'throw'
	val, err := p.parseExpression(COMMA)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMI); err != nil {
		return nil, err
	}
	return &ast.ThrowStatement{Tok: tok, Value: val}, nil
}

func (p *Parser) parseTryStatement() (ast.Statement, error) {
	tok := p.advance() // 'try'
	tryBlock, err := p.parseBlockOrSingle()
	if err != nil {
		return nil, err
	}
	stmt := &ast.TryStatement{Tok: tok, Try: tryBlock}

	if p.curIs(token.CATCH) {
		p.advance()
		if _, err := p.expect(token.LPAREN); err != nil {
			return nil, err
		}
		nameTok, err := p.expect(token.IDENT)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		catchBlock, err := p.parseBlockOrSingle()
		if err != nil {
			return nil, err
		}
		stmt.CatchName = &ast.Identifier{Tok: nameTok, Value: nameTok.Literal}
		stmt.Catch = catchBlock
	}
	if p.curIs(token.FINALLY) {
		p.advance()
		finallyBlock, err := p.parseBlockOrSingle()
		if err != nil {
			return nil, err
		}
		stmt.Finally = finallyBlock
	}
	if stmt.Catch == nil && stmt.Finally == nil {
		return nil, langerr.NewParseError(tok.Place, "try requires a catch, a finally, or both")
	}
	return stmt, nil
}

// parseBlockOrSingle wraps a single non-block statement in a synthetic
// Block so try/catch/finally bodies are always *ast.Block, matching
// function bodies and simplifying the evaluator's scope handling.
func (p *Parser) parseBlockOrSingle() (*ast.Block, error) {
	if p.curIs(token.LBRACE) && !p.braceStartsObjectLiteral() {
		return p.parseBlock()
	}
	tok := p.cur()
	stmt, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return &ast.Block{Tok: tok, Statements: []ast.Statement{stmt}}, nil
}

// parseFunctionStatement desugars `function name(params){body}` into
// `name = function(params){body};`.
func (p *Parser) parseFunctionStatement() (ast.Statement, error) {
	tok := p.advance() // 'function'
	nameTok, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	fnLit, err := p.parseFunctionLiteralBody(tok)
	if err != nil {
		return nil, err
	}
	name := &ast.Identifier{Tok: nameTok, Value: nameTok.Literal}
	assign := &ast.AssignExpression{Tok: nameTok, Left: name, Operator: "=", Right: fnLit}
	return &ast.ExpressionStatement{Tok: tok, Expr: assign}, nil
}

// parseClassStatement desugars `class Name [: Base] { obj-body }` into
// `Name = { ...obj-body... };` with Base carried on the ObjectLiteral for
// the evaluator to copy-then-override at assignment time.
func (p *Parser) parseClassStatement() (ast.Statement, error) {
	tok := p.advance() // 'class'
	nameTok, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	var base ast.Expression
	if p.curIs(token.COLON) {
		p.advance()
		baseTok, err := p.expect(token.IDENT)
		if err != nil {
			return nil, err
		}
		base = &ast.Identifier{Tok: baseTok, Value: baseTok.Literal}
	}
	objExpr, err := p.parseObjectLiteral(base)
	if err != nil {
		return nil, err
	}
	name := &ast.Identifier{Tok: nameTok, Value: nameTok.Literal}
	assign := &ast.AssignExpression{Tok: nameTok, Left: name, Operator: "=", Right: objExpr}
	return &ast.ExpressionStatement{Tok: tok, Expr: assign}, nil
}
