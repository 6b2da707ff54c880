// ==============================================================================================
// FILE: parser/parser.go
// ==============================================================================================
// PACKAGE: parser
// PURPOSE: Recursive-descent parser over the full token vector produced by the lexer (no
//          streaming re-lex — the parser rewinds its index freely, which is what lets it look
//          ahead to disambiguate `{` as an object literal vs. a block). Expressions are parsed
//          with a classic precedence-climbing ladder matching the 17-level table.
// ==============================================================================================

package parser

import (
	"strconv"

	"github.com/sawickiap/MinScriptLang-sub001/ast"
	"github.com/sawickiap/MinScriptLang-sub001/lexer"
	"github.com/sawickiap/MinScriptLang-sub001/langerr"
	"github.com/sawickiap/MinScriptLang-sub001/token"
)

// Precedence levels, loosest to tightest (highest number). Levels absent from
// the spec's table (1, 4, 8) are gaps in the original numbering and carry no
// operators; they are omitted here.
const (
	_ int = iota
	LOWEST
	COMMA       // ,
	ASSIGN      // = += -= ... and ternary ?:
	LOGIC_OR    // ||
	LOGIC_AND   // &&
	BIT_OR      // |
	BIT_XOR     // ^
	BIT_AND     // &
	EQUALITY    // == !=
	RELATIONAL  // < <= > >=
	SHIFT       // << >>
	ADDITIVE    // + -
	MULTIPLIC   // * / %
	PREFIX      // unary + - ! ~ ++ --
	POSTFIX     // postfix ++ -- , call, index, member
)

var precedences = map[token.Type]int{
	token.COMMA:          COMMA,
	token.ASSIGN:         ASSIGN,
	token.PLUS_ASSIGN:    ASSIGN,
	token.MINUS_ASSIGN:   ASSIGN,
	token.STAR_ASSIGN:    ASSIGN,
	token.SLASH_ASSIGN:   ASSIGN,
	token.PERCENT_ASSIGN: ASSIGN,
	token.SHL_ASSIGN:     ASSIGN,
	token.SHR_ASSIGN:     ASSIGN,
	token.AND_ASSIGN:     ASSIGN,
	token.XOR_ASSIGN:     ASSIGN,
	token.OR_ASSIGN:      ASSIGN,
	token.QMARK:          ASSIGN,
	token.OR:             LOGIC_OR,
	token.AND:            LOGIC_AND,
	token.PIPE:           BIT_OR,
	token.CARET:          BIT_XOR,
	token.AMP:            BIT_AND,
	token.EQ:             EQUALITY,
	token.NEQ:            EQUALITY,
	token.LT:             RELATIONAL,
	token.LTE:            RELATIONAL,
	token.GT:             RELATIONAL,
	token.GTE:            RELATIONAL,
	token.SHL:            SHIFT,
	token.SHR:            SHIFT,
	token.PLUS:           ADDITIVE,
	token.MINUS:          ADDITIVE,
	token.STAR:           MULTIPLIC,
	token.SLASH:          MULTIPLIC,
	token.PERCENT:        MULTIPLIC,
	token.LPAREN:         POSTFIX,
	token.LBRACK:         POSTFIX,
	token.DOT:            POSTFIX,
	token.INC:            POSTFIX,
	token.DEC:            POSTFIX,
}

var assignOps = map[token.Type]bool{
	token.ASSIGN: true, token.PLUS_ASSIGN: true, token.MINUS_ASSIGN: true,
	token.STAR_ASSIGN: true, token.SLASH_ASSIGN: true, token.PERCENT_ASSIGN: true,
	token.SHL_ASSIGN: true, token.SHR_ASSIGN: true, token.AND_ASSIGN: true,
	token.XOR_ASSIGN: true, token.OR_ASSIGN: true,
}

// Parser holds the full token vector and a rewindable position index.
type Parser struct {
	toks []token.Token
	pos  int
}

// New tokenizes src and returns a Parser positioned at the first token.
func New(src string) (*Parser, error) {
	toks, err := lexer.New(src).Tokenize()
	if err != nil {
		return nil, err
	}
	return &Parser{toks: toks}, nil
}

// ParseProgram parses the whole token vector into a Program.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	prog := &ast.Program{}
	for !p.curIs(token.EOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		prog.Statements = append(prog.Statements, stmt)
	}
	return prog, nil
}

func (p *Parser) cur() token.Token  { return p.toks[p.pos] }
func (p *Parser) curIs(t token.Type) bool {
	return p.cur().Type == t
}
func (p *Parser) peek() token.Token {
	if p.pos+1 < len(p.toks) {
		return p.toks[p.pos+1]
	}
	return p.toks[len(p.toks)-1]
}
func (p *Parser) peekIs(t token.Type) bool { return p.peek().Type == t }

func (p *Parser) advance() token.Token {
	tok := p.cur()
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return tok
}

// expect advances past the current token if it matches t, else raises a
// parse error naming what was expected.
func (p *Parser) expect(t token.Type) (token.Token, error) {
	if !p.curIs(t) {
		return token.Token{}, langerr.NewParseError(p.cur().Place, "expected %s, got %q", t, p.cur().Literal)
	}
	return p.advance(), nil
}

func precedenceOf(t token.Type) int {
	if prec, ok := precedences[t]; ok {
		return prec
	}
	return LOWEST
}

// ----------------------------------------------------------------------------------------------
// Expressions — precedence-climbing over the 17-level ladder.
// ----------------------------------------------------------------------------------------------

// parseExpression parses down to minPrec, the (2,17] "assignment and above"
// slice of the ladder (levels 0-15 live in parsePrimary/parseUnary/the
// left-assoc loop below).
func (p *Parser) parseExpression(minPrec int) (ast.Expression, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return p.parseBinaryRest(left, minPrec)
}

func (p *Parser) parseBinaryRest(left ast.Expression, minPrec int) (ast.Expression, error) {
	for {
		opTok := p.cur()
		prec := precedenceOf(opTok.Type)
		if prec < minPrec || prec == LOWEST {
			return left, nil
		}

		switch {
		case opTok.Type == token.QMARK:
			p.advance()
			cons, err := p.parseExpression(ASSIGN)
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.COLON); err != nil {
				return nil, err
			}
			alt, err := p.parseExpression(ASSIGN)
			if err != nil {
				return nil, err
			}
			left = &ast.TernaryExpression{Tok: opTok, Condition: left, Consequence: cons, Alternative: alt}

		case assignOps[opTok.Type]:
			p.advance()
			right, err := p.parseExpression(ASSIGN)
			if err != nil {
				return nil, err
			}
			left = &ast.AssignExpression{Tok: opTok, Left: left, Operator: string(opTok.Type), Right: right}

		case opTok.Type == token.COMMA:
			p.advance()
			right, err := p.parseExpression(COMMA)
			if err != nil {
				return nil, err
			}
			left = &ast.CommaExpression{Tok: opTok, Left: left, Right: right}

		case opTok.Type == token.LPAREN:
			args, err := p.parseCallArguments()
			if err != nil {
				return nil, err
			}
			left = &ast.CallExpression{Tok: opTok, Callee: left, Arguments: args}

		case opTok.Type == token.LBRACK:
			p.advance()
			idx, err := p.parseExpression(COMMA + 1)
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.RBRACK); err != nil {
				return nil, err
			}
			left = &ast.IndexExpression{Tok: opTok, Left: left, Index: idx}

		case opTok.Type == token.DOT:
			p.advance()
			nameTok, err := p.expect(token.IDENT)
			if err != nil {
				return nil, err
			}
			left = &ast.MemberExpression{Tok: opTok, Object: left, Property: nameTok.Literal}

		case opTok.Type == token.INC || opTok.Type == token.DEC:
			p.advance()
			left = &ast.PostfixExpression{Tok: opTok, Operator: string(opTok.Type), Left: left}

		default:
			// Left-associative binary operator.
			p.advance()
			right, err := p.parseExpression(prec + 1)
			if err != nil {
				return nil, err
			}
			left = &ast.InfixExpression{Tok: opTok, Left: left, Operator: string(opTok.Type), Right: right}
		}
	}
}

// parseUnary handles prefix operators (level 3) before falling to primaries.
func (p *Parser) parseUnary() (ast.Expression, error) {
	switch p.cur().Type {
	case token.PLUS, token.MINUS, token.BANG, token.TILDE, token.INC, token.DEC:
		opTok := p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.PrefixExpression{Tok: opTok, Operator: string(opTok.Type), Right: right}, nil
	}
	prim, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	// Postfix operators (level 2) bind tighter than prefix ones (level 3).
	return p.parseBinaryRest(prim, POSTFIX)
}

func (p *Parser) parseCallArguments() ([]ast.Expression, error) {
	p.advance() // '('
	var args []ast.Expression
	if p.curIs(token.RPAREN) {
		p.advance()
		return args, nil
	}
	for {
		arg, err := p.parseExpression(ASSIGN)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.curIs(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return args, nil
}

// parsePrimary handles level 0 (literals, identifiers, this, grouping,
// object/array/function literals) and level 2 (postfix ++ -- / call /
// index / member are instead folded into parseBinaryRest's loop so they
// compose uniformly with the rest of the ladder).
func (p *Parser) parsePrimary() (ast.Expression, error) {
	tok := p.cur()
	switch tok.Type {
	case token.NUMBER:
		p.advance()
		return parseNumberLiteral(tok)
	case token.STRING:
		p.advance()
		return &ast.StringLiteral{Tok: tok, Value: tok.Literal}, nil
	case token.TRUE, token.FALSE:
		p.advance()
		return &ast.BoolLiteral{Tok: tok, Value: tok.Type == token.TRUE}, nil
	case token.NULL:
		p.advance()
		return &ast.NullLiteral{Tok: tok}, nil
	case token.THIS:
		p.advance()
		return &ast.ThisExpression{Tok: tok}, nil
	case token.LOCAL, token.GLOBAL:
		return p.parseQualifiedIdentifier()
	case token.IDENT:
		p.advance()
		return &ast.Identifier{Tok: tok, Value: tok.Literal}, nil
	case token.LPAREN:
		p.advance()
		inner, err := p.parseExpression(COMMA)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return &ast.GroupedExpression{Tok: tok, Inner: inner}, nil
	case token.LBRACK:
		return p.parseArrayLiteral()
	case token.LBRACE:
		return p.parseObjectLiteral(nil)
	case token.FUNCTION:
		return p.parseFunctionLiteral()
	}
	return nil, langerr.NewParseError(tok.Place, "unexpected token %q", tok.Literal)
}

func (p *Parser) parseQualifiedIdentifier() (ast.Expression, error) {
	qualTok := p.advance()
	if _, err := p.expect(token.DOT); err != nil {
		return nil, err
	}
	nameTok, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	return &ast.Identifier{Tok: qualTok, Value: nameTok.Literal, Qualifier: qualTok.Literal}, nil
}

func parseNumberLiteral(tok token.Token) (ast.Expression, error) {
	text := tok.Literal
	var val float64
	if len(text) > 1 && text[0] == '0' && (text[1] == 'x' || text[1] == 'X') {
		n, err := strconv.ParseUint(text[2:], 16, 64)
		if err != nil {
			return nil, langerr.NewParseError(tok.Place, "invalid hexadecimal number %q", text)
		}
		val = float64(n)
	} else {
		n, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, langerr.NewParseError(tok.Place, "invalid number %q", text)
		}
		val = n
	}
	return &ast.NumberLiteral{Tok: tok, Value: val}, nil
}

func (p *Parser) parseArrayLiteral() (ast.Expression, error) {
	tok := p.advance() // '['
	var elems []ast.Expression
	if p.curIs(token.RBRACK) {
		p.advance()
		return &ast.ArrayLiteral{Tok: tok, Elements: elems}, nil
	}
	for {
		el, err := p.parseExpression(ASSIGN)
		if err != nil {
			return nil, err
		}
		elems = append(elems, el)
		if p.curIs(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(token.RBRACK); err != nil {
		return nil, err
	}
	return &ast.ArrayLiteral{Tok: tok, Elements: elems}, nil
}

// parseObjectLiteral parses `{ key: value, ... }`, where each entry may
// instead be written `function name(params){body}` sugar for
// `"name": function(params){body}`. base is non-nil when this literal
// desugared from `class Name : Base {...}`.
func (p *Parser) parseObjectLiteral(base ast.Expression) (ast.Expression, error) {
	tok := p.advance() // '{'
	obj := &ast.ObjectLiteral{Tok: tok, Base: base}
	seen := map[string]bool{}

	for !p.curIs(token.RBRACE) {
		if p.curIs(token.FUNCTION) {
			fnTok := p.cur()
			p.advance()
			nameTok, err := p.expect(token.IDENT)
			if err != nil {
				return nil, err
			}
			fnLit, err := p.parseFunctionLiteralBody(fnTok)
			if err != nil {
				return nil, err
			}
			if seen[nameTok.Literal] {
				return nil, langerr.NewParseError(nameTok.Place, "duplicate key %q in object literal", nameTok.Literal)
			}
			seen[nameTok.Literal] = true
			obj.Entries = append(obj.Entries, ast.ObjectEntry{Key: nameTok.Literal, KeyAt: nameTok.Place, Value: fnLit})
		} else {
			keyTok := p.cur()
			var key string
			switch keyTok.Type {
			case token.IDENT:
				key = keyTok.Literal
				p.advance()
			case token.STRING:
				key = keyTok.Literal
				p.advance()
			default:
				return nil, langerr.NewParseError(keyTok.Place, "expected object key, got %q", keyTok.Literal)
			}
			if _, err := p.expect(token.COLON); err != nil {
				return nil, err
			}
			val, err := p.parseExpression(ASSIGN)
			if err != nil {
				return nil, err
			}
			if seen[key] {
				return nil, langerr.NewParseError(keyTok.Place, "duplicate key %q in object literal", key)
			}
			seen[key] = true
			obj.Entries = append(obj.Entries, ast.ObjectEntry{Key: key, KeyAt: keyTok.Place, Value: val})
		}

		if p.curIs(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(token.RBRACE); err != nil {
		return nil, err
	}
	return obj, nil
}

func (p *Parser) parseFunctionLiteral() (ast.Expression, error) {
	tok := p.advance() // 'function'
	return p.parseFunctionLiteralBody(tok)
}

// parseFunctionLiteralBody parses `(params) { body }` following a
// `function` keyword already consumed by the caller (tok is its token, used
// for Place). Parameter names must be pairwise distinct.
func (p *Parser) parseFunctionLiteralBody(tok token.Token) (*ast.FunctionLiteral, error) {
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	var params []*ast.Identifier
	seen := map[string]bool{}
	for !p.curIs(token.RPAREN) {
		nameTok, err := p.expect(token.IDENT)
		if err != nil {
			return nil, err
		}
		if seen[nameTok.Literal] {
			return nil, langerr.NewParseError(nameTok.Place, "duplicate parameter name %q", nameTok.Literal)
		}
		seen[nameTok.Literal] = true
		params = append(params, &ast.Identifier{Tok: nameTok, Value: nameTok.Literal})
		if p.curIs(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.FunctionLiteral{Tok: tok, Parameters: params, Body: body}, nil
}
