package parser

import (
	"svconst/pkg/lexer"
)

type Parser struct {
	lexer        *lexer.Lexer // lexer instance
	currentToken lexer.Token  // current token
	errors       []string     // list of errors
}

// NewParser creates a new parser instance
func NewParser(l *lexer.Lexer) *Parser {
	p := &Parser{
		lexer:  l,
		errors: []string{},
	}

	// Initialize current token
	p.nextToken()

	return p
}

// ParseFile parses a whole compilation unit: parameter and function
// declarations in source order.
func (p *Parser) ParseFile() *SourceFile {
	file := &SourceFile{}

	for p.currentToken.Type != lexer.EOF {
		switch p.currentToken.Type {
		case lexer.PARAMETER:
			if d := p.parseParameter(); d != nil {
				file.Decls = append(file.Decls, d)
			}
		case lexer.FUNCTION:
			if d := p.parseFunction(); d != nil {
				file.Decls = append(file.Decls, d)
			}
		default:
			p.addUnexpectedTokenError()
			p.nextToken()
		}
	}

	return file
}

// ParseExpression parses a single standalone expression (the -e path).
func (p *Parser) ParseExpression() Expr {
	expr := p.parseExpression(0)
	if p.currentToken.Type != lexer.EOF {
		p.addUnexpectedTokenError()
	}
	return expr
}

func (p *Parser) parseParameter() *ParamDecl {
	pos := p.currentToken.Pos
	p.nextToken() // consume 'parameter'

	name, ok := p.expect(lexer.ID)
	if !ok {
		p.syncToSemicolon()
		return nil
	}
	if _, ok := p.expect(lexer.ASSIGN); !ok {
		p.syncToSemicolon()
		return nil
	}

	init := p.parseExpression(0)
	if init == nil {
		p.syncToSemicolon()
		return nil
	}

	if _, ok := p.expect(lexer.SEMICOLON); !ok {
		p.syncToSemicolon()
	}

	return &ParamDecl{Name: name.Lexeme, Init: init, Position: pos}
}

func (p *Parser) parseFunction() *FuncDecl {
	pos := p.currentToken.Pos
	p.nextToken() // consume 'function'

	name, ok := p.expect(lexer.ID)
	if !ok {
		p.syncToEndfunction()
		return nil
	}
	if _, ok := p.expect(lexer.LPAREN); !ok {
		p.syncToEndfunction()
		return nil
	}

	var formals []string
	if p.currentToken.Type != lexer.RPAREN {
		for {
			formal, ok := p.expect(lexer.ID)
			if !ok {
				p.syncToEndfunction()
				return nil
			}
			formals = append(formals, formal.Lexeme)

			if p.currentToken.Type != lexer.COMMA {
				break
			}
			p.nextToken()
		}
	}

	if _, ok := p.expect(lexer.RPAREN); !ok {
		p.syncToEndfunction()
		return nil
	}
	if _, ok := p.expect(lexer.SEMICOLON); !ok {
		p.syncToEndfunction()
		return nil
	}

	var body []Stmt
	for p.currentToken.Type != lexer.ENDFUNCTION && p.currentToken.Type != lexer.EOF {
		if s := p.parseStatement(); s != nil {
			body = append(body, s)
		}
	}

	if _, ok := p.expect(lexer.ENDFUNCTION); !ok {
		return nil
	}

	return &FuncDecl{Name: name.Lexeme, Formals: formals, Body: body, Position: pos}
}

func (p *Parser) parseStatement() Stmt {
	switch p.currentToken.Type {
	case lexer.RETURN:
		pos := p.currentToken.Pos
		p.nextToken()

		value := p.parseExpression(0)
		if value == nil {
			p.syncToSemicolon()
			return nil
		}
		if _, ok := p.expect(lexer.SEMICOLON); !ok {
			p.syncToSemicolon()
		}
		return &ReturnStmt{Value: value, Position: pos}

	case lexer.ID:
		pos := p.currentToken.Pos
		name := p.currentToken.Lexeme
		p.nextToken()

		op := p.currentToken.Type
		if !isAssignOperator(op) {
			p.addMissingAssignError()
			p.syncToSemicolon()
			return nil
		}
		p.nextToken()

		value := p.parseExpression(0)
		if value == nil {
			p.syncToSemicolon()
			return nil
		}
		if _, ok := p.expect(lexer.SEMICOLON); !ok {
			p.syncToSemicolon()
		}
		return &AssignStmt{Name: name, Op: op, Value: value, Position: pos}

	default:
		p.addUnexpectedTokenError()
		p.nextToken()
		return nil
	}
}

// parseExpression is a precedence climber: it consumes operators whose
// precedence is at least minPrec, recursing for the right-hand sides.
func (p *Parser) parseExpression(minPrec int) Expr {
	left := p.parseUnary()
	if left == nil {
		return nil
	}

	for {
		prec := binaryPrecedence(p.currentToken.Type)
		if prec == 0 || prec < minPrec {
			break
		}

		op := p.currentToken.Type
		pos := p.currentToken.Pos
		p.nextToken()

		// +1 makes every binary operator left-associative
		right := p.parseExpression(prec + 1)
		if right == nil {
			return nil
		}

		left = &BinaryExpr{Op: op, Left: left, Right: right, Position: pos}
	}

	return left
}

func (p *Parser) parseUnary() Expr {
	switch p.currentToken.Type {
	case lexer.PLUS, lexer.MINUS, lexer.BITNOT, lexer.LOGNOT,
		lexer.AND, lexer.OR, lexer.XOR, lexer.NAND, lexer.NOR, lexer.XNOR:
		op := p.currentToken.Type
		pos := p.currentToken.Pos
		p.nextToken()

		operand := p.parseUnary()
		if operand == nil {
			return nil
		}
		return &UnaryExpr{Op: op, Operand: operand, Position: pos}

	default:
		return p.parsePrimary()
	}
}

func (p *Parser) parsePrimary() Expr {
	switch p.currentToken.Type {
	case lexer.NUM, lexer.BASED:
		expr := &NumberExpr{Text: p.currentToken.Lexeme, Position: p.currentToken.Pos}
		p.nextToken()
		return expr

	case lexer.ID:
		name := p.currentToken.Lexeme
		pos := p.currentToken.Pos
		p.nextToken()

		if p.currentToken.Type != lexer.LPAREN {
			return &IdentExpr{Name: name, Position: pos}
		}
		p.nextToken() // consume '('

		var args []Expr
		if p.currentToken.Type != lexer.RPAREN {
			for {
				arg := p.parseExpression(0)
				if arg == nil {
					return nil
				}
				args = append(args, arg)

				if p.currentToken.Type != lexer.COMMA {
					break
				}
				p.nextToken()
			}
		}
		if _, ok := p.expect(lexer.RPAREN); !ok {
			return nil
		}
		return &CallExpr{Name: name, Args: args, Position: pos}

	case lexer.LPAREN:
		p.nextToken()
		expr := p.parseExpression(0)
		if expr == nil {
			return nil
		}
		if _, ok := p.expect(lexer.RPAREN); !ok {
			return nil
		}
		return expr

	default:
		p.addMissingExpressionError()
		return nil
	}
}

// binaryPrecedence returns the binding strength of an infix operator,
// or 0 when the token is not one. Levels follow the HDL operator table.
func binaryPrecedence(t lexer.TokenType) int {
	switch t {
	case lexer.MULT, lexer.DIV, lexer.MOD:
		return 9
	case lexer.PLUS, lexer.MINUS:
		return 8
	case lexer.SHL, lexer.SHR, lexer.ASHL, lexer.ASHR:
		return 7
	case lexer.LT, lexer.LE, lexer.GT, lexer.GE:
		return 6
	case lexer.EQ, lexer.NE, lexer.CASEEQ, lexer.CASENE:
		return 5
	case lexer.AND:
		return 4
	case lexer.XOR, lexer.XNOR:
		return 3
	case lexer.OR:
		return 2
	default:
		return 0
	}
}

func isAssignOperator(t lexer.TokenType) bool {
	switch t {
	case lexer.ASSIGN, lexer.PLUSASSIGN, lexer.MINUSASSIGN, lexer.MULTASSIGN,
		lexer.DIVASSIGN, lexer.MODASSIGN, lexer.ANDASSIGN, lexer.ORASSIGN, lexer.XORASSIGN:
		return true
	default:
		return false
	}
}

// nextToken advances to the next token from the lexer
func (p *Parser) nextToken() {
	p.currentToken = p.lexer.NextToken()
}

// expect consumes and returns the current token when it has the wanted
// type; otherwise it records a contextual error and leaves the token alone.
func (p *Parser) expect(t lexer.TokenType) (lexer.Token, bool) {
	if p.currentToken.Type != t {
		p.addExpectError(t)
		return p.currentToken, false
	}

	tok := p.currentToken
	p.nextToken()
	return tok, true
}

// syncToSemicolon skips ahead past the next semicolon so one error does not
// cascade through the rest of the declaration.
func (p *Parser) syncToSemicolon() {
	for p.currentToken.Type != lexer.SEMICOLON && p.currentToken.Type != lexer.EOF {
		p.nextToken()
	}
	if p.currentToken.Type == lexer.SEMICOLON {
		p.nextToken()
	}
}

// syncToEndfunction skips ahead past the next endfunction keyword.
func (p *Parser) syncToEndfunction() {
	for p.currentToken.Type != lexer.ENDFUNCTION && p.currentToken.Type != lexer.EOF {
		p.nextToken()
	}
	if p.currentToken.Type == lexer.ENDFUNCTION {
		p.nextToken()
	}
}
