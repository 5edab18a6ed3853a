package parser

import (
	"fmt"

	"svconst/pkg/diag"
	"svconst/pkg/lexer"
)

// addError records a parsing error with location
func (p *Parser) addError(msg string) {
	pos := p.currentToken.Pos
	formatted := diag.Red(msg) + " at " + diag.Yellow(fmt.Sprintf("Line: %d, Column %d", pos.Line, pos.Column))
	p.errors = append(p.errors, formatted)
}

// Errors returns the list of parsing errors
func (p *Parser) Errors() []string {
	return p.errors
}

// addExpectError produces a contextual message for a mismatched token
func (p *Parser) addExpectError(expected lexer.TokenType) {
	switch expected {
	case lexer.SEMICOLON:
		p.addError("Missing semicolon")
	case lexer.RPAREN:
		p.addError("Missing closing parenthesis")
	case lexer.LPAREN:
		p.addError("Missing opening parenthesis")
	case lexer.ASSIGN:
		p.addError("Missing assignment operator")
	case lexer.ENDFUNCTION:
		p.addError("Missing endfunction")
	case lexer.ID:
		if p.currentToken.Type.GetCategory() == lexer.KEYWORD {
			p.addError("Cannot use reserved keyword as identifier")
			return
		}
		p.addError("Expected identifier")
	default:
		p.addError(fmt.Sprintf("Expected '%s'", expected))
	}
}

func (p *Parser) addUnexpectedTokenError() {
	p.addError(fmt.Sprintf("Unexpected token '%s'", p.currentToken.Lexeme))
}

func (p *Parser) addMissingExpressionError() {
	p.addError("Missing expression")
}

func (p *Parser) addMissingAssignError() {
	p.addError("Missing assignment operator")
}
