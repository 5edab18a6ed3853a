package lexer

import (
	"fmt"
)

type TokenType int
type TokenCategory int

type Token struct {
	Type    TokenType // Type of the token
	Lexeme  string    // Actual string from source code
	Literal string    // Literal value (if applicable), empty string if not
	Pos     Position  // Position in source code
}

// NewToken creates a new Token instance
func NewToken(tokenType TokenType, lexeme string, literal string, Pos Position) Token {
	return Token{
		Type:    tokenType,
		Lexeme:  lexeme,
		Literal: literal,
		Pos:     Pos,
	}
}

const (
	NONE TokenCategory = iota
	KEYWORD
	IDENTIFIER
	LITERAL
	OPERATOR
	DELIMITER
)

const (
	EOF TokenType = iota // End of file

	PARAMETER   // parameter
	FUNCTION    // function
	ENDFUNCTION // endfunction
	RETURN      // return

	ID    // identifier
	NUM   // plain decimal literal
	BASED // sized/based literal like 8'b10xz

	ASSIGN      // =
	PLUS        // +
	MINUS       // -
	MULT        // *
	DIV         // /
	MOD         // %
	AND         // &
	OR          // |
	XOR         // ^
	XNOR        // ~^ or ^~
	NAND        // ~&
	NOR         // ~|
	BITNOT      // ~
	LOGNOT      // !
	EQ          // ==
	NE          // !=
	CASEEQ      // ===
	CASENE      // !==
	LT          // <
	GT          // >
	LE          // <=
	GE          // >=
	SHL         // <<
	SHR         // >>
	ASHL        // <<<
	ASHR        // >>>
	PLUSASSIGN  // +=
	MINUSASSIGN // -=
	MULTASSIGN  // *=
	DIVASSIGN   // /=
	MODASSIGN   // %=
	ANDASSIGN   // &=
	ORASSIGN    // |=
	XORASSIGN   // ^=

	SEMICOLON // ;
	COMMA     // ,
	LPAREN    // (
	RPAREN    // )

	ILLEGAL // illegal token
)

var Keywords = map[string]TokenType{
	"parameter":   PARAMETER,
	"function":    FUNCTION,
	"endfunction": ENDFUNCTION,
	"return":      RETURN,
}

// TokenToString converts a TokenType to its string representation
func (t Token) TokenToString() (string, bool) {
	mapping := map[TokenType]string{
		PARAMETER:   "parameter",
		FUNCTION:    "function",
		ENDFUNCTION: "endfunction",
		RETURN:      "return",
		ASSIGN:      "=",
		PLUS:        "+",
		MINUS:       "-",
		MULT:        "*",
		DIV:         "/",
		MOD:         "%",
		AND:         "&",
		OR:          "|",
		XOR:         "^",
		XNOR:        "~^",
		NAND:        "~&",
		NOR:         "~|",
		BITNOT:      "~",
		LOGNOT:      "!",
		EQ:          "==",
		NE:          "!=",
		CASEEQ:      "===",
		CASENE:      "!==",
		LT:          "<",
		GT:          ">",
		LE:          "<=",
		GE:          ">=",
		SHL:         "<<",
		SHR:         ">>",
		ASHL:        "<<<",
		ASHR:        ">>>",
		PLUSASSIGN:  "+=",
		MINUSASSIGN: "-=",
		MULTASSIGN:  "*=",
		DIVASSIGN:   "/=",
		MODASSIGN:   "%=",
		ANDASSIGN:   "&=",
		ORASSIGN:    "|=",
		XORASSIGN:   "^=",
		SEMICOLON:   ";",
		COMMA:       ",",
		LPAREN:      "(",
		RPAREN:      ")",
		ID:          "id",
		NUM:         "num",
		BASED:       "based",
		EOF:         "$",
	}

	str, ok := mapping[t.Type]
	return str, ok
}

// String returns a string representation of the Token
func (t Token) String() string {
	if t.Literal == "" {
		return fmt.Sprintf("T_{%s, %v, nil, %s}",
			t.Type, t.Lexeme, t.Pos.String())
	}

	return fmt.Sprintf("T_{%s, %v, %q, %s}",
		t.Type, t.Lexeme, t.Literal, t.Pos.String())
}

// String returns a string representation of the TokenType
func (t TokenType) String() string {
	if str, ok := (Token{Type: t}).TokenToString(); ok {
		return str
	}

	return fmt.Sprintf("UNKNOWN(%d)", int(t))
}

// GetCategory returns the category of the token
func (t TokenType) GetCategory() TokenCategory {
	switch t {
	case PARAMETER, FUNCTION, ENDFUNCTION, RETURN:
		return KEYWORD
	case ID:
		return IDENTIFIER
	case NUM, BASED:
		return LITERAL
	case ASSIGN, PLUS, MINUS, MULT, DIV, MOD, AND, OR, XOR, XNOR, NAND, NOR,
		BITNOT, LOGNOT, EQ, NE, CASEEQ, CASENE, LT, GT, LE, GE, SHL, SHR, ASHL, ASHR,
		PLUSASSIGN, MINUSASSIGN, MULTASSIGN, DIVASSIGN, MODASSIGN, ANDASSIGN, ORASSIGN, XORASSIGN:
		return OPERATOR
	case SEMICOLON, COMMA, LPAREN, RPAREN:
		return DELIMITER
	default:
		return NONE
	}
}

// IsKeyword checks if the given identifier is a keyword and returns its TokenType if it is
func IsKeyword(identifier string) (TokenType, bool) {
	tokenType, ok := Keywords[identifier]
	return tokenType, ok
}
