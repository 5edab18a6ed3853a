package lexer

import (
	"regexp"
)

type tokenRegex struct {
	Pattern *regexp.Regexp
	Raw     string
}

// Token regex patterns
var tokenRegexes = map[TokenType]tokenRegex{
	CASEEQ: {regexp.MustCompile(`^===`), `^===`},
	CASENE: {regexp.MustCompile(`^!==`), `^!==`},
	ASHL:   {regexp.MustCompile(`^<<<`), `^<<<`},
	ASHR:   {regexp.MustCompile(`^>>>`), `^>>>`},

	EQ:  {regexp.MustCompile(`^==`), `^==`},
	NE:  {regexp.MustCompile(`^!=`), `^!=`},
	SHL: {regexp.MustCompile(`^<<`), `^<<`},
	SHR: {regexp.MustCompile(`^>>`), `^>>`},
	LE:  {regexp.MustCompile(`^<=`), `^<=`},
	GE:  {regexp.MustCompile(`^>=`), `^>=`},

	NAND: {regexp.MustCompile(`^~&`), `^~&`},
	NOR:  {regexp.MustCompile(`^~\|`), `^~\|`},
	XNOR: {regexp.MustCompile(`^(~\^|\^~)`), `^(~\^|\^~)`},

	PLUSASSIGN:  {regexp.MustCompile(`^\+=`), `^\+=`},
	MINUSASSIGN: {regexp.MustCompile(`^-=`), `^-=`},
	MULTASSIGN:  {regexp.MustCompile(`^\*=`), `^\*=`},
	DIVASSIGN:   {regexp.MustCompile(`^/=`), `^/=`},
	MODASSIGN:   {regexp.MustCompile(`^%=`), `^%=`},
	ANDASSIGN:   {regexp.MustCompile(`^&=`), `^&=`},
	ORASSIGN:    {regexp.MustCompile(`^\|=`), `^\|=`},
	XORASSIGN:   {regexp.MustCompile(`^\^=`), `^\^=`},

	PARAMETER:   {regexp.MustCompile(`^parameter\b`), `^parameter\b`},
	FUNCTION:    {regexp.MustCompile(`^function\b`), `^function\b`},
	ENDFUNCTION: {regexp.MustCompile(`^endfunction\b`), `^endfunction\b`},
	RETURN:      {regexp.MustCompile(`^return\b`), `^return\b`},

	ASSIGN: {regexp.MustCompile(`^=`), `^=`},
	PLUS:   {regexp.MustCompile(`^\+`), `^\+`},
	MINUS:  {regexp.MustCompile(`^-`), `^-`},
	MULT:   {regexp.MustCompile(`^\*`), `^\*`},
	DIV:    {regexp.MustCompile(`^/`), `^/`},
	MOD:    {regexp.MustCompile(`^%`), `^%`},
	AND:    {regexp.MustCompile(`^&`), `^&`},
	OR:     {regexp.MustCompile(`^\|`), `^\|`},
	XOR:    {regexp.MustCompile(`^\^`), `^\^`},
	BITNOT: {regexp.MustCompile(`^~`), `^~`},
	LOGNOT: {regexp.MustCompile(`^!`), `^!`},
	LT:     {regexp.MustCompile(`^<`), `^<`},
	GT:     {regexp.MustCompile(`^>`), `^>`},

	SEMICOLON: {regexp.MustCompile(`^;`), `^;`},
	COMMA:     {regexp.MustCompile(`^,`), `^,`},
	LPAREN:    {regexp.MustCompile(`^\(`), `^\(`},
	RPAREN:    {regexp.MustCompile(`^\)`), `^\)`},

	BASED: {regexp.MustCompile(`^[0-9][0-9_]*'[sS]?[bBoOdDhH][0-9a-fA-FxXzZ?_]+|^'[sS]?[bBoOdDhH][0-9a-fA-FxXzZ?_]+`), `^[0-9][0-9_]*'[sS]?[bBoOdDhH][0-9a-fA-FxXzZ?_]+|^'[sS]?[bBoOdDhH][0-9a-fA-FxXzZ?_]+`},
	NUM:   {regexp.MustCompile(`^[0-9][0-9_]*`), `^[0-9][0-9_]*`},
	ID:    {regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_$]*`), `^[a-zA-Z_][a-zA-Z0-9_$]*`},
}

var (
	whitespaceRegex = regexp.MustCompile(`^\s+`)
	commentRegex    = regexp.MustCompile(`^//.*`)
)

// Token precedence order for matching (longer patterns first)
var tokenPrecedenceOrder = []TokenType{
	ENDFUNCTION, PARAMETER, FUNCTION, RETURN,
	CASEEQ, CASENE, ASHL, ASHR,
	EQ, NE, SHL, SHR, LE, GE,
	NAND, NOR, XNOR,
	PLUSASSIGN, MINUSASSIGN, MULTASSIGN, DIVASSIGN, MODASSIGN,
	ANDASSIGN, ORASSIGN, XORASSIGN,
	BASED, NUM,
	ASSIGN, PLUS, MINUS, MULT, DIV, MOD,
	AND, OR, XOR, BITNOT, LOGNOT, LT, GT,
	SEMICOLON, COMMA, LPAREN, RPAREN,
	ID,
}

// Get the regex pattern for a token type
func (t TokenType) Regex() *regexp.Regexp {
	if regex, ok := tokenRegexes[t]; ok {
		return regex.Pattern
	}

	return nil
}

// Get the raw regex string for a token type
func (t TokenType) RawRegex() string {
	if regex, ok := tokenRegexes[t]; ok {
		return regex.Raw
	}

	return ""
}

// Match the longest token at the start of the string
func MatchToken(s string) (TokenType, string, bool) {
	if s == "" {
		return EOF, "", false
	} else if match := whitespaceRegex.FindString(s); match != "" {
		return EOF, match, true
	} else if match := commentRegex.FindString(s); match != "" {
		return EOF, match, true
	}

	for _, tokenType := range tokenPrecedenceOrder {
		if regex, ok := tokenRegexes[tokenType]; ok {
			if match := regex.Pattern.FindString(s); match != "" {
				return tokenType, match, true
			}
		}
	}

	return ILLEGAL, string(s[0]), false
}
