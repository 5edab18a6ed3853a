package lexer_test

import (
	"svconst/pkg/lexer"
	"testing"
)

func TestComments(t *testing.T) {
	input := `// test comment
parameter A = 1; // trailing comment
// another comment line
parameter B = 2;`

	mylexer := lexer.NewLexer(input)
	expectedTokens := []lexer.TokenType{
		lexer.PARAMETER, lexer.ID, lexer.ASSIGN, lexer.NUM, lexer.SEMICOLON,
		lexer.PARAMETER, lexer.ID, lexer.ASSIGN, lexer.NUM, lexer.SEMICOLON,
		lexer.EOF,
	}

	for i, expected := range expectedTokens {
		token := mylexer.NextToken()
		if token.Type != expected {
			t.Errorf("Token %d: expected %s, got %s", i, expected, token.Type)
		}
	}
}

func TestPositions(t *testing.T) {
	input := "parameter A = 1;\nparameter B = 2;"
	mylexer := lexer.NewLexer(input)

	// skip to the second declaration
	for i := 0; i < 5; i++ {
		mylexer.NextToken()
	}

	token := mylexer.NextToken()
	if token.Type != lexer.PARAMETER {
		t.Fatalf("expected PARAMETER, got %s", token.Type)
	}
	if token.Pos.Line != 2 || token.Pos.Column != 1 {
		t.Errorf("expected Line 2, Column 1, got Line %d, Column %d",
			token.Pos.Line, token.Pos.Column)
	}
}
