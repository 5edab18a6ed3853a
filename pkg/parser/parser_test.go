package parser_test

import (
	"testing"

	"svconst/pkg/lexer"
	"svconst/pkg/parser"
)

func parseExpr(t *testing.T, input string) parser.Expr {
	t.Helper()
	p := parser.NewParser(lexer.NewLexer(input))
	expr := p.ParseExpression()
	if errs := p.Errors(); len(errs) != 0 {
		t.Fatalf("parse %q: unexpected errors: %v", input, errs)
	}
	if expr == nil {
		t.Fatalf("parse %q: nil expression", input)
	}
	return expr
}

// render flattens an expression back to fully parenthesized text so tests
// can assert on the tree shape.
func render(e parser.Expr) string {
	switch n := e.(type) {
	case *parser.NumberExpr:
		return n.Text
	case *parser.IdentExpr:
		return n.Name
	case *parser.UnaryExpr:
		return "(" + n.Op.String() + render(n.Operand) + ")"
	case *parser.BinaryExpr:
		return "(" + render(n.Left) + " " + n.Op.String() + " " + render(n.Right) + ")"
	case *parser.CallExpr:
		s := n.Name + "("
		for i, a := range n.Args {
			if i > 0 {
				s += ", "
			}
			s += render(a)
		}
		return s + ")"
	default:
		return "?"
	}
}

func TestExpressionPrecedence(t *testing.T) {
	tests := []struct {
		input       string
		expected    string
		description string
	}{
		{"1 + 2 * 3", "(1 + (2 * 3))", "multiplication binds tighter than addition"},
		{"1 * 2 + 3", "((1 * 2) + 3)", "same, operands flipped"},
		{"10 - 4 - 3", "((10 - 4) - 3)", "subtraction is left associative"},
		{"100 / 10 / 5", "((100 / 10) / 5)", "division is left associative"},
		{"(1 + 2) * 3", "((1 + 2) * 3)", "parentheses override precedence"},
		{"1 < 2 == 3 > 4", "((1 < 2) == (3 > 4))", "relational binds tighter than equality"},
		{"1 & 2 | 3", "((1 & 2) | 3)", "and binds tighter than or"},
		{"1 ^ 2 | 3", "((1 ^ 2) | 3)", "xor binds tighter than or"},
		{"1 & 2 ^ 3", "((1 & 2) ^ 3)", "and binds tighter than xor"},
		{"1 == 2 & 3", "((1 == 2) & 3)", "equality binds tighter than and"},
		{"-2 + 3", "((-2) + 3)", "unary minus applies to its operand only"},
		{"~1 & 2", "((~1) & 2)", "bitwise not applies to its operand only"},
		{"!1 == 0", "((!1) == 0)", "logical not applies to its operand only"},
		{"&4'b1111 | 0", "((&4'b1111) | 0)", "reduction and as prefix"},
		{"- - 5", "(-(-5))", "stacked unary operators"},
		{"f(1, 2 + 3)", "f(1, (2 + 3))", "call arguments parse as full expressions"},
		{"f(g(1))", "f(g(1))", "nested calls"},
		{"w === 4'bxx10", "(w === 4'bxx10)", "case equality operator"},
	}

	for _, test := range tests {
		got := render(parseExpr(t, test.input))
		if got != test.expected {
			t.Errorf("Input %s (%s): expected %s, got %s", test.input, test.description, test.expected, got)
		}
	}
}

func TestParseFile(t *testing.T) {
	input := `parameter WIDTH = 8;
parameter DEPTH = WIDTH * 2;

function clog2(n);
	r = 0;
	r += n;
	return r;
endfunction

parameter ADDR = clog2(DEPTH);`

	p := parser.NewParser(lexer.NewLexer(input))
	file := p.ParseFile()
	if errs := p.Errors(); len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}

	if len(file.Decls) != 4 {
		t.Fatalf("expected 4 declarations, got %d", len(file.Decls))
	}

	param, ok := file.Decls[0].(*parser.ParamDecl)
	if !ok || param.Name != "WIDTH" {
		t.Errorf("decl 0: expected parameter WIDTH, got %+v", file.Decls[0])
	}

	fn, ok := file.Decls[2].(*parser.FuncDecl)
	if !ok {
		t.Fatalf("decl 2: expected a function, got %+v", file.Decls[2])
	}
	if fn.Name != "clog2" {
		t.Errorf("expected function name clog2, got %s", fn.Name)
	}
	if len(fn.Formals) != 1 || fn.Formals[0] != "n" {
		t.Errorf("expected formals [n], got %v", fn.Formals)
	}
	if len(fn.Body) != 3 {
		t.Fatalf("expected 3 body statements, got %d", len(fn.Body))
	}

	assign, ok := fn.Body[1].(*parser.AssignStmt)
	if !ok {
		t.Fatalf("body 1: expected an assignment, got %+v", fn.Body[1])
	}
	if assign.Name != "r" || assign.Op != lexer.PLUSASSIGN {
		t.Errorf("body 1: expected r +=, got %s %s", assign.Name, assign.Op)
	}

	if _, ok := fn.Body[2].(*parser.ReturnStmt); !ok {
		t.Errorf("body 2: expected a return, got %+v", fn.Body[2])
	}
}

func TestParseFunctionWithNoFormals(t *testing.T) {
	input := `function five();
	return 5;
endfunction`

	p := parser.NewParser(lexer.NewLexer(input))
	file := p.ParseFile()
	if errs := p.Errors(); len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}

	fn, ok := file.Decls[0].(*parser.FuncDecl)
	if !ok {
		t.Fatalf("expected a function declaration, got %+v", file.Decls[0])
	}
	if len(fn.Formals) != 0 {
		t.Errorf("expected no formals, got %v", fn.Formals)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input       string
		description string
	}{
		{"parameter = 5;", "missing parameter name"},
		{"parameter P 5;", "missing assignment operator"},
		{"parameter P = ;", "missing initializer expression"},
		{"parameter P = 5", "missing semicolon"},
		{"parameter P = (1 + 2;", "unclosed parenthesis"},
		{"function f(;\nendfunction", "bad formal list"},
		{"5 + 5;", "expression at top level"},
	}

	for _, test := range tests {
		p := parser.NewParser(lexer.NewLexer(test.input))
		p.ParseFile()
		if len(p.Errors()) == 0 {
			t.Errorf("Input %q (%s): expected at least one error", test.input, test.description)
		}
	}
}

func TestParserRecoversAfterBadDeclaration(t *testing.T) {
	input := `parameter A = ;
parameter B = 2;`

	p := parser.NewParser(lexer.NewLexer(input))
	file := p.ParseFile()

	if len(p.Errors()) == 0 {
		t.Fatal("expected an error for the first declaration")
	}
	if len(file.Decls) != 1 {
		t.Fatalf("expected the second declaration to survive, got %d decls", len(file.Decls))
	}
	if d := file.Decls[0].(*parser.ParamDecl); d.Name != "B" {
		t.Errorf("expected parameter B, got %s", d.Name)
	}
}
