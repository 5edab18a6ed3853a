package parser

import "svconst/pkg/lexer"

// Expr is a syntax-level expression produced by the parser, before name
// resolution.
type Expr interface {
	Pos() lexer.Position
}

// NumberExpr is an integer literal, plain decimal or based.
type NumberExpr struct {
	Text     string
	Position lexer.Position
}

// IdentExpr is a bare identifier reference.
type IdentExpr struct {
	Name     string
	Position lexer.Position
}

// UnaryExpr is a prefix operator application.
type UnaryExpr struct {
	Op       lexer.TokenType
	Operand  Expr
	Position lexer.Position
}

// BinaryExpr is an infix operator application.
type BinaryExpr struct {
	Op       lexer.TokenType
	Left     Expr
	Right    Expr
	Position lexer.Position
}

// CallExpr is a function invocation.
type CallExpr struct {
	Name     string
	Args     []Expr
	Position lexer.Position
}

func (e *NumberExpr) Pos() lexer.Position { return e.Position }
func (e *IdentExpr) Pos() lexer.Position  { return e.Position }
func (e *UnaryExpr) Pos() lexer.Position  { return e.Position }
func (e *BinaryExpr) Pos() lexer.Position { return e.Position }
func (e *CallExpr) Pos() lexer.Position   { return e.Position }

// Stmt is a statement inside a function body.
type Stmt interface {
	Pos() lexer.Position
}

// AssignStmt is a simple or compound assignment to a local variable.
type AssignStmt struct {
	Name     string
	Op       lexer.TokenType
	Value    Expr
	Position lexer.Position
}

// ReturnStmt yields the function's result.
type ReturnStmt struct {
	Value    Expr
	Position lexer.Position
}

func (s *AssignStmt) Pos() lexer.Position { return s.Position }
func (s *ReturnStmt) Pos() lexer.Position { return s.Position }

// Decl is a top-level declaration.
type Decl interface {
	Pos() lexer.Position
}

// ParamDecl declares a parameter with its initializer expression.
type ParamDecl struct {
	Name     string
	Init     Expr
	Position lexer.Position
}

// FuncDecl declares a constant function.
type FuncDecl struct {
	Name     string
	Formals  []string
	Body     []Stmt
	Position lexer.Position
}

func (d *ParamDecl) Pos() lexer.Position { return d.Position }
func (d *FuncDecl) Pos() lexer.Position  { return d.Position }

// SourceFile is a parsed compilation unit, declarations in source order.
type SourceFile struct {
	Decls []Decl
}
