// Package bind resolves parsed declarations into the bound tree consumed
// by the constant evaluator, recording each parameter's elaborated value
// on its symbol.
package bind

import (
	"svconst/pkg/eval"
	"svconst/pkg/lexer"
	"svconst/pkg/parser"
	"svconst/pkg/svint"
)

// DefaultMaxCallDepth bounds constant-function recursion during
// elaboration so a runaway definition fails with a diagnostic instead of
// exhausting the host stack.
const DefaultMaxCallDepth = 256

type Binder struct {
	params     map[string]*eval.ParameterSymbol  // parameter name -> symbol
	subs       map[string]*eval.SubroutineSymbol // function name -> symbol
	paramOrder []*eval.ParameterSymbol           // declaration order
	maxDepth   int                               // call depth cap for initializers
	errors     []string                          // list of semantic errors
}

type Option func(*Binder)

// WithMaxCallDepth overrides the recursion cap used while evaluating
// parameter initializers.
func WithMaxCallDepth(n int) Option {
	return func(b *Binder) { b.maxDepth = n }
}

// NewBinder creates a new Binder instance
func NewBinder(opts ...Option) *Binder {
	b := &Binder{
		params:   make(map[string]*eval.ParameterSymbol),
		subs:     make(map[string]*eval.SubroutineSymbol),
		maxDepth: DefaultMaxCallDepth,
	}

	for _, o := range opts {
		o(b)
	}

	return b
}

// BindFile elaborates a parsed file: declarations are processed in source
// order, and every parameter initializer is evaluated as soon as it is
// bound, so later declarations can reference earlier values.
func (b *Binder) BindFile(file *parser.SourceFile) {
	for _, d := range file.Decls {
		switch decl := d.(type) {
		case *parser.ParamDecl:
			b.bindParameter(decl)
		case *parser.FuncDecl:
			b.bindFunction(decl)
		}
	}
}

// BindExpression binds a standalone expression against the declarations
// already elaborated by BindFile.
func (b *Binder) BindExpression(expr parser.Expr) eval.Node {
	return b.bindExpr(expr, nil)
}

// Parameters returns the elaborated parameter symbols in declaration order.
func (b *Binder) Parameters() []*eval.ParameterSymbol {
	return b.paramOrder
}

// MaxCallDepth returns the recursion cap applied to initializers.
func (b *Binder) MaxCallDepth() int {
	return b.maxDepth
}

func (b *Binder) bindParameter(decl *parser.ParamDecl) {
	if b.isDeclared(decl.Name) {
		b.addRedeclarationError(decl.Name, decl.Position)
		return
	}

	before := len(b.errors)
	init := b.bindExpr(decl.Init, nil)

	// Each initializer gets its own evaluator: frames are never shared
	// between evaluations.
	ev := eval.NewEvaluator(eval.WithMaxDepth(b.maxDepth))
	value := ev.Evaluate(init)

	switch {
	case ev.Err() != nil:
		b.addDepthExceededError(decl.Name, decl.Position)
	case !value.Valid && len(b.errors) == before:
		b.addNotConstantError(decl.Name, decl.Position)
	}

	sym := &eval.ParameterSymbol{Name: decl.Name, Value: value}
	b.params[decl.Name] = sym
	b.paramOrder = append(b.paramOrder, sym)
}

func (b *Binder) bindFunction(decl *parser.FuncDecl) {
	if b.isDeclared(decl.Name) {
		b.addRedeclarationError(decl.Name, decl.Position)
		return
	}

	scope := make(map[string]*eval.VariableSymbol)
	var formals []*eval.VariableSymbol
	for _, name := range decl.Formals {
		if _, ok := scope[name]; ok {
			b.addRedeclarationError(name, decl.Position)
			continue
		}
		sym := &eval.VariableSymbol{Name: name}
		scope[name] = sym
		formals = append(formals, sym)
	}

	// Register before binding the body so the function can call itself.
	sub := &eval.SubroutineSymbol{Name: decl.Name, Arguments: formals}
	b.subs[decl.Name] = sub

	var stmts []eval.Node
	for _, s := range decl.Body {
		stmts = append(stmts, b.bindStatement(s, scope))
	}
	sub.Body = &eval.StatementList{Statements: stmts}
}

func (b *Binder) bindStatement(stmt parser.Stmt, scope map[string]*eval.VariableSymbol) eval.Node {
	switch s := stmt.(type) {
	case *parser.ReturnStmt:
		return &eval.Return{Expr: b.bindExpr(s.Value, scope)}

	case *parser.AssignStmt:
		node := &eval.Assignment{
			Op:    bindAssignOp(s.Op),
			Value: b.bindExpr(s.Value, scope),
		}
		sym, ok := scope[s.Name]
		if !ok {
			b.addUndefinedVariableError(s.Name, s.Position)
			sym = &eval.VariableSymbol{Name: s.Name}
			node.MarkBad()
		}
		node.Target = &eval.VariableRef{Symbol: sym}
		return node

	default:
		panic("bind: unhandled statement kind")
	}
}

func (b *Binder) bindExpr(expr parser.Expr, scope map[string]*eval.VariableSymbol) eval.Node {
	switch e := expr.(type) {
	case *parser.NumberExpr:
		v, err := svint.ParseLiteral(e.Text)
		if err != nil {
			b.addInvalidLiteralError(e.Text, e.Position)
			return badNode()
		}
		return &eval.Literal{Value: eval.IntegerValue(v)}

	case *parser.IdentExpr:
		if sym, ok := scope[e.Name]; ok {
			return &eval.VariableRef{Symbol: sym}
		}
		if sym, ok := b.params[e.Name]; ok {
			return &eval.ParameterRef{Symbol: sym}
		}
		b.addUndefinedIdentifierError(e.Name, e.Position)
		return badNode()

	case *parser.UnaryExpr:
		return &eval.Unary{
			Op:      bindUnaryOp(e.Op),
			Operand: b.bindExpr(e.Operand, scope),
		}

	case *parser.BinaryExpr:
		node := &eval.Binary{
			Op:    bindBinaryOp(e.Op),
			Left:  b.bindExpr(e.Left, scope),
			Right: b.bindExpr(e.Right, scope),
		}
		if isShift(e.Op) {
			// Shifts have no constant-evaluation support yet; taint the
			// node so it can never reach the evaluator's shift slots.
			b.addShiftUnsupportedError(e.Op, e.Position)
			node.MarkBad()
		}
		return node

	case *parser.CallExpr:
		sub, ok := b.subs[e.Name]
		if !ok {
			b.addUndefinedFunctionError(e.Name, e.Position)
			return badNode()
		}

		node := &eval.Call{Subroutine: sub}
		for _, arg := range e.Args {
			node.Arguments = append(node.Arguments, b.bindExpr(arg, scope))
		}
		if len(node.Arguments) != len(sub.Arguments) {
			b.addArgumentCountError(e.Name, len(sub.Arguments), len(node.Arguments), e.Position)
			node.MarkBad()
		}
		return node

	default:
		panic("bind: unhandled expression kind")
	}
}

func (b *Binder) isDeclared(name string) bool {
	if _, ok := b.params[name]; ok {
		return true
	}
	_, ok := b.subs[name]
	return ok
}

// badNode is the placeholder for expressions that failed to bind; it
// evaluates to the empty sentinel.
func badNode() eval.Node {
	n := &eval.Literal{}
	n.MarkBad()
	return n
}

func isShift(t lexer.TokenType) bool {
	switch t {
	case lexer.SHL, lexer.SHR, lexer.ASHL, lexer.ASHR:
		return true
	default:
		return false
	}
}

func bindUnaryOp(t lexer.TokenType) eval.UnaryOp {
	switch t {
	case lexer.PLUS:
		return eval.UnaryPlus
	case lexer.MINUS:
		return eval.UnaryMinus
	case lexer.BITNOT:
		return eval.UnaryBitwiseNot
	case lexer.AND:
		return eval.UnaryReductionAnd
	case lexer.OR:
		return eval.UnaryReductionOr
	case lexer.XOR:
		return eval.UnaryReductionXor
	case lexer.NAND:
		return eval.UnaryReductionNand
	case lexer.NOR:
		return eval.UnaryReductionNor
	case lexer.XNOR:
		return eval.UnaryReductionXnor
	case lexer.LOGNOT:
		return eval.UnaryLogicalNot
	default:
		panic("bind: not a unary operator token")
	}
}

func bindBinaryOp(t lexer.TokenType) eval.BinaryOp {
	switch t {
	case lexer.PLUS:
		return eval.BinaryAdd
	case lexer.MINUS:
		return eval.BinarySubtract
	case lexer.MULT:
		return eval.BinaryMultiply
	case lexer.DIV:
		return eval.BinaryDivide
	case lexer.MOD:
		return eval.BinaryMod
	case lexer.AND:
		return eval.BinaryAnd
	case lexer.OR:
		return eval.BinaryOr
	case lexer.XOR:
		return eval.BinaryXor
	case lexer.XNOR:
		return eval.BinaryXnor
	case lexer.EQ:
		return eval.BinaryEqual
	case lexer.NE:
		return eval.BinaryNotEqual
	case lexer.CASEEQ:
		return eval.BinaryCaseEqual
	case lexer.CASENE:
		return eval.BinaryCaseNotEqual
	case lexer.GE:
		return eval.BinaryGreaterEqual
	case lexer.GT:
		return eval.BinaryGreater
	case lexer.LE:
		return eval.BinaryLessEqual
	case lexer.LT:
		return eval.BinaryLess
	case lexer.SHL, lexer.ASHL:
		return eval.BinaryShiftLeft
	case lexer.SHR, lexer.ASHR:
		return eval.BinaryShiftRight
	default:
		panic("bind: not a binary operator token")
	}
}

func bindAssignOp(t lexer.TokenType) eval.AssignOp {
	switch t {
	case lexer.ASSIGN:
		return eval.Assign
	case lexer.PLUSASSIGN:
		return eval.AddAssign
	case lexer.MINUSASSIGN:
		return eval.SubtractAssign
	case lexer.MULTASSIGN:
		return eval.MultiplyAssign
	case lexer.DIVASSIGN:
		return eval.DivideAssign
	case lexer.MODASSIGN:
		return eval.ModAssign
	case lexer.ANDASSIGN:
		return eval.AndAssign
	case lexer.ORASSIGN:
		return eval.OrAssign
	case lexer.XORASSIGN:
		return eval.XorAssign
	default:
		panic("bind: not an assignment operator token")
	}
}
