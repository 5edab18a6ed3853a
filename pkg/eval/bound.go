package eval

import "strconv"

// Node is an elaborated expression or statement. Nodes are immutable from
// the evaluator's point of view; a node marked bad is the product of an
// earlier diagnostic and evaluates to the empty sentinel without being
// inspected further.
type Node interface {
	Bad() bool
}

type node struct {
	invalid bool
}

// Bad reports whether the node came out of an erroneous construct.
func (n *node) Bad() bool { return n.invalid }

// MarkBad taints the node so evaluation short-circuits to the empty value.
func (n *node) MarkBad() { n.invalid = true }

// Literal carries an already-computed constant.
type Literal struct {
	node
	Value ConstantValue
}

// ParameterRef reads the value recorded on a parameter symbol.
type ParameterRef struct {
	node
	Symbol *ParameterSymbol
}

// VariableRef reads or targets a variable binding in the current frame.
type VariableRef struct {
	node
	Symbol *VariableSymbol
}

// UnaryOp is the operator sub-kind for Unary nodes.
type UnaryOp int

const (
	UnaryPlus UnaryOp = iota
	UnaryMinus
	UnaryBitwiseNot
	UnaryReductionAnd
	UnaryReductionOr
	UnaryReductionXor
	UnaryReductionNand
	UnaryReductionNor
	UnaryReductionXnor
	UnaryLogicalNot
)

var unaryOpNames = map[UnaryOp]string{
	UnaryPlus:          "+",
	UnaryMinus:         "-",
	UnaryBitwiseNot:    "~",
	UnaryReductionAnd:  "&",
	UnaryReductionOr:   "|",
	UnaryReductionXor:  "^",
	UnaryReductionNand: "~&",
	UnaryReductionNor:  "~|",
	UnaryReductionXnor: "~^",
	UnaryLogicalNot:    "!",
}

func (op UnaryOp) String() string { return opName(unaryOpNames[op], int(op)) }

// Unary applies a prefix operator to one operand.
type Unary struct {
	node
	Op      UnaryOp
	Operand Node
}

// BinaryOp is the operator sub-kind for Binary nodes.
type BinaryOp int

const (
	BinaryAdd BinaryOp = iota
	BinarySubtract
	BinaryMultiply
	BinaryDivide
	BinaryMod
	BinaryAnd
	BinaryOr
	BinaryXor
	BinaryXnor
	BinaryEqual
	BinaryNotEqual
	BinaryCaseEqual
	BinaryCaseNotEqual
	BinaryGreaterEqual
	BinaryGreater
	BinaryLessEqual
	BinaryLess
	BinaryShiftLeft
	BinaryShiftRight
)

var binaryOpNames = map[BinaryOp]string{
	BinaryAdd:          "+",
	BinarySubtract:     "-",
	BinaryMultiply:     "*",
	BinaryDivide:       "/",
	BinaryMod:          "%",
	BinaryAnd:          "&",
	BinaryOr:           "|",
	BinaryXor:          "^",
	BinaryXnor:         "~^",
	BinaryEqual:        "==",
	BinaryNotEqual:     "!=",
	BinaryCaseEqual:    "===",
	BinaryCaseNotEqual: "!==",
	BinaryGreaterEqual: ">=",
	BinaryGreater:      ">",
	BinaryLessEqual:    "<=",
	BinaryLess:         "<",
	BinaryShiftLeft:    "<<",
	BinaryShiftRight:   ">>",
}

func (op BinaryOp) String() string { return opName(binaryOpNames[op], int(op)) }

// Binary applies an infix operator to two operands.
type Binary struct {
	node
	Op    BinaryOp
	Left  Node
	Right Node
}

// AssignOp is the operator sub-kind for Assignment nodes.
type AssignOp int

const (
	Assign AssignOp = iota
	AddAssign
	SubtractAssign
	MultiplyAssign
	DivideAssign
	ModAssign
	AndAssign
	OrAssign
	XorAssign
	ShiftLeftAssign
	ShiftRightAssign
)

var assignOpNames = map[AssignOp]string{
	Assign:           "=",
	AddAssign:        "+=",
	SubtractAssign:   "-=",
	MultiplyAssign:   "*=",
	DivideAssign:     "/=",
	ModAssign:        "%=",
	AndAssign:        "&=",
	OrAssign:         "|=",
	XorAssign:        "^=",
	ShiftLeftAssign:  "<<=",
	ShiftRightAssign: ">>=",
}

func (op AssignOp) String() string { return opName(assignOpNames[op], int(op)) }

// Assignment writes Value (possibly combined with the target's current
// value) into the storage slot named by Target. The expression itself
// yields the stored value.
type Assignment struct {
	node
	Op     AssignOp
	Target Node
	Value  Node
}

// Call invokes a constant function with the given argument expressions.
type Call struct {
	node
	Subroutine *SubroutineSymbol
	Arguments  []Node
}

// StatementList is a subroutine body.
type StatementList struct {
	node
	Statements []Node
}

// Return yields the value of its expression as the enclosing call's result.
type Return struct {
	node
	Expr Node
}

func opName(name string, raw int) string {
	if name == "" {
		return "op(" + strconv.Itoa(raw) + ")"
	}
	return name
}
