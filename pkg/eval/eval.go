package eval

import (
	"errors"
	"fmt"

	"svconst/pkg/svint"
)

// Evaluator computes the compile-time value of an elaborated expression
// tree. It owns an explicit stack of frames; the last entry is the frame
// of the call currently being evaluated. One evaluator serves one
// evaluation at a time; concurrent evaluations each need their own
// instance, since frames are never shared.
type Evaluator struct {
	frames   []*Frame // frames[0] is the root context
	maxDepth int      // maximum call depth (0 = unlimited)
	err      error
}

type Option func(*Evaluator)

// WithMaxDepth caps the call depth before evaluation gives up with
// ErrMaxDepthExceeded. Guards against runaway recursive constant functions.
func WithMaxDepth(n int) Option {
	return func(e *Evaluator) { e.maxDepth = n }
}

// NewEvaluator creates an evaluator with a fresh root frame.
func NewEvaluator(opts ...Option) *Evaluator {
	e := &Evaluator{
		frames: make([]*Frame, 0, 8),
	}
	e.frames = append(e.frames, newFrame(nil))

	for _, o := range opts {
		o(e)
	}

	return e
}

// Err returns the resource-exhaustion error recorded during the last
// evaluation, if any. An empty result with a non-nil Err is a depth
// failure, not a constant-ness failure.
func (e *Evaluator) Err() error {
	return e.err
}

// CreateTemporary binds sym to v in the current frame. Used to seed
// top-level variables before evaluating expressions that reference them.
func (e *Evaluator) CreateTemporary(sym *VariableSymbol, v ConstantValue) {
	e.currentFrame().bind(sym, v)
}

// currentFrame returns the frame of the innermost active call.
func (e *Evaluator) currentFrame() *Frame {
	return e.frames[len(e.frames)-1]
}

func (e *Evaluator) pushFrame(f *Frame) {
	e.frames = append(e.frames, f)
}

func (e *Evaluator) popFrame() {
	e.frames = e.frames[:len(e.frames)-1]
}

// EvaluateBool evaluates tree as a branch condition: the four-state result
// collapses to a definite boolean, and anything not strictly true (empty,
// or containing X or Z) counts as false.
func (e *Evaluator) EvaluateBool(tree Node) bool {
	cv := e.Evaluate(tree)
	if !cv.Valid {
		return false
	}
	return cv.Integer.IsTrue()
}

// Evaluate computes the constant value of tree. It never mutates the tree,
// but variable access, assignment and call entry/exit read and write the
// active frame. Bad nodes yield the empty sentinel without being inspected;
// node or operator kinds that elaboration should have excluded panic.
func (e *Evaluator) Evaluate(tree Node) ConstantValue {
	if tree == nil {
		panic("eval: evaluate of nil node")
	}
	if tree.Bad() {
		return ConstantValue{}
	}

	switch n := tree.(type) {
	case *Literal:
		return n.Value
	case *ParameterRef:
		return n.Symbol.Value
	case *VariableRef:
		return e.evaluateVariable(n)
	case *Unary:
		return e.evaluateUnary(n)
	case *Binary:
		return e.evaluateBinary(n)
	case *Assignment:
		return e.evaluateAssignment(n)
	case *Call:
		return e.evaluateCall(n)
	case *StatementList:
		return e.evaluateStatementList(n)
	case *Return:
		return e.Evaluate(n.Expr)
	default:
		panic(fmt.Sprintf("eval: unhandled node kind %T", tree))
	}
}

func (e *Evaluator) evaluateVariable(expr *VariableRef) ConstantValue {
	v, ok := e.currentFrame().lookup(expr.Symbol)
	if !ok {
		panic(fmt.Sprintf("eval: read of unbound variable %q", expr.Symbol.Name))
	}
	return v
}

func (e *Evaluator) evaluateUnary(expr *Unary) ConstantValue {
	cv := e.Evaluate(expr.Operand)
	if !cv.Valid {
		return ConstantValue{}
	}
	v := cv.Integer

	switch expr.Op {
	case UnaryPlus:
		return cv
	case UnaryMinus:
		return IntegerValue(v.Neg())
	case UnaryBitwiseNot:
		return IntegerValue(v.Not())
	case UnaryReductionAnd:
		return IntegerValue(svint.FromLogic(v.ReductionAnd()))
	case UnaryReductionOr:
		return IntegerValue(svint.FromLogic(v.ReductionOr()))
	case UnaryReductionXor:
		return IntegerValue(svint.FromLogic(v.ReductionXor()))
	case UnaryReductionNand:
		return IntegerValue(svint.FromLogic(v.ReductionAnd().Not()))
	case UnaryReductionNor:
		return IntegerValue(svint.FromLogic(v.ReductionOr().Not()))
	case UnaryReductionXnor:
		return IntegerValue(svint.FromLogic(v.ReductionXor().Not()))
	case UnaryLogicalNot:
		return IntegerValue(svint.FromLogic(v.LogicalNot()))
	default:
		panic(fmt.Sprintf("eval: unhandled unary operator %s", expr.Op))
	}
}

func (e *Evaluator) evaluateBinary(expr *Binary) ConstantValue {
	lv := e.Evaluate(expr.Left)
	if !lv.Valid {
		return ConstantValue{}
	}
	rv := e.Evaluate(expr.Right)
	if !rv.Valid {
		return ConstantValue{}
	}

	return e.applyBinary(expr.Op, lv.Integer, rv.Integer)
}

func (e *Evaluator) applyBinary(op BinaryOp, l, r svint.SVInt) ConstantValue {
	switch op {
	case BinaryAdd:
		return IntegerValue(l.Add(r))
	case BinarySubtract:
		return IntegerValue(l.Sub(r))
	case BinaryMultiply:
		return IntegerValue(l.Mul(r))
	case BinaryDivide:
		return IntegerValue(l.Div(r))
	case BinaryMod:
		return IntegerValue(l.Mod(r))
	case BinaryAnd:
		return IntegerValue(l.And(r))
	case BinaryOr:
		return IntegerValue(l.Or(r))
	case BinaryXor:
		return IntegerValue(l.Xor(r))
	case BinaryXnor:
		return IntegerValue(l.Xnor(r))
	case BinaryEqual:
		return IntegerValue(svint.FromLogic(l.Eq(r)))
	case BinaryNotEqual:
		return IntegerValue(svint.FromLogic(l.Eq(r).Not()))
	case BinaryCaseEqual:
		return IntegerValue(svint.FromLogic(svint.FromBool(svint.ExactlyEqual(l, r))))
	case BinaryCaseNotEqual:
		return IntegerValue(svint.FromLogic(svint.FromBool(!svint.ExactlyEqual(l, r))))
	case BinaryGreaterEqual:
		return IntegerValue(svint.FromLogic(l.Ge(r)))
	case BinaryGreater:
		return IntegerValue(svint.FromLogic(l.Gt(r)))
	case BinaryLessEqual:
		return IntegerValue(svint.FromLogic(l.Le(r)))
	case BinaryLess:
		return IntegerValue(svint.FromLogic(l.Lt(r)))
	case BinaryShiftLeft, BinaryShiftRight:
		// The binder rejects shifts before they can get here.
		panic(fmt.Sprintf("eval: shift operator %s is not implemented for constant evaluation", op))
	default:
		panic(fmt.Sprintf("eval: unhandled binary operator %s", op))
	}
}

func (e *Evaluator) evaluateAssignment(expr *Assignment) ConstantValue {
	lvalue, ok := e.resolveLValue(expr.Target)
	if !ok {
		return ConstantValue{}
	}

	rvalue := e.Evaluate(expr.Value)
	if !rvalue.Valid {
		return ConstantValue{}
	}

	if expr.Op == Assign {
		lvalue.Store(rvalue)
		return lvalue.Load()
	}

	// Compound forms re-evaluate the target expression rather than reusing
	// a snapshot taken at resolve time.
	current := e.Evaluate(expr.Target)
	if !current.Valid {
		return ConstantValue{}
	}
	l, r := current.Integer, rvalue.Integer

	switch expr.Op {
	case AddAssign:
		lvalue.Store(e.applyBinary(BinaryAdd, l, r))
	case SubtractAssign:
		lvalue.Store(e.applyBinary(BinarySubtract, l, r))
	case MultiplyAssign:
		lvalue.Store(e.applyBinary(BinaryMultiply, l, r))
	case DivideAssign:
		lvalue.Store(e.applyBinary(BinaryDivide, l, r))
	case ModAssign:
		lvalue.Store(e.applyBinary(BinaryMod, l, r))
	case AndAssign:
		lvalue.Store(e.applyBinary(BinaryAnd, l, r))
	case OrAssign:
		lvalue.Store(e.applyBinary(BinaryOr, l, r))
	case XorAssign:
		lvalue.Store(e.applyBinary(BinaryXor, l, r))
	case ShiftLeftAssign, ShiftRightAssign:
		panic(fmt.Sprintf("eval: shift assignment %s is not implemented for constant evaluation", expr.Op))
	default:
		panic(fmt.Sprintf("eval: unhandled assignment operator %s", expr.Op))
	}

	return lvalue.Load()
}

func (e *Evaluator) evaluateCall(expr *Call) ConstantValue {
	if e.maxDepth > 0 && len(e.frames) > e.maxDepth {
		e.err = ErrMaxDepthExceeded
		return ConstantValue{}
	}

	// Bind every formal before the new frame becomes current, so argument
	// expressions run in the caller's frame and never see the callee's
	// partially-built bindings.
	sub := expr.Subroutine
	frame := newFrame(e.currentFrame())
	for i, formal := range sub.Arguments {
		frame.bind(formal, e.Evaluate(expr.Arguments[i]))
	}

	e.pushFrame(frame)
	defer e.popFrame()

	return e.Evaluate(sub.Body)
}

func (e *Evaluator) evaluateStatementList(stmt *StatementList) ConstantValue {
	// Only the first statement runs; control is not threaded through
	// sequential statements yet.
	// TODO: sequence the remaining statements and honor early returns.
	for _, item := range stmt.Statements {
		return e.Evaluate(item)
	}
	return ConstantValue{}
}

// resolveLValue resolves expr to a writable slot in the current frame.
// Only variable references are legal targets; resolution fails (without
// creating a binding) when the variable has never been bound.
func (e *Evaluator) resolveLValue(expr Node) (LValue, bool) {
	switch n := expr.(type) {
	case *VariableRef:
		frame := e.currentFrame()
		if _, ok := frame.lookup(n.Symbol); !ok {
			return LValue{}, false
		}
		return LValue{frame: frame, symbol: n.Symbol}, true
	default:
		panic(fmt.Sprintf("eval: %T is not a valid assignment target", expr))
	}
}

var ErrMaxDepthExceeded = errors.New("maximum call depth exceeded")
