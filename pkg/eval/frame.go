package eval

import "fmt"

// Frame holds the variable bindings for one subroutine invocation (or the
// top-level context), chained to the caller's frame. A frame owns its
// bindings; they drop the moment the call that created the frame returns.
type Frame struct {
	temporaries map[*VariableSymbol]ConstantValue
	parent      *Frame
}

func newFrame(parent *Frame) *Frame {
	return &Frame{
		temporaries: make(map[*VariableSymbol]ConstantValue),
		parent:      parent,
	}
}

// bind creates the binding for sym. A symbol is bound at most once per
// frame; rebinding is a caller bug, not a runtime condition.
func (f *Frame) bind(sym *VariableSymbol, v ConstantValue) {
	if _, ok := f.temporaries[sym]; ok {
		panic(fmt.Sprintf("eval: variable %q bound twice in the same frame", sym.Name))
	}
	f.temporaries[sym] = v
}

// lookup reads the binding for sym in this frame only.
func (f *Frame) lookup(sym *VariableSymbol) (ConstantValue, bool) {
	v, ok := f.temporaries[sym]
	return v, ok
}
