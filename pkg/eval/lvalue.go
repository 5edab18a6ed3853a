package eval

// LValue is a writable reference to a variable slot in a specific frame.
// It does not own the slot: it is only valid for the evaluation step that
// produced it and must not be retained past the owning frame's lifetime.
type LValue struct {
	frame  *Frame
	symbol *VariableSymbol
}

// Load reads the slot's current value.
func (lv LValue) Load() ConstantValue {
	return lv.frame.temporaries[lv.symbol]
}

// Store overwrites the slot.
func (lv LValue) Store(v ConstantValue) {
	lv.frame.temporaries[lv.symbol] = v
}
