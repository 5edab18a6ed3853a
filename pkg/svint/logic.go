package svint

// Logic is a single four-state bit: 0, 1, X (unknown) or Z (high impedance).
type Logic uint8

const (
	Lo Logic = iota
	Hi
	X
	Z
)

// IsUnknown reports whether the bit is X or Z.
func (l Logic) IsUnknown() bool {
	return l == X || l == Z
}

// Not inverts the bit. X and Z invert to X.
func (l Logic) Not() Logic {
	switch l {
	case Lo:
		return Hi
	case Hi:
		return Lo
	default:
		return X
	}
}

// And computes four-state AND: a 0 on either side dominates any unknown.
func (l Logic) And(o Logic) Logic {
	if l == Lo || o == Lo {
		return Lo
	}
	if l == Hi && o == Hi {
		return Hi
	}
	return X
}

// Or computes four-state OR: a 1 on either side dominates any unknown.
func (l Logic) Or(o Logic) Logic {
	if l == Hi || o == Hi {
		return Hi
	}
	if l == Lo && o == Lo {
		return Lo
	}
	return X
}

// Xor computes four-state XOR. Any unknown operand makes the result X.
func (l Logic) Xor(o Logic) Logic {
	if l.IsUnknown() || o.IsUnknown() {
		return X
	}
	if l != o {
		return Hi
	}
	return Lo
}

// FromBool converts a definite boolean to a Logic bit.
func FromBool(b bool) Logic {
	if b {
		return Hi
	}
	return Lo
}

// String returns the canonical digit for the bit.
func (l Logic) String() string {
	switch l {
	case Lo:
		return "0"
	case Hi:
		return "1"
	case Z:
		return "z"
	default:
		return "x"
	}
}
