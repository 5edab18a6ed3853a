package svint

import (
	"fmt"
	"math/big"
	"strings"
)

// SVInt is an arbitrary-width four-state integer. Bits are stored LSB first.
// The zero value is not usable; construct through New or the From helpers.
type SVInt struct {
	bits   []Logic
	signed bool
}

// New creates a zero-filled value of the given width.
func New(width int, signed bool) SVInt {
	checkWidth(width)
	return SVInt{bits: make([]Logic, width), signed: signed}
}

// FromUint64 creates a value of the given width from the low bits of v.
func FromUint64(width int, signed bool, v uint64) SVInt {
	checkWidth(width)
	bits := make([]Logic, width)
	for i := range bits {
		if i < 64 && v&(1<<uint(i)) != 0 {
			bits[i] = Hi
		}
	}
	return SVInt{bits: bits, signed: signed}
}

// FromBigInt creates a value of the given width from v, wrapping modulo 2^width
// (two's complement for negative v).
func FromBigInt(width int, signed bool, v *big.Int) SVInt {
	checkWidth(width)
	mod := new(big.Int).Lsh(big.NewInt(1), uint(width))
	wrapped := new(big.Int).Mod(v, mod)
	bits := make([]Logic, width)
	for i := range bits {
		if wrapped.Bit(i) != 0 {
			bits[i] = Hi
		}
	}
	return SVInt{bits: bits, signed: signed}
}

// FromLogic creates the single-bit unsigned value holding l.
func FromLogic(l Logic) SVInt {
	return SVInt{bits: []Logic{l}, signed: false}
}

// FromBits creates a value from LSB-first bits. The slice is copied.
func FromBits(bits []Logic, signed bool) SVInt {
	checkWidth(len(bits))
	return SVInt{bits: append([]Logic(nil), bits...), signed: signed}
}

// AllX creates a value of the given width with every bit unknown.
func AllX(width int, signed bool) SVInt {
	checkWidth(width)
	bits := make([]Logic, width)
	for i := range bits {
		bits[i] = X
	}
	return SVInt{bits: bits, signed: signed}
}

func checkWidth(width int) {
	if width < 1 {
		panic(fmt.Sprintf("svint: invalid width %d", width))
	}
}

// Width returns the bit width of the value.
func (v SVInt) Width() int { return len(v.bits) }

// Signed reports whether the value is interpreted as two's complement.
func (v SVInt) Signed() bool { return v.signed }

// Bit returns the bit at position i (0 = LSB).
func (v SVInt) Bit(i int) Logic { return v.bits[i] }

// HasUnknown reports whether any bit is X or Z.
func (v SVInt) HasUnknown() bool {
	for _, b := range v.bits {
		if b.IsUnknown() {
			return true
		}
	}
	return false
}

// toBig interprets the bits as an integer. Two's complement when asSigned is
// set and the top bit is 1. The value must not contain unknown bits.
func (v SVInt) toBig(asSigned bool) *big.Int {
	raw := new(big.Int)
	for i, b := range v.bits {
		if b == Hi {
			raw.SetBit(raw, i, 1)
		}
	}
	if asSigned && v.bits[len(v.bits)-1] == Hi {
		mod := new(big.Int).Lsh(big.NewInt(1), uint(len(v.bits)))
		raw.Sub(raw, mod)
	}
	return raw
}

// extendTo widens the bits to the given width. Sign extension applies only
// when asSigned is set; unknown top bits always propagate into the padding.
func (v SVInt) extendTo(width int, asSigned bool) []Logic {
	if width <= len(v.bits) {
		return append([]Logic(nil), v.bits[:width]...)
	}
	bits := make([]Logic, width)
	copy(bits, v.bits)
	pad := Lo
	top := v.bits[len(v.bits)-1]
	if top.IsUnknown() || (asSigned && top == Hi) {
		pad = top
	}
	for i := len(v.bits); i < width; i++ {
		bits[i] = pad
	}
	return bits
}

// arith applies f to both operands interpreted at the common width and
// signedness. Any unknown operand bit makes the whole result X.
func arith(a, b SVInt, f func(x, y *big.Int) *big.Int) SVInt {
	width := max(a.Width(), b.Width())
	signed := a.signed && b.signed
	if a.HasUnknown() || b.HasUnknown() {
		return AllX(width, signed)
	}
	r := f(a.toBig(signed), b.toBig(signed))
	if r == nil {
		return AllX(width, signed)
	}
	return FromBigInt(width, signed, r)
}

// Add returns a + b.
func (a SVInt) Add(b SVInt) SVInt {
	return arith(a, b, func(x, y *big.Int) *big.Int { return new(big.Int).Add(x, y) })
}

// Sub returns a - b.
func (a SVInt) Sub(b SVInt) SVInt {
	return arith(a, b, func(x, y *big.Int) *big.Int { return new(big.Int).Sub(x, y) })
}

// Mul returns a * b.
func (a SVInt) Mul(b SVInt) SVInt {
	return arith(a, b, func(x, y *big.Int) *big.Int { return new(big.Int).Mul(x, y) })
}

// Div returns a / b, truncating toward zero. Division by zero yields all X.
func (a SVInt) Div(b SVInt) SVInt {
	return arith(a, b, func(x, y *big.Int) *big.Int {
		if y.Sign() == 0 {
			return nil
		}
		return new(big.Int).Quo(x, y)
	})
}

// Mod returns a % b with the sign of a. Modulo by zero yields all X.
func (a SVInt) Mod(b SVInt) SVInt {
	return arith(a, b, func(x, y *big.Int) *big.Int {
		if y.Sign() == 0 {
			return nil
		}
		return new(big.Int).Rem(x, y)
	})
}

// Neg returns -v at the same width and signedness.
func (v SVInt) Neg() SVInt {
	if v.HasUnknown() {
		return AllX(len(v.bits), v.signed)
	}
	return FromBigInt(len(v.bits), v.signed, new(big.Int).Neg(v.toBig(v.signed)))
}

// bitwise applies a per-bit operation over the extended operands.
func bitwise(a, b SVInt, f func(x, y Logic) Logic) SVInt {
	width := max(a.Width(), b.Width())
	signed := a.signed && b.signed
	ab := a.extendTo(width, signed)
	bb := b.extendTo(width, signed)
	bits := make([]Logic, width)
	for i := range bits {
		bits[i] = f(ab[i], bb[i])
	}
	return SVInt{bits: bits, signed: signed}
}

// And returns the bitwise AND of a and b.
func (a SVInt) And(b SVInt) SVInt {
	return bitwise(a, b, Logic.And)
}

// Or returns the bitwise OR of a and b.
func (a SVInt) Or(b SVInt) SVInt {
	return bitwise(a, b, Logic.Or)
}

// Xor returns the bitwise XOR of a and b.
func (a SVInt) Xor(b SVInt) SVInt {
	return bitwise(a, b, Logic.Xor)
}

// Xnor returns the bitwise XNOR of a and b.
func (a SVInt) Xnor(b SVInt) SVInt {
	return bitwise(a, b, func(x, y Logic) Logic { return x.Xor(y).Not() })
}

// Not returns the bitwise complement of v.
func (v SVInt) Not() SVInt {
	bits := make([]Logic, len(v.bits))
	for i, b := range v.bits {
		bits[i] = b.Not()
	}
	return SVInt{bits: bits, signed: v.signed}
}

// ReductionAnd collapses the vector with AND.
func (v SVInt) ReductionAnd() Logic {
	acc := v.bits[0]
	for _, b := range v.bits[1:] {
		acc = acc.And(b)
	}
	return acc
}

// ReductionOr collapses the vector with OR.
func (v SVInt) ReductionOr() Logic {
	acc := v.bits[0]
	for _, b := range v.bits[1:] {
		acc = acc.Or(b)
	}
	return acc
}

// ReductionXor collapses the vector with XOR.
func (v SVInt) ReductionXor() Logic {
	acc := v.bits[0]
	for _, b := range v.bits[1:] {
		acc = acc.Xor(b)
	}
	return acc
}

// Eq is logical equality: X when either operand contains unknown bits.
func (a SVInt) Eq(b SVInt) Logic {
	if a.HasUnknown() || b.HasUnknown() {
		return X
	}
	signed := a.signed && b.signed
	return FromBool(a.toBig(signed).Cmp(b.toBig(signed)) == 0)
}

// Lt is the four-state less-than comparison.
func (a SVInt) Lt(b SVInt) Logic {
	return a.compare(b, func(c int) bool { return c < 0 })
}

// Le is the four-state less-or-equal comparison.
func (a SVInt) Le(b SVInt) Logic {
	return a.compare(b, func(c int) bool { return c <= 0 })
}

// Gt is the four-state greater-than comparison.
func (a SVInt) Gt(b SVInt) Logic {
	return a.compare(b, func(c int) bool { return c > 0 })
}

// Ge is the four-state greater-or-equal comparison.
func (a SVInt) Ge(b SVInt) Logic {
	return a.compare(b, func(c int) bool { return c >= 0 })
}

func (a SVInt) compare(b SVInt, f func(c int) bool) Logic {
	if a.HasUnknown() || b.HasUnknown() {
		return X
	}
	signed := a.signed && b.signed
	return FromBool(f(a.toBig(signed).Cmp(b.toBig(signed))))
}

// ExactlyEqual is case equality: an exact structural bit match, including X
// and Z positions, always yielding a definite result.
func ExactlyEqual(a, b SVInt) bool {
	width := max(a.Width(), b.Width())
	ab := a.extendTo(width, a.signed)
	bb := b.extendTo(width, b.signed)
	for i := range ab {
		if ab[i] != bb[i] {
			return false
		}
	}
	return true
}

// Logical collapses the value to a single truth bit: 1 if any bit is 1,
// 0 if every bit is 0, X otherwise.
func (v SVInt) Logical() Logic {
	unknown := false
	for _, b := range v.bits {
		if b == Hi {
			return Hi
		}
		if b.IsUnknown() {
			unknown = true
		}
	}
	if unknown {
		return X
	}
	return Lo
}

// LogicalNot returns the negated truth bit.
func (v SVInt) LogicalNot() Logic {
	return v.Logical().Not()
}

// IsTrue reports whether the value collapses to a definite true.
func (v SVInt) IsTrue() bool {
	return v.Logical() == Hi
}

// String renders fully-defined values in decimal and anything containing
// X or Z as a sized binary literal.
func (v SVInt) String() string {
	if !v.HasUnknown() {
		return v.toBig(v.signed).String()
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d'b", len(v.bits))
	for i := len(v.bits) - 1; i >= 0; i-- {
		sb.WriteString(v.bits[i].String())
	}
	return sb.String()
}
