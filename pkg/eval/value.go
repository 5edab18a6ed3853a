package eval

import "svconst/pkg/svint"

// ConstantValue is the result of a constant evaluation. The zero value is
// the "not a constant" sentinel: every evaluation path that receives it
// must forward it rather than fault.
type ConstantValue struct {
	Integer svint.SVInt
	Valid   bool
}

// IntegerValue wraps a four-state integer as a valid constant.
func IntegerValue(v svint.SVInt) ConstantValue {
	return ConstantValue{Integer: v, Valid: true}
}

// String renders the value, or a placeholder for the empty sentinel.
func (cv ConstantValue) String() string {
	if !cv.Valid {
		return "<not a constant>"
	}
	return cv.Integer.String()
}
