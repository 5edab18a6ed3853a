package svint_test

import (
	"testing"

	"svconst/pkg/svint"
)

func mustParse(t *testing.T, text string) svint.SVInt {
	t.Helper()
	v, err := svint.ParseLiteral(text)
	if err != nil {
		t.Fatalf("ParseLiteral(%q): %v", text, err)
	}
	return v
}

func TestLogicTables(t *testing.T) {
	tests := []struct {
		name string
		got  svint.Logic
		want svint.Logic
	}{
		{"not 0", svint.Lo.Not(), svint.Hi},
		{"not 1", svint.Hi.Not(), svint.Lo},
		{"not x", svint.X.Not(), svint.X},
		{"not z", svint.Z.Not(), svint.X},

		{"0 and x", svint.Lo.And(svint.X), svint.Lo},
		{"1 and x", svint.Hi.And(svint.X), svint.X},
		{"1 and 1", svint.Hi.And(svint.Hi), svint.Hi},
		{"z and 0", svint.Z.And(svint.Lo), svint.Lo},

		{"1 or x", svint.Hi.Or(svint.X), svint.Hi},
		{"0 or x", svint.Lo.Or(svint.X), svint.X},
		{"0 or 0", svint.Lo.Or(svint.Lo), svint.Lo},
		{"z or 1", svint.Z.Or(svint.Hi), svint.Hi},

		{"1 xor 0", svint.Hi.Xor(svint.Lo), svint.Hi},
		{"1 xor 1", svint.Hi.Xor(svint.Hi), svint.Lo},
		{"1 xor x", svint.Hi.Xor(svint.X), svint.X},
		{"0 xor z", svint.Lo.Xor(svint.Z), svint.X},
	}

	for _, test := range tests {
		if test.got != test.want {
			t.Errorf("%s: expected %s, got %s", test.name, test.want, test.got)
		}
	}
}

func TestParseLiteral(t *testing.T) {
	tests := []struct {
		input       string
		expected    string
		description string
	}{
		{"42", "42", "plain decimal"},
		{"1_000", "1000", "decimal with separator"},
		{"8'hff", "255", "sized hex"},
		{"8'shff", "-1", "signed hex wraps to -1"},
		{"'o17", "15", "unsized octal"},
		{"6'd10", "10", "sized decimal"},
		{"3'b101", "5", "sized binary"},
		{"2'b1111", "3", "oversized digits truncate"},
		{"4'b10x0", "4'b10x0", "x digit survives"},
		{"1'bx", "1'bx", "single unknown bit"},
		{"12'hz", "12'bzzzzzzzzzzzz", "leading z extends"},
		{"6'bx0", "6'bxxxxx0", "leading x extends"},
		{"4'dx", "4'bxxxx", "decimal x"},
	}

	for _, test := range tests {
		v, err := svint.ParseLiteral(test.input)
		if err != nil {
			t.Errorf("Input %s (%s): unexpected error %v", test.input, test.description, err)
			continue
		}
		if got := v.String(); got != test.expected {
			t.Errorf("Input %s (%s): expected %s, got %s", test.input, test.description, test.expected, got)
		}
	}
}

func TestParseLiteralErrors(t *testing.T) {
	tests := []struct {
		input       string
		description string
	}{
		{"", "empty"},
		{"abc", "not a number"},
		{"8'", "truncated"},
		{"8'q0", "unknown base"},
		{"0'b1", "zero size"},
		{"8'b2", "digit out of base"},
		{"8'dxz", "mixed unknown decimal"},
	}

	for _, test := range tests {
		if _, err := svint.ParseLiteral(test.input); err == nil {
			t.Errorf("Input %q (%s): expected error, got none", test.input, test.description)
		}
	}
}

func TestArithmetic(t *testing.T) {
	tests := []struct {
		a, op, b    string
		expected    string
		description string
	}{
		{"7", "+", "5", "12", "addition"},
		{"5", "-", "7", "-2", "subtraction below zero"},
		{"6", "*", "7", "42", "multiplication"},
		{"7", "/", "2", "3", "division truncates"},
		{"7", "%", "2", "1", "modulo"},
	}

	for _, test := range tests {
		a := mustParse(t, test.a)
		b := mustParse(t, test.b)

		var got svint.SVInt
		switch test.op {
		case "+":
			got = a.Add(b)
		case "-":
			got = a.Sub(b)
		case "*":
			got = a.Mul(b)
		case "/":
			got = a.Div(b)
		case "%":
			got = a.Mod(b)
		}

		if got.String() != test.expected {
			t.Errorf("%s %s %s (%s): expected %s, got %s",
				test.a, test.op, test.b, test.description, test.expected, got)
		}
	}
}

func TestSignedDivisionAndMod(t *testing.T) {
	minus7 := mustParse(t, "7").Neg()
	two := mustParse(t, "2")

	if got := minus7.Div(two).String(); got != "-3" {
		t.Errorf("-7 / 2: expected -3, got %s", got)
	}
	if got := minus7.Mod(two).String(); got != "-1" {
		t.Errorf("-7 %% 2: expected -1, got %s", got)
	}
}

func TestDivisionByZeroIsUnknown(t *testing.T) {
	a := mustParse(t, "7")
	zero := mustParse(t, "0")

	if !a.Div(zero).HasUnknown() {
		t.Error("7 / 0: expected an all-X result")
	}
	if !a.Mod(zero).HasUnknown() {
		t.Error("7 % 0: expected an all-X result")
	}
}

func TestUnknownPropagatesThroughArithmetic(t *testing.T) {
	u := mustParse(t, "8'b1010x010")
	v := mustParse(t, "8'd3")

	for name, got := range map[string]svint.SVInt{
		"add": u.Add(v),
		"sub": u.Sub(v),
		"mul": u.Mul(v),
		"neg": u.Neg(),
	} {
		if !got.HasUnknown() {
			t.Errorf("%s with unknown operand: expected unknown result, got %s", name, got)
		}
	}
}

func TestBitwise(t *testing.T) {
	tests := []struct {
		a, op, b    string
		expected    string
		description string
	}{
		{"4'b1100", "&", "4'b1010", "4'b1000", "and"},
		{"4'b1100", "|", "4'b1010", "4'b1110", "or"},
		{"4'b1100", "^", "4'b1010", "4'b0110", "xor"},
		{"4'b1100", "~^", "4'b1010", "4'b1001", "xnor"},
		{"4'b110x", "&", "4'b1011", "4'b100x", "and with x"},
		{"4'b010x", "|", "4'b1001", "4'b1101", "or: 1 dominates x"},
		{"4'b000x", "&", "4'b1110", "4'b0000", "and: 0 dominates x"},
	}

	for _, test := range tests {
		a := mustParse(t, test.a)
		b := mustParse(t, test.b)
		want := mustParse(t, test.expected)

		var got svint.SVInt
		switch test.op {
		case "&":
			got = a.And(b)
		case "|":
			got = a.Or(b)
		case "^":
			got = a.Xor(b)
		case "~^":
			got = a.Xnor(b)
		}

		if !svint.ExactlyEqual(got, want) {
			t.Errorf("%s %s %s (%s): expected %s, got %s",
				test.a, test.op, test.b, test.description, want, got)
		}
	}
}

func TestReductions(t *testing.T) {
	tests := []struct {
		input       string
		and, or, xo svint.Logic
		description string
	}{
		{"4'b1111", svint.Hi, svint.Hi, svint.Lo, "all ones"},
		{"4'b0000", svint.Lo, svint.Lo, svint.Lo, "all zeros"},
		{"4'b1010", svint.Lo, svint.Hi, svint.Lo, "even ones"},
		{"4'b0010", svint.Lo, svint.Hi, svint.Hi, "single one"},
		{"4'b1x11", svint.X, svint.Hi, svint.X, "x in the middle"},
		{"4'b0x00", svint.Lo, svint.X, svint.X, "x with zeros"},
	}

	for _, test := range tests {
		v := mustParse(t, test.input)
		if got := v.ReductionAnd(); got != test.and {
			t.Errorf("&%s (%s): expected %s, got %s", test.input, test.description, test.and, got)
		}
		if got := v.ReductionOr(); got != test.or {
			t.Errorf("|%s (%s): expected %s, got %s", test.input, test.description, test.or, got)
		}
		if got := v.ReductionXor(); got != test.xo {
			t.Errorf("^%s (%s): expected %s, got %s", test.input, test.description, test.xo, got)
		}
	}
}

func TestComparisons(t *testing.T) {
	one := mustParse(t, "1")
	two := mustParse(t, "2")

	if got := one.Lt(two); got != svint.Hi {
		t.Errorf("1 < 2: expected 1, got %s", got)
	}
	if got := two.Le(one); got != svint.Lo {
		t.Errorf("2 <= 1: expected 0, got %s", got)
	}
	if got := two.Eq(two); got != svint.Hi {
		t.Errorf("2 == 2: expected 1, got %s", got)
	}

	// signed comparison kicks in when both sides are signed
	minusOne := one.Neg()
	if got := minusOne.Lt(one); got != svint.Hi {
		t.Errorf("-1 < 1 (signed): expected 1, got %s", got)
	}

	// either side unsigned forces an unsigned comparison
	big := mustParse(t, "32'hffffffff")
	if got := big.Lt(one); got != svint.Lo {
		t.Errorf("32'hffffffff < 1 (unsigned): expected 0, got %s", got)
	}
}

func TestLogicalVsCaseEquality(t *testing.T) {
	u := mustParse(t, "8'b1010x010")

	if got := u.Eq(u); got != svint.X {
		t.Errorf("logical equality of an unknown value with itself: expected x, got %s", got)
	}
	if !svint.ExactlyEqual(u, u) {
		t.Error("case equality of an unknown value with itself: expected true")
	}

	a := mustParse(t, "8'd150")
	b := mustParse(t, "8'd150")
	if a.Eq(b) != svint.Hi || !svint.ExactlyEqual(a, b) {
		t.Error("fully defined equal values: both equality families must agree")
	}

	c := mustParse(t, "8'd151")
	if a.Eq(c) != svint.Lo || svint.ExactlyEqual(a, c) {
		t.Error("fully defined unequal values: both equality families must agree")
	}
}

func TestTruthCollapse(t *testing.T) {
	tests := []struct {
		input       string
		expected    svint.Logic
		description string
	}{
		{"4'b0000", svint.Lo, "all zero is false"},
		{"4'b0100", svint.Hi, "any one is true"},
		{"4'b1x00", svint.Hi, "a definite one dominates x"},
		{"4'b0x00", svint.X, "no ones with x is unknown"},
		{"4'bzzzz", svint.X, "all z is unknown"},
	}

	for _, test := range tests {
		v := mustParse(t, test.input)
		if got := v.Logical(); got != test.expected {
			t.Errorf("Logical(%s) (%s): expected %s, got %s", test.input, test.description, test.expected, got)
		}
	}

	if !mustParse(t, "4'b0100").IsTrue() {
		t.Error("IsTrue: expected definite true")
	}
	if mustParse(t, "4'b0x00").IsTrue() {
		t.Error("IsTrue: unknown truth must not count as true")
	}
}

func TestBitwiseNot(t *testing.T) {
	v := mustParse(t, "4'b10xz")
	want := mustParse(t, "4'b01xx")
	if got := v.Not(); !svint.ExactlyEqual(got, want) {
		t.Errorf("~4'b10xz: expected %s, got %s", want, got)
	}
}
