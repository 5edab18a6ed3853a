package svint

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// DefaultWidth is the width of unsized literals, per the usual HDL rules.
const DefaultWidth = 32

// ParseLiteral parses an integer literal: a plain decimal ("42", signed,
// 32 bits wide) or a sized based literal ("8'b1010_xz01", "16'shff", "'o17").
// Underscores are digit separators. For based literals a leading x or z
// digit extends into the padding; otherwise values are zero-extended or
// truncated to the declared size.
func ParseLiteral(text string) (SVInt, error) {
	clean := strings.ReplaceAll(text, "_", "")
	if clean == "" {
		return SVInt{}, fmt.Errorf("empty literal")
	}

	tick := strings.IndexByte(clean, '\'')
	if tick < 0 {
		v, ok := new(big.Int).SetString(clean, 10)
		if !ok {
			return SVInt{}, fmt.Errorf("invalid decimal literal %q", text)
		}
		return FromBigInt(DefaultWidth, true, v), nil
	}

	width := DefaultWidth
	if tick > 0 {
		n, err := strconv.Atoi(clean[:tick])
		if err != nil || n < 1 {
			return SVInt{}, fmt.Errorf("invalid literal size in %q", text)
		}
		width = n
	}

	rest := clean[tick+1:]
	signed := false
	if len(rest) > 0 && (rest[0] == 's' || rest[0] == 'S') {
		signed = true
		rest = rest[1:]
	}
	if len(rest) < 2 {
		return SVInt{}, fmt.Errorf("truncated based literal %q", text)
	}

	base := rest[0]
	digits := strings.ToLower(rest[1:])

	switch base {
	case 'd', 'D':
		return parseDecimalBody(width, signed, digits, text)
	case 'b', 'B':
		return parseBaseBody(width, signed, digits, 1, text)
	case 'o', 'O':
		return parseBaseBody(width, signed, digits, 3, text)
	case 'h', 'H':
		return parseBaseBody(width, signed, digits, 4, text)
	default:
		return SVInt{}, fmt.Errorf("unknown base %q in literal %q", string(base), text)
	}
}

func parseDecimalBody(width int, signed bool, digits, text string) (SVInt, error) {
	switch digits {
	case "x":
		return AllX(width, signed), nil
	case "z":
		bits := make([]Logic, width)
		for i := range bits {
			bits[i] = Z
		}
		return SVInt{bits: bits, signed: signed}, nil
	}
	v, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return SVInt{}, fmt.Errorf("invalid decimal digits in %q", text)
	}
	return FromBigInt(width, signed, v), nil
}

func parseBaseBody(width int, signed bool, digits string, bitsPerDigit int, text string) (SVInt, error) {
	var raw []Logic // LSB first
	for i := len(digits) - 1; i >= 0; i-- {
		d := digits[i]
		switch {
		case d == 'x':
			for i := 0; i < bitsPerDigit; i++ {
				raw = append(raw, X)
			}
		case d == 'z' || d == '?':
			for i := 0; i < bitsPerDigit; i++ {
				raw = append(raw, Z)
			}
		default:
			v, err := strconv.ParseUint(string(d), 1<<uint(bitsPerDigit), 8)
			if err != nil {
				return SVInt{}, fmt.Errorf("invalid digit %q in literal %q", string(d), text)
			}
			for b := 0; b < bitsPerDigit; b++ {
				if v&(1<<uint(b)) != 0 {
					raw = append(raw, Hi)
				} else {
					raw = append(raw, Lo)
				}
			}
		}
	}
	if len(raw) == 0 {
		return SVInt{}, fmt.Errorf("empty digits in literal %q", text)
	}

	bits := make([]Logic, width)
	pad := Lo
	if top := raw[len(raw)-1]; top.IsUnknown() {
		pad = top
	}
	for i := range bits {
		if i < len(raw) {
			bits[i] = raw[i]
		} else {
			bits[i] = pad
		}
	}
	return SVInt{bits: bits, signed: signed}, nil
}
