package node

import (
	"errors"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Decimal is an exact decimal: Unscaled * 10^(-Scale). The scale is 32-bit
// on purpose: that is the representable range of the node model, and
// numbers whose exponent falls outside it cannot become decimal nodes.
type Decimal struct {
	Unscaled *big.Int
	Scale    int32
}

// ParseDecimal parses text as an exact decimal. It returns ErrDecimalSyntax
// when text is not a decimal number and ErrDecimalRange when the exponent
// or resulting scale does not fit in 32 bits.
func ParseDecimal(text string) (*Decimal, error) {
	s := text
	neg := false
	switch {
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	case strings.HasPrefix(s, "-"):
		neg, s = true, s[1:]
	}
	mant := s
	expPart := ""
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		mant, expPart = s[:i], s[i+1:]
		if expPart == "" {
			return nil, ErrDecimalSyntax
		}
	}
	intPart, fracPart := mant, ""
	if i := strings.IndexByte(mant, '.'); i >= 0 {
		intPart, fracPart = mant[:i], mant[i+1:]
	}
	digits := intPart + fracPart
	if digits == "" || !allDigits(digits) {
		return nil, ErrDecimalSyntax
	}
	var exp int64
	if expPart != "" {
		var err error
		exp, err = strconv.ParseInt(expPart, 10, 64)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) && allDigits(strings.TrimLeft(expPart, "+-")) {
				return nil, ErrDecimalRange
			}
			return nil, ErrDecimalSyntax
		}
	}
	scale := int64(len(fracPart)) - exp
	if scale < math.MinInt32 || scale > math.MaxInt32 {
		return nil, ErrDecimalRange
	}
	unscaled, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return nil, ErrDecimalSyntax
	}
	if neg {
		unscaled.Neg(unscaled)
	}
	return &Decimal{Unscaled: unscaled, Scale: int32(scale)}, nil
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// String renders the decimal the way the node model's toolkit does: plain
// notation when the scale is non-negative and the adjusted exponent is at
// least -6, scientific notation otherwise.
func (d *Decimal) String() string {
	coeff := d.Unscaled.String()
	digits, neg := strings.CutPrefix(coeff, "-")
	adj := int64(len(digits)) - 1 - int64(d.Scale)

	var sb strings.Builder
	if neg {
		sb.WriteByte('-')
	}
	if d.Scale >= 0 && adj >= -6 {
		if d.Scale == 0 {
			return coeff
		}
		point := int64(len(digits)) - int64(d.Scale)
		if point <= 0 {
			sb.WriteString("0.")
			sb.WriteString(strings.Repeat("0", int(-point)))
			sb.WriteString(digits)
		} else {
			sb.WriteString(digits[:point])
			sb.WriteByte('.')
			sb.WriteString(digits[point:])
		}
		return sb.String()
	}
	sb.WriteString(digits[:1])
	if len(digits) > 1 {
		sb.WriteByte('.')
		sb.WriteString(digits[1:])
	}
	sb.WriteByte('E')
	if adj >= 0 {
		sb.WriteByte('+')
	}
	sb.WriteString(strconv.FormatInt(adj, 10))
	return sb.String()
}

func formatFloat(f float64, bitSize int) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'g', -1, bitSize)
	}
	v := strconv.FormatFloat(f, 'g', -1, bitSize)
	if !strings.ContainsAny(v, ".eE") {
		v += ".0"
	}
	return v
}
