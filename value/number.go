package value

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

type NumKind int

const (
	LongKind NumKind = iota
	DoubleKind
	FloatKind
	BigIntKind
	DecimalKind
	BigDecimalKind
)

func (k NumKind) String() string {
	s, ok := map[NumKind]string{
		LongKind:       "Long",
		DoubleKind:     "Double",
		FloatKind:      "Float",
		BigIntKind:     "BigInt",
		DecimalKind:    "Decimal",
		BigDecimalKind: "BigDecimal",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

// Number is the numeric payload of a Value. The Kind field selects which of
// the remaining fields holds the number.
type Number struct {
	Kind NumKind

	Int64   int64
	Float64 float64
	Float32 float32
	BigInt  *big.Int

	// Text holds the digit run for DecimalKind and BigDecimalKind.
	Text string
}

// NegativeZero is the sentinel for the float -0.0, compared by identity.
var NegativeZero = &Value{
	Type: NumberType,
	Num:  &Number{Kind: DoubleKind, Float64: math.Copysign(0, -1)},
}

// String returns the canonical textual form of the number. Floating-point
// values always carry a fractional part or an exponent, so the sign of
// zero survives ("-0.0").
func (n *Number) String() string {
	switch n.Kind {
	case LongKind:
		return strconv.FormatInt(n.Int64, 10)
	case DoubleKind:
		return FormatFloat(n.Float64, 64)
	case FloatKind:
		return FormatFloat(float64(n.Float32), 32)
	case BigIntKind:
		return n.BigInt.String()
	case DecimalKind, BigDecimalKind:
		return n.Text
	}
	return ""
}

// FormatFloat renders f in the shortest form that round-trips at the given
// bit size, always with a fractional part or exponent so the result cannot
// be mistaken for an integer. bitSize is 32 or 64.
func FormatFloat(f float64, bitSize int) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'g', -1, bitSize)
	}
	v := strconv.FormatFloat(f, 'g', -1, bitSize)
	if !strings.ContainsAny(v, ".eE") {
		v += ".0"
	}
	return v
}

func isNegZero(f float64) bool {
	return f == 0 && math.Signbit(f)
}
