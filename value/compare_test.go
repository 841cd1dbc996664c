package value

import (
	"math/big"
	"testing"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *Value
		expected int
	}{
		// Type Ranking: Null < Bool < Number < String < Array < Object
		{"Null < Bool", Null(), FromBool(false), -1},
		{"Bool < Number", FromBool(true), FromLong(1), -1},
		{"Number < String", FromLong(1), FromString("a"), -1},
		{"String < Array", FromString("a"), FromSlice(nil), -1},
		{"Array < Object", FromSlice(nil), FromFields(nil), -1},

		// Bool Comparison
		{"false < true", FromBool(false), FromBool(true), -1},
		{"true == true", FromBool(true), FromBool(true), 0},

		// Number Comparison: kinds rank Long < Double < Float < BigInt < Decimal
		{"Long < Double", FromLong(1), FromDouble(1.0), -1},
		{"Long < Long", FromLong(1), FromLong(2), -1},
		{"Double < Double", FromDouble(1.0), FromDouble(2.0), -1},
		{"BigInt < BigInt", FromBigInt(big.NewInt(1)), FromBigInt(big.NewInt(2)), -1},
		{"Decimal < Decimal", FromDecimal("1"), FromDecimal("2"), -1},

		// String Comparison
		{"String < String", FromString("a"), FromString("b"), -1},

		// Array Comparison
		{"Empty Array == Empty Array", FromSlice(nil), FromSlice(nil), 0},
		{"Short Array < Long Array", FromSlice([]*Value{FromLong(1)}), FromSlice([]*Value{FromLong(1), FromLong(2)}), -1},
		{"Array Element Comparison", FromSlice([]*Value{FromLong(1)}), FromSlice([]*Value{FromLong(2)}), -1},

		// Object Comparison
		{"Empty Object == Empty Object", FromFields(nil), FromFields(nil), 0},
		{"Object Key Comparison",
			FromFields([]Field{{Key: "a", Value: FromLong(1)}}),
			FromFields([]Field{{Key: "b", Value: FromLong(1)}}),
			-1},
		{"Object Value Comparison",
			FromFields([]Field{{Key: "a", Value: FromLong(1)}}),
			FromFields([]Field{{Key: "a", Value: FromLong(2)}}),
			-1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.expected {
				t.Errorf("Compare() = %v, want %v", got, tt.expected)
			}
			// Test symmetry
			if got := Compare(tt.b, tt.a); got != -tt.expected {
				t.Errorf("Compare(b, a) = %v, want %v", got, -tt.expected)
			}
		})
	}
}
