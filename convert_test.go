package circejackson

import (
	"math"
	"math/big"
	"testing"

	"github.com/scala-steward/circe-jackson/node"
	"github.com/scala-steward/circe-jackson/value"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestScalarRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		v    *value.Value
	}{
		{"null", value.Null()},
		{"true", value.FromBool(true)},
		{"false", value.FromBool(false)},
		{"string", value.FromString("hello")},
		{"empty string", value.FromString("")},
		{"unicode string", value.FromString("héllo \x00 world")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NodeToValue(ValueToNode(tt.v))
			if d := cmp.Diff(tt.v, got); d != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", d)
			}
		})
	}
}

func TestStructuralRoundTrip(t *testing.T) {
	v := value.FromFields([]value.Field{
		{Key: "items", Value: value.FromSlice([]*value.Value{
			value.FromBool(true),
			value.Null(),
			value.FromString("x"),
		})},
		{Key: "empty", Value: value.FromSlice(nil)},
		{Key: "nested", Value: value.FromFields([]value.Field{
			{Key: "inner", Value: value.FromString("y")},
		})},
	})
	got := NodeToValue(ValueToNode(v))
	// Shape equality: an empty array is an empty array whether its slice
	// is nil or allocated.
	if d := cmp.Diff(v, got, cmpopts.EquateEmpty()); d != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", d)
	}
}

func TestKeyOrderPreserved(t *testing.T) {
	v := value.FromFields([]value.Field{
		{Key: "b", Value: value.FromString("1")},
		{Key: "a", Value: value.FromString("2")},
		{Key: "c", Value: value.FromString("3")},
	})
	got := NodeToValue(ValueToNode(v))
	keys := make([]string, len(got.Fields))
	for i := range got.Fields {
		keys[i] = got.Fields[i].Key
	}
	if len(keys) != 3 || keys[0] != "b" || keys[1] != "a" || keys[2] != "c" {
		t.Errorf("key order = %v, want [b a c]", keys)
	}
}

func TestNegativeZero(t *testing.T) {
	neg := ValueToNode(value.FromDouble(math.Copysign(0, -1)))
	if neg.Type != node.NumberType || neg.Float64 == nil {
		t.Fatalf("ValueToNode(-0.0) = %v, want a double node", neg)
	}
	if got := neg.NumberText(); got != "-0.0" {
		t.Errorf("NumberText() = %q, want %q", got, "-0.0")
	}
	pos := ValueToNode(value.FromDouble(0))
	if got := pos.NumberText(); got != "0.0" {
		t.Errorf("NumberText() = %q, want %q", got, "0.0")
	}
}

func TestLongFidelity(t *testing.T) {
	for _, x := range []int64{0, 1, -1, math.MaxInt64, math.MinInt64} {
		y := ValueToNode(value.FromLong(x))
		if !y.IsIntegral() {
			t.Fatalf("ValueToNode(Long(%d)) is not integral", x)
		}
		got := NodeToValue(y)
		if got.Num == nil || got.Num.Kind != value.BigIntKind {
			t.Fatalf("NodeToValue of integral node = %v, want big integer", got)
		}
		if got.Num.BigInt.Cmp(big.NewInt(x)) != 0 {
			t.Errorf("round trip of %d = %s", x, got.Num.BigInt)
		}
	}
}

func TestDecimalFidelity(t *testing.T) {
	const text = "123456789123456789.123456789"
	y := ValueToNode(value.FromDecimal(text))
	if y.Type != node.NumberType || y.Dec == nil {
		t.Fatalf("ValueToNode(Decimal) = %v, want a decimal node", y)
	}
	if got := y.NumberText(); got != text {
		t.Errorf("NumberText() = %q, want %q", got, text)
	}
	got := NodeToValue(y)
	if got.Num == nil || got.Num.Kind != value.DecimalKind {
		t.Fatalf("NodeToValue of decimal node = %v, want decimal value", got)
	}
	if got.Num.Text != text {
		t.Errorf("digit run = %q, want %q", got.Num.Text, text)
	}
}

func TestBigIntThroughDecimal(t *testing.T) {
	digits := "123456789123456789123456789"
	n, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		t.Fatal("bad literal")
	}
	y := ValueToNode(value.FromBigInt(n))
	if y.Type != node.NumberType || y.Dec == nil {
		t.Fatalf("ValueToNode(BigInt) = %v, want a decimal node", y)
	}
	if got := y.NumberText(); got != digits {
		t.Errorf("NumberText() = %q, want %q", got, digits)
	}
}

func TestFloatBecomesDecimalText(t *testing.T) {
	got := NodeToValue(ValueToNode(value.FromFloat(1.5)))
	if got.Num == nil || got.Num.Kind != value.DecimalKind {
		t.Fatalf("NodeToValue(Float node) = %v, want decimal value", got)
	}
	if got.Num.Text != "1.5" {
		t.Errorf("text = %q, want %q", got.Num.Text, "1.5")
	}
}

func TestOverflowFallsBackToString(t *testing.T) {
	const text = "1E+2147483649"
	y := ValueToNode(value.FromBigDecimal(text))
	if y.Type != node.StringType || y.String != text {
		t.Fatalf("ValueToNode(overflowing decimal) = %v, want string node %q", y, text)
	}
	// The return trip does not re-parse: the asymmetry is documented
	// behavior.
	back := NodeToValue(y)
	if back.Type != value.StringType || back.Str != text {
		t.Errorf("NodeToValue(fallback string) = %v, want string value", back)
	}
}

func TestUnknownNodeKind(t *testing.T) {
	got := NodeToValue(&node.Node{Type: node.Type(42)})
	if got.Type != value.NullType {
		t.Errorf("NodeToValue(unknown kind) = %v, want null", got)
	}
	empty := NodeToValue(&node.Node{Type: node.NumberType})
	if empty.Type != value.NullType {
		t.Errorf("NodeToValue(number without payload) = %v, want null", empty)
	}
}

func TestSafeDepth(t *testing.T) {
	const depth = 1000
	v := value.FromString("leaf")
	for range depth {
		v = value.FromSlice([]*value.Value{v})
	}
	got := NodeToValue(ValueToNode(v))
	for range depth {
		if got.Type != value.ArrayType || len(got.Values) != 1 {
			t.Fatalf("lost shape on the way down")
		}
		got = got.Values[0]
	}
	if got.Type != value.StringType || got.Str != "leaf" {
		t.Errorf("leaf = %v, want string \"leaf\"", got)
	}
}
