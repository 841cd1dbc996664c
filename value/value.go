package value

import "math/big"

// Value is a single JSON value. The Type field selects which payload field
// is meaningful. Values are immutable once constructed.
type Value struct {
	Type Type

	Bool   bool
	Str    string
	Num    *Number
	Values []*Value
	Fields []Field
}

// Field is one object member. Object field order is insertion order and is
// preserved by every transform in this module.
type Field struct {
	Key   string
	Value *Value
}

var nullValue = &Value{Type: NullType}

func Null() *Value {
	return nullValue
}

func FromBool(v bool) *Value {
	return &Value{Type: BoolType, Bool: v}
}

func FromString(v string) *Value {
	return &Value{Type: StringType, Str: v}
}

func FromLong(v int64) *Value {
	return &Value{Type: NumberType, Num: &Number{Kind: LongKind, Int64: v}}
}

// FromDouble returns the NegativeZero sentinel for -0.0 so that callers can
// recognize it by identity later.
func FromDouble(v float64) *Value {
	if isNegZero(v) {
		return NegativeZero
	}
	return &Value{Type: NumberType, Num: &Number{Kind: DoubleKind, Float64: v}}
}

func FromFloat(v float32) *Value {
	if isNegZero(float64(v)) {
		return NegativeZero
	}
	return &Value{Type: NumberType, Num: &Number{Kind: FloatKind, Float32: v}}
}

func FromBigInt(v *big.Int) *Value {
	return &Value{Type: NumberType, Num: &Number{Kind: BigIntKind, BigInt: v}}
}

// FromDecimal wraps an exact decimal given by its textual form, e.g.
// "123456789123456789.123456789". The digit run is kept verbatim.
func FromDecimal(text string) *Value {
	return &Value{Type: NumberType, Num: &Number{Kind: DecimalKind, Text: text}}
}

// FromBigDecimal is like FromDecimal for numbers whose exponent or scale
// may exceed what 32 bits can hold, e.g. "1E+2147483648".
func FromBigDecimal(text string) *Value {
	return &Value{Type: NumberType, Num: &Number{Kind: BigDecimalKind, Text: text}}
}

func FromNumber(n *Number) *Value {
	if n.Kind == DoubleKind && isNegZero(n.Float64) {
		return NegativeZero
	}
	return &Value{Type: NumberType, Num: n}
}

func FromSlice(vs []*Value) *Value {
	return &Value{Type: ArrayType, Values: vs}
}

func FromFields(fields []Field) *Value {
	return &Value{Type: ObjectType, Fields: fields}
}

// Get returns the value under field, or nil. Later duplicates shadow
// earlier ones, matching last-wins construction.
func Get(v *Value, field string) *Value {
	var res *Value
	for i := range v.Fields {
		if v.Fields[i].Key == field {
			res = v.Fields[i].Value
		}
	}
	return res
}
