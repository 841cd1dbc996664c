package node

import "strconv"

type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string
	Fields      []*Node
	Values      []*Node

	String string
	Bool   bool

	Int64   *int64
	Float64 *float64
	Float32 *float32
	Dec     *Decimal
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromLong(v int64) *Node {
	return &Node{Type: NumberType, Int64: &v}
}

func FromDouble(v float64) *Node {
	return &Node{Type: NumberType, Float64: &v}
}

func FromFloat(v float32) *Node {
	return &Node{Type: NumberType, Float32: &v}
}

func FromDecimal(d *Decimal) *Node {
	return &Node{Type: NumberType, Dec: d}
}

func NewArray() *Node {
	return &Node{Type: ArrayType}
}

func NewObject() *Node {
	return &Node{Type: ObjectType}
}

func FromSlice(vs []*Node) *Node {
	res := &Node{Type: ArrayType}
	for _, v := range vs {
		res.Append(v)
	}
	return res
}

// Append adds v to the end of an array node.
func (y *Node) Append(v *Node) {
	v.Parent = y
	v.ParentIndex = len(y.Values)
	y.Values = append(y.Values, v)
}

// SetField sets the value under key in an object node, preserving first
// insertion position. If the key is already present the old value is
// replaced, so the last value under a reused key wins.
func (y *Node) SetField(key string, v *Node) {
	for i := range y.Fields {
		if y.Fields[i].String == key {
			v.Parent = y
			v.ParentIndex = i
			v.ParentField = key
			y.Values[i] = v
			return
		}
	}
	i := len(y.Fields)
	yField := &Node{
		Parent:      y,
		ParentIndex: i,
		ParentField: key,
		Type:        StringType,
		String:      key,
	}
	v.Parent = y
	v.ParentIndex = i
	v.ParentField = key
	y.Fields = append(y.Fields, yField)
	y.Values = append(y.Values, v)
}

// Get returns the value under field of an object node, or nil.
func Get(y *Node, field string) *Node {
	n := len(y.Fields)
	for i := range n {
		if y.Fields[i].String == field {
			return y.Values[i]
		}
	}
	return nil
}

// IsIntegral reports whether y is a number of the integral class.
func (y *Node) IsIntegral() bool {
	return y.Type == NumberType && y.Int64 != nil
}

// IsFloatingPoint reports whether y is a number of the floating-point
// class. Exact decimals count as floating point: their textual form, not a
// native integer read, is what preserves them.
func (y *Node) IsFloatingPoint() bool {
	if y.Type != NumberType {
		return false
	}
	return y.Float64 != nil || y.Float32 != nil || y.Dec != nil
}

// NumberText returns the canonical textual form of a number node, or ""
// for non-numbers. Float forms always carry a fractional part or exponent,
// so -0.0 keeps its sign.
func (y *Node) NumberText() string {
	switch {
	case y.Type != NumberType:
		return ""
	case y.Int64 != nil:
		return strconv.FormatInt(*y.Int64, 10)
	case y.Float64 != nil:
		return formatFloat(*y.Float64, 64)
	case y.Float32 != nil:
		return formatFloat(float64(*y.Float32), 32)
	case y.Dec != nil:
		return y.Dec.String()
	}
	return ""
}

func (y *Node) Root() *Node {
	res := y
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}
