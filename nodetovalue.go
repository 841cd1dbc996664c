package circejackson

import (
	"math/big"

	"github.com/scala-steward/circe-jackson/node"
	"github.com/scala-steward/circe-jackson/value"
)

// NodeToValue converts a node-model tree to a value-model tree. It is
// total: node kinds outside the closed set degrade to null values. Array
// order and object field order are preserved.
//
// Numbers branch on class, not sub-kind. Floating-point nodes are
// re-parsed from their canonical text into a string-backed decimal, which
// avoids the double-rounding that reading the native double and
// reformatting it would introduce. Integral nodes are read as
// arbitrary-precision integers.
//
// A string node produced by ValueToNode's numeric fallback stays a string
// here; the asymmetry is deliberate.
func NodeToValue(n *node.Node) *value.Value {
	switch n.Type {
	case node.NullType:
		return value.Null()
	case node.BoolType:
		return value.FromBool(n.Bool)
	case node.StringType:
		return value.FromString(n.String)
	case node.NumberType:
		switch {
		case n.IsFloatingPoint():
			return value.FromDecimal(n.NumberText())
		case n.IsIntegral():
			return value.FromBigInt(big.NewInt(*n.Int64))
		}
		return value.Null()
	case node.ArrayType:
		items := make([]*value.Value, len(n.Values))
		for i, item := range n.Values {
			items[i] = NodeToValue(item)
		}
		return value.FromSlice(items)
	case node.ObjectType:
		fields := make([]value.Field, len(n.Fields))
		for i := range n.Fields {
			fields[i] = value.Field{
				Key:   n.Fields[i].String,
				Value: NodeToValue(n.Values[i]),
			}
		}
		return value.FromFields(fields)
	}
	return value.Null()
}
