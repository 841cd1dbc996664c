package circejackson

import (
	"math"

	"github.com/scala-steward/circe-jackson/node"
	"github.com/scala-steward/circe-jackson/value"
)

// ValueToNode converts a value-model tree to a node-model tree. It is
// total: every input yields a node, with numbers the node model cannot
// represent degrading to string nodes per the policy in numberToNode.
// Array order and object field order are preserved; should an object carry
// a duplicated key, the last value under it wins.
func ValueToNode(v *value.Value) *node.Node {
	switch v.Type {
	case value.NullType:
		return node.Null()
	case value.BoolType:
		return node.FromBool(v.Bool)
	case value.StringType:
		return node.FromString(v.Str)
	case value.NumberType:
		return numberToNode(v)
	case value.ArrayType:
		res := node.NewArray()
		for _, item := range v.Values {
			res.Append(ValueToNode(item))
		}
		return res
	case value.ObjectType:
		res := node.NewObject()
		for i := range v.Fields {
			res.SetField(v.Fields[i].Key, ValueToNode(v.Fields[i].Value))
		}
		return res
	}
	return node.Null()
}

// numberToNode applies the numeric policy, in priority order:
//
//  1. the NegativeZero sentinel (by identity) becomes Double -0.0, since
//     other paths would normalize the sign away;
//  2. Decimal and BigDecimal kinds become exact decimal nodes when the
//     text parses, falling back to a string node holding the canonical
//     text when the exponent is out of the node model's range;
//  3. Long, Double and Float map to their node sub-kinds directly;
//  4. everything else goes through the textual form: an exact decimal node
//     when it parses, the original text as a string node when it does not.
//
// The fallbacks absorb failure; this function never reports an error.
func numberToNode(v *value.Value) *node.Node {
	if v == value.NegativeZero {
		return node.FromDouble(math.Copysign(0, -1))
	}
	n := v.Num
	switch n.Kind {
	case value.DecimalKind, value.BigDecimalKind:
		d, err := node.ParseDecimal(n.Text)
		if err != nil {
			return node.FromString(n.String())
		}
		return node.FromDecimal(d)
	case value.LongKind:
		return node.FromLong(n.Int64)
	case value.DoubleKind:
		return node.FromDouble(n.Float64)
	case value.FloatKind:
		return node.FromFloat(n.Float32)
	default:
		text := n.String()
		d, err := node.ParseDecimal(text)
		if err != nil {
			return node.FromString(text)
		}
		return node.FromDecimal(d)
	}
}
