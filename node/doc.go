// Package node provides the mutable tree-node representation of JSON
// documents that the conversion core targets.
//
// A Node is a recursive tagged union: the Type field selects the variant
// and the payload fields that apply. For ObjectType nodes, Fields[i] is the
// key node for the value at Values[i], so there are always as many fields
// as values, and field order is insertion order. Keys are string typed.
//
// Numbers are placed under exactly one of:
//
//   - Int64: 64-bit signed integer (the integral sub-kind)
//   - Float64: IEEE-754 double
//   - Float32: IEEE-754 single
//   - Dec: exact decimal with a big.Int unscaled value and a 32-bit scale
//
// IsIntegral and IsFloatingPoint report the numeric class; NumberText
// returns the canonical textual form of whichever payload is set.
//
// Nodes maintain parent backrefs (Parent, ParentIndex, ParentField) so a
// subtree can be navigated upward. Node structures are not thread-safe;
// clone or synchronize if you share them across goroutines.
package node
