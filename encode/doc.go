// Package encode writes node-model trees as JSON text.
//
// # Usage
//
//	obj := node.NewObject()
//	obj.SetField("name", node.FromString("alice"))
//	obj.SetField("age", node.FromLong(30))
//	err := encode.Encode(obj, w)
//
//	// compact, one-line output
//	err := encode.Encode(obj, w, encode.EncodeWire(true))
//
//	// colored output for terminals
//	err := encode.Encode(obj, w, encode.EncodeColors(encode.NewColors()))
//
// Number nodes are written from their canonical text (node.NumberText), so
// the numeric policy that produced the node reaches the output unchanged.
package encode
