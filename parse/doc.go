// Package parse decodes JSON and YAML documents into node-model trees.
//
// JSON decoding walks the token stream directly rather than unmarshalling
// into maps, for two reasons: object field order must survive, and number
// tokens must reach the node model as their original digit runs. Integers
// that fit int64 become Long nodes, other exact decimals become Decimal
// nodes, and only numbers the decimal form cannot hold fall back to
// Double.
//
// The conversion core does not depend on this package; it exists for the
// CLI and for callers that start from bytes instead of trees.
package parse
