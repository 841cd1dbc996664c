// Package circejackson transcodes JSON trees between the immutable value
// model (package value) and the mutable node model (package node).
//
// The tree-shape translation is the easy part: both directions preserve
// array order and object field order. The interesting part is the numeric
// policy. The two models disagree on how numbers are represented, so
// ValueToNode and NodeToValue follow a fixed priority table (documented on
// each function) that keeps the logical number intact even when the
// subtype cannot survive. Numbers the node model cannot encode at all are
// downgraded to string nodes holding their exact digits; that fallback is
// silent and deterministic, not an error, and the string is not re-parsed
// on the way back.
//
// Both conversions are pure recursive tree walks and safe for concurrent
// use on immutable inputs. Neither is stack-safe: recursion depth equals
// input nesting depth, and inputs deeper than the goroutine stack can grow
// will crash rather than return an error. That is a hard limit of the
// design, not a recoverable condition.
package circejackson
