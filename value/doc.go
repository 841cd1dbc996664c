// Package value defines an immutable algebraic representation of JSON
// documents.
//
// # Overview
//
// A Value is a tagged union over the closed set of JSON variants: null,
// boolean, string, number, array and object. Objects keep their fields in
// insertion order. Values are built bottom-up through the constructor
// functions and must not be mutated after construction; everything else in
// this module relies on that.
//
// # Numbers
//
// Numbers carry their own tagged union, Number, whose kinds go beyond the
// usual int64/float64 pair:
//
//   - LongKind: 64-bit signed integer
//   - DoubleKind: IEEE-754 double
//   - FloatKind: IEEE-754 single
//   - BigIntKind: arbitrary-precision integer
//   - DecimalKind: exact decimal backed by its original digit run
//   - BigDecimalKind: arbitrary precision and scale, exponent possibly
//     beyond 32 bits, also string-backed
//
// The string-backed kinds exist so that digit sequences survive exactly,
// without being forced through a float64.
//
// # Negative zero
//
// NegativeZero is the one Value representing the float -0.0. It is a fixed
// instance compared by identity: several representation paths normalize the
// sign of zero away, so conversions that care about it check the pointer.
//
// # Thread safety
//
// Values are immutable after construction and safe for concurrent use.
package value
