package node

import "errors"

var (
	ErrDecimalSyntax = errors.New("invalid decimal syntax")
	ErrDecimalRange  = errors.New("decimal exponent out of range")
)
