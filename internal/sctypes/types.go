package sctypes

import "golang.org/x/exp/constraints"

// Float is the type constraint for the supported real floating-point types.
// The tilde forms admit defined types whose underlying type is float32 or
// float64, so the public adapter types satisfy the constraint as well.
type Float interface {
	~float32 | ~float64
}

// Complex is the type constraint for the supported complex floating-point
// types.
type Complex interface {
	~complex64 | ~complex128
}

// Number permits any native integer or floating-point source for the
// numeric-cast constructors.
type Number interface {
	constraints.Integer | constraints.Float
}
