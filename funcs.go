package algoscalar

// Sum folds xs with Add, starting from the scalar zero value. An empty
// slice yields Zero. The peer type parameters cannot be inferred from the
// slice alone, so callers instantiate explicitly, for example
// Sum[Complex64, Real32, Complex64](xs).
func Sum[S Scalar[S, R, C], R, C any](xs []S) S {
	var token S

	acc := token.Zero()
	for _, x := range xs {
		acc = acc.Add(x)
	}

	return acc
}

// Prod folds xs with Mul, starting from the scalar one value. An empty
// slice yields One.
func Prod[S Scalar[S, R, C], R, C any](xs []S) S {
	var token S

	acc := token.One()
	for _, x := range xs {
		acc = acc.Mul(x)
	}

	return acc
}
