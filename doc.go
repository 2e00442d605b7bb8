// Package algoscalar defines a unified capability contract for real and
// complex floating-point scalars, so numeric algorithms can be written once
// and instantiated over float32, float64, complex64 and complex128.
//
// The contract is the generic Scalar interface. Its three type parameters
// encode the associated-type relationships between a scalar and its peers:
// S is the scalar itself, R its real peer and C its complex peer. Peers are
// component-width preserving, so Real32 pairs with Complex64 and Real64
// with Complex128. The Real interface refines Scalar for real-only
// instantiations with a total order and the IEEE-754 limit and constant
// catalogue for the bit width.
//
// Four adapter types satisfy the contract by delegating to the native
// float and complex libraries: Real32, Real64, Complex64 and Complex128.
// All operations are pure value-receiver functions and total — domain and
// range issues propagate as IEEE-754 special values, never as panics.
// Only the numeric-cast constructors can fail, reporting representability
// with an ok result.
package algoscalar
