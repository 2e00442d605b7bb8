package algoscalar

import "github.com/cwbudde/algo-scalar/internal/sctypes"

// Float is a type constraint for the supported real floating-point types.
// The canonical definition is in internal/sctypes.
type Float = sctypes.Float

// Complex is a type constraint for the supported complex floating-point types.
// The canonical definition is in internal/sctypes.
type Complex = sctypes.Complex

// Number is a type constraint for native numeric sources accepted by the
// cast constructors. The canonical definition is in internal/sctypes.
type Number = sctypes.Number
