package optional

import (
	"math"

	"golang.org/x/exp/constraints"
)

// SafeReciprocal is defined everywhere except at exactly zero.
func SafeReciprocal[F constraints.Float](x F) Optional[F] {
	if x == 0 {
		return NotValid[F]()
	}
	return Valid(1 / x)
}

// SafeRoot returns the principal square root of a non-negative x.
func SafeRoot[F constraints.Float](x F) Optional[F] {
	if x < 0 {
		return NotValid[F]()
	}
	return Valid(F(math.Sqrt(float64(x))))
}
