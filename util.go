package codingtree

import (
	mathbits "math/bits"
)

// addWeights returns a+b, and false if the sum does not fit in a uint64.
func addWeights(a, b uint64) (uint64, bool) {
	sum, carry := mathbits.Add64(a, b, 0)
	return sum, carry == 0
}
