package math

import "golang.org/x/exp/constraints"

func IsPowerOfTwo[T constraints.Integer](n T) bool {
	return n > 0 && n&(n-1) == 0
}

// NextCapacity returns the capacity following n in a doubling sequence.
func NextCapacity[T constraints.Integer](n T) T {
	if n <= 0 {
		return 1
	}
	return n << 1
}
