package moremath

import "golang.org/x/exp/constraints"

// Signed is any signed integer or floating point type.
type Signed interface {
	constraints.Signed | constraints.Float
}

// Min returns the smallest value from its arguments; panics if called with no
// args.
func Min[T constraints.Ordered](vals ...T) T {
	min := vals[0]
	for i := 1; i < len(vals); i++ {
		if n := vals[i]; n < min {
			min = n
		}
	}
	return min
}

// Max returns the largest value from its arguments; panics if called with no
// args.
func Max[T constraints.Ordered](vals ...T) T {
	max := vals[0]
	for i := 1; i < len(vals); i++ {
		if n := vals[i]; n > max {
			max = n
		}
	}
	return max
}

// MinMax returns its two arguments ordered smallest first. If either is NaN
// the pair is returned as given.
func MinMax[T constraints.Ordered](a, b T) (T, T) {
	if b < a {
		return b, a
	}
	return a, b
}

// Sign returns -1, 1, or 0 if n is less than, greater than, or equal to 0
// respectively. NaN has sign 0.
func Sign[T Signed](n T) T {
	if n < 0 {
		return -1
	}
	if n > 0 {
		return 1
	}
	return 0
}
