package math

import "golang.org/x/exp/constraints"

type Numeric interface {
	constraints.Integer | constraints.Float
}

func Min[T Numeric](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func Max[T Numeric](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Clamp limits value to the [min, max] range.
func Clamp[T Numeric](value, min, max T) T {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
