// Package xmath provides small generic integer helpers shared by the solutions.
package xmath

import "golang.org/x/exp/constraints"

// Abs returns the absolute value of x.
func Abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// AbsDiff returns |x - y|.
func AbsDiff[T constraints.Signed](x, y T) T {
	return Abs(x - y)
}

// GCD returns the greatest common divisor of a and b. GCD(0, 0) is 0.
func GCD[T constraints.Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

// LCM returns the least common multiple of all values. It returns 0 when
// values is empty or any value is 0.
func LCM[T constraints.Integer](values ...T) T {
	if len(values) == 0 {
		return 0
	}
	result := values[0]
	for _, v := range values[1:] {
		if result == 0 || v == 0 {
			return 0
		}
		result = result / GCD(result, v) * v
	}
	if result < 0 {
		return -result
	}
	return result
}

// Sum adds all values.
func Sum[T constraints.Integer | constraints.Float](values []T) T {
	var total T
	for _, v := range values {
		total += v
	}
	return total
}

// Product multiplies all values. The product of no values is 1.
func Product[T constraints.Integer | constraints.Float](values []T) T {
	total := T(1)
	for _, v := range values {
		total *= v
	}
	return total
}

// Min returns the smallest value and false when values is empty.
func Min[T constraints.Ordered](values []T) (T, bool) {
	var zero T
	if len(values) == 0 {
		return zero, false
	}
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m, true
}

// Max returns the largest value and false when values is empty.
func Max[T constraints.Ordered](values []T) (T, bool) {
	var zero T
	if len(values) == 0 {
		return zero, false
	}
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m, true
}
