package seqs

import "golang.org/x/exp/constraints"

// Number is any integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum adds up the elements of src. An empty src sums to zero.
func Sum[T Number](src Sequence[T]) T {
	var total T
	for v := range Values(src) {
		total += v
	}
	return total
}

// Min returns the smallest element of src, or false if src is empty.
func Min[T Number](src Sequence[T]) (T, bool) {
	var min T
	first := true
	for v := range Values(src) {
		if first || v < min {
			min = v
			first = false
		}
	}
	return min, !first
}

// Max returns the largest element of src, or false if src is empty.
func Max[T Number](src Sequence[T]) (T, bool) {
	var max T
	first := true
	for v := range Values(src) {
		if first || v > max {
			max = v
			first = false
		}
	}
	return max, !first
}
