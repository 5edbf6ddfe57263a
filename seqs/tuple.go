package seqs

import "fmt"

// Pair is the 2-tuple yielded by Zip and Enumerate.
type Pair[T1, T2 any] struct {
	V1 T1
	V2 T2
}

// MakePair builds a Pair.
func MakePair[T1, T2 any](v1 T1, v2 T2) Pair[T1, T2] {
	return Pair[T1, T2]{V1: v1, V2: v2}
}

// Unpack returns both values of p.
func (p Pair[T1, T2]) Unpack() (T1, T2) {
	return p.V1, p.V2
}

func (p Pair[T1, T2]) String() string {
	return fmt.Sprintf("(%v, %v)", p.V1, p.V2)
}

// Triple is the 3-tuple yielded by Zip3.
type Triple[T1, T2, T3 any] struct {
	V1 T1
	V2 T2
	V3 T3
}

func (t Triple[T1, T2, T3]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", t.V1, t.V2, t.V3)
}
