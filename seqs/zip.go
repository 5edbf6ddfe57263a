package seqs

// Zip pairs up the elements of a and b, stopping as soon as either is exhausted.
func Zip[T1, T2 any](a Sequence[T1], b Sequence[T2]) Seq[Pair[T1, T2]] {
	mustSource("seqs.Zip", a)
	mustSource("seqs.Zip", b)
	return func() Cursor[Pair[T1, T2]] {
		return &zipCursor[T1, T2]{a: a.Cursor(), b: b.Cursor()}
	}
}

type zipCursor[T1, T2 any] struct {
	a Cursor[T1]
	b Cursor[T2]
}

func (c *zipCursor[T1, T2]) HasNext() bool {
	return c.a.HasNext() && c.b.HasNext()
}

func (c *zipCursor[T1, T2]) Next() (Pair[T1, T2], error) {
	if !c.HasNext() {
		return exhausted[Pair[T1, T2]]("seqs.Zip: Next")
	}
	v1, err := c.a.Next()
	if err != nil {
		return Pair[T1, T2]{}, err
	}
	v2, err := c.b.Next()
	if err != nil {
		return Pair[T1, T2]{}, err
	}
	return Pair[T1, T2]{V1: v1, V2: v2}, nil
}

func (c *zipCursor[T1, T2]) Remove() error {
	return unsupported("seqs.Zip: Remove")
}

// ZipLongest zips two sequences together.
// When one sequence is exhausted, it continues with the fill values.
// use fill1 and fill2 to fill in the missing values from a and b respectively.
func ZipLongest[T1, T2 any](a Sequence[T1], b Sequence[T2], fill1 T1, fill2 T2) Seq[Pair[T1, T2]] {
	mustSource("seqs.ZipLongest", a)
	mustSource("seqs.ZipLongest", b)
	return func() Cursor[Pair[T1, T2]] {
		ca, cb := a.Cursor(), b.Cursor()
		return newLookahead(func() (Pair[T1, T2], bool) {
			v1, ok1 := pull(ca)
			v2, ok2 := pull(cb)
			// all done
			if !ok1 && !ok2 {
				return Pair[T1, T2]{}, false
			}
			if !ok1 {
				v1 = fill1
			}
			if !ok2 {
				v2 = fill2
			}
			return Pair[T1, T2]{V1: v1, V2: v2}, true
		})
	}
}

// Zip3 is Zip over three sequences.
func Zip3[T1, T2, T3 any](a Sequence[T1], b Sequence[T2], c Sequence[T3]) Seq[Triple[T1, T2, T3]] {
	mustSource("seqs.Zip3", c)
	return Map(Zip[Pair[T1, T2], T3](Zip(a, b), c), func(p Pair[Pair[T1, T2], T3]) Triple[T1, T2, T3] {
		return Triple[T1, T2, T3]{V1: p.V1.V1, V2: p.V1.V2, V3: p.V2}
	})
}

// Enumerate pairs every element of src with its zero-based position.
func Enumerate[T any](src Sequence[T]) Seq[Pair[int, T]] {
	mustSource("seqs.Enumerate", src)
	return Zip[int, T](Iota(0), src)
}
