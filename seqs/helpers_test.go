package seqs_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"seqkit/seqs"
)

// counted returns the integers 0..n-1 (endless when n < 0) and a counter of source pulls.
func counted(n int) (seqs.Seq[int], *int) {
	pulls := new(int)
	src := seqs.Map(seqs.Iota(0), func(v int) int {
		*pulls++
		return v
	})
	if n < 0 {
		return src, pulls
	}
	return seqs.Take(src, n), pulls
}

// requireInvalidArgument asserts that fn panics with an error wrapping ErrInvalidArgument.
func requireInvalidArgument(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.Truef(t, ok, "panic value %v is not an error", r)
		require.ErrorIs(t, err, seqs.ErrInvalidArgument)
	}()
	fn()
}

// drain pulls c to the end through Next alone, checking it ends with ErrExhausted.
func drain[T any](t *testing.T, c seqs.Cursor[T]) []T {
	t.Helper()
	var out []T
	for {
		v, err := c.Next()
		if err != nil {
			require.ErrorIs(t, err, seqs.ErrExhausted)
			return out
		}
		out = append(out, v)
	}
}
