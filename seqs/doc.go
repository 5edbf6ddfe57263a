/*
Package seqs provides lazy, re-iterable sequences built from pull-based cursors.

A [Sequence] is anything that can hand out a fresh [Cursor] on demand. Every adapter in this
package wraps one or more sequences and returns a [Seq], which is itself a Sequence, so adapters
compose freely:

	evens := seqs.Filter(seqs.Iota(0), func(v int) bool { return v%2 == 0 })
	for v := range seqs.Take(evens, 3).Values() {
		fmt.Println(v) // 0, 2, 4
	}

It includes:

  - **Sources**: [Of], [FromSlice], [FromIter], [Iota], [Range], [Repeat], [Empty].
  - **Transformations**: [Map], [Filter], [Reject], [Each], [Zip], [Enumerate], [FlatMap], [Scan].
  - **Flow Control**: [Take], [Drop], [TakeWhile], [TakeUntil], [DropWhile], [DropUntil].
  - **Grouping**: [Batch], [Cycle], [Partition], [Concat], [Distinct].
  - **Slicing**: [Slice] with Python-like start:stop:step semantics, see [SliceSpec].
  - **Sinks**: [Collect], [Reduce], [First], [Last], [Count], [Sum], [Min], [Max].

# Laziness

Nothing is pulled from a source until a cursor's HasNext or Next is called. Each call to
Cursor creates independent state, so two cursors on the same Seq never observe each other.
Infinite sources such as [Iota] and [Cycle] are safe as long as the consumer stops pulling.

# Errors

Invalid construction arguments (negative counts, a zero slice step, nil callbacks) panic with
an error wrapping [ErrInvalidArgument]. Next on an exhausted cursor returns [ErrExhausted], and
Remove returns [ErrUnsupported] on cursors that cannot map removal onto their source.

Cursors are not safe for concurrent use. Sequences are.
*/
package seqs
