package seqs

type lookState uint8

const (
	stateUnknown lookState = iota // nothing buffered, fetch on demand
	stateReady                    // next holds the element Next will return
	stateDone                     // fetch reported the end; never fetch again
)

// lookahead is the state machine behind every cursor whose HasNext has to pull
// from its source before it can answer. fetch is called at most once per element,
// and never again after it reports false.
type lookahead[T any] struct {
	fetch func() (T, bool)
	next  T
	state lookState
}

func (l *lookahead[T]) HasNext() bool {
	if l.state == stateUnknown {
		v, ok := l.fetch()
		if ok {
			l.next = v
			l.state = stateReady
		} else {
			l.state = stateDone
			// release whatever the closure captured
			l.fetch = nil
		}
	}
	return l.state == stateReady
}

func (l *lookahead[T]) Next() (T, error) {
	if !l.HasNext() {
		return exhausted[T]("seqs: Next")
	}
	v := l.next
	var zero T
	l.next = zero
	l.state = stateUnknown
	return v, nil
}

func (l *lookahead[T]) Remove() error {
	return unsupported("seqs: Remove")
}

// pending reports whether fetch ran since the last Next, meaning the source
// cursor has moved past the element Next returned.
func (l *lookahead[T]) pending() bool {
	return l.state != stateUnknown
}

func newLookahead[T any](fetch func() (T, bool)) *lookahead[T] {
	return &lookahead[T]{fetch: fetch}
}
