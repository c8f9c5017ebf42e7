package grid

// Latest holds the newest sample of a rapidly changing input (container
// size, scroll position) until the next display tick takes it. Older samples
// are overwritten, so at most one recomputation happens per tick.
type Latest[T any] struct {
	value   T
	pending bool
}

// Set records v, replacing any sample not yet taken.
func (l *Latest[T]) Set(v T) {
	l.value = v
	l.pending = true
}

// Pending reports whether a sample is waiting.
func (l *Latest[T]) Pending() bool {
	return l.pending
}

// Peek returns the waiting sample without taking it.
func (l *Latest[T]) Peek() (T, bool) {
	return l.value, l.pending
}

// Take returns the waiting sample and clears it. ok is false when nothing
// was set since the last Take.
func (l *Latest[T]) Take() (v T, ok bool) {
	if !l.pending {
		var zero T
		return zero, false
	}
	l.pending = false
	return l.value, true
}
