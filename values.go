package maybe

import "iter"

// Values returns a lazy sequence over the container: it yields the held
// value exactly once on a present container and nothing on an empty one.
// Every call produces a fresh sequence.
func (m Value[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		if m.present {
			yield(m.value)
		}
	}
}

// ToSlice returns a slice holding the value as its only element, or an
// empty slice for an empty container.
func (m Value[T]) ToSlice() []T {
	if m.IsEmpty() {
		return []T{}
	}

	return []T{m.value}
}
