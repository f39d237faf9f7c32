package maybe

// OrValue returns the held value if present, otherwise other. The
// fallback is an already-evaluated argument; use OrGet when producing it
// is expensive or has side effects.
func (m Value[T]) OrValue(other T) T {
	if m.present {
		return m.value
	}

	return other
}

// OrDefault returns the held value if present, otherwise the zero value
// of T.
func (m Value[T]) OrDefault() T {
	var zero T
	return m.OrValue(zero)
}

// OrGet returns the held value if present, otherwise the result of fn.
// fn is invoked only on an empty container.
func (m Value[T]) OrGet(fn func() T) T {
	if m.present {
		return m.value
	}

	return fn()
}

// Or returns the container itself if present, otherwise the container
// produced by fn. fn is invoked only on an empty container.
func (m Value[T]) Or(fn func() Value[T]) Value[T] {
	if m.present {
		return m
	}

	return fn()
}

// OrPanic returns the held value if present. On an empty container it
// panics with the error produced by fn, propagated exactly as returned.
func (m Value[T]) OrPanic(fn func() error) T {
	if m.IsEmpty() {
		panic(fn())
	}

	return m.value
}

// OkOr adapts the container to a regular Go return pair: the held value
// and nil if present, the zero value of T and err otherwise.
func (m Value[T]) OkOr(err error) (T, error) {
	if m.IsEmpty() {
		var zero T
		return zero, err
	}

	return m.value, nil
}
