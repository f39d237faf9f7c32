package maybe

// IfPresent invokes consumer with the held value when the container is
// present.
func (m Value[T]) IfPresent(consumer func(T)) {
	if m.present {
		consumer(m.value)
	}
}

// IfEmpty invokes fn when the container is empty.
func (m Value[T]) IfEmpty(fn func()) {
	if !m.present {
		fn()
	}
}
