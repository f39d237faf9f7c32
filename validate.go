package maybe

// Predicate is the test function consulted by Filter and by the
// conditional hooks.
type Predicate[T any] func(T) bool

// Validator returns a copy of the container with p attached as its
// validator. The validator is consulted only by IsTrue, IsFalse and
// Infer. Presence and value are untouched, so attaching a validator can
// be chained anywhere:
//
//	maybe.Of(total).
//		Validator(is.LessThan(limit)).
//		IsFalse(reject)
func (m Value[T]) Validator(p Predicate[T]) Value[T] {
	m.validator = p
	return m
}

// IsTrue invokes consumer with the held value when the attached
// validator holds for it, and returns the container for further
// chaining. On an empty container nothing happens, the validator is not
// even consulted. On a present container without a validator it panics
// with ErrNoValidator.
func (m Value[T]) IsTrue(consumer func(T)) Value[T] {
	return m.hook(true, consumer)
}

// IsFalse is the counterpart of IsTrue: consumer is invoked when the
// validator rejects the held value.
func (m Value[T]) IsFalse(consumer func(T)) Value[T] {
	return m.hook(false, consumer)
}

func (m Value[T]) hook(want bool, consumer func(T)) Value[T] {
	if m.IsEmpty() {
		return m
	}

	if m.validator == nil {
		panic(ErrNoValidator)
	}

	if m.validator(m.value) == want {
		consumer(m.value)
	}

	return m
}

// Infer evaluates the attached validator and wraps the result of the
// selected handler through OfNilable, collapsing nil-like results to the
// empty container just like Map.
//
// The exact contract:
//   - without a validator the result is empty; unlike IsTrue and
//     IsFalse, Infer does not panic.
//   - the validator runs against the held value even when the container
//     is empty; it then sees the zero value of T.
//   - a nil selected handler yields the empty container.
//
// The method keeps the element type; use the package level Infer to
// change it.
func (m Value[T]) Infer(onTrue, onFalse func() T) Value[T] {
	return Infer(m, onTrue, onFalse)
}

// Infer evaluates m's validator and wraps the selected handler's result.
// See the method form for the exact contract.
func Infer[T, R any](m Value[T], onTrue, onFalse func() R) Value[R] {
	if m.validator == nil {
		return Empty[R]()
	}

	handler := onFalse
	if m.validator(m.value) {
		handler = onTrue
	}

	if handler == nil {
		return Empty[R]()
	}

	return OfNilable(handler())
}
