package maybe

// Map applies fn to the held value and wraps the result through
// OfNilable, so a nil-like result collapses to the empty container. On
// an empty container fn is not invoked and the result is empty.
//
// The method keeps the element type; use the package level Map to change
// it.
func (m Value[T]) Map(fn func(T) T) Value[T] {
	return Map(m, fn)
}

// FlatMap applies fn to the held value and returns the produced
// container as is, leaving presence or absence up to fn. On an empty
// container fn is not invoked and the result is empty.
//
// The method keeps the element type; use the package level FlatMap to
// change it.
func (m Value[T]) FlatMap(fn func(T) Value[T]) Value[T] {
	return FlatMap(m, fn)
}

// Filter returns the container unchanged if it is empty or if p holds
// for the held value, and the empty container otherwise. p is not
// invoked on an empty container.
func (m Value[T]) Filter(p Predicate[T]) Value[T] {
	if m.IsEmpty() || p(m.value) {
		return m
	}

	return Empty[T]()
}

// Map transforms the value held by m with fn. The result is wrapped
// through OfNilable, so a nil-like result collapses to the empty
// container. An empty input stays empty and fn is not invoked.
func Map[T, R any](m Value[T], fn func(T) R) Value[R] {
	if m.IsEmpty() {
		return Empty[R]()
	}

	return OfNilable(fn(m.value))
}

// FlatMap transforms the value held by m with fn and returns the
// container produced by fn without rewrapping it.
func FlatMap[T, R any](m Value[T], fn func(T) Value[R]) Value[R] {
	if m.IsEmpty() {
		return Empty[R]()
	}

	return fn(m.value)
}

// Fold collapses m into a single value: onPresent applied to the held
// value, or the result of onEmpty.
func Fold[T, R any](m Value[T], onEmpty func() R, onPresent func(T) R) R {
	if m.IsEmpty() {
		return onEmpty()
	}

	return onPresent(m.value)
}
