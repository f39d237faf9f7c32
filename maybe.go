// Package maybe implements a generic container for values that might not
// be there.
//
// A Value[T] is either present or empty. Transformations (Map, FlatMap,
// Filter) compose without presence checks at every step, extraction
// (MustGet, OrValue, OrGet, Values) decides what an empty container is
// worth, and the conditional hooks (Validator, IsTrue, IsFalse, Infer)
// run side effects gated by a predicate attached to the container.
//
//	maybe.OfNilable(lookup(id)).
//		Validator(is.GreaterThan(3)).
//		IsTrue(func(n int) { fmt.Println("accepted", n) }).
//		IsFalse(func(n int) { fmt.Println("rejected", n) })
package maybe

import (
	"fmt"

	"github.com/oliverbestmann/maybe/internal/refl"
)

// Value holds at most one value of type T. It is either present or
// empty, and that state is fixed at construction time. The zero value of
// Value is empty.
//
// Value is a plain value type: methods never modify their receiver and
// return updated copies where needed, so containers can be freely
// copied, embedded and shared.
type Value[T any] struct {
	value     T
	present   bool
	validator Predicate[T]
}

// Of wraps a value that must be there. It panics with ErrNilValue when v
// is nil-like, that is a nil interface or a nil pointer, slice, map,
// channel or function. Use OfNilable when absence is a legal input.
func Of[T any](v T) Value[T] {
	if refl.IsNil(v) {
		panic(ErrNilValue)
	}

	return Value[T]{value: v, present: true}
}

// OfNilable wraps a value that might not be there: nil-like values map
// to the empty container, everything else behaves like Of. Note that
// zero values are not nil-like, OfNilable(0) and OfNilable("") are
// present.
func OfNilable[T any](v T) Value[T] {
	if refl.IsNil(v) {
		return Empty[T]()
	}

	return Of(v)
}

// Empty returns an empty container for type T.
func Empty[T any]() Value[T] {
	return Value[T]{}
}

// IsPresent reports whether the container holds a value.
func (m Value[T]) IsPresent() bool {
	return m.present
}

// IsEmpty reports whether the container is empty.
func (m Value[T]) IsEmpty() bool {
	return !m.present
}

// Get returns the held value and whether it is present. On an empty
// container the first return is the zero value of T.
func (m Value[T]) Get() (T, bool) {
	return m.value, m.present
}

// MustGet returns the held value. It panics with ErrNoValue on an empty
// container; callers that cannot guarantee presence should prefer Get,
// OrValue or OrGet.
func (m Value[T]) MustGet() T {
	if m.IsEmpty() {
		panic(ErrNoValue)
	}

	return m.value
}

func (m Value[T]) String() string {
	if m.IsEmpty() {
		return "Empty"
	}

	return fmt.Sprintf("Of(%v)", m.value)
}
