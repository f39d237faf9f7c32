package maybe

// FromPtr converts a pointer into a container: nil maps to empty,
// anything else to a present container holding a copy of the pointee.
// A pointer to a nil-like value (say a *[]int pointing at a nil slice)
// also maps to empty, keeping the invariant that present containers
// never hold nil-like payloads.
func FromPtr[T any](ptr *T) Value[T] {
	if ptr == nil {
		return Empty[T]()
	}

	return OfNilable(*ptr)
}

// ToPtr returns a pointer to a copy of the held value, or nil for an
// empty container. Mutating the pointee leaves the container untouched.
func (m Value[T]) ToPtr() *T {
	if m.IsEmpty() {
		return nil
	}

	v := m.value
	return &v
}

// FromOk converts Go's comma-ok pair into a container, mirroring map
// lookups and type assertions:
//
//	v, ok := env["PORT"]
//	port := maybe.FromOk(v, ok).OrValue("8080")
//
// A false ok maps to empty, and so does a nil-like value.
func FromOk[T any](v T, ok bool) Value[T] {
	if !ok {
		return Empty[T]()
	}

	return OfNilable(v)
}
