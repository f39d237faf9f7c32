package maybe

import "errors"

// Panic values raised by operations on a Value. They are exported so
// recovering code can tell the failure modes apart with errors.Is.
var (
	// ErrNilValue is raised by Of when it is handed a nil-like payload.
	ErrNilValue = errors.New("maybe: nil value")

	// ErrNoValue is raised by MustGet on an empty container.
	ErrNoValue = errors.New("maybe: no value present")

	// ErrNoValidator is raised by IsTrue and IsFalse when a present
	// container has no validator attached.
	ErrNoValidator = errors.New("maybe: no validator attached")
)
