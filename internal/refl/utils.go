package refl

import "reflect"

// IsNil reports whether v is nil-like: a nil interface value, or a nil
// pointer, slice, map, channel or function boxed in one. Values of any
// other kind are never nil-like.
func IsNil(v any) bool {
	if v == nil {
		return true
	}

	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Interface,
		reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		return rv.IsNil()

	default:
		return false
	}
}
