// Package is provides small curried predicates for use with the Filter,
// Validator and Infer operations of the maybe package:
//
//	maybe.Of(n).Filter(is.LessThan(10))
package is

import "cmp"

// EqualTo matches values equal to want.
func EqualTo[T comparable](want T) func(T) bool {
	return func(value T) bool {
		return value == want
	}
}

// OneOf matches values equal to any of the given candidates.
func OneOf[T comparable](candidates ...T) func(T) bool {
	return func(value T) bool {
		for _, candidate := range candidates {
			if value == candidate {
				return true
			}
		}

		return false
	}
}

// Zero matches the zero value of T.
func Zero[T comparable]() func(T) bool {
	var zero T
	return EqualTo(zero)
}

// NotZero matches everything but the zero value of T.
func NotZero[T comparable]() func(T) bool {
	return Not(Zero[T]())
}

// LessThan matches values strictly below limit.
func LessThan[T cmp.Ordered](limit T) func(T) bool {
	return func(value T) bool {
		return value < limit
	}
}

// GreaterThan matches values strictly above limit.
func GreaterThan[T cmp.Ordered](limit T) func(T) bool {
	return func(value T) bool {
		return value > limit
	}
}

// Not inverts the given predicate.
func Not[T any](p func(T) bool) func(T) bool {
	return func(value T) bool {
		return !p(value)
	}
}

// All matches values that every given predicate matches.
func All[T any](ps ...func(T) bool) func(T) bool {
	return func(value T) bool {
		for _, p := range ps {
			if !p(value) {
				return false
			}
		}

		return true
	}
}

// Any matches values that at least one of the given predicates matches.
func Any[T any](ps ...func(T) bool) func(T) bool {
	return func(value T) bool {
		for _, p := range ps {
			if p(value) {
				return true
			}
		}

		return false
	}
}
