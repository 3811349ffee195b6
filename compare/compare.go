// Package compare provides the ordering contracts used by the sorted collections
// in this module, along with helpers for building comparators.
package compare

import (
	"cmp"
)

// Comparable is a generic interface for types that can compare themselves for equality.
// Types implementing this interface must provide their own Equals method that determines
// whether two values are equal according to the type's semantics.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Sortable extends Comparable with an ordering. LessThan must describe a strict
// weak ordering that is consistent with Equals.
type Sortable[T any] interface {
	Comparable[T]

	LessThan(other T) bool
}

// Comparator returns a negative number when a < b, zero when a == b and a
// positive number when a > b.
type Comparator[T any] func(a, b T) int

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}

// Ordered returns the natural comparator for any cmp.Ordered type.
func Ordered[T cmp.Ordered]() Comparator[T] {
	return cmp.Compare[T]
}

// FromSortable builds a comparator out of a type's own LessThan and Equals methods.
//
// Example:
//
//	type Priority struct{ Level int }
//
//	func (p Priority) Equals(o Priority) bool   { return p.Level == o.Level }
//	func (p Priority) LessThan(o Priority) bool { return p.Level < o.Level }
//
//	c := compare.FromSortable[Priority]()
//	c(Priority{1}, Priority{2}) // -1
func FromSortable[T Sortable[T]]() Comparator[T] {
	return func(a, b T) int {
		switch {
		case a.Equals(b):
			return 0
		case a.LessThan(b):
			return -1
		default:
			return 1
		}
	}
}

// FromLess builds a comparator from a strict "less than" predicate.
// Two values are considered equal when neither is less than the other.
func FromLess[T any](less func(a, b T) bool) Comparator[T] {
	return func(a, b T) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		default:
			return 0
		}
	}
}

// Reverse flips the direction of a comparator.
func Reverse[T any](c Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		return c(b, a)
	}
}
