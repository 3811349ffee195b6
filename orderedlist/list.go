package orderedlist

import (
	"cmp"
	"encoding/json"
	"fmt"
	"hash"
	"iter"

	"github.com/amp-labs/amp-lists/assert"
	"github.com/amp-labs/amp-lists/compare"
	"github.com/amp-labs/amp-lists/hashing"
)

// Sequence is anything that can be walked from head to tail.
type Sequence[T any] interface {
	// Seq returns a finite, restartable iterator over the elements.
	Seq() iter.Seq[T]
}

// List is a collection kept in non-decreasing order. It is implemented by
// *OrderedList and by the decorators in this package.
type List[T any] interface {
	Sequence[T]

	// Insert adds a value after every element that is less than or equal to it.
	Insert(value T)

	// InsertAll inserts each value in turn.
	InsertAll(values ...T)

	// RemoveFirst removes the first element equal to value. Reports whether
	// an element was removed; a missing value is not an error.
	RemoveFirst(value T) bool

	// MergeFrom inserts every element of other, in other's order. The other
	// sequence is never modified.
	MergeFrom(other Sequence[T])

	// Contains reports whether an element equal to value is present.
	Contains(value T) bool

	// Front returns the smallest element.
	Front() (T, bool)

	// Back returns the largest element.
	Back() (T, bool)

	// Len returns the number of elements.
	Len() int

	// IsEmpty reports whether the list has no elements.
	IsEmpty() bool

	// Clear removes every element.
	Clear()

	// Entries returns a copy of the elements, head to tail.
	Entries() []T

	// Equals reports whether other yields the same elements in the same order.
	Equals(other Sequence[T]) bool

	// String formats the elements like a slice, e.g. [1 2 3].
	String() string
}

type node[T any] struct {
	value T
	next  *node[T]
}

// OrderedList is a singly linked list whose elements are kept sorted by a
// comparator. See the package documentation for the zero value rules.
type OrderedList[T any] struct {
	head       *node[T]
	length     int
	comparator compare.Comparator[T]
}

var (
	_ List[int]                         = (*OrderedList[int])(nil)
	_ compare.Comparable[Sequence[int]] = (*OrderedList[int])(nil)
	_ hashing.Hashable                  = (*OrderedList[int])(nil)
	_ json.Marshaler                    = (*OrderedList[int])(nil)
	_ json.Unmarshaler                  = (*OrderedList[int])(nil)
)

// New creates an empty list ordered by the natural ordering of T.
func New[T cmp.Ordered]() *OrderedList[T] {
	return &OrderedList[T]{comparator: compare.Ordered[T]()}
}

// NewWithComparator creates an empty list ordered by the given comparator.
// The comparator must describe a total order; a nil comparator panics.
func NewWithComparator[T any](c compare.Comparator[T]) *OrderedList[T] {
	if c == nil {
		panic(ErrNilComparator)
	}

	return &OrderedList[T]{comparator: c}
}

// NewSortable creates an empty list ordered by the elements' own LessThan and Equals.
func NewSortable[T compare.Sortable[T]]() *OrderedList[T] {
	return &OrderedList[T]{comparator: compare.FromSortable[T]()}
}

// Of creates a naturally ordered list holding the given values.
func Of[T cmp.Ordered](values ...T) *OrderedList[T] {
	l := New[T]()
	l.InsertAll(values...)

	return l
}

// Insert places value immediately before the first element strictly greater
// than it, which puts it at the end of its equal-run.
func (l *OrderedList[T]) Insert(value T) {
	l.ensureComparator()

	created := &node[T]{value: value}

	if l.head == nil || l.comparator(value, l.head.value) < 0 {
		created.next = l.head
		l.head = created
	} else {
		prev := l.head
		for prev.next != nil && l.comparator(prev.next.value, value) <= 0 {
			prev = prev.next
		}

		created.next = prev.next
		prev.next = created
	}

	if assert.Enabled {
		assert.True(created.next == nil || l.comparator(value, created.next.value) < 0,
			"orderedlist: %v inserted before a smaller or equal element", value)
	}

	l.length++
}

// InsertAll inserts each value in turn.
func (l *OrderedList[T]) InsertAll(values ...T) {
	for _, value := range values {
		l.Insert(value)
	}
}

// RemoveFirst unlinks the first node whose element equals value.
func (l *OrderedList[T]) RemoveFirst(value T) bool {
	for link := &l.head; *link != nil; link = &(*link).next {
		order := l.comparator((*link).value, value)
		if order > 0 {
			// everything from here on is greater
			return false
		}

		if order == 0 {
			removed := *link
			*link = removed.next
			removed.next = nil
			l.length--

			return true
		}
	}

	return false
}

// MergeFrom inserts every element of other through Insert. The elements are
// read from a snapshot, so merging a list into itself doubles every element.
func (l *OrderedList[T]) MergeFrom(other Sequence[T]) {
	if other == nil {
		return
	}

	for value := range other.Seq() {
		l.Insert(value)
	}
}

// Contains reports whether an element equal to value is present.
func (l *OrderedList[T]) Contains(value T) bool {
	for current := l.head; current != nil; current = current.next {
		order := l.comparator(current.value, value)
		if order == 0 {
			return true
		}

		if order > 0 {
			return false
		}
	}

	return false
}

// Front returns the smallest element.
func (l *OrderedList[T]) Front() (T, bool) {
	if l.head == nil {
		var zero T

		return zero, false
	}

	return l.head.value, true
}

// Back returns the largest element. The list keeps no tail pointer, so this walks the chain.
func (l *OrderedList[T]) Back() (T, bool) {
	if l.head == nil {
		var zero T

		return zero, false
	}

	current := l.head
	for current.next != nil {
		current = current.next
	}

	return current.value, true
}

// Len returns the number of elements. A nil list is empty.
func (l *OrderedList[T]) Len() int {
	if l == nil {
		return 0
	}

	return l.length
}

func (l *OrderedList[T]) IsEmpty() bool {
	return l.Len() == 0
}

// Clear releases the chain one node at a time, never recursively.
func (l *OrderedList[T]) Clear() {
	for l.head != nil {
		next := l.head.next
		l.head.next = nil
		l.head = next
	}

	l.length = 0
}

// Entries returns a copy of the elements, head to tail. Never nil; a nil
// list yields an empty slice, so a nil *OrderedList can be merged or
// compared like an empty one.
func (l *OrderedList[T]) Entries() []T {
	if l == nil {
		return []T{}
	}

	items := make([]T, 0, l.length)

	for current := l.head; current != nil; current = current.next {
		items = append(items, current.value)
	}

	return items
}

// Seq returns an iterator over the elements as they were when Seq was
// called. Later mutations of the list are not visible to it, and it can be
// ranged over any number of times.
func (l *OrderedList[T]) Seq() iter.Seq[T] {
	return snapshot[T](l.Entries()).Seq()
}

// Equals reports whether other yields exactly the elements of l, in order,
// using l's comparator for element equality.
func (l *OrderedList[T]) Equals(other Sequence[T]) bool {
	if other == nil {
		return false
	}

	current := l.head

	for value := range other.Seq() {
		if current == nil || l.comparator(current.value, value) != 0 {
			return false
		}

		current = current.next
	}

	return current == nil
}

func (l *OrderedList[T]) String() string {
	return fmt.Sprint(l.Entries())
}

// UpdateHash writes the JSON encoding of the list into h, so that two lists
// holding the same elements in the same order hash identically.
func (l *OrderedList[T]) UpdateHash(h hash.Hash) error {
	data, err := l.MarshalJSON()
	if err != nil {
		return err
	}

	_, err = h.Write(data)

	return err
}

// ensureComparator resolves the comparator of a zero value list. Only
// mutating operations call it; a list with elements always has one.
func (l *OrderedList[T]) ensureComparator() {
	if err := l.resolveComparator(); err != nil {
		panic(err)
	}
}

func (l *OrderedList[T]) resolveComparator() error {
	if l.comparator != nil {
		return nil
	}

	c, ok := defaultComparator[T]()
	if !ok {
		return fmt.Errorf("%w: %T", ErrNoComparator, *new(T))
	}

	l.comparator = c

	return nil
}

// defaultComparator finds an ordering for T without help from the caller:
// built-in ordered types use their natural order, Sortable types their own methods.
func defaultComparator[T any]() (compare.Comparator[T], bool) {
	var zero T

	var c any

	switch any(zero).(type) {
	case int:
		c = compare.Ordered[int]()
	case int8:
		c = compare.Ordered[int8]()
	case int16:
		c = compare.Ordered[int16]()
	case int32:
		c = compare.Ordered[int32]()
	case int64:
		c = compare.Ordered[int64]()
	case uint:
		c = compare.Ordered[uint]()
	case uint8:
		c = compare.Ordered[uint8]()
	case uint16:
		c = compare.Ordered[uint16]()
	case uint32:
		c = compare.Ordered[uint32]()
	case uint64:
		c = compare.Ordered[uint64]()
	case uintptr:
		c = compare.Ordered[uintptr]()
	case float32:
		c = compare.Ordered[float32]()
	case float64:
		c = compare.Ordered[float64]()
	case string:
		c = compare.Ordered[string]()
	case compare.Sortable[T]:
		c = compare.Comparator[T](func(a, b T) int {
			sortable := any(a).(compare.Sortable[T]) //nolint:forcetypeassert

			switch {
			case sortable.Equals(b):
				return 0
			case sortable.LessThan(b):
				return -1
			default:
				return 1
			}
		})
	default:
		return nil, false
	}

	typed, ok := c.(compare.Comparator[T])

	return typed, ok
}

// snapshot is a frozen, already ordered copy of a list's elements.
type snapshot[T any] []T

func (s snapshot[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, value := range s {
			if !yield(value) {
				return
			}
		}
	}
}
