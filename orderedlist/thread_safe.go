package orderedlist

import (
	"iter"
	"slices"
	"sync"

	"go.uber.org/atomic"
)

// NewThreadSafe wraps an existing List implementation with thread-safe access using sync.RWMutex.
//
// Write operations (Insert, InsertAll, RemoveFirst, MergeFrom, Clear) acquire exclusive locks,
// while read operations (Contains, Front, Back, Entries, Seq, Equals, String) use shared read
// locks. Len never takes the lock; it reads a counter refreshed after every write.
//
// Example usage:
//
//	unsafeList := orderedlist.New[int]()
//	safeList := orderedlist.NewThreadSafe[int](unsafeList)
//	safeList.Insert(42) // thread-safe
func NewThreadSafe[T any](l List[T]) List[T] {
	if l == nil {
		return nil
	}

	tsl, ok := l.(*threadSafeList[T])
	if ok {
		// Already thread-safe, return as-is
		return tsl
	}

	wrapped := &threadSafeList[T]{
		internal: l,
	}

	wrapped.length.Store(int64(l.Len()))

	return wrapped
}

// threadSafeList is a decorator that wraps any List implementation with thread-safe access.
type threadSafeList[T any] struct {
	mutex    sync.RWMutex // Protects access to internal list
	length   atomic.Int64 // Mirror of internal.Len(), written under mutex
	internal List[T]      // Underlying list implementation
}

// refreshLength re-reads the length from the wrapped list. Callers hold the write lock.
func (t *threadSafeList[T]) refreshLength() {
	t.length.Store(int64(t.internal.Len()))
}

// Insert adds value under the exclusive write lock.
func (t *threadSafeList[T]) Insert(value T) {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	defer t.refreshLength()

	t.internal.Insert(value)
}

// InsertAll adds every value under one exclusive write lock.
func (t *threadSafeList[T]) InsertAll(values ...T) {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	defer t.refreshLength()

	t.internal.InsertAll(values...)
}

// RemoveFirst removes the first element equal to value under the exclusive write lock.
func (t *threadSafeList[T]) RemoveFirst(value T) bool {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	defer t.refreshLength()

	return t.internal.RemoveFirst(value)
}

// MergeFrom snapshots other before taking the write lock. Holding our lock
// while other takes its own would let two lists merging into each other deadlock.
func (t *threadSafeList[T]) MergeFrom(other Sequence[T]) {
	if other == nil {
		return
	}

	values := snapshot[T](slices.Collect(other.Seq()))

	t.mutex.Lock()
	defer t.mutex.Unlock()
	defer t.refreshLength()

	t.internal.MergeFrom(values)
}

// Clear empties the list under the exclusive write lock.
func (t *threadSafeList[T]) Clear() {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	defer t.refreshLength()

	t.internal.Clear()
}

// Contains reports membership under the shared read lock.
func (t *threadSafeList[T]) Contains(value T) bool {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.Contains(value)
}

// Front returns the smallest element under the shared read lock.
func (t *threadSafeList[T]) Front() (T, bool) {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.Front()
}

// Back returns the largest element under the shared read lock.
func (t *threadSafeList[T]) Back() (T, bool) {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.Back()
}

// Len reads the atomic length mirror and takes no lock.
func (t *threadSafeList[T]) Len() int {
	return int(t.length.Load())
}

// IsEmpty takes no lock, see Len.
func (t *threadSafeList[T]) IsEmpty() bool {
	return t.Len() == 0
}

// Entries copies the elements under the shared read lock.
func (t *threadSafeList[T]) Entries() []T {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.Entries()
}

// Seq returns an iterator over a snapshot taken under the read lock. The
// lock is released before the iterator is returned, so iteration never
// blocks writers and never observes later writes.
func (t *threadSafeList[T]) Seq() iter.Seq[T] {
	return snapshot[T](t.Entries()).Seq()
}

// Equals snapshots other before taking the read lock, for the same reason as MergeFrom.
func (t *threadSafeList[T]) Equals(other Sequence[T]) bool {
	if other == nil {
		return false
	}

	values := snapshot[T](slices.Collect(other.Seq()))

	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.Equals(values)
}

// String formats the list under the shared read lock.
func (t *threadSafeList[T]) String() string {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.String()
}
