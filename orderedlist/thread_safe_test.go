package orderedlist

import (
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewThreadSafe(t *testing.T) {
	t.Parallel()

	t.Run("nil returns nil", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, NewThreadSafe[int](nil))
	})

	t.Run("already thread safe returns as is", func(t *testing.T) {
		t.Parallel()

		safe := NewThreadSafe[int](New[int]())
		assert.Same(t, safe, NewThreadSafe(safe))
	})

	t.Run("keeps existing elements", func(t *testing.T) {
		t.Parallel()

		safe := NewThreadSafe[int](Of(2, 1))
		assert.Equal(t, 2, safe.Len())
		assert.Equal(t, []int{1, 2}, safe.Entries())
	})
}

func TestThreadSafeList_Operations(t *testing.T) {
	t.Parallel()

	safe := NewThreadSafe[int](New[int]())

	safe.InsertAll(5, 1, 3)
	safe.Insert(3)
	assert.Equal(t, 4, safe.Len())
	assert.Equal(t, "[1 3 3 5]", safe.String())

	assert.True(t, safe.RemoveFirst(3))
	assert.False(t, safe.RemoveFirst(42))
	assert.Equal(t, 3, safe.Len())

	assert.True(t, safe.Contains(5))
	assert.False(t, safe.IsEmpty())

	front, ok := safe.Front()
	require.True(t, ok)
	assert.Equal(t, 1, front)

	back, ok := safe.Back()
	require.True(t, ok)
	assert.Equal(t, 5, back)

	safe.MergeFrom(Of(2, 4))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, slices.Collect(safe.Seq()))
	assert.Equal(t, 5, safe.Len())
	assert.True(t, safe.Equals(Of(1, 2, 3, 4, 5)))
	assert.False(t, safe.Equals(nil))

	safe.MergeFrom(nil)
	assert.Equal(t, 5, safe.Len())

	safe.Clear()
	assert.True(t, safe.IsEmpty())
	assert.Empty(t, safe.Entries())
}

func TestThreadSafeList_MergeIntoEachOther(t *testing.T) {
	t.Parallel()

	first := NewThreadSafe[int](Of(1, 3))
	second := NewThreadSafe[int](Of(2, 4))

	var wg sync.WaitGroup

	// every merge grows the receiver, keep the round count small
	for range 5 {
		wg.Add(2)

		go func() {
			defer wg.Done()

			first.Equals(second)
			first.MergeFrom(second)
		}()

		go func() {
			defer wg.Done()

			second.Equals(first)
			second.MergeFrom(first)
		}()
	}

	wg.Wait()

	assert.True(t, slices.IsSorted(first.Entries()))
	assert.True(t, slices.IsSorted(second.Entries()))
}

func TestThreadSafeList_MergeIntoItself(t *testing.T) {
	t.Parallel()

	safe := NewThreadSafe[int](Of(1, 2))
	safe.MergeFrom(safe)

	assert.Equal(t, []int{1, 1, 2, 2}, safe.Entries())
	assert.True(t, safe.Equals(safe))
}

func TestThreadSafeList_LengthAfterPanic(t *testing.T) {
	t.Parallel()

	refuseThree := func(a, b int) int {
		if a == 3 || b == 3 {
			panic("three is not comparable")
		}

		return a - b
	}

	safe := NewThreadSafe[int](NewWithComparator(refuseThree))

	require.Panics(t, func() { safe.InsertAll(1, 2, 3) })
	assert.Equal(t, 2, safe.Len())
	assert.Equal(t, []int{1, 2}, safe.Entries())

	// The write lock was released by the panicking call.
	safe.Insert(4)
	assert.Equal(t, 3, safe.Len())
	assert.Equal(t, []int{1, 2, 4}, safe.Entries())
}

func TestThreadSafeList_Concurrent(t *testing.T) {
	t.Parallel()

	const (
		writers = 8
		perG    = 500
	)

	safe := NewThreadSafe[int](New[int]())

	var wg sync.WaitGroup

	for writer := range writers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for i := range perG {
				safe.Insert(writer*perG + i)
			}
		}()
	}

	for range writers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for range perG {
				_ = safe.Len()
				_ = safe.Contains(perG)

				entries := slices.Collect(safe.Seq())
				assert.True(t, slices.IsSorted(entries))
			}
		}()
	}

	wg.Wait()

	assert.Equal(t, writers*perG, safe.Len())
	assert.True(t, slices.IsSorted(safe.Entries()))

	for value := range writers * perG {
		if !assert.True(t, safe.Contains(value)) {
			break
		}
	}

	for value := range writers * perG {
		require.True(t, safe.RemoveFirst(value))
	}

	assert.True(t, safe.IsEmpty())
}
