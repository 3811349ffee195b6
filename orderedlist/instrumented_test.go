package orderedlist

import (
	"bytes"
	"log/slog"
	"slices"
	"testing"

	"github.com/google/uuid"
	"github.com/neilotoole/slogt"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInstrumented(t *testing.T) {
	t.Parallel()

	t.Run("nil returns nil", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, NewInstrumented[int](nil))
	})

	t.Run("gauge starts at the wrapped length", func(t *testing.T) {
		t.Parallel()

		name := t.Name()
		NewInstrumented[int](Of(1, 2, 3), WithName(name), WithLogger(slogt.New(t)))

		assert.InDelta(t, 3, testutil.ToFloat64(listElements.WithLabelValues(name)), 0)
	})

	t.Run("default name is a uuid", func(t *testing.T) {
		t.Parallel()

		o := newOptions(nil)

		_, err := uuid.Parse(o.name)
		require.NoError(t, err)
		assert.Same(t, slog.Default(), o.logger)
	})
}

func TestInstrumentedList_Metrics(t *testing.T) {
	t.Parallel()

	name := t.Name()
	l := NewInstrumented[int](New[int](), WithName(name), WithLogger(slogt.New(t)))

	l.Insert(5)
	l.InsertAll(1, 3)
	assert.True(t, l.RemoveFirst(3))
	assert.False(t, l.RemoveFirst(99))
	l.MergeFrom(Of(2, 4, 6))

	assert.Equal(t, []int{1, 2, 4, 5, 6}, l.Entries())

	assert.InDelta(t, 6, testutil.ToFloat64(listInserts.WithLabelValues(name)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(listRemovals.WithLabelValues(name)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(listRemoveMisses.WithLabelValues(name)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(listMerges.WithLabelValues(name)), 0)
	assert.InDelta(t, 5, testutil.ToFloat64(listElements.WithLabelValues(name)), 0)

	l.Clear()
	assert.InDelta(t, 0, testutil.ToFloat64(listElements.WithLabelValues(name)), 0)
}

func TestInstrumentedList_Logs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	l := NewInstrumented[int](New[int](), WithName("scores"), WithLogger(logger))

	l.Insert(7)
	l.RemoveFirst(8)

	out := buf.String()
	assert.Contains(t, out, "list=scores")
	assert.Contains(t, out, "op=insert value=7 len=1")
	assert.Contains(t, out, "op=remove_first value=8 removed=false len=1")
}

func TestInstrumentedList_PassThrough(t *testing.T) {
	t.Parallel()

	l := NewInstrumented[int](Of(3, 1, 2), WithName(t.Name()), WithLogger(slogt.New(t)))

	assert.Equal(t, 3, l.Len())
	assert.False(t, l.IsEmpty())
	assert.True(t, l.Contains(2))
	assert.Equal(t, "[1 2 3]", l.String())
	assert.Equal(t, []int{1, 2, 3}, slices.Collect(l.Seq()))
	assert.True(t, l.Equals(Of(1, 2, 3)))

	front, ok := l.Front()
	require.True(t, ok)
	assert.Equal(t, 1, front)

	back, ok := l.Back()
	require.True(t, ok)
	assert.Equal(t, 3, back)
}

func TestInstrumentedList_ThreadSafeOuter(t *testing.T) {
	t.Parallel()

	name := t.Name()
	l := NewThreadSafe(NewInstrumented[int](New[int](), WithName(name), WithLogger(slogt.New(t))))

	l.InsertAll(3, 2, 1)
	l.MergeFrom(l)

	assert.Equal(t, []int{1, 1, 2, 2, 3, 3}, l.Entries())
	assert.Equal(t, 6, l.Len())
	assert.InDelta(t, 6, testutil.ToFloat64(listInserts.WithLabelValues(name)), 0)
}

func TestForgetMetrics(t *testing.T) {
	t.Parallel()

	name := uuid.NewString()
	l := NewInstrumented[int](New[int](), WithName(name), WithLogger(slogt.New(t)))

	l.InsertAll(1, 2)
	l.RemoveFirst(1)
	l.RemoveFirst(9)
	l.MergeFrom(Of(3))
	require.InDelta(t, 2, testutil.ToFloat64(listElements.WithLabelValues(name)), 0)

	ForgetMetrics(name)

	// Every series is gone, so deleting again finds nothing.
	assert.False(t, listInserts.DeleteLabelValues(name))
	assert.False(t, listRemovals.DeleteLabelValues(name))
	assert.False(t, listRemoveMisses.DeleteLabelValues(name))
	assert.False(t, listMerges.DeleteLabelValues(name))
	assert.False(t, listElements.DeleteLabelValues(name))
}
