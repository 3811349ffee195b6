package orderedlist

import (
	"iter"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// NewInstrumented wraps a list so that every mutation updates the package's
// prometheus metrics and emits a debug log line. Reads pass straight through.
// Series are labelled by the list's name and live until ForgetMetrics removes
// them, so unnamed short-lived lists grow the registry without bound.
//
// The wrapper adds no locking of its own. To share an instrumented list
// between goroutines, make the thread-safe wrapper the outer one:
//
//	l := orderedlist.NewThreadSafe(orderedlist.NewInstrumented(orderedlist.New[int]()))
func NewInstrumented[T any](l List[T], opts ...Option) List[T] {
	if l == nil {
		return nil
	}

	o := newOptions(opts)

	instrumented := &instrumentedList[T]{
		internal: l,
		logger:   o.logger.With("list", o.name),
		inserts:  listInserts.WithLabelValues(o.name),
		removals: listRemovals.WithLabelValues(o.name),
		misses:   listRemoveMisses.WithLabelValues(o.name),
		merges:   listMerges.WithLabelValues(o.name),
		elements: listElements.WithLabelValues(o.name),
	}

	instrumented.elements.Set(float64(l.Len()))

	return instrumented
}

type instrumentedList[T any] struct {
	internal List[T]
	logger   *slog.Logger

	inserts  prometheus.Counter
	removals prometheus.Counter
	misses   prometheus.Counter
	merges   prometheus.Counter
	elements prometheus.Gauge
}

func (i *instrumentedList[T]) Insert(value T) {
	i.internal.Insert(value)
	i.inserts.Inc()
	i.updateLength("insert", slog.Any("value", value))
}

func (i *instrumentedList[T]) InsertAll(values ...T) {
	i.internal.InsertAll(values...)
	i.inserts.Add(float64(len(values)))
	i.updateLength("insert_all", slog.Int("count", len(values)))
}

func (i *instrumentedList[T]) RemoveFirst(value T) bool {
	removed := i.internal.RemoveFirst(value)
	if removed {
		i.removals.Inc()
	} else {
		i.misses.Inc()
	}

	i.updateLength("remove_first", slog.Any("value", value), slog.Bool("removed", removed))

	return removed
}

func (i *instrumentedList[T]) MergeFrom(other Sequence[T]) {
	before := i.internal.Len()

	i.internal.MergeFrom(other)

	merged := i.internal.Len() - before

	i.merges.Inc()
	i.inserts.Add(float64(merged))
	i.updateLength("merge_from", slog.Int("merged", merged))
}

func (i *instrumentedList[T]) Clear() {
	i.internal.Clear()
	i.updateLength("clear")
}

func (i *instrumentedList[T]) updateLength(op string, attrs ...slog.Attr) {
	length := i.internal.Len()

	i.elements.Set(float64(length))

	args := make([]any, 0, len(attrs)+2) //nolint:mnd
	args = append(args, slog.String("op", op))

	for _, attr := range attrs {
		args = append(args, attr)
	}

	args = append(args, slog.Int("len", length))

	i.logger.Debug("ordered list mutated", args...)
}

func (i *instrumentedList[T]) Contains(value T) bool         { return i.internal.Contains(value) }
func (i *instrumentedList[T]) Front() (T, bool)              { return i.internal.Front() }
func (i *instrumentedList[T]) Back() (T, bool)               { return i.internal.Back() }
func (i *instrumentedList[T]) Len() int                      { return i.internal.Len() }
func (i *instrumentedList[T]) IsEmpty() bool                 { return i.internal.IsEmpty() }
func (i *instrumentedList[T]) Entries() []T                  { return i.internal.Entries() }
func (i *instrumentedList[T]) Seq() iter.Seq[T]              { return i.internal.Seq() }
func (i *instrumentedList[T]) Equals(other Sequence[T]) bool { return i.internal.Equals(other) }
func (i *instrumentedList[T]) String() string                { return i.internal.String() }
