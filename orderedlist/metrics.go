package orderedlist

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	listInserts = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "ordered_list_inserts_total",
		Help: "The total number of elements inserted, including merged elements",
	}, []string{"list"})

	listRemovals = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "ordered_list_removals_total",
		Help: "The total number of elements removed by value",
	}, []string{"list"})

	listRemoveMisses = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "ordered_list_remove_misses_total",
		Help: "The total number of removals that found no matching element",
	}, []string{"list"})

	listMerges = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "ordered_list_merges_total",
		Help: "The total number of merges into the list",
	}, []string{"list"})

	listElements = promauto.NewGaugeVec(prometheus.GaugeOpts{ //nolint:gochecknoglobals
		Name: "ordered_list_elements",
		Help: "The current number of elements in the list",
	}, []string{"list"})
)

// ForgetMetrics deletes every series labelled with the given list name.
// Call it once an instrumented list is discarded, otherwise its series stay
// in the registry for the life of the process.
func ForgetMetrics(name string) {
	listInserts.DeleteLabelValues(name)
	listRemovals.DeleteLabelValues(name)
	listRemoveMisses.DeleteLabelValues(name)
	listMerges.DeleteLabelValues(name)
	listElements.DeleteLabelValues(name)
}
