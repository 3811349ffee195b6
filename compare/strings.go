package compare

import (
	"cmp"
	"sync"

	"facette.io/natsort"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Natural orders strings so that embedded numbers compare numerically,
// e.g. "file2" comes before "file10".
//
// natsort.Compare reports true for identical strings, so it is not a strict
// less-than and cannot go through FromLess. Strings natsort cannot tell apart
// (e.g. "a01" and "a1") fall back to byte order to keep the order total.
func Natural() Comparator[string] {
	return func(a, b string) int {
		if a == b {
			return 0
		}

		less, greater := natsort.Compare(a, b), natsort.Compare(b, a)

		switch {
		case less && !greater:
			return -1
		case greater && !less:
			return 1
		default:
			return cmp.Compare(a, b)
		}
	}
}

// Collated orders strings according to the collation rules of the given
// language (for instance language.Russian places "ё" right after "е").
// The returned comparator is safe for concurrent use.
func Collated(tag language.Tag, opts ...collate.Option) Comparator[string] {
	var mut sync.Mutex

	// A Collator keeps internal buffers and must not be shared between goroutines.
	coll := collate.New(tag, opts...)

	return func(a, b string) int {
		mut.Lock()
		defer mut.Unlock()

		return coll.CompareString(a, b)
	}
}
