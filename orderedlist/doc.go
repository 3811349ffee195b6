// Package orderedlist provides a singly linked list that keeps its elements
// in non-decreasing order after every mutation.
//
// # Overview
//
// [OrderedList] supports ordered insertion, removal of the first matching
// element and merging another sequence by repeated insertion:
//
//	l := orderedlist.Of(1, 3, 5)
//	l.MergeFrom(orderedlist.Of(2, 4, 6))
//	fmt.Println(l) // [1 2 3 4 5 6]
//
// Elements that compare equal keep their insertion order: a new element is
// placed after the run of elements equal to it.
//
// # Ordering
//
// The zero value of OrderedList is ready to use for the built-in ordered
// types (integers, floats, strings) and for element types implementing
// [compare.Sortable]. Any other element type needs a comparator:
//
//	l := orderedlist.NewWithComparator(compare.Natural())
//	l.InsertAll("file10", "file2") // [file2 file10]
//
// # Cost
//
// Insert, RemoveFirst and Contains walk the chain and are O(n). MergeFrom
// inserts the other sequence one element at a time and costs O(m·(n+m));
// callers that need an O(n+m) merge of two sorted sequences should merge
// them directly.
//
// # Thread Safety
//
// OrderedList is not safe for concurrent use. Wrap it with [NewThreadSafe]
// when a list is shared between goroutines, and with [NewInstrumented] to
// export prometheus metrics and debug logs for every mutation.
package orderedlist
