package extheap

import "sort"

// sortDescending sorts elems in place, largest first, using less as the
// strict less-than order over T (elems[i] < elems[j] iff less(elems[i],
// elems[j])).
func sortDescending[T any](elems []T, less func(a, b T) bool) {
	sort.Slice(elems, func(i, j int) bool {
		return less(elems[j], elems[i])
	})
}
