package extheap

// remerge reassigns the elements of l and s — where at least one has
// length blockCap and the combined length exceeds blockCap — so that newL
// holds the blockCap largest elements (sorted descending) and newS holds
// the remainder (also sorted descending), preserving the combined
// multiset. This is the invariant-restoring step behind both sift-up and
// sift-down: after a remerge, every element of newL dominates every
// element of newS.
//
// Implemented as a linear two-way merge of the two (already descending)
// inputs rather than concatenate-and-sort, since both sides arrive sorted.
func remerge[T any](l, s []T, blockCap int, less func(a, b T) bool) (newL, newS []T) {
	total := len(l) + len(s)
	merged := make([]T, 0, total)

	i, j := 0, 0
	for i < len(l) && j < len(s) {
		if less(l[i], s[j]) {
			merged = append(merged, s[j])
			j++
		} else {
			merged = append(merged, l[i])
			i++
		}
	}

	merged = append(merged, l[i:]...)
	merged = append(merged, s[j:]...)

	if len(merged) <= blockCap {
		return merged, merged[len(merged):len(merged)]
	}

	return merged[:blockCap:blockCap], merged[blockCap:total:total]
}
