package updater

import "sort"

// bestCandidate returns the entry in byKey with the highest confidence as
// reported by confidenceOf, breaking ties by the lowest key — matching the
// "lowest camera id wins" rule from a map whose iteration order Go does not
// guarantee.
func bestCandidate[T any](byKey map[int]T, confidenceOf func(T) float64) (T, bool) {
	var best T
	found := false

	keys := make([]int, 0, len(byKey))
	for k := range byKey {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	for _, k := range keys {
		v := byKey[k]
		if !found || confidenceOf(v) > confidenceOf(best) {
			best = v
			found = true
		}
	}
	return best, found
}
