package morse

import "sort"

// unitHistory is the bounded sequence of accepted unit lengths
// (spec.md 3, "Unit History"). Its arithmetic mean is the decoder's
// "current unit"; it stays unset until the first valid clustering.
type unitHistory struct {
	values   []float64
	capacity int
}

func newUnitHistory(capacity int) *unitHistory {
	return &unitHistory{capacity: capacity}
}

func (h *unitHistory) add(u float64) {
	if len(h.values) >= h.capacity {
		copy(h.values, h.values[1:])
		h.values = h.values[:len(h.values)-1]
	}
	h.values = append(h.values, u)
}

// mean returns the current unit and whether it has been learned yet.
func (h *unitHistory) mean() (float64, bool) {
	if len(h.values) == 0 {
		return 0, false
	}
	var sum float64
	for _, v := range h.values {
		sum += v
	}
	return sum / float64(len(h.values)), true
}

// learnRatios updates cfg's per-tag running ratio means and the unit
// history from one accepted clustering (spec.md 4.E, "Ratio
// Learner"). Tags are assigned to the newly sorted centroids in
// ascending order; the smallest centroid becomes the new unit
// estimate.
func learnRatios(cfg *WindowConfig, centroids []float64, hist *unitHistory) float64 {
	tags := cfg.orderedTags()

	sorted := make([]float64, len(centroids))
	copy(sorted, centroids)
	sort.Float64s(sorted)

	u := sorted[0]
	for i, tag := range tags {
		if i >= len(sorted) {
			break
		}
		cfg.Ratios[tag].add(sorted[i] / u)
	}
	hist.add(u)
	return u
}
