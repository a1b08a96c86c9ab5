package morse

// classifyWindow assigns each cluster centroid the tag whose learned
// ratio mean is numerically closest, then emits a Symbol for every
// duration in window[offset:], advancing offset to the full label
// count (spec.md 4.F, "Symbol Classifier").
func classifyWindow(cfg *WindowConfig, w *Window, centroids []float64, labels []int) []Symbol {
	u := centroids[0]
	for _, c := range centroids[1:] {
		if c < u {
			u = c
		}
	}
	if u <= 0 {
		u = 1
	}

	tagForCluster := make([]SymbolTag, len(centroids))
	for c, centroid := range centroids {
		ratio := centroid / u
		tagForCluster[c] = nearestTag(cfg, ratio)
	}

	durations := w.Values()
	offset := w.Offset()
	if offset > len(labels) {
		offset = len(labels)
	}

	symbols := make([]Symbol, 0, len(labels)-offset)
	for i := offset; i < len(labels) && i < len(durations); i++ {
		symbols = append(symbols, Symbol{
			Tag:      tagForCluster[labels[i]],
			Duration: durations[i],
		})
	}
	w.SetOffset(len(labels))
	return symbols
}

// nearestTag returns the symbol tag in cfg whose learned mean ratio
// is numerically closest to ratio.
func nearestTag(cfg *WindowConfig, ratio float64) SymbolTag {
	var best SymbolTag
	bestDiff := -1.0
	for tag, pair := range cfg.Ratios {
		diff := absf(ratio - pair.mean())
		if bestDiff < 0 || diff < bestDiff {
			best, bestDiff = tag, diff
		}
	}
	return best
}
