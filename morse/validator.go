package morse

// validateClustering checks centroids' pairwise spread against
// [meanMinDiff, meanMaxDiff] multiples of the smallest centroid
// (spec.md 4.D, "Cluster Validator"). It returns false if any pair
// falls outside the accepted band — too close suggests k-means split
// a single true cluster before enough variety arrived; too far
// suggests an outlier distorting the estimate.
func validateClustering(centroids []float64, meanMinDiff, meanMaxDiff float64) bool {
	if len(centroids) < 2 {
		return true
	}
	u := centroids[0]
	for _, c := range centroids[1:] {
		if c < u {
			u = c
		}
	}
	if u <= 0 {
		return false
	}
	for i := 0; i < len(centroids); i++ {
		for j := i + 1; j < len(centroids); j++ {
			delta := absf(centroids[i] - centroids[j])
			if !(meanMinDiff*u < delta && delta < meanMaxDiff*u) {
				return false
			}
		}
	}
	return true
}
