package morse

import (
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ErrInsufficientData is returned by stableKMeans when the retry
// budget is exhausted with an empty cluster still present (spec.md
// 4.C).
var ErrInsufficientData = newProcessError("stable k-means: insufficient data after retry budget exhausted")

// stableKMeans clusters xs into k centroids, retrying with a new
// random seed whenever Lloyd's iteration yields an empty cluster,
// until every label 0..k-1 appears at least once (spec.md 4.C,
// "Stable k-means"; invariant tested in spec.md 8, "Cluster
// completeness").
//
// gonum has no packaged k-means (it ships stat/floats/mat, no
// cluster package), so Lloyd's iteration is hand-written here; gonum
// is still used for the whitening step (stat.StdDev) and the
// elementwise scale/restore (floats.Scale), reusing the same gonum
// module the teacher imports for FFT elsewhere in its audio
// extensions.
func stableKMeans(xs []float64, k, maxAttempts int, rng *rand.Rand) (centroids []float64, labels []int, err error) {
	if len(xs) == 0 {
		return nil, nil, ErrInsufficientData
	}

	// Step 1-2: remember xs[0] for scale restoration, then whiten by
	// dividing every element by the sample (n-1) standard deviation.
	factor := xs[0]
	std := stat.StdDev(xs, nil)
	if std == 0 {
		std = 1
	}
	ys := make([]float64, len(xs))
	copy(ys, xs)
	floats.Scale(1.0/std, ys)
	factor /= ys[0]

	if maxAttempts <= 0 {
		maxAttempts = DefaultClusterIter
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		seeds := seedCentroids(ys, k, rng)
		centers, lbls := lloyd(ys, seeds)
		if allLabelsPresent(lbls, k) {
			out := make([]float64, k)
			copy(out, centers)
			floats.Scale(factor, out)
			return out, lbls, nil
		}
	}
	return nil, nil, ErrInsufficientData
}

// seedCentroids picks k values from ys at random distinct indices to
// seed Lloyd's iteration.
func seedCentroids(ys []float64, k int, rng *rand.Rand) []float64 {
	n := len(ys)
	seeds := make([]float64, k)
	if n <= k {
		// Not enough distinct points: repeat with tiny jitter so
		// Lloyd's iteration can still separate them.
		for i := 0; i < k; i++ {
			seeds[i] = ys[i%n] + float64(i)*1e-9
		}
		return seeds
	}
	idx := rng.Perm(n)[:k]
	for i, j := range idx {
		seeds[i] = ys[j]
	}
	return seeds
}

// lloyd runs Lloyd's algorithm to a fixed-point (or iteration cap)
// starting from the given seed centroids, returning final centroids
// and per-point labels.
func lloyd(ys []float64, seeds []float64) ([]float64, []int) {
	k := len(seeds)
	centers := make([]float64, k)
	copy(centers, seeds)
	labels := make([]int, len(ys))

	const maxIter = 50
	for iter := 0; iter < maxIter; iter++ {
		changed := false
		for i, y := range ys {
			best, bestDist := 0, -1.0
			for c, center := range centers {
				d := absf(y - center)
				if bestDist < 0 || d < bestDist {
					best, bestDist = c, d
				}
			}
			if labels[i] != best {
				changed = true
			}
			labels[i] = best
		}

		sums := make([]float64, k)
		counts := make([]int, k)
		for i, y := range ys {
			sums[labels[i]] += y
			counts[labels[i]]++
		}
		for c := 0; c < k; c++ {
			if counts[c] > 0 {
				centers[c] = sums[c] / float64(counts[c])
			}
		}
		if !changed && iter > 0 {
			break
		}
	}
	return centers, labels
}

func allLabelsPresent(labels []int, k int) bool {
	seen := make([]bool, k)
	for _, l := range labels {
		if l >= 0 && l < k {
			seen[l] = true
		}
	}
	for _, s := range seen {
		if !s {
			return false
		}
	}
	return true
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
