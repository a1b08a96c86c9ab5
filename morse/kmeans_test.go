package morse

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStableKMeansSeparatesTwoClusters(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	xs := []float64{100, 105, 98, 300, 310, 295, 102, 305}

	centroids, labels, err := stableKMeans(xs, 2, 10, rng)
	require.NoError(t, err)
	assert.Len(t, centroids, 2)
	assert.Len(t, labels, len(xs))
	assert.True(t, allLabelsPresent(labels, 2), "every cluster should receive a point")

	// Points near 100 and points near 300 end up in distinct clusters.
	assert.NotEqual(t, labels[0], labels[3])
}

func TestStableKMeansThreeClusters(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	xs := []float64{90, 95, 88, 300, 310, 295, 700, 690, 710, 92}

	centroids, _, err := stableKMeans(xs, 3, 10, rng)
	require.NoError(t, err)
	assert.Len(t, centroids, 3)
}

func TestValidateClusteringRejectsTooTightSpread(t *testing.T) {
	// Centroids differ only slightly relative to their scale: fails the
	// MEAN_MIN_DIFF bound.
	centroids := []float64{100, 101}
	assert.False(t, validateClustering(centroids, DefaultMeanMinDiff, DefaultMeanMaxDiff))
}

func TestValidateClusteringAcceptsTypicalSpread(t *testing.T) {
	centroids := []float64{100, 300}
	assert.True(t, validateClustering(centroids, DefaultMeanMinDiff, DefaultMeanMaxDiff))
}
