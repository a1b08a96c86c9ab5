package morse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLearnRatiosUpdatesMeansAndHistory(t *testing.T) {
	cfg := newMarkWindowConfig(DefaultDecoderConfig())
	hist := newUnitHistory(MaxWin)

	unit := learnRatios(cfg, []float64{100, 300}, hist)
	assert.Equal(t, 100.0, unit)

	// seeded at 1.0/1, blended with a freshly observed 100/100 = 1.0.
	assert.Equal(t, 1.0, cfg.Ratios[DOT].mean())
	assert.EqualValues(t, 2, cfg.Ratios[DOT].count)

	mean, ok := hist.mean()
	assert.True(t, ok)
	assert.Equal(t, 100.0, mean)
}

func TestUnitHistoryEvictsOldest(t *testing.T) {
	h := newUnitHistory(2)
	h.add(100)
	h.add(200)
	h.add(300)
	mean, ok := h.mean()
	assert.True(t, ok)
	assert.Equal(t, 250.0, mean) // (200+300)/2
}

func TestUnitHistoryUnsetUntilFirstSample(t *testing.T) {
	h := newUnitHistory(4)
	_, ok := h.mean()
	assert.False(t, ok)
}
