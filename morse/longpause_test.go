package morse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectLongPauseClampsOverlongGap(t *testing.T) {
	cfg := newGapWindowConfig(DefaultDecoderConfig())
	corrected, state := detectLongPause(900, 100, cfg)
	assert.Equal(t, LongPauseDetected, state)
	assert.Equal(t, 700.0, corrected) // MEDIUM mean (7.0) * unit (100)
}

func TestDetectLongPausePassesThroughOrdinaryGap(t *testing.T) {
	cfg := newGapWindowConfig(DefaultDecoderConfig())
	corrected, state := detectLongPause(750, 100, cfg)
	assert.Equal(t, NoPause, state)
	assert.Equal(t, 750.0, corrected)
}
