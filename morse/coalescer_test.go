package morse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoalescerMergesSamePolaritySamples(t *testing.T) {
	c := newCoalescer(DefaultDecoderConfig())
	_, err := c.process(Sample{IsMark: true, DurationMs: 50})
	require.NoError(t, err)
	_, err = c.process(Sample{IsMark: true, DurationMs: 30})
	require.NoError(t, err)

	last, ok := c.markWindow.Last()
	assert.True(t, ok)
	assert.Equal(t, 80.0, last)
	assert.Equal(t, 1, c.markWindow.Len(), "merged, not appended")
}

func TestCoalescerRecordsFirstPolarity(t *testing.T) {
	c := newCoalescer(DefaultDecoderConfig())
	_, known := c.firstPolarity()
	assert.False(t, known)

	_, err := c.process(Sample{IsMark: false, DurationMs: 40})
	require.NoError(t, err)

	isMark, known := c.firstPolarity()
	assert.True(t, known)
	assert.False(t, isMark)
}

func TestCoalescerAlternatingSamplesAppendSeparately(t *testing.T) {
	c := newCoalescer(DefaultDecoderConfig())
	_, _ = c.process(Sample{IsMark: true, DurationMs: 50})
	_, _ = c.process(Sample{IsMark: false, DurationMs: 50})
	_, _ = c.process(Sample{IsMark: true, DurationMs: 50})

	assert.Equal(t, 2, c.markWindow.Len())
	assert.Equal(t, 1, c.gapWindow.Len())
}

func TestCoalescerClampsLongGapInWindow(t *testing.T) {
	cfg := DefaultDecoderConfig()
	cfg.Unit = 100
	c := newCoalescer(cfg)

	// First a mark, then a long silence well past the default maximum
	// (learned MEDIUM-ratio mean of 7 units = 700ms before any learning).
	_, _ = c.process(Sample{IsMark: true, DurationMs: 50})
	state, err := c.process(Sample{IsMark: false, DurationMs: 5000})
	require.NoError(t, err)
	assert.Equal(t, LongPauseDetected, state)

	last, _ := c.gapWindow.Last()
	assert.Less(t, last, 5000.0, "should be clamped below the raw duration")
}
