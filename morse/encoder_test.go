package morse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drainEncoder(t *testing.T, enc *Encoder) []Sample {
	t.Helper()
	enc.Wait()
	if err := enc.Close(); err != nil {
		require.ErrorIs(t, err, ErrAlreadyClosed)
	}
	var out []Sample
	for {
		s, err := enc.Get(false)
		if err == ErrEmpty || err == ErrAlreadyClosed {
			break
		}
		require.NoError(t, err)
		out = append(out, s)
	}
	return out
}

func TestEncoderEmitsDotDashPattern(t *testing.T) {
	cb, err := DefaultCodebook()
	require.NoError(t, err)
	enc := NewEncoder(cb, 100, 0)
	require.NoError(t, enc.PutString("E")) // E = "."

	samples := drainEncoder(t, enc)
	require.Len(t, samples, 1)
	assert.Equal(t, Sample{IsMark: true, DurationMs: 100}, samples[0])
}

func TestEncoderInsertsGapsBetweenLettersAndWords(t *testing.T) {
	cb, err := DefaultCodebook()
	require.NoError(t, err)
	enc := NewEncoder(cb, 100, 0)
	require.NoError(t, enc.PutString("E E"))

	samples := drainEncoder(t, enc)
	// E, inter-word gap (7 units), E.
	want := []Sample{
		{IsMark: true, DurationMs: 100},
		{IsMark: false, DurationMs: 700},
		{IsMark: true, DurationMs: 100},
	}
	assert.Equal(t, want, samples)
}

func TestEncoderRejectsUnknownCharacter(t *testing.T) {
	cb, err := DefaultCodebook()
	require.NoError(t, err)
	enc := NewEncoder(cb, 100, 0)
	defer enc.Close()

	require.NoError(t, enc.Put('\x01'))
	enc.Wait()

	// The error is recoverable (Process kind): the worker keeps running
	// rather than closing, so no output was ever queued for this rune.
	_, err = enc.Get(false)
	assert.ErrorIs(t, err, ErrEmpty)
	assert.False(t, enc.Closed())
}
