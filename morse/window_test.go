package morse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowAppendWithinCapacity(t *testing.T) {
	w := NewWindow(4)
	for i, v := range []float64{1, 2, 3} {
		require.NoErrorf(t, w.Append(v), "append %d", i)
	}
	assert.Equal(t, 3, w.Len())
	assert.Equal(t, []float64{1, 2, 3}, w.Values())
}

func TestWindowEvictsOldestAndDecrementsOffset(t *testing.T) {
	w := NewWindow(3)
	for _, v := range []float64{1, 2, 3} {
		require.NoError(t, w.Append(v))
	}
	w.SetOffset(3)

	require.NoError(t, w.Append(4))
	assert.Equal(t, []float64{2, 3, 4}, w.Values())
	assert.Equal(t, 2, w.Offset())
}

func TestWindowMissingVariationIsFatal(t *testing.T) {
	w := NewWindow(2)
	require.NoError(t, w.Append(1))
	require.NoError(t, w.Append(2))
	// offset stays 0: both entries are still unclassified.
	err := w.Append(3)
	require.Error(t, err)
	assert.True(t, isFatalError(err))
}

func TestWindowTailRespectsOffset(t *testing.T) {
	w := NewWindow(5)
	for _, v := range []float64{1, 2, 3, 4} {
		require.NoError(t, w.Append(v))
	}
	w.SetOffset(2)
	assert.Equal(t, []float64{3, 4}, w.Tail())
}
