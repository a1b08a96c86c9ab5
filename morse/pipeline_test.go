package morse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// doubler is a trivial processor[int, int] used to exercise host in
// isolation from Decoder/Encoder.
type doubler struct{}

func (doubler) process(n int) ([]int, error) {
	return []int{n * 2}, nil
}

func TestHostFIFOOrdering(t *testing.T) {
	h := newHost[int, int]("test/doubler", doubler{}, 0)
	defer h.Close()

	for i := 1; i <= 5; i++ {
		require.NoError(t, h.Put(i))
	}
	h.Wait()

	for i := 1; i <= 5; i++ {
		got, err := h.Get(true)
		require.NoError(t, err)
		assert.Equal(t, i*2, got)
	}
}

func TestHostCloseIsTerminal(t *testing.T) {
	h := newHost[int, int]("test/doubler", doubler{}, 0)
	assert.NoError(t, h.Close())
	assert.ErrorIs(t, h.Close(), ErrAlreadyClosed)
	assert.ErrorIs(t, h.Put(1), ErrAlreadyClosed)
}

type fatalOnNegative struct{}

func (fatalOnNegative) process(n int) ([]int, error) {
	if n < 0 {
		return nil, errMissingVariation()
	}
	return []int{n}, nil
}

func TestHostFatalErrorClosesWorker(t *testing.T) {
	h := newHost[int, int]("test/fatal", fatalOnNegative{}, 0)
	require.NoError(t, h.Put(1))
	require.NoError(t, h.Put(-1))
	h.Wait()

	// The worker flips Closed() on the fatal error before it marks that
	// item done, so this already holds once Wait() returns.
	require.Eventually(t, h.Closed, time.Second, time.Millisecond)
}
