package morse

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}

func TestNewDecoderWithIDAttachesMetrics(t *testing.T) {
	cb, err := DefaultCodebook()
	require.NoError(t, err)
	reg := prometheus.NewRegistry()
	id := NewSessionID()
	metrics := NewMetricsWithRegistry(reg, id)

	dec := NewDecoderWithID(id, DefaultDecoderConfig(), cb, metrics)
	defer dec.Close()

	handBuiltSOS(t, dec)
	drainDecoder(t, dec)

	assert.Greater(t, counterValue(t, metrics.clusterAttempts), 0.0)
}

func TestMetricsWithRegistrySharesOneRegistryAcrossSessions(t *testing.T) {
	reg := prometheus.NewRegistry()
	first := NewMetricsWithRegistry(reg, "session-a")
	second := NewMetricsWithRegistry(reg, "session-b")

	first.clusterAttempts.Inc()
	second.clusterAttempts.Inc()
	second.clusterAttempts.Inc()

	families, err := reg.Gather()
	require.NoError(t, err)

	var total int
	for _, fam := range families {
		if fam.GetName() == "gomorse_cluster_attempts_total" {
			total = len(fam.GetMetric())
		}
	}
	assert.Equal(t, 2, total, "each session's counter should be a distinct series")
}

func TestMetricsUnregisterRemovesCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetricsWithRegistry(reg, "session-c")
	m.clusterAttempts.Inc()

	m.Unregister()

	families, err := reg.Gather()
	require.NoError(t, err)
	for _, fam := range families {
		assert.NotEqual(t, "gomorse_cluster_attempts_total", fam.GetName())
	}
}

func TestMetricsUnregisterNilReceiverIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() { m.Unregister() })
}
