package morse

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/push"
)

// Metrics holds a single Decoder instance's Prometheus collectors,
// scoped down from the teacher's PrometheusMetrics
// (prometheus.go: promauto-built GaugeVec/CounterVec fields, plus a
// push-gateway sink via push.New(...).Push()) to the counters this
// pipeline actually produces.
//
// Every decoder session gets its own Metrics, but collectors from many
// sessions can share one registry: each collector is keyed by a
// decoder_id ConstLabel, so two sessions' "gomorse_cluster_attempts_total"
// counters carry distinct label values and coexist without collision.
type Metrics struct {
	registry   *prometheus.Registry
	collectors []prometheus.Collector

	clusterAttempts  prometheus.Counter
	clusterAccepts   prometheus.Counter
	clusterRejections prometheus.Counter
	longPauses       prometheus.Counter
	renewals         prometheus.Counter
	currentUnit      prometheus.Gauge
}

// NewMetrics creates a fresh private registry and collector set for
// one decoder, labeled by its session id. Use NewMetricsWithRegistry
// instead when several decoders must publish to one shared /metrics
// endpoint or push-gateway job.
func NewMetrics(decoderID string) *Metrics {
	return NewMetricsWithRegistry(prometheus.NewRegistry(), decoderID)
}

// NewMetricsWithRegistry registers one decoder's collector set into an
// existing registry, labeled by its session id so a shared /metrics
// endpoint can distinguish concurrent or renewed sessions.
func NewMetricsWithRegistry(reg *prometheus.Registry, decoderID string) *Metrics {
	factory := promauto.With(reg)
	labels := prometheus.Labels{"decoder_id": decoderID}

	m := &Metrics{
		registry: reg,
		clusterAttempts: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   "gomorse",
			Name:        "cluster_attempts_total",
			Help:        "Stable k-means clustering attempts, per window reaching min_len.",
			ConstLabels: labels,
		}),
		clusterAccepts: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   "gomorse",
			Name:        "cluster_accepts_total",
			Help:        "Clusterings that passed validation and updated the ratio table.",
			ConstLabels: labels,
		}),
		clusterRejections: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   "gomorse",
			Name:        "cluster_rejections_total",
			Help:        "Clusterings rejected: insufficient data or spread validation failure.",
			ConstLabels: labels,
		}),
		longPauses: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   "gomorse",
			Name:        "long_pauses_total",
			Help:        "Gaps exceeding the learned maximum silence.",
			ConstLabels: labels,
		}),
		renewals: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   "gomorse",
			Name:        "renewals_total",
			Help:        "Decoder renewals triggered by a long pause.",
			ConstLabels: labels,
		}),
		currentUnit: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   "gomorse",
			Name:        "unit_ms",
			Help:        "Current learned unit length in milliseconds.",
			ConstLabels: labels,
		}),
	}
	m.collectors = []prometheus.Collector{
		m.clusterAttempts, m.clusterAccepts, m.clusterRejections,
		m.longPauses, m.renewals, m.currentUnit,
	}
	return m
}

// Registry exposes the collector registry, e.g. for
// promhttp.HandlerFor in cmd/gomorse-server.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Unregister removes this decoder's collectors from its registry,
// used when a shared registry outlives the decoder session (a
// gomorse-server WebSocket connection closing, a renewal replacing
// the decoder) so stale decoder_id series don't accumulate.
func (m *Metrics) Unregister() {
	if m == nil {
		return
	}
	for _, c := range m.collectors {
		m.registry.Unregister(c)
	}
}

// Push pushes the current metric values to a Prometheus push gateway,
// mirroring the teacher's push.New(url, job).Push() usage in
// prometheus.go.
func (m *Metrics) Push(gatewayURL, job string) error {
	return push.New(gatewayURL, job).Gatherer(m.registry).Push()
}
