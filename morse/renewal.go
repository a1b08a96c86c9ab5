package morse

import (
	"log"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
)

// Renewer is the optional renewal helper (spec.md 6, 9): an
// iterator-style adapter over a Decoder that, on each Step, drains all
// available output and — if the current decoder's last state is
// LongPauseDetected and renewal is enabled — waits for it to drain,
// discards it, and starts a fresh instance. Renewal is implemented as
// this external state-flag-driven replacement rather than
// self-mutation inside Decoder.process, per spec.md 9: a
// mid-_process reset would desynchronize an in-flight get() from the
// request that produced it.
type Renewer struct {
	config       DecoderConfig
	codebook     *Codebook
	withMetrics  bool
	metrics      *prometheus.Registry
	current      *Decoder
}

// NewRenewer creates a Renewer and its first Decoder instance. When
// withMetrics is set, every decoder generation this Renewer produces
// (including ones born from a long-pause renewal) shares one registry,
// each labeled by its own session id.
func NewRenewer(cfg DecoderConfig, codebook *Codebook, withMetrics bool) *Renewer {
	r := &Renewer{config: cfg, codebook: codebook, withMetrics: withMetrics}
	if withMetrics {
		r.metrics = prometheus.NewRegistry()
	}
	r.current = r.newDecoder()
	return r
}

func (r *Renewer) newDecoder() *Decoder {
	if !r.withMetrics {
		return NewDecoder(r.config, r.codebook)
	}
	id := uuid.NewString()
	return NewDecoderWithID(id, r.config, r.codebook, NewMetricsWithRegistry(r.metrics, id))
}

// Registry exposes the shared metrics registry when this Renewer was
// created with withMetrics, nil otherwise.
func (r *Renewer) Registry() *prometheus.Registry {
	return r.metrics
}

// Put enqueues a sample on the current decoder instance.
func (r *Renewer) Put(s Sample) error {
	return r.current.Put(s)
}

// Step waits for every sample put so far to finish processing, drains
// every resulting output, then checks for a pending renewal.
func (r *Renewer) Step() []string {
	r.current.Wait()

	var out []string
	for {
		v, err := r.current.Get(false)
		if err != nil {
			break
		}
		out = append(out, v)
	}

	if r.config.EnableRenewal && r.current.LastState() == LongPauseDetected {
		stale := r.current
		log.Printf("[morse/renewal] renewing decoder %s after long pause", stale.ID())
		if stale.metrics != nil {
			stale.metrics.renewals.Inc()
		}
		_ = stale.Close()
		r.current = r.newDecoder()
		if stale.metrics != nil {
			stale.metrics.Unregister()
		}
	}
	return out
}

// Current returns the active decoder instance.
func (r *Renewer) Current() *Decoder {
	return r.current
}

// Close propagates the close sentinel to the current decoder.
func (r *Renewer) Close() error {
	return r.current.Close()
}
