package morse

import (
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Decoder is the adaptive morse-to-alphabet translator: put timed
// (is_mark, duration_ms) samples in, get decoded text out (spec.md
// 1-4, Pipeline Host + Decoder API). Each instance owns its windows,
// unit history, interleaver, converter buffer, and dedicated worker
// goroutine exclusively (spec.md 5).
type Decoder struct {
	id string

	config    DecoderConfig
	coalescer *Coalescer
	interleaver *Interleaver
	converter *Converter
	metrics   *Metrics

	mu        sync.Mutex
	lastState PauseState

	rng  *rand.Rand
	host *host[Sample, string]
}

// NewSessionID mints a decoder session id, for callers that need one
// before the decoder exists (e.g. to label a Metrics registered into a
// shared registry up front, then pass into NewDecoderWithID).
func NewSessionID() string {
	return uuid.NewString()
}

// NewDecoder creates a Decoder with the given config and codebook,
// spawning its worker goroutine (spec.md 3, "Lifecycle: the decoder
// is created in an open state with empty windows").
func NewDecoder(cfg DecoderConfig, codebook *Codebook) *Decoder {
	return NewDecoderWithMetrics(cfg, codebook, nil)
}

// NewDecoderWithMetrics is NewDecoder plus an optional Metrics sink
// (see morse/metrics.go); pass nil to decode without instrumentation.
// The decoder generates its own session id; callers that need the id
// before metrics exist (e.g. to label a shared registry) should use
// NewDecoderWithID instead.
func NewDecoderWithMetrics(cfg DecoderConfig, codebook *Codebook, metrics *Metrics) *Decoder {
	return NewDecoderWithID(uuid.NewString(), cfg, codebook, metrics)
}

// NewDecoderWithID is NewDecoderWithMetrics with an explicit session
// id, so a caller can build a Metrics labeled by that id (see
// morse/metrics.go, NewMetrics) before the decoder's worker goroutine
// starts and establish it atomically via the struct literal below.
func NewDecoderWithID(id string, cfg DecoderConfig, codebook *Codebook, metrics *Metrics) *Decoder {
	conv := NewConverter(codebook)
	if cfg.View == "morse" {
		conv.SetView(ViewMorse)
	}

	d := &Decoder{
		id:          id,
		config:      cfg,
		coalescer:   newCoalescer(cfg),
		interleaver: newInterleaver(),
		converter:   conv,
		metrics:     metrics,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	d.host = newHost[Sample, string]("morse/decoder:"+id[:8], d, cfg.InputQueueSize)
	log.Printf("[morse/decoder] %s started (min_len=%d, max_win=%d, unit=%.1fms)",
		id, cfg.MinLen, cfg.MaxWin, cfg.Unit)
	return d
}

// ID returns this decoder's unique session identifier (SPEC_FULL.md
// DOMAIN STACK: google/uuid), stable across its lifetime and useful
// for correlating log lines and renewed sessions.
func (d *Decoder) ID() string {
	return d.id
}

// SetView switches between decoded-letter and raw-pattern output.
func (d *Decoder) SetView(v View) {
	d.converter.SetView(v)
}

// Put enqueues one (is_mark, duration_ms) sample.
func (d *Decoder) Put(s Sample) error {
	return d.host.Put(s)
}

// Get dequeues one decoded output (a letter, word break, or raw
// pattern depending on view). If blocking is false, an empty output
// queue raises ErrEmpty.
func (d *Decoder) Get(blocking bool) (string, error) {
	return d.host.Get(blocking)
}

// Wait blocks until every sample put so far has been processed.
func (d *Decoder) Wait() {
	d.host.Wait()
}

// Close terminates the worker and releases resources.
func (d *Decoder) Close() error {
	return d.host.Close()
}

// Closed reports whether Close has been called or the worker has
// stopped on a fatal error.
func (d *Decoder) Closed() bool {
	return d.host.Closed()
}

// LastState returns the renewal-trigger flag last observed by the
// worker (spec.md 3, 6: "last_state").
func (d *Decoder) LastState() PauseState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lastState
}

func (d *Decoder) setLastState(s PauseState) {
	d.mu.Lock()
	d.lastState = s
	d.mu.Unlock()
}

// process implements processor[Sample, string] — the worker-thread
// side of the decode pipeline, run exclusively by host's goroutine
// (spec.md 2's dataflow: Coalescer -> windows -> k-means -> Validator
// -> Ratio Learner -> Classifier -> Interleaver -> Converter).
func (d *Decoder) process(s Sample) ([]string, error) {
	state, err := d.coalescer.process(s)
	if err != nil {
		return nil, err
	}
	d.setLastState(state)
	if d.metrics != nil && state == LongPauseDetected {
		d.metrics.longPauses.Inc()
	}

	if isMark, known := d.coalescer.firstPolarity(); known {
		d.interleaver.init(isMark)
	}

	if marks := d.cluster(d.coalescer.markWindow, d.coalescer.markCfg); marks != nil {
		d.interleaver.AddMarks(marks)
	}
	if gaps := d.cluster(d.coalescer.gapWindow, d.coalescer.gapCfg); gaps != nil {
		d.interleaver.AddGaps(gaps)
	}

	merged := d.interleaver.Drain()
	return d.converter.Process(merged), nil
}

// cluster runs one independent clustering attempt for window/cfg
// (spec.md 4.C-F): whiten+Lloyd's, validate spread, learn ratios, and
// classify the newly-available tail. Clustering failures — empty
// clusters after the retry budget, or a rejected spread — are
// recovered locally per spec.md 7: they simply yield no new symbols
// this step.
func (d *Decoder) cluster(w *Window, cfg *WindowConfig) []Symbol {
	if w.Len() < cfg.MinLen {
		return nil
	}
	if d.metrics != nil {
		d.metrics.clusterAttempts.Inc()
	}

	centroids, labels, err := stableKMeans(w.Values(), cfg.MeansK, d.config.ClusterIter, d.rng)
	if err != nil {
		if d.metrics != nil {
			d.metrics.clusterRejections.Inc()
		}
		return nil
	}
	if !validateClustering(centroids, cfg.MeanMinDiff, cfg.MeanMaxDiff) {
		if d.metrics != nil {
			d.metrics.clusterRejections.Inc()
		}
		return nil
	}

	unit := learnRatios(cfg, centroids, d.coalescer.unitHist)
	if d.metrics != nil {
		d.metrics.clusterAccepts.Inc()
		d.metrics.currentUnit.Set(unit)
	}
	return classifyWindow(cfg, w, centroids, labels)
}
