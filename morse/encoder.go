package morse

import (
	"strings"

	"github.com/google/uuid"
)

// encodeRatios fixes the nominal dit/dah/gap lengths an Encoder emits,
// in units (spec.md GLOSSARY: dot=1, dash=3, intra-gap=1,
// inter-letter gap=3, inter-word gap=7) — the same constants the
// Ratio Learner converges towards from the receiving side.
func encodeRatios() map[SymbolTag]float64 {
	return map[SymbolTag]float64{
		DOT:    1,
		DASH:   3,
		INTRA:  1,
		SHORT:  3,
		MEDIUM: 7,
	}
}

// letterEncoder implements processor[rune, Sample]: the inverse of
// Converter, turning text back into timed samples one rune at a time.
// Grounded on morse_table.go's static table (here used in reverse via
// Codebook.PatternOf) and the ratio constants from
// original_source/libmorse/settings.py.
type letterEncoder struct {
	codebook *Codebook
	unit     float64
	ratios   map[SymbolTag]float64

	hasEmitted    bool
	pendingGap    SymbolTag
	pendingGapSet bool
}

func newLetterEncoder(codebook *Codebook, unit float64) *letterEncoder {
	return &letterEncoder{codebook: codebook, unit: unit, ratios: encodeRatios()}
}

func (le *letterEncoder) sample(tag SymbolTag) Sample {
	return Sample{IsMark: tag.isMark(), DurationMs: le.ratios[tag] * le.unit}
}

// process consumes one rune. Whitespace only records a pending
// word-boundary gap (upgrading any pending inter-letter gap), so that
// trailing or repeated spaces never emit a dangling gap with nothing
// after it. A character absent from the codebook is a recoverable
// Process error: the caller sees it, the worker keeps running.
func (le *letterEncoder) process(r rune) ([]Sample, error) {
	if strings.ContainsRune(" \t\n", r) {
		if le.hasEmitted {
			le.pendingGap = MEDIUM
			le.pendingGapSet = true
		}
		return nil, nil
	}

	letter := strings.ToUpper(string(r))
	pattern, ok := le.codebook.PatternOf(letter)
	if !ok {
		return nil, newProcessError("encoder: no codebook pattern for %q", r)
	}

	var out []Sample
	if le.hasEmitted {
		gap := SHORT
		if le.pendingGapSet {
			gap = le.pendingGap
		}
		out = append(out, le.sample(gap))
		le.pendingGapSet = false
	}
	for i, c := range pattern {
		if i > 0 {
			out = append(out, le.sample(INTRA))
		}
		switch c {
		case '.':
			out = append(out, le.sample(DOT))
		case '-':
			out = append(out, le.sample(DASH))
		}
	}
	le.hasEmitted = true
	return out, nil
}

// Encoder is the text-to-samples counterpart to Decoder, built on the
// same Pipeline Host so it shares put/get/wait/close semantics
// (spec.md 9: "model the decoder/encoder split as a small interface,
// not a deep class hierarchy").
type Encoder struct {
	id   string
	host *host[rune, Sample]
}

// NewEncoder creates an Encoder against the given Codebook, emitting
// samples at the given unit length in milliseconds.
func NewEncoder(codebook *Codebook, unitMs float64, inputQueueSize int) *Encoder {
	id := uuid.NewString()
	le := newLetterEncoder(codebook, unitMs)
	return &Encoder{
		id:   id,
		host: newHost[rune, Sample]("morse/encoder:"+id[:8], le, inputQueueSize),
	}
}

// ID returns this encoder's session identifier.
func (e *Encoder) ID() string { return e.id }

// Put enqueues one rune of input text.
func (e *Encoder) Put(r rune) error {
	return e.host.Put(r)
}

// PutString enqueues every rune of s in order.
func (e *Encoder) PutString(s string) error {
	for _, r := range s {
		if err := e.Put(r); err != nil {
			return err
		}
	}
	return nil
}

// Get dequeues one emitted Sample.
func (e *Encoder) Get(blocking bool) (Sample, error) {
	return e.host.Get(blocking)
}

// Wait blocks until every rune put so far has been processed.
func (e *Encoder) Wait() {
	e.host.Wait()
}

// Close terminates the worker and releases resources.
func (e *Encoder) Close() error {
	return e.host.Close()
}

// Closed reports whether Close has been called or the worker has
// stopped on a fatal error.
func (e *Encoder) Closed() bool {
	return e.host.Closed()
}
