package morse

// Sample is one timed on/off pulse: (is_mark, duration_ms) (spec.md 3).
type Sample struct {
	IsMark     bool
	DurationMs float64
}

// Coalescer merges consecutive same-polarity samples and appends the
// result into the mark or gap window, applying the Long-pause
// Detector to every gap sample (spec.md 4.G, "Stream Coalescer").
//
// Grounded on original_source/libmorse/translator.py's MorseTranslator
// ._process, which merges same-polarity items by summing durations
// in a deque before any classification runs.
type Coalescer struct {
	markWindow *Window
	gapWindow  *Window
	markCfg    *WindowConfig
	gapCfg     *WindowConfig
	unitHist   *unitHistory
	fallbackUnit float64

	last      *Sample
	firstSeen bool
	firstMark bool
}

func newCoalescer(cfg DecoderConfig) *Coalescer {
	return &Coalescer{
		markWindow:   NewWindow(cfg.MaxWin),
		gapWindow:    NewWindow(cfg.MaxWin),
		markCfg:      newMarkWindowConfig(cfg),
		gapCfg:       newGapWindowConfig(cfg),
		unitHist:     newUnitHistory(cfg.MaxWin),
		fallbackUnit: cfg.Unit,
	}
}

// firstPolarity reports whether the very first sample ever seen was a
// mark, used by the Interleaver to pick its initial cursor (spec.md
// 3, "Interleaver State").
func (c *Coalescer) firstPolarity() (isMark, known bool) {
	return c.firstMark, c.firstSeen
}

func (c *Coalescer) currentUnit() float64 {
	if u, ok := c.unitHist.mean(); ok {
		return u
	}
	return c.fallbackUnit
}

// process coalesces one sample into its window, returning the
// resulting pause state (NoPause unless this was a gap sample whose
// duration exceeded the learned maximum silence).
func (c *Coalescer) process(s Sample) (PauseState, error) {
	if !c.firstSeen {
		c.firstSeen = true
		c.firstMark = s.IsMark
	}

	window := c.gapWindow
	if s.IsMark {
		window = c.markWindow
	}

	if c.last != nil && s.IsMark == c.last.IsMark {
		merged := s.DurationMs + c.last.DurationMs
		window.SetLast(merged)
		c.last = &Sample{IsMark: s.IsMark, DurationMs: merged}
	} else {
		if err := window.Append(s.DurationMs); err != nil {
			return NoPause, err
		}
		c.last = &Sample{IsMark: s.IsMark, DurationMs: s.DurationMs}
	}

	if s.IsMark {
		return NoPause, nil
	}

	current, _ := window.Last()
	corrected, state := detectLongPause(current, c.currentUnit(), c.gapCfg)
	if corrected != current {
		window.SetLast(corrected)
	}
	return state, nil
}
