package morse

// Window is a bounded, ordered FIFO of positive durations (spec.md
// 4.B, "Ring Window"). It overwrites the oldest entry on overflow and
// carries an offset marking how many of its entries have already been
// classified — only the tail [offset:] needs reclassifying after a
// new arrival.
//
// Shaped after the fixed-capacity sample buffer in the teacher's
// SNREstimator (audio_extensions/morse/signal_processing.go), but
// ordered oldest-to-newest rather than circular-indexed, since callers
// here need an ordered slice view for clustering.
type Window struct {
	capacity int
	buf      []float64
	offset   int
}

// NewWindow creates an empty window with the given capacity.
func NewWindow(capacity int) *Window {
	return &Window{
		capacity: capacity,
		buf:      make([]float64, 0, capacity),
	}
}

// Len returns the number of durations currently held.
func (w *Window) Len() int {
	return len(w.buf)
}

// Offset returns the count of durations already classified.
func (w *Window) Offset() int {
	return w.offset
}

// SetOffset advances (or resets) the classified-count marker.
func (w *Window) SetOffset(offset int) {
	w.offset = offset
}

// Append adds x, evicting the oldest entry if the window is full. It
// fails fatally if an eviction is required but offset is already 0 —
// that would mean discarding a duration the classifier never saw
// (spec.md 3, 9: "missing variation").
func (w *Window) Append(x float64) error {
	if len(w.buf) < w.capacity {
		w.buf = append(w.buf, x)
		return nil
	}
	if w.offset == 0 {
		return errMissingVariation()
	}
	w.offset--
	copy(w.buf, w.buf[1:])
	w.buf[len(w.buf)-1] = x
	return nil
}

// SetLast overwrites the most recently appended value in place,
// without affecting offset or length; on an empty window it appends x
// instead. Used by the Stream Coalescer to merge same-polarity samples
// (spec.md 4.G).
func (w *Window) SetLast(x float64) {
	if len(w.buf) == 0 {
		w.buf = append(w.buf, x)
		return
	}
	w.buf[len(w.buf)-1] = x
}

// Last returns the most recently appended value, and whether the
// window holds anything at all.
func (w *Window) Last() (float64, bool) {
	if len(w.buf) == 0 {
		return 0, false
	}
	return w.buf[len(w.buf)-1], true
}

// Values returns a defensive copy of the window contents,
// oldest-to-newest.
func (w *Window) Values() []float64 {
	out := make([]float64, len(w.buf))
	copy(out, w.buf)
	return out
}

// Tail returns a defensive copy of buf[offset:], the durations not
// yet classified.
func (w *Window) Tail() []float64 {
	if w.offset >= len(w.buf) {
		return nil
	}
	out := make([]float64, len(w.buf)-w.offset)
	copy(out, w.buf[w.offset:])
	return out
}
