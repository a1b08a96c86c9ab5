package morse

// Interleaver merges the independently-clustered mark and gap symbol
// streams back into strict alternating order, starting with whichever
// polarity the very first sample had (spec.md 4.H, "Interleaver").
//
// Modeled as a cyclic index into a two-element array of pending
// lists, per spec.md 9's suggestion for languages without built-in
// cyclic iterators.
type Interleaver struct {
	pending     [2][]Symbol // 0 = marks, 1 = gaps
	cursor      int
	initialized bool
}

func newInterleaver() *Interleaver {
	return &Interleaver{}
}

// init sets the initial cursor: marks unless the first-ever sample
// was a gap (spec.md 3, "Interleaver State").
func (il *Interleaver) init(firstIsMark bool) {
	if il.initialized {
		return
	}
	if firstIsMark {
		il.cursor = 0
	} else {
		il.cursor = 1
	}
	il.initialized = true
}

// AddMarks queues newly classified mark symbols.
func (il *Interleaver) AddMarks(symbols []Symbol) {
	il.pending[0] = append(il.pending[0], symbols...)
}

// AddGaps queues newly classified gap symbols.
func (il *Interleaver) AddGaps(symbols []Symbol) {
	il.pending[1] = append(il.pending[1], symbols...)
}

// Drain pops symbols by strict alternation: take the head of the
// current list, advance the cursor, repeat; stop (without advancing)
// the moment the current list is empty. This is essential — skipping
// the "stop without advancing" branch breaks alternation on gap
// bursts (spec.md 9).
func (il *Interleaver) Drain() []Symbol {
	var merged []Symbol
	for {
		cur := il.pending[il.cursor]
		if len(cur) == 0 {
			return merged
		}
		merged = append(merged, cur[0])
		il.pending[il.cursor] = cur[1:]
		il.cursor = 1 - il.cursor
	}
}
