package morse

// SymbolTag identifies a Morse symbol kind: two mark kinds (dot, dash)
// and three gap kinds (intra-letter, inter-letter, inter-word).
type SymbolTag int

const (
	// DOT is a one-unit mark.
	DOT SymbolTag = iota
	// DASH is a three-unit mark.
	DASH
	// INTRA is a one-unit gap between symbols of the same letter.
	INTRA
	// SHORT is a three-unit gap between letters.
	SHORT
	// MEDIUM is a seven-unit gap between words.
	MEDIUM
)

func (t SymbolTag) String() string {
	switch t {
	case DOT:
		return "DOT"
	case DASH:
		return "DASH"
	case INTRA:
		return "INTRA_GAP"
	case SHORT:
		return "SHORT_GAP"
	case MEDIUM:
		return "MEDIUM_GAP"
	default:
		return "UNKNOWN"
	}
}

// isMark reports whether tag belongs to the mark window (DOT/DASH) as
// opposed to the gap window (INTRA/SHORT/MEDIUM).
func (t SymbolTag) isMark() bool {
	return t == DOT || t == DASH
}

// markTags and gapTags are the symbol tags in ascending-ratio order
// for their respective window, matching the Ratio Learner's sort order
// (spec 4.E step 1).
var (
	markTags = []SymbolTag{DOT, DASH}
	gapTags  = []SymbolTag{INTRA, SHORT, MEDIUM}
)

// Symbol is one classified Morse symbol with its source duration.
type Symbol struct {
	Tag      SymbolTag
	Duration float64
}

// View selects what the Converter emits for a terminated letter.
type View int

const (
	// ViewAlphabet emits decoded letters (the default).
	ViewAlphabet View = iota
	// ViewMorse emits the raw dot/dash pattern instead of the letter.
	ViewMorse
)
