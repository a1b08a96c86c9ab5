package morse

// Converter accumulates Morse symbols into a dot/dash pattern buffer
// and splits the stream at gap symbols into letters and word breaks,
// looking letters up in the Codebook (spec.md 4.J, "Converter").
//
// Grounded on the teacher's processCharacter/processSpace
// (audio_extensions/morse/decoder.go), which already accumulate
// elements and flush on character/word separators; gomorse
// generalizes that to the spec's three explicit gap kinds and adds
// the "morse view" output mode from
// original_source/tests/test_translator.py.
type Converter struct {
	codebook *Codebook
	view     View
	pattern  string
}

// NewConverter creates a Converter against the given Codebook,
// defaulting to alphabet view.
func NewConverter(codebook *Codebook) *Converter {
	return &Converter{codebook: codebook, view: ViewAlphabet}
}

// SetView switches between alphabet and raw-pattern output.
func (cv *Converter) SetView(v View) {
	cv.view = v
}

// Process appends symbols to the pattern buffer, emitting letters and
// word breaks as gap symbols terminate them. A partial letter at the
// tail is held until a gap arrives (spec.md 4.J).
func (cv *Converter) Process(symbols []Symbol) []string {
	var out []string
	for _, s := range symbols {
		switch s.Tag {
		case DOT:
			cv.pattern += "."
		case DASH:
			cv.pattern += "-"
		case INTRA:
			// Symbol separator within a letter: discarded.
		case SHORT:
			if cv.pattern != "" {
				if tok := cv.flush(false); tok != "" {
					out = append(out, tok)
				}
			}
		case MEDIUM:
			if tok := cv.flush(true); tok != "" {
				out = append(out, tok)
			}
		}
	}
	return out
}

// flush emits the accumulated pattern (looked up in the codebook, or
// verbatim in morse view) plus a trailing separator; wordBreak
// selects the inter-word separator over the inter-letter one.
func (cv *Converter) flush(wordBreak bool) string {
	pattern := cv.pattern
	cv.pattern = ""

	var tok string
	if cv.view == ViewMorse {
		tok = pattern
		if wordBreak {
			tok += " / "
		} else if pattern != "" {
			tok += " "
		}
		return tok
	}

	if pattern != "" {
		if letter, ok := cv.codebook.LetterOf(pattern); ok {
			tok = letter
		} else {
			tok = "[" + pattern + "]"
		}
	}
	if wordBreak {
		tok += " "
	}
	return tok
}
