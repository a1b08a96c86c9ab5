package morse

import (
	_ "embed"
	"strings"

	"github.com/hashicorp/go-version"
)

//go:embed assets/codebook.txt
var defaultCodebookAsset string

// SupportedCodebookVersion is the codebook resource format version
// gomorse understands; the embedded asset's "# version:" header is
// checked against it at load time.
const SupportedCodebookVersion = "1.0.0"

// Codebook is a static, read-only bidirectional map between letters
// and Morse dot/dash patterns (spec.md 4.A). Implementations load the
// table once from a packaged resource; gomorse embeds it via
// go:embed, the Go analogue of the teacher's in-binary
// morseTable map (audio_extensions/morse/morse_table.go), generalized
// to also support the reverse lookup the Encoder needs.
type Codebook struct {
	letterToPattern map[string]string
	patternToLetter map[string]string
	version         string
}

// DefaultCodebook parses and returns the embedded codebook resource.
func DefaultCodebook() (*Codebook, error) {
	return ParseCodebook(defaultCodebookAsset)
}

// ParseCodebook parses a codebook resource of "LETTER PATTERN" lines,
// checking its "# version:" header against SupportedCodebookVersion
// with github.com/hashicorp/go-version (mirroring how the teacher
// version-gates compatibility elsewhere in the pack).
func ParseCodebook(data string) (*Codebook, error) {
	cb := &Codebook{
		letterToPattern: make(map[string]string),
		patternToLetter: make(map[string]string),
	}

	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			if v, ok := strings.CutPrefix(line, "# version:"); ok {
				cb.version = strings.TrimSpace(v)
			}
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, newProcessError("codebook: malformed line %q", line)
		}
		letter, pattern := fields[0], fields[1]
		cb.letterToPattern[letter] = pattern
		cb.patternToLetter[pattern] = letter
	}

	if cb.version != "" {
		if err := cb.checkVersion(); err != nil {
			return nil, err
		}
	}
	return cb, nil
}

func (cb *Codebook) checkVersion() error {
	got, err := version.NewVersion(cb.version)
	if err != nil {
		return newProcessError("codebook: invalid version header %q: %v", cb.version, err)
	}
	want, err := version.NewConstraint("= " + SupportedCodebookVersion)
	if err != nil {
		return newProcessError("codebook: invalid supported-version constraint: %v", err)
	}
	if !want.Check(got) {
		return newProcessError("codebook: unsupported version %s (want %s)", got, SupportedCodebookVersion)
	}
	return nil
}

// LetterOf returns the letter for pattern, and whether it was found.
func (cb *Codebook) LetterOf(pattern string) (string, bool) {
	letter, ok := cb.patternToLetter[pattern]
	return letter, ok
}

// PatternOf returns the dot/dash pattern for letter, and whether it
// was found.
func (cb *Codebook) PatternOf(letter string) (string, bool) {
	pattern, ok := cb.letterToPattern[letter]
	return pattern, ok
}
