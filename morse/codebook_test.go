package morse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCodebookRoundTrip(t *testing.T) {
	cb, err := DefaultCodebook()
	require.NoError(t, err)

	cases := map[string]string{
		"S": "...",
		"O": "---",
		"A": ".-",
		"0": "-----",
	}
	for letter, pattern := range cases {
		got, ok := cb.PatternOf(letter)
		assert.True(t, ok, "PatternOf(%q)", letter)
		assert.Equal(t, pattern, got)

		backLetter, ok := cb.LetterOf(pattern)
		assert.True(t, ok, "LetterOf(%q)", pattern)
		assert.Equal(t, letter, backLetter)
	}
}

func TestParseCodebookRejectsUnsupportedVersion(t *testing.T) {
	_, err := ParseCodebook("# version: 9.9.9\nA .-\n")
	assert.Error(t, err)
}

func TestParseCodebookRejectsMalformedLine(t *testing.T) {
	_, err := ParseCodebook("# version: 1.0.0\nNOTAPAIR\n")
	assert.Error(t, err)
}
