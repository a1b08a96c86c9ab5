package morse

// PauseState is the decoder's observable renewal-trigger flag
// (spec.md 3, "last_state").
type PauseState int

const (
	// NoPause is the normal state.
	NoPause PauseState = iota
	// LongPauseDetected flags that a gap exceeded the learned maximum
	// silence, optionally triggering session renewal.
	LongPauseDetected
)

// detectLongPause flags and clamps an overlong gap duration (spec.md
// 4.I, "Long-pause Detector"). Grounded on the teacher's
// checkWordSeparator (audio_extensions/morse/decoder.go), which
// checks elapsed silence against a fixed WordSep threshold; gomorse
// uses the learned maximum gap ratio instead of a PARIS constant.
//
// It returns the (possibly clamped) duration to record in the gap
// window, and the resulting pause state.
func detectLongPause(duration, unit float64, gapCfg *WindowConfig) (corrected float64, state PauseState) {
	maxRatio := 0.0
	for _, pair := range gapCfg.Ratios {
		if m := pair.mean(); m > maxRatio {
			maxRatio = m
		}
	}
	maxSilence := maxRatio * unit

	if duration-maxSilence > gapCfg.MeanMinDiff*unit {
		return maxSilence, LongPauseDetected
	}
	return duration, NoPause
}
