package morse

// Tuning knobs and their defaults (spec.md 6), named after the
// distilled spec's ALL-CAPS settings and original_source/libmorse/settings.py.
const (
	// MaxWin is the shared ring-window capacity (MAX_WIN) for both the
	// mark and gap windows, and for the unit history.
	MaxWin = 36
	// DefaultMinLen is the minimum window length before clustering is
	// attempted (settings.py: part of SIGNAL_RANGE).
	DefaultMinLen = 12
	// DefaultMeanMinDiff is the lower spread-bound multiple of unit
	// (settings.py: MEAN_MIN_DIFF).
	DefaultMeanMinDiff = 1.1
	// DefaultMeanMaxDiff is the upper spread-bound multiple of unit
	// (settings.py: MEAN_MAX_DIFF).
	DefaultMeanMaxDiff = 11.9
	// DefaultUnit is the fallback unit length in ms, used before any
	// clustering has been accepted (settings.py: UNIT).
	DefaultUnit = 300.0
	// DefaultClusterIter bounds stable k-means retry attempts
	// (settings.py: CLUSTER_ITER).
	DefaultClusterIter = 10
	// DefaultEnableRenewal gates the long-pause renewal path
	// (settings.py: ENABLE_RENEWAL).
	DefaultEnableRenewal = false
)

// ratioPair is a running (sum, count) accumulator; its mean is derived
// lazily so successive updates stay commutative (spec.md 9: "do not
// store means directly").
type ratioPair struct {
	sum   float64
	count uint64
}

func (r *ratioPair) mean() float64 {
	if r.count == 0 {
		return 0
	}
	return r.sum / float64(r.count)
}

func (r *ratioPair) add(v float64) {
	r.sum += v
	r.count++
}

// WindowConfig is the spec.md 3 "Classification Config (per window)":
// clustering arity, the length threshold before clustering is
// attempted, the accepted inter-centroid spread bounds, and the
// learned ratio table for this window's symbol tags.
type WindowConfig struct {
	MeansK      int
	MinLen      int
	MeanMinDiff float64
	MeanMaxDiff float64
	Ratios      map[SymbolTag]*ratioPair
}

// newMarkWindowConfig returns the classification config for the mark
// window (k=2, tags DOT/DASH), seeded from the decoder's overridable
// clustering knobs.
func newMarkWindowConfig(cfg DecoderConfig) *WindowConfig {
	return &WindowConfig{
		MeansK:      2,
		MinLen:      cfg.MinLen,
		MeanMinDiff: cfg.MeanMinDiff,
		MeanMaxDiff: cfg.MeanMaxDiff,
		Ratios: map[SymbolTag]*ratioPair{
			DOT:  {sum: 1.0, count: 1},
			DASH: {sum: 3.0, count: 1},
		},
	}
}

// newGapWindowConfig returns the classification config for the gap
// window (k=3, tags INTRA/SHORT/MEDIUM), seeded from the decoder's
// overridable clustering knobs.
func newGapWindowConfig(cfg DecoderConfig) *WindowConfig {
	return &WindowConfig{
		MeansK:      3,
		MinLen:      cfg.MinLen,
		MeanMinDiff: cfg.MeanMinDiff,
		MeanMaxDiff: cfg.MeanMaxDiff,
		Ratios: map[SymbolTag]*ratioPair{
			INTRA:  {sum: 1.0, count: 1},
			SHORT:  {sum: 3.0, count: 1},
			MEDIUM: {sum: 7.0, count: 1},
		},
	}
}

// orderedTags returns this config's symbol tags sorted ascending by
// their current learned mean ratio (spec.md 4.E step 1).
func (c *WindowConfig) orderedTags() []SymbolTag {
	var tags []SymbolTag
	if c.MeansK == 2 {
		tags = append(tags, markTags...)
	} else {
		tags = append(tags, gapTags...)
	}
	sorted := make([]SymbolTag, len(tags))
	copy(sorted, tags)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && c.Ratios[sorted[j-1]].mean() > c.Ratios[sorted[j]].mean(); j-- {
			sorted[j-1], sorted[j] = sorted[j], sorted[j-1]
		}
	}
	return sorted
}

// DecoderConfig holds the yaml-overridable tuning knobs for one
// Decoder instance, mirroring the teacher's DecoderConfig/MorseConfig
// structs (decoder_config.go, audio_extensions/morse/decoder.go).
type DecoderConfig struct {
	MinLen         int     `yaml:"min_len"`
	MaxWin         int     `yaml:"max_win"`
	MeanMinDiff    float64 `yaml:"mean_min_diff"`
	MeanMaxDiff    float64 `yaml:"mean_max_diff"`
	Unit           float64 `yaml:"unit"`
	ClusterIter    int     `yaml:"cluster_iter"`
	EnableRenewal  bool    `yaml:"enable_renewal"`
	InputQueueSize int     `yaml:"input_queue_size"`
	View           string  `yaml:"view"` // "alphabet" or "morse"
}

// DefaultDecoderConfig returns spec.md 6's default tuning knobs.
func DefaultDecoderConfig() DecoderConfig {
	return DecoderConfig{
		MinLen:         DefaultMinLen,
		MaxWin:         MaxWin,
		MeanMinDiff:    DefaultMeanMinDiff,
		MeanMaxDiff:    DefaultMeanMaxDiff,
		Unit:           DefaultUnit,
		ClusterIter:    DefaultClusterIter,
		EnableRenewal:  DefaultEnableRenewal,
		InputQueueSize: 0, // unbounded by default, per spec.md 5
		View:           "alphabet",
	}
}
