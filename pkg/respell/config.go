package respell

// Processing modes. ModeSyllable enables the syllable split pre-pass on
// long words; ModeWord resolves tokens whole.
const (
	ModeWord     = "word"
	ModeSyllable = "syllable"
)

// Defaults for the tunable knobs, matching the CLI defaults.
const (
	DefaultAlpha        = 1.0
	DefaultBeta         = 0.5
	DefaultGamma        = 0.2
	DefaultLengthWeight = 0.0
	DefaultMinZipf      = 2.0
	DefaultCacheSize    = 2048
)

// Config is an immutable snapshot of resolution policy for one run. It is
// built once at startup and passed by value; nothing mutates it afterwards.
type Config struct {
	// StrictOnly restricts candidates to dictionary homophones; the fuzzy
	// provider is never consulted and split pre-passes are disabled.
	StrictOnly bool
	// StrictFirst prefers dictionary homophones, falling back to fuzzy
	// candidates only when no strict ones exist.
	StrictFirst bool
	// EnableMultisplit turns on the two-word split pre-pass.
	EnableMultisplit bool
	// PreferLonger adds a length term to the candidate score.
	PreferLonger bool
	// Mode is ModeWord or ModeSyllable.
	Mode string

	// Scoring weights; see Scorer.Score.
	Alpha        float64
	Beta         float64
	Gamma        float64
	LengthWeight float64

	// MinZipf is the minimum Zipf frequency for a candidate to count as a
	// real word during filtering.
	MinZipf float64
	// FrontCacheSize bounds the per-run LRU cache placed ahead of the
	// persistent store.
	FrontCacheSize int
}

// DefaultConfig returns the policy used when no flags are given: word mode,
// union of strict and fuzzy candidates, default weights.
func DefaultConfig() Config {
	return Config{
		Mode:           ModeWord,
		Alpha:          DefaultAlpha,
		Beta:           DefaultBeta,
		Gamma:          DefaultGamma,
		LengthWeight:   DefaultLengthWeight,
		MinZipf:        DefaultMinZipf,
		FrontCacheSize: DefaultCacheSize,
	}
}
