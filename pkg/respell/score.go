package respell

import (
	"sort"
	"strings"

	"github.com/antzucaro/matchr"
)

// zipfCeiling maps the Zipf scale onto roughly [0,1]; the most common
// English words sit around Zipf 7.
const zipfCeiling = 7.0

// Scorer ranks candidates against a source word by a weighted mix of
// phonetic distance, spelling distance, frequency and length.
type Scorer struct {
	dict PhoneticProvider
	freq FrequencyOracle
}

// NewScorer creates a Scorer. dict and freq may be nil; a missing
// capability contributes zero to the corresponding score term.
func NewScorer(dict PhoneticProvider, freq FrequencyOracle) *Scorer {
	return &Scorer{dict: dict, freq: freq}
}

// PhoneticDistance is the edit distance between the primary transcriptions
// of a and b. ok is false when either word has no known transcription; the
// caller treats that as an infinitely distant pair.
func (s *Scorer) PhoneticDistance(a, b string) (dist int, ok bool) {
	if s.dict == nil {
		return 0, false
	}
	pa := s.dict.Phones(a)
	pb := s.dict.Phones(b)
	if len(pa) == 0 || len(pb) == 0 {
		return 0, false
	}
	return Distance(pa[0], pb[0]), true
}

// NormalizedFreq maps the oracle's Zipf value onto roughly [0,1].
func (s *Scorer) NormalizedFreq(word string) float64 {
	if s.freq == nil {
		return 0
	}
	return s.freq.Zipf(word) / zipfCeiling
}

// Score computes the composite similarity of candidate to source; higher
// is better. maxLen is the longest candidate length in the set under
// consideration and only matters when cfg.PreferLonger is set. A candidate
// without phonetic data scores zero on the phonetic term rather than
// erroring.
func (s *Scorer) Score(source, candidate string, maxLen int, cfg Config) float64 {
	var phonTerm float64
	if pd, ok := s.PhoneticDistance(source, candidate); ok {
		phonTerm = 1 / (1 + float64(pd))
	}
	od := matchr.Levenshtein(strings.ToLower(source), strings.ToLower(candidate))
	orthTerm := 1 / (1 + float64(od))

	score := cfg.Alpha*phonTerm + cfg.Beta*orthTerm + cfg.Gamma*s.NormalizedFreq(candidate)
	if cfg.PreferLonger && maxLen > 0 {
		score += cfg.LengthWeight * float64(len(candidate)) / float64(maxLen)
	}
	return score
}

// Best returns the highest-scoring candidate, or "" when words is empty.
// Candidates are visited in sorted order, so a tie goes to the
// lexicographically first word and results are reproducible.
func (s *Scorer) Best(source string, words []string, cfg Config) string {
	if len(words) == 0 {
		return ""
	}
	sorted := append([]string(nil), words...)
	sort.Strings(sorted)

	maxLen := 0
	if cfg.PreferLonger {
		for _, w := range sorted {
			if len(w) > maxLen {
				maxLen = len(w)
			}
		}
	}

	best, bestScore := "", -1.0
	for _, w := range sorted {
		if sc := s.Score(source, w, maxLen, cfg); sc > bestScore {
			best, bestScore = w, sc
		}
	}
	return best
}
