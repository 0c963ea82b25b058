package respell

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestPhoneticDistance(t *testing.T) {
	dict := &fakeDict{phones: map[string][][]string{
		"fare":  {{"F", "EH1", "R"}},
		"fares": {{"F", "EH1", "R", "Z"}},
	}}
	s := NewScorer(dict, nil)

	d, ok := s.PhoneticDistance("fare", "fares")
	if !ok || d != 1 {
		t.Errorf("PhoneticDistance(fare, fares) = %d, %v; want 1, true", d, ok)
	}
	if _, ok := s.PhoneticDistance("fare", "blorp"); ok {
		t.Error("PhoneticDistance with unknown word reported ok")
	}
	if _, ok := NewScorer(nil, nil).PhoneticDistance("fare", "fares"); ok {
		t.Error("PhoneticDistance with nil dictionary reported ok")
	}
}

func TestNormalizedFreq(t *testing.T) {
	s := NewScorer(nil, fakeFreq{"the": 7.0, "half": 3.5})
	if got := s.NormalizedFreq("the"); !almostEqual(got, 1.0) {
		t.Errorf("NormalizedFreq(the) = %v, want 1.0", got)
	}
	if got := s.NormalizedFreq("half"); !almostEqual(got, 0.5) {
		t.Errorf("NormalizedFreq(half) = %v, want 0.5", got)
	}
	if got := s.NormalizedFreq("unknown"); got != 0 {
		t.Errorf("NormalizedFreq(unknown) = %v, want 0", got)
	}
}

func TestScoreMissingTranscription(t *testing.T) {
	dict := &fakeDict{phones: map[string][][]string{"abc": {{"AA"}}}}
	s := NewScorer(dict, fakeFreq{"abd": 3.5})
	cfg := DefaultConfig()

	// abd has no transcription: only the orthographic and frequency terms
	// contribute. Edit distance abc->abd is 1.
	want := cfg.Beta*0.5 + cfg.Gamma*0.5
	if got := s.Score("abc", "abd", 0, cfg); !almostEqual(got, want) {
		t.Errorf("Score = %v, want %v", got, want)
	}
}

func TestScoreComposite(t *testing.T) {
	dict := &fakeDict{phones: map[string][][]string{
		"fare": {{"F", "EH1", "R"}},
		"fair": {{"F", "EH1", "R"}},
	}}
	s := NewScorer(dict, fakeFreq{"fair": 5.6})
	cfg := DefaultConfig()

	// Identical transcriptions, edit distance 2, Zipf 5.6.
	want := cfg.Alpha*1.0 + cfg.Beta*(1.0/3.0) + cfg.Gamma*(5.6/7.0)
	if got := s.Score("fare", "fair", 0, cfg); !almostEqual(got, want) {
		t.Errorf("Score = %v, want %v", got, want)
	}
}

func TestBestTieBreaksLexicographically(t *testing.T) {
	s := NewScorer(nil, nil)
	// Both candidates are edit distance 1 from the source with no phonetic
	// or frequency signal, so the tie must go to the first in sort order.
	if got := s.Best("aa", []string{"ba", "ab"}, DefaultConfig()); got != "ab" {
		t.Errorf("Best = %q, want %q", got, "ab")
	}
}

func TestBestEmpty(t *testing.T) {
	if got := NewScorer(nil, nil).Best("word", nil, DefaultConfig()); got != "" {
		t.Errorf("Best on empty set = %q, want \"\"", got)
	}
}

func TestBestPreferLonger(t *testing.T) {
	s := NewScorer(nil, nil)
	words := []string{"yyyy", "yyyyyyy"}

	cfg := DefaultConfig()
	if got := s.Best("xxxx", words, cfg); got != "yyyy" {
		t.Errorf("Best without length preference = %q, want %q", got, "yyyy")
	}

	cfg.PreferLonger = true
	cfg.LengthWeight = 1.0
	if got := s.Best("xxxx", words, cfg); got != "yyyyyyy" {
		t.Errorf("Best with length preference = %q, want %q", got, "yyyyyyy")
	}
}
