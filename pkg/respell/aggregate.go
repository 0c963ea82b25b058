package respell

import (
	"context"
	"log"
	"sort"
	"strings"
)

// Aggregator gathers substitution candidates for a word. It consults the
// persistent link store first, falls back to the pronunciation dictionary
// and the fuzzy provider on a miss, and writes fresh discoveries back to
// the store so future runs resolve from cache.
type Aggregator struct {
	store  LinkStore
	dict   PhoneticProvider
	fuzzy  FuzzyProvider
	logger *log.Logger
}

// NewAggregator creates an Aggregator. Any collaborator may be nil; a nil
// capability simply contributes no candidates. A nil logger silences
// diagnostics.
func NewAggregator(store LinkStore, dict PhoneticProvider, fuzzy FuzzyProvider, logger *log.Logger) *Aggregator {
	return &Aggregator{store: store, dict: dict, fuzzy: fuzzy, logger: logger}
}

// Candidates returns the candidate set for word under cfg's selection
// policy, sorted by word for deterministic downstream iteration. For a
// fixed word and policy against an unchanged store, repeated calls return
// the same set.
func (ag *Aggregator) Candidates(ctx context.Context, word string, cfg Config) []Candidate {
	if ag.store != nil {
		cached, err := ag.store.Links(word)
		if err != nil {
			ag.logf("link store read for %q: %v", word, err)
		}
		if picked := selectByPolicy(cached, cfg); len(picked) > 0 {
			return picked
		}
	}

	strict := ag.strictHomophones(word)

	// The network call is short-circuited whenever strict results already
	// satisfy the policy. A failed call degrades to an empty result.
	var fuzzy []string
	if ag.fuzzy != nil && !cfg.StrictOnly && (!cfg.StrictFirst || len(strict) == 0) {
		var err error
		fuzzy, err = ag.fuzzy.SimilarSounding(ctx, word)
		if err != nil {
			ag.logf("fuzzy lookup for %q: %v", word, err)
			fuzzy = nil
		}
	}

	// A lost write is rediscovered on the next run; the in-memory result
	// for this call is still valid.
	if ag.store != nil {
		if err := ag.store.AddLinks(word, strict, SourceStrict); err != nil {
			ag.logf("link store write for %q: %v", word, err)
		}
		if err := ag.store.AddLinks(word, fuzzy, SourceFuzzy); err != nil {
			ag.logf("link store write for %q: %v", word, err)
		}
	}

	fresh := make([]Candidate, 0, len(strict)+len(fuzzy))
	for _, w := range strict {
		fresh = append(fresh, Candidate{Word: w, Source: SourceStrict})
	}
	for _, w := range fuzzy {
		fresh = append(fresh, Candidate{Word: w, Source: SourceFuzzy})
	}
	return selectByPolicy(fresh, cfg)
}

// strictHomophones returns the dictionary words sharing word's primary
// transcription, excluding word itself.
func (ag *Aggregator) strictHomophones(word string) []string {
	if ag.dict == nil {
		return nil
	}
	phones := ag.dict.Phones(word)
	if len(phones) == 0 {
		return nil
	}
	var out []string
	for _, cand := range ag.dict.SameSounding(phones[0]) {
		if !strings.EqualFold(cand, word) {
			out = append(out, cand)
		}
	}
	return out
}

// selectByPolicy partitions candidates by provenance and applies the
// strict-only / strict-first / union selection. The result is deduplicated
// by word and sorted.
func selectByPolicy(cands []Candidate, cfg Config) []Candidate {
	var strict, fuzzy []Candidate
	for _, c := range cands {
		switch c.Source {
		case SourceStrict:
			strict = append(strict, c)
		case SourceFuzzy:
			fuzzy = append(fuzzy, c)
		}
	}

	var picked []Candidate
	switch {
	case cfg.StrictOnly:
		picked = strict
	case cfg.StrictFirst:
		picked = strict
		if len(picked) == 0 {
			picked = fuzzy
		}
	default:
		picked = append(append([]Candidate(nil), strict...), fuzzy...)
	}

	seen := make(map[string]struct{}, len(picked))
	out := make([]Candidate, 0, len(picked))
	for _, c := range picked {
		if _, dup := seen[c.Word]; dup {
			continue
		}
		seen[c.Word] = struct{}{}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Word < out[j].Word })
	return out
}

func (ag *Aggregator) logf(format string, args ...interface{}) {
	if ag.logger != nil {
		ag.logger.Printf(format, args...)
	}
}
