package respell

import "context"

// Split pre-passes decompose one token into a two-word phrase before
// whole-word resolution. Both run their sub-resolutions through the strict
// tier only: curated overrides and dictionary homophones, never the fuzzy
// provider and never a further split. The cut points are fixed heuristics,
// not linguistic syllabification.

// trySyllableSplit cuts base at a third of its length and respells just
// the left fragment. Returns "" when it declines.
func (r *Resolver) trySyllableSplit(ctx context.Context, base string) string {
	if len(base) < 6 {
		return ""
	}
	cut := len(base) / 3
	left, rest := base[:cut], base[cut:]
	if sub := r.resolveStrict(ctx, left); sub != "" {
		return sub + " " + rest
	}
	return ""
}

// tryMultiwordSplit tries every interior cut point and keeps the one whose
// two respelled halves carry the highest combined frequency. Both halves
// must change for a cut to be viable. Returns "" when no cut is viable.
// Each sub-resolution is store-backed, so the O(len) fan-out stays cheap
// on repeat words.
func (r *Resolver) tryMultiwordSplit(ctx context.Context, base string) string {
	var best string
	bestScore := -1.0
	for i := 2; i < len(base)-2; i++ {
		left, right := base[:i], base[i:]
		lsub := r.resolveStrict(ctx, left)
		if lsub == "" {
			continue
		}
		rsub := r.resolveStrict(ctx, right)
		if rsub == "" {
			continue
		}
		score := r.scorer.NormalizedFreq(lsub) + r.scorer.NormalizedFreq(rsub)
		if score > bestScore {
			bestScore = score
			best = lsub + " " + rsub
		}
	}
	return best
}

// resolveStrict resolves a split fragment against the strict tier only.
// Returns the substitute, or "" when the fragment would not change.
func (r *Resolver) resolveStrict(ctx context.Context, word string) string {
	if subs, ok := r.curated[word]; ok && len(subs) > 0 {
		return subs[r.rng.Intn(len(subs))]
	}
	cfg := r.cfg
	cfg.StrictOnly = true
	sub := r.resolveWhole(ctx, word, cfg)
	if sub == word {
		return ""
	}
	return sub
}
