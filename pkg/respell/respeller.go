// Package respell resolves a single word to a homophonic substitute: a
// different real word, or pair of words, that sounds similar when read
// aloud. Candidates come from a strict pronunciation dictionary, a fuzzy
// external similarity service and a persistent cache of past discoveries,
// merged under a configurable policy and ranked by a weighted similarity
// score.
package respell

import (
	"context"
	"log"
	"math/rand"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Deps are the collaborators a Resolver consumes. Store, Dict, Freq and
// Fuzzy may be nil; a missing capability degrades (no candidates, zero
// score term) rather than failing.
type Deps struct {
	Store LinkStore
	Dict  PhoneticProvider
	Freq  FrequencyOracle
	Fuzzy FuzzyProvider

	// Rand drives curated-override selection. Nil means time-seeded.
	Rand *rand.Rand
	// Logger receives provider and store diagnostics. Nil means silent.
	Logger *log.Logger

	// Curated and Blacklist default to the built-in tables when nil.
	Curated   map[string][]string
	Blacklist map[string][]string
}

// Resolver resolves one token at a time to its homophonic substitute. It
// owns a bounded per-run front cache ahead of the persistent store. Not
// safe for concurrent use; resolution is strictly sequential.
type Resolver struct {
	cfg       Config
	agg       *Aggregator
	scorer    *Scorer
	freq      FrequencyOracle
	front     *lru.Cache[string, string]
	rng       *rand.Rand
	curated   map[string][]string
	blacklist map[string]map[string]struct{}
}

// New creates a Resolver with the given policy and collaborators.
func New(cfg Config, deps Deps) (*Resolver, error) {
	size := cfg.FrontCacheSize
	if size <= 0 {
		size = DefaultCacheSize
	}
	front, err := lru.New[string, string](size)
	if err != nil {
		return nil, err
	}

	rng := deps.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	curated := deps.Curated
	if curated == nil {
		curated = DefaultCurated
	}
	blacklist := deps.Blacklist
	if blacklist == nil {
		blacklist = DefaultBlacklist
	}
	banned := make(map[string]map[string]struct{}, len(blacklist))
	for w, subs := range blacklist {
		set := make(map[string]struct{}, len(subs))
		for _, s := range subs {
			set[s] = struct{}{}
		}
		banned[w] = set
	}

	return &Resolver{
		cfg:       cfg,
		agg:       NewAggregator(deps.Store, deps.Dict, deps.Fuzzy, deps.Logger),
		scorer:    NewScorer(deps.Dict, deps.Freq),
		freq:      deps.Freq,
		front:     front,
		rng:       rng,
		curated:   curated,
		blacklist: banned,
	}, nil
}

// Resolve maps one raw token to its substitute. Punctuation around the
// base word is preserved, and when no acceptable substitute exists the
// token comes back unchanged, original casing included. Resolution itself
// is case-insensitive; restoring surface casing on a substitution is the
// caller's concern.
func (r *Resolver) Resolve(ctx context.Context, raw string) string {
	tok := SplitToken(raw)
	if tok.Base == "" {
		return raw
	}
	low := strings.ToLower(tok.Base)

	if sub, ok := r.front.Get(low); ok {
		if sub == low {
			return raw
		}
		return tok.Prefix + sub + tok.Suffix
	}

	sub := r.resolveBase(ctx, low)
	r.front.Add(low, sub)
	if sub == low {
		return raw
	}
	return tok.Prefix + sub + tok.Suffix
}

// resolveBase runs the resolution state machine for one lowercase word:
// curated override, multiword split, syllable split, then whole-word
// aggregation with filtering and scoring. Every fail-closed path returns
// base itself.
func (r *Resolver) resolveBase(ctx context.Context, base string) string {
	if subs, ok := r.curated[base]; ok && len(subs) > 0 {
		return subs[r.rng.Intn(len(subs))]
	}

	if r.cfg.EnableMultisplit && !r.cfg.StrictOnly {
		if mw := r.tryMultiwordSplit(ctx, base); mw != "" {
			return mw
		}
	}
	if r.cfg.Mode == ModeSyllable && !r.cfg.StrictOnly {
		if ss := r.trySyllableSplit(ctx, base); ss != "" {
			return ss
		}
	}

	return r.resolveWhole(ctx, base, r.cfg)
}

// resolveWhole is the aggregation + filter + score stage, shared by the
// full path and the strict-tier path used inside splits.
func (r *Resolver) resolveWhole(ctx context.Context, base string, cfg Config) string {
	cands := r.agg.Candidates(ctx, base, cfg)

	all := make([]string, 0, len(cands))
	for _, c := range cands {
		if c.Word != base {
			all = append(all, c.Word)
		}
	}
	if len(all) == 0 {
		return base
	}

	// Primary set: real, common words. Under strict-only an empty primary
	// set fails closed; otherwise fall back to anything longer than one
	// letter.
	var primary []string
	for _, w := range all {
		if len(w) > 1 && r.zipf(w) >= cfg.MinZipf {
			primary = append(primary, w)
		}
	}
	filtered := primary
	if len(primary) == 0 && !cfg.StrictOnly {
		for _, w := range all {
			if len(w) > 1 {
				filtered = append(filtered, w)
			}
		}
	}

	if banned, ok := r.blacklist[base]; ok && len(banned) > 0 {
		kept := make([]string, 0, len(filtered))
		for _, w := range filtered {
			if _, bad := banned[w]; !bad {
				kept = append(kept, w)
			}
		}
		filtered = kept
	}
	if len(filtered) == 0 {
		return base
	}

	if best := r.scorer.Best(base, filtered, cfg); best != "" {
		return best
	}
	return base
}

func (r *Resolver) zipf(w string) float64 {
	if r.freq == nil {
		return 0
	}
	return r.freq.Zipf(w)
}
