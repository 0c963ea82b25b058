package respell

import "context"

// Provenance tags recorded with every persisted candidate link.
const (
	SourceStrict = "cmu"
	SourceFuzzy  = "datamuse"
)

// Candidate is a possible substitute for a word together with the
// provenance of the provider that discovered it.
type Candidate struct {
	Word   string
	Source string
}

// PhoneticProvider is a closed pronunciation dictionary.
type PhoneticProvider interface {
	// Phones returns the known transcriptions of word, primary first.
	// An empty result means the word is not in the dictionary.
	Phones(word string) [][]string
	// SameSounding returns the dictionary words that have exactly the
	// given transcription among their pronunciations.
	SameSounding(phones []string) []string
}

// FrequencyOracle reports real-world usage frequency on the Zipf scale.
type FrequencyOracle interface {
	// Zipf returns the Zipf frequency of word, or 0 when unknown.
	Zipf(word string) float64
}

// FuzzyProvider queries an external similarity service. Failures are
// expected and degrade to an empty candidate list at the call site.
type FuzzyProvider interface {
	SimilarSounding(ctx context.Context, word string) ([]string, error)
}

// LinkStore is the persistent, append-only log of discovered candidate
// links. AddLinks must be idempotent: re-adding an existing link is a
// no-op, never an error.
type LinkStore interface {
	Links(word string) ([]Candidate, error)
	AddLinks(word string, candidates []string, source string) error
}
