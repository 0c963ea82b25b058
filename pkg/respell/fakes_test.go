package respell

import (
	"context"
	"sort"
	"strings"
)

// fakeDict is an in-memory PhoneticProvider that counts homophone searches.
type fakeDict struct {
	phones     map[string][][]string
	soundCalls int
}

func (f *fakeDict) Phones(word string) [][]string { return f.phones[word] }

func (f *fakeDict) SameSounding(phones []string) []string {
	f.soundCalls++
	key := strings.Join(phones, " ")
	var out []string
	for w, ps := range f.phones {
		for _, p := range ps {
			if strings.Join(p, " ") == key {
				out = append(out, w)
				break
			}
		}
	}
	sort.Strings(out)
	return out
}

type fakeFreq map[string]float64

func (f fakeFreq) Zipf(word string) float64 { return f[word] }

type fakeFuzzy struct {
	words []string
	err   error
	calls int
}

func (f *fakeFuzzy) SimilarSounding(ctx context.Context, word string) ([]string, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.words, nil
}

// memStore is an in-memory LinkStore counting reads.
type memStore struct {
	links     map[string][]Candidate
	linkCalls int
	addErr    error
}

func newMemStore() *memStore { return &memStore{links: make(map[string][]Candidate)} }

func (m *memStore) Links(word string) ([]Candidate, error) {
	m.linkCalls++
	return m.links[word], nil
}

func (m *memStore) AddLinks(word string, cands []string, source string) error {
	if m.addErr != nil {
		return m.addErr
	}
	for _, c := range cands {
		m.links[word] = append(m.links[word], Candidate{Word: c, Source: source})
	}
	return nil
}
