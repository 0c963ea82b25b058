// Package phonetic loads the CMU pronouncing dictionary and answers
// transcription and strict-homophone queries against it.
package phonetic

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"unicode"
)

// Dictionary maps words to their phonetic transcriptions and transcriptions
// back to the words that share them. It is read-only after loading.
type Dictionary struct {
	phones  map[string][][]string // word -> transcriptions, primary first
	byTrans map[string][]string   // joined transcription -> alphabetic words
}

// Load reads a CMU-format dictionary file from disk.
func Load(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads CMU dictionary entries: one "word phones..." per line, with
// alternate pronunciations marked by a "(n)" suffix on the headword and
// comments introduced by '#'. Headwords that are not plain words (such as
// punctuation spell-outs or abbreviations with periods) are skipped.
// Purely alphabetic words are additionally indexed by transcription so
// strict homophones can be searched.
func Parse(r io.Reader) (*Dictionary, error) {
	d := &Dictionary{
		phones:  make(map[string][][]string, 1<<17),
		byTrans: make(map[string][]string, 1<<17),
	}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		word := strings.ToLower(fields[0])
		if i := strings.IndexByte(word, '('); i >= 0 {
			word = word[:i]
		}
		if !isEntryWord(word) {
			continue
		}
		trans := fields[1:]
		d.phones[word] = append(d.phones[word], trans)
		if isAlpha(word) {
			key := strings.Join(trans, " ")
			if words := d.byTrans[key]; len(words) == 0 || words[len(words)-1] != word {
				d.byTrans[key] = append(words, word)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read dictionary: %w", err)
	}
	return d, nil
}

// Phones returns the known transcriptions of word, primary first, or nil
// when the word is not in the dictionary.
func (d *Dictionary) Phones(word string) [][]string {
	return d.phones[strings.ToLower(word)]
}

// SameSounding returns the alphabetic dictionary words that have exactly
// the given transcription among their pronunciations.
func (d *Dictionary) SameSounding(phones []string) []string {
	return d.byTrans[strings.Join(phones, " ")]
}

// Len returns the number of distinct headwords loaded.
func (d *Dictionary) Len() int { return len(d.phones) }

// HomophoneGroups returns every set of two or more alphabetic words that
// share one transcription, sorted for deterministic iteration.
func (d *Dictionary) HomophoneGroups() [][]string {
	keys := make([]string, 0, len(d.byTrans))
	for k, words := range d.byTrans {
		if len(words) >= 2 {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	groups := make([][]string, 0, len(keys))
	for _, k := range keys {
		group := append([]string(nil), d.byTrans[k]...)
		sort.Strings(group)
		groups = append(groups, group)
	}
	return groups
}

// isEntryWord accepts headwords made of letters and apostrophes.
func isEntryWord(w string) bool {
	if w == "" {
		return false
	}
	hasLetter := false
	for _, r := range w {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case r == '\'':
		default:
			return false
		}
	}
	return hasLetter
}

// isAlpha accepts words made of letters only; only these may become
// homophone candidates.
func isAlpha(w string) bool {
	if w == "" {
		return false
	}
	for _, r := range w {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
