// Package freq loads a word-frequency list and reports frequencies on the
// Zipf scale: log10 of occurrences per billion words of running text.
package freq

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Table is a read-only word-to-Zipf lookup.
type Table struct {
	zipf map[string]float64
}

// Load reads a frequency list file from disk.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads "word count" lines (tab- or space-separated) and converts
// counts to Zipf values against the list's own total. Malformed lines are
// skipped.
func Parse(r io.Reader) (*Table, error) {
	type entry struct {
		word  string
		count float64
	}
	var entries []entry
	var total float64

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) < 2 {
			continue
		}
		count, err := strconv.ParseFloat(fields[1], 64)
		if err != nil || count <= 0 {
			continue
		}
		entries = append(entries, entry{word: strings.ToLower(fields[0]), count: count})
		total += count
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read frequency list: %w", err)
	}
	if total == 0 {
		return nil, fmt.Errorf("frequency list is empty")
	}

	t := &Table{zipf: make(map[string]float64, len(entries))}
	for _, e := range entries {
		t.zipf[e.word] = math.Log10(e.count/total) + 9
	}
	return t, nil
}

// Zipf returns the Zipf frequency of word, or 0 when the word is unknown.
func (t *Table) Zipf(word string) float64 {
	return t.zipf[strings.ToLower(word)]
}

// Len returns the number of words in the table.
func (t *Table) Len() int { return len(t.zipf) }
