// Package tokenize splits raw text into word, whitespace and punctuation
// tokens, applies phrase-level overrides, and restores surface casing on
// substituted words.
package tokenize

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// tokenRe splits text into word runs (letters, digits, underscores,
// apostrophes), whitespace runs, and single punctuation characters.
// Concatenating the matches reproduces the input exactly.
var tokenRe = regexp.MustCompile(`[\w']+|\s+|[^\w\s]`)

// Tokens splits text into word, whitespace and punctuation tokens.
func Tokens(text string) []string {
	return tokenRe.FindAllString(text, -1)
}

// IsWord reports whether tok consists only of letters.
func IsWord(tok string) bool {
	if tok == "" {
		return false
	}
	for _, r := range tok {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// MatchCase reshapes sub to the casing pattern of original: all-caps stays
// all-caps, Title Case capitalizes the first letter, anything else passes
// through untouched.
func MatchCase(sub, original string) string {
	switch {
	case isUpper(original):
		return strings.ToUpper(sub)
	case isTitle(original):
		return capitalize(sub)
	default:
		return sub
	}
}

// isUpper reports whether s contains a letter and every letter is upper case.
func isUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}
		hasLetter = true
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return hasLetter
}

// isTitle reports whether s starts with an upper-case letter followed only
// by lower-case letters.
func isTitle(s string) bool {
	first, size := utf8.DecodeRuneInString(s)
	if !unicode.IsUpper(first) {
		return false
	}
	for _, r := range s[size:] {
		if unicode.IsLetter(r) && !unicode.IsLower(r) {
			return false
		}
	}
	return true
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
