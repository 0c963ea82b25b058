package tokenize

import "regexp"

// PhraseOverride rewrites a whole phrase before tokenization, ahead of any
// per-word resolution.
type PhraseOverride struct {
	Pattern     *regexp.Regexp
	Replacement string
}

// DefaultPhrases are the built-in phrase-level substitutions, applied in
// order.
var DefaultPhrases = []PhraseOverride{
	{Pattern: regexp.MustCompile(`(?i)\bwouldn't it\b`), Replacement: "wooden tit"},
	{Pattern: regexp.MustCompile(`(?i)\bit be\b`), Replacement: "eat bee"},
}

// ApplyPhrases runs every override over text, in order.
func ApplyPhrases(text string, overrides []PhraseOverride) string {
	for _, o := range overrides {
		text = o.Pattern.ReplaceAllString(text, o.Replacement)
	}
	return text
}
