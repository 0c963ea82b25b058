package respell

import "strings"

// punctuation is the ASCII punctuation class stripped from token edges.
const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Token is a surface unit from the source text: a base word plus the
// punctuation runs that surround it. Only the base participates in
// resolution; prefix and suffix are reattached verbatim to the substitute.
type Token struct {
	Prefix string
	Base   string
	Suffix string
}

// SplitToken separates leading and trailing punctuation runs from a raw
// token. A token that is all punctuation comes back with an empty Base.
func SplitToken(raw string) Token {
	rest := strings.TrimLeft(raw, punctuation)
	prefix := raw[:len(raw)-len(rest)]
	base := strings.TrimRight(rest, punctuation)
	suffix := rest[len(base):]
	return Token{Prefix: prefix, Base: base, Suffix: suffix}
}

func (t Token) String() string { return t.Prefix + t.Base + t.Suffix }
