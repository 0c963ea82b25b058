package respell

// DefaultCurated is the static table of hand-picked substitutes. It takes
// precedence over all computed resolution; when a word maps to several
// substitutes one is picked at random.
var DefaultCurated = map[string][]string{
	"nice":      {"ice", "gneiss"},
	"it":        {"tit"},
	"be":        {"bee", "bean"},
	"see":       {"sea"},
	"read":      {"reed"},
	"red":       {"read"},
	"eye":       {"I", "aye"},
	"please":    {"pleas"},
	"mister":    {"missed her"},
	"dunno":     {"dough no"},
	"wouldn't":  {"wooden"},
	"beginning": {"big inning"},
}

// DefaultBlacklist maps a word to substitutes that must never be chosen
// for it, applied after aggregation and before scoring.
var DefaultBlacklist = map[string][]string{
	"st": {"street"},
}
