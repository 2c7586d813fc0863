// Package keywords decides whether a piece of text is signature-related.
//
// Matching happens in two stages: a literal substring check against a keyword
// list, then a fuzzy edit-similarity fallback that tolerates OCR noise and
// common misspellings ("signatur", "siganture"). Both the text-layout and the
// vision detection paths share the same Matcher so their results agree for
// identical input.
package keywords

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// DefaultKeywords is the canonical set of signature-related phrases,
// including misspellings that show up in scanned documents and OCR output.
var DefaultKeywords = []string{
	"signature",
	"sign here",
	"sign:",
	"sig.",
	"authorised signatory",
	"signed by",
	"please sign",
	"customer signature",
	"employee signature",
	"signature:",
	"signatur",
	"signat",
	"siganture",
}

// DefaultCutoff is the fuzzy-similarity acceptance threshold. The value is a
// tuning choice with no derivation behind it; override Matcher.Cutoff to
// experiment.
const DefaultCutoff = 0.70

// Matcher tests text against a keyword list. The zero value matches nothing;
// use NewMatcher for the default configuration.
type Matcher struct {
	// Keywords are matched lower-cased. Entries must already be lower case.
	Keywords []string

	// Cutoff is the minimum Ratio for a fuzzy match, in [0,1].
	Cutoff float64
}

// NewMatcher returns a Matcher with the default keyword list and cutoff.
func NewMatcher() *Matcher {
	return &Matcher{Keywords: DefaultKeywords, Cutoff: DefaultCutoff}
}

// Matches reports whether text is signature-related. Empty text never
// matches. A keyword contained literally in the lower-cased text matches
// regardless of the cutoff; otherwise the fuzzy ratio decides.
func (m *Matcher) Matches(text string) bool {
	if text == "" {
		return false
	}

	t := strings.ToLower(text)
	for _, kw := range m.Keywords {
		if strings.Contains(t, kw) {
			return true
		}
		if Ratio(t, kw) >= m.Cutoff {
			return true
		}
	}
	return false
}

// Ratio is a symmetric, length-normalized edit similarity in [0,1]:
// 1 - editDistance(a, b) / max(len(a), len(b)), measured in runes.
// Two empty strings are identical and score 1.
func Ratio(a, b string) float64 {
	if a == b {
		return 1
	}

	la := len([]rune(a))
	lb := len([]rune(b))
	longest := la
	if lb > longest {
		longest = lb
	}
	if longest == 0 {
		return 1
	}

	dist := levenshtein.ComputeDistance(a, b)
	return 1 - float64(dist)/float64(longest)
}
