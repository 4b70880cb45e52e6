// Package scripthint sniffs the predominant writing script of a text.
// The result annotates recorded samples and verbose CLI output; it never
// feeds back into classification
package scripthint

import (
	"unicode"
)

// Sniff returns a coarse script name for s, or "" when s has no letters.
// Ties break toward the more specific script over Latin
func Sniff(s string) string {
	var (
		latin, cyrillic, greek, han      int
		hira, kata, hangul               int
		arabic, hebrew, thai, devanagari int
	)

	for _, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}
		switch {
		case unicode.In(r, unicode.Hangul):
			hangul++
		case unicode.In(r, unicode.Hiragana):
			hira++
		case unicode.In(r, unicode.Katakana):
			kata++
		case unicode.In(r, unicode.Han):
			han++
		case unicode.In(r, unicode.Arabic):
			arabic++
		case unicode.In(r, unicode.Hebrew):
			hebrew++
		case unicode.In(r, unicode.Thai):
			thai++
		case unicode.In(r, unicode.Greek):
			greek++
		case unicode.In(r, unicode.Cyrillic):
			cyrillic++
		case unicode.In(r, unicode.Devanagari):
			devanagari++
		default:
			if unicode.In(r, unicode.Latin) {
				latin++
			}
		}
	}

	type sc struct {
		name string
		cnt  int
	}
	cands := []sc{
		{"Hiragana", hira},
		{"Katakana", kata},
		{"Hangul", hangul},
		{"Han", han},
		{"Arabic", arabic},
		{"Hebrew", hebrew},
		{"Thai", thai},
		{"Greek", greek},
		{"Cyrillic", cyrillic},
		{"Devanagari", devanagari},
		{"Latin", latin},
	}
	var best sc
	for _, c := range cands {
		if c.cnt > best.cnt {
			best = c
		}
	}
	if best.cnt == 0 {
		return ""
	}
	return best.name
}
