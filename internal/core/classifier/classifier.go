// Package classifier implements heuristic language identification over raw text.
//
// The scan is intentionally crude: fold the input bytewise to ASCII
// lowercase, then look for space-padded keywords row by row in pack order.
// The first row with any hit decides the result. Text with no hits defaults
// to en, unless more than a tenth of its bytes are non-ASCII, in which case
// it is tagged mul. There is no tokenization and no padding of the input,
// so keywords touching the start or end of the text do not match
package classifier

import (
	"strings"

	"langid/internal/core/langpack"
	"langid/internal/core/normalize"
)

// AccentThreshold is the fraction of non-ASCII bytes above which an
// otherwise-English result becomes mul. The comparison is strictly greater
const AccentThreshold = 0.1

// Classifier scans folded text against compiled pack rows in priority order.
// It keeps no per-call state and is safe for concurrent use
type Classifier struct {
	p *langpack.Pack
}

// New creates a Classifier over a compiled pack. Row codes are trusted;
// the pack compiler and its tests keep them inside the known code set
func New(p *langpack.Pack) *Classifier {
	return &Classifier{p: p}
}

// Rows exposes the pack rows in priority order (introspection endpoints)
func (c *Classifier) Rows() []langpack.Language {
	return c.p.Rows
}

// Classify maps text to a Code. It never fails; every input yields a code
func (c *Classifier) Classify(text string) Code {
	folded := normalize.Fold(text)

	// First matching row wins; rows keep pack order
	for _, row := range c.p.Rows {
		for _, pat := range row.Patterns {
			if strings.Contains(folded, pat) {
				return Code(row.Code)
			}
		}
	}

	// Heavily accented or non-Latin text with no keyword hits is most
	// likely none of the pack languages. Byte-based ratio over the whole
	// input; a keyword hit above always takes precedence
	if float64(normalize.NonASCII(folded)) > float64(len(folded))*AccentThreshold {
		return CodeMultiple
	}

	return CodeEnglish
}
