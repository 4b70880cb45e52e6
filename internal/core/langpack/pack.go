// Package langpack loads and compiles the embedded v1 languages.json.
// Row order in the file is the match priority for the classifier
package langpack

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
)

//go:embed languages.json
var embedded []byte

type rawLanguage struct {
	Code     string   `json:"code"`
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
}

type rawPackV1 struct {
	Version   int            `json:"version"`
	Meta      map[string]any `json:"meta"`
	Languages []rawLanguage  `json:"languages"`
}

// Language is one compiled pack row. Patterns holds the space-padded form
// of each keyword (same order) so the scan is a plain substring check
type Language struct {
	Code     string
	Name     string
	Keywords []string
	Patterns []string
}

// Pack is the compiled keyword pack. Rows keeps file order; the first row
// with a matching keyword decides the result
type Pack struct {
	Version int
	Meta    map[string]any
	Rows    []Language
}

// Load returns the compiled pack from the embedded v1 languages.json
func Load() (*Pack, error) {
	return parse(embedded)
}

func parse(b []byte) (*Pack, error) {
	var rp rawPackV1
	if err := json.Unmarshal(b, &rp); err != nil {
		return nil, fmt.Errorf("langpack: parse languages.json: %w", err)
	}
	if rp.Version != 1 {
		return nil, fmt.Errorf("langpack: unsupported languages.json version %d (want 1)", rp.Version)
	}
	if len(rp.Languages) == 0 {
		return nil, fmt.Errorf("langpack: empty language list")
	}

	p := &Pack{
		Version: rp.Version,
		Meta:    rp.Meta,
		Rows:    make([]Language, 0, len(rp.Languages)),
	}

	seen := make(map[string]struct{}, len(rp.Languages))
	for _, rl := range rp.Languages {
		code := strings.TrimSpace(rl.Code)
		if len(code) != 2 || !asciiLowerWord(code) {
			return nil, fmt.Errorf("langpack: bad language code %q", rl.Code)
		}
		if _, dup := seen[code]; dup {
			return nil, fmt.Errorf("langpack: duplicate language code %q", code)
		}
		seen[code] = struct{}{}
		if len(rl.Keywords) == 0 {
			return nil, fmt.Errorf("langpack: %s: no keywords", code)
		}

		row := Language{
			Code:     code,
			Name:     strings.TrimSpace(rl.Name),
			Keywords: make([]string, 0, len(rl.Keywords)),
			Patterns: make([]string, 0, len(rl.Keywords)),
		}
		for _, kw := range rl.Keywords {
			// Folding is ASCII-only, so anything outside a-z could never
			// match case-insensitively; reject it at compile time
			if !asciiLowerWord(kw) {
				return nil, fmt.Errorf("langpack: %s: bad keyword %q (want ascii lowercase letters)", code, kw)
			}
			row.Keywords = append(row.Keywords, kw)
			row.Patterns = append(row.Patterns, " "+kw+" ")
		}
		p.Rows = append(p.Rows, row)
	}
	return p, nil
}

func asciiLowerWord(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}
