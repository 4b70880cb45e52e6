package service

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/unicode/norm"

	"langid/internal/core/classifier"
	"langid/internal/services/eval/domain"
)

// LoadCorpus reads corpus lines from r. Labeled corpora use code<TAB>text;
// plain corpora are one text per line. Lines are NFC normalized and blank
// lines are skipped. limit <= 0 reads everything
func LoadCorpus(r io.Reader, labeled bool, limit int) ([]domain.Line, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var out []domain.Line
	lineNo := 0
	for sc.Scan() {
		lineNo++
		raw := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(raw) == "" {
			continue
		}

		ln := domain.Line{}
		if labeled {
			label, text, ok := strings.Cut(raw, "\t")
			if !ok {
				return nil, fmt.Errorf("eval: line %d: labeled corpus needs code<TAB>text", lineNo)
			}
			code, known := classifier.Parse(strings.TrimSpace(label))
			if !known {
				return nil, fmt.Errorf("eval: line %d: unknown label %q", lineNo, label)
			}
			ln.Label = code
			ln.Text = norm.NFC.String(text)
		} else {
			ln.Text = norm.NFC.String(raw)
		}

		out = append(out, ln)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("eval: read corpus: %w", err)
	}
	return out, nil
}
