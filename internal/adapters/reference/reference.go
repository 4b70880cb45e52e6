// Package reference wraps lingua-go as the comparison detector for eval
// runs. Detection never consults it; only the eval harness does
package reference

import (
	"strings"

	"github.com/pemistahl/lingua-go"

	"langid/internal/core/classifier"
)

// Detector maps arbitrary text to the closed result code set using lingua
type Detector struct {
	d lingua.LanguageDetector
}

// New builds a detector across every language lingua knows. Construction
// loads the language models and is expensive; share one instance
func New() *Detector {
	d := lingua.NewLanguageDetectorBuilder().
		FromAllLanguages().
		Build()
	return &Detector{d: d}
}

// Detect maps lingua's answer into the closed code set. Languages outside
// the set become mul; text lingua cannot place becomes und
func (d *Detector) Detect(text string) classifier.Code {
	lang, ok := d.d.DetectLanguageOf(text)
	if !ok {
		return classifier.CodeUndetermined
	}
	if code, known := classifier.Parse(strings.ToLower(lang.IsoCode639_1().String())); known {
		return code
	}
	return classifier.CodeMultiple
}
