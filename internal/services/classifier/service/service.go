// Package service implements the classifier operations
package service

import (
	"context"

	"langid/internal/core/classifier"
	"langid/internal/core/langpack"
	"langid/internal/core/version"
	"langid/internal/platform/logger"
	str "langid/internal/platform/strings"
)

// snippetBytes caps how much of the input text reaches debug logs
const snippetBytes = 64

// Service implements domain.DetectorPort
type Service struct {
	log logger.Logger
	cls *classifier.Classifier
}

// New constructs a classifier service over a compiled pack
// hand it zerolog.Nop() when embedding as a quiet library
func New(log logger.Logger, p *langpack.Pack) *Service {
	return &Service{log: log, cls: classifier.New(p)}
}

// Initialize is a stateless warm-up
// a nil hint returns the empty string; a non nil hint is logged and ignored
func (s *Service) Initialize(_ context.Context, hint *string) string {
	if hint == nil {
		return ""
	}
	s.log.Debug().Str("hint", *hint).Msg("initialize hint is advisory, nothing is loaded")
	return version.CoreVersion
}

// Detect maps text to a language code; nil text yields und
// handle is vestigial: accepted and logged, never read
func (s *Service) Detect(_ context.Context, handle int64, text *string) classifier.Code {
	if text == nil {
		return classifier.CodeUndetermined
	}
	code := s.cls.Classify(*text)
	s.log.Debug().
		Int64("handle", handle).
		Int("text_len", len(*text)).
		Str("snippet", str.Truncate(*text, snippetBytes)).
		Str("lang", code.String()).
		Msg("detect")
	return code
}

// Release keeps the handle lifecycle shape; there is no state to drop
func (s *Service) Release(_ context.Context, handle int64) {
	if handle != 0 {
		s.log.Debug().Int64("handle", handle).Msg("release is a no-op")
	}
}

// Version reports the classifier contract version
func (s *Service) Version() string { return version.CoreVersion }
