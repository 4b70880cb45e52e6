// Package domain holds the classifier operation contract and DTOs
package domain

import (
	"context"

	"langid/internal/core/classifier"
)

// DetectorPort is the operation surface the rest of the system consumes.
// All four operations are stateless; nothing is held between calls
type DetectorPort interface {
	// Initialize is a stateless warm-up
	// a nil hint returns the empty string; a non nil hint is advisory only
	// and returns the core version
	Initialize(ctx context.Context, hint *string) string

	// Detect maps text to a language code; nil text yields und
	// handle is accepted for callers that track one but is never read
	Detect(ctx context.Context, handle int64, text *string) classifier.Code

	// Release is a no-op kept so handle-tracking callers have somewhere to
	// hand handles back; detection keeps working after any number of calls
	Release(ctx context.Context, handle int64)

	// Version reports the classifier contract version
	Version() string
}
