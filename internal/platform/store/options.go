package store

import (
	"langid/internal/platform/logger"
)

// Option adjusts a Store while Open constructs it
type Option func(*Store) error

// WithLogger routes store and subclient logging through log
func WithLogger(log logger.Logger) Option {
	return func(s *Store) error {
		s.Log = log
		return nil
	}
}
