package store

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
)

func TestWithLogger_SetsOnStore(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	lg := zerolog.New(&buf) // buffer-backed so output is assertable

	opt := WithLogger(lg)

	s := &Store{}
	if err := opt(s); err != nil {
		t.Fatalf("WithLogger returned error: %v", err)
	}

	// a line through the store's logger must land in our buffer
	s.Log.Info().Str("lang", "en").Msg("sample recorded")
	if buf.Len() == 0 {
		t.Fatalf("expected logger to write to buffer, got empty output")
	}

	// applying the same option again keeps working
	prevLen := buf.Len()
	if err := opt(s); err != nil {
		t.Fatalf("WithLogger second apply error: %v", err)
	}
	s.Log.Info().Msg("again")
	if buf.Len() == prevLen {
		t.Fatalf("expected additional log output after reapply")
	}
}
