package domain

import "context"

// RecorderPort records detection observations
// Record is best effort and returns nothing so detection never waits on
// or fails because of the audit trail
type RecorderPort interface {
	Record(ctx context.Context, in RecordInput)
}

// ReaderPort reads back recorded detections
type ReaderPort interface {
	Recent(ctx context.Context, limit int) ([]Sample, error)
}
