package domain

import (
	"context"

	"langid/internal/core/classifier"
)

// ReferencePort is the comparison detector consulted by eval runs
type ReferencePort interface {
	Detect(text string) classifier.Code
}

// RunnerPort runs an eval over corpus lines
type RunnerPort interface {
	Run(ctx context.Context, lines []Line) (Report, error)
}
