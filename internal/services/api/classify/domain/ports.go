package domain

import "context"

// ServicePort defines the service contract for classify
type ServicePort interface {
	Text(ctx context.Context, in DetectInput) (DetectOutput, error)
	Batch(ctx context.Context, in BatchInput) (BatchOutput, error)
	Init(ctx context.Context, in InitInput) (InitOutput, error)
	Release(ctx context.Context, in ReleaseInput) (ReleaseOutput, error)
	Version(ctx context.Context) (VersionOutput, error)
}
