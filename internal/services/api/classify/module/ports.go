package module

import (
	"context"

	"langid/internal/services/api/classify/domain"
	csvc "langid/internal/services/api/classify/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptClassifyPort exposes service methods as module ports for cross-module usage
type adaptClassifyPort struct{ svc csvc.Service }

func (a adaptClassifyPort) Text(ctx context.Context, in domain.DetectInput) (domain.DetectOutput, error) {
	return a.svc.Text(ctx, in)
}

func (a adaptClassifyPort) Batch(ctx context.Context, in domain.BatchInput) (domain.BatchOutput, error) {
	return a.svc.Batch(ctx, in)
}
