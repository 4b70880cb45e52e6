package module

import (
	"context"

	"langid/internal/services/api/stats/domain"
	statssvc "langid/internal/services/api/stats/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptStatsPort struct{ svc statssvc.Service }

// ByLang returns recorded detection counts per language code
func (a adaptStatsPort) ByLang(ctx context.Context, in domain.ByLangInput) ([]domain.ByLangRow, error) {
	return a.svc.ByLang(ctx, in)
}

// Daily returns recorded detection counts per day and language code
func (a adaptStatsPort) Daily(ctx context.Context, in domain.DailyInput) ([]domain.DailyRow, error) {
	return a.svc.Daily(ctx, in)
}
