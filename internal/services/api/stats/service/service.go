// Package service contains stats workflows
package service

import (
	"context"

	"langid/internal/modkit/repokit"
	"langid/internal/services/api/stats/domain"
	"langid/internal/services/api/stats/repo"
)

// Service defines the stats service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the stats service
type Svc struct {
	Repo repo.Repo
}

// New constructs a stats service. Reads run on the shared pool, so the
// repo binds once at construction
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if binder == nil {
		panic("stats.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: repokit.MustBind(binder, db)}
}

// ByLang returns recorded detection counts per language code
func (s *Svc) ByLang(ctx context.Context, in domain.ByLangInput) ([]domain.ByLangRow, error) {
	rows, err := s.Repo.ByLang(ctx, in.From, in.To, in.Lang)
	if err != nil {
		return nil, err
	}
	out := make([]domain.ByLangRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.ByLangRow{Lang: r.Lang, Samples: r.Samples})
	}
	return out, nil
}

// Daily returns recorded detection counts per day and language code
func (s *Svc) Daily(ctx context.Context, in domain.DailyInput) ([]domain.DailyRow, error) {
	rows, err := s.Repo.Daily(ctx, in.From, in.To)
	if err != nil {
		return nil, err
	}
	out := make([]domain.DailyRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.DailyRow{Day: r.Day, Lang: r.Lang, Samples: r.Samples})
	}
	return out, nil
}
