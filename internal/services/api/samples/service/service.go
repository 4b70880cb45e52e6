// Package service contains samples workflows over the reader port
package service

import (
	"context"

	"langid/internal/services/api/samples/domain"
	samplesdom "langid/internal/services/samples/domain"
)

// Service defines the service contract for samples
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	reader samplesdom.ReaderPort
}

// New creates a new samples service
func New(reader samplesdom.ReaderPort) *Svc {
	if reader == nil {
		panic("samples API module requires a non nil ReaderPort")
	}
	return &Svc{reader: reader}
}

// Recent implements domain.ServicePort
func (s *Svc) Recent(ctx context.Context, in domain.RecentInput) ([]domain.Sample, error) {
	rows, err := s.reader.Recent(ctx, in.Limit)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Sample, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.Sample{
			ID:        r.ID,
			Handle:    r.Handle,
			Lang:      r.Lang,
			Script:    r.Script,
			TextLen:   r.TextLen,
			Snippet:   r.Snippet,
			CreatedAt: r.CreatedAt,
		})
	}
	return out, nil
}
