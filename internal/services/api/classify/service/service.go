// Package service contains classify workflows over the detector port
package service

import (
	"context"

	"langid/internal/core/scripthint"
	str "langid/internal/platform/strings"
	"langid/internal/services/api/classify/domain"
	clsdom "langid/internal/services/classifier/domain"
	samplesdom "langid/internal/services/samples/domain"
)

// snippetBytes bounds the snippet stored with a recorded sample
const snippetBytes = 64

// Service defines the service contract for classify
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	detector clsdom.DetectorPort
	recorder samplesdom.RecorderPort
}

// New creates a new classify service
// recorder may be nil when the audit trail is disabled
func New(detector clsdom.DetectorPort, recorder samplesdom.RecorderPort) *Svc {
	if detector == nil {
		panic("classify.Service requires a non nil DetectorPort")
	}
	return &Svc{detector: detector, recorder: recorder}
}

// Text implements domain.ServicePort
func (s *Svc) Text(ctx context.Context, in domain.DetectInput) (domain.DetectOutput, error) {
	code := s.detector.Detect(ctx, in.Handle, in.Text)

	out := domain.DetectOutput{Lang: code.String()}
	if in.Text != nil {
		out.Script = scripthint.Sniff(*in.Text)
	}

	if s.recorder != nil && in.Text != nil {
		s.recorder.Record(ctx, samplesdom.RecordInput{
			Handle:  in.Handle,
			Lang:    out.Lang,
			Script:  out.Script,
			TextLen: len(*in.Text),
			Snippet: str.Truncate(*in.Text, snippetBytes),
		})
	}
	return out, nil
}

// Batch implements domain.ServicePort
// results keep item order
func (s *Svc) Batch(ctx context.Context, in domain.BatchInput) (domain.BatchOutput, error) {
	out := domain.BatchOutput{Results: make([]domain.DetectOutput, 0, len(in.Items))}
	for _, item := range in.Items {
		r, err := s.Text(ctx, item)
		if err != nil {
			return domain.BatchOutput{}, err
		}
		out.Results = append(out.Results, r)
	}
	return out, nil
}

// Init implements domain.ServicePort
func (s *Svc) Init(ctx context.Context, in domain.InitInput) (domain.InitOutput, error) {
	return domain.InitOutput{Version: s.detector.Initialize(ctx, in.Hint)}, nil
}

// Release implements domain.ServicePort
func (s *Svc) Release(ctx context.Context, in domain.ReleaseInput) (domain.ReleaseOutput, error) {
	s.detector.Release(ctx, in.Handle)
	return domain.ReleaseOutput{Released: true}, nil
}

// Version implements domain.ServicePort
func (s *Svc) Version(_ context.Context) (domain.VersionOutput, error) {
	return domain.VersionOutput{Version: s.detector.Version()}, nil
}
