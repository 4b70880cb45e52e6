// Package service contains eval workflows
package service

import (
	"context"
	"sort"

	"langid/internal/core/classifier"
	"langid/internal/core/langpack"
	"langid/internal/platform/logger"
	"langid/internal/services/eval/domain"
)

// Service runs the heuristic and the reference detector over a corpus
// and implements domain.RunnerPort
type Service struct {
	log logger.Logger
	cls *classifier.Classifier
	ref domain.ReferencePort
}

// New creates an eval service
func New(log logger.Logger, p *langpack.Pack, ref domain.ReferencePort) *Service {
	if ref == nil {
		panic("eval.Service requires a non nil ReferencePort")
	}
	return &Service{log: log, cls: classifier.New(p), ref: ref}
}

// Run implements domain.RunnerPort
func (s *Service) Run(ctx context.Context, lines []domain.Line) (domain.Report, error) {
	rep := domain.Report{}
	pairs := map[[2]string]int{}
	labels := map[string]*domain.LabelCount{}
	var heuristicRight, referenceRight, labeledTotal int

	for i, ln := range lines {
		// the reference detector is slow, so honor cancellation mid run
		if i%256 == 0 {
			if err := ctx.Err(); err != nil {
				return domain.Report{}, err
			}
		}

		h := s.cls.Classify(ln.Text)
		r := s.ref.Detect(ln.Text)

		rep.Total++
		if h == r {
			rep.Agreement++
		}
		pairs[[2]string{h.String(), r.String()}]++

		if ln.Label != "" {
			labeledTotal++
			lc := labels[ln.Label.String()]
			if lc == nil {
				lc = &domain.LabelCount{Label: ln.Label.String()}
				labels[ln.Label.String()] = lc
			}
			lc.Total++
			if h == ln.Label {
				lc.HeuristicRight++
				heuristicRight++
			}
			if r == ln.Label {
				lc.ReferenceRight++
				referenceRight++
			}
		}
	}

	if rep.Total > 0 {
		rep.AgreeRate = float64(rep.Agreement) / float64(rep.Total)
	}

	rep.Pairs = make([]domain.PairCount, 0, len(pairs))
	for k, n := range pairs {
		rep.Pairs = append(rep.Pairs, domain.PairCount{Heuristic: k[0], Reference: k[1], Count: n})
	}
	sort.Slice(rep.Pairs, func(i, j int) bool {
		if rep.Pairs[i].Heuristic != rep.Pairs[j].Heuristic {
			return rep.Pairs[i].Heuristic < rep.Pairs[j].Heuristic
		}
		return rep.Pairs[i].Reference < rep.Pairs[j].Reference
	})

	if labeledTotal > 0 {
		rep.Labeled = true
		rep.HeuristicAccuracy = float64(heuristicRight) / float64(labeledTotal)
		rep.ReferenceAccuracy = float64(referenceRight) / float64(labeledTotal)
		rep.Labels = make([]domain.LabelCount, 0, len(labels))
		for _, lc := range labels {
			rep.Labels = append(rep.Labels, *lc)
		}
		sort.Slice(rep.Labels, func(i, j int) bool { return rep.Labels[i].Label < rep.Labels[j].Label })
	}

	s.log.Info().
		Int("total", rep.Total).
		Int("agreement", rep.Agreement).
		Bool("labeled", rep.Labeled).
		Msg("eval run done")
	return rep, nil
}
