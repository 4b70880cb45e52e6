// Package service contains samples workflows
package service

import (
	"context"

	"langid/internal/modkit/repokit"
	"langid/internal/platform/logger"
	"langid/internal/services/samples/domain"
	"langid/internal/services/samples/repo"
)

// Service implements domain.RecorderPort and domain.ReaderPort
type Service struct {
	log    logger.Logger
	Repo   repo.Storage
	binder repokit.Binder[repo.Storage]
	db     repokit.TxRunner
}

// New creates a new samples service
func New(log logger.Logger, db repokit.TxRunner, binder repokit.Binder[repo.Storage]) *Service {
	if db == nil {
		panic("samples.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("samples.Service requires a non nil Storage binder")
	}
	db = repokit.WithBeginHooks(db, asyncCommit)
	return &Service{log: log, Repo: binder.Bind(db), binder: binder, db: db}
}

// asyncCommit turns off synchronous commit for the enclosing tx. The
// trail is droppable on crash, so writers never wait on a WAL flush
func asyncCommit(ctx context.Context, q repokit.Queryer) error {
	_, err := q.Exec(ctx, "SET LOCAL synchronous_commit TO off")
	return err
}

// Record implements domain.RecorderPort
// write failures are logged and swallowed so callers never block on the trail
func (s *Service) Record(ctx context.Context, in domain.RecordInput) {
	err := repokit.WithTx(ctx, s.db, func(q repokit.Queryer) error {
		return s.binder.Bind(q).Insert(ctx, in)
	})
	if err != nil {
		s.log.Warn().
			Err(err).
			Int64("handle", in.Handle).
			Str("lang", in.Lang).
			Msg("sample insert failed")
	}
}

// Recent implements domain.ReaderPort
func (s *Service) Recent(ctx context.Context, limit int) ([]domain.Sample, error) {
	return s.Repo.Recent(ctx, limit)
}
