// Package repo provides the samples repository implementation.
package repo

import (
	"context"

	"github.com/google/uuid"

	"langid/internal/modkit/repokit"
	"langid/internal/platform/store"
	"langid/internal/services/samples/domain"
)

type (
	pg     struct{ q repokit.Queryer }
	binder struct{}
)

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// Storage defines the samples repository
type Storage interface {
	Insert(ctx context.Context, in domain.RecordInput) error
	Recent(ctx context.Context, limit int) ([]domain.Sample, error)
}

// Insert implements Storage
func (s *pg) Insert(ctx context.Context, in domain.RecordInput) error {
	const sql = `
INSERT INTO language_samples (id, handle, lang, script, text_len, snippet)
VALUES ($1, $2, $3, $4, $5, $6)
`
	return store.ExecOne(ctx, s.q, sql, uuid.NewString(), in.Handle, in.Lang, in.Script, in.TextLen, in.Snippet)
}

// Recent implements Storage
func (s *pg) Recent(ctx context.Context, limit int) ([]domain.Sample, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	const sql = `
select id::text, handle, lang, script, text_len, snippet, created_at::text
from language_samples
order by created_at desc
limit $1
`
	return store.Many(ctx, s.q, scanSample, sql, limit)
}

func scanSample(r repokit.Row) (domain.Sample, error) {
	var s domain.Sample
	err := r.Scan(&s.ID, &s.Handle, &s.Lang, &s.Script, &s.TextLen, &s.Snippet, &s.CreatedAt)
	return s, err
}
