// Package repo provides postgres access for stats
package repo

import (
	"context"

	"langid/internal/modkit/repokit"
	"langid/internal/platform/store"
)

// Repo is the minimal persistence surface for stats
type Repo interface {
	ByLang(ctx context.Context, from, to, lang string) ([]RowByLang, error)
	Daily(ctx context.Context, from, to string) ([]RowDaily, error)
}

// RowByLang represents a stats row by language code
type RowByLang struct {
	Lang    string
	Samples int64
}

// RowDaily represents a stats row by day and language code
type RowDaily struct {
	Day     string
	Lang    string
	Samples int64
}

type (
	// PG is a binder that can bind the repo to a Queryer or TxRunner
	PG struct{}
	// queries implements the Repo interface
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder that can bind the repo to a Queryer or TxRunner
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind wires a Queryer to the repo
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

func (r *queries) ByLang(ctx context.Context, from, to, lang string) ([]RowByLang, error) {
	const sql = `
select lang, count(1) as samples
from language_samples
where created_at::date between $1 and $2
and ($3 = '' or lang = $3)
group by lang
order by samples desc, lang asc
`
	return store.Many(ctx, r.q, scanByLang, sql, from, to, lang)
}

func (r *queries) Daily(ctx context.Context, from, to string) ([]RowDaily, error) {
	const sql = `
select created_at::date::text as day, lang, count(1) as samples
from language_samples
where created_at::date between $1 and $2
group by day, lang
order by day asc, lang asc
`
	return store.Many(ctx, r.q, scanDaily, sql, from, to)
}

func scanByLang(r repokit.Row) (RowByLang, error) {
	var row RowByLang
	err := r.Scan(&row.Lang, &row.Samples)
	return row, err
}

func scanDaily(r repokit.Row) (RowDaily, error) {
	var row RowDaily
	err := r.Scan(&row.Day, &row.Lang, &row.Samples)
	return row, err
}
