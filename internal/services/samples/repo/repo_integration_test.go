//go:build integration_pg
// +build integration_pg

package repo_test

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"langid/internal/platform/store"
	"langid/internal/services/samples/domain"
	"langid/internal/services/samples/repo"

	"github.com/rs/zerolog"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// startPostgres launches a disposable Postgres and returns DSN + stop func
func startPostgres(t *testing.T) (dsn string, stop func()) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)

	req := tc.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "postgres",
			"POSTGRES_DB":       "postgres",
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections"),
		).WithDeadline(2 * time.Minute),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		cancel()
		t.Fatalf("failed to start postgres container: %v", err)
	}

	host, err := c.Host(ctx)
	if err != nil {
		_ = c.Terminate(context.Background())
		cancel()
		t.Fatalf("failed to get container host: %v", err)
	}
	mp, err := c.MappedPort(ctx, "5432/tcp")
	if err != nil {
		_ = c.Terminate(context.Background())
		cancel()
		t.Fatalf("failed to get mapped port: %v", err)
	}

	dsn = fmt.Sprintf("postgres://postgres:postgres@%s:%s/postgres?sslmode=disable", host, mp.Port())
	stop = func() {
		_ = c.Terminate(context.Background())
		cancel()
	}
	return dsn, stop
}

const createLanguageSamples = `
CREATE TABLE IF NOT EXISTS language_samples (
	id         UUID PRIMARY KEY,
	handle     BIGINT NOT NULL DEFAULT 0,
	lang       TEXT NOT NULL,
	script     TEXT NOT NULL DEFAULT '',
	text_len   INT NOT NULL DEFAULT 0,
	snippet    TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)
`

func openTestStore(t *testing.T, ctx context.Context, dsn string) *store.Store {
	t.Helper()

	st, err := store.Open(ctx, store.Config{
		AppName: "samples-it",
		PG:      store.PGConfig{Enabled: true, URL: dsn, MaxConns: 2},
	}, store.WithLogger(zerolog.New(io.Discard)))
	if err != nil {
		t.Fatalf("store.Open failed: %v", err)
	}
	t.Cleanup(func() { _ = st.Close(context.Background()) })

	if _, err := st.PG.Exec(ctx, createLanguageSamples); err != nil {
		t.Fatalf("create language_samples: %v", err)
	}
	return st
}

func TestSamplesRepo_Integration_InsertAndRecent(t *testing.T) {
	dsn, stop := startPostgres(t)
	defer stop()

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	st := openTestStore(t, ctx, dsn)
	storage := repo.NewPG().Bind(st.PG)

	ins := []domain.RecordInput{
		{Handle: 7, Lang: "es", Script: "Latin", TextLen: 26, Snippet: "dijo que el coche es nuevo"},
		{Handle: 0, Lang: "mul", Script: "Han", TextLen: 12, Snippet: "你好世界"},
		{Handle: 7, Lang: "en", Script: "Latin", TextLen: 5, Snippet: "hello"},
	}
	for _, in := range ins {
		if err := storage.Insert(ctx, in); err != nil {
			t.Fatalf("Insert(%+v): %v", in, err)
		}
	}

	rows, err := storage.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("Recent returned %d rows, want 3", len(rows))
	}

	byLang := map[string]domain.Sample{}
	for _, r := range rows {
		if r.ID == "" || r.CreatedAt == "" {
			t.Fatalf("row missing generated columns: %+v", r)
		}
		byLang[r.Lang] = r
	}
	es, ok := byLang["es"]
	if !ok {
		t.Fatalf("es row missing, got %v", byLang)
	}
	if es.Handle != 7 || es.Script != "Latin" || es.TextLen != 26 || es.Snippet != "dijo que el coche es nuevo" {
		t.Fatalf("es row round-trip mismatch: %+v", es)
	}
	if mul := byLang["mul"]; mul.Snippet != "你好世界" {
		t.Fatalf("snippet should survive as UTF-8: %+v", mul)
	}

	// limit is honored
	one, err := storage.Recent(ctx, 1)
	if err != nil {
		t.Fatalf("Recent(1): %v", err)
	}
	if len(one) != 1 {
		t.Fatalf("Recent(1) returned %d rows", len(one))
	}

	// out-of-range limits clamp to the default instead of erroring
	clamped, err := storage.Recent(ctx, -3)
	if err != nil {
		t.Fatalf("Recent(-3): %v", err)
	}
	if len(clamped) != 3 {
		t.Fatalf("clamped Recent returned %d rows, want 3", len(clamped))
	}
}
