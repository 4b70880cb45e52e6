package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"langid/internal/modkit/repokit"
	"langid/internal/platform/store"
	"langid/internal/services/samples/domain"
	"langid/internal/services/samples/repo"
)

// fakeStorage records inserts and serves canned rows
type fakeStorage struct {
	inserts   []domain.RecordInput
	insertErr error
	rows      []domain.Sample
	lastLimit int
}

func (f *fakeStorage) Insert(_ context.Context, in domain.RecordInput) error {
	f.inserts = append(f.inserts, in)
	return f.insertErr
}

func (f *fakeStorage) Recent(_ context.Context, limit int) ([]domain.Sample, error) {
	f.lastLimit = limit
	return f.rows, nil
}

// recordingTx satisfies repokit.TxRunner without touching a database.
// Tx hands itself to fn so begin hook statements land in sqls
type recordingTx struct {
	txCalls int
	sqls    []string
	execErr error
}

func (r *recordingTx) Tx(_ context.Context, fn func(q store.RowQuerier) error) error {
	r.txCalls++
	return fn(r)
}

func (r *recordingTx) Exec(_ context.Context, sql string, _ ...any) (store.CommandTag, error) {
	r.sqls = append(r.sqls, sql)
	var z store.CommandTag
	return z, r.execErr
}

func (r *recordingTx) Query(context.Context, string, ...any) (store.Rows, error) { return nil, nil }

func (r *recordingTx) QueryRow(context.Context, string, ...any) store.Row { return nil }

func newTestService(buf *bytes.Buffer, fs *fakeStorage, rt *recordingTx) *Service {
	binder := repokit.BindFunc[repo.Storage](func(repokit.Queryer) repo.Storage { return fs })
	return New(zerolog.New(buf), rt, binder)
}

func TestNew_PanicsOnNilRunner(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for nil TxRunner")
		}
	}()
	New(zerolog.Nop(), nil, repo.NewPG())
}

func TestRecord_InsertsInsideAsyncCommitTx(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	fs := &fakeStorage{}
	rt := &recordingTx{}
	svc := newTestService(&buf, fs, rt)

	in := domain.RecordInput{Handle: 7, Lang: "es", Script: "Latin", TextLen: 21, Snippet: "el coche es nuevo"}
	svc.Record(context.Background(), in)

	if len(fs.inserts) != 1 {
		t.Fatalf("insert count = %d want 1", len(fs.inserts))
	}
	if fs.inserts[0] != in {
		t.Fatalf("insert got %+v want %+v", fs.inserts[0], in)
	}
	if rt.txCalls != 1 {
		t.Fatalf("tx count = %d want 1", rt.txCalls)
	}
	if len(rt.sqls) != 1 || rt.sqls[0] != "SET LOCAL synchronous_commit TO off" {
		t.Fatalf("expected async commit tuning before the insert, got %v", rt.sqls)
	}
	if buf.Len() != 0 {
		t.Fatalf("successful record should not log, got %q", buf.String())
	}
}

func TestRecord_SwallowsInsertError(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	fs := &fakeStorage{insertErr: errors.New("boom")}
	svc := newTestService(&buf, fs, &recordingTx{})

	// must not panic and must not surface the error to the caller
	svc.Record(context.Background(), domain.RecordInput{Handle: 42, Lang: "fr"})

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected one json log line, got %q: %v", buf.String(), err)
	}
	if entry["level"] != "warn" {
		t.Fatalf("level = %v want warn", entry["level"])
	}
	if entry["handle"] != float64(42) {
		t.Fatalf("handle = %v want 42", entry["handle"])
	}
	if entry["lang"] != "fr" {
		t.Fatalf("lang = %v want fr", entry["lang"])
	}
}

func TestRecord_SwallowsTxSetupError(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	fs := &fakeStorage{}
	rt := &recordingTx{execErr: errors.New("tx setup boom")}
	svc := newTestService(&buf, fs, rt)

	svc.Record(context.Background(), domain.RecordInput{Handle: 9, Lang: "de"})

	if len(fs.inserts) != 0 {
		t.Fatalf("insert should not run when tx setup fails, got %d", len(fs.inserts))
	}
	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected one json log line, got %q: %v", buf.String(), err)
	}
	if entry["level"] != "warn" {
		t.Fatalf("level = %v want warn", entry["level"])
	}
}

func TestRecent_DelegatesToRepo(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	fs := &fakeStorage{rows: []domain.Sample{{ID: "a", Lang: "de"}, {ID: "b", Lang: "en"}}}
	svc := newTestService(&buf, fs, &recordingTx{})

	got, err := svc.Recent(context.Background(), 25)
	if err != nil {
		t.Fatalf("Recent returned error: %v", err)
	}
	if fs.lastLimit != 25 {
		t.Fatalf("limit passed = %d want 25", fs.lastLimit)
	}
	if len(got) != 2 || got[0].ID != "a" || got[1].Lang != "en" {
		t.Fatalf("rows round trip mismatch: %+v", got)
	}
}
