package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"langid/internal/platform/config"
	phttp "langid/internal/platform/net/http"
)

func TestMountProfiler_Enabled(t *testing.T) {
	srv := phttp.NewServer(config.New())
	r := srv.Router()
	phttp.MountProfiler(r, "/debug", true)

	get := func(path string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		r.Mux().ServeHTTP(rec, httptest.NewRequest("GET", path, nil))
		return rec
	}

	if rec := get("/debug/pprof/"); rec.Code != http.StatusOK {
		t.Fatalf("expected 200 at /debug/pprof/, got %d", rec.Code)
	}
	if rec := get("/debug/pprof/cmdline"); rec.Code != http.StatusOK {
		t.Fatalf("expected 200 at /debug/pprof/cmdline, got %d", rec.Code)
	}

	// the profiler mux answers the bare prefix with a redirect into /pprof/
	// (301 or 308 depending on chi/stdlib); 404 is also acceptable
	if rec := get("/debug"); rec.Code != http.StatusMovedPermanently &&
		rec.Code != http.StatusPermanentRedirect &&
		rec.Code != http.StatusNotFound {
		t.Fatalf("expected 301/308/404 at /debug, got %d", rec.Code)
	}
}

func TestMountProfiler_Disabled(t *testing.T) {
	srv := phttp.NewServer(config.New())
	r := srv.Router()
	phttp.MountProfiler(r, "/debug", false)

	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest("GET", "/debug/pprof/", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 when disabled, got %d", rec.Code)
	}
}
