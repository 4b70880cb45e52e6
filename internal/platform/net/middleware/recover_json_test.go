package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	perr "langid/internal/platform/errors"
	lumnet "langid/internal/platform/net"
	"langid/internal/platform/net/middleware"
)

func TestRecoverJSON_ConvertsPanicTo500(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("kaboom")
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	req = req.WithContext(lumnet.WithRequest(req.Context(), "rid-panic"))
	rr := httptest.NewRecorder()

	middleware.RecoverJSON(next).ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", rr.Code)
	}
	if got := rr.Header().Get("X-Request-ID"); got != "rid-panic" {
		t.Fatalf("expected request id header, got %q", got)
	}

	var body struct {
		StatusCode int            `json:"status_code"`
		Status     string         `json:"status"`
		Code       perr.ErrorCode `json:"code"`
		Error      string         `json:"error"`
		RequestID  string         `json:"request_id"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.StatusCode != 500 || body.Error == "" || body.RequestID != "rid-panic" {
		t.Fatalf("bad panic body: %+v", body)
	}
	// the body is the shared wire reply, so it carries the platform code
	if body.Code != perr.ErrorCodePanic {
		t.Fatalf("code = %d, want %d", body.Code, perr.ErrorCodePanic)
	}
	if body.Status != http.StatusText(http.StatusInternalServerError) {
		t.Fatalf("status = %q", body.Status)
	}
}

func TestRecoverJSON_NoPanicPassesThrough(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("fine"))
	})

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	rr := httptest.NewRecorder()

	middleware.RecoverJSON(next).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK || rr.Body.String() != "fine" {
		t.Fatalf("expected pass through, got %d %q", rr.Code, rr.Body.String())
	}
}
