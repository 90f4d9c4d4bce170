package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestMaxBodySize(t *testing.T) {
	t.Parallel()

	const limit = 64

	echo := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			w.WriteHeader(http.StatusRequestEntityTooLarge)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
	})
	wrapped := MaxBodySize(limit)(echo)

	t.Run("small body passes through", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/api/v1/contact", strings.NewReader(`{"name":"A"}`))
		rec := httptest.NewRecorder()
		wrapped.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if rec.Body.String() != `{"name":"A"}` {
			t.Errorf("body = %q, want it untouched", rec.Body.String())
		}
	})

	t.Run("declared oversize rejected before reading", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/api/v1/contact", strings.NewReader(strings.Repeat("x", limit+1)))
		req.ContentLength = limit + 1
		rec := httptest.NewRecorder()
		wrapped.ServeHTTP(rec, req)

		if rec.Code != http.StatusRequestEntityTooLarge {
			t.Fatalf("status = %d, want 413", rec.Code)
		}
		if rec.Body.String() != `{"error":"request body too large"}` {
			t.Errorf("body = %q, want the JSON error envelope", rec.Body.String())
		}
	})

	t.Run("undeclared oversize capped while streaming", func(t *testing.T) {
		t.Parallel()

		// No Content-Length: the reader cap has to catch it.
		req := httptest.NewRequest(http.MethodPost, "/api/v1/contact", strings.NewReader(strings.Repeat("x", limit*4)))
		req.ContentLength = -1
		rec := httptest.NewRecorder()
		wrapped.ServeHTTP(rec, req)

		if rec.Code != http.StatusRequestEntityTooLarge {
			t.Fatalf("status = %d, want 413", rec.Code)
		}
	})
}
