package server

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/desertthunder/lyrx/internal/shared"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	_, _ = w.Write([]byte("ok"))
})

func TestRecover(t *testing.T) {
	var buf bytes.Buffer
	logger := shared.NewLogger(&buf)

	panics := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	Recover(logger)(panics).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/track/x", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected JSON error, got %q", ct)
	}
	if !strings.Contains(buf.String(), "boom") {
		t.Errorf("expected panic to be logged, got %s", buf.String())
	}
}

func TestRecoverAfterWrite(t *testing.T) {
	t.Run("keeps the written response", func(t *testing.T) {
		partial := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusAccepted)
			_, _ = w.Write([]byte("partial"))
			panic("late")
		})

		rec := httptest.NewRecorder()
		Recover(shared.NewLogger(&bytes.Buffer{}))(partial).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		if rec.Code != http.StatusAccepted {
			t.Errorf("expected original status 202, got %d", rec.Code)
		}
		if rec.Body.String() != "partial" {
			t.Errorf("expected no error body appended, got %q", rec.Body.String())
		}
	})

	t.Run("re-panics on ErrAbortHandler", func(t *testing.T) {
		aborts := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic(http.ErrAbortHandler)
		})

		defer func() {
			if rec := recover(); rec != http.ErrAbortHandler {
				t.Errorf("expected ErrAbortHandler to propagate, got %v", rec)
			}
		}()

		Recover(shared.NewLogger(&bytes.Buffer{}))(aborts).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		t.Error("expected panic")
	})
}

func TestRequestID(t *testing.T) {
	logger := shared.NewLogger(&bytes.Buffer{})

	t.Run("generates an ID", func(t *testing.T) {
		var fromCtx *log.Logger
		h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fromCtx = LoggerFrom(r.Context(), nil)
		})

		rec := httptest.NewRecorder()
		RequestID(logger)(h).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		if len(rec.Header().Get(RequestIDHeader)) != 36 {
			t.Errorf("expected generated uuid, got %q", rec.Header().Get(RequestIDHeader))
		}
		if fromCtx == nil {
			t.Error("expected request logger in context")
		}
	})

	t.Run("reuses the incoming ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "req-123")

		rec := httptest.NewRecorder()
		RequestID(logger)(okHandler).ServeHTTP(rec, req)

		if got := rec.Header().Get(RequestIDHeader); got != "req-123" {
			t.Errorf("expected echoed ID, got %q", got)
		}
	})

	t.Run("LoggerFrom falls back", func(t *testing.T) {
		if LoggerFrom(context.Background(), logger) != logger {
			t.Error("expected fallback logger")
		}
	})
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := shared.NewLogger(&buf)

	teapot := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	})

	Logging(logger)(teapot).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/track/abc", nil))

	out := buf.String()
	for _, want := range []string{"WARN", "path=/track/abc", "status=418", "bytes=15"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in log output, got %s", want, out)
		}
	}
}

func TestCORS(t *testing.T) {
	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/track/abc", nil)
		req.Header.Set("Origin", "http://example.test")

		rec := httptest.NewRecorder()
		CORS([]string{"*"})(okHandler).ServeHTTP(rec, req)

		if rec.Code != http.StatusNoContent {
			t.Errorf("expected 204, got %d", rec.Code)
		}
		if rec.Body.Len() != 0 {
			t.Errorf("expected empty body, got %q", rec.Body.String())
		}
		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
			t.Errorf("expected any origin, got %q", got)
		}
		if got := rec.Header().Get("Access-Control-Allow-Methods"); !strings.Contains(got, "GET") {
			t.Errorf("expected GET to be allowed, got %q", got)
		}
		if got := rec.Header().Get("Access-Control-Allow-Headers"); !strings.Contains(got, "Content-Type") {
			t.Errorf("expected Content-Type to be allowed, got %q", got)
		}
	})

	t.Run("restricted origins", func(t *testing.T) {
		mw := CORS([]string{"http://allowed.test"})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "http://allowed.test")
		rec := httptest.NewRecorder()
		mw(okHandler).ServeHTTP(rec, req)
		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://allowed.test" {
			t.Errorf("expected echoed origin, got %q", got)
		}

		req = httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "http://other.test")
		rec = httptest.NewRecorder()
		mw(okHandler).ServeHTTP(rec, req)
		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Errorf("expected no allow header, got %q", got)
		}
	})
}

func TestRateLimit(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		h := RateLimit(0, 0)(okHandler)
		for range 20 {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", rec.Code)
			}
		}
	})

	t.Run("rejects past the burst", func(t *testing.T) {
		h := RateLimit(0.001, 2)(okHandler)

		codes := make([]int, 3)
		for i := range codes {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
			codes[i] = rec.Code
		}

		if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
			t.Errorf("expected burst to pass, got %v", codes)
		}
		if codes[2] != http.StatusTooManyRequests {
			t.Errorf("expected 429, got %d", codes[2])
		}
	})
}
