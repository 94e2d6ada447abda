package api

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hellod/internal/config"
	"hellod/internal/slogutil"
)

func TestRequestIDMiddleware(t *testing.T) {
	var seen string
	handler := RequestIDMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	t.Run("generated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

		got := rec.Header().Get("X-Request-ID")
		if len(got) != 36 {
			t.Errorf("X-Request-ID = %q, want a UUID", got)
		}
		if seen != got {
			t.Errorf("context request ID = %q, header = %q", seen, got)
		}
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("X-Request-ID", "req-123")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if got := rec.Header().Get("X-Request-ID"); got != "req-123" {
			t.Errorf("X-Request-ID = %q, want req-123", got)
		}
		if seen != "req-123" {
			t.Errorf("context request ID = %q, want req-123", seen)
		}
	})
}

func TestGetRequestID_Missing(t *testing.T) {
	if got := GetRequestID(t.Context()); got != "" {
		t.Errorf("GetRequestID() = %q, want empty", got)
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slogutil.NewLogger(&buf, slog.LevelInfo)

	handler := RecoveryMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	if rec.Body.String() != "Internal server error" {
		t.Errorf("body = %q", rec.Body.String())
	}
	if !strings.Contains(buf.String(), "Panic recovered") || !strings.Contains(buf.String(), "error=boom") {
		t.Errorf("expected panic to be logged, got: %s", buf.String())
	}
}

func TestRecoveryMiddleware_AbortHandler(t *testing.T) {
	handler := RecoveryMiddleware(slogutil.NewDiscardLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	defer func() {
		if rec := recover(); rec != http.ErrAbortHandler {
			t.Errorf("recover() = %v, want http.ErrAbortHandler", rec)
		}
	}()
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))
}

func TestServerRecoversHandlerPanic(t *testing.T) {
	srv := testServer(t)
	srv.route(http.MethodGet, "/panic", "panic", func(r *http.Request) (Responder, error) {
		panic("handler exploded")
	})

	rec := doRequest(srv, "GET", "/panic", nil)
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}

func TestLoggingMiddleware(t *testing.T) {
	t.Run("debug level logs requests", func(t *testing.T) {
		var buf bytes.Buffer
		srv := testServerWith(t, config.DefaultConfig(), slogutil.NewLogger(&buf, slog.LevelDebug))

		doRequest(srv, "GET", "/users/x/alice", nil)

		out := buf.String()
		for _, want := range []string{"HTTP request", "method=GET", "path=/users/x/alice", "status=400", "requestID="} {
			if !strings.Contains(out, want) {
				t.Errorf("expected %q in log, got: %s", want, out)
			}
		}
	})

	t.Run("info level is quiet", func(t *testing.T) {
		var buf bytes.Buffer
		srv := testServerWith(t, config.DefaultConfig(), slogutil.NewLogger(&buf, slog.LevelInfo))

		doRequest(srv, "GET", "/hey", nil)
		doRequest(srv, "GET", "/users/x/alice", nil)

		if buf.Len() != 0 {
			t.Errorf("expected no log output at info level, got: %s", buf.String())
		}
	})
}

func TestResponseWriter_FirstStatusWins(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec, statusCode: http.StatusOK}

	rw.WriteHeader(http.StatusTeapot)
	rw.WriteHeader(http.StatusOK)
	_, _ = rw.Write([]byte("abc"))

	if rw.statusCode != http.StatusTeapot {
		t.Errorf("statusCode = %d, want %d", rw.statusCode, http.StatusTeapot)
	}
	if rw.written != 3 {
		t.Errorf("written = %d, want 3", rw.written)
	}
	if rw.Unwrap() != rec {
		t.Error("Unwrap should return the wrapped writer")
	}
}
