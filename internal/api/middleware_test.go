package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestChainMiddleware_RequestIDAndRecovery(t *testing.T) {
	var seenID string
	handler := ChainMiddleware(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seenID = RequestIDFromContext(r.Context())
			panic("boom")
		}),
		WithRecovery,
		WithLogging,
		WithRequestID,
	)

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

	if recorder.Code != http.StatusInternalServerError {
		t.Fatalf("status: %d", recorder.Code)
	}
	if seenID == "" || recorder.Header().Get("X-Request-ID") != seenID {
		t.Fatalf("request id mismatch: header %q, context %q", recorder.Header().Get("X-Request-ID"), seenID)
	}
}

func TestWithRequestID_ReusesClientID(t *testing.T) {
	const clientID = "3f2504e0-4f89-11d3-9a0c-0305e82c3301"
	handler := WithRequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := RequestIDFromContext(r.Context()); got != clientID {
			t.Errorf("context id = %q", got)
		}
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", clientID)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	if recorder.Header().Get("X-Request-ID") != clientID {
		t.Fatalf("header = %q", recorder.Header().Get("X-Request-ID"))
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "not-a-uuid\n")
	recorder = httptest.NewRecorder()
	WithRequestID(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).ServeHTTP(recorder, req)
	if recorder.Header().Get("X-Request-ID") == "not-a-uuid\n" {
		t.Fatal("malformed client id should be replaced")
	}
}
