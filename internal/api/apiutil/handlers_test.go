package apiutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golazo-app/golazo/internal/models"
	"github.com/golazo-app/golazo/internal/occupancy"
	"github.com/golazo-app/golazo/internal/scoring"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "unavailable", err: models.Unavailable("matches", errors.New("timeout")), status: http.StatusServiceUnavailable},
		{name: "field_not_found", err: fmt.Errorf("load: %w", occupancy.ErrFieldNotFound), status: http.StatusNotFound},
		{name: "admin_required", err: occupancy.ErrAdminRequired, status: http.StatusBadRequest},
		{name: "player_required", err: scoring.ErrPlayerRequired, status: http.StatusBadRequest},
		{name: "field_error", err: FieldError{Field: "date", Reason: "is invalid"}, status: http.StatusBadRequest},
		{name: "handler_error", err: HandlerError{Status: http.StatusTooManyRequests, Message: "slow down"}, status: http.StatusTooManyRequests},
		{name: "unknown", err: errors.New("boom"), status: http.StatusInternalServerError},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := Classify(test.err).Status; got != test.status {
				t.Fatalf("Classify(%v) = %d, want %d", test.err, got, test.status)
			}
		})
	}
}

func TestWriteError(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	recorder := httptest.NewRecorder()

	WriteError(recorder, req, models.Unavailable("fields", errors.New("db locked")))

	if recorder.Code != http.StatusServiceUnavailable {
		t.Fatalf("status: %d", recorder.Code)
	}
	if recorder.Header().Get("Content-Type") != "application/json" {
		t.Fatalf("content type: %s", recorder.Header().Get("Content-Type"))
	}
	var body ErrorResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Error != "Data temporarily unavailable" {
		t.Fatalf("unexpected body %q", body.Error)
	}
}
