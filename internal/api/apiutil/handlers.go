package apiutil

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/golazo-app/golazo/internal/models"
	"github.com/golazo-app/golazo/internal/occupancy"
	"github.com/golazo-app/golazo/internal/scoring"
)

type FieldError struct {
	Field  string
	Reason string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

type HandlerError struct {
	Status  int
	Message string
	Err     error
}

func (e HandlerError) Error() string {
	return e.Message
}

func (e HandlerError) Unwrap() error {
	return e.Err
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func WriteJSON(w http.ResponseWriter, status int, payload any) error {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	if err := encoder.Encode(payload); err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err := w.Write(buf.Bytes())
	return err
}

// Classify maps service errors to an HTTP status and client message.
func Classify(err error) HandlerError {
	var handlerErr HandlerError
	var fieldErr FieldError
	switch {
	case errors.As(err, &handlerErr):
		return handlerErr
	case errors.As(err, &fieldErr):
		return HandlerError{Status: http.StatusBadRequest, Message: fieldErr.Error(), Err: err}
	case errors.Is(err, scoring.ErrPlayerRequired), errors.Is(err, occupancy.ErrAdminRequired):
		return HandlerError{Status: http.StatusBadRequest, Message: err.Error(), Err: err}
	case errors.Is(err, occupancy.ErrFieldNotFound):
		return HandlerError{Status: http.StatusNotFound, Message: "Field not found", Err: err}
	case errors.Is(err, models.ErrDataUnavailable):
		return HandlerError{Status: http.StatusServiceUnavailable, Message: "Data temporarily unavailable", Err: err}
	default:
		return HandlerError{Status: http.StatusInternalServerError, Message: "Internal Server Error", Err: err}
	}
}

// WriteError logs err against the request and writes a JSON error body.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	classified := Classify(err)
	logger := log.Ctx(r.Context())
	event := logger.Warn()
	if classified.Status >= http.StatusInternalServerError {
		event = logger.Error()
	}
	event.Err(err).Int("status", classified.Status).Msg("Request failed")

	if writeErr := WriteJSON(w, classified.Status, ErrorResponse{Error: classified.Message}); writeErr != nil {
		logger.Error().Err(writeErr).Msg("Failed to write error response")
	}
}

// BadRequest wraps a parameter error for WriteError.
func BadRequest(err error) error {
	return HandlerError{Status: http.StatusBadRequest, Message: err.Error(), Err: err}
}
