package models

import (
	"errors"
	"fmt"
)

// ErrDataUnavailable reports that an upstream record fetch failed. Callers
// must not persist or render results derived from a partial fetch.
var ErrDataUnavailable = errors.New("data unavailable")

// MalformedRecordError describes a single record that failed validation at
// the fetch boundary. The record is skipped and processing continues.
type MalformedRecordError struct {
	Kind   string
	ID     string
	Reason string
}

func (e MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed %s record %s: %s", e.Kind, e.ID, e.Reason)
}

// Unavailable wraps err so that errors.Is(err, ErrDataUnavailable) holds.
func Unavailable(what string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrDataUnavailable, what, err)
}
