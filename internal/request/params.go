// Package request parses identifiers and dates from incoming requests.
package request

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	DateLayout = "2006-01-02"
	maxIDLen   = 64
)

// ParseID validates an opaque record identifier. Ids are matched against
// stored rows byte for byte, so apart from trimming surrounding whitespace
// the value is returned unchanged.
func ParseID(value string) (string, bool) {
	value = strings.TrimSpace(value)
	if value == "" || len(value) > maxIDLen {
		return "", false
	}
	if strings.ContainsAny(value, " \t\r\n/\\?#") {
		return "", false
	}
	return value, true
}

// IDFromPath reads a required path parameter.
func IDFromPath(r *http.Request, name string) (string, error) {
	raw := r.PathValue(name)
	if strings.TrimSpace(raw) == "" {
		return "", fmt.Errorf("%s is required", name)
	}
	id, ok := ParseID(raw)
	if !ok {
		return "", fmt.Errorf("%s is invalid", name)
	}
	return id, nil
}

// OptionalIDFromQuery reads an optional id from the query string. Missing
// or blank values return "".
func OptionalIDFromQuery(r *http.Request, key string) (string, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return "", nil
	}
	id, ok := ParseID(raw)
	if !ok {
		return "", fmt.Errorf("%s is invalid", key)
	}
	return id, nil
}

// ParseDate parses a YYYY-MM-DD value as midnight in loc.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	parsed, err := time.ParseInLocation(DateLayout, strings.TrimSpace(value), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("date must use YYYY-MM-DD")
	}
	return parsed, nil
}

// DateFromQuery reads an optional date from the query string. A missing
// value returns the zero time.
func DateFromQuery(r *http.Request, key string, loc *time.Location) (time.Time, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return time.Time{}, nil
	}
	date, err := ParseDate(raw, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s must use YYYY-MM-DD", key)
	}
	return date, nil
}
