package models

import (
	"time"

	dbgen "github.com/golazo-app/golazo/internal/db/generated"
)

type MatchStatus string

const (
	MatchScheduled MatchStatus = "scheduled"
	MatchConfirmed MatchStatus = "confirmed"
	MatchCompleted MatchStatus = "completed"
)

type Match struct {
	ID        string      `json:"id"`
	StartsAt  time.Time   `json:"startsAt"`
	FieldID   string      `json:"fieldId"`
	FieldName string      `json:"fieldName,omitempty"`
	TeamID    string      `json:"teamId"`
	TeamName  string      `json:"teamName,omitempty"`
	Status    MatchStatus `json:"status"`
	CreatedBy string      `json:"createdBy"`
}

// MatchFromRow converts a calendar row. Only an unparseable start time makes
// the row malformed; unknown statuses are kept so the slot still shows as taken.
func MatchFromRow(row dbgen.ListMatchesInRangeRow) (Match, error) {
	startsAt, err := ParseTimestamp(row.DateTime)
	if err != nil {
		return Match{}, MalformedRecordError{Kind: "match", ID: row.ID, Reason: err.Error()}
	}
	if row.FieldID == "" {
		return Match{}, MalformedRecordError{Kind: "match", ID: row.ID, Reason: "field is required"}
	}
	return Match{
		ID:        row.ID,
		StartsAt:  startsAt,
		FieldID:   row.FieldID,
		FieldName: row.FieldName,
		TeamID:    row.TeamID,
		TeamName:  row.TeamName,
		Status:    MatchStatus(row.Status),
		CreatedBy: row.CreatedBy,
	}, nil
}
