package models

import (
	"fmt"

	dbgen "github.com/golazo-app/golazo/internal/db/generated"
)

type AttendanceStatus string

const (
	AttendanceConfirmed AttendanceStatus = "confirmed"
	AttendanceMaybe     AttendanceStatus = "maybe"
	AttendanceDeclined  AttendanceStatus = "declined"
)

func ParseAttendanceStatus(raw string) (AttendanceStatus, error) {
	switch status := AttendanceStatus(raw); status {
	case AttendanceConfirmed, AttendanceMaybe, AttendanceDeclined:
		return status, nil
	default:
		return "", fmt.Errorf("unknown attendance status %q", raw)
	}
}

// AttendanceRecord is a player's declared and actual participation in one
// match. Attended stays false until the outcome has been recorded.
type AttendanceRecord struct {
	ID       string           `json:"id"`
	PlayerID string           `json:"playerId"`
	MatchID  string           `json:"matchId"`
	Status   AttendanceStatus `json:"status"`
	Attended bool             `json:"attended"`
}

func AttendanceFromRow(row dbgen.Attendance) (AttendanceRecord, error) {
	status, err := ParseAttendanceStatus(row.Status)
	if err != nil {
		return AttendanceRecord{}, MalformedRecordError{Kind: "attendance", ID: row.ID, Reason: err.Error()}
	}
	if row.UserID == "" || row.MatchID == "" {
		return AttendanceRecord{}, MalformedRecordError{Kind: "attendance", ID: row.ID, Reason: "player and match are required"}
	}
	return AttendanceRecord{
		ID:       row.ID,
		PlayerID: row.UserID,
		MatchID:  row.MatchID,
		Status:   status,
		Attended: row.Attended.Valid && row.Attended.Bool,
	}, nil
}
