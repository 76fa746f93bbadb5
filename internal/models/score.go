package models

import (
	"time"

	dbgen "github.com/golazo-app/golazo/internal/db/generated"
)

// DefaultScore is reported for players without any recorded history.
const DefaultScore = 100

// ScoreRecord is the persisted responsibility score of one player.
type ScoreRecord struct {
	PlayerID   string    `json:"playerId"`
	Score      int       `json:"score"`
	Attended   int       `json:"attended"`
	Paid       int       `json:"paid"`
	TotalGames int       `json:"totalGames"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func ScoreFromRow(row dbgen.Score) (ScoreRecord, error) {
	updatedAt, err := ParseTimestamp(row.UpdatedAt)
	if err != nil {
		return ScoreRecord{}, MalformedRecordError{Kind: "score", ID: row.UserID, Reason: err.Error()}
	}
	return ScoreRecord{
		PlayerID:   row.UserID,
		Score:      int(row.Score),
		Attended:   int(row.Attended),
		Paid:       int(row.Paid),
		TotalGames: int(row.TotalGames),
		UpdatedAt:  updatedAt,
	}, nil
}
