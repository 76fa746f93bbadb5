package testutil

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/golazo-app/golazo/internal/db"
	dbgen "github.com/golazo-app/golazo/internal/db/generated"
	"github.com/golazo-app/golazo/internal/models"
)

// NewTestDB creates a temporary SQLite database with migrations applied.
func NewTestDB(t *testing.T) *db.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	database, err := db.New(dbPath)
	if err != nil {
		t.Fatalf("create test db: %v", err)
	}
	t.Cleanup(func() {
		_ = database.Close()
	})

	return database
}

// Venue is an admin with one team and a set of fields.
type Venue struct {
	AdminID string
	TeamID  string
	Fields  []dbgen.Field
}

// SeedVenue inserts an admin profile, a team and one field per name in a
// single transaction.
func SeedVenue(t *testing.T, database *db.DB, fieldNames ...string) Venue {
	t.Helper()

	venue := Venue{AdminID: uuid.NewString(), TeamID: uuid.NewString()}
	err := database.RunInTx(context.Background(), func(tx *db.DB) error {
		ctx := context.Background()
		if _, err := tx.Queries.CreateProfile(ctx, dbgen.CreateProfileParams{
			UserID: venue.AdminID, Name: "Admin", Role: "admin",
		}); err != nil {
			return err
		}
		if _, err := tx.Queries.CreateTeam(ctx, dbgen.CreateTeamParams{
			ID: venue.TeamID, Name: "Los Cracks", OwnerID: venue.AdminID, Type: "casual",
		}); err != nil {
			return err
		}
		for _, name := range fieldNames {
			field, err := tx.Queries.CreateField(ctx, dbgen.CreateFieldParams{
				ID: uuid.NewString(), AdminID: venue.AdminID, Name: name,
				Location: "Centro", Price: 80000,
			})
			if err != nil {
				return err
			}
			venue.Fields = append(venue.Fields, field)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("seed venue: %v", err)
	}
	return venue
}

// SeedMatch inserts a match starting at startsAt on the given field.
func SeedMatch(t *testing.T, database *db.DB, venue Venue, fieldID string, startsAt time.Time) dbgen.Match {
	t.Helper()
	return SeedMatchRaw(t, database, venue, fieldID, models.FormatTimestamp(startsAt))
}

// SeedMatchRaw inserts a match with a verbatim date_time value.
func SeedMatchRaw(t *testing.T, database *db.DB, venue Venue, fieldID string, dateTime string) dbgen.Match {
	t.Helper()

	match, err := database.Queries.CreateMatch(context.Background(), dbgen.CreateMatchParams{
		ID: uuid.NewString(), DateTime: dateTime, FieldID: fieldID,
		TeamID: venue.TeamID, Status: "scheduled", CreatedBy: venue.AdminID,
	})
	if err != nil {
		t.Fatalf("seed match: %v", err)
	}
	return match
}

// SeedAttendance records a player's attendance for a match. A nil attended
// leaves the outcome unrecorded.
func SeedAttendance(t *testing.T, database *db.DB, playerID, matchID, status string, attended *bool) {
	t.Helper()

	value := sql.NullBool{}
	if attended != nil {
		value = sql.NullBool{Bool: *attended, Valid: true}
	}
	if _, err := database.Queries.CreateAttendance(context.Background(), dbgen.CreateAttendanceParams{
		ID: uuid.NewString(), UserID: playerID, MatchID: matchID, Status: status, Attended: value,
	}); err != nil {
		t.Fatalf("seed attendance: %v", err)
	}
}

// SeedPayment records a payment; paid payments get a paid_at timestamp.
func SeedPayment(t *testing.T, database *db.DB, playerID, matchID, status string, amount float64) {
	t.Helper()

	paidAt := sql.NullString{}
	if status == string(models.PaymentPaid) {
		paidAt = sql.NullString{String: models.FormatTimestamp(time.Now()), Valid: true}
	}
	if _, err := database.Queries.CreatePayment(context.Background(), dbgen.CreatePaymentParams{
		ID: uuid.NewString(), UserID: playerID, MatchID: matchID, Amount: amount,
		Method: "card", Status: status, PaidAt: paidAt,
	}); err != nil {
		t.Fatalf("seed payment: %v", err)
	}
}

func Bool(value bool) *bool {
	return &value
}
