package scoring

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	dbgen "github.com/golazo-app/golazo/internal/db/generated"
	"github.com/golazo-app/golazo/internal/models"
	"github.com/golazo-app/golazo/internal/testutil"
)

type fakeStore struct {
	attendance    []dbgen.Attendance
	payments      []dbgen.Payment
	attendanceErr error
	paymentsErr   error
	upserts       []dbgen.UpsertScoreParams
}

func (f *fakeStore) ListAttendanceByUser(ctx context.Context, userID string) ([]dbgen.Attendance, error) {
	return f.attendance, f.attendanceErr
}

func (f *fakeStore) ListPaymentsByUser(ctx context.Context, userID string) ([]dbgen.Payment, error) {
	return f.payments, f.paymentsErr
}

func (f *fakeStore) GetScore(ctx context.Context, userID string) (dbgen.Score, error) {
	return dbgen.Score{}, sql.ErrNoRows
}

func (f *fakeStore) UpsertScore(ctx context.Context, arg dbgen.UpsertScoreParams) (dbgen.Score, error) {
	f.upserts = append(f.upserts, arg)
	return dbgen.Score{
		UserID: arg.UserID, Score: arg.Score, Attended: arg.Attended,
		Paid: arg.Paid, TotalGames: arg.TotalGames, UpdatedAt: arg.UpdatedAt,
	}, nil
}

func (f *fakeStore) ListUsersWithHistory(ctx context.Context) ([]string, error) {
	return nil, nil
}

func TestRecompute_FetchFailureDoesNotWrite(t *testing.T) {
	tests := []struct {
		name  string
		store *fakeStore
	}{
		{name: "attendance", store: &fakeStore{attendanceErr: errors.New("timeout")}},
		{name: "payments", store: &fakeStore{paymentsErr: errors.New("timeout")}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			svc, err := NewService(test.store, DefaultWeights)
			if err != nil {
				t.Fatalf("new service: %v", err)
			}
			_, err = svc.Recompute(context.Background(), "player-1")
			if !errors.Is(err, models.ErrDataUnavailable) {
				t.Fatalf("expected ErrDataUnavailable, got %v", err)
			}
			if len(test.store.upserts) != 0 {
				t.Fatalf("score written despite fetch failure: %+v", test.store.upserts)
			}
		})
	}
}

func TestRecompute_SkipsMalformedRecords(t *testing.T) {
	store := &fakeStore{
		attendance: []dbgen.Attendance{
			{ID: "a1", UserID: "p1", MatchID: "m1", Status: "confirmed", Attended: sql.NullBool{Bool: true, Valid: true}},
			{ID: "a2", UserID: "p1", MatchID: "m2", Status: "unknown"},
		},
		payments: []dbgen.Payment{
			{ID: "pay1", UserID: "p1", MatchID: "m1", Amount: 100, Status: "paid"},
			{ID: "pay2", UserID: "p1", MatchID: "m2", Amount: 100, Status: "pending"},
		},
	}
	svc, err := NewService(store, DefaultWeights)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	fixed := time.Date(2024, time.January, 10, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	outcome, err := svc.Recompute(context.Background(), "p1")
	if err != nil {
		t.Fatalf("recompute: %v", err)
	}
	if outcome.Skipped != 2 {
		t.Fatalf("skipped = %d, want 2", outcome.Skipped)
	}
	// one attended of one valid record, zero paid of one valid payment
	if outcome.Record.Score != 50 || outcome.Label != "Regular" {
		t.Fatalf("unexpected outcome: %+v", outcome)
	}
	if len(store.upserts) != 1 || store.upserts[0].UpdatedAt != "2024-01-10T12:00:00Z" {
		t.Fatalf("unexpected upserts: %+v", store.upserts)
	}
}

func TestRecompute_RequiresPlayer(t *testing.T) {
	svc, err := NewService(&fakeStore{}, DefaultWeights)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	if _, err := svc.Recompute(context.Background(), "  "); !errors.Is(err, ErrPlayerRequired) {
		t.Fatalf("expected ErrPlayerRequired, got %v", err)
	}
}

func TestNewService_RejectsBadWeights(t *testing.T) {
	if _, err := NewService(&fakeStore{}, Weights{Attendance: 1, Payment: 1}); err == nil {
		t.Fatalf("expected error")
	}
}

func TestService_PersistsAgainstDatabase(t *testing.T) {
	database := testutil.NewTestDB(t)
	venue := testutil.SeedVenue(t, database, "Cancha 1")
	field := venue.Fields[0]
	start := time.Date(2024, time.January, 8, 10, 0, 0, 0, time.UTC)
	first := testutil.SeedMatch(t, database, venue, field.ID, start)
	second := testutil.SeedMatch(t, database, venue, field.ID, start.Add(24*time.Hour))

	testutil.SeedAttendance(t, database, "player-1", first.ID, "confirmed", testutil.Bool(true))
	testutil.SeedAttendance(t, database, "player-1", second.ID, "confirmed", testutil.Bool(false))
	testutil.SeedPayment(t, database, "player-1", first.ID, "paid", 8000)
	testutil.SeedPayment(t, database, "player-2", first.ID, "pending", 8000)

	svc, err := NewService(database.Queries, DefaultWeights)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	ctx := context.Background()

	before, err := svc.Get(ctx, "player-1")
	if err != nil {
		t.Fatalf("get before: %v", err)
	}
	if before.Persisted || before.Score != 100 || before.Label != "Élite" {
		t.Fatalf("unexpected default view: %+v", before)
	}

	outcome, err := svc.Recompute(ctx, "player-1")
	if err != nil {
		t.Fatalf("recompute: %v", err)
	}
	if outcome.Record.Score != 75 {
		t.Fatalf("score = %d, want 75", outcome.Record.Score)
	}

	after, err := svc.Get(ctx, "player-1")
	if err != nil {
		t.Fatalf("get after: %v", err)
	}
	if !after.Persisted || after.Score != 75 || after.Attended != 1 || after.Paid != 1 || after.TotalGames != 2 {
		t.Fatalf("unexpected persisted view: %+v", after)
	}

	batch, err := svc.RecomputeAll(ctx)
	if err != nil {
		t.Fatalf("recompute all: %v", err)
	}
	if batch.Players != 2 || batch.Updated != 2 || batch.Failed != 0 {
		t.Fatalf("unexpected batch: %+v", batch)
	}

	other, err := svc.Get(ctx, "player-2")
	if err != nil {
		t.Fatalf("get player-2: %v", err)
	}
	// no attendance history, one unpaid payment
	if other.Score != 50 {
		t.Fatalf("player-2 score = %d, want 50", other.Score)
	}
}
