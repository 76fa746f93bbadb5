package scoring

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	dbgen "github.com/golazo-app/golazo/internal/db/generated"
	"github.com/golazo-app/golazo/internal/metrics"
	"github.com/golazo-app/golazo/internal/models"
)

var ErrPlayerRequired = errors.New("player id is required")

// Store is the subset of queries the scoring service reads and writes.
type Store interface {
	ListAttendanceByUser(ctx context.Context, userID string) ([]dbgen.Attendance, error)
	ListPaymentsByUser(ctx context.Context, userID string) ([]dbgen.Payment, error)
	GetScore(ctx context.Context, userID string) (dbgen.Score, error)
	UpsertScore(ctx context.Context, arg dbgen.UpsertScoreParams) (dbgen.Score, error)
	ListUsersWithHistory(ctx context.Context) ([]string, error)
}

type Service struct {
	store   Store
	weights Weights
	now     func() time.Time
}

func NewService(store Store, weights Weights) (*Service, error) {
	if store == nil {
		return nil, fmt.Errorf("scoring store is required")
	}
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	return &Service{store: store, weights: weights, now: time.Now}, nil
}

func (s *Service) Weights() Weights {
	return s.weights
}

// Outcome is the result of one recomputation. Skipped counts malformed
// records left out of the computation.
type Outcome struct {
	Record  models.ScoreRecord `json:"record"`
	Result  Result             `json:"result"`
	Label   string             `json:"label"`
	Skipped int                `json:"skipped"`
}

// Recompute scores a player's full history and upserts the score record.
// If either history fetch fails nothing is written and the returned error
// wraps models.ErrDataUnavailable.
func (s *Service) Recompute(ctx context.Context, playerID string) (Outcome, error) {
	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return Outcome{}, ErrPlayerRequired
	}
	logger := log.Ctx(ctx).With().Str("player_id", playerID).Logger()

	var attendanceRows []dbgen.Attendance
	var paymentRows []dbgen.Payment
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := s.store.ListAttendanceByUser(gctx, playerID)
		if err != nil {
			return models.Unavailable("attendance", err)
		}
		attendanceRows = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.store.ListPaymentsByUser(gctx, playerID)
		if err != nil {
			return models.Unavailable("payments", err)
		}
		paymentRows = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		metrics.ObserveRecompute("unavailable")
		logger.Error().Err(err).Msg("Score recompute skipped: history unavailable")
		return Outcome{}, err
	}

	attendance, skippedAttendance := validAttendance(attendanceRows, &logger)
	payments, skippedPayments := validPayments(paymentRows, &logger)
	metrics.ObserveSkipped("attendance", skippedAttendance)
	metrics.ObserveSkipped("payment", skippedPayments)

	result := Compute(attendance, payments, s.weights)

	row, err := s.store.UpsertScore(ctx, dbgen.UpsertScoreParams{
		UserID:     playerID,
		Score:      int64(result.Score),
		Attended:   int64(result.Attended),
		Paid:       int64(result.Paid),
		TotalGames: int64(result.TotalGames),
		UpdatedAt:  models.FormatTimestamp(s.now()),
	})
	if err != nil {
		metrics.ObserveRecompute("error")
		return Outcome{}, fmt.Errorf("persist score: %w", err)
	}
	record, err := models.ScoreFromRow(row)
	if err != nil {
		metrics.ObserveRecompute("error")
		return Outcome{}, fmt.Errorf("read persisted score: %w", err)
	}

	metrics.ObserveRecompute("ok")
	skipped := skippedAttendance + skippedPayments
	logger.Info().
		Int("score", result.Score).
		Int("attended", result.Attended).
		Int("paid", result.Paid).
		Int("total_games", result.TotalGames).
		Int("skipped", skipped).
		Msg("Score recomputed")

	return Outcome{
		Record:  record,
		Result:  result,
		Label:   Label(result.Score),
		Skipped: skipped,
	}, nil
}

// View is a player's persisted score as shown to clients.
type View struct {
	models.ScoreRecord
	Label     string `json:"label"`
	Persisted bool   `json:"persisted"`
}

// Get reads the persisted score. A player that has never been scored reads
// as the default score with zero counters.
func (s *Service) Get(ctx context.Context, playerID string) (View, error) {
	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return View{}, ErrPlayerRequired
	}

	row, err := s.store.GetScore(ctx, playerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return View{
				ScoreRecord: models.ScoreRecord{PlayerID: playerID, Score: models.DefaultScore},
				Label:       Label(models.DefaultScore),
			}, nil
		}
		return View{}, models.Unavailable("score", err)
	}

	record, err := models.ScoreFromRow(row)
	if err != nil {
		return View{}, err
	}
	return View{ScoreRecord: record, Label: Label(record.Score), Persisted: true}, nil
}

type BatchOutcome struct {
	Players int `json:"players"`
	Updated int `json:"updated"`
	Failed  int `json:"failed"`
	Skipped int `json:"skipped"`
}

// RecomputeAll rescores every player with attendance or payment history.
// Per-player failures are logged and counted; only a failure to list players
// or a cancelled context stops the batch.
func (s *Service) RecomputeAll(ctx context.Context) (BatchOutcome, error) {
	logger := log.Ctx(ctx)

	players, err := s.store.ListUsersWithHistory(ctx)
	if err != nil {
		return BatchOutcome{}, models.Unavailable("players", err)
	}

	batch := BatchOutcome{Players: len(players)}
	for _, playerID := range players {
		if err := ctx.Err(); err != nil {
			return batch, err
		}
		outcome, err := s.Recompute(ctx, playerID)
		if err != nil {
			batch.Failed++
			logger.Warn().Err(err).Str("player_id", playerID).Msg("Score recompute failed")
			continue
		}
		batch.Updated++
		batch.Skipped += outcome.Skipped
	}

	logger.Info().
		Int("players", batch.Players).
		Int("updated", batch.Updated).
		Int("failed", batch.Failed).
		Msg("Score batch recompute finished")
	return batch, nil
}
