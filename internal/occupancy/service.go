package occupancy

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	dbgen "github.com/golazo-app/golazo/internal/db/generated"
	"github.com/golazo-app/golazo/internal/metrics"
	"github.com/golazo-app/golazo/internal/models"
)

// storedTimeSlack widens the SQL window so rows stored with an offset or
// in a non-canonical layout still reach the parsed range check.
const storedTimeSlack = 48 * time.Hour

var (
	ErrAdminRequired = errors.New("admin id is required")
	ErrFieldNotFound = errors.New("field not found for admin")
)

// Store is the subset of queries the calendar reads.
type Store interface {
	ListFieldsByAdmin(ctx context.Context, adminID string) ([]dbgen.Field, error)
	ListMatchesInRange(ctx context.Context, arg dbgen.ListMatchesInRangeParams) ([]dbgen.ListMatchesInRangeRow, error)
}

type Service struct {
	store  Store
	policy Policy
	loc    *time.Location
	now    func() time.Time
}

func NewService(store Store, policy Policy, loc *time.Location) (*Service, error) {
	if store == nil {
		return nil, fmt.Errorf("occupancy store is required")
	}
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Service{store: store, policy: policy, loc: loc, now: time.Now}, nil
}

func (s *Service) Policy() Policy {
	return s.policy
}

func (s *Service) Location() *time.Location {
	return s.loc
}

// Query selects an admin's calendar. FieldID narrows it to one field and
// Date picks the week or day; a zero Date means today.
type Query struct {
	AdminID string
	FieldID string
	Date    time.Time
}

type WeekView struct {
	Grid   Grid           `json:"grid"`
	Fields []models.Field `json:"fields"`
	// FreeSlotsToday is set only when today falls inside the viewed week.
	FreeSlotsToday *int `json:"freeSlotsToday,omitempty"`
}

// Week loads the admin's fields and the week's matches and builds the grid.
// A failed fetch returns an error wrapping models.ErrDataUnavailable and no
// grid.
func (s *Service) Week(ctx context.Context, q Query) (WeekView, error) {
	q, err := s.normalize(q)
	if err != nil {
		return WeekView{}, err
	}
	logger := log.Ctx(ctx).With().Str("admin_id", q.AdminID).Str("field_id", q.FieldID).Logger()

	weekStart := StartOfWeek(q.Date)
	fields, matches, skipped, err := s.load(ctx, q, weekStart, weekStart.AddDate(0, 0, DaysPerWeek), &logger)
	if err != nil {
		return WeekView{}, err
	}

	now := s.now().In(s.loc)
	grid := BuildGrid(GridRequest{
		ReferenceDate: q.Date,
		Today:         now,
		Location:      s.loc,
		Policy:        s.policy,
		FieldID:       q.FieldID,
		Matches:       matches,
		Logger:        &logger,
	})
	grid.Skipped += skipped
	metrics.GridBuilds.Inc()

	view := WeekView{Grid: grid, Fields: fields}
	if grid.dayIndex(now) >= 0 {
		free := FreeSlots(DateOnly(now), fields, matches, s.policy, q.FieldID)
		view.FreeSlotsToday = &free
	}

	logger.Debug().
		Time("week_start", grid.WeekStart).
		Int("matches", len(matches)).
		Int("skipped", grid.Skipped).
		Msg("Occupancy grid built")
	return view, nil
}

type DayView struct {
	Date       time.Time `json:"date"`
	FieldID    string    `json:"fieldId,omitempty"`
	TotalSlots int       `json:"totalSlots"`
	FreeSlots  int       `json:"freeSlots"`
	Fields     int       `json:"fields"`
	Skipped    int       `json:"skipped"`
}

// FreeSlots reports the free capacity on a single day.
func (s *Service) FreeSlots(ctx context.Context, q Query) (DayView, error) {
	q, err := s.normalize(q)
	if err != nil {
		return DayView{}, err
	}
	logger := log.Ctx(ctx).With().Str("admin_id", q.AdminID).Str("field_id", q.FieldID).Logger()

	day := DateOnly(q.Date)
	fields, matches, skipped, err := s.load(ctx, q, day, day.AddDate(0, 0, 1), &logger)
	if err != nil {
		return DayView{}, err
	}

	fieldCount := len(fields)
	if q.FieldID != "" {
		fieldCount = 1
	}
	return DayView{
		Date:       day,
		FieldID:    q.FieldID,
		TotalSlots: s.policy.TotalSlots() * fieldCount,
		FreeSlots:  FreeSlots(day, fields, matches, s.policy, q.FieldID),
		Fields:     fieldCount,
		Skipped:    skipped,
	}, nil
}

func (s *Service) normalize(q Query) (Query, error) {
	q.AdminID = strings.TrimSpace(q.AdminID)
	q.FieldID = strings.TrimSpace(q.FieldID)
	if q.AdminID == "" {
		return q, ErrAdminRequired
	}
	if q.Date.IsZero() {
		q.Date = s.now()
	}
	q.Date = q.Date.In(s.loc)
	return q, nil
}

// load fetches fields and matches in [from, to) concurrently and drops
// matches whose start time cannot be parsed. date_time is compared as text
// in SQL, so the query window is padded and the exact range is applied to
// the parsed start time.
func (s *Service) load(ctx context.Context, q Query, from, to time.Time, logger *zerolog.Logger) ([]models.Field, []models.Match, int, error) {
	var fieldRows []dbgen.Field
	var matchRows []dbgen.ListMatchesInRangeRow

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := s.store.ListFieldsByAdmin(gctx, q.AdminID)
		if err != nil {
			return models.Unavailable("fields", err)
		}
		fieldRows = rows
		return nil
	})
	g.Go(func() error {
		fieldFilter := sql.NullString{}
		if q.FieldID != "" {
			fieldFilter = sql.NullString{String: q.FieldID, Valid: true}
		}
		rows, err := s.store.ListMatchesInRange(gctx, dbgen.ListMatchesInRangeParams{
			AdminID:   q.AdminID,
			StartTime: models.FormatTimestamp(from.Add(-storedTimeSlack)),
			EndTime:   models.FormatTimestamp(to.Add(storedTimeSlack)),
			FieldID:   fieldFilter,
		})
		if err != nil {
			return models.Unavailable("matches", err)
		}
		matchRows = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		logger.Error().Err(err).Msg("Calendar data unavailable")
		return nil, nil, 0, err
	}

	fields := make([]models.Field, 0, len(fieldRows))
	found := q.FieldID == ""
	for _, row := range fieldRows {
		fields = append(fields, models.FieldFromRow(row))
		if row.ID == q.FieldID {
			found = true
		}
	}
	if !found {
		return nil, nil, 0, ErrFieldNotFound
	}

	matches := make([]models.Match, 0, len(matchRows))
	skipped := 0
	for _, row := range matchRows {
		match, err := models.MatchFromRow(row)
		if err != nil {
			skipped++
			logger.Warn().Err(err).Msg("Skipping match")
			continue
		}
		if match.StartsAt.Before(from) || !match.StartsAt.Before(to) {
			continue
		}
		matches = append(matches, match)
	}
	slices.SortStableFunc(matches, func(a, b models.Match) int {
		if c := a.StartsAt.Compare(b.StartsAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	metrics.ObserveSkipped("match", skipped)

	return fields, matches, skipped, nil
}
