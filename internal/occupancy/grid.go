// Package occupancy buckets a week of matches into a day by hour grid for a
// field calendar.
package occupancy

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/golazo-app/golazo/internal/models"
)

const DaysPerWeek = 7

type CellState string

const (
	CellOccupied    CellState = "occupied"
	CellAvailable   CellState = "available"
	CellUnavailable CellState = "unavailable"
)

// Cell is one hour on one day. A cell holding more than one match is a
// double booking and is reported as is.
type Cell struct {
	Hour    int            `json:"hour"`
	State   CellState      `json:"state"`
	Past    bool           `json:"past"`
	Matches []models.Match `json:"matches"`
}

type Day struct {
	Date  time.Time `json:"date"`
	Cells []Cell    `json:"cells"`
}

type Grid struct {
	WeekStart time.Time `json:"weekStart"`
	WeekEnd   time.Time `json:"weekEnd"`
	Policy    Policy    `json:"policy"`
	FieldID   string    `json:"fieldId,omitempty"`
	Days      []Day     `json:"days"`
	// Skipped counts matches dropped for an unusable start time.
	Skipped int `json:"skipped"`
	// OutsideHours counts matches in the week that start outside the policy.
	OutsideHours int `json:"outsideHours"`
}

// Cell returns the cell for a day index (0 = Monday) and hour.
func (g Grid) Cell(day, hour int) (Cell, bool) {
	if day < 0 || day >= len(g.Days) || !g.Policy.Contains(hour) {
		return Cell{}, false
	}
	return g.Days[day].Cells[hour-g.Policy.StartHour], true
}

func (g Grid) CellCount() int {
	total := 0
	for _, day := range g.Days {
		total += len(day.Cells)
	}
	return total
}

type GridRequest struct {
	// ReferenceDate is any instant within the target week.
	ReferenceDate time.Time
	Today         time.Time
	Location      *time.Location
	Policy        Policy
	// FieldID limits the grid to one field when set.
	FieldID string
	Matches []models.Match
	Logger  *zerolog.Logger
}

// BuildGrid produces a cell for every day of the week and every hour of the
// policy. Days are evaluated in req.Location, defaulting to UTC. A zero or
// invalid policy is replaced by CanonicalPolicy.
func BuildGrid(req GridRequest) Grid {
	loc := req.Location
	if loc == nil {
		loc = time.UTC
	}
	logger := req.Logger
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	weekStart := StartOfWeek(req.ReferenceDate.In(loc))
	today := DateOnly(req.Today.In(loc))
	policy := req.Policy
	if policy == (Policy{}) {
		policy = CanonicalPolicy
	} else if err := policy.Validate(); err != nil {
		logger.Error().Err(err).Msg("Invalid slot policy, using canonical hours")
		policy = CanonicalPolicy
	}

	grid := Grid{
		WeekStart: weekStart,
		WeekEnd:   weekStart.AddDate(0, 0, DaysPerWeek-1),
		Policy:    policy,
		FieldID:   req.FieldID,
		Days:      make([]Day, DaysPerWeek),
	}

	for i := range grid.Days {
		date := weekStart.AddDate(0, 0, i)
		past := date.Before(today)
		cells := make([]Cell, policy.TotalSlots())
		for j := range cells {
			state := CellAvailable
			if past {
				state = CellUnavailable
			}
			cells[j] = Cell{Hour: policy.StartHour + j, State: state, Past: past, Matches: []models.Match{}}
		}
		grid.Days[i] = Day{Date: date, Cells: cells}
	}

	for _, match := range req.Matches {
		if match.StartsAt.IsZero() {
			grid.Skipped++
			logger.Warn().Str("match_id", match.ID).Msg("Skipping match without start time")
			continue
		}
		if req.FieldID != "" && match.FieldID != req.FieldID {
			continue
		}

		local := match.StartsAt.In(loc)
		dayIndex := grid.dayIndex(local)
		if dayIndex < 0 {
			continue
		}
		if !policy.Contains(local.Hour()) {
			grid.OutsideHours++
			continue
		}

		cell := &grid.Days[dayIndex].Cells[local.Hour()-policy.StartHour]
		cell.Matches = append(cell.Matches, match)
		cell.State = CellOccupied
	}

	return grid
}

func (g Grid) dayIndex(t time.Time) int {
	for i, day := range g.Days {
		if sameDay(day.Date, t) {
			return i
		}
	}
	return -1
}

// FreeSlots counts the unbooked slots on day. With a field ID only that
// field is counted; otherwise every field contributes its own capacity.
func FreeSlots(day time.Time, fields []models.Field, matches []models.Match, policy Policy, fieldID string) int {
	perField := make(map[string]int)
	for _, match := range matches {
		if match.StartsAt.IsZero() {
			continue
		}
		if sameDay(match.StartsAt.In(day.Location()), day) {
			perField[match.FieldID]++
		}
	}

	total := policy.TotalSlots()
	if fieldID != "" {
		return max(0, total-perField[fieldID])
	}

	free := 0
	for _, field := range fields {
		free += max(0, total-perField[field.ID])
	}
	return free
}
