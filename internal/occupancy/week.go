package occupancy

import (
	"fmt"
	"time"
)

// StartOfWeek returns midnight of the Monday of the week containing date, in
// date's location. Sunday belongs to the week that started six days earlier.
func StartOfWeek(date time.Time) time.Time {
	weekday := int(date.Weekday())
	diff := date.Day() - weekday
	if weekday == 0 {
		diff -= 6
	} else {
		diff += 1
	}
	// time.Date normalizes day-of-month underflow into the previous month.
	return time.Date(date.Year(), date.Month(), diff, 0, 0, 0, 0, date.Location())
}

// EndOfWeek returns midnight of the Sunday closing the week containing date.
func EndOfWeek(date time.Time) time.Time {
	return StartOfWeek(date).AddDate(0, 0, 6)
}

// DateOnly truncates t to midnight in its own location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// Policy bounds the bookable hours of a day. Both hours are slot start hours
// and inclusive.
type Policy struct {
	StartHour int `json:"startHour"`
	EndHour   int `json:"endHour"`
}

// CanonicalPolicy has 16 slots, 06:00 to 22:00.
var CanonicalPolicy = Policy{StartHour: 6, EndHour: 21}

// LegacyPolicy is the older 14 slot calendar, 06:00 to 20:00.
var LegacyPolicy = Policy{StartHour: 6, EndHour: 19}

func (p Policy) Validate() error {
	if p.StartHour < 0 || p.EndHour > 23 {
		return fmt.Errorf("slot hours must be between 0 and 23")
	}
	if p.StartHour > p.EndHour {
		return fmt.Errorf("slot start hour %d is after end hour %d", p.StartHour, p.EndHour)
	}
	return nil
}

func (p Policy) TotalSlots() int {
	return p.EndHour - p.StartHour + 1
}

func (p Policy) Contains(hour int) bool {
	return hour >= p.StartHour && hour <= p.EndHour
}

func (p Policy) Hours() []int {
	hours := make([]int, 0, p.TotalSlots())
	for h := p.StartHour; h <= p.EndHour; h++ {
		hours = append(hours, h)
	}
	return hours
}
