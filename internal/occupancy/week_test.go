package occupancy

import (
	"testing"
	"time"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		name  string
		input time.Time
		want  time.Time
	}{
		{name: "sunday_goes_back_six_days", input: date(2024, time.January, 14), want: date(2024, time.January, 8)},
		{name: "monday_is_itself", input: date(2024, time.January, 8), want: date(2024, time.January, 8)},
		{name: "wednesday", input: date(2024, time.January, 10), want: date(2024, time.January, 8)},
		{name: "saturday", input: date(2024, time.January, 13), want: date(2024, time.January, 8)},
		{name: "sunday_across_month", input: date(2024, time.March, 3), want: date(2024, time.February, 26)},
		{name: "across_year", input: date(2025, time.January, 1), want: date(2024, time.December, 30)},
		{name: "drops_time_of_day", input: time.Date(2024, time.January, 14, 23, 59, 0, 0, time.UTC), want: date(2024, time.January, 8)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := StartOfWeek(test.input)
			if !got.Equal(test.want) {
				t.Fatalf("StartOfWeek(%s) = %s, want %s", test.input.Format(time.DateOnly), got.Format(time.DateOnly), test.want.Format(time.DateOnly))
			}
			if got.Weekday() != time.Monday {
				t.Fatalf("StartOfWeek returned %s", got.Weekday())
			}
		})
	}
}

func TestStartOfWeek_EveryDayOfAYear(t *testing.T) {
	for d := date(2024, time.January, 1); d.Year() == 2024; d = d.AddDate(0, 0, 1) {
		start := StartOfWeek(d)
		if start.Weekday() != time.Monday {
			t.Fatalf("%s: start is %s", d.Format(time.DateOnly), start.Weekday())
		}
		offset := d.Sub(start)
		if offset < 0 || offset >= 7*24*time.Hour {
			t.Fatalf("%s: start %s is not in the same week", d.Format(time.DateOnly), start.Format(time.DateOnly))
		}
	}
}

func TestEndOfWeek(t *testing.T) {
	got := EndOfWeek(date(2024, time.January, 14))
	if !got.Equal(date(2024, time.January, 14)) {
		t.Fatalf("EndOfWeek = %s, want 2024-01-14", got.Format(time.DateOnly))
	}
	got = EndOfWeek(date(2024, time.January, 9))
	if !got.Equal(date(2024, time.January, 14)) {
		t.Fatalf("EndOfWeek = %s, want 2024-01-14", got.Format(time.DateOnly))
	}
}

func TestPolicy(t *testing.T) {
	if got := CanonicalPolicy.TotalSlots(); got != 16 {
		t.Fatalf("canonical slots = %d, want 16", got)
	}
	if got := LegacyPolicy.TotalSlots(); got != 14 {
		t.Fatalf("legacy slots = %d, want 14", got)
	}
	hours := CanonicalPolicy.Hours()
	if hours[0] != 6 || hours[len(hours)-1] != 21 {
		t.Fatalf("hours = %v", hours)
	}
	if err := (Policy{StartHour: 10, EndHour: 8}).Validate(); err == nil {
		t.Fatalf("expected inverted policy to fail")
	}
}
