package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/golazo-app/golazo/internal/models"
	"github.com/golazo-app/golazo/internal/occupancy"
)

func sampleView() occupancy.WeekView {
	monday := time.Date(2024, time.January, 8, 0, 0, 0, 0, time.UTC)
	grid := occupancy.BuildGrid(occupancy.GridRequest{
		ReferenceDate: monday,
		Today:         monday.AddDate(0, 0, 1),
		Policy:        occupancy.CanonicalPolicy,
		Matches: []models.Match{
			{ID: "m1", FieldID: "A", FieldName: "Cancha A", TeamName: "Los Cracks", StartsAt: monday.Add(10 * time.Hour)},
			{ID: "m2", FieldID: "B", FieldName: "Cancha B", TeamName: "Real Barrio", StartsAt: monday.Add(10 * time.Hour)},
		},
	})
	return occupancy.WeekView{
		Grid:   grid,
		Fields: []models.Field{{ID: "A", Name: "Cancha A"}, {ID: "B", Name: "Cancha B"}},
	}
}

func TestWriteWeek(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteWeek(sampleView(), &buf); err != nil {
		t.Fatalf("write week: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(calendarSheet)
	if err != nil {
		t.Fatalf("get rows: %v", err)
	}
	if len(rows) != 17 {
		t.Fatalf("rows = %d, want 17", len(rows))
	}
	if rows[0][1] != "Lun 08/01" || rows[0][7] != "Dom 14/01" {
		t.Fatalf("unexpected header: %v", rows[0])
	}

	booked, err := f.GetCellValue(calendarSheet, "B6")
	if err != nil {
		t.Fatalf("get cell: %v", err)
	}
	if booked != "Los Cracks (Cancha A) / Real Barrio (Cancha B)" {
		t.Fatalf("B6 = %q", booked)
	}

	past, _ := f.GetCellValue(calendarSheet, "B2")
	if past != "-" {
		t.Fatalf("past empty slot = %q, want -", past)
	}
	future, _ := f.GetCellValue(calendarSheet, "D2")
	if future != "" {
		t.Fatalf("future empty slot = %q, want empty", future)
	}
}

func TestFilename(t *testing.T) {
	if got := Filename(sampleView()); got != "calendario-2024-01-08.xlsx" {
		t.Fatalf("filename = %q", got)
	}
}

func TestColName(t *testing.T) {
	tests := map[int]string{1: "A", 8: "H", 26: "Z", 27: "AA", 52: "AZ"}
	for n, want := range tests {
		if got := colName(n); got != want {
			t.Fatalf("colName(%d) = %q, want %q", n, got, want)
		}
	}
}
