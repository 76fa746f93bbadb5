package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/golazo-app/golazo/internal/occupancy"
)

const calendarSheet = "Semana"

var weekdayLabels = map[time.Weekday]string{
	time.Monday:    "Lun",
	time.Tuesday:   "Mar",
	time.Wednesday: "Mié",
	time.Thursday:  "Jue",
	time.Friday:    "Vie",
	time.Saturday:  "Sáb",
	time.Sunday:    "Dom",
}

// WeekWorkbook lays the grid out with hours as rows and days as columns.
// Occupied cells list the teams booked in the slot; past empty slots show "-".
func WeekWorkbook(view occupancy.WeekView) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", calendarSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	if err := f.SetCellStr(calendarSheet, "A1", "Hora"); err != nil {
		return nil, fmt.Errorf("set header: %w", err)
	}
	for i, day := range view.Grid.Days {
		cell := fmt.Sprintf("%s1", colName(i+2))
		label := fmt.Sprintf("%s %s", weekdayLabels[day.Date.Weekday()], day.Date.Format("02/01"))
		if err := f.SetCellStr(calendarSheet, cell, label); err != nil {
			return nil, fmt.Errorf("set cell %s: %w", cell, err)
		}
	}

	multiField := view.Grid.FieldID == "" && len(view.Fields) > 1
	for row, hour := range view.Grid.Policy.Hours() {
		rowNum := row + 2
		if err := f.SetCellStr(calendarSheet, fmt.Sprintf("A%d", rowNum), fmt.Sprintf("%02d:00", hour)); err != nil {
			return nil, fmt.Errorf("set hour row: %w", err)
		}
		for dayIdx := range view.Grid.Days {
			cell, ok := view.Grid.Cell(dayIdx, hour)
			if !ok {
				continue
			}
			ref := fmt.Sprintf("%s%d", colName(dayIdx+2), rowNum)
			if err := f.SetCellStr(calendarSheet, ref, cellText(cell, multiField)); err != nil {
				return nil, fmt.Errorf("set cell %s: %w", ref, err)
			}
		}
	}

	if err := applyCalendarStyles(f, view.Grid); err != nil {
		return nil, err
	}
	return f, nil
}

// WriteWeek streams the workbook for view to w.
func WriteWeek(view occupancy.WeekView, w io.Writer) error {
	f, err := WeekWorkbook(view)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// Filename builds the download name for a week, e.g. calendario-2024-01-08.xlsx.
func Filename(view occupancy.WeekView) string {
	return fmt.Sprintf("calendario-%s.xlsx", view.Grid.WeekStart.Format(time.DateOnly))
}

func cellText(cell occupancy.Cell, withField bool) string {
	switch cell.State {
	case occupancy.CellOccupied:
		labels := make([]string, 0, len(cell.Matches))
		for _, match := range cell.Matches {
			label := match.TeamName
			if label == "" {
				label = match.TeamID
			}
			if withField && match.FieldName != "" {
				label = fmt.Sprintf("%s (%s)", label, match.FieldName)
			}
			labels = append(labels, label)
		}
		return strings.Join(labels, " / ")
	case occupancy.CellUnavailable:
		return "-"
	default:
		return ""
	}
}

func applyCalendarStyles(f *excelize.File, grid occupancy.Grid) error {
	lastCol := colName(len(grid.Days) + 1)
	lastRow := grid.Policy.TotalSlots() + 1

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	_ = f.SetCellStyle(calendarSheet, "A1", lastCol+"1", bold)
	_ = f.SetCellStyle(calendarSheet, "A2", fmt.Sprintf("A%d", lastRow), bold)

	occupied, err := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#C6EFCE"}, Pattern: 1},
		Alignment: &excelize.Alignment{WrapText: true},
	})
	if err != nil {
		return fmt.Errorf("occupied style: %w", err)
	}
	for dayIdx := range grid.Days {
		for _, hour := range grid.Policy.Hours() {
			cell, _ := grid.Cell(dayIdx, hour)
			if cell.State != occupancy.CellOccupied {
				continue
			}
			ref := fmt.Sprintf("%s%d", colName(dayIdx+2), hour-grid.Policy.StartHour+2)
			_ = f.SetCellStyle(calendarSheet, ref, ref, occupied)
		}
	}

	_ = f.SetColWidth(calendarSheet, "A", "A", 8)
	_ = f.SetColWidth(calendarSheet, "B", lastCol, 22)
	return nil
}

// colName converts a 1-based column index to its letter name.
func colName(n int) string {
	name := ""
	for n > 0 {
		n--
		name = string(rune('A'+n%26)) + name
		n /= 26
	}
	return name
}
