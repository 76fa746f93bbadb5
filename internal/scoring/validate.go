package scoring

import (
	"github.com/rs/zerolog"

	dbgen "github.com/golazo-app/golazo/internal/db/generated"
	"github.com/golazo-app/golazo/internal/models"
)

func validAttendance(rows []dbgen.Attendance, logger *zerolog.Logger) ([]models.AttendanceRecord, int) {
	records := make([]models.AttendanceRecord, 0, len(rows))
	skipped := 0
	for _, row := range rows {
		record, err := models.AttendanceFromRow(row)
		if err != nil {
			skipped++
			logger.Warn().Err(err).Msg("Skipping attendance record")
			continue
		}
		records = append(records, record)
	}
	return records, skipped
}

func validPayments(rows []dbgen.Payment, logger *zerolog.Logger) ([]models.PaymentRecord, int) {
	records := make([]models.PaymentRecord, 0, len(rows))
	skipped := 0
	for _, row := range rows {
		record, err := models.PaymentFromRow(row)
		if err != nil {
			skipped++
			logger.Warn().Err(err).Msg("Skipping payment record")
			continue
		}
		records = append(records, record)
	}
	return records, skipped
}
