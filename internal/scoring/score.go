// Package scoring derives a player's responsibility score from attendance
// and payment history.
package scoring

import (
	"fmt"
	"math"

	"github.com/golazo-app/golazo/internal/models"
)

// Weights controls how much attendance and payment compliance contribute to
// the score. They must be non-negative and sum to 1.
type Weights struct {
	Attendance float64 `json:"attendance"`
	Payment    float64 `json:"payment"`
}

var DefaultWeights = Weights{Attendance: 0.5, Payment: 0.5}

func (w Weights) Validate() error {
	if w.Attendance < 0 || w.Payment < 0 {
		return fmt.Errorf("weights must be 0 or greater")
	}
	if math.Abs(w.Attendance+w.Payment-1) > 1e-9 {
		return fmt.Errorf("weights must sum to 1, got %v", w.Attendance+w.Payment)
	}
	return nil
}

type Result struct {
	Score          int     `json:"score"`
	Attended       int     `json:"attended"`
	Paid           int     `json:"paid"`
	TotalGames     int     `json:"totalGames"`
	TotalPayments  int     `json:"totalPayments"`
	AttendanceRate float64 `json:"attendanceRate"`
	PaymentRate    float64 `json:"paymentRate"`
}

// Compute scores a complete history. An empty history on either side counts
// as a perfect rate, so a new player starts at 100.
func Compute(attendance []models.AttendanceRecord, payments []models.PaymentRecord, w Weights) Result {
	result := Result{
		TotalGames:     len(attendance),
		TotalPayments:  len(payments),
		AttendanceRate: 1,
		PaymentRate:    1,
	}

	for _, record := range attendance {
		if record.Attended {
			result.Attended++
		}
	}
	for _, payment := range payments {
		if payment.Status == models.PaymentPaid {
			result.Paid++
		}
	}

	if result.TotalGames > 0 {
		result.AttendanceRate = float64(result.Attended) / float64(result.TotalGames)
	}
	if result.TotalPayments > 0 {
		result.PaymentRate = float64(result.Paid) / float64(result.TotalPayments)
	}

	raw := math.Round(100 * (w.Attendance*result.AttendanceRate + w.Payment*result.PaymentRate))
	result.Score = clamp(int(raw), 0, 100)
	return result
}

// Label maps a score to the band shown next to it in the player profile.
func Label(score int) string {
	switch {
	case score >= 90:
		return "Élite"
	case score >= 70:
		return "Bueno"
	case score >= 50:
		return "Regular"
	default:
		return "Bajo"
	}
}

func clamp(value, lo, hi int) int {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}
