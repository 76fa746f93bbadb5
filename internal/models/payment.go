package models

import (
	"fmt"
	"time"

	dbgen "github.com/golazo-app/golazo/internal/db/generated"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPartial PaymentStatus = "partial"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

func ParsePaymentStatus(raw string) (PaymentStatus, error) {
	switch status := PaymentStatus(raw); status {
	case PaymentPending, PaymentPartial, PaymentPaid, PaymentFailed:
		return status, nil
	default:
		return "", fmt.Errorf("unknown payment status %q", raw)
	}
}

type PaymentRecord struct {
	ID       string        `json:"id"`
	PlayerID string        `json:"playerId"`
	MatchID  string        `json:"matchId"`
	Amount   float64       `json:"amount"`
	Method   string        `json:"method"`
	Status   PaymentStatus `json:"status"`
	PaidAt   *time.Time    `json:"paidAt,omitempty"`
}

// PaymentFromRow validates a stored payment. PaidAt must be present exactly
// when the payment is paid.
func PaymentFromRow(row dbgen.Payment) (PaymentRecord, error) {
	malformed := func(reason string) (PaymentRecord, error) {
		return PaymentRecord{}, MalformedRecordError{Kind: "payment", ID: row.ID, Reason: reason}
	}

	status, err := ParsePaymentStatus(row.Status)
	if err != nil {
		return malformed(err.Error())
	}
	if row.Amount <= 0 {
		return malformed("amount must be greater than 0")
	}

	record := PaymentRecord{
		ID:       row.ID,
		PlayerID: row.UserID,
		MatchID:  row.MatchID,
		Amount:   row.Amount,
		Method:   row.Method,
		Status:   status,
	}

	hasPaidAt := row.PaidAt.Valid && row.PaidAt.String != ""
	switch {
	case status == PaymentPaid && !hasPaidAt:
		return malformed("paid payment is missing paid_at")
	case status != PaymentPaid && hasPaidAt:
		return malformed(fmt.Sprintf("%s payment has paid_at", status))
	case hasPaidAt:
		paidAt, err := ParseTimestamp(row.PaidAt.String)
		if err != nil {
			return malformed(err.Error())
		}
		record.PaidAt = &paidAt
	}

	return record, nil
}
