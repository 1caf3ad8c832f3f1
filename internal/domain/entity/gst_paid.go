package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// GstPaid records tax remitted for a month ("2025-04"). Used by the
// collected-vs-paid variance report.
type GstPaid struct {
	ID        string
	Month     string
	Amount    decimal.Decimal
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
