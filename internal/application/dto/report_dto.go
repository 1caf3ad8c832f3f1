package dto

import (
	"github.com/shopspring/decimal"

	"github.com/gstbook/gstbook-api/internal/domain/repository"
)

// MonthBucket one month of a summary group. Months with no transactions
// keep an empty Rows slice; they are never omitted for a group that has
// activity elsewhere in the year.
type MonthBucket struct {
	Month       string                 `json:"month"` // 2006-01
	Count       int                    `json:"count"`
	TotalAmount decimal.Decimal        `json:"totalAmount"`
	Rows        []repository.ReportRow `json:"rows"`
}

// GroupSummary one grouping key (customer / HSN code / company) of the
// financial-year pivot.
type GroupSummary struct {
	GroupID     string          `json:"groupId"`
	GroupLabel  string          `json:"groupLabel"`
	Count       int             `json:"count"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Months      []MonthBucket   `json:"months"`
}

// GstVarianceMonth collected-vs-paid for one month.
type GstVarianceMonth struct {
	Month     string          `json:"month"`
	Collected decimal.Decimal `json:"collected"`
	Paid      decimal.Decimal `json:"paid"`
	Variance  decimal.Decimal `json:"variance"`
}

// GstVarianceResponse the yearly collected-vs-paid report.
type GstVarianceResponse struct {
	Year           int                `json:"year"`
	Months         []GstVarianceMonth `json:"months"`
	TotalCollected decimal.Decimal    `json:"totalCollected"`
	TotalPaid      decimal.Decimal    `json:"totalPaid"`
	TotalVariance  decimal.Decimal    `json:"totalVariance"`
}
