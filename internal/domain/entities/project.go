package entities

import (
	"strings"
	"time"
)

// ProjectStatus is the closed lifecycle of a project/quote.
//
// Domain notes:
//   - Stored data comes from two historical schema variants (uppercase with
//     spaces vs lowercase with underscores), so raw values are normalized at
//     the ingestion boundary and never compared by casing anywhere else.
//   - "Sold" is a legacy synonym still present in old rows; it normalizes to
//     Won.
type ProjectStatus string

const (
	ProjectStatusInProgress ProjectStatus = "In Progress"
	ProjectStatusWon        ProjectStatus = "Won"
	ProjectStatusLost       ProjectStatus = "Lost"
	// ProjectStatusUnknown keeps rows with unrecognized status values in the
	// pipeline sums without assigning them to a bucket.
	ProjectStatusUnknown ProjectStatus = ""
)

// NormalizeProjectStatus maps a raw stored status onto the closed enum.
func NormalizeProjectStatus(raw string) ProjectStatus {
	s := strings.ToUpper(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, "_", " ")
	switch s {
	case "WON", "SOLD":
		return ProjectStatusWon
	case "LOST":
		return ProjectStatusLost
	case "IN PROGRESS", "IN PROCESS":
		return ProjectStatusInProgress
	default:
		return ProjectStatusUnknown
	}
}

// LossReason is required when a project is Lost and empty otherwise.
type LossReason string

const (
	LossReasonPrice LossReason = "Price"
	LossReasonStock LossReason = "Stock"
	LossReasonOther LossReason = "Other"
	LossReasonNone  LossReason = ""
)

func NormalizeLossReason(raw string) LossReason {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "PRICE":
		return LossReasonPrice
	case "STOCK", "STOCK/INVENTORY":
		return LossReasonStock
	case "OTHER":
		return LossReasonOther
	default:
		return LossReasonNone
	}
}

// Project is a project/quote row persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Date columns are kept as the raw stored strings: sheets-era rows mix
// day-first and ISO formats, and unparsable values must degrade to "no date"
// instead of failing, so parsing happens where a date-bounded metric needs it.
// Total is optional: an absent or non-numeric stored value is nil and stays
// out of every sum.
type Project struct {
	ID          string        `json:"id"`
	Advisor     string        `json:"advisor"`
	QuoteNumber string        `json:"quote_number,omitempty"`
	QuoteDate   string        `json:"quote_date,omitempty"`
	InvoiceDate string        `json:"invoice_date,omitempty"`
	ProjectName string        `json:"project_name"`
	ClientName  string        `json:"client_name"`
	Status      ProjectStatus `json:"status"`
	Total       *float64      `json:"total,omitempty"`
	LossReason  LossReason    `json:"loss_reason,omitempty"`
	Notes       string        `json:"notes,omitempty"`
	Date        string        `json:"date,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
