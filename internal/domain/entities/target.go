package entities

import "time"

// Target is a monthly sales quota row persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id (uuid)
//
// One row per advisor per month is the expected shape, but duplicates are
// legal: the metrics engine sums matching rows instead of rejecting them, so
// partial or duplicated quota data degrades by accumulation.
//
// QuotaAmount is optional; a non-numeric stored value becomes nil and never
// contributes to quota sums.
type Target struct {
	ID          string    `json:"id"`
	Advisor     string    `json:"advisor"`
	Month       int       `json:"month"`
	Year        int       `json:"year"`
	QuotaAmount *float64  `json:"quota_amount,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
