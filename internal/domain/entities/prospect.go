package entities

import (
	"strings"
	"time"
)

// DealType classifies a prospecting opportunity.
type DealType string

const (
	DealTypeSale    DealType = "Sale"
	DealTypeRent    DealType = "Rent"
	DealTypeUnknown DealType = ""
)

func NormalizeDealType(raw string) DealType {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "SALE":
		return DealTypeSale
	case "RENT":
		return DealTypeRent
	default:
		return DealTypeUnknown
	}
}

// Prospect is a prospecting-activity row persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id (format "ID-" + 13 digits)
type Prospect struct {
	ID           string    `json:"id"`
	Advisor      string    `json:"advisor"`
	Date         string    `json:"date"`
	ProspectName string    `json:"prospect_name"`
	DealType     DealType  `json:"deal_type"`
	Action       string    `json:"action,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
