package entities

import "time"

// Appointment is a sales appointment (cita) row persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id (format "ID-" + 13 digits, generated at creation)
//
// Date and LastContactDate keep the raw stored string; source rows are
// day-first ("31/12/2024") or ISO depending on which schema wrote them, and
// unparsable values simply drop the row out of date-bounded aggregates.
type Appointment struct {
	ID              string    `json:"id"`
	Advisor         string    `json:"advisor"`
	Date            string    `json:"date"`
	ProspectName    string    `json:"prospect_name"`
	BusinessType    string    `json:"business_type,omitempty"`
	NextAction      string    `json:"next_action,omitempty"`
	LastContactDate string    `json:"last_contact_date,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
