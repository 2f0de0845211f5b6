package request

import (
	"crm_ventas/internal/domain/entities"
)

// Record payloads accepted by the CRUD endpoints. Dates stay raw strings on
// purpose; the stored collections mix day-first and ISO spellings and the
// metrics engine owns the parsing rules.

type AppointmentRequest struct {
	Advisor         string `json:"advisor" binding:"required"`
	Date            string `json:"date"`
	ProspectName    string `json:"prospect_name" binding:"required"`
	BusinessType    string `json:"business_type"`
	NextAction      string `json:"next_action"`
	LastContactDate string `json:"last_contact_date"`
}

func (r AppointmentRequest) ToEntity() entities.Appointment {
	return entities.Appointment{
		Advisor:         r.Advisor,
		Date:            r.Date,
		ProspectName:    r.ProspectName,
		BusinessType:    r.BusinessType,
		NextAction:      r.NextAction,
		LastContactDate: r.LastContactDate,
	}
}

type ProspectRequest struct {
	Advisor      string `json:"advisor" binding:"required"`
	Date         string `json:"date"`
	ProspectName string `json:"prospect_name" binding:"required"`
	DealType     string `json:"deal_type"`
	Action       string `json:"action"`
}

func (r ProspectRequest) ToEntity() entities.Prospect {
	return entities.Prospect{
		Advisor:      r.Advisor,
		Date:         r.Date,
		ProspectName: r.ProspectName,
		DealType:     entities.DealType(r.DealType),
		Action:       r.Action,
	}
}

// ProjectRequest accepts any historical status spelling ("SOLD", "Won",
// "IN_PROGRESS"); normalization happens in the use case before persistence.
type ProjectRequest struct {
	Advisor     string   `json:"advisor" binding:"required"`
	QuoteNumber string   `json:"quote_number"`
	QuoteDate   string   `json:"quote_date"`
	InvoiceDate string   `json:"invoice_date"`
	ProjectName string   `json:"project_name"`
	ClientName  string   `json:"client_name"`
	Status      string   `json:"status" binding:"required"`
	Total       *float64 `json:"total"`
	LossReason  string   `json:"loss_reason"`
	Notes       string   `json:"notes"`
	Date        string   `json:"date"`
}

func (r ProjectRequest) ToEntity() entities.Project {
	return entities.Project{
		Advisor:     r.Advisor,
		QuoteNumber: r.QuoteNumber,
		QuoteDate:   r.QuoteDate,
		InvoiceDate: r.InvoiceDate,
		ProjectName: r.ProjectName,
		ClientName:  r.ClientName,
		Status:      entities.ProjectStatus(r.Status),
		Total:       r.Total,
		LossReason:  entities.LossReason(r.LossReason),
		Notes:       r.Notes,
		Date:        r.Date,
	}
}

type TargetRequest struct {
	Advisor     string   `json:"advisor" binding:"required"`
	Month       int      `json:"month" binding:"required"`
	Year        int      `json:"year" binding:"required"`
	QuotaAmount *float64 `json:"quota_amount"`
}

func (r TargetRequest) ToEntity() entities.Target {
	return entities.Target{
		Advisor:     r.Advisor,
		Month:       r.Month,
		Year:        r.Year,
		QuotaAmount: r.QuotaAmount,
	}
}
