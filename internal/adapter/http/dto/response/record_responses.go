package response

import (
	"time"

	"crm_ventas/internal/domain/entities"
)

type AppointmentResponse struct {
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

func FromAppointment(a entities.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:              a.ID,
		Advisor:         a.Advisor,
		Date:            a.Date,
		ProspectName:    a.ProspectName,
		BusinessType:    a.BusinessType,
		NextAction:      a.NextAction,
		LastContactDate: a.LastContactDate,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

func FromAppointments(list []entities.Appointment) []AppointmentResponse {
	out := make([]AppointmentResponse, 0, len(list))
	for _, a := range list {
		out = append(out, FromAppointment(a))
	}
	return out
}

type ProspectResponse struct {
	ID           string    `json:"id"`
	Advisor      string    `json:"advisor"`
	Date         string    `json:"date"`
	ProspectName string    `json:"prospect_name"`
	DealType     string    `json:"deal_type"`
	Action       string    `json:"action,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromProspect(p entities.Prospect) ProspectResponse {
	return ProspectResponse{
		ID:           p.ID,
		Advisor:      p.Advisor,
		Date:         p.Date,
		ProspectName: p.ProspectName,
		DealType:     string(p.DealType),
		Action:       p.Action,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func FromProspects(list []entities.Prospect) []ProspectResponse {
	out := make([]ProspectResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromProspect(p))
	}
	return out
}

type ProjectResponse struct {
	ID          string    `json:"id"`
	Advisor     string    `json:"advisor"`
	QuoteNumber string    `json:"quote_number,omitempty"`
	QuoteDate   string    `json:"quote_date,omitempty"`
	InvoiceDate string    `json:"invoice_date,omitempty"`
	ProjectName string    `json:"project_name,omitempty"`
	ClientName  string    `json:"client_name,omitempty"`
	Status      string    `json:"status"`
	Total       *float64  `json:"total"`
	LossReason  string    `json:"loss_reason,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	Date        string    `json:"date,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromProject(p entities.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		Advisor:     p.Advisor,
		QuoteNumber: p.QuoteNumber,
		QuoteDate:   p.QuoteDate,
		InvoiceDate: p.InvoiceDate,
		ProjectName: p.ProjectName,
		ClientName:  p.ClientName,
		Status:      string(p.Status),
		Total:       p.Total,
		LossReason:  string(p.LossReason),
		Notes:       p.Notes,
		Date:        p.Date,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func FromProjects(list []entities.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromProject(p))
	}
	return out
}

type TargetResponse struct {
	ID          string    `json:"id"`
	Advisor     string    `json:"advisor"`
	Month       int       `json:"month"`
	Year        int       `json:"year"`
	QuotaAmount *float64  `json:"quota_amount"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromTarget(t entities.Target) TargetResponse {
	return TargetResponse{
		ID:          t.ID,
		Advisor:     t.Advisor,
		Month:       t.Month,
		Year:        t.Year,
		QuotaAmount: t.QuotaAmount,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func FromTargets(list []entities.Target) []TargetResponse {
	out := make([]TargetResponse, 0, len(list))
	for _, t := range list {
		out = append(out, FromTarget(t))
	}
	return out
}
