package interfaces

import (
	"context"
	"crm_ventas/internal/domain/entities"
)

// IAppointmentRepository abstracts DynamoDB persistence for Appointment.
//
// List returns the full collection snapshot; the dashboard computes metrics
// over snapshots, never over incremental reads.

type IAppointmentRepository interface {
	List(ctx context.Context) ([]entities.Appointment, error)
	Create(ctx context.Context, a entities.Appointment) (entities.Appointment, error)
	GetByID(ctx context.Context, id string) (entities.Appointment, error)
	Update(ctx context.Context, a entities.Appointment) (entities.Appointment, error)
	Delete(ctx context.Context, id string) error
}
