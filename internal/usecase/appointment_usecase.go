package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"crm_ventas/internal/domain/entities"
	"crm_ventas/internal/usecase/interfaces"
)

var (
	ErrAppointmentNotFound  = errors.New("appointment not found")
	ErrInvalidAppointmentID = errors.New("invalid appointment id")
	ErrInvalidAdvisor       = errors.New("invalid advisor")
	ErrInvalidProspectName  = errors.New("invalid prospect name")
)

// IAppointmentUseCase exposes appointment (cita) record operations. These are
// pass-through persistence with input validation; all dashboard computation
// lives in the metrics engine.

type IAppointmentUseCase interface {
	Create(ctx context.Context, a entities.Appointment) (entities.Appointment, error)
	List(ctx context.Context) ([]entities.Appointment, error)
	GetByID(ctx context.Context, id string) (entities.Appointment, error)
	Update(ctx context.Context, a entities.Appointment) (entities.Appointment, error)
	Delete(ctx context.Context, id string) error
}

type AppointmentUseCase struct {
	repo interfaces.IAppointmentRepository
}

var _ IAppointmentUseCase = (*AppointmentUseCase)(nil)

func NewAppointmentUseCase(repo interfaces.IAppointmentRepository) *AppointmentUseCase {
	return &AppointmentUseCase{repo: repo}
}

func (u *AppointmentUseCase) Create(ctx context.Context, a entities.Appointment) (entities.Appointment, error) {
	a.Advisor = strings.TrimSpace(a.Advisor)
	a.ProspectName = strings.TrimSpace(a.ProspectName)
	if a.Advisor == "" {
		return entities.Appointment{}, ErrInvalidAdvisor
	}
	if a.ProspectName == "" {
		return entities.Appointment{}, ErrInvalidProspectName
	}

	now := time.Now().UTC()
	a.ID = newRecordID()
	a.CreatedAt = now
	a.UpdatedAt = now
	return u.repo.Create(ctx, a)
}

func (u *AppointmentUseCase) List(ctx context.Context) ([]entities.Appointment, error) {
	return u.repo.List(ctx)
}

func (u *AppointmentUseCase) GetByID(ctx context.Context, id string) (entities.Appointment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Appointment{}, ErrInvalidAppointmentID
	}

	a, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Appointment{}, err
	}
	if a.ID == "" {
		return entities.Appointment{}, ErrAppointmentNotFound
	}
	return a, nil
}

func (u *AppointmentUseCase) Update(ctx context.Context, a entities.Appointment) (entities.Appointment, error) {
	a.ID = strings.TrimSpace(a.ID)
	a.Advisor = strings.TrimSpace(a.Advisor)
	if a.ID == "" {
		return entities.Appointment{}, ErrInvalidAppointmentID
	}
	if a.Advisor == "" {
		return entities.Appointment{}, ErrInvalidAdvisor
	}

	a.UpdatedAt = time.Now().UTC()
	updated, err := u.repo.Update(ctx, a)
	if err != nil {
		return entities.Appointment{}, err
	}
	if updated.ID == "" {
		return entities.Appointment{}, ErrAppointmentNotFound
	}
	return updated, nil
}

func (u *AppointmentUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidAppointmentID
	}
	return u.repo.Delete(ctx, id)
}
