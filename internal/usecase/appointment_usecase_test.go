package usecase

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"crm_ventas/internal/domain/entities"
	mock_interfaces "crm_ventas/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var recordIDPattern = regexp.MustCompile(`^ID-\d{13}$`)

func TestAppointmentUseCase_Create(t *testing.T) {
	t.Run("missing advisor", func(t *testing.T) {
		uc := NewAppointmentUseCase(nil)
		_, err := uc.Create(context.Background(), entities.Appointment{Advisor: "  ", ProspectName: "Acme"})
		if !errors.Is(err, ErrInvalidAdvisor) {
			t.Fatalf("expected ErrInvalidAdvisor, got %v", err)
		}
	})

	t.Run("missing prospect name", func(t *testing.T) {
		uc := NewAppointmentUseCase(nil)
		_, err := uc.Create(context.Background(), entities.Appointment{Advisor: "Ana"})
		if !errors.Is(err, ErrInvalidProspectName) {
			t.Fatalf("expected ErrInvalidProspectName, got %v", err)
		}
	})

	t.Run("create success generates record id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAppointmentRepository(ctrl)
		uc := NewAppointmentUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Appointment{})).DoAndReturn(
			func(_ context.Context, a entities.Appointment) (entities.Appointment, error) {
				if !recordIDPattern.MatchString(a.ID) {
					t.Fatalf("unexpected id format: %q", a.ID)
				}
				if a.Advisor != "Ana" || a.ProspectName != "Acme" {
					t.Fatalf("unexpected appointment: %+v", a)
				}
				if a.CreatedAt.IsZero() || a.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return a, nil
			},
		)

		res, err := uc.Create(context.Background(), entities.Appointment{Advisor: " Ana ", ProspectName: "Acme", Date: "10/01/2024"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestAppointmentUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewAppointmentUseCase(nil)
		_, err := uc.GetByID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidAppointmentID) {
			t.Fatalf("expected ErrInvalidAppointmentID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAppointmentRepository(ctrl)
		uc := NewAppointmentUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "ID-1234567890123").Return(entities.Appointment{}, nil)

		_, err := uc.GetByID(context.Background(), "ID-1234567890123")
		if !errors.Is(err, ErrAppointmentNotFound) {
			t.Fatalf("expected ErrAppointmentNotFound, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAppointmentRepository(ctrl)
		uc := NewAppointmentUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "ID-1234567890123").Return(entities.Appointment{}, errors.New("db"))

		_, err := uc.GetByID(context.Background(), "ID-1234567890123")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestAppointmentUseCase_Update(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewAppointmentUseCase(nil)
		_, err := uc.Update(context.Background(), entities.Appointment{Advisor: "Ana"})
		if !errors.Is(err, ErrInvalidAppointmentID) {
			t.Fatalf("expected ErrInvalidAppointmentID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAppointmentRepository(ctrl)
		uc := NewAppointmentUseCase(repo)

		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Appointment{}, nil)

		_, err := uc.Update(context.Background(), entities.Appointment{ID: "ID-1234567890123", Advisor: "Ana"})
		if !errors.Is(err, ErrAppointmentNotFound) {
			t.Fatalf("expected ErrAppointmentNotFound, got %v", err)
		}
	})

	t.Run("success bumps updated_at", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAppointmentRepository(ctrl)
		uc := NewAppointmentUseCase(repo)

		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Appointment{})).DoAndReturn(
			func(_ context.Context, a entities.Appointment) (entities.Appointment, error) {
				if a.UpdatedAt.IsZero() {
					t.Fatalf("expected updated_at to be set")
				}
				return a, nil
			},
		)

		res, err := uc.Update(context.Background(), entities.Appointment{ID: "ID-1234567890123", Advisor: "Ana"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "ID-1234567890123" {
			t.Fatalf("unexpected id: %q", res.ID)
		}
	})
}

func TestAppointmentUseCase_Delete(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewAppointmentUseCase(nil)
		if err := uc.Delete(context.Background(), ""); !errors.Is(err, ErrInvalidAppointmentID) {
			t.Fatalf("expected ErrInvalidAppointmentID, got %v", err)
		}
	})

	t.Run("delegates to repo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAppointmentRepository(ctrl)
		uc := NewAppointmentUseCase(repo)

		repo.EXPECT().Delete(gomock.Any(), "ID-1234567890123").Return(nil)

		if err := uc.Delete(context.Background(), " ID-1234567890123 "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
