package usecase

import (
	"context"
	"errors"
	"testing"

	"crm_ventas/internal/domain/entities"
	mock_interfaces "crm_ventas/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestProspectUseCase_Create(t *testing.T) {
	t.Run("missing advisor", func(t *testing.T) {
		uc := NewProspectUseCase(nil)
		_, err := uc.Create(context.Background(), entities.Prospect{ProspectName: "Acme"})
		if !errors.Is(err, ErrInvalidAdvisor) {
			t.Fatalf("expected ErrInvalidAdvisor, got %v", err)
		}
	})

	t.Run("unknown deal type", func(t *testing.T) {
		uc := NewProspectUseCase(nil)
		_, err := uc.Create(context.Background(), entities.Prospect{Advisor: "Ana", ProspectName: "Acme", DealType: "Lease"})
		if !errors.Is(err, ErrInvalidDealType) {
			t.Fatalf("expected ErrInvalidDealType, got %v", err)
		}
	})

	t.Run("deal type spelling is normalized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProspectRepository(ctrl)
		uc := NewProspectUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Prospect{})).DoAndReturn(
			func(_ context.Context, p entities.Prospect) (entities.Prospect, error) {
				if p.DealType != entities.DealTypeRent {
					t.Fatalf("expected Rent, got %q", p.DealType)
				}
				return p, nil
			},
		)

		res, err := uc.Create(context.Background(), entities.Prospect{Advisor: "Ana", ProspectName: "Acme", DealType: "rent"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !recordIDPattern.MatchString(res.ID) {
			t.Fatalf("unexpected id format: %q", res.ID)
		}
	})
}

func TestProspectUseCase_GetByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProspectRepository(ctrl)
		uc := NewProspectUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "ID-0000000000000").Return(entities.Prospect{}, nil)

		_, err := uc.GetByID(context.Background(), "ID-0000000000000")
		if !errors.Is(err, ErrProspectNotFound) {
			t.Fatalf("expected ErrProspectNotFound, got %v", err)
		}
	})
}
