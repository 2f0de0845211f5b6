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
	ErrProspectNotFound  = errors.New("prospect not found")
	ErrInvalidProspectID = errors.New("invalid prospect id")
	ErrInvalidDealType   = errors.New("invalid deal type")
)

// IProspectUseCase exposes prospecting-activity record operations.

type IProspectUseCase interface {
	Create(ctx context.Context, p entities.Prospect) (entities.Prospect, error)
	List(ctx context.Context) ([]entities.Prospect, error)
	GetByID(ctx context.Context, id string) (entities.Prospect, error)
	Update(ctx context.Context, p entities.Prospect) (entities.Prospect, error)
	Delete(ctx context.Context, id string) error
}

type ProspectUseCase struct {
	repo interfaces.IProspectRepository
}

var _ IProspectUseCase = (*ProspectUseCase)(nil)

func NewProspectUseCase(repo interfaces.IProspectRepository) *ProspectUseCase {
	return &ProspectUseCase{repo: repo}
}

func (u *ProspectUseCase) validate(p *entities.Prospect) error {
	p.Advisor = strings.TrimSpace(p.Advisor)
	p.ProspectName = strings.TrimSpace(p.ProspectName)
	if p.Advisor == "" {
		return ErrInvalidAdvisor
	}
	if p.ProspectName == "" {
		return ErrInvalidProspectName
	}
	if p.DealType = entities.NormalizeDealType(string(p.DealType)); p.DealType == entities.DealTypeUnknown {
		return ErrInvalidDealType
	}
	return nil
}

func (u *ProspectUseCase) Create(ctx context.Context, p entities.Prospect) (entities.Prospect, error) {
	if err := u.validate(&p); err != nil {
		return entities.Prospect{}, err
	}

	now := time.Now().UTC()
	p.ID = newRecordID()
	p.CreatedAt = now
	p.UpdatedAt = now
	return u.repo.Create(ctx, p)
}

func (u *ProspectUseCase) List(ctx context.Context) ([]entities.Prospect, error) {
	return u.repo.List(ctx)
}

func (u *ProspectUseCase) GetByID(ctx context.Context, id string) (entities.Prospect, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Prospect{}, ErrInvalidProspectID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Prospect{}, err
	}
	if p.ID == "" {
		return entities.Prospect{}, ErrProspectNotFound
	}
	return p, nil
}

func (u *ProspectUseCase) Update(ctx context.Context, p entities.Prospect) (entities.Prospect, error) {
	p.ID = strings.TrimSpace(p.ID)
	if p.ID == "" {
		return entities.Prospect{}, ErrInvalidProspectID
	}
	if err := u.validate(&p); err != nil {
		return entities.Prospect{}, err
	}

	p.UpdatedAt = time.Now().UTC()
	updated, err := u.repo.Update(ctx, p)
	if err != nil {
		return entities.Prospect{}, err
	}
	if updated.ID == "" {
		return entities.Prospect{}, ErrProspectNotFound
	}
	return updated, nil
}

func (u *ProspectUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidProspectID
	}
	return u.repo.Delete(ctx, id)
}
