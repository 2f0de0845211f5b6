package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"crm_ventas/internal/domain/entities"
	"crm_ventas/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrTargetNotFound   = errors.New("target not found")
	ErrInvalidTargetID  = errors.New("invalid target id")
	ErrInvalidMonth     = errors.New("invalid month")
	ErrInvalidYear      = errors.New("invalid year")
	ErrInvalidQuota     = errors.New("invalid quota amount")
)

// ITargetUseCase exposes monthly quota record operations. A duplicate
// (advisor, month, year) row is accepted on purpose: the metrics engine sums
// duplicates instead of rejecting them.

type ITargetUseCase interface {
	Create(ctx context.Context, t entities.Target) (entities.Target, error)
	List(ctx context.Context) ([]entities.Target, error)
	GetByID(ctx context.Context, id string) (entities.Target, error)
	Update(ctx context.Context, t entities.Target) (entities.Target, error)
	Delete(ctx context.Context, id string) error
}

type TargetUseCase struct {
	repo interfaces.ITargetRepository
}

var _ ITargetUseCase = (*TargetUseCase)(nil)

func NewTargetUseCase(repo interfaces.ITargetRepository) *TargetUseCase {
	return &TargetUseCase{repo: repo}
}

func (u *TargetUseCase) validate(t *entities.Target) error {
	t.Advisor = strings.TrimSpace(t.Advisor)
	if t.Advisor == "" {
		return ErrInvalidAdvisor
	}
	if t.Month < 1 || t.Month > 12 {
		return ErrInvalidMonth
	}
	if t.Year <= 0 {
		return ErrInvalidYear
	}
	if t.QuotaAmount != nil && *t.QuotaAmount < 0 {
		return ErrInvalidQuota
	}
	return nil
}

func (u *TargetUseCase) Create(ctx context.Context, t entities.Target) (entities.Target, error) {
	if err := u.validate(&t); err != nil {
		return entities.Target{}, err
	}

	now := time.Now().UTC()
	t.ID = uuid.NewString()
	t.CreatedAt = now
	t.UpdatedAt = now
	return u.repo.Create(ctx, t)
}

func (u *TargetUseCase) List(ctx context.Context) ([]entities.Target, error) {
	return u.repo.List(ctx)
}

func (u *TargetUseCase) GetByID(ctx context.Context, id string) (entities.Target, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Target{}, ErrInvalidTargetID
	}

	t, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Target{}, err
	}
	if t.ID == "" {
		return entities.Target{}, ErrTargetNotFound
	}
	return t, nil
}

func (u *TargetUseCase) Update(ctx context.Context, t entities.Target) (entities.Target, error) {
	t.ID = strings.TrimSpace(t.ID)
	if t.ID == "" {
		return entities.Target{}, ErrInvalidTargetID
	}
	if err := u.validate(&t); err != nil {
		return entities.Target{}, err
	}

	t.UpdatedAt = time.Now().UTC()
	updated, err := u.repo.Update(ctx, t)
	if err != nil {
		return entities.Target{}, err
	}
	if updated.ID == "" {
		return entities.Target{}, ErrTargetNotFound
	}
	return updated, nil
}

func (u *TargetUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidTargetID
	}
	return u.repo.Delete(ctx, id)
}
