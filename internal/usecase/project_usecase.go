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
	ErrProjectNotFound      = errors.New("project not found")
	ErrInvalidProjectID     = errors.New("invalid project id")
	ErrInvalidProjectStatus = errors.New("invalid project status")
	ErrInvalidProjectTotal  = errors.New("invalid project total")
	ErrMissingLossReason    = errors.New("loss reason required for lost projects")
)

// IProjectUseCase exposes project/quote record operations.
//
// Invariant enforced here: LossReason is set when and only when the project
// is Lost. Callers may send any historical status spelling; it is normalized
// before persistence.

type IProjectUseCase interface {
	Create(ctx context.Context, p entities.Project) (entities.Project, error)
	List(ctx context.Context) ([]entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	Update(ctx context.Context, p entities.Project) (entities.Project, error)
	Delete(ctx context.Context, id string) error
}

type ProjectUseCase struct {
	repo interfaces.IProjectRepository
}

var _ IProjectUseCase = (*ProjectUseCase)(nil)

func NewProjectUseCase(repo interfaces.IProjectRepository) *ProjectUseCase {
	return &ProjectUseCase{repo: repo}
}

func (u *ProjectUseCase) validate(p *entities.Project) error {
	p.Advisor = strings.TrimSpace(p.Advisor)
	if p.Advisor == "" {
		return ErrInvalidAdvisor
	}
	if p.Total != nil && *p.Total < 0 {
		return ErrInvalidProjectTotal
	}

	p.Status = entities.NormalizeProjectStatus(string(p.Status))
	if p.Status == entities.ProjectStatusUnknown {
		return ErrInvalidProjectStatus
	}

	if p.Status == entities.ProjectStatusLost {
		if p.LossReason = entities.NormalizeLossReason(string(p.LossReason)); p.LossReason == entities.LossReasonNone {
			return ErrMissingLossReason
		}
	} else {
		p.LossReason = entities.LossReasonNone
	}
	return nil
}

func (u *ProjectUseCase) Create(ctx context.Context, p entities.Project) (entities.Project, error) {
	if err := u.validate(&p); err != nil {
		return entities.Project{}, err
	}

	now := time.Now().UTC()
	p.ID = newRecordID()
	p.CreatedAt = now
	p.UpdatedAt = now
	return u.repo.Create(ctx, p)
}

func (u *ProjectUseCase) List(ctx context.Context) ([]entities.Project, error) {
	return u.repo.List(ctx)
}

func (u *ProjectUseCase) GetByID(ctx context.Context, id string) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidProjectID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	if p.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return p, nil
}

func (u *ProjectUseCase) Update(ctx context.Context, p entities.Project) (entities.Project, error) {
	p.ID = strings.TrimSpace(p.ID)
	if p.ID == "" {
		return entities.Project{}, ErrInvalidProjectID
	}
	if err := u.validate(&p); err != nil {
		return entities.Project{}, err
	}

	p.UpdatedAt = time.Now().UTC()
	updated, err := u.repo.Update(ctx, p)
	if err != nil {
		return entities.Project{}, err
	}
	if updated.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return updated, nil
}

func (u *ProjectUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidProjectID
	}
	return u.repo.Delete(ctx, id)
}
