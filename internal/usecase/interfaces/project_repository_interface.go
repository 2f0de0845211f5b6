package interfaces

import (
	"context"
	"crm_ventas/internal/domain/entities"
)

// IProjectRepository abstracts DynamoDB persistence for Project (quotes).
//
// Status and loss-reason normalization happens inside the repository when
// items are unmarshalled, so every entity leaving it already carries closed
// enum values.

type IProjectRepository interface {
	List(ctx context.Context) ([]entities.Project, error)
	Create(ctx context.Context, p entities.Project) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	Update(ctx context.Context, p entities.Project) (entities.Project, error)
	Delete(ctx context.Context, id string) error
}
