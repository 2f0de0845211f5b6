package interfaces

import (
	"context"
	"crm_ventas/internal/domain/entities"
)

// IProspectRepository abstracts DynamoDB persistence for Prospect.

type IProspectRepository interface {
	List(ctx context.Context) ([]entities.Prospect, error)
	Create(ctx context.Context, p entities.Prospect) (entities.Prospect, error)
	GetByID(ctx context.Context, id string) (entities.Prospect, error)
	Update(ctx context.Context, p entities.Prospect) (entities.Prospect, error)
	Delete(ctx context.Context, id string) error
}
