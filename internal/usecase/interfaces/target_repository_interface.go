package interfaces

import (
	"context"
	"crm_ventas/internal/domain/entities"
)

// ITargetRepository abstracts DynamoDB persistence for Target (monthly
// quotas). Duplicate (advisor, month, year) rows are legal; the engine sums
// them.

type ITargetRepository interface {
	List(ctx context.Context) ([]entities.Target, error)
	Create(ctx context.Context, t entities.Target) (entities.Target, error)
	GetByID(ctx context.Context, id string) (entities.Target, error)
	Update(ctx context.Context, t entities.Target) (entities.Target, error)
	Delete(ctx context.Context, id string) error
}
