package drugorder

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, o *DrugOrder) error
	GetByID(ctx context.Context, id uuid.UUID) (*DrugOrder, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*DrugOrder, int, error)
	ListOrderedBetween(ctx context.Context, start, end time.Time) ([]*DrugOrder, error)
}
