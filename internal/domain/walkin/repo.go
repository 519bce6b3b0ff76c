package walkin

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, ws *WalkInService) error
	GetByID(ctx context.Context, id uuid.UUID) (*WalkInService, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*WalkInService, int, error)
	ListCreatedBetween(ctx context.Context, start, end time.Time) ([]*WalkInService, error)
}
