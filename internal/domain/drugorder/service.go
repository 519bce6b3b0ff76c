package drugorder

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var validStatuses = map[string]bool{
	StatusPending: true, StatusApproved: true, StatusDispensed: true, StatusCancelled: true,
}

var validTransitions = map[string][]string{
	StatusPending:  {StatusApproved, StatusCancelled},
	StatusApproved: {StatusDispensed, StatusCancelled},
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, o *DrugOrder) error {
	if len(o.Items) == 0 {
		return fmt.Errorf("order must contain at least one item")
	}
	for _, item := range o.Items {
		if item.DrugName == "" {
			return fmt.Errorf("item drug_name is required")
		}
		if item.Quantity <= 0 {
			return fmt.Errorf("item quantity must be positive")
		}
		if item.TotalPrice == 0 {
			item.TotalPrice = item.UnitPrice * float64(item.Quantity)
		}
	}
	if o.Status == "" {
		o.Status = StatusPending
	}
	if !validStatuses[o.Status] {
		return fmt.Errorf("invalid order status: %s", o.Status)
	}
	if o.OrderedAt.IsZero() {
		o.OrderedAt = time.Now()
	}
	return s.repo.Create(ctx, o)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*DrugOrder, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateStatus moves an order through its workflow. Dispensed and cancelled
// orders are terminal.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*DrugOrder, error) {
	if !validStatuses[status] {
		return nil, fmt.Errorf("invalid order status: %s", status)
	}
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	allowed := false
	for _, next := range validTransitions[o.Status] {
		if next == status {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, fmt.Errorf("cannot transition order from %s to %s", o.Status, status)
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	o.Status = status
	return o, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*DrugOrder, int, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *Service) ListOrderedBetween(ctx context.Context, start, end time.Time) ([]*DrugOrder, error) {
	return s.repo.ListOrderedBetween(ctx, start, end)
}
