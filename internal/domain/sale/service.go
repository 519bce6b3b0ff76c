package sale

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var validStatuses = map[string]bool{
	StatusPending: true, StatusCompleted: true, StatusRefunded: true,
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, sl *Sale) error {
	if len(sl.Items) == 0 {
		return fmt.Errorf("sale must contain at least one item")
	}
	var computed float64
	for _, item := range sl.Items {
		if item.DrugName == "" {
			return fmt.Errorf("item drug_name is required")
		}
		if item.Quantity <= 0 {
			return fmt.Errorf("item quantity must be positive")
		}
		if item.TotalPrice == 0 {
			item.TotalPrice = item.UnitPrice * float64(item.Quantity)
		}
		computed += item.TotalPrice
	}
	if sl.Total == 0 {
		sl.Total = computed
	}
	if sl.PaymentMethod == "" {
		sl.PaymentMethod = "CASH"
	}
	if sl.PaymentStatus == "" {
		sl.PaymentStatus = StatusCompleted
	}
	if !validStatuses[sl.PaymentStatus] {
		return fmt.Errorf("invalid payment status: %s", sl.PaymentStatus)
	}
	if sl.CreatedAt.IsZero() {
		sl.CreatedAt = time.Now()
	}
	return s.repo.Create(ctx, sl)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Sale, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Sale, int, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *Service) ListCreatedBetween(ctx context.Context, start, end time.Time) ([]*Sale, error) {
	return s.repo.ListCreatedBetween(ctx, start, end)
}
