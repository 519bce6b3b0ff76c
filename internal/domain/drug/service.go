package drug

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, d *Drug) error {
	if d.Name == "" {
		return fmt.Errorf("name is required")
	}
	if d.StockQuantity < 0 {
		return fmt.Errorf("stock_quantity cannot be negative")
	}
	if d.SellingPrice < 0 {
		return fmt.Errorf("selling_price cannot be negative")
	}
	return s.repo.Create(ctx, d)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Drug, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, d *Drug) error {
	if d.Name == "" {
		return fmt.Errorf("name is required")
	}
	if d.StockQuantity < 0 {
		return fmt.Errorf("stock_quantity cannot be negative")
	}
	return s.repo.Update(ctx, d)
}

func (s *Service) AdjustStock(ctx context.Context, id uuid.UUID, delta int) error {
	if delta == 0 {
		return nil
	}
	return s.repo.AdjustStock(ctx, id, delta)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Drug, int, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *Service) ListAll(ctx context.Context) ([]*Drug, error) {
	return s.repo.ListAll(ctx)
}
