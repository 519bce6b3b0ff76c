package walkin

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var validStatuses = map[string]bool{
	StatusPending: true, StatusCompleted: true, StatusCancelled: true,
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, ws *WalkInService) error {
	if ws.ServiceType == "" {
		return fmt.Errorf("service_type is required")
	}
	if ws.Amount < 0 {
		return fmt.Errorf("amount cannot be negative")
	}
	if ws.PaymentMethod == "" {
		ws.PaymentMethod = "CASH"
	}
	if ws.PaymentStatus == "" {
		ws.PaymentStatus = StatusPending
	}
	if !validStatuses[ws.PaymentStatus] {
		return fmt.Errorf("invalid payment status: %s", ws.PaymentStatus)
	}
	if ws.CreatedAt.IsZero() {
		ws.CreatedAt = time.Now()
	}
	return s.repo.Create(ctx, ws)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*WalkInService, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*WalkInService, error) {
	if !validStatuses[status] {
		return nil, fmt.Errorf("invalid payment status: %s", status)
	}
	ws, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ws.PaymentStatus != StatusPending {
		return nil, fmt.Errorf("cannot transition walk-in service from %s", ws.PaymentStatus)
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	ws.PaymentStatus = status
	return ws, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*WalkInService, int, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *Service) ListCreatedBetween(ctx context.Context, start, end time.Time) ([]*WalkInService, error) {
	return s.repo.ListCreatedBetween(ctx, start, end)
}
