package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var validStatuses = map[string]bool{
	StatusPending: true, StatusCompleted: true, StatusFailed: true, StatusRefunded: true,
}

var validTransitions = map[string][]string{
	StatusPending:   {StatusCompleted, StatusFailed},
	StatusCompleted: {StatusRefunded},
	StatusFailed:    {StatusPending},
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, p *Payment) error {
	if p.Amount <= 0 {
		return fmt.Errorf("amount must be positive")
	}
	if p.FinalAmount != nil && *p.FinalAmount < 0 {
		return fmt.Errorf("final_amount cannot be negative")
	}
	if p.PaymentMethod == "" {
		p.PaymentMethod = "CASH"
	}
	if p.PaymentStatus == "" {
		p.PaymentStatus = StatusPending
	}
	if !validStatuses[p.PaymentStatus] {
		return fmt.Errorf("invalid payment status: %s", p.PaymentStatus)
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	return s.repo.Create(ctx, p)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Payment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*Payment, error) {
	if !validStatuses[status] {
		return nil, fmt.Errorf("invalid payment status: %s", status)
	}
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	allowed := false
	for _, next := range validTransitions[p.PaymentStatus] {
		if next == status {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, fmt.Errorf("cannot transition payment from %s to %s", p.PaymentStatus, status)
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	p.PaymentStatus = status
	return p, nil
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Payment, int, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *Service) ListCreatedBetween(ctx context.Context, start, end time.Time) ([]*Payment, error) {
	return s.repo.ListCreatedBetween(ctx, start, end)
}
