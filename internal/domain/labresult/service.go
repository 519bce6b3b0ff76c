package labresult

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var validStatuses = map[string]bool{
	StatusPending: true, StatusInProgress: true, StatusCompleted: true, StatusCancelled: true,
}

// validTransitions holds the allowed status transitions.
var validTransitions = map[string][]string{
	StatusPending:    {StatusInProgress, StatusCompleted, StatusCancelled},
	StatusInProgress: {StatusCompleted, StatusCancelled},
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, lr *LabResult) error {
	if lr.PatientID == uuid.Nil {
		return fmt.Errorf("patient_id is required")
	}
	if lr.TestType == "" {
		return fmt.Errorf("test_type is required")
	}
	if lr.Status == "" {
		lr.Status = StatusPending
	}
	if !validStatuses[lr.Status] {
		return fmt.Errorf("invalid lab result status: %s", lr.Status)
	}
	if lr.RequestedAt.IsZero() {
		lr.RequestedAt = time.Now()
	}
	return s.repo.Create(ctx, lr)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*LabResult, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateStatus moves a lab result through its workflow. Completed and
// cancelled results are terminal.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*LabResult, error) {
	if !validStatuses[status] {
		return nil, fmt.Errorf("invalid lab result status: %s", status)
	}
	lr, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	allowed := false
	for _, next := range validTransitions[lr.Status] {
		if next == status {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, fmt.Errorf("cannot transition lab result from %s to %s", lr.Status, status)
	}
	lr.Status = status
	if status == StatusCompleted {
		now := time.Now()
		lr.CompletedAt = &now
	}
	if err := s.repo.Update(ctx, lr); err != nil {
		return nil, err
	}
	return lr, nil
}

func (s *Service) Update(ctx context.Context, lr *LabResult) error {
	if lr.Status != "" && !validStatuses[lr.Status] {
		return fmt.Errorf("invalid lab result status: %s", lr.Status)
	}
	return s.repo.Update(ctx, lr)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*LabResult, int, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *Service) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*LabResult, int, error) {
	return s.repo.ListByPatient(ctx, patientID, limit, offset)
}

func (s *Service) ListRequestedBetween(ctx context.Context, start, end time.Time) ([]*LabResult, error) {
	return s.repo.ListRequestedBetween(ctx, start, end)
}
