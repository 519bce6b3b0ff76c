package labresult

import (
	"time"

	"github.com/google/uuid"
)

// Lab result statuses.
const (
	StatusPending    = "PENDING"
	StatusInProgress = "IN_PROGRESS"
	StatusCompleted  = "COMPLETED"
	StatusCancelled  = "CANCELLED"
)

// LabResult maps to the lab_results table.
type LabResult struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	PatientID   uuid.UUID  `db:"patient_id" json:"patientId"`
	TestType    string     `db:"test_type" json:"testType"`
	Status      string     `db:"status" json:"status"`
	Result      *string    `db:"result" json:"result,omitempty"`
	RequestedAt time.Time  `db:"requested_at" json:"requestedAt"`
	CompletedAt *time.Time `db:"completed_at" json:"completedAt,omitempty"`
}
