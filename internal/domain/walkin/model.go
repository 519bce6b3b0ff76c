package walkin

import (
	"time"

	"github.com/google/uuid"
)

// Walk-in service payment statuses.
const (
	StatusPending   = "PENDING"
	StatusCompleted = "COMPLETED"
	StatusCancelled = "CANCELLED"
)

// WalkInService maps to the walk_in_services table. A walk-in service is a
// billable clinical service rendered without a prior patient record or order
// (injection, vitals check, dressing).
type WalkInService struct {
	ID            uuid.UUID `db:"id" json:"id"`
	ServiceType   string    `db:"service_type" json:"serviceType"`
	PatientName   *string   `db:"patient_name" json:"patientName,omitempty"`
	Amount        float64   `db:"amount" json:"amount"`
	PaymentMethod string    `db:"payment_method" json:"paymentMethod"`
	PaymentStatus string    `db:"payment_status" json:"paymentStatus"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
}
