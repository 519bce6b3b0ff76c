package payment

import (
	"time"

	"github.com/google/uuid"
)

// Payment statuses.
const (
	StatusPending   = "PENDING"
	StatusCompleted = "COMPLETED"
	StatusFailed    = "FAILED"
	StatusRefunded  = "REFUNDED"
)

// Payment maps to the payments table. FinalAmount, when set, overrides
// Amount as the collected figure (e.g. after a discount).
type Payment struct {
	ID            uuid.UUID `db:"id" json:"id"`
	Amount        float64   `db:"amount" json:"amount"`
	FinalAmount   *float64  `db:"final_amount" json:"finalAmount,omitempty"`
	PaymentMethod string    `db:"payment_method" json:"paymentMethod"`
	PaymentStatus string    `db:"payment_status" json:"paymentStatus"`
	Reference     *string   `db:"reference" json:"reference,omitempty"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
}

// CollectedAmount returns the final amount when present, the base amount
// otherwise.
func (p *Payment) CollectedAmount() float64 {
	if p.FinalAmount != nil {
		return *p.FinalAmount
	}
	return p.Amount
}
