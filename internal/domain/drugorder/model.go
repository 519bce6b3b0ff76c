package drugorder

import (
	"time"

	"github.com/google/uuid"
)

// Drug order statuses.
const (
	StatusPending   = "PENDING"
	StatusApproved  = "APPROVED"
	StatusDispensed = "DISPENSED"
	StatusCancelled = "CANCELLED"
)

// DrugOrder maps to the drug_orders table.
type DrugOrder struct {
	ID        uuid.UUID    `db:"id" json:"id"`
	Status    string       `db:"status" json:"status"`
	Items     []*OrderItem `json:"items"`
	OrderedAt time.Time    `db:"ordered_at" json:"orderedAt"`
}

// OrderItem maps to the drug_order_items table.
type OrderItem struct {
	ID         uuid.UUID `db:"id" json:"id"`
	OrderID    uuid.UUID `db:"order_id" json:"orderId"`
	DrugName   string    `db:"drug_name" json:"drugName"`
	Quantity   int       `db:"quantity" json:"quantity"`
	UnitPrice  float64   `db:"unit_price" json:"unitPrice"`
	TotalPrice float64   `db:"total_price" json:"totalPrice"`
}

// Value returns the order's total across its line items.
func (o *DrugOrder) Value() float64 {
	var v float64
	for _, item := range o.Items {
		v += item.TotalPrice
	}
	return v
}
