package sale

import (
	"time"

	"github.com/google/uuid"
)

// Sale payment statuses.
const (
	StatusPending   = "PENDING"
	StatusCompleted = "COMPLETED"
	StatusRefunded  = "REFUNDED"
)

// Sale maps to the sales table.
type Sale struct {
	ID            uuid.UUID   `db:"id" json:"id"`
	Total         float64     `db:"total" json:"total"`
	PaymentMethod string      `db:"payment_method" json:"paymentMethod"`
	PaymentStatus string      `db:"payment_status" json:"paymentStatus"`
	Items         []*SaleItem `json:"items"`
	CreatedAt     time.Time   `db:"created_at" json:"createdAt"`
}

// SaleItem maps to the sale_items table.
type SaleItem struct {
	ID         uuid.UUID `db:"id" json:"id"`
	SaleID     uuid.UUID `db:"sale_id" json:"saleId"`
	DrugName   string    `db:"drug_name" json:"drugName"`
	Quantity   int       `db:"quantity" json:"quantity"`
	UnitPrice  float64   `db:"unit_price" json:"unitPrice"`
	TotalPrice float64   `db:"total_price" json:"totalPrice"`
}

// ItemCount returns total units sold across line items.
func (s *Sale) ItemCount() int {
	var n int
	for _, item := range s.Items {
		n += item.Quantity
	}
	return n
}
