package drug

import (
	"time"

	"github.com/google/uuid"
)

// Stock thresholds. A drug with zero stock is out of stock; anything up to
// LowStockThreshold counts as low.
const LowStockThreshold = 10

// Drug maps to the drugs table.
type Drug struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	Name          string     `db:"name" json:"name"`
	Category      *string    `db:"category" json:"category,omitempty"`
	Manufacturer  *string    `db:"manufacturer" json:"manufacturer,omitempty"`
	StockQuantity int        `db:"stock_quantity" json:"stockQuantity"`
	SellingPrice  float64    `db:"selling_price" json:"sellingPrice"`
	ExpiryDate    *time.Time `db:"expiry_date" json:"expiryDate,omitempty"`
	CreatedAt     time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updatedAt"`
}

// OutOfStock reports whether the drug has no stock.
func (d *Drug) OutOfStock() bool { return d.StockQuantity == 0 }

// LowStock reports whether the drug is in stock but at or below the low
// threshold.
func (d *Drug) LowStock() bool {
	return d.StockQuantity > 0 && d.StockQuantity <= LowStockThreshold
}

// StockValue returns selling price times quantity on hand.
func (d *Drug) StockValue() float64 {
	return d.SellingPrice * float64(d.StockQuantity)
}
