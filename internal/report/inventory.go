package report

import (
	"github.com/google/uuid"

	"github.com/clinicore/clinicore/internal/domain/drug"
)

type InventorySummary struct {
	TotalDrugs      int     `json:"totalDrugs"`
	InStockDrugs    int     `json:"inStockDrugs"`
	LowStockDrugs   int     `json:"lowStockDrugs"`
	OutOfStockDrugs int     `json:"outOfStockDrugs"`
	TotalValue      float64 `json:"totalValue"`
}

type InventoryRecord struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	StockQuantity int       `json:"stockQuantity"`
	SellingPrice  float64   `json:"sellingPrice"`
}

type InventoryReport struct {
	Summary              InventorySummary  `json:"summary"`
	CategoryDistribution Distribution      `json:"categoryDistribution"`
	Records              []InventoryRecord `json:"records"`
}

// AggregateInventory summarizes the full current drug set. Inventory has no
// time axis; the report window never filters it.
func AggregateInventory(records []*drug.Drug) InventoryReport {
	summary := InventorySummary{TotalDrugs: len(records)}
	categories := Distribution{}
	projected := make([]InventoryRecord, 0, len(records))

	for _, d := range records {
		switch {
		case d.OutOfStock():
			summary.OutOfStockDrugs++
		case d.LowStock():
			summary.LowStockDrugs++
		default:
			summary.InStockDrugs++
		}
		summary.TotalValue += d.StockValue()
		categories.AddPtr(d.Category)

		category := UnknownLabel
		if d.Category != nil && *d.Category != "" {
			category = *d.Category
		}
		projected = append(projected, InventoryRecord{
			ID:            d.ID,
			Name:          d.Name,
			Category:      category,
			StockQuantity: d.StockQuantity,
			SellingPrice:  d.SellingPrice,
		})
	}

	return InventoryReport{
		Summary:              summary,
		CategoryDistribution: categories,
		Records:              projected,
	}
}
