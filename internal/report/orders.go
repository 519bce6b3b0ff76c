package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/clinicore/clinicore/internal/domain/drugorder"
)

type OrdersSummary struct {
	TotalOrders       int     `json:"totalOrders"`
	DispensedOrders   int     `json:"dispensedOrders"`
	ApprovedOrders    int     `json:"approvedOrders"`
	PendingOrders     int     `json:"pendingOrders"`
	TotalValue        float64 `json:"totalValue"`
	AverageOrderValue float64 `json:"averageOrderValue"`
}

type OrderRecord struct {
	ID        uuid.UUID `json:"id"`
	Status    string    `json:"status"`
	ItemCount int       `json:"itemCount"`
	Value     float64   `json:"value"`
	OrderedAt time.Time `json:"orderedAt"`
}

type OrdersReport struct {
	Summary OrdersSummary `json:"summary"`
	Records []OrderRecord `json:"records"`
}

// AggregateOrders summarizes drug orders already filtered to the window by
// ordered_at. Order value is the sum of line item totals.
func AggregateOrders(records []*drugorder.DrugOrder, _ DateRange) OrdersReport {
	summary := OrdersSummary{TotalOrders: len(records)}
	projected := make([]OrderRecord, 0, len(records))

	for _, o := range records {
		switch o.Status {
		case drugorder.StatusDispensed:
			summary.DispensedOrders++
		case drugorder.StatusApproved:
			summary.ApprovedOrders++
		case drugorder.StatusPending:
			summary.PendingOrders++
		}
		value := o.Value()
		summary.TotalValue += value

		projected = append(projected, OrderRecord{
			ID:        o.ID,
			Status:    o.Status,
			ItemCount: len(o.Items),
			Value:     value,
			OrderedAt: o.OrderedAt,
		})
	}
	if summary.TotalOrders > 0 {
		summary.AverageOrderValue = summary.TotalValue / float64(summary.TotalOrders)
	}

	return OrdersReport{Summary: summary, Records: projected}
}
