package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/clinicore/clinicore/internal/domain/sale"
)

type SalesSummary struct {
	TotalSales   int     `json:"totalSales"`
	TotalRevenue float64 `json:"totalRevenue"`
	AverageSale  float64 `json:"averageSale"`
	TotalItems   int     `json:"totalItems"`
}

type SaleRecord struct {
	ID            uuid.UUID `json:"id"`
	Total         float64   `json:"total"`
	PaymentMethod string    `json:"paymentMethod"`
	PaymentStatus string    `json:"paymentStatus"`
	ItemCount     int       `json:"itemCount"`
	CreatedAt     time.Time `json:"createdAt"`
}

type SalesReport struct {
	Summary                   SalesSummary `json:"summary"`
	PaymentMethodDistribution Distribution `json:"paymentMethodDistribution"`
	Records                   []SaleRecord `json:"records"`
}

// AggregateSales summarizes sales already filtered to the window by
// created_at. Revenue here is the sum of sale totals regardless of payment
// status; the comprehensive report reconciles against payments.
func AggregateSales(records []*sale.Sale, _ DateRange) SalesReport {
	summary := SalesSummary{TotalSales: len(records)}
	methods := Distribution{}
	projected := make([]SaleRecord, 0, len(records))

	for _, s := range records {
		summary.TotalRevenue += s.Total
		summary.TotalItems += s.ItemCount()
		methods.Add(s.PaymentMethod)

		projected = append(projected, SaleRecord{
			ID:            s.ID,
			Total:         s.Total,
			PaymentMethod: orUnknown(s.PaymentMethod),
			PaymentStatus: s.PaymentStatus,
			ItemCount:     s.ItemCount(),
			CreatedAt:     s.CreatedAt,
		})
	}
	if summary.TotalSales > 0 {
		summary.AverageSale = summary.TotalRevenue / float64(summary.TotalSales)
	}

	return SalesReport{
		Summary:                   summary,
		PaymentMethodDistribution: methods,
		Records:                   projected,
	}
}
