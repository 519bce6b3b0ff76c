package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/clinicore/clinicore/internal/domain/walkin"
)

type WalkInSummary struct {
	TotalServices       int     `json:"totalServices"`
	TotalRevenue        float64 `json:"totalRevenue"`
	AverageServicePrice float64 `json:"averageServicePrice"`
	CompletedServices   int     `json:"completedServices"`
	PendingServices     int     `json:"pendingServices"`
}

type WalkInRecord struct {
	ID            uuid.UUID `json:"id"`
	ServiceType   string    `json:"serviceType"`
	Amount        float64   `json:"amount"`
	PaymentMethod string    `json:"paymentMethod"`
	PaymentStatus string    `json:"paymentStatus"`
	CreatedAt     time.Time `json:"createdAt"`
}

type WalkInReport struct {
	Summary                   WalkInSummary  `json:"summary"`
	ServiceTypeDistribution   Distribution   `json:"serviceTypeDistribution"`
	PaymentMethodDistribution Distribution   `json:"paymentMethodDistribution"`
	Records                   []WalkInRecord `json:"records"`
}

// AggregateWalkIns summarizes walk-in services already filtered to the
// window by created_at. Revenue counts completed services only.
func AggregateWalkIns(records []*walkin.WalkInService, _ DateRange) WalkInReport {
	summary := WalkInSummary{TotalServices: len(records)}
	serviceTypes := Distribution{}
	methods := Distribution{}
	projected := make([]WalkInRecord, 0, len(records))

	for _, ws := range records {
		switch ws.PaymentStatus {
		case walkin.StatusCompleted:
			summary.CompletedServices++
			summary.TotalRevenue += ws.Amount
		case walkin.StatusPending:
			summary.PendingServices++
		}
		serviceTypes.Add(ws.ServiceType)
		methods.Add(ws.PaymentMethod)

		projected = append(projected, WalkInRecord{
			ID:            ws.ID,
			ServiceType:   orUnknown(ws.ServiceType),
			Amount:        ws.Amount,
			PaymentMethod: orUnknown(ws.PaymentMethod),
			PaymentStatus: ws.PaymentStatus,
			CreatedAt:     ws.CreatedAt,
		})
	}
	if summary.TotalServices > 0 {
		summary.AverageServicePrice = summary.TotalRevenue / float64(summary.TotalServices)
	}

	return WalkInReport{
		Summary:                   summary,
		ServiceTypeDistribution:   serviceTypes,
		PaymentMethodDistribution: methods,
		Records:                   projected,
	}
}
