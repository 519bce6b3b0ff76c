package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/clinicore/clinicore/internal/domain/payment"
)

type PaymentsSummary struct {
	TotalPayments     int     `json:"totalPayments"`
	TotalRevenue      float64 `json:"totalRevenue"`
	CompletedPayments int     `json:"completedPayments"`
	PendingPayments   int     `json:"pendingPayments"`
	FailedPayments    int     `json:"failedPayments"`
}

type PaymentRecord struct {
	ID            uuid.UUID `json:"id"`
	Amount        float64   `json:"amount"`
	FinalAmount   *float64  `json:"finalAmount,omitempty"`
	PaymentMethod string    `json:"paymentMethod"`
	PaymentStatus string    `json:"paymentStatus"`
	CreatedAt     time.Time `json:"createdAt"`
}

type PaymentsReport struct {
	Summary            PaymentsSummary `json:"summary"`
	StatusDistribution Distribution    `json:"statusDistribution"`
	MethodDistribution Distribution    `json:"methodDistribution"`
	Records            []PaymentRecord `json:"records"`
}

// AggregatePayments summarizes payments already filtered to the window by
// created_at. The domain-level revenue figure sums the base amount of
// completed payments; the finalAmount override only matters for the
// comprehensive reconciliation.
func AggregatePayments(records []*payment.Payment, _ DateRange) PaymentsReport {
	summary := PaymentsSummary{TotalPayments: len(records)}
	statuses := Distribution{}
	methods := Distribution{}
	projected := make([]PaymentRecord, 0, len(records))

	for _, p := range records {
		if p.PaymentStatus == payment.StatusCompleted {
			summary.TotalRevenue += p.Amount
		}
		statuses.Add(p.PaymentStatus)
		methods.Add(p.PaymentMethod)

		projected = append(projected, PaymentRecord{
			ID:            p.ID,
			Amount:        p.Amount,
			FinalAmount:   p.FinalAmount,
			PaymentMethod: orUnknown(p.PaymentMethod),
			PaymentStatus: p.PaymentStatus,
			CreatedAt:     p.CreatedAt,
		})
	}
	summary.CompletedPayments = statuses[payment.StatusCompleted]
	summary.PendingPayments = statuses[payment.StatusPending]
	summary.FailedPayments = statuses[payment.StatusFailed]

	return PaymentsReport{
		Summary:            summary,
		StatusDistribution: statuses,
		MethodDistribution: methods,
		Records:            projected,
	}
}
