package report

import (
	"github.com/clinicore/clinicore/internal/domain/drug"
	"github.com/clinicore/clinicore/internal/domain/drugorder"
	"github.com/clinicore/clinicore/internal/domain/labresult"
	"github.com/clinicore/clinicore/internal/domain/patient"
	"github.com/clinicore/clinicore/internal/domain/payment"
	"github.com/clinicore/clinicore/internal/domain/sale"
	"github.com/clinicore/clinicore/internal/domain/walkin"
)

type Overview struct {
	TotalPatients       int `json:"totalPatients"`
	TotalLabTests       int `json:"totalLabTests"`
	TotalDrugOrders     int `json:"totalDrugOrders"`
	TotalDrugs          int `json:"totalDrugs"`
	TotalSales          int `json:"totalSales"`
	TotalPayments       int `json:"totalPayments"`
	TotalWalkInServices int `json:"totalWalkInServices"`
}

type Financial struct {
	TotalRevenue          float64 `json:"totalRevenue"`
	SalesRevenue          float64 `json:"salesRevenue"`
	PaymentsRevenue       float64 `json:"paymentsRevenue"`
	WalkInServicesRevenue float64 `json:"walkInServicesRevenue"`
	InventoryValue        float64 `json:"inventoryValue"`
}

type Performance struct {
	LabCompletionRate         float64 `json:"labCompletionRate"`
	OrderDispenseRate         float64 `json:"orderDispenseRate"`
	PaymentSuccessRate        float64 `json:"paymentSuccessRate"`
	WalkInServicesSuccessRate float64 `json:"walkInServicesSuccessRate"`
}

type ComprehensiveReport struct {
	Overview    Overview    `json:"overview"`
	Financial   Financial   `json:"financial"`
	Performance Performance `json:"performance"`
}

// AggregateComprehensive merges all seven data sets into one report.
//
// Revenue reconciliation: completed payments are the single source of truth
// for money actually collected, using finalAmount when present. TotalRevenue
// therefore equals PaymentsRevenue alone; salesRevenue and walk-in revenue
// are informational breakdowns and must never be summed into the total, as
// sales and walk-in services also produce payment records.
func AggregateComprehensive(
	patients []*patient.Patient,
	labs []*labresult.LabResult,
	orders []*drugorder.DrugOrder,
	drugs []*drug.Drug,
	sales []*sale.Sale,
	payments []*payment.Payment,
	walkIns []*walkin.WalkInService,
) ComprehensiveReport {
	overview := Overview{
		TotalPatients:       len(patients),
		TotalLabTests:       len(labs),
		TotalDrugOrders:     len(orders),
		TotalDrugs:          len(drugs),
		TotalSales:          len(sales),
		TotalPayments:       len(payments),
		TotalWalkInServices: len(walkIns),
	}

	var financial Financial
	for _, s := range sales {
		financial.SalesRevenue += s.Total
	}
	for _, p := range payments {
		if p.PaymentStatus == payment.StatusCompleted {
			financial.PaymentsRevenue += p.CollectedAmount()
		}
	}
	for _, ws := range walkIns {
		if ws.PaymentStatus == walkin.StatusCompleted {
			financial.WalkInServicesRevenue += ws.Amount
		}
	}
	for _, d := range drugs {
		financial.InventoryValue += d.StockValue()
	}
	financial.TotalRevenue = financial.PaymentsRevenue

	perf := Performance{
		LabCompletionRate:         rate(countLabs(labs, labresult.StatusCompleted), len(labs)),
		OrderDispenseRate:         rate(countOrders(orders, drugorder.StatusDispensed), len(orders)),
		PaymentSuccessRate:        rate(countPayments(payments, payment.StatusCompleted), len(payments)),
		WalkInServicesSuccessRate: rate(countWalkIns(walkIns, walkin.StatusCompleted), len(walkIns)),
	}

	return ComprehensiveReport{Overview: overview, Financial: financial, Performance: perf}
}

// rate returns numerator/denominator as a percentage, and exactly 0 when the
// denominator is 0.
func rate(numerator, denominator int) float64 {
	if denominator == 0 {
		return 0
	}
	return float64(numerator) / float64(denominator) * 100
}

func countLabs(labs []*labresult.LabResult, status string) int {
	n := 0
	for _, lr := range labs {
		if lr.Status == status {
			n++
		}
	}
	return n
}

func countOrders(orders []*drugorder.DrugOrder, status string) int {
	n := 0
	for _, o := range orders {
		if o.Status == status {
			n++
		}
	}
	return n
}

func countPayments(payments []*payment.Payment, status string) int {
	n := 0
	for _, p := range payments {
		if p.PaymentStatus == status {
			n++
		}
	}
	return n
}

func countWalkIns(walkIns []*walkin.WalkInService, status string) int {
	n := 0
	for _, ws := range walkIns {
		if ws.PaymentStatus == status {
			n++
		}
	}
	return n
}
