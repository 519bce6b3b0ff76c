package report

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/clinicore/clinicore/internal/domain/drug"
	"github.com/clinicore/clinicore/internal/domain/drugorder"
	"github.com/clinicore/clinicore/internal/domain/labresult"
	"github.com/clinicore/clinicore/internal/domain/patient"
	"github.com/clinicore/clinicore/internal/domain/payment"
	"github.com/clinicore/clinicore/internal/domain/sale"
	"github.com/clinicore/clinicore/internal/domain/walkin"
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func testWindow() DateRange {
	return DateRange{
		Start: date(2024, time.March, 1, 0, 0, 0),
		End:   date(2024, time.March, 31, 23, 59, 59),
	}
}

func TestDistributionAdd(t *testing.T) {
	d := Distribution{}
	d.Add("CASH")
	d.Add("CASH")
	d.Add("")
	d.AddPtr(nil)
	d.AddPtr(strPtr("CARD"))

	if d["CASH"] != 2 || d["CARD"] != 1 || d[UnknownLabel] != 2 {
		t.Errorf("distribution = %v", d)
	}
}

func TestAggregatePatients(t *testing.T) {
	window := testWindow()
	inWindow := date(2024, time.March, 10, 12, 0, 0)
	records := []*patient.Patient{
		{ID: uuid.New(), FirstName: "Ada", Age: 9, Gender: strPtr("female"), IsActive: true, CreatedAt: inWindow},
		{ID: uuid.New(), FirstName: "Ben", Age: 25, Gender: strPtr("MALE"), IsActive: true, CreatedAt: inWindow},
		{ID: uuid.New(), FirstName: "Cal", Age: 40, IsActive: false, CreatedAt: inWindow},
		{ID: uuid.New(), FirstName: "Dee", Age: 70, Gender: strPtr("Female"), IsActive: true, CreatedAt: inWindow},
	}

	r := AggregatePatients(records, window)

	if r.Summary.TotalPatients != 4 || r.Summary.ActivePatients != 3 || r.Summary.InactivePatients != 1 {
		t.Errorf("summary = %+v", r.Summary)
	}
	if r.Summary.NewPatients != r.Summary.TotalPatients {
		t.Errorf("newPatients = %d, want totalPatients %d", r.Summary.NewPatients, r.Summary.TotalPatients)
	}
	if r.GenderDistribution["FEMALE"] != 2 || r.GenderDistribution["MALE"] != 1 || r.GenderDistribution[UnknownLabel] != 1 {
		t.Errorf("gender = %v", r.GenderDistribution)
	}
	if r.AgeGroups["<18"] != 1 || r.AgeGroups["18-29"] != 1 || r.AgeGroups["30-49"] != 1 || r.AgeGroups["65+"] != 1 {
		t.Errorf("ageGroups = %v", r.AgeGroups)
	}
	// Unused buckets are present with zero counts.
	if v, ok := r.AgeGroups["50-64"]; !ok || v != 0 {
		t.Errorf("50-64 bucket = (%d, %v), want present with 0", v, ok)
	}
	if r.Records[2].Gender != UnknownLabel {
		t.Errorf("missing gender projected as %q", r.Records[2].Gender)
	}
}

func TestAggregatePatientsEmpty(t *testing.T) {
	r := AggregatePatients(nil, testWindow())
	if r.Summary.TotalPatients != 0 || r.Summary.NewPatients != 0 {
		t.Errorf("summary = %+v", r.Summary)
	}
	if len(r.AgeGroups) != 5 {
		t.Errorf("ageGroups = %v, want all five buckets seeded", r.AgeGroups)
	}
	if r.Records == nil || len(r.Records) != 0 {
		t.Errorf("records = %v, want empty non-nil slice", r.Records)
	}
}

func TestAggregateLabs(t *testing.T) {
	done := date(2024, time.March, 12, 0, 0, 0)
	records := []*labresult.LabResult{
		{ID: uuid.New(), TestType: "CBC", Status: labresult.StatusCompleted, CompletedAt: &done},
		{ID: uuid.New(), TestType: "CBC", Status: labresult.StatusPending},
		{ID: uuid.New(), TestType: "LIPID", Status: labresult.StatusInProgress},
		{ID: uuid.New(), TestType: "", Status: labresult.StatusCancelled},
	}

	r := AggregateLabs(records, testWindow())

	s := r.Summary
	if s.TotalTests != 4 || s.CompletedTests != 1 || s.PendingTests != 1 || s.InProgressTests != 1 || s.CancelledTests != 1 {
		t.Errorf("summary = %+v", s)
	}
	if s.CompletionRate != 25 {
		t.Errorf("completionRate = %v, want 25", s.CompletionRate)
	}
	if r.TestTypeDistribution["CBC"] != 2 || r.TestTypeDistribution[UnknownLabel] != 1 {
		t.Errorf("testTypes = %v", r.TestTypeDistribution)
	}
}

func TestAggregateOrders(t *testing.T) {
	records := []*drugorder.DrugOrder{
		{ID: uuid.New(), Status: drugorder.StatusDispensed, Items: []*drugorder.OrderItem{
			{Quantity: 2, UnitPrice: 5, TotalPrice: 10},
			{Quantity: 1, UnitPrice: 20, TotalPrice: 20},
		}},
		{ID: uuid.New(), Status: drugorder.StatusPending, Items: []*drugorder.OrderItem{
			{Quantity: 3, UnitPrice: 10, TotalPrice: 30},
		}},
	}

	r := AggregateOrders(records, testWindow())

	if r.Summary.TotalOrders != 2 || r.Summary.DispensedOrders != 1 || r.Summary.PendingOrders != 1 {
		t.Errorf("summary = %+v", r.Summary)
	}
	if r.Summary.TotalValue != 60 {
		t.Errorf("totalValue = %v, want 60", r.Summary.TotalValue)
	}
	if r.Summary.AverageOrderValue != 30 {
		t.Errorf("averageOrderValue = %v, want 30", r.Summary.AverageOrderValue)
	}
	if r.Records[0].ItemCount != 2 || r.Records[0].Value != 30 {
		t.Errorf("record[0] = %+v", r.Records[0])
	}
}

func TestAggregateOrdersEmpty(t *testing.T) {
	r := AggregateOrders(nil, testWindow())
	if r.Summary.AverageOrderValue != 0 {
		t.Errorf("averageOrderValue = %v, want 0 on empty input", r.Summary.AverageOrderValue)
	}
}

func TestAggregateInventory(t *testing.T) {
	records := []*drug.Drug{
		{ID: uuid.New(), Name: "Amoxicillin", Category: strPtr("ANTIBIOTIC"), StockQuantity: 0, SellingPrice: 12},
		{ID: uuid.New(), Name: "Ibuprofen", Category: strPtr("ANALGESIC"), StockQuantity: 5, SellingPrice: 4},
		{ID: uuid.New(), Name: "Paracetamol", StockQuantity: 50, SellingPrice: 2},
	}

	r := AggregateInventory(records)

	s := r.Summary
	if s.TotalDrugs != 3 || s.OutOfStockDrugs != 1 || s.LowStockDrugs != 1 || s.InStockDrugs != 1 {
		t.Errorf("summary = %+v", s)
	}
	if s.TotalValue != 120 {
		t.Errorf("totalValue = %v, want 120", s.TotalValue)
	}
	if r.CategoryDistribution[UnknownLabel] != 1 {
		t.Errorf("categories = %v", r.CategoryDistribution)
	}
	if r.Records[2].Category != UnknownLabel {
		t.Errorf("missing category projected as %q", r.Records[2].Category)
	}
}

func TestAggregateInventoryThresholdEdges(t *testing.T) {
	records := []*drug.Drug{
		{ID: uuid.New(), Name: "a", StockQuantity: 1},
		{ID: uuid.New(), Name: "b", StockQuantity: 10},
		{ID: uuid.New(), Name: "c", StockQuantity: 11},
	}
	r := AggregateInventory(records)
	if r.Summary.LowStockDrugs != 2 || r.Summary.InStockDrugs != 1 {
		t.Errorf("summary = %+v, want low={1,10}, in={11}", r.Summary)
	}
}

func TestAggregateSales(t *testing.T) {
	records := []*sale.Sale{
		{ID: uuid.New(), Total: 10, PaymentMethod: "CASH", PaymentStatus: sale.StatusCompleted,
			Items: []*sale.SaleItem{{Quantity: 2}}},
		{ID: uuid.New(), Total: 20, PaymentMethod: "CARD", PaymentStatus: sale.StatusCompleted,
			Items: []*sale.SaleItem{{Quantity: 1}, {Quantity: 3}}},
		{ID: uuid.New(), Total: 30, PaymentMethod: "CASH", PaymentStatus: sale.StatusPending},
	}

	r := AggregateSales(records, testWindow())

	if r.Summary.TotalSales != 3 || r.Summary.TotalRevenue != 60 {
		t.Errorf("summary = %+v", r.Summary)
	}
	if r.Summary.AverageSale != 20 {
		t.Errorf("averageSale = %v, want 20", r.Summary.AverageSale)
	}
	if r.Summary.TotalItems != 6 {
		t.Errorf("totalItems = %d, want 6", r.Summary.TotalItems)
	}
	if r.PaymentMethodDistribution["CASH"] != 2 || r.PaymentMethodDistribution["CARD"] != 1 {
		t.Errorf("methods = %v", r.PaymentMethodDistribution)
	}
}

func TestAggregatePayments(t *testing.T) {
	records := []*payment.Payment{
		{ID: uuid.New(), Amount: 15, PaymentMethod: "CASH", PaymentStatus: payment.StatusCompleted},
		{ID: uuid.New(), Amount: 100, PaymentMethod: "CARD", PaymentStatus: payment.StatusPending},
		{ID: uuid.New(), Amount: 40, PaymentMethod: "CASH", PaymentStatus: payment.StatusFailed},
	}

	r := AggregatePayments(records, testWindow())

	s := r.Summary
	if s.TotalPayments != 3 || s.CompletedPayments != 1 || s.PendingPayments != 1 || s.FailedPayments != 1 {
		t.Errorf("summary = %+v", s)
	}
	// Domain-level revenue uses the base amount of completed payments only.
	if s.TotalRevenue != 15 {
		t.Errorf("totalRevenue = %v, want 15", s.TotalRevenue)
	}
	if r.StatusDistribution[payment.StatusCompleted] != 1 {
		t.Errorf("statuses = %v", r.StatusDistribution)
	}
}

func TestAggregatePaymentsIgnoresFinalAmountForDomainRevenue(t *testing.T) {
	records := []*payment.Payment{
		{ID: uuid.New(), Amount: 100, FinalAmount: floatPtr(80), PaymentStatus: payment.StatusCompleted},
	}
	r := AggregatePayments(records, testWindow())
	if r.Summary.TotalRevenue != 100 {
		t.Errorf("totalRevenue = %v, want base amount 100", r.Summary.TotalRevenue)
	}
}

func TestAggregateWalkIns(t *testing.T) {
	records := []*walkin.WalkInService{
		{ID: uuid.New(), ServiceType: "INJECTION", Amount: 25, PaymentMethod: "CASH", PaymentStatus: walkin.StatusCompleted},
		{ID: uuid.New(), ServiceType: "DRESSING", Amount: 40, PaymentMethod: "CARD", PaymentStatus: walkin.StatusCompleted},
		{ID: uuid.New(), ServiceType: "INJECTION", Amount: 100, PaymentMethod: "CASH", PaymentStatus: walkin.StatusPending},
	}

	r := AggregateWalkIns(records, testWindow())

	s := r.Summary
	if s.TotalServices != 3 || s.CompletedServices != 2 || s.PendingServices != 1 {
		t.Errorf("summary = %+v", s)
	}
	if s.TotalRevenue != 65 {
		t.Errorf("totalRevenue = %v, want completed only 65", s.TotalRevenue)
	}
	if r.ServiceTypeDistribution["INJECTION"] != 2 {
		t.Errorf("serviceTypes = %v", r.ServiceTypeDistribution)
	}
}

func TestAggregateComprehensiveRevenueReconciliation(t *testing.T) {
	sales := []*sale.Sale{
		{ID: uuid.New(), Total: 10, PaymentStatus: sale.StatusCompleted},
		{ID: uuid.New(), Total: 20, PaymentStatus: sale.StatusCompleted},
		{ID: uuid.New(), Total: 30, PaymentStatus: sale.StatusCompleted},
	}
	payments := []*payment.Payment{
		{ID: uuid.New(), Amount: 15, PaymentStatus: payment.StatusCompleted},
		{ID: uuid.New(), Amount: 100, PaymentStatus: payment.StatusPending},
	}
	walkIns := []*walkin.WalkInService{
		{ID: uuid.New(), Amount: 50, PaymentStatus: walkin.StatusCompleted},
	}

	r := AggregateComprehensive(nil, nil, nil, nil, sales, payments, walkIns)

	f := r.Financial
	if f.SalesRevenue != 60 {
		t.Errorf("salesRevenue = %v, want 60", f.SalesRevenue)
	}
	if f.PaymentsRevenue != 15 {
		t.Errorf("paymentsRevenue = %v, want 15", f.PaymentsRevenue)
	}
	if f.WalkInServicesRevenue != 50 {
		t.Errorf("walkInServicesRevenue = %v, want 50", f.WalkInServicesRevenue)
	}
	// Collected payments are the single source of truth. Summing the branch
	// revenues would double count.
	if f.TotalRevenue != f.PaymentsRevenue {
		t.Errorf("totalRevenue = %v, want paymentsRevenue %v", f.TotalRevenue, f.PaymentsRevenue)
	}
	if f.TotalRevenue == f.SalesRevenue+f.PaymentsRevenue+f.WalkInServicesRevenue {
		t.Error("totalRevenue must not be the sum of branch revenues")
	}
}

func TestAggregateComprehensiveUsesFinalAmount(t *testing.T) {
	payments := []*payment.Payment{
		{ID: uuid.New(), Amount: 100, FinalAmount: floatPtr(80), PaymentStatus: payment.StatusCompleted},
		{ID: uuid.New(), Amount: 25, PaymentStatus: payment.StatusCompleted},
		{ID: uuid.New(), Amount: 500, FinalAmount: floatPtr(450), PaymentStatus: payment.StatusFailed},
	}

	r := AggregateComprehensive(nil, nil, nil, nil, nil, payments, nil)

	if r.Financial.PaymentsRevenue != 105 {
		t.Errorf("paymentsRevenue = %v, want 105 (80 final + 25 base, failed excluded)", r.Financial.PaymentsRevenue)
	}
	if r.Financial.TotalRevenue != 105 {
		t.Errorf("totalRevenue = %v, want 105", r.Financial.TotalRevenue)
	}
}

func TestAggregateComprehensiveOverviewAndPerformance(t *testing.T) {
	patients := []*patient.Patient{{ID: uuid.New()}}
	labs := []*labresult.LabResult{
		{Status: labresult.StatusCompleted},
		{Status: labresult.StatusCompleted},
		{Status: labresult.StatusPending},
		{Status: labresult.StatusCancelled},
	}
	orders := []*drugorder.DrugOrder{
		{Status: drugorder.StatusDispensed},
		{Status: drugorder.StatusPending},
	}
	drugs := []*drug.Drug{
		{StockQuantity: 4, SellingPrice: 3},
	}
	payments := []*payment.Payment{
		{Amount: 10, PaymentStatus: payment.StatusCompleted},
		{Amount: 10, PaymentStatus: payment.StatusFailed},
	}
	walkIns := []*walkin.WalkInService{
		{Amount: 5, PaymentStatus: walkin.StatusCompleted},
	}

	r := AggregateComprehensive(patients, labs, orders, drugs, nil, payments, walkIns)

	ov := r.Overview
	if ov.TotalPatients != 1 || ov.TotalLabTests != 4 || ov.TotalDrugOrders != 2 ||
		ov.TotalDrugs != 1 || ov.TotalSales != 0 || ov.TotalPayments != 2 || ov.TotalWalkInServices != 1 {
		t.Errorf("overview = %+v", ov)
	}
	if r.Financial.InventoryValue != 12 {
		t.Errorf("inventoryValue = %v, want 12", r.Financial.InventoryValue)
	}

	p := r.Performance
	if p.LabCompletionRate != 50 {
		t.Errorf("labCompletionRate = %v, want 50", p.LabCompletionRate)
	}
	if p.OrderDispenseRate != 50 {
		t.Errorf("orderDispenseRate = %v, want 50", p.OrderDispenseRate)
	}
	if p.PaymentSuccessRate != 50 {
		t.Errorf("paymentSuccessRate = %v, want 50", p.PaymentSuccessRate)
	}
	if p.WalkInServicesSuccessRate != 100 {
		t.Errorf("walkInSuccessRate = %v, want 100", p.WalkInServicesSuccessRate)
	}
}

func TestAggregateComprehensiveEmptyInputs(t *testing.T) {
	r := AggregateComprehensive(nil, nil, nil, nil, nil, nil, nil)
	if r.Financial.TotalRevenue != 0 {
		t.Errorf("totalRevenue = %v", r.Financial.TotalRevenue)
	}
	p := r.Performance
	if p.LabCompletionRate != 0 || p.OrderDispenseRate != 0 || p.PaymentSuccessRate != 0 || p.WalkInServicesSuccessRate != 0 {
		t.Errorf("performance = %+v, want all zero on empty inputs", p)
	}
}

func TestAggregateDoesNotMutateInput(t *testing.T) {
	s := &sale.Sale{ID: uuid.New(), Total: 10, PaymentMethod: "CASH", PaymentStatus: sale.StatusCompleted}
	records := []*sale.Sale{s}

	AggregateSales(records, testWindow())
	AggregateComprehensive(nil, nil, nil, nil, records, nil, nil)

	if s.Total != 10 || s.PaymentMethod != "CASH" || s.PaymentStatus != sale.StatusCompleted {
		t.Errorf("input mutated: %+v", s)
	}
}
