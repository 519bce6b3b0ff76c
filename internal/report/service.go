package report

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/clinicore/clinicore/internal/domain/drug"
	"github.com/clinicore/clinicore/internal/domain/drugorder"
	"github.com/clinicore/clinicore/internal/domain/labresult"
	"github.com/clinicore/clinicore/internal/domain/patient"
	"github.com/clinicore/clinicore/internal/domain/payment"
	"github.com/clinicore/clinicore/internal/domain/sale"
	"github.com/clinicore/clinicore/internal/domain/walkin"
)

// Report types.
const (
	TypePatients      = "patients"
	TypeLabResults    = "lab-results"
	TypeDrugOrders    = "drug-orders"
	TypeInventories   = "inventories"
	TypeSales         = "sales"
	TypePayments      = "payments"
	TypeWalkIn        = "walk-in-services"
	TypeComprehensive = "comprehensive"
)

// DefaultFetchTimeout bounds each source fetch when no explicit timeout is
// configured.
const DefaultFetchTimeout = 10 * time.Second

var knownTypes = map[string]bool{
	TypePatients: true, TypeLabResults: true, TypeDrugOrders: true,
	TypeInventories: true, TypeSales: true, TypePayments: true,
	TypeWalkIn: true, TypeComprehensive: true,
}

// NormalizeType maps a raw report type to a known one. Unknown values fall
// back to sales; ok reports whether the input was recognized.
func NormalizeType(s string) (string, bool) {
	if knownTypes[s] {
		return s, true
	}
	return TypeSales, false
}

// Service resolves report requests against the seven read-only sources.
// Every fetch is bounded by fetchTimeout; a fetch failure or timeout fails
// the whole request, never a partial report.
type Service struct {
	src          Sources
	fetchTimeout time.Duration
	logger       zerolog.Logger
}

func NewService(src Sources, fetchTimeout time.Duration, logger zerolog.Logger) *Service {
	if fetchTimeout <= 0 {
		fetchTimeout = DefaultFetchTimeout
	}
	return &Service{src: src, fetchTimeout: fetchTimeout, logger: logger}
}

// Generate resolves the requested type and range, fetches the backing data
// and returns the aggregated report payload plus response metadata.
// Unrecognized selectors substitute their documented defaults silently.
func (s *Service) Generate(ctx context.Context, reportType, rangeKey, startDate, endDate string, now time.Time) (interface{}, Meta, error) {
	resolvedType, knownType := NormalizeType(reportType)
	if !knownType {
		s.logger.Debug().Str("requested", reportType).Str("substituted", resolvedType).
			Msg("unknown report type, using default")
	}

	key, knownRange := ParseRangeKey(rangeKey)
	if !knownRange {
		s.logger.Debug().Str("requested", rangeKey).Str("substituted", string(key)).
			Msg("unknown range key, using default")
	}
	window := ResolveRange(key, startDate, endDate, now)

	meta := Meta{
		ReportType:  resolvedType,
		DateRange:   string(key),
		StartDate:   window.Start,
		EndDate:     window.End,
		GeneratedAt: now,
	}

	data, err := s.dispatch(ctx, resolvedType, window)
	if err != nil {
		return nil, Meta{}, err
	}
	return data, meta, nil
}

func (s *Service) dispatch(ctx context.Context, reportType string, window DateRange) (interface{}, error) {
	switch reportType {
	case TypePatients:
		records, err := fetch(ctx, s.fetchTimeout, window, s.src.Patients.ListCreatedBetween)
		if err != nil {
			return nil, fmt.Errorf("patients: %w", err)
		}
		return AggregatePatients(records, window), nil
	case TypeLabResults:
		records, err := fetch(ctx, s.fetchTimeout, window, s.src.Labs.ListRequestedBetween)
		if err != nil {
			return nil, fmt.Errorf("lab results: %w", err)
		}
		return AggregateLabs(records, window), nil
	case TypeDrugOrders:
		records, err := fetch(ctx, s.fetchTimeout, window, s.src.Orders.ListOrderedBetween)
		if err != nil {
			return nil, fmt.Errorf("drug orders: %w", err)
		}
		return AggregateOrders(records, window), nil
	case TypeInventories:
		fetchCtx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
		defer cancel()
		records, err := s.src.Drugs.ListAll(fetchCtx)
		if err != nil {
			return nil, fmt.Errorf("inventory: %w", err)
		}
		return AggregateInventory(records), nil
	case TypePayments:
		records, err := fetch(ctx, s.fetchTimeout, window, s.src.Payments.ListCreatedBetween)
		if err != nil {
			return nil, fmt.Errorf("payments: %w", err)
		}
		return AggregatePayments(records, window), nil
	case TypeWalkIn:
		records, err := fetch(ctx, s.fetchTimeout, window, s.src.WalkIns.ListCreatedBetween)
		if err != nil {
			return nil, fmt.Errorf("walk-in services: %w", err)
		}
		return AggregateWalkIns(records, window), nil
	case TypeComprehensive:
		return s.comprehensive(ctx, window)
	default: // sales
		records, err := fetch(ctx, s.fetchTimeout, window, s.src.Sales.ListCreatedBetween)
		if err != nil {
			return nil, fmt.Errorf("sales: %w", err)
		}
		return AggregateSales(records, window), nil
	}
}

// fetch runs a windowed list call under the per-source timeout.
func fetch[T any](ctx context.Context, timeout time.Duration, window DateRange, list func(context.Context, time.Time, time.Time) ([]T, error)) ([]T, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return list(fetchCtx, window.Start, window.End)
}

// comprehensive fans out all seven source fetches concurrently, each under
// its own timeout, and joins on a wait-group barrier. Any branch failure
// fails the whole report: substituting an empty set for a failed source
// would silently mis-state the revenue totals and overview counts.
func (s *Service) comprehensive(ctx context.Context, window DateRange) (interface{}, error) {
	var (
		patients []*patient.Patient
		labs     []*labresult.LabResult
		orders   []*drugorder.DrugOrder
		drugs    []*drug.Drug
		sales    []*sale.Sale
		payments []*payment.Payment
		walkIns  []*walkin.WalkInService
	)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	fail := func(name string, err error) {
		mu.Lock()
		defer mu.Unlock()
		if firstErr == nil {
			firstErr = fmt.Errorf("%s: %w", name, err)
		}
	}
	run := func(name string, fn func(context.Context) error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fetchCtx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
			defer cancel()
			if err := fn(fetchCtx); err != nil {
				fail(name, err)
			}
		}()
	}

	run("patients", func(ctx context.Context) (err error) {
		patients, err = s.src.Patients.ListCreatedBetween(ctx, window.Start, window.End)
		return err
	})
	run("lab results", func(ctx context.Context) (err error) {
		labs, err = s.src.Labs.ListRequestedBetween(ctx, window.Start, window.End)
		return err
	})
	run("drug orders", func(ctx context.Context) (err error) {
		orders, err = s.src.Orders.ListOrderedBetween(ctx, window.Start, window.End)
		return err
	})
	run("inventory", func(ctx context.Context) (err error) {
		drugs, err = s.src.Drugs.ListAll(ctx)
		return err
	})
	run("sales", func(ctx context.Context) (err error) {
		sales, err = s.src.Sales.ListCreatedBetween(ctx, window.Start, window.End)
		return err
	})
	run("payments", func(ctx context.Context) (err error) {
		payments, err = s.src.Payments.ListCreatedBetween(ctx, window.Start, window.End)
		return err
	})
	run("walk-in services", func(ctx context.Context) (err error) {
		walkIns, err = s.src.WalkIns.ListCreatedBetween(ctx, window.Start, window.End)
		return err
	})
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return AggregateComprehensive(patients, labs, orders, drugs, sales, payments, walkIns), nil
}
