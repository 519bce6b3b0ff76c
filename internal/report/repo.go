package report

import (
	"context"
	"time"

	"github.com/clinicore/clinicore/internal/domain/drug"
	"github.com/clinicore/clinicore/internal/domain/drugorder"
	"github.com/clinicore/clinicore/internal/domain/labresult"
	"github.com/clinicore/clinicore/internal/domain/patient"
	"github.com/clinicore/clinicore/internal/domain/payment"
	"github.com/clinicore/clinicore/internal/domain/sale"
	"github.com/clinicore/clinicore/internal/domain/walkin"
)

// Read-only source interfaces, one per data set. The domain pg repositories
// satisfy them; tests use in-memory fixtures. Inventory has no time axis, so
// DrugSource always returns the full current set.

type PatientSource interface {
	ListCreatedBetween(ctx context.Context, start, end time.Time) ([]*patient.Patient, error)
}

type LabResultSource interface {
	ListRequestedBetween(ctx context.Context, start, end time.Time) ([]*labresult.LabResult, error)
}

type DrugOrderSource interface {
	ListOrderedBetween(ctx context.Context, start, end time.Time) ([]*drugorder.DrugOrder, error)
}

type DrugSource interface {
	ListAll(ctx context.Context) ([]*drug.Drug, error)
}

type SaleSource interface {
	ListCreatedBetween(ctx context.Context, start, end time.Time) ([]*sale.Sale, error)
}

type PaymentSource interface {
	ListCreatedBetween(ctx context.Context, start, end time.Time) ([]*payment.Payment, error)
}

type WalkInSource interface {
	ListCreatedBetween(ctx context.Context, start, end time.Time) ([]*walkin.WalkInService, error)
}

// Sources bundles the seven read-only sources the engine draws from.
type Sources struct {
	Patients PatientSource
	Labs     LabResultSource
	Orders   DrugOrderSource
	Drugs    DrugSource
	Sales    SaleSource
	Payments PaymentSource
	WalkIns  WalkInSource
}
