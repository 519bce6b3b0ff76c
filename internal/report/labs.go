package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/clinicore/clinicore/internal/domain/labresult"
)

type LabsSummary struct {
	TotalTests      int     `json:"totalTests"`
	CompletedTests  int     `json:"completedTests"`
	PendingTests    int     `json:"pendingTests"`
	InProgressTests int     `json:"inProgressTests"`
	CancelledTests  int     `json:"cancelledTests"`
	CompletionRate  float64 `json:"completionRate"`
}

type LabRecord struct {
	ID          uuid.UUID  `json:"id"`
	PatientID   uuid.UUID  `json:"patientId"`
	TestType    string     `json:"testType"`
	Status      string     `json:"status"`
	RequestedAt time.Time  `json:"requestedAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

type LabsReport struct {
	Summary              LabsSummary  `json:"summary"`
	TestTypeDistribution Distribution `json:"testTypeDistribution"`
	Records              []LabRecord  `json:"records"`
}

// AggregateLabs summarizes lab results already filtered to the window by
// requested_at.
func AggregateLabs(records []*labresult.LabResult, _ DateRange) LabsReport {
	summary := LabsSummary{TotalTests: len(records)}
	types := Distribution{}
	projected := make([]LabRecord, 0, len(records))

	for _, lr := range records {
		switch lr.Status {
		case labresult.StatusCompleted:
			summary.CompletedTests++
		case labresult.StatusPending:
			summary.PendingTests++
		case labresult.StatusInProgress:
			summary.InProgressTests++
		case labresult.StatusCancelled:
			summary.CancelledTests++
		}
		types.Add(lr.TestType)

		projected = append(projected, LabRecord{
			ID:          lr.ID,
			PatientID:   lr.PatientID,
			TestType:    orUnknown(lr.TestType),
			Status:      lr.Status,
			RequestedAt: lr.RequestedAt,
			CompletedAt: lr.CompletedAt,
		})
	}
	if summary.TotalTests > 0 {
		summary.CompletionRate = float64(summary.CompletedTests) / float64(summary.TotalTests) * 100
	}

	return LabsReport{
		Summary:              summary,
		TestTypeDistribution: types,
		Records:              projected,
	}
}
