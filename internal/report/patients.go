package report

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/clinicore/clinicore/internal/domain/patient"
)

// Age buckets for the patient report.
var ageGroupLabels = []string{"<18", "18-29", "30-49", "50-64", "65+"}

type PatientsSummary struct {
	TotalPatients    int `json:"totalPatients"`
	ActivePatients   int `json:"activePatients"`
	NewPatients      int `json:"newPatients"`
	InactivePatients int `json:"inactivePatients"`
}

type PatientRecord struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Age       int       `json:"age"`
	Gender    string    `json:"gender"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

type PatientsReport struct {
	Summary            PatientsSummary `json:"summary"`
	GenderDistribution Distribution    `json:"genderDistribution"`
	AgeGroups          Distribution    `json:"ageGroups"`
	Records            []PatientRecord `json:"records"`
}

// AggregatePatients summarizes patients already filtered to the window by
// created_at. newPatients re-applies the window predicate, which matches the
// pre-filter, so it equals totalPatients under normal use; the duplication is
// intentional and pinned by tests.
func AggregatePatients(records []*patient.Patient, window DateRange) PatientsReport {
	summary := PatientsSummary{TotalPatients: len(records)}
	gender := Distribution{}
	ages := Distribution{}
	for _, label := range ageGroupLabels {
		ages[label] = 0
	}
	projected := make([]PatientRecord, 0, len(records))

	for _, p := range records {
		if p.IsActive {
			summary.ActivePatients++
		}
		if !p.CreatedAt.Before(window.Start) && !p.CreatedAt.After(window.End) {
			summary.NewPatients++
		}

		g := ""
		if p.Gender != nil {
			g = strings.ToUpper(*p.Gender)
		}
		gender.Add(g)
		ages.Add(ageGroup(p.Age))

		projected = append(projected, PatientRecord{
			ID:        p.ID,
			Name:      p.FullName(),
			Age:       p.Age,
			Gender:    orUnknown(g),
			IsActive:  p.IsActive,
			CreatedAt: p.CreatedAt,
		})
	}
	summary.InactivePatients = summary.TotalPatients - summary.ActivePatients

	return PatientsReport{
		Summary:            summary,
		GenderDistribution: gender,
		AgeGroups:          ages,
		Records:            projected,
	}
}

func ageGroup(age int) string {
	switch {
	case age < 18:
		return "<18"
	case age < 30:
		return "18-29"
	case age < 50:
		return "30-49"
	case age < 65:
		return "50-64"
	default:
		return "65+"
	}
}

func orUnknown(s string) string {
	if s == "" {
		return UnknownLabel
	}
	return s
}
