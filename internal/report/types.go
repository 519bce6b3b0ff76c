package report

import "time"

// UnknownLabel is the bucket for records with a missing or empty
// categorical value.
const UnknownLabel = "UNKNOWN"

// Distribution is a count-by-category breakdown. Keys come from observed
// record values; missing values land in UnknownLabel.
type Distribution map[string]int

// Add increments the bucket for label, substituting UnknownLabel for an
// empty string.
func (d Distribution) Add(label string) {
	if label == "" {
		label = UnknownLabel
	}
	d[label]++
}

// AddPtr increments the bucket for a nullable label.
func (d Distribution) AddPtr(label *string) {
	if label == nil {
		d.Add("")
		return
	}
	d.Add(*label)
}

// Meta describes how and when a report was produced.
type Meta struct {
	ReportType  string    `json:"reportType"`
	DateRange   string    `json:"dateRange"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	GeneratedAt time.Time `json:"generatedAt"`
}
