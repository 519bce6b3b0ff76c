package report

import "time"

// RangeKey selects a report window relative to a reference instant.
type RangeKey string

const (
	RangeToday   RangeKey = "today"
	RangeWeek    RangeKey = "week"
	RangeMonth   RangeKey = "month"
	RangeQuarter RangeKey = "quarter"
	RangeYear    RangeKey = "year"
	RangeCustom  RangeKey = "custom"
)

// DateRange is a resolved inclusive [Start, End] window. End carries
// 23:59:59 of the closing day, so filters must use >= Start AND <= End.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// ParseRangeKey maps a raw query value to a known range key. Unknown values
// fall back to month; ok reports whether the input was recognized.
func ParseRangeKey(s string) (RangeKey, bool) {
	switch RangeKey(s) {
	case RangeToday, RangeWeek, RangeMonth, RangeQuarter, RangeYear, RangeCustom:
		return RangeKey(s), true
	}
	return RangeMonth, false
}

// ResolveRange turns a range key into a concrete window relative to now,
// using now's calendar and location.
//
// week is week-to-date from the most recent Sunday, not a trailing 7 days.
// month, quarter and year span their full calendar period regardless of
// now's position inside it. For custom, explicitStart/explicitEnd are parsed
// as "2006-01-02" (or RFC 3339); values that are absent or unparseable fall
// back to the bounds of now's year without raising an error.
func ResolveRange(key RangeKey, explicitStart, explicitEnd string, now time.Time) DateRange {
	loc := now.Location()
	y, m, d := now.Date()

	switch key {
	case RangeToday:
		return DateRange{
			Start: time.Date(y, m, d, 0, 0, 0, 0, loc),
			End:   endOfDay(y, m, d, loc),
		}
	case RangeWeek:
		sunday := d - int(now.Weekday())
		return DateRange{
			Start: time.Date(y, m, sunday, 0, 0, 0, 0, loc),
			End:   endOfDay(y, m, d, loc),
		}
	case RangeQuarter:
		qm := time.Month((int(m)-1)/3*3 + 1)
		return DateRange{
			Start: time.Date(y, qm, 1, 0, 0, 0, 0, loc),
			End:   time.Date(y, qm+3, 0, 23, 59, 59, 0, loc),
		}
	case RangeYear:
		return DateRange{
			Start: time.Date(y, time.January, 1, 0, 0, 0, 0, loc),
			End:   time.Date(y, time.December, 31, 23, 59, 59, 0, loc),
		}
	case RangeCustom:
		start := time.Date(y, time.January, 1, 0, 0, 0, 0, loc)
		end := time.Date(y, time.December, 31, 23, 59, 59, 0, loc)
		if t, ok := parseDate(explicitStart, loc); ok {
			start = t
		}
		if t, ok := parseDate(explicitEnd, loc); ok {
			ey, em, ed := t.Date()
			end = endOfDay(ey, em, ed, loc)
		}
		if end.Before(start) {
			// Reversed custom bounds collapse to the start day.
			sy, sm, sd := start.Date()
			end = endOfDay(sy, sm, sd, loc)
		}
		return DateRange{Start: start, End: end}
	default:
		// month, plus the fallback for anything unrecognized
		return DateRange{
			Start: time.Date(y, m, 1, 0, 0, 0, 0, loc),
			End:   time.Date(y, m+1, 0, 23, 59, 59, 0, loc),
		}
	}
}

func endOfDay(y int, m time.Month, d int, loc *time.Location) time.Time {
	return time.Date(y, m, d, 23, 59, 59, 0, loc)
}

func parseDate(s string, loc *time.Location) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.ParseInLocation("2006-01-02", s, loc); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.In(loc), true
	}
	return time.Time{}, false
}
