package report

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d, hh, mm, ss int) time.Time {
	return time.Date(y, m, d, hh, mm, ss, 0, time.UTC)
}

func TestParseRangeKey(t *testing.T) {
	for _, key := range []string{"today", "week", "month", "quarter", "year", "custom"} {
		got, ok := ParseRangeKey(key)
		if !ok || string(got) != key {
			t.Errorf("ParseRangeKey(%q) = (%q, %v), want (%q, true)", key, got, ok, key)
		}
	}

	got, ok := ParseRangeKey("fortnight")
	if ok || got != RangeMonth {
		t.Errorf("ParseRangeKey(unknown) = (%q, %v), want (month, false)", got, ok)
	}
}

func TestResolveRangeToday(t *testing.T) {
	now := date(2024, time.March, 15, 14, 30, 0)
	r := ResolveRange(RangeToday, "", "", now)
	if !r.Start.Equal(date(2024, time.March, 15, 0, 0, 0)) {
		t.Errorf("start = %v", r.Start)
	}
	if !r.End.Equal(date(2024, time.March, 15, 23, 59, 59)) {
		t.Errorf("end = %v", r.End)
	}
}

func TestResolveRangeWeekStartsSunday(t *testing.T) {
	// 2024-03-15 is a Friday; the week began Sunday 2024-03-10.
	now := date(2024, time.March, 15, 14, 30, 0)
	r := ResolveRange(RangeWeek, "", "", now)
	if !r.Start.Equal(date(2024, time.March, 10, 0, 0, 0)) {
		t.Errorf("start = %v, want Sunday Mar 10", r.Start)
	}
	if !r.End.Equal(date(2024, time.March, 15, 23, 59, 59)) {
		t.Errorf("end = %v, want today's end", r.End)
	}
}

func TestResolveRangeWeekOnSunday(t *testing.T) {
	// On a Sunday the window is that single day.
	now := date(2024, time.March, 10, 9, 0, 0)
	r := ResolveRange(RangeWeek, "", "", now)
	if !r.Start.Equal(date(2024, time.March, 10, 0, 0, 0)) {
		t.Errorf("start = %v", r.Start)
	}
	if !r.End.Equal(date(2024, time.March, 10, 23, 59, 59)) {
		t.Errorf("end = %v", r.End)
	}
}

func TestResolveRangeWeekCrossesMonthBoundary(t *testing.T) {
	// 2024-05-01 is a Wednesday; the week began Sunday 2024-04-28.
	now := date(2024, time.May, 1, 8, 0, 0)
	r := ResolveRange(RangeWeek, "", "", now)
	if !r.Start.Equal(date(2024, time.April, 28, 0, 0, 0)) {
		t.Errorf("start = %v, want Apr 28", r.Start)
	}
}

func TestResolveRangeMonthSpansFullMonth(t *testing.T) {
	// Leap February.
	now := date(2024, time.February, 15, 12, 0, 0)
	r := ResolveRange(RangeMonth, "", "", now)
	if !r.Start.Equal(date(2024, time.February, 1, 0, 0, 0)) {
		t.Errorf("start = %v", r.Start)
	}
	if !r.End.Equal(date(2024, time.February, 29, 23, 59, 59)) {
		t.Errorf("end = %v, want Feb 29 end of day", r.End)
	}
}

func TestResolveRangeQuarter(t *testing.T) {
	cases := []struct {
		now        time.Time
		wantStartM time.Month
		wantEnd    time.Time
	}{
		{date(2024, time.February, 10, 0, 0, 0), time.January, date(2024, time.March, 31, 23, 59, 59)},
		{date(2024, time.April, 1, 0, 0, 0), time.April, date(2024, time.June, 30, 23, 59, 59)},
		{date(2024, time.September, 30, 0, 0, 0), time.July, date(2024, time.September, 30, 23, 59, 59)},
		{date(2024, time.December, 25, 0, 0, 0), time.October, date(2024, time.December, 31, 23, 59, 59)},
	}
	for _, tc := range cases {
		r := ResolveRange(RangeQuarter, "", "", tc.now)
		if r.Start.Month() != tc.wantStartM || r.Start.Day() != 1 {
			t.Errorf("now=%v: start = %v, want month %v day 1", tc.now, r.Start, tc.wantStartM)
		}
		if !r.End.Equal(tc.wantEnd) {
			t.Errorf("now=%v: end = %v, want %v", tc.now, r.End, tc.wantEnd)
		}
	}
}

func TestResolveRangeYear(t *testing.T) {
	now := date(2024, time.July, 4, 0, 0, 0)
	r := ResolveRange(RangeYear, "", "", now)
	if !r.Start.Equal(date(2024, time.January, 1, 0, 0, 0)) {
		t.Errorf("start = %v", r.Start)
	}
	if !r.End.Equal(date(2024, time.December, 31, 23, 59, 59)) {
		t.Errorf("end = %v", r.End)
	}
}

func TestResolveRangeCustom(t *testing.T) {
	now := date(2024, time.June, 1, 0, 0, 0)
	r := ResolveRange(RangeCustom, "2024-02-10", "2024-03-20", now)
	if !r.Start.Equal(date(2024, time.February, 10, 0, 0, 0)) {
		t.Errorf("start = %v", r.Start)
	}
	if !r.End.Equal(date(2024, time.March, 20, 23, 59, 59)) {
		t.Errorf("end = %v, want end of Mar 20", r.End)
	}
}

func TestResolveRangeCustomBadDatesFallBackToYear(t *testing.T) {
	now := date(2024, time.June, 1, 0, 0, 0)
	for _, tc := range [][2]string{
		{"", ""},
		{"not-a-date", "also-bad"},
		{"2024-13-45", ""},
	} {
		r := ResolveRange(RangeCustom, tc[0], tc[1], now)
		if !r.Start.Equal(date(2024, time.January, 1, 0, 0, 0)) {
			t.Errorf("start(%q,%q) = %v, want Jan 1", tc[0], tc[1], r.Start)
		}
		if !r.End.Equal(date(2024, time.December, 31, 23, 59, 59)) {
			t.Errorf("end(%q,%q) = %v, want Dec 31", tc[0], tc[1], r.End)
		}
	}
}

func TestResolveRangeCustomPartialFallback(t *testing.T) {
	now := date(2024, time.June, 1, 0, 0, 0)
	r := ResolveRange(RangeCustom, "2024-03-05", "garbage", now)
	if !r.Start.Equal(date(2024, time.March, 5, 0, 0, 0)) {
		t.Errorf("start = %v", r.Start)
	}
	if !r.End.Equal(date(2024, time.December, 31, 23, 59, 59)) {
		t.Errorf("end = %v, want year-end fallback", r.End)
	}
}

func TestResolveRangeCustomReversedBoundsCollapse(t *testing.T) {
	now := date(2024, time.June, 1, 0, 0, 0)
	r := ResolveRange(RangeCustom, "2024-05-20", "2024-05-01", now)
	if r.End.Before(r.Start) {
		t.Fatalf("end %v before start %v", r.End, r.Start)
	}
	if !r.End.Equal(date(2024, time.May, 20, 23, 59, 59)) {
		t.Errorf("end = %v, want start day's end", r.End)
	}
}

func TestResolveRangeStartNeverAfterEnd(t *testing.T) {
	now := date(2024, time.March, 15, 10, 0, 0)
	for _, key := range []RangeKey{RangeToday, RangeWeek, RangeMonth, RangeQuarter, RangeYear, RangeCustom} {
		r := ResolveRange(key, "", "", now)
		if r.End.Before(r.Start) {
			t.Errorf("%s: end %v before start %v", key, r.End, r.Start)
		}
	}
}
