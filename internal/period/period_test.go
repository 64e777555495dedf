package period

import (
	"testing"
	"time"
)

func TestAt_DayBounds(t *testing.T) {
	ref := time.Date(2025, 6, 15, 13, 45, 12, 0, time.UTC)
	b := At(ref)

	wantStart := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2025, 6, 15, 23, 59, 59, int(999*time.Millisecond), time.UTC)

	if !b.StartOfToday.Equal(wantStart) {
		t.Errorf("StartOfToday = %v, want %v", b.StartOfToday, wantStart)
	}
	if !b.EndOfToday.Equal(wantEnd) {
		t.Errorf("EndOfToday = %v, want %v", b.EndOfToday, wantEnd)
	}
}

func TestAt_TrailingWeekCrossesMonth(t *testing.T) {
	ref := time.Date(2025, 3, 2, 8, 0, 0, 0, time.UTC)
	b := At(ref)

	want := time.Date(2025, 2, 24, 0, 0, 0, 0, time.UTC)
	if !b.StartOfWeek.Equal(want) {
		t.Errorf("StartOfWeek = %v, want %v", b.StartOfWeek, want)
	}
}

func TestAt_MonthBounds(t *testing.T) {
	cases := []struct {
		ref     time.Time
		lastDay int
	}{
		{time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), 31},
		{time.Date(2025, 4, 30, 23, 59, 59, 0, time.UTC), 30},
		{time.Date(2024, 2, 15, 12, 0, 0, 0, time.UTC), 29}, // leap year
		{time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), 28},
		{time.Date(2025, 12, 31, 23, 0, 0, 0, time.UTC), 31},
	}

	for _, tc := range cases {
		b := At(tc.ref)
		if b.StartOfMonth.Day() != 1 || b.StartOfMonth.Hour() != 0 {
			t.Errorf("At(%v).StartOfMonth = %v, want first instant of month", tc.ref, b.StartOfMonth)
		}
		if b.EndOfMonth.Day() != tc.lastDay {
			t.Errorf("At(%v).EndOfMonth day = %d, want %d", tc.ref, b.EndOfMonth.Day(), tc.lastDay)
		}
		if b.EndOfMonth.Hour() != 23 || b.EndOfMonth.Minute() != 59 || b.EndOfMonth.Second() != 59 {
			t.Errorf("At(%v).EndOfMonth = %v, want last instant of month", tc.ref, b.EndOfMonth)
		}
	}
}

func TestAt_NonUTCReference(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*3600)
	// 03:00 on July 2 in UTC+9 is still July 1 in UTC.
	ref := time.Date(2025, 7, 2, 3, 0, 0, 0, loc)
	b := At(ref)

	if got := b.StartOfToday.Format("2006-01-02"); got != "2025-07-01" {
		t.Errorf("StartOfToday day = %s, want 2025-07-01", got)
	}
}

func TestAt_SameDayConsistency(t *testing.T) {
	morning := At(time.Date(2025, 9, 1, 0, 0, 1, 0, time.UTC))
	evening := At(time.Date(2025, 9, 1, 23, 59, 58, 0, time.UTC))

	if morning != evening {
		t.Errorf("bounds differ within one UTC day: %+v vs %+v", morning, evening)
	}
}

func TestWeekDays(t *testing.T) {
	b := At(time.Date(2025, 3, 2, 8, 0, 0, 0, time.UTC))
	days := b.WeekDays()

	if len(days) != 7 {
		t.Fatalf("len(WeekDays()) = %d, want 7", len(days))
	}
	want := []string{
		"2025-02-24", "2025-02-25", "2025-02-26", "2025-02-27",
		"2025-02-28", "2025-03-01", "2025-03-02",
	}
	for i, d := range days {
		if d != want[i] {
			t.Errorf("WeekDays()[%d] = %s, want %s", i, d, want[i])
		}
	}
}
