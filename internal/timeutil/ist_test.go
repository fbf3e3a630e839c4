package timeutil

import (
	"testing"
	"time"
)

func mustParse(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := ParseDate(value)
	if err != nil {
		t.Fatalf("ParseDate(%q) error: %v", value, err)
	}
	return d
}

func TestWeekStartSunday_FullWeek(t *testing.T) {
	// 2024-05-05 is a Sunday. Every day through Saturday maps back to it.
	for i, date := range []string{
		"2024-05-05", "2024-05-06", "2024-05-07", "2024-05-08",
		"2024-05-09", "2024-05-10", "2024-05-11",
	} {
		got := FormatDate(WeekStartSunday(mustParse(t, date)))
		if got != "2024-05-05" {
			t.Fatalf("day %d (%s): week start = %s, want 2024-05-05", i, date, got)
		}
	}
	// The next Sunday starts a new week.
	if got := FormatDate(WeekStartSunday(mustParse(t, "2024-05-12"))); got != "2024-05-12" {
		t.Fatalf("2024-05-12 week start = %s, want itself", got)
	}
}

func TestWeekStartMonday_FullWeek(t *testing.T) {
	// 2024-05-06 is a Monday; its week runs through Sunday 2024-05-12.
	for i, date := range []string{
		"2024-05-06", "2024-05-07", "2024-05-08", "2024-05-09",
		"2024-05-10", "2024-05-11", "2024-05-12",
	} {
		got := FormatDate(WeekStartMonday(mustParse(t, date)))
		if got != "2024-05-06" {
			t.Fatalf("day %d (%s): week start = %s, want 2024-05-06", i, date, got)
		}
	}
}

func TestWeekConventions_DisagreeOnSundays(t *testing.T) {
	sunday := mustParse(t, "2024-05-05")

	if got := FormatDate(WeekStartSunday(sunday)); got != "2024-05-05" {
		t.Fatalf("Sunday convention: %s, want 2024-05-05", got)
	}
	// Under Monday-starting weeks a Sunday is the tail of the prior week.
	if got := FormatDate(WeekStartMonday(sunday)); got != "2024-04-29" {
		t.Fatalf("Monday convention: %s, want 2024-04-29", got)
	}
}

func TestWeekStart_AcrossYearBoundary(t *testing.T) {
	// 2025-01-01 is a Wednesday; both conventions reach back into 2024.
	newYear := mustParse(t, "2025-01-01")

	if got := FormatDate(WeekStartSunday(newYear)); got != "2024-12-29" {
		t.Fatalf("Sunday week start = %s, want 2024-12-29", got)
	}
	if got := FormatDate(WeekStartMonday(newYear)); got != "2024-12-30" {
		t.Fatalf("Monday week start = %s, want 2024-12-30", got)
	}
}

func TestWeekEnd(t *testing.T) {
	start := mustParse(t, "2024-05-05")
	if got := FormatDate(WeekEnd(start)); got != "2024-05-11" {
		t.Fatalf("week end = %s, want 2024-05-11", got)
	}
}

func TestFormatDate_ConvertsToISTCalendarDate(t *testing.T) {
	// 20:00 UTC is already past midnight in IST.
	utc := time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC)
	if got := FormatDate(utc); got != "2024-05-02" {
		t.Fatalf("FormatDate = %s, want 2024-05-02", got)
	}
}
