package timeutil

import (
	"time"
)

// IST is the Indian Standard Time location (UTC+5:30). The shop runs on IST
// calendar dates; every date bucket and filter goes through this package.
var IST *time.Location

func init() {
	var err error
	IST, err = time.LoadLocation("Asia/Kolkata")
	if err != nil {
		// Fallback: create fixed zone if Asia/Kolkata not available
		IST = time.FixedZone("IST", 5*60*60+30*60)
	}
}

// Common layouts
const (
	DateLayout    = "2006-01-02"
	DisplayLayout = "02 Jan 2006, 03:04 PM"
)

// Now returns the current time in IST
func Now() time.Time {
	return time.Now().In(IST)
}

// Today returns the current IST calendar date at midnight
func Today() time.Time {
	return StartOfDay(Now())
}

// StartOfDay returns the start of day (00:00:00) in IST for the given time
func StartOfDay(t time.Time) time.Time {
	ist := t.In(IST)
	return time.Date(ist.Year(), ist.Month(), ist.Day(), 0, 0, 0, 0, IST)
}

// ParseDate parses a YYYY-MM-DD string as an IST calendar date
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, value, IST)
}

// FormatDate formats a time as its IST calendar date
func FormatDate(t time.Time) string {
	return t.In(IST).Format(DateLayout)
}

// WeekStartSunday returns the Sunday on or before t (Sunday-Saturday weeks).
// The single-worker weekly pay view buckets with this convention.
func WeekStartSunday(t time.Time) time.Time {
	d := StartOfDay(t)
	return d.AddDate(0, 0, -int(d.Weekday()))
}

// WeekStartMonday returns the Monday on or before t (Monday-Sunday weeks).
// The all-workers weekly pay view buckets with this convention; it deliberately
// disagrees with WeekStartSunday, matching the two report screens as shipped.
func WeekStartMonday(t time.Time) time.Time {
	d := StartOfDay(t)
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

// WeekEnd returns the last day of the week that starts at weekStart
func WeekEnd(weekStart time.Time) time.Time {
	return weekStart.AddDate(0, 0, 6)
}
