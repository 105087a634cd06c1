package civiltime

import (
	"math"

	"github.com/imarsman/civiltime/pkg/calendar"
)

// CivilSecond is a calendar tuple (year, month, day, hour, minute, second)
// with no attached time zone, as described in spec.md §3.
type CivilSecond struct {
	Year                     int64
	Month, Day               int
	Hour, Minute, Second     int
}

// MinCivilSecond and MaxCivilSecond are the sentinels Parse checks against
// when the zone collaborator pins to its own extremes (spec.md §4.5 step
// 8). Add and Sub do not use them; they report overflow through ok.
var (
	MinCivilSecond = CivilSecond{Year: math.MinInt64 / 400, Month: 1, Day: 1}
	MaxCivilSecond = CivilSecond{Year: math.MaxInt64 / 400, Month: 12, Day: 31, Hour: 23, Minute: 59, Second: 59}
)

// Add returns cs shifted by offsetSeconds (which may be negative), with
// month/day/hour/minute/second carry normalized the way the civil calendar
// collaborator does it. ok is false if the shift would overflow the
// representable range, in which case the civil second at
// calendar.AddSecondsSaturating's clamped day-count extreme (MinDays
// 00:00:00 or MaxDays 23:59:59) is returned instead.
func (cs CivilSecond) Add(offsetSeconds int64) (result CivilSecond, ok bool) {
	y, m, d, h, mi, s, saturated := calendar.AddSecondsSaturating(
		cs.Year, cs.Month, cs.Day, cs.Hour, cs.Minute, cs.Second, offsetSeconds)
	result = CivilSecond{Year: y, Month: m, Day: d, Hour: h, Minute: mi, Second: s}
	return result, !saturated
}

// Sub is Add(-offsetSeconds), kept separate because negating the minimum
// representable offset would overflow.
func (cs CivilSecond) Sub(offsetSeconds int64) (result CivilSecond, ok bool) {
	if offsetSeconds == math.MinInt64 {
		// Split the negation into two halves that don't overflow individually.
		half, ok1 := cs.Add(math.MaxInt64)
		if !ok1 {
			return half, false
		}
		return half.Add(1)
	}
	return cs.Add(-offsetSeconds)
}

// Weekday returns the 0 (Sunday) .. 6 (Saturday) day of week, matching the
// broken-down-time convention spec.md §4.4 requires.
func (cs CivilSecond) Weekday() int {
	return calendar.Weekday(calendar.DaysFromCivil(cs.Year, cs.Month, cs.Day))
}

// YearDay returns the 0-indexed day of year, matching spec.md §4.4's
// "Year-day is 0-indexed" requirement for broken-down-time population.
func (cs CivilSecond) YearDay() int {
	return calendar.YearDay(cs.Year, cs.Month, cs.Day)
}

// normalizedDayMonth reports whether building a civil date from the given
// fields, then reading it back via the day-count round trip, leaves the
// month and day unchanged. Parsing a nonexistent date like "2023-09-31"
// must be rejected rather than silently rolled forward to "2023-10-01"
// (spec.md §4.5 step 6).
func normalizedDayMonth(year int64, month, day int) bool {
	// Reject an obviously out-of-range day before paying for the
	// day-count round trip below.
	if month >= 1 && month <= 12 && (day < 1 || day > calendar.DaysInMonth(year, month)) {
		return false
	}
	days := calendar.DaysFromCivil(year, month, day)
	y, m, d := calendar.CivilFromDays(days)
	return y == year && m == month && d == day
}
