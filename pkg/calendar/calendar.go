// Package calendar is the civil-calendar arithmetic collaborator spec.md
// names as out of scope for the format/parse core itself: year/month/day and
// weekday/yearday derivation, with saturating semantics at the extremes of
// the representable range. The core civiltime package calls into it for
// CivilSecond normalization; it never calls back into civiltime.
package calendar

import (
	"math"

	"github.com/JohnCGriffin/overflow"
	"github.com/imarsman/civiltime/pkg/utility"
)

// IsLeapYear reports whether y is a leap year in the proleptic Gregorian
// calendar.
func IsLeapYear(y int64) bool {
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}

// DaysInMonth returns the number of days in month m (1-12) of year y.
func DaysInMonth(y int64, m int) int {
	if m == 2 && IsLeapYear(y) {
		return 29
	}
	n := int(utility.DaysBefore[m]) - int(utility.DaysBefore[m-1])
	return n
}

// DaysFromCivil converts a (year, month, day) civil date to a day count
// relative to the Unix epoch (1970-01-01 == 0). This is Howard Hinnant's
// well known days_from_civil algorithm, valid across the entire proleptic
// Gregorian calendar with no special-casing of month lengths.
func DaysFromCivil(y int64, m, d int) int64 {
	y -= boolToInt64(m <= 2)
	era := floorDiv(y, 400)
	yoe := y - era*400 // [0, 399]
	mp := (m + 9) % 12
	doy := (153*mp+2)/5 + d - 1             // [0, 365]
	doe := yoe*365 + yoe/4 - yoe/100 + doy // [0, 146096]
	return era*146097 + doe - 719468
}

// CivilFromDays converts a day count relative to the Unix epoch back into a
// (year, month, day) civil date.
func CivilFromDays(z int64) (y int64, m, d int) {
	z += 719468
	era := floorDiv(z, 146097)
	doe := z - era*146097                                   // [0, 146096]
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365 // [0, 399]
	y = yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100) // [0, 365]
	mp := (5*doy + 2) / 153
	d = int(doy-(153*mp+2)/5) + 1
	m = int(mp)
	if mp < 10 {
		m = int(mp) + 3
	} else {
		m = int(mp) - 9
	}
	if m <= 2 {
		y++
	}
	return y, m, d
}

// Weekday returns the day of week for a day count, 0 == Sunday, matching the
// broken-down-time convention spec.md §4.4 requires.
func Weekday(z int64) int {
	// 1970-01-01 (z == 0) was a Thursday (weekday 4).
	return int(floorMod(z+4, 7))
}

// YearDay returns the 0-indexed day-of-year for a civil date.
func YearDay(y int64, m, d int) int {
	before := int(utility.DaysBefore[m-1])
	if m > 2 && IsLeapYear(y) {
		before++
	}
	return before + d - 1
}

// AddSecondsSaturating adds a signed seconds offset to a (y,m,d,H,M,S)
// civil second, normalizing overflow in seconds/minutes/hours/days into the
// higher fields. saturated reports whether int64 day-count arithmetic would
// have overflowed and the result was clamped to MinDays/MaxDays instead.
func AddSecondsSaturating(y int64, mo, d, h, mi, s int, offsetSeconds int64) (ny int64, nmo, nd, nh, nmi, ns int, saturated bool) {
	days := DaysFromCivil(y, mo, d)
	totalSeconds := int64(h)*3600 + int64(mi)*60 + int64(s)

	sum, ok := overflow.Add64(totalSeconds, offsetSeconds)
	if !ok {
		return saturateResult(offsetSeconds > 0)
	}

	dayDelta, secOfDay := utility.Norm(0, sum, 86400)
	newDays, ok := overflow.Add64(days, dayDelta)
	if !ok {
		return saturateResult(offsetSeconds > 0)
	}
	if newDays > MaxDays || newDays < MinDays {
		return saturateResult(newDays > MaxDays)
	}

	ny, nmo, nd = CivilFromDays(newDays)
	nh = int(secOfDay / 3600)
	nmi = int((secOfDay % 3600) / 60)
	ns = int(secOfDay % 60)
	return ny, nmo, nd, nh, nmi, ns, false
}

func saturateResult(positive bool) (y int64, mo, d, h, mi, s int, saturated bool) {
	if positive {
		y, mo, d = CivilFromDays(MaxDays)
		return y, mo, d, 23, 59, 59, true
	}
	y, mo, d = CivilFromDays(MinDays)
	return y, mo, d, 0, 0, 0, true
}

// MinDays/MaxDays bound the day-count range this package is willing to
// represent without int64 arithmetic risking overflow further up the stack
// (well inside math.MaxInt64/86400 seconds-per-day headroom).
var (
	MaxDays = int64(math.MaxInt64 / (86400 * 4))
	MinDays = -MaxDays
)

func boolToInt64(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}
