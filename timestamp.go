package civiltime

import (
	"time"

	"github.com/imarsman/civiltime/pkg/brokendown"
)

// FormatISO8601Compact renders instant under "20060102T150405-0700",
// adapted from the teacher's own ISO8601Compact preset.
func FormatISO8601Compact(instant Instant, z Zone) string {
	return Format("%E4Y%m%dT%H%M%S%z", instant, 0, z)
}

// FormatISO8601CompactMsec renders instant under
// "20060102T150405.000-0700", adapted from ISO8601CompactMsec.
func FormatISO8601CompactMsec(instant Instant, fs Femtoseconds, z Zone) string {
	return Format("%E4Y%m%dT%H%M%E3S%z", instant, fs, z)
}

// FormatISO8601 renders instant under "2006-01-02T15:04:05-07:00", adapted
// from the teacher's ISO8601 preset.
func FormatISO8601(instant Instant, z Zone) string {
	return Format(iso8601Layout, instant, 0, z)
}

// FormatISO8601Msec renders instant under "2006-01-02T15:04:05.000-07:00",
// adapted from ISO8601Msec.
func FormatISO8601Msec(instant Instant, fs Femtoseconds, z Zone) string {
	return Format("%E4Y-%m-%dT%H:%M:%E3S%:z", instant, fs, z)
}

// FormatRFC7232 renders instant in UTC under the HTTP header time format
// "Mon, 02 Jan 2006 15:04:05 GMT", adapted from the teacher's RFC7232
// preset. The teacher's version forced its input into time.UTC before
// formatting; this preset does the equivalent by interpreting instant
// through the internal zero-offset zone rather than the caller-supplied z.
func FormatRFC7232(instant Instant) string {
	out := FormatLocale("%a, %d %b %E4Y %H:%M:%S", instant, 0, utcZone{}, brokendown.English)
	return out + " GMT"
}

// FormatRFC3339 renders instant under RFC 3339's
// "2006-01-02T15:04:05Z07:00" shape.
func FormatRFC3339(instant Instant, z Zone) string {
	return Format(iso8601Layout, instant, 0, z)
}

// FormatRFC3339Nano renders instant the way Go's time.RFC3339Nano does:
// a variable-width fractional second with trailing zeros trimmed, omitted
// entirely when the fraction is zero.
func FormatRFC3339Nano(instant Instant, fs Femtoseconds, z Zone) string {
	return Format(rfc3339NanoLayout, instant, fs, z)
}

// rfc3339NanoLayout is shared by FormatRFC3339Nano and ParseRFC3339 so the
// two can't drift apart.
const rfc3339NanoLayout = "%E4Y-%m-%dT%H:%M:%E*S%:z"

// iso8601Layout is shared by FormatISO8601 and ParseISO8601.
const iso8601Layout = "%E4Y-%m-%dT%H:%M:%S%:z"

// ParseRFC3339 parses input under the RFC 3339 shape. The offset is always
// present in conformant input, so the interpreting zone never falls back
// to a caller-supplied one; an internal UTC zone is threaded through only
// to satisfy Parse's signature.
func ParseRFC3339(input string) (Instant, Femtoseconds, error) {
	return Parse(rfc3339NanoLayout, input, utcZone{})
}

// ParseISO8601 parses input under "2006-01-02T15:04:05-07:00".
func ParseISO8601(input string) (Instant, Femtoseconds, error) {
	return Parse(iso8601Layout, input, utcZone{})
}

// RangeOverDays returns a day-range iterator function over start to end
// inclusive, adapted from the teacher's RangeOverTimes. After the range is
// exhausted the function returns ok == false.
func RangeOverDays(start, end CivilSecond) func() (cs CivilSecond, ok bool) {
	cur := start.StartOfDay()
	last := end.StartOfDay()
	done := false
	return func() (CivilSecond, bool) {
		if done {
			return CivilSecond{}, false
		}
		if after(cur, last) {
			done = true
			return CivilSecond{}, false
		}
		date := cur
		next, ok := cur.Add(86400)
		if !ok {
			done = true
		}
		cur = next.StartOfDay()
		return date, true
	}
}

func after(a, b CivilSecond) bool {
	if a.Year != b.Year {
		return a.Year > b.Year
	}
	if a.Month != b.Month {
		return a.Month > b.Month
	}
	return a.Day > b.Day
}

// StartOfDay returns cs with its time-of-day fields zeroed, adapted from
// the teacher's TimeDateOnly.
func (cs CivilSecond) StartOfDay() CivilSecond {
	return CivilSecond{Year: cs.Year, Month: cs.Month, Day: cs.Day}
}

// ToTime converts instant, interpreted through z, to a standard library
// time.Time. Subsecond precision finer than a nanosecond is truncated,
// since time.Time cannot represent it.
func ToTime(instant Instant, fs Femtoseconds, z Zone) time.Time {
	lookup := z.Lookup(instant)
	cs := lookup.CS
	nanos := int(fs / 1_000_000)
	loc := time.FixedZone(lookup.Abbr, int(lookup.Offset))
	return time.Date(int(cs.Year), time.Month(cs.Month), cs.Day, cs.Hour, cs.Minute, cs.Second, nanos, loc)
}

// FromTime converts a standard library time.Time into an Instant and its
// femtosecond fraction.
func FromTime(t time.Time) (Instant, Femtoseconds) {
	return FromUnixSeconds(t.Unix()), Femtoseconds(t.Nanosecond()) * 1_000_000
}
