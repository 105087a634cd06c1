// Package utility holds small allocation-conscious helpers shared by the
// civiltime engine and its subpackages.
package utility

import "strings"

// BytesToString convert byte list to string through a strings.Builder.
//
// The builder's buffer is the one heap allocation; String returns it
// without a second copy.
func BytesToString(bytes ...byte) string {
	var sb = new(strings.Builder)
	for i := 0; i < len(bytes); i++ {
		sb.WriteByte(bytes[i])
	}
	return sb.String()
}

// DaysBefore[m] counts the number of days in a non-leap year
// before month m begins. There is an entry for m=12, counting
// the number of days before January of next year (365).
var DaysBefore = [...]int32{
	0,
	31,
	31 + 28,
	31 + 28 + 31,
	31 + 28 + 31 + 30,
	31 + 28 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30 + 31,
}

// 	// Add in days before this month.
// 	d += uint64(daysBefore[month-1])
// 	if isLeap(year) && month >= March {
// 		d++ // February 29
// 	}

// */

// Norm returns nhi, nlo such that
//	hi * base + lo == nhi * base + nlo
//	0 <= nlo < base
// From Go time package
// Example
// Normalize month, overflowing into year.
// m := int(month) - 1
// year, m = Norm(year, m, 12)
// month = Month(m) + 1
func Norm(hi, lo, base int64) (nhi, nlo int64) {
	if lo < 0 {
		n := (-lo-1)/base + 1
		hi -= n
		lo += n * base
	}
	if lo >= base {
		n := lo / base
		hi += n
		lo -= n * base
	}
	return hi, lo
}

// PowersOfTen is a precomputed table of 10^0 .. 10^18, used by the
// subsecond codec to scale a femtosecond count without repeated
// multiplication and without reaching for math.Pow's float64 path.
var PowersOfTen = [19]int64{
	1,
	10,
	100,
	1000,
	10000,
	100000,
	1000000,
	10000000,
	100000000,
	1000000000,
	10000000000,
	100000000000,
	1000000000000,
	10000000000000,
	100000000000000,
	1000000000000000,
	10000000000000000,
	100000000000000000,
	1000000000000000000,
}
