package civiltime

import (
	"math"

	"github.com/imarsman/civiltime/pkg/utility"
)

// encodeInt writes the decimal representation of v, zero-padded to at least
// width characters (the sign, if any, counts against width), and returns
// the rendered string. It peels off the final digit before negating so the
// most-negative int64 never needs to be negated directly (spec.md §4.1).
func encodeInt(v int64, width int) string {
	neg := v < 0

	// Accumulate digits least-significant first without ever negating v,
	// since -v overflows when v == math.MinInt64.
	var digits [20]byte
	n := len(digits)

	if v == 0 {
		n--
		digits[n] = '0'
	}
	for v != 0 {
		// v%10 and v/10 are well defined (and carry v's sign) even at
		// math.MinInt64 since we never negate v itself.
		rem := v % 10
		if rem < 0 {
			rem = -rem
		}
		n--
		digits[n] = byte('0') + byte(rem)
		v /= 10
	}

	digitCount := len(digits) - n
	padWidth := width
	if neg {
		padWidth--
	}
	for digitCount < padWidth {
		n--
		digits[n] = '0'
		digitCount++
	}
	if neg {
		n--
		digits[n] = '-'
	}
	return utility.BytesToString(digits[n:]...)
}

// encodeTwoDigit renders a value known to fit in 0..99 as exactly two
// digits. Used for the many %02d fields (%m %d %H %M %S).
func encodeTwoDigit(v int) string {
	if v < 0 {
		v = -v
	}
	return utility.BytesToString(byte('0')+byte(v/10%10), byte('0')+byte(v%10))
}

// decodeInt reads an optional leading '-', then up to width ASCII digits (0
// disables the cap), accumulating with negative-sum arithmetic so the
// minimum representable value never needs negating. It fails if no digit
// was consumed or the result falls outside [lo, hi]. The minus sign counts
// against width when width > 0.
func decodeInt(cr *charRange, width int, lo, hi int64) (value int64, ok bool) {
	neg := false
	budget := width
	if b, has := cr.peek(); has && b == '-' {
		neg = true
		cr.advance(1)
		if budget > 0 {
			budget--
		}
	}

	var negAccum int64 // accumulated as a non-positive number throughout
	digits := 0
	for {
		if width > 0 && digits >= budget {
			break
		}
		b, has := cr.peek()
		if !has || b < '0' || b > '9' {
			break
		}
		d := int64(b - '0')
		if negAccum < (math.MinInt64+d)/10 {
			// One more digit would take the magnitude past int64.
			return 0, false
		}
		negAccum = negAccum*10 - d
		digits++
		cr.advance(1)
	}
	if digits == 0 {
		return 0, false
	}

	if neg {
		if negAccum < lo {
			return 0, false
		}
		return negAccum, true
	}
	if negAccum == math.MinInt64 {
		// The magnitude already exceeds the largest representable
		// positive int64; it cannot possibly satisfy hi <= MaxInt64.
		return 0, false
	}
	value = -negAccum
	if value > hi || value < lo {
		return 0, false
	}
	return value, true
}
