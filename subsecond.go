package civiltime

import (
	"github.com/cockroachdb/apd"
	"github.com/imarsman/civiltime/pkg/utility"
)

const maxSubsecondDigits = 15

// encodeSubsecondDigits renders fs (which must satisfy 0 <= fs < 1e15) as
// exactly 15 decimal digits, zero-padded on the left, then returns the
// digits with trailing zeros trimmed. An empty result means the fraction
// was exactly zero.
func encodeSubsecondDigits(fs Femtoseconds) string {
	digits := encodeInt(int64(fs), maxSubsecondDigits)
	i := len(digits)
	for i > 0 && digits[i-1] == '0' {
		i--
	}
	return digits[:i]
}

// encodeSubsecondsDot renders the %E*S-flavored fractional second: "." plus
// the trimmed digits, or nothing at all when the fraction is zero.
func encodeSubsecondsDot(fs Femtoseconds) string {
	digits := encodeSubsecondDigits(fs)
	if digits == "" {
		return ""
	}
	return "." + digits
}

// encodeSubsecondsFraction renders the %E*f-flavored fraction: the trimmed
// digits, or "0" when the fraction is exactly zero.
func encodeSubsecondsFraction(fs Femtoseconds) string {
	digits := encodeSubsecondDigits(fs)
	if digits == "" {
		return "0"
	}
	return digits
}

// clampWidth caps n to [0, 1024] per the specifier grammar, then further
// caps the *rendered* width to 18 digits: cctz-derived implementations
// agree to treat any n > 18 identically to n == 18 since a femtosecond
// count only carries 15 significant digits of precision in the first
// place.
func clampWidth(n int) int {
	if n < 0 {
		n = 0
	}
	if n > 1024 {
		n = 1024
	}
	if n > 18 {
		n = 18
	}
	return n
}

// scaleToWidth computes the decimal value shown when a femtosecond count is
// rendered at exactly n digits of precision: fs * 10^(n-15) for n >= 15,
// else fs / 10^(15-n). The shift is done with github.com/cockroachdb/apd's
// arbitrary-precision decimal context (the same Mul/QuoInteger +
// Condition.Inexact() idiom imarsman/datetime's period package uses for
// its own large-magnitude arithmetic) so a width pushed toward its capped
// maximum of 18 can't silently round away precision.
func scaleToWidth(fs Femtoseconds, n int) (int64, error) {
	ctx := apd.BaseContext.WithPrecision(40)
	value := apd.New(int64(fs), 0)
	result := new(apd.Decimal)

	if n >= maxSubsecondDigits {
		multiplier := apd.New(utility.PowersOfTen[n-maxSubsecondDigits], 0)
		cond, err := ctx.Mul(result, value, multiplier)
		if err != nil {
			return 0, err
		}
		if cond.Inexact() {
			return 0, errInexactSubsecondScale
		}
	} else {
		divisor := apd.New(utility.PowersOfTen[maxSubsecondDigits-n], 0)
		cond, err := ctx.QuoInteger(result, value, divisor)
		if err != nil {
			return 0, err
		}
		if cond.Inexact() {
			return 0, errInexactSubsecondScale
		}
	}
	return result.Int64()
}

// encodeSubsecondsWidth renders the %E#S/%E#f shown value at exactly n
// digits (n already clamped to [0, 18]). dot selects the %E#S rendering
// ("." + digits, empty dot when n == 0) versus %E#f (just the digits,
// nothing at all when n == 0).
func encodeSubsecondsWidth(fs Femtoseconds, n int, dot bool) string {
	n = clampWidth(n)
	if n == 0 {
		return ""
	}
	shown, err := scaleToWidth(fs, n)
	if err != nil {
		// Formatting never fails (spec.md §7); fall back to the
		// zero-padded literal truncation if the decimal shift somehow
		// reports inexactness.
		shown = int64(fs)
		if n < maxSubsecondDigits {
			shown /= utility.PowersOfTen[maxSubsecondDigits-n]
		}
	}
	digits := encodeInt(shown, n)
	if dot {
		return "." + digits
	}
	return digits
}

// decodeSubseconds reads up to 15 ASCII digits (further digits are
// consumed but ignored) and scales the accumulated value up to a
// femtosecond count. Zero digits read is a failure.
func decodeSubseconds(cr *charRange) (fs Femtoseconds, ok bool) {
	var value int64
	digits := 0
	for {
		b, has := cr.peek()
		if !has || b < '0' || b > '9' {
			break
		}
		if digits < maxSubsecondDigits {
			value = value*10 + int64(b-'0')
		}
		digits++
		cr.advance(1)
	}
	if digits == 0 {
		return 0, false
	}
	used := digits
	if used > maxSubsecondDigits {
		used = maxSubsecondDigits
	}
	value *= utility.PowersOfTen[maxSubsecondDigits-used]
	return Femtoseconds(value), true
}
