package civiltime

import "github.com/imarsman/civiltime/pkg/utility"

// offsetMode selects one of the four textual shapes spec.md §4.2 describes
// for the signed-seconds UTC offset, named after the %z family of
// specifiers that select them.
type offsetMode struct {
	sep   byte // 0 means no separator (%z); ':' for the %:z family
	full  bool // mode[1] == '*': always render seconds (%::z, %:::z)
	elide bool // mode[2] == ':': elide a zero :SS, then a zero :MM (%:::z)
}

var (
	offsetModeNone  = offsetMode{}
	offsetModeColon = offsetMode{sep: ':'}
	offsetModeFull  = offsetMode{sep: ':', full: true}
	offsetModeElide = offsetMode{sep: ':', full: true, elide: true}
)

const maxOffsetSeconds = 24 * 3600

// encodeOffset renders a signed UTC offset (bounded to +/-24h) under the
// given mode. When seconds are suppressed and both hours and minutes
// render as zero, the sign is forced to '+' so a small negative offset
// never renders as "-00:00".
func encodeOffset(offsetSeconds int64, mode offsetMode) string {
	neg := offsetSeconds < 0
	abs := offsetSeconds
	if neg {
		abs = -abs
	}
	hours := int(abs / 3600)
	minutes := int((abs % 3600) / 60)
	seconds := int(abs % 60)

	showSeconds := mode.full
	showMinutes := true
	if mode.full && mode.elide {
		if seconds == 0 {
			showSeconds = false
			if minutes == 0 {
				showMinutes = false
			}
		}
	}

	if !showSeconds && hours == 0 && minutes == 0 {
		neg = false
	}

	sign := byte('+')
	if neg {
		sign = '-'
	}

	out := make([]byte, 0, 16)
	out = append(out, sign)
	out = append(out, encodeTwoDigit(hours)...)
	if showMinutes {
		if mode.sep != 0 {
			out = append(out, mode.sep)
		}
		out = append(out, encodeTwoDigit(minutes)...)
	}
	if showSeconds {
		if mode.sep != 0 {
			out = append(out, mode.sep)
		}
		out = append(out, encodeTwoDigit(seconds)...)
	}
	return utility.BytesToString(out...)
}

// peekFixedDigits consumes exactly width ASCII digit bytes if that many are
// present at the cursor, regardless of the digits' numeric value; the
// caller is responsible for range-checking. On failure the cursor is left
// untouched, so an absent optional component never partially consumes.
func peekFixedDigits(cr *charRange, width int) (value int64, present bool) {
	rem := cr.remaining()
	if len(rem) < width {
		return 0, false
	}
	for i := 0; i < width; i++ {
		c := rem[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		value = value*10 + int64(c-'0')
	}
	cr.advance(width)
	return value, true
}

// decodeOffset accepts a literal 'Z' meaning zero, otherwise a required
// sign followed by exactly two hour digits, then optionally (respecting
// sep, if non-zero) exactly two minute digits, then optionally exactly two
// second digits. A shorter trailing component is simply absent; anything
// malformed fails.
func decodeOffset(cr *charRange, sep byte) (offsetSeconds int64, ok bool) {
	if cr.consumeLiteral('Z') || cr.consumeLiteral('z') {
		return 0, true
	}

	neg := false
	if cr.consumeLiteral('-') {
		neg = true
	} else if !cr.consumeLiteral('+') {
		return 0, false
	}

	hours, present := peekFixedDigits(cr, 2)
	if !present || hours > 23 {
		return 0, false
	}
	total := hours * 3600

	if sep == 0 {
		if minutes, present := peekFixedDigits(cr, 2); present {
			if minutes > 59 {
				return 0, false
			}
			total += minutes * 60
			if seconds, present := peekFixedDigits(cr, 2); present {
				if seconds > 59 {
					return 0, false
				}
				total += seconds
			}
		}
	} else if cr.consumeLiteral(sep) {
		minutes, present := peekFixedDigits(cr, 2)
		if !present || minutes > 59 {
			return 0, false
		}
		total += minutes * 60
		if cr.consumeLiteral(sep) {
			seconds, present := peekFixedDigits(cr, 2)
			if !present || seconds > 59 {
				return 0, false
			}
			total += seconds
		}
	}

	if neg {
		total = -total
	}
	return total, true
}
