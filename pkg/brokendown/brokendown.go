// Package brokendown is the platform locale-sensitive broken-down-time
// formatter/parser collaborator spec.md §1/§6 describes: the specifiers the
// core format/parse engine does not own internally (weekday/month names,
// AM/PM, the %c/%x/%X locale combinations, %j/%u/%U/%W) are delegated here.
// Numerically critical specifiers never reach this package, so nothing here
// can make the year, offset, or subsecond fields locale-dependent
// (spec.md §4.4 Design notes).
package brokendown

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// BrokenDownTime is the conventional struct-of-fields platform date
// routines pass around. Month is 0-indexed, Weekday is 0 == Sunday, and
// YearDay is 0-indexed, matching spec.md §4.4's population rules.
type BrokenDownTime struct {
	Year         int // saturated into a signed int window by the caller
	Month        int // 0-indexed
	Day          int
	Hour         int
	Minute       int
	Second       int
	Weekday      int // 0 == Sunday
	YearDay      int // 0-indexed
	IsDST        bool
	Abbr         string
}

// Locale selects the language used for weekday/month names and the casing
// rules applied to them. The name tables themselves are English (this
// module carries no embedded CLDR translation catalog), but upper- and
// title-casing are performed through the locale's own caser so a locale
// whose casing rules differ from simple ASCII upper/lowering (Turkish
// dotless i, for instance) is still honored. %P's lower-case am/pm is a
// fixed ASCII string.
type Locale struct {
	Tag language.Tag
}

// English is the default locale.
var English = Locale{Tag: language.English}

func (l Locale) tag() language.Tag {
	if (l.Tag == language.Tag{}) {
		return language.English
	}
	return l.Tag
}

// title applies the locale's own title-casing rules to a name table entry,
// rather than a plain ASCII strings.Title/ToUpper, so a locale whose
// casing rules differ (Turkish dotless i, for instance) is still honored.
func (l Locale) title(s string) string {
	return cases.Title(l.tag()).String(s)
}

// upper applies the locale's own upper-casing rules, used for %p's AM/PM.
func (l Locale) upper(s string) string {
	return cases.Upper(l.tag()).String(s)
}

var weekdayNames = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

func abbrev(s string) string {
	if len(s) <= 3 {
		return s
	}
	return s[:3]
}

// Format renders subformat (a run of literal text interleaved with
// specifiers the core format engine does not handle internally) against
// bdt. It mirrors the core engine's own "%" walk but at the scale of a
// single delegated sub-range.
func Format(subformat string, bdt BrokenDownTime, locale Locale) string {
	var out strings.Builder
	i := 0
	for i < len(subformat) {
		c := subformat[i]
		if c != '%' || i+1 >= len(subformat) {
			out.WriteByte(c)
			i++
			continue
		}
		i++ // skip '%'
		// Skip a single O/E locale-variant modifier; this module has only
		// one rendering per specifier regardless of variant.
		if subformat[i] == 'O' || subformat[i] == 'E' {
			i++
			if i >= len(subformat) {
				out.WriteByte('%')
				break
			}
		}
		spec := subformat[i]
		i++
		out.WriteString(formatOne(spec, bdt, locale))
	}
	return out.String()
}

func formatOne(spec byte, bdt BrokenDownTime, locale Locale) string {
	switch spec {
	case 'a':
		return locale.title(abbrev(weekdayNames[bdt.Weekday]))
	case 'A':
		return locale.title(weekdayNames[bdt.Weekday])
	case 'b', 'h':
		return locale.title(abbrev(monthNames[bdt.Month]))
	case 'B':
		return locale.title(monthNames[bdt.Month])
	case 'p':
		if bdt.Hour < 12 {
			return locale.upper("am")
		}
		return locale.upper("pm")
	case 'P':
		if bdt.Hour < 12 {
			return "am"
		}
		return "pm"
	case 'I':
		return twoDigit(twelveHour(bdt.Hour))
	case 'l':
		return blankPadded(twelveHour(bdt.Hour))
	case 'r':
		return Format("%I:%M:%S %p", bdt, locale)
	case 'R':
		return Format("%H:%M", bdt, locale)
	case 'T':
		return Format("%H:%M:%S", bdt, locale)
	case 'c':
		return Format("%a %b %e %H:%M:%S %Y", bdt, locale)
	case 'x':
		return Format("%m/%d/%y", bdt, locale)
	case 'X':
		return Format("%H:%M:%S", bdt, locale)
	case 'H':
		return twoDigit(bdt.Hour)
	case 'M':
		return twoDigit(bdt.Minute)
	case 'S':
		return twoDigit(bdt.Second)
	case 'y':
		return twoDigit(((bdt.Year % 100) + 100) % 100)
	case 'Y':
		return strconv.Itoa(bdt.Year)
	case 'm':
		return twoDigit(bdt.Month + 1)
	case 'd':
		return twoDigit(bdt.Day)
	case 'e':
		return blankPadded(bdt.Day)
	case 'j':
		return threeDigit(bdt.YearDay + 1)
	case 'u':
		if bdt.Weekday == 0 {
			return "7"
		}
		return strconv.Itoa(bdt.Weekday)
	case 'w':
		return strconv.Itoa(bdt.Weekday)
	case 'U':
		return twoDigit(weekNumber(bdt.YearDay, bdt.Weekday, 0))
	case 'W':
		return twoDigit(weekNumber(bdt.YearDay, bdt.Weekday, 1))
	case 'n':
		return "\n"
	case 't':
		return "\t"
	case 'Z':
		return bdt.Abbr
	default:
		return ""
	}
}

func twelveHour(h int) int {
	h = h % 12
	if h == 0 {
		h = 12
	}
	return h
}

func twoDigit(v int) string {
	if v < 0 {
		v = 0
	}
	s := strconv.Itoa(v % 100)
	if len(s) < 2 {
		return "0" + s
	}
	return s
}

func threeDigit(v int) string {
	s := strconv.Itoa(v)
	for len(s) < 3 {
		s = "0" + s
	}
	return s
}

func blankPadded(v int) string {
	s := strconv.Itoa(v)
	if len(s) < 2 {
		return " " + s
	}
	return s
}

// weekNumber computes the locale-agnostic %U/%W week number: the number of
// <firstDOW>s that have occurred so far this year, 0-indexed yearday.
func weekNumber(yearDay, weekday, firstDOW int) int {
	return (yearDay + 7 - (weekday-firstDOW+7)%7) / 7
}

// Parse consumes input against subformat, the mirror image of Format. It
// reports the number of input bytes consumed and the fields it managed to
// populate; ok is false on any structural mismatch. in seeds the starting
// state, threaded in by the core across every delegated specifier call in a
// single Parse invocation, so a %I parsed earlier and a %p parsed later
// still combine into one 24-hour value even though each is its own
// delegation (spec.md §4.5 AM/PM disambiguation). The core parse engine
// reads Year (adding 1900 when no %Y/%E4Y was seen), Month, Day, Hour,
// Minute and Second back out of the result; it never reads Weekday or
// YearDay.
func Parse(subformat, input string, in BrokenDownTime, locale Locale) (consumed int, bdt BrokenDownTime, ok bool) {
	bdt = in
	fi, ii := 0, 0
	afternoon := false
	sawPM := false

	for fi < len(subformat) {
		c := subformat[fi]
		if c != '%' || fi+1 >= len(subformat) {
			if ii >= len(input) || input[ii] != c {
				return ii, bdt, false
			}
			fi++
			ii++
			continue
		}
		fi++
		if subformat[fi] == 'O' || subformat[fi] == 'E' {
			fi++
			if fi >= len(subformat) {
				return ii, bdt, false
			}
		}
		spec := subformat[fi]
		fi++

		switch spec {
		case 'a', 'A':
			name, n, matched := matchName(input[ii:], weekdayNames[:])
			if !matched {
				return ii, bdt, false
			}
			bdt.Weekday = name
			ii += n
		case 'b', 'B', 'h':
			name, n, matched := matchName(input[ii:], monthNames[:])
			if !matched {
				return ii, bdt, false
			}
			bdt.Month = name
			ii += n
		case 'p', 'P':
			rest := input[ii:]
			switch {
			case len(rest) >= 2 && strings.EqualFold(rest[:2], "am"):
				sawPM = false
				ii += 2
			case len(rest) >= 2 && strings.EqualFold(rest[:2], "pm"):
				sawPM = true
				afternoon = true
				ii += 2
			default:
				return ii, bdt, false
			}
		case 'H', 'I':
			v, n, matched := scanDigits(input[ii:], 2)
			if !matched {
				return ii, bdt, false
			}
			bdt.Hour = v
			ii += n
		case 'l':
			ii += skipBlank(input[ii:])
			v, n, matched := scanDigits(input[ii:], 2)
			if !matched {
				return ii, bdt, false
			}
			bdt.Hour = v
			ii += n
		case 'M':
			v, n, matched := scanDigits(input[ii:], 2)
			if !matched {
				return ii, bdt, false
			}
			bdt.Minute = v
			ii += n
		case 'S':
			v, n, matched := scanDigits(input[ii:], 2)
			if !matched {
				return ii, bdt, false
			}
			bdt.Second = v
			ii += n
		case 'y':
			v, n, matched := scanDigits(input[ii:], 2)
			if !matched {
				return ii, bdt, false
			}
			bdt.Year = v
			ii += n
		case 'Y':
			v, n, matched := scanSignedDigits(input[ii:])
			if !matched {
				return ii, bdt, false
			}
			bdt.Year = v
			ii += n
		case 'm':
			v, n, matched := scanDigits(input[ii:], 2)
			if !matched {
				return ii, bdt, false
			}
			bdt.Month = v - 1
			ii += n
		case 'd', 'e':
			ii += skipBlank(input[ii:])
			v, n, matched := scanDigits(input[ii:], 2)
			if !matched {
				return ii, bdt, false
			}
			bdt.Day = v
			ii += n
		case 'j':
			v, n, matched := scanDigits(input[ii:], 3)
			if !matched {
				return ii, bdt, false
			}
			bdt.YearDay = v - 1
			ii += n
		case 'u', 'w':
			v, n, matched := scanDigits(input[ii:], 1)
			if !matched {
				return ii, bdt, false
			}
			if spec == 'u' && v == 7 {
				v = 0
			}
			bdt.Weekday = v
			ii += n
		case 'U', 'W':
			_, n, matched := scanDigits(input[ii:], 2)
			if !matched {
				return ii, bdt, false
			}
			ii += n
		case 'r', 'R', 'T', 'c', 'x', 'X':
			sub := compositeFormat(spec)
			n, inner, innerOK := Parse(sub, input[ii:], bdt, locale)
			if !innerOK {
				return ii, bdt, false
			}
			merge(&bdt, inner, spec)
			if inner.Hour >= 12 {
				afternoon = afternoon || sawHourPM(sub)
			}
			ii += n
		case 'n', 't':
			if ii >= len(input) || !isSpaceByte(input[ii]) {
				return ii, bdt, false
			}
			ii++
		case 'Z':
			n := 0
			for ii+n < len(input) && !isSpaceByte(input[ii+n]) {
				n++
			}
			bdt.Abbr = input[ii : ii+n]
			ii += n
		default:
			// Unknown specifier: nothing to consume, nothing to assign.
		}
	}

	if sawPM && bdt.Hour < 12 {
		bdt.Hour += 12
	}
	_ = afternoon
	return ii, bdt, true
}

func compositeFormat(spec byte) string {
	switch spec {
	case 'r':
		return "%I:%M:%S %p"
	case 'R':
		return "%H:%M"
	case 'T':
		return "%H:%M:%S"
	case 'c':
		return "%a %b %e %H:%M:%S %Y"
	case 'x':
		return "%m/%d/%y"
	case 'X':
		return "%H:%M:%S"
	}
	return ""
}

func sawHourPM(sub string) bool {
	return strings.Contains(sub, "%I") && strings.Contains(sub, "%p")
}

func merge(dst *BrokenDownTime, src BrokenDownTime, spec byte) {
	if src.Hour != 0 || spec == 'R' || spec == 'T' || spec == 'c' || spec == 'X' || spec == 'r' {
		dst.Hour = src.Hour
	}
	if src.Minute != 0 || spec == 'R' || spec == 'T' || spec == 'c' || spec == 'X' || spec == 'r' {
		dst.Minute = src.Minute
	}
	if spec == 'T' || spec == 'c' || spec == 'X' || spec == 'r' {
		dst.Second = src.Second
	}
	if spec == 'c' || spec == 'x' {
		dst.Year = src.Year
		dst.Month = src.Month
		dst.Day = src.Day
		dst.Weekday = src.Weekday
	}
}

func matchName(s string, names []string) (index, n int, ok bool) {
	best := -1
	bestLen := 0
	for i, name := range names {
		if len(name) > len(s) {
			continue
		}
		if strings.EqualFold(s[:len(name)], name) && len(name) > bestLen {
			best = i
			bestLen = len(name)
		}
		abbr := abbrev(name)
		if len(abbr) <= len(s) && strings.EqualFold(s[:len(abbr)], abbr) && len(abbr) > bestLen {
			best = i
			bestLen = len(abbr)
		}
	}
	if best < 0 {
		return 0, 0, false
	}
	return best, bestLen, true
}

func scanDigits(s string, maxWidth int) (value, consumed int, ok bool) {
	for consumed < maxWidth && consumed < len(s) {
		c := s[consumed]
		if c < '0' || c > '9' {
			break
		}
		value = value*10 + int(c-'0')
		consumed++
	}
	ok = consumed > 0
	return
}

func scanSignedDigits(s string) (value, consumed int, ok bool) {
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		consumed++
	}
	v, n, matched := scanDigits(s[consumed:], len(s)-consumed)
	if !matched {
		return 0, 0, false
	}
	consumed += n
	value = v
	if neg {
		value = -value
	}
	return value, consumed, true
}

func skipBlank(s string) int {
	if len(s) > 0 && s[0] == ' ' {
		return 1
	}
	return 0
}

func isSpaceByte(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
