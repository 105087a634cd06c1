package civiltime

import (
	"strings"

	"github.com/imarsman/civiltime/pkg/brokendown"
)

// Format renders instant (with its fs fraction, which must satisfy
// 0 <= fs < 1e15) under formatStr, interpreting civil fields and the UTC
// offset through zone z. Format never fails; an unrecognized specifier
// simply contributes no output for that fragment (spec.md §6/§7).
func Format(formatStr string, instant Instant, fs Femtoseconds, z Zone) string {
	return FormatLocale(formatStr, instant, fs, z, brokendown.English)
}

// FormatLocale is Format with an explicit locale for the specifiers the
// broken-down-time collaborator owns (weekday/month names, %p, %c/%x/%X).
// Numerically critical specifiers (%Y, %m, %d, %H, %M, %S, %z family, %s,
// the subsecond family) never consult locale, by construction: the engine
// below never routes them through the collaborator (spec.md §4.4 Design
// notes).
func FormatLocale(formatStr string, instant Instant, fs Femtoseconds, z Zone, locale brokendown.Locale) string {
	lookup := z.Lookup(instant)
	bdt := populateBrokenDown(lookup)

	var out strings.Builder
	pendingStart := 0
	i := 0
	n := len(formatStr)

	flush := func(end int) {
		if end > pendingStart {
			out.WriteString(brokendown.Format(formatStr[pendingStart:end], bdt, locale))
		}
	}

	for i < n {
		if formatStr[i] != '%' {
			i++
			continue
		}
		if i+1 >= n {
			// Lone trailing '%': emit one '%' and stop.
			flush(i)
			out.WriteByte('%')
			pendingStart = n
			i = n
			break
		}
		if formatStr[i+1] == '%' {
			flush(i)
			out.WriteByte('%')
			i += 2
			pendingStart = i
			continue
		}

		spec, width, length, handled := matchInternalFormatSpecifier(formatStr[i:])
		if !handled {
			// Ride along in the pending ordinary run; the collaborator
			// owns this specifier.
			i += 2
			continue
		}
		flush(i)
		out.WriteString(encodeInternalSpecifier(spec, width, lookup, instant, fs))
		i += length
		pendingStart = i
	}
	flush(n)
	return out.String()
}

// internalSpecifier names one of the numerically-critical specifiers the
// format/parse engine owns directly rather than delegating.
type internalSpecifier int

const (
	specY internalSpecifier = iota
	specE4Y
	specMonth
	specDay
	specDayBlank
	specHour
	specMinute
	specSecond
	specOffsetNone
	specOffsetColon
	specOffsetFull
	specOffsetElide
	specZoneAbbr
	specUnixSeconds
	specSubsecDotStar
	specSubsecFracStar
	specSubsecDotWidth
	specSubsecFracWidth
)

// matchInternalFormatSpecifier reports whether s (which must start with
// '%') begins with one of the internally-handled specifiers, and if so
// which one, its width argument (for the %E#S/%E#f/%E4Y family), and the
// total length in bytes to advance past it.
func matchInternalFormatSpecifier(s string) (spec internalSpecifier, width, length int, ok bool) {
	switch {
	case strings.HasPrefix(s, "%:::z"):
		return specOffsetElide, 0, 5, true
	case strings.HasPrefix(s, "%::z"):
		return specOffsetFull, 0, 4, true
	case strings.HasPrefix(s, "%:z"):
		return specOffsetColon, 0, 3, true
	case strings.HasPrefix(s, "%Ez"):
		return specOffsetColon, 0, 3, true
	case strings.HasPrefix(s, "%E*z"):
		return specOffsetFull, 0, 4, true
	case strings.HasPrefix(s, "%z"):
		return specOffsetNone, 0, 2, true
	case strings.HasPrefix(s, "%E4Y"):
		return specE4Y, 4, 4, true
	case strings.HasPrefix(s, "%E*S"):
		return specSubsecDotStar, 0, 4, true
	case strings.HasPrefix(s, "%E*f"):
		return specSubsecFracStar, 0, 4, true
	case strings.HasPrefix(s, "%E"):
		if w, l, letter, matched := scanEWidth(s[2:]); matched {
			switch letter {
			case 'S':
				return specSubsecDotWidth, w, 2 + l + 1, true
			case 'f':
				return specSubsecFracWidth, w, 2 + l + 1, true
			}
		}
	case strings.HasPrefix(s, "%Y"):
		return specY, 0, 2, true
	case strings.HasPrefix(s, "%m"):
		return specMonth, 0, 2, true
	case strings.HasPrefix(s, "%d"):
		return specDay, 0, 2, true
	case strings.HasPrefix(s, "%e"):
		return specDayBlank, 0, 2, true
	case strings.HasPrefix(s, "%H"):
		return specHour, 0, 2, true
	case strings.HasPrefix(s, "%M"):
		return specMinute, 0, 2, true
	case strings.HasPrefix(s, "%S"):
		return specSecond, 0, 2, true
	case strings.HasPrefix(s, "%Z"):
		return specZoneAbbr, 0, 2, true
	case strings.HasPrefix(s, "%s"):
		return specUnixSeconds, 0, 2, true
	}
	return 0, 0, 0, false
}

// scanEWidth reads the <digits>S or <digits>f tail of an %E<N>S/%E<N>f
// specifier (the "%E" prefix already consumed). digits is capped well
// below the 1024 the grammar allows so a pathological format string can't
// force an unbounded scan.
func scanEWidth(s string) (width, digitLen int, letter byte, ok bool) {
	for digitLen < len(s) && digitLen < 5 && s[digitLen] >= '0' && s[digitLen] <= '9' {
		width = width*10 + int(s[digitLen]-'0')
		digitLen++
	}
	if digitLen == 0 || digitLen >= len(s) {
		return 0, 0, 0, false
	}
	letter = s[digitLen]
	if letter != 'S' && letter != 'f' {
		return 0, 0, 0, false
	}
	return width, digitLen, letter, true
}

func encodeInternalSpecifier(spec internalSpecifier, width int, lookup AbsoluteLookup, instant Instant, fs Femtoseconds) string {
	cs := lookup.CS
	switch spec {
	case specY:
		return encodeInt(cs.Year, 0)
	case specE4Y:
		return encodeInt(cs.Year, 4)
	case specMonth:
		return encodeTwoDigit(cs.Month)
	case specDay:
		return encodeTwoDigit(cs.Day)
	case specDayBlank:
		return blankPadTwoDigit(cs.Day)
	case specHour:
		return encodeTwoDigit(cs.Hour)
	case specMinute:
		return encodeTwoDigit(cs.Minute)
	case specSecond:
		return encodeTwoDigit(cs.Second)
	case specOffsetNone:
		return encodeOffset(lookup.Offset, offsetModeNone)
	case specOffsetColon:
		return encodeOffset(lookup.Offset, offsetModeColon)
	case specOffsetFull:
		return encodeOffset(lookup.Offset, offsetModeFull)
	case specOffsetElide:
		return encodeOffset(lookup.Offset, offsetModeElide)
	case specZoneAbbr:
		return lookup.Abbr
	case specUnixSeconds:
		return encodeInt(instant.ToUnixSeconds(), 0)
	case specSubsecDotStar:
		return encodeTwoDigit(cs.Second) + encodeSubsecondsDot(fs)
	case specSubsecFracStar:
		return encodeSubsecondsFraction(fs)
	case specSubsecDotWidth:
		return encodeTwoDigit(cs.Second) + encodeSubsecondsWidth(fs, width, true)
	case specSubsecFracWidth:
		return encodeSubsecondsWidth(fs, width, false)
	}
	return ""
}

// blankPadTwoDigit renders v as two characters with a leading '0' replaced
// by a space (the %e specifier).
func blankPadTwoDigit(v int) string {
	s := encodeTwoDigit(v)
	if s[0] == '0' {
		return " " + s[1:]
	}
	return s
}

// populateBrokenDown builds the broken-down-time structure the delegated
// collaborator sees: year saturated into a signed int window, month
// 0-indexed, weekday 0 == Sunday, year-day 0-indexed (spec.md §4.4).
func populateBrokenDown(lookup AbsoluteLookup) brokendown.BrokenDownTime {
	cs := lookup.CS
	return brokendown.BrokenDownTime{
		Year:    saturateToInt(cs.Year),
		Month:   cs.Month - 1,
		Day:     cs.Day,
		Hour:    cs.Hour,
		Minute:  cs.Minute,
		Second:  cs.Second,
		Weekday: cs.Weekday(),
		YearDay: cs.YearDay(),
		IsDST:   lookup.IsDST,
		Abbr:    lookup.Abbr,
	}
}

const (
	maxInt = int(^uint(0) >> 1)
	minInt = -maxInt - 1
)

func saturateToInt(y int64) int {
	if y > int64(maxInt) {
		return maxInt
	}
	if y < int64(minInt) {
		return minInt
	}
	return int(y)
}
