package civiltime

import (
	"math"
	"strings"

	"github.com/JohnCGriffin/overflow"
	"github.com/imarsman/civiltime/pkg/brokendown"
	"github.com/imarsman/civiltime/pkg/calendar"
)

// parseState accumulates everything the lockstep walk learns about the
// input as it goes, mirroring the fields spec.md §4.5 describes (saw_year,
// saw_offset, saw_percent_s, twelve_hour, afternoon) plus the broken-down
// state threaded across every delegated specifier call.
type parseState struct {
	sawYear   bool
	year      int64
	sawMonth  bool
	month     int // 1-12
	sawDay    bool
	day       int
	sawHour   bool
	hour      int
	sawMinute bool
	minute    int
	sawSecond bool
	second    int

	sawOffset     bool
	offsetSeconds int64

	sawPercentS bool
	unixSeconds int64

	fs Femtoseconds

	twelveHour bool
	bdt        brokendown.BrokenDownTime
	zoneName   string
}

// Parse interprets input under formatStr, resolving the civil time against
// zone z, and returns the resulting Instant and its subsecond remainder.
// On failure err is one of the fixed diagnostics spec.md §6/§7 names.
func Parse(formatStr, input string, z Zone) (Instant, Femtoseconds, error) {
	return ParseLocale(formatStr, input, z, brokendown.English)
}

// ParseLocale is Parse with an explicit locale for the delegated
// specifiers (weekday/month names, %p, %c/%x/%X).
func ParseLocale(formatStr, input string, z Zone, locale brokendown.Locale) (Instant, Femtoseconds, error) {
	fcr := newCharRange(formatStr)
	icr := newCharRange(input)
	var st parseState

	for !fcr.empty() {
		fb, _ := fcr.peek()

		if isASCIISpace(fb) {
			fcr.stripLeadingSpace()
			icr.stripLeadingSpace()
			continue
		}

		if fb != '%' {
			if !icr.consumeLiteral(fb) {
				return Instant{}, 0, errFailedToParse
			}
			fcr.advance(1)
			continue
		}

		if err := parseOneSpecifier(fcr, icr, &st, locale); err != nil {
			return Instant{}, 0, err
		}
	}

	icr.stripLeadingSpace()
	if !icr.empty() {
		return Instant{}, 0, errTrailingData
	}

	if st.sawPercentS {
		return FromUnixSeconds(st.unixSeconds), 0, nil
	}

	fs := st.fs

	year := st.year
	if !st.sawYear {
		widened, ok := overflow.Add64(1900, int64(st.bdt.Year))
		if !ok {
			return Instant{}, 0, errOutOfRangeYear
		}
		year = widened
	}

	month := st.month
	if !st.sawMonth {
		month = st.bdt.Month + 1
	}
	day := st.day
	if !st.sawDay {
		day = st.bdt.Day
	}
	if day == 0 {
		day = 1
	}
	hour := st.hour
	if !st.sawHour {
		hour = st.bdt.Hour
	}
	minute := st.minute
	if !st.sawMinute {
		minute = st.bdt.Minute
	}
	second := st.second
	if !st.sawSecond {
		second = st.bdt.Second
	}
	offsetSeconds := st.offsetSeconds

	// Leap-second normalization (spec.md §4.5 step 4): 23:59:60 carries
	// forward to the following 00:00:00 rather than being rejected.
	if second == 60 {
		second--
		offsetSeconds--
		fs = 0
	}

	if !normalizedDayMonth(year, month, day) {
		return Instant{}, 0, errOutOfRangeFld
	}

	cs := CivilSecond{Year: year, Month: month, Day: day, Hour: hour, Minute: minute, Second: second}

	shifted, ok := cs.Sub(offsetSeconds)
	if !ok {
		return Instant{}, 0, errOutOfRangeFld
	}

	interpretingZone := z
	if st.sawOffset {
		interpretingZone = utcZone{}
	}

	lookup := interpretingZone.LookupCivil(shifted)
	if lookup.Saturated {
		atExtreme := shifted.Year <= MinCivilSecond.Year || shifted.Year >= MaxCivilSecond.Year
		if !atExtreme {
			return Instant{}, 0, errOutOfRangeFld
		}
	}
	return lookup.Pre, fs, nil
}

func parseOneSpecifier(fcr, icr *charRange, st *parseState, locale brokendown.Locale) error {
	spec, width, length, handled := matchInternalParseSpecifier(fcr.remaining())
	if handled {
		fcr.advance(length)
		return decodeInternalSpecifier(spec, width, icr, st)
	}

	// Not internally handled: delegate a single specifier (the literal
	// bytes consumed from format, including any E/O modifier) to the
	// broken-down-time collaborator, threading st.bdt across every such
	// call so a %I parsed earlier and a %p parsed later still combine
	// (spec.md §4.5 AM/PM disambiguation).
	sub, letter, ok := nextDelegatedSpecifier(fcr)
	if !ok {
		return errFailedToParse
	}
	switch letter {
	case 'I', 'l', 'r':
		st.twelveHour = true
	case 'R', 'T', 'c', 'X':
		st.twelveHour = false
	}
	if len(sub) == 3 && sub[1] == 'O' {
		if letter == 'H' {
			st.twelveHour = false
		}
		if letter == 'I' {
			st.twelveHour = true
		}
	}

	consumed, bdt, ok := brokendown.Parse(sub, icr.remaining(), st.bdt, locale)
	if !ok {
		return errFailedToParse
	}
	icr.advance(consumed)
	st.bdt = bdt
	return nil
}

// nextDelegatedSpecifier consumes one specifier from fcr (the '%', an
// optional single E/O modifier, and the specifier letter) and returns the
// exact bytes consumed plus the bare specifier letter.
func nextDelegatedSpecifier(fcr *charRange) (sub string, letter byte, ok bool) {
	start := fcr.s[fcr.pos:]
	if len(start) < 2 {
		return "", 0, false
	}
	n := 2 // '%' + first char
	if start[1] == 'O' || start[1] == 'E' {
		if len(start) < 3 {
			return "", 0, false
		}
		n = 3
	}
	letter = start[n-1]
	sub = start[:n]
	fcr.advance(n)
	return sub, letter, true
}

type internalParseSpecifier int

const (
	pspecYear internalParseSpecifier = iota
	pspecE4Year
	pspecMonth
	pspecDay
	pspecHour
	pspecMinute
	pspecSecond
	pspecOffsetNone
	pspecOffsetColon
	pspecZoneName
	pspecUnixSeconds
	pspecSubsecDotAny
	pspecSubsecFracAny
)

// matchInternalParseSpecifier is parse's mirror of
// matchInternalFormatSpecifier: the ':'-separated offset specifiers (%:z,
// %::z, %:::z, %Ez, %E*z) all decode identically (only their rendering
// differs), so they collapse to one pspecOffsetColon case here.
func matchInternalParseSpecifier(s string) (spec internalParseSpecifier, width, length int, ok bool) {
	switch {
	case strings.HasPrefix(s, "%:::z"):
		return pspecOffsetColon, 0, 5, true
	case strings.HasPrefix(s, "%::z"):
		return pspecOffsetColon, 0, 4, true
	case strings.HasPrefix(s, "%:z"):
		return pspecOffsetColon, 0, 3, true
	case strings.HasPrefix(s, "%Ez"):
		return pspecOffsetColon, 0, 3, true
	case strings.HasPrefix(s, "%E*z"):
		return pspecOffsetColon, 0, 4, true
	case strings.HasPrefix(s, "%z"):
		return pspecOffsetNone, 0, 2, true
	case strings.HasPrefix(s, "%E4Y"):
		return pspecE4Year, 4, 4, true
	case strings.HasPrefix(s, "%E*S"):
		return pspecSubsecDotAny, 0, 4, true
	case strings.HasPrefix(s, "%E*f"):
		return pspecSubsecFracAny, 0, 4, true
	case strings.HasPrefix(s, "%E"):
		if w, l, letter, matched := scanEWidth(s[2:]); matched {
			switch letter {
			case 'S':
				return pspecSubsecDotAny, w, 2 + l + 1, true
			case 'f':
				return pspecSubsecFracAny, w, 2 + l + 1, true
			}
		}
	case strings.HasPrefix(s, "%Y"):
		return pspecYear, 0, 2, true
	case strings.HasPrefix(s, "%m"):
		return pspecMonth, 0, 2, true
	case strings.HasPrefix(s, "%d"):
		return pspecDay, 0, 2, true
	case strings.HasPrefix(s, "%e"):
		return pspecDay, 0, 2, true
	case strings.HasPrefix(s, "%H"):
		return pspecHour, 0, 2, true
	case strings.HasPrefix(s, "%M"):
		return pspecMinute, 0, 2, true
	case strings.HasPrefix(s, "%S"):
		return pspecSecond, 0, 2, true
	case strings.HasPrefix(s, "%Z"):
		return pspecZoneName, 0, 2, true
	case strings.HasPrefix(s, "%s"):
		return pspecUnixSeconds, 0, 2, true
	}
	return 0, 0, 0, false
}

func decodeInternalSpecifier(spec internalParseSpecifier, width int, icr *charRange, st *parseState) error {
	switch spec {
	case pspecYear:
		v, ok := decodeInt(icr, 0, math.MinInt64, math.MaxInt64)
		if !ok {
			return errFailedToParse
		}
		st.year, st.sawYear = v, true
	case pspecE4Year:
		v, ok := decodeInt(icr, width, -999, 9999)
		if !ok {
			return errFailedToParse
		}
		st.year, st.sawYear = v, true
	case pspecMonth:
		v, ok := decodeInt(icr, 2, 1, 12)
		if !ok {
			return errFailedToParse
		}
		st.month, st.sawMonth = int(v), true
	case pspecDay:
		v, ok := decodeDayLike(icr)
		if !ok {
			return errFailedToParse
		}
		st.day, st.sawDay = int(v), true
	case pspecHour:
		v, ok := decodeInt(icr, 2, 0, 23)
		if !ok {
			return errFailedToParse
		}
		st.hour, st.sawHour = int(v), true
		st.twelveHour = false
	case pspecMinute:
		v, ok := decodeInt(icr, 2, 0, 59)
		if !ok {
			return errFailedToParse
		}
		st.minute, st.sawMinute = int(v), true
	case pspecSecond:
		v, ok := decodeInt(icr, 2, 0, 60)
		if !ok {
			return errFailedToParse
		}
		st.second, st.sawSecond = int(v), true
	case pspecOffsetNone:
		v, ok := decodeOffset(icr, 0)
		if !ok {
			return errFailedToParse
		}
		st.offsetSeconds, st.sawOffset = v, true
	case pspecOffsetColon:
		v, ok := decodeOffset(icr, ':')
		if !ok {
			return errFailedToParse
		}
		st.offsetSeconds, st.sawOffset = v, true
	case pspecZoneName:
		n := 0
		rem := icr.remaining()
		for n < len(rem) && !isASCIISpace(rem[n]) {
			n++
		}
		st.zoneName = rem[:n]
		icr.advance(n)
	case pspecUnixSeconds:
		v, ok := decodeInt(icr, 0, math.MinInt64, math.MaxInt64)
		if !ok {
			return errFailedToParse
		}
		st.unixSeconds, st.sawPercentS = v, true
	case pspecSubsecDotAny:
		v, ok := decodeInt(icr, 2, 0, 60)
		if !ok {
			return errFailedToParse
		}
		st.second, st.sawSecond = int(v), true
		if icr.consumeLiteral('.') {
			fs, ok := decodeSubseconds(icr)
			if !ok {
				return errFailedToParse
			}
			st.fs = fs
		}
	case pspecSubsecFracAny:
		if b, has := icr.peek(); has && b >= '0' && b <= '9' {
			fs, ok := decodeSubseconds(icr)
			if !ok {
				return errFailedToParse
			}
			st.fs = fs
		}
	}
	return nil
}

// decodeDayLike parses %d/%e: two digits, or (for the blank-padded %e
// rendering) a single space followed by one digit.
func decodeDayLike(icr *charRange) (int64, bool) {
	if b, has := icr.peek(); has && b == ' ' {
		icr.advance(1)
		return decodeInt(icr, 1, 1, 9)
	}
	return decodeInt(icr, 2, 1, 31)
}

// utcZone is the distinguished zero-offset zone used when the interpreting
// zone is chosen as UTC (spec.md §4.5 step 3), independent of any concrete
// Zone implementation the caller supplied.
type utcZone struct{}

func (utcZone) Lookup(in Instant) AbsoluteLookup {
	days := floorDivInt64(in.Seconds, 86400)
	rem := in.Seconds - days*86400
	y, m, d := calendar.CivilFromDays(days)
	return AbsoluteLookup{
		CS: CivilSecond{
			Year: y, Month: m, Day: d,
			Hour: int(rem / 3600), Minute: int(rem / 60 % 60), Second: int(rem % 60),
		},
		Abbr: "UTC",
	}
}

func (utcZone) LookupCivil(cs CivilSecond) CivilLookup {
	days := calendar.DaysFromCivil(cs.Year, cs.Month, cs.Day)
	seconds := days*86400 + int64(cs.Hour)*3600 + int64(cs.Minute)*60 + int64(cs.Second)
	return CivilLookup{Pre: FromUnixSeconds(seconds)}
}

func (utcZone) Name() string { return "UTC" }

func floorDivInt64(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
