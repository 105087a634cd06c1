package civiltime_test

import (
	"testing"

	"github.com/imarsman/civiltime"
	"github.com/imarsman/civiltime/pkg/zone"
	"github.com/matryer/is"
)

func TestFormatISO8601(t *testing.T) {
	is := is.New(t)

	instant := civiltime.FromUnixSeconds(1234567890) // 2009-02-13T23:31:30Z
	got := civiltime.FormatISO8601(instant, zone.UTC)
	is.Equal(got, "2009-02-13T23:31:30+00:00")
}

func TestFormatISO8601Msec(t *testing.T) {
	is := is.New(t)

	instant := civiltime.FromUnixSeconds(1234567890)
	fs := civiltime.Femtoseconds(250) * 1_000_000_000_000
	got := civiltime.FormatISO8601Msec(instant, fs, zone.UTC)
	is.Equal(got, "2009-02-13T23:31:30.250+00:00")
}

func TestFormatRFC7232(t *testing.T) {
	is := is.New(t)

	instant := civiltime.FromUnixSeconds(1234567890)
	got := civiltime.FormatRFC7232(instant)
	is.Equal(got, "Fri, 13 Feb 2009 23:31:30 GMT")
}

func TestFormatRFC3339Nano(t *testing.T) {
	is := is.New(t)

	instant := civiltime.FromUnixSeconds(1234567890)

	is.Equal(civiltime.FormatRFC3339Nano(instant, 0, zone.UTC), "2009-02-13T23:31:30+00:00")
	is.Equal(
		civiltime.FormatRFC3339Nano(instant, civiltime.Femtoseconds(5)*1_000_000_000_000, zone.UTC),
		"2009-02-13T23:31:30.005+00:00",
	)
}

func TestParseRFC3339RoundTrip(t *testing.T) {
	is := is.New(t)

	instant, fs, err := civiltime.ParseRFC3339("2009-02-13T23:31:30.250+00:00")
	is.NoErr(err)
	is.Equal(instant.Seconds, int64(1234567890))
	is.Equal(fs, civiltime.Femtoseconds(250)*1_000_000_000_000)

	got := civiltime.FormatISO8601Msec(instant, fs, zone.UTC)
	is.Equal(got, "2009-02-13T23:31:30.250+00:00")
}

func TestParseRFC3339Offset(t *testing.T) {
	is := is.New(t)

	instant, _, err := civiltime.ParseRFC3339("2009-02-13T18:31:30-05:00")
	is.NoErr(err)
	is.Equal(instant.Seconds, int64(1234567890))
}

func TestRangeOverDays(t *testing.T) {
	is := is.New(t)

	start := civiltime.CivilSecond{Year: 2024, Month: 2, Day: 27}
	end := civiltime.CivilSecond{Year: 2024, Month: 3, Day: 2}

	var got []string
	next := civiltime.RangeOverDays(start, end)
	for {
		cs, ok := next()
		if !ok {
			break
		}
		got = append(got, civiltime.FormatISO8601Compact(mustInstant(cs), zone.UTC)[:8])
	}
	is.Equal(len(got), 5) // Feb 27, 28, 29 (leap), Mar 1, 2
	is.Equal(got[2], "20240229")
	is.Equal(got[4], "20240302")
}

func mustInstant(cs civiltime.CivilSecond) civiltime.Instant {
	lookup := zone.UTC.LookupCivil(cs)
	return lookup.Pre
}

func TestToTimeFromTimeRoundTrip(t *testing.T) {
	is := is.New(t)

	instant := civiltime.FromUnixSeconds(1234567890)
	fs := civiltime.Femtoseconds(500) * 1_000_000_000_000

	t1 := civiltime.ToTime(instant, fs, zone.UTC)
	backInstant, backFs := civiltime.FromTime(t1)
	is.Equal(backInstant, instant)
	is.Equal(backFs, fs)
}
