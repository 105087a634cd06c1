package civiltime_test

import (
	"testing"

	"github.com/imarsman/civiltime"
	"github.com/imarsman/civiltime/pkg/zone"
	"github.com/matryer/is"
)

func TestFormatBasicFields(t *testing.T) {
	is := is.New(t)

	instant := civiltime.FromUnixSeconds(1234567890) // 2009-02-13T23:31:30Z, a Friday
	got := civiltime.Format("%Y-%m-%d %H:%M:%S", instant, 0, zone.UTC)
	is.Equal(got, "2009-02-13 23:31:30")
}

func TestFormatBlankPaddedDay(t *testing.T) {
	is := is.New(t)

	cs := civiltime.CivilSecond{Year: 2009, Month: 2, Day: 5}
	instant := zone.UTC.LookupCivil(cs).Pre
	got := civiltime.Format("%e", instant, 0, zone.UTC)
	is.Equal(got, " 5")
}

func TestFormatOffsetShapes(t *testing.T) {
	is := is.New(t)

	instant := civiltime.FromUnixSeconds(0)
	fivethirty := zone.Fixed(5*3600 + 30*60)

	is.Equal(civiltime.Format("%z", instant, 0, fivethirty), "+0530")
	is.Equal(civiltime.Format("%:z", instant, 0, fivethirty), "+05:30")
	is.Equal(civiltime.Format("%::z", instant, 0, fivethirty), "+05:30:00")
	is.Equal(civiltime.Format("%:::z", instant, 0, fivethirty), "+05:30")

	// Zero offset: %:::z elides both the zero minutes and zero seconds.
	is.Equal(civiltime.Format("%:::z", instant, 0, zone.UTC), "+00")
}

func TestFormatE4Year(t *testing.T) {
	is := is.New(t)

	cs := civiltime.CivilSecond{Year: 9, Month: 1, Day: 1}
	instant := zone.UTC.LookupCivil(cs).Pre
	is.Equal(civiltime.Format("%E4Y", instant, 0, zone.UTC), "0009")
}

func TestFormatSubsecondWidths(t *testing.T) {
	is := is.New(t)

	instant := civiltime.FromUnixSeconds(1234567890)
	fs := civiltime.Femtoseconds(250) * 1_000_000_000_000 // 0.250s

	is.Equal(civiltime.Format("%E3S", instant, fs, zone.UTC), "30.250")
	is.Equal(civiltime.Format("%E3f", instant, fs, zone.UTC), "250")
	// %E*S/%E*f trim trailing zeros: .250 and .25 denote the same fraction.
	is.Equal(civiltime.Format("%E*S", instant, fs, zone.UTC), "30.25")
	is.Equal(civiltime.Format("%E*f", instant, fs, zone.UTC), "25")

	is.Equal(civiltime.Format("%E*S", instant, 0, zone.UTC), "30")
	is.Equal(civiltime.Format("%E*f", instant, 0, zone.UTC), "0")
	is.Equal(civiltime.Format("%E3S", instant, 0, zone.UTC), "30.000")
}

func TestFormatPercentLiteral(t *testing.T) {
	is := is.New(t)

	instant := civiltime.FromUnixSeconds(1234567890)
	is.Equal(civiltime.Format("100%%", instant, 0, zone.UTC), "100%")
	is.Equal(civiltime.Format("trailing%", instant, 0, zone.UTC), "trailing%")
}

func TestFormatUnixSeconds(t *testing.T) {
	is := is.New(t)

	instant := civiltime.FromUnixSeconds(1234567890)
	is.Equal(civiltime.Format("%s", instant, 0, zone.UTC), "1234567890")
}

func TestFormatDelegatedNames(t *testing.T) {
	is := is.New(t)

	instant := civiltime.FromUnixSeconds(1234567890) // Friday, 23:31, February
	got := civiltime.Format("%A %B %p", instant, 0, zone.UTC)
	is.Equal(got, "Friday February PM")
}
