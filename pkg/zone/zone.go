// Package zone adapts Go's time.Location into the civiltime.Zone
// collaborator interface. Reading zoneinfo and resolving DST transition
// rules are Go's job (via time.LoadLocation); this package only reshapes
// what time.Time already tells us into the AbsoluteLookup/CivilLookup
// shapes the format/parse core expects, the same division of labor the
// teacher's OffsetForTime/LocationFromOffset helpers draw.
package zone

import (
	"sync/atomic"
	"time"

	"github.com/imarsman/civiltime"
)

// TZ wraps a *time.Location as a civiltime.Zone.
type TZ struct {
	loc *time.Location
}

// UTC is the distinguished zero-offset zone spec.md §6 requires
// (utc_time_zone()).
var UTC = TZ{loc: time.UTC}

// Load wraps time.LoadLocation, giving callers a civiltime.Zone for a
// named zone such as "America/Toronto". Reading the zoneinfo database
// itself is delegated entirely to the time package (spec.md §1 Non-goals).
func Load(name string) (TZ, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return TZ{}, err
	}
	return TZ{loc: loc}, nil
}

// Fixed returns a zone with a constant offset from UTC, backed by the same
// small cache the teacher's LocationFromOffset keeps to avoid allocating a
// *time.Location on every call.
func Fixed(offsetSeconds int) TZ {
	return TZ{loc: locationFromOffset(offsetSeconds)}
}

var locationAtomic atomic.Value

func init() {
	locationAtomic.Store(make(map[int]*time.Location))
}

// locationFromOffset get a location based on the offset seconds from UTC.
// Uses a cache of locations keyed by offset since there are only a few
// dozen UTC offsets actually observed in practice.
func locationFromOffset(offsetSec int) (location *time.Location) {
	cachedZones := locationAtomic.Load().(map[int]*time.Location)
	if l, ok := cachedZones[offsetSec]; ok {
		location = l
		return
	}
	location = time.FixedZone("", offsetSec)

	// Rebuild the cache rather than mutating it in place: the map is
	// shared via atomic.Value and must never be written to concurrently
	// while another goroutine holds it for reading.
	next := make(map[int]*time.Location, len(cachedZones)+1)
	for k, v := range cachedZones {
		next[k] = v
	}
	next[offsetSec] = location
	// Zones are in at most 15 minute increments; there are under 40
	// observed UTC offsets worldwide. Cap growth defensively.
	if len(next) > 64 {
		next = map[int]*time.Location{offsetSec: location}
	}
	locationAtomic.Store(next)
	return
}

// Lookup implements civiltime.Zone.
func (z TZ) Lookup(in civiltime.Instant) civiltime.AbsoluteLookup {
	t := time.Unix(in.Seconds, 0).In(z.loc)
	abbr, offset := t.Zone()
	y, mo, d := t.Date()
	h, mi, s := t.Clock()
	return civiltime.AbsoluteLookup{
		CS: civiltime.CivilSecond{
			Year: int64(y), Month: int(mo), Day: d,
			Hour: h, Minute: mi, Second: s,
		},
		Offset: int64(offset),
		IsDST:  t.IsDST(),
		Abbr:   abbr,
	}
}

// LookupCivil implements civiltime.Zone. Go's time.Date already resolves
// ambiguous (repeated) civil times to their earlier occurrence and
// nonexistent (skipped) civil times by normalizing forward, so pre is
// simply what time.Date computes; there is nothing left for this package
// to disambiguate.
func (z TZ) LookupCivil(cs civiltime.CivilSecond) civiltime.CivilLookup {
	t := time.Date(int(cs.Year), time.Month(cs.Month), cs.Day, cs.Hour, cs.Minute, cs.Second, 0, z.loc)
	return civiltime.CivilLookup{Pre: civiltime.FromUnixSeconds(t.Unix())}
}

// Name implements civiltime.Zone.
func (z TZ) Name() string {
	return z.loc.String()
}
