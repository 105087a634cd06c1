package civiltime

import (
	"math"

	"github.com/JohnCGriffin/overflow"
)

// Femtoseconds is a signed count of 10^-15 second. At the format/parse
// boundary the invariant is 0 <= fs < 1e15 (spec.md §3).
type Femtoseconds int64

// FemtosecondsPerSecond is 10^15, the width of one whole second in
// femtoseconds.
const FemtosecondsPerSecond Femtoseconds = 1_000_000_000_000_000

// Instant is a point on the absolute timeline: a signed Unix-epoch seconds
// offset plus a Femtoseconds fraction. Arithmetic saturates at the
// representable extremes rather than wrapping.
type Instant struct {
	Seconds     int64
	Subseconds  Femtoseconds
}

// MinInstant and MaxInstant are the saturating sentinels for the Unix
// seconds bijection (spec.md §6 ToUnixSeconds/FromUnixSeconds).
var (
	MinInstant = Instant{Seconds: math.MinInt64}
	MaxInstant = Instant{Seconds: math.MaxInt64}
)

// ToUnixSeconds returns the whole-second Unix timestamp, discarding the
// subsecond fraction.
func (in Instant) ToUnixSeconds() int64 {
	return in.Seconds
}

// FromUnixSeconds builds an Instant with a zero subsecond fraction from a
// Unix seconds count.
func FromUnixSeconds(sec int64) Instant {
	return Instant{Seconds: sec}
}

// AddSeconds shifts the instant by a signed seconds offset, saturating
// rather than wrapping on overflow.
func (in Instant) AddSeconds(offset int64) Instant {
	sum, ok := overflow.Add64(in.Seconds, offset)
	if !ok {
		if offset > 0 {
			return MaxInstant
		}
		return MinInstant
	}
	return Instant{Seconds: sum, Subseconds: in.Subseconds}
}
