package civiltime

// AbsoluteLookup is the result of asking the zone collaborator to translate
// an Instant into its civil representation (spec.md §3): the civil second,
// the signed offset east of UTC in effect, whether DST applies, and the
// zone's short abbreviation.
type AbsoluteLookup struct {
	CS     CivilSecond
	Offset int64
	IsDST  bool
	Abbr   string
}

// CivilLookup is the result of asking the zone collaborator to translate a
// CivilSecond back into an Instant (spec.md §3). Pre is the earlier of the
// two absolute instants when the civil time is ambiguous (a fall-back
// transition). Saturated reports whether Pre was clamped to the zone
// collaborator's own representable extreme, which Parse (§4.5 step 8)
// double-checks against CivilSecond's own extremes before accepting it.
type CivilLookup struct {
	Pre       Instant
	Saturated bool
}

// Zone is the zone-database collaborator spec.md §1 and §6 name as external
// to the format/parse core: absolute/civil lookup, a distinguished UTC
// zone, and the Unix-seconds bijection. Reading zoneinfo and resolving
// zone transition rules are explicitly out of scope for this module
// (spec.md §1 Non-goals); Zone is only the seam the core calls through.
type Zone interface {
	// Lookup translates an absolute Instant into its broken-down civil
	// representation under this zone.
	Lookup(Instant) AbsoluteLookup

	// LookupCivil translates a civil second, which this zone may consider
	// ambiguous (repeated) or nonexistent (skipped) without the core ever
	// needing to know which, into an absolute instant.
	LookupCivil(CivilSecond) CivilLookup

	// Name returns the zone's name or abbreviation, used only for display;
	// numerically critical decisions never depend on it (spec.md §4.4
	// Design notes).
	Name() string
}
