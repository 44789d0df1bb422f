package sync

// InterpDurationS is the window over which a location's last known
// move is extrapolated forward (spec.md §4.7: "a 5-second client-side
// linear extrapolating interpolation").
const InterpDurationS = 5.0

// CelestialLerp tracks one moved location's extrapolation state,
// installed whenever a locations-refresh tick observes a changed
// position.
type CelestialLerp struct {
	FromRX, FromRY float64
	ToRX, ToRY     float64
	ElapsedS       float64
}

// Install starts a fresh lerp from the location's last-rendered
// position toward its freshly-polled one.
func Install(fromRX, fromRY, toRX, toRY float64) CelestialLerp {
	return CelestialLerp{FromRX: fromRX, FromRY: fromRY, ToRX: toRX, ToRY: toRY}
}

// Advance steps elapsed time and returns the extrapolated position.
// Per spec.md §4.7 the interpolation is NOT clamped: positions keep
// advancing at the same velocity past elapsed = InterpDurationS until
// the next poll installs a fresh lerp, eliminating the pause between
// polls.
func Advance(l *CelestialLerp, dtS float64) (rx, ry float64) {
	l.ElapsedS += dtS
	frac := l.ElapsedS / InterpDurationS
	rx = l.FromRX + (l.ToRX-l.FromRX)*frac
	ry = l.FromRY + (l.ToRY-l.FromRY)*frac
	return rx, ry
}
