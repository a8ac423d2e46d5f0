package astro

import "fmt"

// Body identifies one of the charted celestial bodies.
//
// The numeric order is fixed and meaningful: it is the default iteration
// order for unordered pairs and the tie-break order for timeline events.
type Body int

const (
	Sun Body = iota
	Moon
	Mercury
	Venus
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
	Pluto
	TrueNode
)

// bodyCodes are the three-letter report codes, in Body order.
// They match the codes used by the original chart reports.
var bodyCodes = [...]string{
	"SOL", "LUA", "MER", "VEN", "MAR", "JUP", "SAT", "URA", "NET", "PLU", "TNN",
}

// Bodies returns all charted bodies in their fixed enumeration order.
// The returned slice is a fresh copy; callers may reorder it freely.
func Bodies() []Body {
	out := make([]Body, len(bodyCodes))
	for i := range out {
		out[i] = Body(i)
	}
	return out
}

// Valid reports whether b is one of the enumerated bodies.
func (b Body) Valid() bool {
	return b >= Sun && b <= TrueNode
}

// Code returns the three-letter report code (e.g. "SOL", "LUA").
func (b Body) Code() string {
	if !b.Valid() {
		return fmt.Sprintf("PL%d", int(b))
	}
	return bodyCodes[b]
}

// String implements fmt.Stringer.
func (b Body) String() string { return b.Code() }

// Position is a body's ecliptic state at a single instant.
//
// Lon is always normalized to [0,360). Speed is the longitudinal rate in
// degrees per day; negative speed means retrograde motion.
type Position struct {
	Lon   float64
	Lat   float64
	Speed float64
}

// Retrograde reports whether the body is in apparent retrograde motion.
func (p Position) Retrograde() bool { return p.Speed < 0 }
