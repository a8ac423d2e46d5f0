package astro

import "fmt"

// AspectDefinition names a significant angular separation between two
// bodies and the maximum deviation (orb) at which it is considered in
// effect.
//
// Tables of definitions are process-wide immutable configuration, loaded
// once at startup and never mutated afterwards.
type AspectDefinition struct {
	Code  string  // three-letter report code, e.g. "CJN"
	Angle float64 // target separation in degrees, [0,180]
	Orb   float64 // maximum deviation in degrees, >= 0
}

// Validate checks the definition invariants.
func (d AspectDefinition) Validate() error {
	switch {
	case d.Code == "":
		return fmt.Errorf("aspect definition missing code")
	case d.Angle < 0 || d.Angle > 180:
		return fmt.Errorf("aspect %s: angle %.2f out of range [0,180]", d.Code, d.Angle)
	case d.Orb < 0:
		return fmt.Errorf("aspect %s: negative orb %.2f", d.Code, d.Orb)
	}
	return nil
}

// DefaultScanAspects is the coarse orb table used by the timeline
// scanner. Wider orbs catch a formation early enough that the closest
// approach falls inside a sampled run.
func DefaultScanAspects() []AspectDefinition {
	return []AspectDefinition{
		{Code: "CJN", Angle: 0, Orb: 8},
		{Code: "SSQ", Angle: 45, Orb: 2},
		{Code: "SXT", Angle: 60, Orb: 6},
		{Code: "SQR", Angle: 90, Orb: 6},
		{Code: "TRI", Angle: 120, Orb: 8},
		{Code: "SQQ", Angle: 135, Orb: 2},
		{Code: "QCX", Angle: 150, Orb: 3},
		{Code: "OPO", Angle: 180, Orb: 8},
	}
}

// DefaultNatalAspects is the orb table for single-instant natal
// matching. It is configured independently of the scan table; the
// defaults coincide, but deployments commonly narrow the natal orbs.
// Minor aspects carry tighter orbs than the majors either way.
func DefaultNatalAspects() []AspectDefinition {
	return []AspectDefinition{
		{Code: "CJN", Angle: 0, Orb: 8},
		{Code: "SSQ", Angle: 45, Orb: 2},
		{Code: "SXT", Angle: 60, Orb: 6},
		{Code: "SQR", Angle: 90, Orb: 6},
		{Code: "TRI", Angle: 120, Orb: 8},
		{Code: "SQQ", Angle: 135, Orb: 2},
		{Code: "QCX", Angle: 150, Orb: 3},
		{Code: "OPO", Angle: 180, Orb: 8},
	}
}
