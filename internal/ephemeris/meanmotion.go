package ephemeris

import (
	"context"

	"github.com/vekiano/mapa-astral-estrelas/internal/astro"
)

// J2000 is the standard epoch, 2000-01-01 12:00 UTC.
const J2000 astro.Instant = 2451545.0

// Valid span of the mean-motion model, roughly years 1800..2200.
// Outside it the linear approximation drifts without bound, so lookups
// are refused rather than silently degraded.
const (
	minInstant astro.Instant = 2378497.0
	maxInstant astro.Instant = 2524593.0
)

// meanElement is a body's J2000 epoch longitude and mean daily motion.
type meanElement struct {
	epochLon float64 // degrees at J2000
	motion   float64 // degrees per day, negative for retrograde mean motion
}

// meanElements holds the linear model per body, in Body order. Inner
// planets use their mean orbital longitude, which tracks the true
// geocentric longitude only loosely; that is acceptable here, precision
// is not a goal of this backend.
var meanElements = [...]meanElement{
	astro.Sun:      {280.46646, 0.98564736},
	astro.Moon:     {218.31665, 13.17639648},
	astro.Mercury:  {252.25090, 4.09233445},
	astro.Venus:    {181.97980, 1.60213034},
	astro.Mars:     {355.43300, 0.52403840},
	astro.Jupiter:  {34.35151, 0.08308529},
	astro.Saturn:   {50.07744, 0.03344414},
	astro.Uranus:   {314.05501, 0.01172834},
	astro.Neptune:  {304.34866, 0.00598103},
	astro.Pluto:    {238.92903, 0.00396},
	astro.TrueNode: {125.04452, -0.05295377},
}

// MeanMotion is the built-in linear ephemeris. It is stateless and safe
// for concurrent use.
type MeanMotion struct{}

// NewMeanMotion returns the built-in mean-motion oracle.
func NewMeanMotion() *MeanMotion { return &MeanMotion{} }

// Position implements Oracle. Longitude advances linearly from the J2000
// epoch value; latitude is modeled as zero and speed as the constant
// mean motion.
func (m *MeanMotion) Position(ctx context.Context, body astro.Body, at astro.Instant) (astro.Position, error) {
	if err := ctx.Err(); err != nil {
		return astro.Position{}, err
	}
	if !body.Valid() {
		return astro.Position{}, NewUnsupportedBodyError(body)
	}
	if at < minInstant || at > maxInstant {
		return astro.Position{}, NewInstantOutOfRangeError(body, at)
	}

	el := meanElements[body]
	lon := astro.NormalizeDegrees(el.epochLon + el.motion*float64(at-J2000))
	return astro.Position{Lon: lon, Lat: 0, Speed: el.motion}, nil
}

// HouseCusps implements Oracle using the ascendant-based systems in
// houses.go.
func (m *MeanMotion) HouseCusps(ctx context.Context, at astro.Instant, lat, lon float64, system HouseSystem) ([12]float64, error) {
	if err := ctx.Err(); err != nil {
		return [12]float64{}, err
	}
	if at < minInstant || at > maxInstant {
		return [12]float64{}, NewInstantOutOfRangeError(astro.Sun, at)
	}
	if !system.Valid() {
		return [12]float64{}, &OracleError{
			Code:    ErrCodeInvalidHouseSystem,
			Instant: at,
			Message: "unknown house system " + string(system),
		}
	}
	return cuspsFor(at, lat, lon, system), nil
}
