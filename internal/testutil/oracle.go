package testutil

import (
	"context"
	"sync"

	"github.com/vekiano/mapa-astral-estrelas/internal/astro"
	"github.com/vekiano/mapa-astral-estrelas/internal/ephemeris"
)

// LinearOracle is a synthetic position oracle for tests: each configured
// body moves linearly from a start longitude at a constant rate.
//
// Instants are interpreted relative to Epoch, so tests can talk about
// "day 5" instead of raw Julian days. Bodies without an entry fail with
// an unsupported-body error, which doubles as the failure-injection path
// for abort-on-error tests.
//
// Thread-safety: all methods are safe for concurrent use; the call
// counter is mutex-protected.
type LinearOracle struct {
	Epoch astro.Instant
	// Cusps is returned verbatim from HouseCusps when set.
	Cusps [12]float64

	mu     sync.Mutex
	bodies map[astro.Body]linearMotion
	calls  int

	// FailAt, when non-zero, makes every Position call at or after this
	// instant fail. Used to verify whole-scan abort semantics.
	FailAt astro.Instant
}

type linearMotion struct {
	startLon float64 // longitude at Epoch, degrees
	rate     float64 // degrees per day
}

// NewLinearOracle creates an empty synthetic oracle anchored at epoch.
func NewLinearOracle(epoch astro.Instant) *LinearOracle {
	return &LinearOracle{
		Epoch:  epoch,
		bodies: make(map[astro.Body]linearMotion),
	}
}

// Set configures a body's longitude at the epoch and its constant rate
// in degrees per day. Returns the oracle for chaining.
func (o *LinearOracle) Set(body astro.Body, startLon, rate float64) *LinearOracle {
	o.bodies[body] = linearMotion{startLon: startLon, rate: rate}
	return o
}

// Position implements ephemeris.Oracle.
func (o *LinearOracle) Position(ctx context.Context, body astro.Body, at astro.Instant) (astro.Position, error) {
	if err := ctx.Err(); err != nil {
		return astro.Position{}, err
	}

	o.mu.Lock()
	o.calls++
	o.mu.Unlock()

	if o.FailAt != 0 && at >= o.FailAt {
		return astro.Position{}, ephemeris.NewInstantOutOfRangeError(body, at)
	}

	m, ok := o.bodies[body]
	if !ok {
		return astro.Position{}, ephemeris.NewUnsupportedBodyError(body)
	}

	days := float64(at - o.Epoch)
	return astro.Position{
		Lon:   astro.NormalizeDegrees(m.startLon + m.rate*days),
		Lat:   0,
		Speed: m.rate,
	}, nil
}

// HouseCusps implements ephemeris.Oracle, returning the fixed Cusps.
func (o *LinearOracle) HouseCusps(ctx context.Context, at astro.Instant, lat, lon float64, system ephemeris.HouseSystem) ([12]float64, error) {
	if err := ctx.Err(); err != nil {
		return [12]float64{}, err
	}
	return o.Cusps, nil
}

// Calls returns how many Position lookups the oracle has served.
func (o *LinearOracle) Calls() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.calls
}

// Day returns the instant at a fractional day offset from the epoch.
func (o *LinearOracle) Day(d float64) astro.Instant { return o.Epoch.AddDays(d) }
