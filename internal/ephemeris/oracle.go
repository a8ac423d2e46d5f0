package ephemeris

import (
	"context"
	"sync"

	"github.com/vekiano/mapa-astral-estrelas/internal/astro"
)

// HouseSystem names a house-cusp division scheme.
type HouseSystem string

const (
	// HouseSystemEqual divides the ecliptic into twelve 30° houses
	// starting at the ascendant.
	HouseSystemEqual HouseSystem = "equal"
	// HouseSystemWholeSign assigns each house to a whole zodiac sign,
	// the first house being the ascendant's sign.
	HouseSystemWholeSign HouseSystem = "whole-sign"
)

// Valid reports whether the system is one of the supported schemes.
func (h HouseSystem) Valid() bool {
	return h == HouseSystemEqual || h == HouseSystemWholeSign
}

// Oracle supplies body positions and house cusps for an instant. The
// engine is specified against this interface only.
//
// Implementations must either be safe for concurrent use or be wrapped
// with NewSerialized before being handed to the concurrent scanner.
type Oracle interface {
	// Position returns the ecliptic longitude, latitude and speed of a
	// body at a UTC instant. The longitude is normalized to [0,360).
	Position(ctx context.Context, body astro.Body, at astro.Instant) (astro.Position, error)

	// HouseCusps returns the twelve house-cusp longitudes for an
	// instant and geographic location, cusp 1 first.
	HouseCusps(ctx context.Context, at astro.Instant, lat, lon float64, system HouseSystem) ([12]float64, error)
}

// Serialized wraps an Oracle that is not safe for concurrent use,
// admitting one caller at a time.
type Serialized struct {
	mu    sync.Mutex
	inner Oracle
}

// NewSerialized wraps an oracle behind a mutex so the concurrent scanner
// can use it safely.
func NewSerialized(inner Oracle) *Serialized {
	return &Serialized{inner: inner}
}

// Position implements Oracle.
func (s *Serialized) Position(ctx context.Context, body astro.Body, at astro.Instant) (astro.Position, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Position(ctx, body, at)
}

// HouseCusps implements Oracle.
func (s *Serialized) HouseCusps(ctx context.Context, at astro.Instant, lat, lon float64, system HouseSystem) ([12]float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.HouseCusps(ctx, at, lat, lon, system)
}
