package chart

import (
	"fmt"

	"github.com/vekiano/mapa-astral-estrelas/internal/astro"
)

// Input is a chart request: local calendar fields with a fixed UTC
// offset, a geographic location and optional labels for the report.
type Input struct {
	Name     string
	Calendar astro.Calendar

	Latitude  float64
	Longitude float64

	City    string
	State   string
	Country string
}

// Validate checks calendar and geographic fields. It runs before any
// oracle call; a chart request that fails here never touches the
// ephemeris.
func (in Input) Validate() error {
	if err := in.Calendar.Validate(); err != nil {
		return fmt.Errorf("invalid calendar: %w", err)
	}
	if in.Latitude < -90 || in.Latitude > 90 {
		return fmt.Errorf("latitude %.4f out of range [-90,90]", in.Latitude)
	}
	if in.Longitude < -180 || in.Longitude > 180 {
		return fmt.Errorf("longitude %.4f out of range [-180,180]", in.Longitude)
	}
	return nil
}

// Instant returns the request's UTC instant.
func (in Input) Instant() astro.Instant { return in.Calendar.Instant() }
