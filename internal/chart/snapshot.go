package chart

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/vekiano/mapa-astral-estrelas/internal/astro"
	"github.com/vekiano/mapa-astral-estrelas/internal/ephemeris"
)

// Placement is one body's state in a snapshot, pre-decomposed for
// rendering.
type Placement struct {
	Body       astro.Body
	Position   astro.Position
	Sign       int
	SignCode   string
	InSign     string // DD°MM'SS" within the sign
	Retrograde bool
}

// HouseCusp is one house's cusp longitude plus its decomposition.
type HouseCusp struct {
	Number   int // 1..12
	Lon      float64
	Sign     int
	SignCode string
	InSign   string
}

// NatalAspect is a single-instant aspect match: no time dimension, just
// the pair, the matched definition and the measured gap.
type NatalAspect struct {
	BodyA      astro.Body
	BodyB      astro.Body
	AspectCode string
	Separation float64
}

// Snapshot is the natal chart for one instant and location.
type Snapshot struct {
	Input   Input
	Instant astro.Instant

	Placements []Placement   // in body enumeration order
	Houses     [12]HouseCusp // cusp 1 first
	Aspects    []NatalAspect // ascending by separation
}

// Computer owns the fixed configuration for chart computations: the
// oracle, the natal orb table and the house system.
type Computer struct {
	oracle      ephemeris.Oracle
	natal       []astro.AspectDefinition
	houseSystem ephemeris.HouseSystem
}

// NewComputer creates a chart computer. A nil natal table falls back to
// the default; an empty house system falls back to equal houses.
func NewComputer(oracle ephemeris.Oracle, natal []astro.AspectDefinition, system ephemeris.HouseSystem) *Computer {
	if natal == nil {
		natal = astro.DefaultNatalAspects()
	}
	if system == "" {
		system = ephemeris.HouseSystemEqual
	}
	return &Computer{oracle: oracle, natal: natal, houseSystem: system}
}

// ComputeSnapshot builds the natal chart for the input: every body's
// position, the twelve house cusps, and all natal aspects matched
// against the full natal table, sorted by ascending separation.
func (c *Computer) ComputeSnapshot(ctx context.Context, in Input) (*Snapshot, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	at := in.Instant()

	snap := &Snapshot{Input: in, Instant: at}

	for _, body := range astro.Bodies() {
		pos, err := c.oracle.Position(ctx, body, at)
		if err != nil {
			return nil, fmt.Errorf("snapshot position %s: %w", body, err)
		}
		sign, inSign := astro.SignAndPosition(pos.Lon)
		snap.Placements = append(snap.Placements, Placement{
			Body:       body,
			Position:   pos,
			Sign:       sign,
			SignCode:   astro.SignCode(sign),
			InSign:     inSign,
			Retrograde: pos.Retrograde(),
		})
	}

	cusps, err := c.oracle.HouseCusps(ctx, at, in.Latitude, in.Longitude, c.houseSystem)
	if err != nil {
		return nil, fmt.Errorf("snapshot house cusps: %w", err)
	}
	for i, lon := range cusps {
		sign, inSign := astro.SignAndPosition(lon)
		snap.Houses[i] = HouseCusp{
			Number:   i + 1,
			Lon:      lon,
			Sign:     sign,
			SignCode: astro.SignCode(sign),
			InSign:   inSign,
		}
	}

	snap.Aspects = c.matchNatalAspects(snap.Placements)
	return snap, nil
}

// matchNatalAspects checks every unordered pair against the natal table
// once. No scanning, no refinement: positions are already fixed.
func (c *Computer) matchNatalAspects(placements []Placement) []NatalAspect {
	out := []NatalAspect{}
	for i := 0; i < len(placements); i++ {
		for j := i + 1; j < len(placements); j++ {
			diff := astro.AngularDifference(placements[i].Position.Lon, placements[j].Position.Lon)
			for _, def := range c.natal {
				gap := math.Abs(diff - def.Angle)
				if gap <= def.Orb {
					out = append(out, NatalAspect{
						BodyA:      placements[i].Body,
						BodyB:      placements[j].Body,
						AspectCode: def.Code,
						Separation: gap,
					})
				}
			}
		}
	}

	// Presentation order: tightest aspects first. Ties fall back to the
	// pair and code so the order is total.
	sort.Slice(out, func(i, j int) bool {
		if out[i].Separation != out[j].Separation {
			return out[i].Separation < out[j].Separation
		}
		if out[i].BodyA != out[j].BodyA {
			return out[i].BodyA < out[j].BodyA
		}
		if out[i].BodyB != out[j].BodyB {
			return out[i].BodyB < out[j].BodyB
		}
		return out[i].AspectCode < out[j].AspectCode
	})
	return out
}

// Placement returns the snapshot placement for a body, if present.
func (s *Snapshot) Placement(body astro.Body) (Placement, bool) {
	for _, p := range s.Placements {
		if p.Body == body {
			return p, true
		}
	}
	return Placement{}, false
}
