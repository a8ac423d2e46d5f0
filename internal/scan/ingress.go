package scan

import (
	"context"
	"fmt"
	"math"

	"github.com/vekiano/mapa-astral-estrelas/internal/astro"
)

// BisectIterations is the fixed refinement budget for locating a sign
// crossing inside one sampling interval. After 20 halvings the bracket
// has shrunk by 2^-20: below ten milliseconds for a 0.1-day step. The
// refined instant is approximate by construction; no convergence check
// is performed.
const BisectIterations = 20

// Ingresses detects sign-boundary crossings for one body across the
// window: coarse sampling at the scanner step, then bisection on each
// bracket where the sampled sign index changes.
//
// At most one crossing per sampling interval is assumed; see the package
// comment for the retrograde-station caveat.
func (s *Scanner) Ingresses(ctx context.Context, w astro.Window, body astro.Body) ([]astro.IngressEvent, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}

	prev, err := s.oracle.Position(ctx, body, w.Start)
	if err != nil {
		return nil, fmt.Errorf("ingress scan %s: %w", body, err)
	}
	prevIdx := astro.SignIndex(prev.Lon)
	prevT := w.Start

	var out []astro.IngressEvent
	steps := int(math.Ceil(w.Days() / s.step))
	for k := 1; k <= steps; k++ {
		t := w.Start.AddDays(float64(k) * s.step)
		if t > w.End {
			t = w.End
		}

		pos, err := s.oracle.Position(ctx, body, t)
		if err != nil {
			return nil, fmt.Errorf("ingress scan %s: %w", body, err)
		}
		idx := astro.SignIndex(pos.Lon)

		if idx != prevIdx {
			exact, newSign, err := s.refineIngress(ctx, body, prevT, t, prevIdx)
			if err != nil {
				return nil, fmt.Errorf("ingress refine %s: %w", body, err)
			}
			if w.Contains(exact) {
				out = append(out, astro.IngressEvent{Exact: exact, Body: body, NewSign: newSign})
			}
		}

		prevIdx = idx
		prevT = t
	}
	return out, nil
}

// AllIngresses runs Ingresses for every configured body concurrently and
// returns the events grouped in body enumeration order.
func (s *Scanner) AllIngresses(ctx context.Context, w astro.Window) ([]astro.IngressEvent, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}

	results := make([][]astro.IngressEvent, len(s.bodies))
	err := s.forEach(ctx, len(s.bodies), func(ctx context.Context, i int) error {
		evs, err := s.Ingresses(ctx, w, s.bodies[i])
		if err != nil {
			return err
		}
		results[i] = evs
		return nil
	})
	if err != nil {
		return nil, err
	}

	var out []astro.IngressEvent
	for _, evs := range results {
		out = append(out, evs...)
	}
	return out, nil
}

// refineIngress bisects [lo,hi] for the fixed iteration budget. loIdx is
// the sign index at lo; each midpoint test keeps the half that still
// contains the change. The returned instant is the upper bracket end,
// the first tested instant known to lie in the new sign.
func (s *Scanner) refineIngress(ctx context.Context, body astro.Body, lo, hi astro.Instant, loIdx int) (astro.Instant, int, error) {
	for i := 0; i < BisectIterations; i++ {
		mid := lo + (hi-lo)/2
		pos, err := s.oracle.Position(ctx, body, mid)
		if err != nil {
			return 0, 0, err
		}
		if astro.SignIndex(pos.Lon) == loIdx {
			lo = mid
		} else {
			hi = mid
		}
	}

	pos, err := s.oracle.Position(ctx, body, hi)
	if err != nil {
		return 0, 0, err
	}
	return hi, astro.SignIndex(pos.Lon), nil
}
