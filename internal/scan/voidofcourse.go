package scan

import (
	"context"
	"fmt"
	"sort"

	"github.com/vekiano/mapa-astral-estrelas/internal/astro"
	"github.com/vekiano/mapa-astral-estrelas/internal/ephemeris"
)

// VoidOfCourseCalculator derives lunar void intervals from events that
// other components already detected. It runs no scan of its own; the
// only oracle access is one longitude sample per derived interval, to
// read the outgoing sign.
type VoidOfCourseCalculator struct {
	oracle ephemeris.Oracle
}

// NewVoidOfCourseCalculator creates a calculator over an oracle.
func NewVoidOfCourseCalculator(oracle ephemeris.Oracle) *VoidOfCourseCalculator {
	return &VoidOfCourseCalculator{oracle: oracle}
}

// Derive produces one void interval per Moon ingress that has a Moon
// aspect strictly before it within the window: the interval runs from
// one second after that last aspect until the ingress.
//
// An ingress with no prior Moon aspect in the window yields no event.
// That is a window-edge artifact, not an error.
func (c *VoidOfCourseCalculator) Derive(ctx context.Context, w astro.Window, ingresses []astro.IngressEvent, aspects []astro.AspectEvent) ([]astro.VoidOfCourseEvent, error) {
	var moonAspects []astro.Instant
	for _, a := range aspects {
		if a.Involves(astro.Moon) {
			moonAspects = append(moonAspects, a.Exact)
		}
	}
	sort.Slice(moonAspects, func(i, j int) bool { return moonAspects[i] < moonAspects[j] })

	var out []astro.VoidOfCourseEvent
	for _, ing := range ingresses {
		if ing.Body != astro.Moon {
			continue
		}

		last, ok := lastBefore(moonAspects, ing.Exact)
		if !ok {
			continue // no predecessor aspect in window
		}

		start := last.AddSeconds(1)
		if start >= ing.Exact {
			continue // degenerate: aspect within a second of the ingress
		}

		pos, err := c.oracle.Position(ctx, astro.Moon, start)
		if err != nil {
			return nil, fmt.Errorf("void-of-course outgoing sign: %w", err)
		}

		out = append(out, astro.VoidOfCourseEvent{
			Start:    start,
			End:      ing.Exact,
			FromSign: astro.SignIndex(pos.Lon),
			ToSign:   ing.NewSign,
		})
	}
	return out, nil
}

// lastBefore returns the greatest instant strictly less than limit.
// The slice must be sorted ascending.
func lastBefore(sorted []astro.Instant, limit astro.Instant) (astro.Instant, bool) {
	i := sort.Search(len(sorted), func(i int) bool { return sorted[i] >= limit })
	if i == 0 {
		return 0, false
	}
	return sorted[i-1], true
}
