package scan

import (
	"context"
	"fmt"
	"math"

	"github.com/vekiano/mapa-astral-estrelas/internal/astro"
	"github.com/vekiano/mapa-astral-estrelas/internal/ephemeris"
)

// DefaultStepDays is the default sampling step for scans.
const DefaultStepDays = 0.1

// DefaultWorkers is the default size of the scan worker pool.
const DefaultWorkers = 8

// Scanner detects aspect and ingress events over a time window by
// sampling a position oracle.
//
// A Scanner is immutable after construction and safe for concurrent use,
// provided its oracle is (wrap non-reentrant oracles with
// ephemeris.NewSerialized).
type Scanner struct {
	oracle  ephemeris.Oracle
	bodies  []astro.Body
	aspects []astro.AspectDefinition
	step    float64
	workers int
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithStep sets the sampling step in fractional days.
func WithStep(days float64) Option {
	return func(s *Scanner) { s.step = days }
}

// WithWorkers sets the worker pool size.
func WithWorkers(n int) Option {
	return func(s *Scanner) { s.workers = n }
}

// WithBodies restricts the scanned body set. The slice order is
// preserved; it defines pair iteration order.
func WithBodies(bodies []astro.Body) Option {
	return func(s *Scanner) { s.bodies = bodies }
}

// WithAspects sets the aspect-definition table used for scanning.
func WithAspects(defs []astro.AspectDefinition) Option {
	return func(s *Scanner) { s.aspects = defs }
}

// New creates a Scanner over an oracle. Defaults: all bodies, the
// default scan aspect table, 0.1-day step, 8 workers.
func New(oracle ephemeris.Oracle, opts ...Option) *Scanner {
	s := &Scanner{
		oracle:  oracle,
		bodies:  astro.Bodies(),
		aspects: astro.DefaultScanAspects(),
		step:    DefaultStepDays,
		workers: DefaultWorkers,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Aspects scans every unordered body pair against every configured
// aspect definition and returns one collapsed event per contiguous
// in-orb run, in deterministic (pair, aspect) order by run start.
//
// Any oracle failure aborts the whole scan with no partial results.
func (s *Scanner) Aspects(ctx context.Context, w astro.Window) ([]astro.AspectEvent, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}

	type pairTask struct {
		a, b astro.Body
		def  astro.AspectDefinition
	}
	var tasks []pairTask
	for i := 0; i < len(s.bodies); i++ {
		for j := i + 1; j < len(s.bodies); j++ {
			for _, def := range s.aspects {
				tasks = append(tasks, pairTask{a: s.bodies[i], b: s.bodies[j], def: def})
			}
		}
	}

	// Per-task result slots; merged in task order after the pool drains
	// so worker scheduling cannot reorder the output.
	results := make([][]astro.AspectEvent, len(tasks))
	err := s.forEach(ctx, len(tasks), func(ctx context.Context, i int) error {
		evs, err := s.scanPair(ctx, w, tasks[i].a, tasks[i].b, tasks[i].def)
		if err != nil {
			return fmt.Errorf("scan %s-%s %s: %w", tasks[i].a, tasks[i].b, tasks[i].def.Code, err)
		}
		results[i] = evs
		return nil
	})
	if err != nil {
		return nil, err
	}

	var out []astro.AspectEvent
	for _, evs := range results {
		out = append(out, evs...)
	}
	return out, nil
}

// scanPair samples one (pair, aspect) combination across the window,
// collapsing each contiguous in-orb run to its closest-approach sample.
func (s *Scanner) scanPair(ctx context.Context, w astro.Window, a, b astro.Body, def astro.AspectDefinition) ([]astro.AspectEvent, error) {
	var out []astro.AspectEvent

	var run struct {
		active    bool
		bestGap   float64
		bestAt    astro.Instant
		bestA     astro.Position
		bestB     astro.Position
		truncated bool
	}
	flush := func() {
		out = append(out, astro.AspectEvent{
			Exact:      run.bestAt,
			BodyA:      a,
			BodyB:      b,
			AspectCode: def.Code,
			Separation: run.bestGap,
			PositionA:  run.bestA,
			PositionB:  run.bestB,
			Truncated:  run.truncated,
		})
		run.active = false
	}

	steps := int(math.Ceil(w.Days() / s.step))
	for k := 0; k <= steps; k++ {
		t := w.Start.AddDays(float64(k) * s.step)
		if t > w.End {
			t = w.End
		}

		pa, err := s.oracle.Position(ctx, a, t)
		if err != nil {
			return nil, err
		}
		pb, err := s.oracle.Position(ctx, b, t)
		if err != nil {
			return nil, err
		}

		gap := math.Abs(astro.AngularDifference(pa.Lon, pb.Lon) - def.Angle)
		switch {
		case gap < def.Orb:
			if !run.active {
				run.active = true
				run.bestGap = gap
				run.bestAt = t
				run.bestA, run.bestB = pa, pb
				run.truncated = k == 0 // already in orb at window start
			} else if gap < run.bestGap {
				run.bestGap = gap
				run.bestAt = t
				run.bestA, run.bestB = pa, pb
			}
		case run.active:
			flush()
		}

		if k == steps && run.active {
			// Still in orb at window end: emit the best sample so far,
			// flagged so callers know the exact instant may lie outside.
			run.truncated = true
			flush()
		}
	}
	return out, nil
}

// forEach runs fn for indexes 0..n-1 on the bounded worker pool. The
// first error cancels the remaining work and is returned.
func (s *Scanner) forEach(ctx context.Context, n int, fn func(ctx context.Context, i int) error) error {
	workers := s.workers
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}
	return runPool(ctx, workers, n, fn)
}
