package scan

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vekiano/mapa-astral-estrelas/internal/astro"
	"github.com/vekiano/mapa-astral-estrelas/internal/ephemeris"
	"github.com/vekiano/mapa-astral-estrelas/internal/testutil"
)

const epoch astro.Instant = 2451545.0

func window(o *testutil.LinearOracle, fromDay, toDay float64) astro.Window {
	return astro.Window{Start: o.Day(fromDay), End: o.Day(toDay)}
}

var conjunction = []astro.AspectDefinition{{Code: "CJN", Angle: 0, Orb: 1}}

func TestAspects_OneEventPerFormation(t *testing.T) {
	// Body A starts at 5° moving -1°/day, crossing a fixed body B at 0°
	// on day 5. Eleven consecutive samples are in orb (days 4.0..6.0);
	// the run must collapse to exactly one event at closest approach.
	oracle := testutil.NewLinearOracle(epoch).
		Set(astro.Sun, 5, -1).
		Set(astro.Moon, 0, 0)
	s := New(oracle,
		WithBodies([]astro.Body{astro.Sun, astro.Moon}),
		WithAspects(conjunction),
	)

	events, err := s.Aspects(context.Background(), window(oracle, 0, 10))
	require.NoError(t, err)
	require.Len(t, events, 1)

	ev := events[0]
	assert.Equal(t, astro.Sun, ev.BodyA)
	assert.Equal(t, astro.Moon, ev.BodyB)
	assert.Equal(t, "CJN", ev.AspectCode)
	assert.InDelta(t, float64(oracle.Day(5)), float64(ev.Exact), 1e-9)
	assert.InDelta(t, 0, ev.Separation, 1e-9)
	assert.False(t, ev.Truncated)
}

func TestAspects_SeparationNeverExceedsOrb(t *testing.T) {
	oracle := testutil.NewLinearOracle(epoch).
		Set(astro.Sun, 3, -1).
		Set(astro.Moon, 0, 0)
	s := New(oracle,
		WithBodies([]astro.Body{astro.Sun, astro.Moon}),
		WithAspects(conjunction),
	)

	events, err := s.Aspects(context.Background(), window(oracle, 0, 10))
	require.NoError(t, err)
	for _, ev := range events {
		assert.LessOrEqual(t, ev.Separation, conjunction[0].Orb)
	}
}

func TestAspects_TruncatedAtWindowEnd(t *testing.T) {
	// Both bodies fixed half a degree apart: in orb for the whole
	// window, so one event flagged as boundary-truncated.
	oracle := testutil.NewLinearOracle(epoch).
		Set(astro.Sun, 0.5, 0).
		Set(astro.Moon, 0, 0)
	s := New(oracle,
		WithBodies([]astro.Body{astro.Sun, astro.Moon}),
		WithAspects(conjunction),
	)

	events, err := s.Aspects(context.Background(), window(oracle, 0, 4))
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.True(t, events[0].Truncated)
	assert.InDelta(t, 0.5, events[0].Separation, 1e-9)
}

func TestAspects_TwoSeparateFormations(t *testing.T) {
	// A laps B twice: -1°/day from 5° crosses 0° at day 5 and 365 later;
	// restrict to a window holding two passes of a faster mover.
	oracle := testutil.NewLinearOracle(epoch).
		Set(astro.Sun, 5, -1).
		Set(astro.Moon, 0, -0.5) // relative rate -0.5°/day, meets at day 10
	s := New(oracle,
		WithBodies([]astro.Body{astro.Sun, astro.Moon}),
		WithAspects([]astro.AspectDefinition{{Code: "OPO", Angle: 180, Orb: 1}, {Code: "CJN", Angle: 0, Orb: 1}}),
	)

	// Conjunction at day 10 (gap 5° closed at 0.5°/day) only; the
	// opposition lies far outside this window.
	events, err := s.Aspects(context.Background(), window(oracle, 0, 20))
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "CJN", events[0].AspectCode)
	assert.InDelta(t, float64(oracle.Day(10)), float64(events[0].Exact), 1e-9)
}

func TestAspects_EmptyWindowYieldsNoEvents(t *testing.T) {
	// Bodies 90° apart and stationary: no conjunction ever forms.
	oracle := testutil.NewLinearOracle(epoch).
		Set(astro.Sun, 0, 0).
		Set(astro.Moon, 90, 0)
	s := New(oracle,
		WithBodies([]astro.Body{astro.Sun, astro.Moon}),
		WithAspects(conjunction),
	)

	events, err := s.Aspects(context.Background(), window(oracle, 0, 4))
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestAspects_OracleFailureAbortsWholeScan(t *testing.T) {
	oracle := testutil.NewLinearOracle(epoch).
		Set(astro.Sun, 5, -1).
		Set(astro.Moon, 0, 0)
	oracle.FailAt = oracle.Day(2)

	s := New(oracle,
		WithBodies([]astro.Body{astro.Sun, astro.Moon}),
		WithAspects(conjunction),
	)

	events, err := s.Aspects(context.Background(), window(oracle, 0, 10))
	require.Error(t, err)
	assert.True(t, ephemeris.IsOracleError(err))
	assert.Nil(t, events, "no partial results on failure")
}

func TestAspects_ContextCancellation(t *testing.T) {
	oracle := testutil.NewLinearOracle(epoch).
		Set(astro.Sun, 5, -1).
		Set(astro.Moon, 0, 0)
	s := New(oracle,
		WithBodies([]astro.Body{astro.Sun, astro.Moon}),
		WithAspects(conjunction),
	)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Aspects(ctx, window(oracle, 0, 10))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAspects_InvalidWindow(t *testing.T) {
	oracle := testutil.NewLinearOracle(epoch).Set(astro.Sun, 0, 0)
	s := New(oracle)
	_, err := s.Aspects(context.Background(), astro.Window{Start: 10, End: 10})
	assert.Error(t, err)
}

func TestAspects_DeterministicAcrossRuns(t *testing.T) {
	// Many concurrent tasks; output order must not depend on worker
	// scheduling.
	oracle := testutil.NewLinearOracle(epoch).
		Set(astro.Sun, 5, -1).
		Set(astro.Moon, 0, 13).
		Set(astro.Mercury, 44, 1).
		Set(astro.Venus, 181, 0.3)
	s := New(oracle,
		WithBodies([]astro.Body{astro.Sun, astro.Moon, astro.Mercury, astro.Venus}),
		WithWorkers(4),
	)

	first, err := s.Aspects(context.Background(), window(oracle, 0, 4))
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := s.Aspects(context.Background(), window(oracle, 0, 4))
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
