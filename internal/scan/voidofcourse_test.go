package scan

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vekiano/mapa-astral-estrelas/internal/astro"
	"github.com/vekiano/mapa-astral-estrelas/internal/testutil"
)

func moonAspect(at astro.Instant) astro.AspectEvent {
	return astro.AspectEvent{Exact: at, BodyA: astro.Sun, BodyB: astro.Moon, AspectCode: "SXT"}
}

func moonIngress(at astro.Instant, sign int) astro.IngressEvent {
	return astro.IngressEvent{Exact: at, Body: astro.Moon, NewSign: sign}
}

func TestVoidOfCourse_DerivesInterval(t *testing.T) {
	// Last Moon aspect exact at day 4.000, Moon ingress at day 4.500:
	// the void runs from one second after the aspect to the ingress.
	oracle := testutil.NewLinearOracle(epoch).Set(astro.Moon, 55, 13.2)
	calc := NewVoidOfCourseCalculator(oracle)
	w := window(oracle, 0, 6)

	voids, err := calc.Derive(context.Background(), w,
		[]astro.IngressEvent{moonIngress(oracle.Day(4.5), 2)},
		[]astro.AspectEvent{moonAspect(oracle.Day(4.0)), moonAspect(oracle.Day(2.0))})
	require.NoError(t, err)
	require.Len(t, voids, 1)

	v := voids[0]
	assert.InDelta(t, float64(oracle.Day(4.0).AddSeconds(1)), float64(v.Start), 1e-9)
	assert.Equal(t, oracle.Day(4.5), v.End)
	assert.InDelta(t, 0.5-1.0/astro.SecondsPerDay, v.Duration(), 1e-9)

	// Moon at 55°+13.2°/day: just past day 4 it sits near 107.8° (CA),
	// heading into the ingress sign given by the event.
	assert.Equal(t, 3, v.FromSign)
	assert.Equal(t, 2, v.ToSign)
}

func TestVoidOfCourse_NoPredecessorNoEvent(t *testing.T) {
	// An ingress with no earlier Moon aspect in the window is a normal
	// window-edge case: nothing is emitted, nothing fails.
	oracle := testutil.NewLinearOracle(epoch).Set(astro.Moon, 55, 13.2)
	calc := NewVoidOfCourseCalculator(oracle)

	voids, err := calc.Derive(context.Background(), window(oracle, 0, 6),
		[]astro.IngressEvent{moonIngress(oracle.Day(1.0), 2)},
		[]astro.AspectEvent{moonAspect(oracle.Day(4.0))}) // after the ingress
	require.NoError(t, err)
	assert.Empty(t, voids)
}

func TestVoidOfCourse_IgnoresNonMoonEvents(t *testing.T) {
	oracle := testutil.NewLinearOracle(epoch).Set(astro.Moon, 55, 13.2)
	calc := NewVoidOfCourseCalculator(oracle)

	sunAspect := astro.AspectEvent{Exact: oracle.Day(4.0), BodyA: astro.Sun, BodyB: astro.Mars, AspectCode: "SQR"}
	sunIngress := astro.IngressEvent{Exact: oracle.Day(4.5), Body: astro.Sun, NewSign: 2}

	voids, err := calc.Derive(context.Background(), window(oracle, 0, 6),
		[]astro.IngressEvent{sunIngress},
		[]astro.AspectEvent{sunAspect})
	require.NoError(t, err)
	assert.Empty(t, voids, "non-Moon events derive nothing")
}

func TestVoidOfCourse_PicksLastAspectBeforeEachIngress(t *testing.T) {
	oracle := testutil.NewLinearOracle(epoch).Set(astro.Moon, 0, 13.2)
	calc := NewVoidOfCourseCalculator(oracle)

	voids, err := calc.Derive(context.Background(), window(oracle, 0, 8),
		[]astro.IngressEvent{moonIngress(oracle.Day(2.0), 1), moonIngress(oracle.Day(5.0), 2)},
		[]astro.AspectEvent{
			moonAspect(oracle.Day(0.5)),
			moonAspect(oracle.Day(1.8)),
			moonAspect(oracle.Day(4.1)),
		})
	require.NoError(t, err)
	require.Len(t, voids, 2)
	assert.InDelta(t, float64(oracle.Day(1.8).AddSeconds(1)), float64(voids[0].Start), 1e-9)
	assert.InDelta(t, float64(oracle.Day(4.1).AddSeconds(1)), float64(voids[1].Start), 1e-9)

	// Intervals for the same body never overlap.
	assert.LessOrEqual(t, float64(voids[0].End), float64(voids[1].Start))
}
