package astro

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func aspectAt(at Instant, a, b Body, code string) TimelineEvent {
	return TimelineEvent{
		Kind:  KindAspect,
		Exact: at,
		Aspect: &AspectEvent{
			Exact: at, BodyA: a, BodyB: b, AspectCode: code,
		},
	}
}

func ingressAt(at Instant, b Body, sign int) TimelineEvent {
	return TimelineEvent{
		Kind:    KindIngress,
		Exact:   at,
		Ingress: &IngressEvent{Exact: at, Body: b, NewSign: sign},
	}
}

func TestCompareEvents_ByInstant(t *testing.T) {
	early := aspectAt(100, Sun, Moon, "CJN")
	late := aspectAt(101, Sun, Moon, "CJN")
	assert.Negative(t, CompareEvents(early, late))
	assert.Positive(t, CompareEvents(late, early))
}

func TestCompareEvents_TieBreakKind(t *testing.T) {
	// Equal instants order aspect < ingress < void.
	asp := aspectAt(100, Sun, Moon, "CJN")
	ing := ingressAt(100, Sun, 3)
	void := TimelineEvent{
		Kind: KindVoidOfCourse, Exact: 100,
		Void: &VoidOfCourseEvent{Start: 100, End: 101},
	}
	assert.Negative(t, CompareEvents(asp, ing))
	assert.Negative(t, CompareEvents(ing, void))
	assert.Negative(t, CompareEvents(asp, void))
}

func TestCompareEvents_TieBreakBodiesThenCode(t *testing.T) {
	sunMoon := aspectAt(100, Sun, Moon, "SQR")
	sunMars := aspectAt(100, Sun, Mars, "CJN")
	assert.Negative(t, CompareEvents(sunMoon, sunMars), "Moon precedes Mars in body order")

	cjn := aspectAt(100, Sun, Moon, "CJN")
	sqr := aspectAt(100, Sun, Moon, "SQR")
	assert.Negative(t, CompareEvents(cjn, sqr), "same pair falls back to aspect code")
	assert.Zero(t, CompareEvents(cjn, cjn))
}

func TestDescription_Aspect(t *testing.T) {
	ev := TimelineEvent{
		Kind:  KindAspect,
		Exact: 100,
		Aspect: &AspectEvent{
			BodyA: Sun, BodyB: Moon, AspectCode: "CJN",
			Separation: 0.00123,
			PositionA:  Position{Lon: 95.5},
			PositionB:  Position{Lon: 95.5},
		},
	}
	assert.Equal(t, `[SOL CJN LUA] - 05°30'00" CA / 05°30'00" CA - 0.00123`, ev.Description())
}

func TestDescription_Ingress(t *testing.T) {
	ev := ingressAt(100, Moon, 2)
	assert.Equal(t, "[LUA INGRESSO GE]", ev.Description())
}

func TestDescription_VoidOfCourse(t *testing.T) {
	ev := TimelineEvent{
		Kind:  KindVoidOfCourse,
		Exact: 100,
		Void:  &VoidOfCourseEvent{Start: 100, End: 100.5, FromSign: 1, ToSign: 2},
	}
	assert.Equal(t, "[LUA FORA DE CURSO] TA -> GE - duração 12:00:00", ev.Description())
}

func TestBodyCodes(t *testing.T) {
	assert.Equal(t, "SOL", Sun.Code())
	assert.Equal(t, "TNN", TrueNode.Code())
	assert.Equal(t, "PL99", Body(99).Code())
	assert.Len(t, Bodies(), 11)
}
