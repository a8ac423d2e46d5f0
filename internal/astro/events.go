package astro

import "fmt"

// AspectEvent records one detected aspect formation: the closest-approach
// instant of a contiguous in-orb run for one body pair and one aspect
// definition.
type AspectEvent struct {
	Exact      Instant
	BodyA      Body
	BodyB      Body
	AspectCode string
	// Separation is the measured gap from the target angle at Exact.
	// Always <= the orb of the definition that produced the event.
	Separation float64
	PositionA  Position
	PositionB  Position
	// Truncated marks a run that touched the scan window boundary: the
	// aspect was already in orb at window start or still in orb at
	// window end, so Exact is only the best sample available.
	Truncated bool
}

// Involves reports whether the event involves the given body.
func (e AspectEvent) Involves(b Body) bool { return e.BodyA == b || e.BodyB == b }

// IngressEvent records a body crossing a zodiac sign boundary.
type IngressEvent struct {
	Exact   Instant
	Body    Body
	NewSign int // sign index entered, 0..11
}

// VoidOfCourseEvent records a lunar void interval: from one second after
// the Moon's last aspect in a sign until its ingress into the next sign.
type VoidOfCourseEvent struct {
	Start    Instant
	End      Instant
	FromSign int
	ToSign   int
}

// Duration returns the void interval length in fractional days.
func (e VoidOfCourseEvent) Duration() float64 { return float64(e.End - e.Start) }

// EventKind tags the variants of TimelineEvent. The numeric order is the
// tie-break order for events sharing an exact instant.
type EventKind int

const (
	KindAspect EventKind = iota
	KindIngress
	KindVoidOfCourse
)

// TimelineEvent is the tagged union merged into the final timeline.
// Exactly one of Aspect, Ingress, Void is set, matching Kind.
type TimelineEvent struct {
	Kind    EventKind
	Exact   Instant
	Aspect  *AspectEvent
	Ingress *IngressEvent
	Void    *VoidOfCourseEvent
}

// Description renders the event body as it appears in reports, without
// the timestamp prefix (local-time conversion is the formatter's job).
func (e TimelineEvent) Description() string {
	switch e.Kind {
	case KindAspect:
		a := e.Aspect
		sigA, posA := SignAndPosition(a.PositionA.Lon)
		sigB, posB := SignAndPosition(a.PositionB.Lon)
		return fmt.Sprintf("[%s %s %s] - %s %s / %s %s - %.5f",
			a.BodyA.Code(), a.AspectCode, a.BodyB.Code(),
			posA, SignCode(sigA), posB, SignCode(sigB), a.Separation)
	case KindIngress:
		i := e.Ingress
		return fmt.Sprintf("[%s INGRESSO %s]", i.Body.Code(), SignCode(i.NewSign))
	case KindVoidOfCourse:
		v := e.Void
		return fmt.Sprintf("[LUA FORA DE CURSO] %s -> %s - duração %s",
			SignCode(v.FromSign), SignCode(v.ToSign), FormatDayDuration(v.Duration()))
	}
	return ""
}

// CompareEvents is the total order for the merged timeline: ascending
// exact instant, then event kind, then body identifiers in enumeration
// order, then aspect code. It never relies on insertion order, so a sort
// under it is deterministic for any input arrangement.
func CompareEvents(a, b TimelineEvent) int {
	switch {
	case a.Exact < b.Exact:
		return -1
	case a.Exact > b.Exact:
		return 1
	}
	if a.Kind != b.Kind {
		return int(a.Kind) - int(b.Kind)
	}

	ab1, ab2 := a.bodyKey()
	bb1, bb2 := b.bodyKey()
	if ab1 != bb1 {
		return int(ab1) - int(bb1)
	}
	if ab2 != bb2 {
		return int(ab2) - int(bb2)
	}

	if a.Kind == KindAspect {
		switch {
		case a.Aspect.AspectCode < b.Aspect.AspectCode:
			return -1
		case a.Aspect.AspectCode > b.Aspect.AspectCode:
			return 1
		}
	}
	return 0
}

// bodyKey returns the bodies used for tie-breaking. Void events have no
// explicit body field; they are always lunar.
func (e TimelineEvent) bodyKey() (Body, Body) {
	switch e.Kind {
	case KindAspect:
		return e.Aspect.BodyA, e.Aspect.BodyB
	case KindIngress:
		return e.Ingress.Body, e.Ingress.Body
	default:
		return Moon, Moon
	}
}
