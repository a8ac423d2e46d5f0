package scan

import (
	"sort"

	"github.com/vekiano/mapa-astral-estrelas/internal/astro"
)

// BuildTimeline merges detected events into one chronologically ordered
// sequence. Ordering comes entirely from astro.CompareEvents, a total
// comparator, so the result is identical for any input arrangement.
//
// An empty input yields an empty (non-nil) timeline.
func BuildTimeline(aspects []astro.AspectEvent, ingresses []astro.IngressEvent, voids []astro.VoidOfCourseEvent) []astro.TimelineEvent {
	events := make([]astro.TimelineEvent, 0, len(aspects)+len(ingresses)+len(voids))

	for i := range aspects {
		a := aspects[i]
		events = append(events, astro.TimelineEvent{
			Kind:   astro.KindAspect,
			Exact:  a.Exact,
			Aspect: &a,
		})
	}
	for i := range ingresses {
		ing := ingresses[i]
		events = append(events, astro.TimelineEvent{
			Kind:    astro.KindIngress,
			Exact:   ing.Exact,
			Ingress: &ing,
		})
	}
	for i := range voids {
		v := voids[i]
		events = append(events, astro.TimelineEvent{
			Kind:  astro.KindVoidOfCourse,
			Exact: v.Start,
			Void:  &v,
		})
	}

	sort.Slice(events, func(i, j int) bool {
		return astro.CompareEvents(events[i], events[j]) < 0
	})
	return events
}
