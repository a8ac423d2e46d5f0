// Package scan implements the event-detection engine: aspect scanning
// with run-collapse, sign-ingress location by bisection, void-of-course
// derivation, and the merged deterministic timeline.
//
// ARCHITECTURE:
//
// Sampled runs, one event per formation:
// Aspect detection samples the gap between a pair's angular separation
// and a target angle at a fixed step across the window. A contiguous run
// of in-orb samples collapses into exactly one event at the sampled
// closest approach. Naive per-sample emission would flood the timeline
// with near-duplicates for slow pairs whose orb window spans days.
//
// Bisection under a fixed budget:
// Sign crossings are bracketed by adjacent samples and refined by 20
// midpoint halvings. The result is approximate by construction - the
// bracket shrinks by 2^-20, sub-second for day-scale steps - and is
// accepted without further convergence checking.
//
// Determinism:
// Workers write into per-task slots and results are merged in task
// order; the final sort uses an explicit total comparator. Identical
// inputs produce identical timelines regardless of scheduling.
//
// Errors abort whole: the first oracle failure cancels every in-flight
// task and the scan returns nothing.
//
// KNOWN LIMITATION: bisection assumes at most one sign crossing per
// sampling interval. A body stationing retrograde exactly at a cusp can
// cross, reverse and re-cross inside one step; such double crossings are
// not detected. This mirrors the behavior of the system this engine was
// derived from and is deliberately left uncorrected.
package scan
