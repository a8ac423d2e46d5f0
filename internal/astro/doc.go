// Package astro holds the chart data model and the angle arithmetic the
// rest of the system is built on.
//
// Everything here is pure: wraparound-safe angular distance, zodiac sign
// decomposition, Julian-day instants and the fixed aspect tables. No I/O,
// no ephemeris access - position lookups live behind the ephemeris.Oracle
// interface and are injected where they are needed.
//
// ORDERING:
//
// The Body enumeration order is load-bearing. It defines the default
// iteration order for body pairs and the tie-break order when timeline
// events share an exact instant. It never changes after startup.
package astro
