// Package ephemeris defines the position oracle the engine scans, and
// ships a self-contained mean-motion implementation of it.
//
// The Oracle interface is the seam between the event-detection engine and
// any real ephemeris. The engine never touches a concrete ephemeris
// library; a concrete Oracle is injected at construction, so swapping the
// built-in mean-motion model for a high-precision backend is a wiring
// change, not an engine change.
//
// The mean-motion model is deliberately coarse: each body advances
// linearly at its mean daily motion from a J2000 epoch longitude.
// Numeric agreement with a real ephemeris is an explicit non-goal; the
// model exists so the full pipeline runs deterministically with no cgo
// and no ephemeris data files.
package ephemeris
