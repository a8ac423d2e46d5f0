// Package chart assembles complete chart computations from the oracle,
// the scanner and the void-of-course calculator.
//
// Two entry points cover the whole core surface: ComputeSnapshot for the
// single-instant natal chart and ComputeTimeline for the windowed event
// timeline. Every computation is a self-contained synchronous batch; no
// state survives between calls, and an error from any stage aborts the
// whole computation with no partial result.
package chart
