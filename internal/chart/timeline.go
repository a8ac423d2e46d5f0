package chart

import (
	"context"
	"fmt"

	"github.com/vekiano/mapa-astral-estrelas/internal/astro"
	"github.com/vekiano/mapa-astral-estrelas/internal/scan"
)

// TimelineOptions configure a windowed timeline computation.
type TimelineOptions struct {
	// MarginDays extends the window this many days before and after the
	// chart instant. Default 2.
	MarginDays float64
	// StepDays is the sampling step. Zero means scan.DefaultStepDays.
	StepDays float64
	// ScanAspects is the coarse orb table for scanning. Nil means the
	// default table.
	ScanAspects []astro.AspectDefinition
	// Workers bounds the scan pool. Zero means scan.DefaultWorkers.
	Workers int
}

// Timeline is the ordered event sequence around a chart instant.
type Timeline struct {
	Window astro.Window
	Events []astro.TimelineEvent
}

// ComputeTimeline scans the window around the input instant for aspect
// and ingress events, derives lunar void intervals from them, and merges
// everything into one deterministically ordered sequence.
//
// A window with no qualifying events yields an empty timeline, not an
// error. Any oracle failure aborts the whole computation.
func (c *Computer) ComputeTimeline(ctx context.Context, in Input, opts TimelineOptions) (*Timeline, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	margin := opts.MarginDays
	if margin <= 0 {
		margin = 2
	}
	at := in.Instant()
	w := astro.Window{Start: at.AddDays(-margin), End: at.AddDays(margin)}

	var scanOpts []scan.Option
	if opts.StepDays > 0 {
		scanOpts = append(scanOpts, scan.WithStep(opts.StepDays))
	}
	if opts.ScanAspects != nil {
		scanOpts = append(scanOpts, scan.WithAspects(opts.ScanAspects))
	}
	if opts.Workers > 0 {
		scanOpts = append(scanOpts, scan.WithWorkers(opts.Workers))
	}
	scanner := scan.New(c.oracle, scanOpts...)

	aspects, err := scanner.Aspects(ctx, w)
	if err != nil {
		return nil, fmt.Errorf("aspect scan: %w", err)
	}
	ingresses, err := scanner.AllIngresses(ctx, w)
	if err != nil {
		return nil, fmt.Errorf("ingress scan: %w", err)
	}
	voids, err := scan.NewVoidOfCourseCalculator(c.oracle).Derive(ctx, w, ingresses, aspects)
	if err != nil {
		return nil, fmt.Errorf("void-of-course derivation: %w", err)
	}

	return &Timeline{
		Window: w,
		Events: scan.BuildTimeline(aspects, ingresses, voids),
	}, nil
}
