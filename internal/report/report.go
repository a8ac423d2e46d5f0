// Package report renders chart snapshots and event timelines as the
// plain-text report served by the API and the CLI.
//
// All instants are converted back to local time with the same fixed UTC
// offset the request came in with; the formatter never consults a
// timezone database.
package report

import (
	"fmt"
	"strings"

	"github.com/vekiano/mapa-astral-estrelas/internal/astro"
	"github.com/vekiano/mapa-astral-estrelas/internal/chart"
)

const lineWidth = 100

// RenderText produces the full text report: header, planet table,
// houses, natal aspects by ascending orb, and the period timeline with
// the chart-moment marker. A nil timeline omits the transit section.
func RenderText(snap *chart.Snapshot, tl *chart.Timeline) string {
	var b strings.Builder
	heavy := strings.Repeat("=", lineWidth)
	light := strings.Repeat("-", lineWidth)

	title := snap.Input.Name
	if title == "" {
		title = "MAPA ASTRAL COMPLETO"
	}

	cal := snap.Input.Calendar
	fmt.Fprintf(&b, "%s\n%s\n%s\n", heavy, title, heavy)
	fmt.Fprintf(&b, "Data: %02d/%02d/%04d  Hora: %02d:%02d:%02d (UTC %+.2fh)\n",
		cal.Day, cal.Month, cal.Year, cal.Hour, cal.Minute, cal.Second, cal.UTCOffset)
	if snap.Input.City != "" || snap.Input.State != "" || snap.Input.Country != "" {
		fmt.Fprintf(&b, "Local: %s / %s / %s\n", snap.Input.City, snap.Input.State, snap.Input.Country)
	}
	fmt.Fprintf(&b, "Latitude: %.6f°  Longitude: %.6f°\n%s\n\n", snap.Input.Latitude, snap.Input.Longitude, heavy)

	fmt.Fprintf(&b, "PLANETAS:\n%s\n", light)
	for _, p := range snap.Placements {
		motion := "DIR"
		if p.Retrograde {
			motion = "RET"
		}
		fmt.Fprintf(&b, "%-3s [%s %s] %s\n", p.Body.Code(), p.InSign, p.SignCode, motion)
	}

	fmt.Fprintf(&b, "\nCASAS ASTROLÓGICAS:\n%s\n", light)
	for _, h := range snap.Houses {
		fmt.Fprintf(&b, "Casa %2d: %s %s\n", h.Number, h.InSign, h.SignCode)
	}

	fmt.Fprintf(&b, "\nASPECTOS DO MAPA ASTRAL (%d):\n%s\n", len(snap.Aspects), light)
	for _, a := range snap.Aspects {
		pa, _ := snap.Placement(a.BodyA)
		pb, _ := snap.Placement(a.BodyB)
		fmt.Fprintf(&b, "%-3s [%s %s] %s %-3s [%s %s] - Orbe: %.2f°\n",
			a.BodyA.Code(), pa.InSign, pa.SignCode,
			a.AspectCode,
			a.BodyB.Code(), pb.InSign, pb.SignCode,
			a.Separation)
	}

	if tl != nil && len(tl.Events) > 0 {
		fmt.Fprintf(&b, "\n%s\nTRÂNSITOS DO PERÍODO (%d):\n%s\n", heavy, len(tl.Events), light)
		renderTimeline(&b, snap, tl)
	}

	fmt.Fprintf(&b, "\n%s\n", heavy)
	return b.String()
}

// renderTimeline writes the events in local time, inserting the
// chart-moment marker line at its chronological position.
func renderTimeline(b *strings.Builder, snap *chart.Snapshot, tl *chart.Timeline) {
	offset := snap.Input.Calendar.UTCOffset
	markerShown := false

	for _, ev := range tl.Events {
		if !markerShown && ev.Exact >= snap.Instant {
			fmt.Fprintf(b, "%s <-------- MOMENTO DO MAPA ASTRAL\n", formatLocal(snap.Instant, offset))
			markerShown = true
		}
		fmt.Fprintf(b, "%s - %s\n", formatLocal(ev.Exact, offset), ev.Description())
	}
	if !markerShown {
		fmt.Fprintf(b, "%s <-------- MOMENTO DO MAPA ASTRAL\n", formatLocal(snap.Instant, offset))
	}
}

// formatLocal renders a UTC instant as DD/MM/YYYY HH:MM:SS in the fixed
// local offset.
func formatLocal(t astro.Instant, utcOffset float64) string {
	c := astro.CalendarAt(t, utcOffset)
	return fmt.Sprintf("%02d/%02d/%04d %02d:%02d:%02d",
		c.Day, c.Month, c.Year, c.Hour, c.Minute, c.Second)
}
