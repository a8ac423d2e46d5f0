package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vekiano/mapa-astral-estrelas/internal/astro"
	"github.com/vekiano/mapa-astral-estrelas/internal/config"
)

// NewTimelineCommand computes the event timeline around a moment and
// prints one event per line (text) or the raw events (json).
func NewTimelineCommand(opts *RootOptions) *cobra.Command {
	flags := &momentFlags{}
	var marginDays float64

	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Compute the event timeline around a moment",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.ConfigPath)
			if err != nil {
				return err
			}
			if marginDays > 0 {
				cfg.WindowMarginDays = marginDays
			}

			in := flags.input()
			tl, err := newComputer(cfg).ComputeTimeline(cmd.Context(), in, timelineOptions(cfg))
			if err != nil {
				return fmt.Errorf("compute timeline: %w", err)
			}

			if opts.Format == "json" {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(tl)
			}

			out := cmd.OutOrStdout()
			for _, ev := range tl.Events {
				c := astro.CalendarAt(ev.Exact, in.Calendar.UTCOffset)
				fmt.Fprintf(out, "%02d/%02d/%04d %02d:%02d:%02d - %s\n",
					c.Day, c.Month, c.Year, c.Hour, c.Minute, c.Second, ev.Description())
			}
			if len(tl.Events) == 0 {
				fmt.Fprintln(out, "(nenhum evento no período)")
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().Float64Var(&marginDays, "margin", 0, "window margin in days (overrides config)")
	return cmd
}
