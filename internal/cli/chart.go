package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vekiano/mapa-astral-estrelas/internal/chart"
	"github.com/vekiano/mapa-astral-estrelas/internal/config"
	"github.com/vekiano/mapa-astral-estrelas/internal/report"
)

// NewChartCommand computes a single chart and prints the report.
func NewChartCommand(opts *RootOptions) *cobra.Command {
	flags := &momentFlags{}
	var withTimeline bool

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Compute a chart snapshot for a moment and location",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.ConfigPath)
			if err != nil {
				return err
			}

			computer := newComputer(cfg)
			in := flags.input()

			snap, err := computer.ComputeSnapshot(cmd.Context(), in)
			if err != nil {
				return fmt.Errorf("compute snapshot: %w", err)
			}

			var tl *chart.Timeline
			if withTimeline {
				tl, err = computer.ComputeTimeline(cmd.Context(), in, timelineOptions(cfg))
				if err != nil {
					return fmt.Errorf("compute timeline: %w", err)
				}
			}

			if opts.Format == "json" {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(map[string]any{
					"snapshot": snap,
					"timeline": tl,
				})
			}

			fmt.Fprint(cmd.OutOrStdout(), report.RenderText(snap, tl))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&withTimeline, "timeline", true, "include the period timeline in the report")
	return cmd
}
