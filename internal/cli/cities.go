package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vekiano/mapa-astral-estrelas/internal/cities"
	"github.com/vekiano/mapa-astral-estrelas/internal/config"
)

// NewCitiesCommand searches the configured gazetteer from the terminal.
func NewCitiesCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cities <query>",
		Short: "Search the city gazetteer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.ConfigPath)
			if err != nil {
				return err
			}
			if cfg.CitiesFile == "" {
				return fmt.Errorf("no cities_file configured")
			}

			ix, err := cities.OpenFile(cfg.CitiesFile)
			if err != nil {
				return err
			}
			defer ix.Close()

			results, err := ix.Search(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if opts.Format == "json" {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(results)
			}
			for _, c := range results {
				fmt.Fprintf(cmd.OutOrStdout(), "%s, %s - %s  (%.2f, %.2f, UTC%+.1f)\n",
					c.Name, c.State, c.Country, c.Lat, c.Lon, c.UTCOffset)
			}
			if len(results) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "(no matches)")
			}
			return nil
		},
	}
	return cmd
}
