package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vekiano/mapa-astral-estrelas/internal/astro"
	"github.com/vekiano/mapa-astral-estrelas/internal/chart"
	"github.com/vekiano/mapa-astral-estrelas/internal/config"
	"github.com/vekiano/mapa-astral-estrelas/internal/ephemeris"
)

// momentFlags holds the chart-moment flags shared by the chart and
// timeline commands. Defaults are the current UTC moment at Brasília's
// coordinates, matching the original front end's prefill.
type momentFlags struct {
	name      string
	day       int
	month     int
	year      int
	hour      int
	minute    int
	second    int
	latitude  float64
	longitude float64
	utcOffset float64
	city      string
	state     string
	country   string
}

func (f *momentFlags) register(cmd *cobra.Command) {
	now := time.Now().UTC()
	cmd.Flags().StringVar(&f.name, "name", "Mapa do Momento", "chart title")
	cmd.Flags().IntVar(&f.day, "day", now.Day(), "day of month")
	cmd.Flags().IntVar(&f.month, "month", int(now.Month()), "month")
	cmd.Flags().IntVar(&f.year, "year", now.Year(), "year")
	cmd.Flags().IntVar(&f.hour, "hour", now.Hour(), "hour (local)")
	cmd.Flags().IntVar(&f.minute, "minute", now.Minute(), "minute")
	cmd.Flags().IntVar(&f.second, "second", now.Second(), "second")
	cmd.Flags().Float64Var(&f.latitude, "lat", -15.77, "latitude in decimal degrees")
	cmd.Flags().Float64Var(&f.longitude, "lon", -47.92, "longitude in decimal degrees")
	cmd.Flags().Float64Var(&f.utcOffset, "tz", 0, "fixed UTC offset in hours")
	cmd.Flags().StringVar(&f.city, "city", "", "city label for the report")
	cmd.Flags().StringVar(&f.state, "state", "", "state label for the report")
	cmd.Flags().StringVar(&f.country, "country", "", "country label for the report")
}

func (f *momentFlags) input() chart.Input {
	return chart.Input{
		Name: f.name,
		Calendar: astro.Calendar{
			Year: f.year, Month: f.month, Day: f.day,
			Hour: f.hour, Minute: f.minute, Second: f.second,
			UTCOffset: f.utcOffset,
		},
		Latitude:  f.latitude,
		Longitude: f.longitude,
		City:      f.city,
		State:     f.state,
		Country:   f.country,
	}
}

// newComputer builds the chart computer from loaded configuration with
// the built-in mean-motion oracle.
func newComputer(cfg config.Config) *chart.Computer {
	return chart.NewComputer(
		ephemeris.NewMeanMotion(),
		cfg.NatalTable(),
		ephemeris.HouseSystem(cfg.HouseSystem),
	)
}

// timelineOptions maps configuration to timeline computation options.
func timelineOptions(cfg config.Config) chart.TimelineOptions {
	return chart.TimelineOptions{
		MarginDays:  cfg.WindowMarginDays,
		StepDays:    cfg.StepDays,
		ScanAspects: cfg.ScanTable(),
		Workers:     cfg.Workers,
	}
}
