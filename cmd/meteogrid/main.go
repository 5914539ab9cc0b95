// Command meteogrid converts agency meteorological CSV exports into
// year-by-month spreadsheets and yearly bar charts.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/couchcryptid/meteo-grid/internal/adapter/agencycsv"
	"github.com/couchcryptid/meteo-grid/internal/adapter/chart"
	"github.com/couchcryptid/meteo-grid/internal/adapter/spreadsheet"
	"github.com/couchcryptid/meteo-grid/internal/config"
	"github.com/couchcryptid/meteo-grid/internal/observability"
	"github.com/couchcryptid/meteo-grid/internal/pipeline"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "meteogrid",
		Short:         "Convert agency meteorological CSV exports",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newConvertCmd(), newChartCmd(), newYearsCmd())
	return root
}

// newConverter loads config and wires the stages. Called per subcommand so
// flag parsing errors surface before any file is touched.
func newConverter() (*pipeline.Converter, *slog.Logger, error) {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	logger := observability.NewLogger(cfg)

	loader := agencycsv.New(cfg, logger)
	exporter := spreadsheet.New(cfg, logger)
	renderer := chart.New(cfg, logger)

	return pipeline.New(loader, exporter, renderer, logger), logger, nil
}

func newConvertCmd() *cobra.Command {
	var input, output string

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert a CSV export to a year-by-month spreadsheet",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, logger, err := newConverter()
			if err != nil {
				return err
			}
			if err := c.Convert(cmd.Context(), input, output); err != nil {
				return err
			}
			logger.Info("spreadsheet written", "input", input, "output", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "path to the agency CSV export")
	cmd.Flags().StringVarP(&output, "output", "o", "", "path of the spreadsheet to write")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

func newChartCmd() *cobra.Command {
	var (
		input, output string
		year          int
	)

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Render the monthly bar chart for one year",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, logger, err := newConverter()
			if err != nil {
				return err
			}
			if err := c.RenderChart(cmd.Context(), input, year, output); err != nil {
				return err
			}
			logger.Info("chart written", "input", input, "year", year, "output", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "path to the agency CSV export")
	cmd.Flags().IntVar(&year, "year", 0, "year to chart")
	cmd.Flags().StringVarP(&output, "output", "o", "", "path of the PNG to write")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("year")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

func newYearsCmd() *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "years",
		Short: "List the years present in a CSV export",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, _, err := newConverter()
			if err != nil {
				return err
			}
			years, err := c.Years(cmd.Context(), input)
			if err != nil {
				return err
			}
			for _, y := range years {
				fmt.Fprintln(cmd.OutOrStdout(), y)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "path to the agency CSV export")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}
