package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hamzaelsherif03/Calculator/chart"
	"github.com/hamzaelsherif03/Calculator/report"
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Render the equity curve as an HTML chart",
	Long: `Render equity, balance, used margin and the stop-out level across
the sampled price range to a self-contained HTML file.

Examples:
  gridcalc chart
  gridcalc chart -o gold_grid.html --price 2550`,
	RunE: runChart,
}

var chartOut string

func init() {
	rootCmd.AddCommand(chartCmd)

	chartCmd.Flags().StringVarP(&chartOut, "out", "o", "equity_curve.html", "output HTML file")
}

func runChart(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	a, err := report.Build(cfg.Grid, cfg.Report)
	if err != nil {
		return fmt.Errorf("analysis: %w", err)
	}

	if err := chart.RenderFile(chartOut, a); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}

	fmt.Printf("✓ Chart written: %s\n", chartOut)
	if a.MarginCallPrice > 0 {
		fmt.Printf("  Margin call marked at %.2f\n", a.MarginCallPrice)
	}
	return nil
}
