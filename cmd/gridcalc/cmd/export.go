package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hamzaelsherif03/Calculator/report"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the ladder or the equity curve as CSV",
	Long: `Write the entry ladder (default) or the sampled equity curve to a
CSV file.

Examples:
  gridcalc export
  gridcalc export -o my_levels.csv
  gridcalc export --curve -o equity_curve.csv`,
	RunE: runExport,
}

var (
	exportOut   string
	exportCurve bool
)

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default grid_levels.csv, or equity_curve.csv with --curve)")
	exportCmd.Flags().BoolVar(&exportCurve, "curve", false, "export the equity curve instead of the ladder")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	a, err := report.Build(cfg.Grid, cfg.Report)
	if err != nil {
		return fmt.Errorf("analysis: %w", err)
	}

	out := exportOut
	if out == "" {
		out = "grid_levels.csv"
		if exportCurve {
			out = "equity_curve.csv"
		}
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create %s: %w", out, err)
	}
	defer f.Close()

	if exportCurve {
		err = report.WriteCurveCSV(f, a)
	} else {
		err = report.WriteLadderCSV(f, a)
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}

	if exportCurve {
		fmt.Printf("✓ Equity curve exported: %s (%d samples)\n", out, len(a.Curve))
	} else {
		fmt.Printf("✓ Ladder exported: %s (%d levels)\n", out, len(a.Ladder))
	}
	return nil
}
