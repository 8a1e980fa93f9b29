package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hamzaelsherif03/Calculator/grid"
)

var ladderCmd = &cobra.Command{
	Use:   "ladder",
	Short: "Print the entry ladder",
	Long: `Print every grid level with its trigger state, cumulative exposure
and potential take-profit payout.

Examples:
  gridcalc ladder
  gridcalc ladder --start 2700 --step 10 --levels 15`,
	RunE: runLadder,
}

func init() {
	rootCmd.AddCommand(ladderCmd)
}

func runLadder(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	p := cfg.Grid
	levels := grid.GenerateLadder(p)

	fmt.Printf("Grid: %d levels from %.2f, step %.2f, current price %.2f\n\n",
		p.LevelCount, p.StartPrice, p.Step, p.CurrentPrice)
	fmt.Printf("%4s  %10s  %-9s  %8s  %10s  %10s  %10s\n",
		"#", "Price", "Status", "Lots", "Cum.Lots", "Margin", "TP Profit")
	for _, lvl := range levels {
		status := "Waiting"
		if lvl.Triggered {
			status = "TRIGGERED"
		}
		fmt.Printf("%4d  %10.2f  %-9s  %8.4f  %10.4f  %10.2f  %10.2f\n",
			lvl.Index, lvl.Price, status, lvl.Lots, lvl.CumulativeLots,
			lvl.MarginRequired, lvl.PotentialProfit)
	}
	return nil
}
