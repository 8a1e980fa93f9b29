package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hamzaelsherif03/Calculator/alert"
	"github.com/hamzaelsherif03/Calculator/pkg/logger"
	"github.com/hamzaelsherif03/Calculator/replay"
)

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Replay historical prices against the grid",
	Long: `Replay a CSV price series against a fixed ladder and report the
equity trajectory. Each row is re-analysed in full; tier changes and
margin-call proximity raise alerts on stderr.

The CSV may be a bare price column or timestamped rows; with a header,
the column named "price" is used, otherwise the last column.

Examples:
  gridcalc replay --prices data/xauusd.csv
  gridcalc replay --prices ticks.csv -o equity.csv --bell`,
	RunE: runReplayCmd,
}

var (
	replayPrices string
	replayOut    string
	replayBell   bool
)

func init() {
	rootCmd.AddCommand(replayCmd)

	replayCmd.Flags().StringVarP(&replayPrices, "prices", "p", "", "CSV file of prices (required)")
	replayCmd.Flags().StringVarP(&replayOut, "out", "o", "", "write the per-tick equity curve to this CSV file")
	replayCmd.Flags().BoolVar(&replayBell, "bell", false, "ring the terminal bell on warning and critical alerts")
	replayCmd.MarkFlagRequired("prices")
}

func runReplayCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	manager := alert.NewManager(log, alert.NewLogChannel(log))
	if replayBell || cfg.Alert.Bell {
		manager.Register(alert.NewBellChannel(os.Stderr))
	}
	watcher := alert.NewWatcher(manager, cfg.Alert.WarnDistance)

	in, err := os.Open(replayPrices)
	if err != nil {
		return fmt.Errorf("open prices: %w", err)
	}
	defer in.Close()

	sinks := replay.Sinks{Watcher: watcher, Log: log}
	if replayOut != "" {
		out, err := os.Create(replayOut)
		if err != nil {
			return fmt.Errorf("create %s: %w", replayOut, err)
		}
		defer out.Close()
		sinks.Curve = out
	}

	fmt.Printf("Replaying prices from: %s\n", replayPrices)
	sum, err := replay.Run(cmd.Context(), in, cfg.Grid, sinks)
	if err != nil {
		return fmt.Errorf("replay error: %w", err)
	}

	fmt.Printf("\nReplay complete!\n")
	fmt.Printf("  Ticks: %d\n", sum.Ticks)
	fmt.Printf("  Price: %.2f -> %.2f\n", sum.FirstPrice, sum.LastPrice)
	fmt.Printf("  Min Equity: %.2f\n", sum.MinEquity)
	fmt.Printf("  Max Margin Usage: %.2f%% [%s]\n", sum.MaxMarginPct, sum.WorstTier)
	if sum.StopOutTicks > 0 {
		fmt.Printf("  Stop-Out Ticks: %d\n", sum.StopOutTicks)
	}
	if sum.NoPosition > 0 {
		fmt.Printf("  Flat Ticks: %d\n", sum.NoPosition)
	}
	if replayOut != "" {
		fmt.Printf("\nEquity curve saved to: %s\n", replayOut)
	}
	return nil
}
