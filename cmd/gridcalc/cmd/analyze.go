package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hamzaelsherif03/Calculator/preset"
	"github.com/hamzaelsherif03/Calculator/report"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run a full risk analysis for the current parameters",
	Long: `Analyze the grid at the current market price: position snapshot,
margin-call and equity-loss prices, and drawdown scenarios.

Parameters come from defaults, then the config file, then flags.

Examples:
  gridcalc analyze
  gridcalc analyze --price 2550 --balance "$12,500" --leverage 1:500
  gridcalc analyze --json
  gridcalc analyze --save --preset conservative`,
	RunE: runAnalyze,
}

var (
	analyzeJSON   bool
	analyzeSave   bool
	analyzePreset string
)

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "print the analysis as JSON")
	analyzeCmd.Flags().BoolVar(&analyzeSave, "save", false, "record this run as a session in the store")
	analyzeCmd.Flags().StringVar(&analyzePreset, "preset", "", "preset name to tag a saved session with")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	a, err := report.Build(cfg.Grid, cfg.Report)
	if err != nil {
		return fmt.Errorf("analysis: %w", err)
	}

	if analyzeJSON {
		out, err := json.MarshalIndent(a, "", "  ")
		if err != nil {
			return fmt.Errorf("encode analysis: %w", err)
		}
		fmt.Println(string(out))
	} else {
		printAnalysis(a)
	}

	if analyzeSave {
		store, err := preset.NewSQLite(cfg.Store.DBPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer store.Close()

		sess, err := store.RecordSession(preset.SessionFromAnalysis(a, analyzePreset))
		if err != nil {
			return fmt.Errorf("record session: %w", err)
		}
		fmt.Printf("\nSession saved: %s (%s)\n", sess.ID, cfg.Store.DBPath)
	}
	return nil
}

func printAnalysis(a *report.Analysis) {
	p := a.Params
	fmt.Printf("Grid: %d levels from %.2f, step %.2f, lot %.4f per level\n",
		p.LevelCount, p.StartPrice, p.Step, p.LotSize)
	fmt.Printf("Account: balance %.2f, leverage 1:%d, contract size %.0f\n",
		p.Balance, p.Leverage, p.ContractSize)

	if a.HasPosition {
		s := a.Snapshot
		fmt.Printf("\nPosition at %.2f:\n", p.CurrentPrice)
		fmt.Printf("  Triggered Levels: %d of %d\n", s.NumTriggered, p.LevelCount)
		fmt.Printf("  Total Lots: %.4f (units: %.2f)\n", s.TotalLots, s.TotalUnits)
		fmt.Printf("  Average Entry: %.2f\n", s.AvgEntry)
		fmt.Printf("  Floating P/L: %.2f\n", s.FloatingPL)
		fmt.Printf("  Equity: %.2f\n", s.Equity)
		fmt.Printf("  Used Margin: %.2f\n", s.UsedMargin)
		fmt.Printf("  Free Margin: %.2f\n", s.FreeMargin)
		fmt.Printf("  Margin Usage: %.2f%% [%s]\n", s.MarginPercent, s.Tier)
	} else {
		fmt.Printf("\nNo position: price %.2f is above the first level %.2f.\n",
			p.CurrentPrice, p.StartPrice)
	}

	fmt.Printf("\nCritical Prices:\n")
	if a.HasPosition {
		fmt.Printf("  Break Even: %.2f\n", a.Snapshot.BreakEvenPrice)
		fmt.Printf("  Profit Target: %.2f\n", a.Snapshot.ProfitTargetPrice)
	}
	if a.MarginCallPrice > 0 {
		fmt.Printf("  Margin Call: %.2f (%.2f below current)\n", a.MarginCallPrice, a.MaxSafeDrop)
	} else {
		fmt.Printf("  Margin Call: not reached within the grid\n")
	}
	for _, row := range a.Targets {
		label := fmt.Sprintf("Equity %.0f%%", row.Fraction*100)
		switch {
		case row.Reached && row.Drop > 0:
			fmt.Printf("  %s: %.2f (%.2f below current)\n", label, row.Price, row.Drop)
		case row.Reached:
			fmt.Printf("  %s: %.2f (already at or below target)\n", label, row.Price)
		default:
			fmt.Printf("  %s: not reached within the grid\n", label)
		}
	}

	fmt.Printf("\nDrop Scenarios:\n")
	for _, row := range a.Projections {
		if row.HasPosition {
			fmt.Printf("  -%.2f -> %.2f: %d levels, equity %.2f, margin %.2f%% [%s]\n",
				row.Drop, row.Price, row.Snapshot.NumTriggered,
				row.Snapshot.Equity, row.Snapshot.MarginPercent, row.Snapshot.Tier)
		} else {
			fmt.Printf("  -%.2f -> %.2f: flat\n", row.Drop, row.Price)
		}
	}
}
