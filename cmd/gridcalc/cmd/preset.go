package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hamzaelsherif03/Calculator/config"
	"github.com/hamzaelsherif03/Calculator/preset"
	"github.com/hamzaelsherif03/Calculator/report"
)

var presetCmd = &cobra.Command{
	Use:   "preset",
	Short: "Manage saved parameter presets",
	Long: `Save, inspect and reuse named parameter sets from the SQLite store.

Subcommands:
  save   - Save the current parameters under a name
  list   - List all saved presets
  show   - Show one preset's parameters
  delete - Delete a preset
  use    - Analyze with a saved preset

Examples:
  gridcalc preset save conservative --lot 0.01 --levels 30
  gridcalc preset list
  gridcalc preset use conservative --price 2580`,
}

var presetSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save the current parameters under a name",
	Args:  cobra.ExactArgs(1),
	RunE:  runPresetSave,
}

var presetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all saved presets",
	Args:  cobra.NoArgs,
	RunE:  runPresetList,
}

var presetShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show one preset's parameters",
	Args:  cobra.ExactArgs(1),
	RunE:  runPresetShow,
}

var presetDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a preset",
	Args:  cobra.ExactArgs(1),
	RunE:  runPresetDelete,
}

var presetUseCmd = &cobra.Command{
	Use:   "use <name>",
	Short: "Analyze with a saved preset",
	Long: `Load a preset and run the full analysis with it. A --price flag on
the command line overrides the stored market price.`,
	Args: cobra.ExactArgs(1),
	RunE: runPresetUse,
}

func init() {
	rootCmd.AddCommand(presetCmd)
	presetCmd.AddCommand(presetSaveCmd)
	presetCmd.AddCommand(presetListCmd)
	presetCmd.AddCommand(presetShowCmd)
	presetCmd.AddCommand(presetDeleteCmd)
	presetCmd.AddCommand(presetUseCmd)
}

func openStore(cfg *config.Config) (*preset.SQLite, error) {
	store, err := preset.NewSQLite(cfg.Store.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open store %s: %w", cfg.Store.DBPath, err)
	}
	return store, nil
}

func runPresetSave(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	saved, err := store.SavePreset(args[0], cfg.Grid)
	if err != nil {
		return fmt.Errorf("save preset: %w", err)
	}

	fmt.Printf("✓ Preset saved: %s (%s)\n", saved.Name, saved.ID)
	return nil
}

func runPresetList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	presets, err := store.ListPresets()
	if err != nil {
		return fmt.Errorf("list presets: %w", err)
	}
	if len(presets) == 0 {
		fmt.Println("No presets saved yet. Create one with: gridcalc preset save <name>")
		return nil
	}

	fmt.Printf("%-20s %10s %8s %8s %7s %10s\n",
		"Name", "Start", "Step", "Lot", "Levels", "Leverage")
	for _, pre := range presets {
		fmt.Printf("%-20s %10.2f %8.2f %8.4f %7d %9s\n",
			pre.Name, pre.Params.StartPrice, pre.Params.Step,
			pre.Params.LotSize, pre.Params.LevelCount,
			fmt.Sprintf("1:%d", pre.Params.Leverage))
	}
	return nil
}

func runPresetShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	pre, err := store.GetPreset(args[0])
	if err != nil {
		return fmt.Errorf("get preset: %w", err)
	}

	p := pre.Params
	fmt.Printf("Preset: %s\n", pre.Name)
	fmt.Printf("  ID: %s\n", pre.ID)
	fmt.Printf("  Start Price: %.2f\n", p.StartPrice)
	fmt.Printf("  Current Price: %.2f\n", p.CurrentPrice)
	fmt.Printf("  Step: %.2f\n", p.Step)
	fmt.Printf("  Lot Size: %.4f\n", p.LotSize)
	fmt.Printf("  Levels: %d\n", p.LevelCount)
	fmt.Printf("  Take Profit: %.2f\n", p.TakeProfit)
	fmt.Printf("  Balance: %.2f\n", p.Balance)
	fmt.Printf("  Leverage: 1:%d\n", p.Leverage)
	fmt.Printf("  Contract Size: %.0f\n", p.ContractSize)
	fmt.Printf("  Updated: %s\n", pre.UpdatedAt.Local().Format("2006-01-02 15:04:05"))
	return nil
}

func runPresetDelete(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.DeletePreset(args[0]); err != nil {
		return fmt.Errorf("delete preset: %w", err)
	}

	fmt.Printf("✓ Preset deleted: %s\n", args[0])
	return nil
}

func runPresetUse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	pre, err := store.GetPreset(args[0])
	if err != nil {
		return fmt.Errorf("get preset: %w", err)
	}

	params := pre.Params
	if rootCmd.PersistentFlags().Changed("price") {
		params.CurrentPrice = flagPrice
	}

	a, err := report.Build(params, cfg.Report)
	if err != nil {
		return fmt.Errorf("analysis: %w", err)
	}

	fmt.Printf("Using preset: %s\n\n", pre.Name)
	printAnalysis(a)
	return nil
}
