package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hamzaelsherif03/Calculator/config"
	"github.com/hamzaelsherif03/Calculator/grid"
)

var rootCmd = &cobra.Command{
	Use:   "gridcalc",
	Short: "A martingale grid risk calculator for leveraged instruments",
	Long: `Gridcalc analyses buy-the-dip ladder strategies before any order is placed.

It provides tools for:
  - Generating entry ladders and aggregate position state
  - Solving margin-call and equity-loss prices
  - Projecting drawdown scenarios and equity curves
  - Saving parameter presets and analysis sessions to SQLite
  - Replaying historical prices against a fixed ladder
  - Serving an HTML dashboard with a JSON API`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

var (
	cfgPath  string
	logLevel string
	dbPath   string

	flagStart    float64
	flagPrice    float64
	flagStep     float64
	flagLot      float64
	flagLevels   int
	flagTP       float64
	flagBalance  string
	flagLeverage string
	flagContract float64
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&cfgPath, "config", "f", "", "path to config file (YAML or JSON)")
	pf.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVarP(&dbPath, "db", "d", "", "path to the preset/session SQLite store")

	d := grid.Defaults()
	pf.Float64Var(&flagStart, "start", d.StartPrice, "price of the first buy level")
	pf.Float64Var(&flagPrice, "price", d.CurrentPrice, "current market price")
	pf.Float64Var(&flagStep, "step", d.Step, "price distance between levels")
	pf.Float64Var(&flagLot, "lot", d.LotSize, "lot size bought at each level")
	pf.IntVar(&flagLevels, "levels", d.LevelCount, "number of grid levels")
	pf.Float64Var(&flagTP, "tp", d.TakeProfit, "take-profit distance per level")
	pf.StringVar(&flagBalance, "balance", "", `account balance (accepts "$10,000")`)
	pf.StringVar(&flagLeverage, "leverage", "", `account leverage (accepts "1:2000" or "2000")`)
	pf.Float64Var(&flagContract, "contract", d.ContractSize, "contract size multiplier")
}

// loadConfig resolves the effective configuration: defaults, then the config
// file if one was given, then any parameter flags set on the command line.
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if cfgPath != "" {
		loaded, err := config.LoadFromFile(cfgPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	pf := rootCmd.PersistentFlags()
	if pf.Changed("start") {
		cfg.Grid.StartPrice = flagStart
	}
	if pf.Changed("price") {
		cfg.Grid.CurrentPrice = flagPrice
	}
	if pf.Changed("step") {
		cfg.Grid.Step = flagStep
	}
	if pf.Changed("lot") {
		cfg.Grid.LotSize = flagLot
	}
	if pf.Changed("levels") {
		cfg.Grid.LevelCount = flagLevels
	}
	if pf.Changed("tp") {
		cfg.Grid.TakeProfit = flagTP
	}
	if pf.Changed("balance") {
		cfg.Grid.Balance = config.ParseAmount(flagBalance)
	}
	if pf.Changed("leverage") {
		cfg.Grid.Leverage = config.ParseLeverage(flagLeverage)
	}
	if pf.Changed("contract") {
		cfg.Grid.ContractSize = flagContract
	}
	if pf.Changed("db") {
		cfg.Store.DBPath = dbPath
	}
	if pf.Changed("log-level") {
		cfg.Log.Level = logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
