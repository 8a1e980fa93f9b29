// Package grid computes risk metrics for martingale ladder strategies:
// entry ladders, aggregate position state, drawdown projections, margin-call
// and equity-loss solvers, and equity curve sampling. All functions are pure;
// callers own mutable state and re-run the pipeline on parameter changes.
package grid

import "fmt"

// Parameters describes one ladder analysis. All monetary fields share the
// account currency unit; prices are in instrument quote units.
type Parameters struct {
	StartPrice   float64 `json:"start_price" yaml:"start_price"`
	CurrentPrice float64 `json:"current_price" yaml:"current_price"`
	Step         float64 `json:"step" yaml:"step"`
	LotSize      float64 `json:"lot_size" yaml:"lot_size"`
	LevelCount   int     `json:"level_count" yaml:"level_count"`
	TakeProfit   float64 `json:"take_profit" yaml:"take_profit"`
	Balance      float64 `json:"balance" yaml:"balance"`
	Leverage     int     `json:"leverage" yaml:"leverage"`
	ContractSize float64 `json:"contract_size" yaml:"contract_size"`
}

// Defaults returns the canonical XAUUSD-flavoured parameter set.
func Defaults() Parameters {
	return Parameters{
		StartPrice:   2650,
		CurrentPrice: 2600,
		Step:         5,
		LotSize:      0.1,
		LevelCount:   20,
		TakeProfit:   5,
		Balance:      10000,
		Leverage:     2000,
		ContractSize: 1,
	}
}

// Validate checks that the parameters describe a computable ladder. A
// LevelCount of zero or less passes: it is the no-strategy state, an empty
// ladder with a flat account.
func (p Parameters) Validate() error {
	if p.StartPrice <= 0 {
		return fmt.Errorf("start_price must be positive")
	}
	if p.CurrentPrice < 0 {
		return fmt.Errorf("current_price must not be negative")
	}
	if p.Step <= 0 {
		return fmt.Errorf("step must be positive")
	}
	if p.LotSize <= 0 {
		return fmt.Errorf("lot_size must be positive")
	}
	if p.LevelCount > 200 {
		return fmt.Errorf("level_count must not exceed 200")
	}
	if p.TakeProfit < 0 {
		return fmt.Errorf("take_profit must not be negative")
	}
	if p.Balance < 0 {
		return fmt.Errorf("balance must not be negative")
	}
	if p.Leverage < 1 {
		return fmt.Errorf("leverage must be at least 1")
	}
	if p.ContractSize <= 0 {
		return fmt.Errorf("contract_size must be positive")
	}
	return nil
}

// UnitsPerLevel is the position size one rung adds, in instrument units.
func (p Parameters) UnitsPerLevel() float64 {
	return p.LotSize * p.ContractSize
}
