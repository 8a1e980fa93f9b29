// Package report composes the grid engine's pieces into one analysis run and
// renders it for export. The engine stays stateless; this is the layer that
// walks the full pipeline on behalf of the CLI, the web dashboard and replay.
package report

import (
	"errors"
	"fmt"
	"time"

	"github.com/hamzaelsherif03/Calculator/grid"
)

// Options controls which scenario rows an analysis carries.
type Options struct {
	Drops         []float64 `json:"drops" yaml:"drops"`
	EquityTargets []float64 `json:"equity_targets" yaml:"equity_targets"`
	CurveSteps    int       `json:"curve_steps" yaml:"curve_steps"`
}

// DefaultOptions returns the scenario set shown on the standard report.
func DefaultOptions() Options {
	return Options{
		Drops:         []float64{25, 50, 75, 100},
		EquityTargets: []float64{0.75, 0.50, 0.25},
		CurveSteps:    50,
	}
}

// TargetRow is one equity-loss threshold solution.
type TargetRow struct {
	Fraction float64 `json:"fraction"`
	Price    float64 `json:"price"`
	Drop     float64 `json:"drop"`
	Reached  bool    `json:"reached"`
}

// ProjectionRow is the position state after one hypothetical drop.
type ProjectionRow struct {
	Drop        float64       `json:"drop"`
	Price       float64       `json:"price"`
	HasPosition bool          `json:"has_position"`
	Snapshot    grid.Snapshot `json:"snapshot"`
}

// Analysis is one complete run over a parameter set.
type Analysis struct {
	Params          grid.Parameters   `json:"params"`
	GeneratedAt     time.Time         `json:"generated_at"`
	Ladder          []grid.Level      `json:"ladder"`
	HasPosition     bool              `json:"has_position"`
	Snapshot        grid.Snapshot     `json:"snapshot"`
	MarginCallPrice float64           `json:"margin_call_price"`
	MaxSafeDrop     float64           `json:"max_safe_drop"`
	Targets         []TargetRow       `json:"targets"`
	Projections     []ProjectionRow   `json:"projections"`
	Curve           []grid.CurvePoint `json:"curve"`
}

// Build validates p and runs the full pipeline: ladder, aggregate snapshot,
// margin-call and equity-target solves, drawdown projections, equity curve.
// A price above the first rung is not an error here; the analysis reports a
// flat account instead.
func Build(p grid.Parameters, opts Options) (*Analysis, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}
	if len(opts.Drops) == 0 {
		opts.Drops = DefaultOptions().Drops
	}
	if len(opts.EquityTargets) == 0 {
		opts.EquityTargets = DefaultOptions().EquityTargets
	}
	if opts.CurveSteps < 1 {
		opts.CurveSteps = DefaultOptions().CurveSteps
	}

	levels := grid.GenerateLadder(p)
	a := &Analysis{
		Params:      p,
		GeneratedAt: time.Now().UTC(),
		Ladder:      levels,
	}

	snap, err := grid.Aggregate(levels, p)
	switch {
	case err == nil:
		a.HasPosition = true
		a.Snapshot = snap
	case errors.Is(err, grid.ErrNoPosition):
		// flat account, every position figure stays zero
	default:
		return nil, err
	}

	a.MarginCallPrice = grid.MarginCallPrice(levels, p)
	a.MaxSafeDrop = grid.MaxSafeDrop(levels, p)

	for _, fr := range opts.EquityTargets {
		row := TargetRow{Fraction: fr, Price: grid.PriceAtEquityTarget(levels, p, fr)}
		row.Reached = row.Price > 0
		if row.Reached {
			d := p.CurrentPrice - row.Price
			if d > 0 {
				row.Drop = grid.Round2(d)
			}
		}
		a.Targets = append(a.Targets, row)
	}

	for _, d := range opts.Drops {
		price := p.CurrentPrice - d
		if price < 0 {
			price = 0
		}
		row := ProjectionRow{Drop: d, Price: grid.Round2(price)}
		if s, err := grid.SimulateDrop(levels, p, d); err == nil {
			row.HasPosition = true
			row.Snapshot = s
		}
		a.Projections = append(a.Projections, row)
	}

	a.Curve = grid.SampleCurve(levels, p, opts.CurveSteps)
	return a, nil
}
