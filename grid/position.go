package grid

import "errors"

// RiskTier buckets margin usage into the scale shown to users.
type RiskTier string

const (
	TierLow      RiskTier = "LOW"
	TierModerate RiskTier = "MODERATE"
	TierHigh     RiskTier = "HIGH"
	TierExtreme  RiskTier = "EXTREME"
)

// ErrNoPosition reports that no rung is triggered at the evaluation price,
// so there is no position to aggregate.
var ErrNoPosition = errors.New("grid: no triggered levels at evaluation price")

// Snapshot is the aggregate position state at one evaluation price.
// FloatingPL, Equity and the margin figures share the account currency unit;
// the formulas carry the instrument's fixed x100 contract multiplier.
// BreakEvenPrice equals the size-weighted average entry; ProfitTargetPrice
// sits TakeProfit above it, where the whole basket closes in profit.
type Snapshot struct {
	NumTriggered      int      `json:"num_triggered"`
	TotalLots         float64  `json:"total_lots"`
	TotalUnits        float64  `json:"total_units"`
	AvgEntry          float64  `json:"avg_entry"`
	BreakEvenPrice    float64  `json:"break_even_price"`
	ProfitTargetPrice float64  `json:"profit_target_price"`
	FloatingPL        float64  `json:"floating_pl"`
	Equity            float64  `json:"equity"`
	UsedMargin        float64  `json:"used_margin"`
	FreeMargin        float64  `json:"free_margin"`
	MarginPercent     float64  `json:"margin_percent"`
	Tier              RiskTier `json:"tier"`
}

// Aggregate computes the position snapshot at the current price.
func Aggregate(levels []Level, p Parameters) (Snapshot, error) {
	return EvaluateAt(levels, p, p.CurrentPrice)
}

// EvaluateAt computes the position snapshot as if the market were at price.
// The ladder is not modified; the triggered prefix is derived from price
// directly, so stale Triggered flags cannot skew a solve.
func EvaluateAt(levels []Level, p Parameters, price float64) (Snapshot, error) {
	var (
		n                     int
		lots, units, weighted float64
	)
	for _, lvl := range levels {
		if price > lvl.Price {
			break
		}
		n++
		lots += lvl.Lots
		u := lvl.Lots * p.ContractSize
		units += u
		weighted += lvl.Price * u
	}
	if n == 0 || units <= 0 {
		return Snapshot{}, ErrNoPosition
	}

	avg := weighted / units
	pl := Round2((price - avg) * units * 100)
	equity := Round2(p.Balance + pl)

	lev := p.Leverage
	if lev < 1 {
		lev = 1
	}
	margin := Round2(price * units * 100 / float64(lev))

	// Margin usage is measured against balance, floored at one account unit
	// so an empty account still yields a finite percentage.
	base := p.Balance
	if base < 1 {
		base = 1
	}
	pct := Round2(margin / base * 100)

	return Snapshot{
		NumTriggered:      n,
		TotalLots:         Round4(lots),
		TotalUnits:        Round4(units),
		AvgEntry:          Round2(avg),
		BreakEvenPrice:    Round2(avg),
		ProfitTargetPrice: Round2(avg + p.TakeProfit),
		FloatingPL:        pl,
		Equity:            equity,
		UsedMargin:        margin,
		FreeMargin:        Round2(equity - margin),
		MarginPercent:     pct,
		Tier:              TierFor(pct),
	}, nil
}

// TierFor buckets a margin usage percentage. Boundaries are exclusive:
// exactly 70 is HIGH, exactly 50 is MODERATE, exactly 30 is LOW.
func TierFor(marginPercent float64) RiskTier {
	switch {
	case marginPercent > 70:
		return TierExtreme
	case marginPercent > 50:
		return TierHigh
	case marginPercent > 30:
		return TierModerate
	default:
		return TierLow
	}
}
