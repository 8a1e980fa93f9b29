package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregateDefaults(t *testing.T) {
	t.Parallel()

	p := Defaults()
	levels := GenerateLadder(p)

	s, err := Aggregate(levels, p)
	assert.NoError(t, err)

	assert.Equal(t, 11, s.NumTriggered)
	assert.InDelta(t, 1.1, s.TotalLots, 1e-9)
	assert.InDelta(t, 1.1, s.TotalUnits, 1e-9)
	assert.InDelta(t, 2625.00, s.AvgEntry, 1e-9)
	assert.InDelta(t, 2625.00, s.BreakEvenPrice, 1e-9)
	assert.InDelta(t, 2630.00, s.ProfitTargetPrice, 1e-9)
	assert.InDelta(t, -2750.00, s.FloatingPL, 1e-9)
	assert.InDelta(t, 7250.00, s.Equity, 1e-9)
	assert.InDelta(t, 143.00, s.UsedMargin, 1e-9)
	assert.InDelta(t, 7107.00, s.FreeMargin, 1e-9)
	assert.InDelta(t, 1.43, s.MarginPercent, 1e-9)
	assert.Equal(t, TierLow, s.Tier)
}

func TestAggregateIdentities(t *testing.T) {
	t.Parallel()

	p := Defaults()
	levels := GenerateLadder(p)

	s, err := Aggregate(levels, p)
	assert.NoError(t, err)

	assert.InDelta(t, p.Balance+s.FloatingPL, s.Equity, 0.01)
	assert.InDelta(t, s.Equity-s.UsedMargin, s.FreeMargin, 0.01)
	assert.InDelta(t, s.AvgEntry, s.BreakEvenPrice, 1e-9)
	assert.InDelta(t, s.BreakEvenPrice+p.TakeProfit, s.ProfitTargetPrice, 0.01)
}

func TestAggregateNoPosition(t *testing.T) {
	t.Parallel()

	p := Defaults()
	p.CurrentPrice = 2660
	levels := GenerateLadder(p)

	_, err := Aggregate(levels, p)
	assert.ErrorIs(t, err, ErrNoPosition)
}

func TestEvaluateAt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		price        float64
		triggered    int
		avgEntry     float64
		profitTarget float64
	}{
		{"single rung", 2650, 1, 2650.00, 2655.00},
		{"half ladder", 2605, 10, 2627.50, 2632.50},
		{"full ladder", 2500, 20, 2602.50, 2607.50},
	}

	p := Defaults()
	levels := GenerateLadder(p)

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, err := EvaluateAt(levels, p, tt.price)
			assert.NoError(t, err)
			assert.Equal(t, tt.triggered, s.NumTriggered)
			assert.InDelta(t, tt.avgEntry, s.AvgEntry, 1e-9)
			assert.InDelta(t, tt.avgEntry, s.BreakEvenPrice, 1e-9)
			assert.InDelta(t, tt.profitTarget, s.ProfitTargetPrice, 1e-9)
		})
	}
}

func TestEvaluateAtIgnoresStaleFlags(t *testing.T) {
	t.Parallel()

	p := Defaults()
	levels := GenerateLadder(p)
	Retrigger(levels, 2700) // nothing triggered

	s, err := EvaluateAt(levels, p, 2600)
	assert.NoError(t, err)
	assert.Equal(t, 11, s.NumTriggered)
}

func TestMarginPercentBalanceFloor(t *testing.T) {
	t.Parallel()

	p := Defaults()
	p.Balance = 0
	levels := GenerateLadder(p)

	s, err := Aggregate(levels, p)
	assert.NoError(t, err)
	assert.InDelta(t, 14300.0, s.MarginPercent, 1e-6)
	assert.Equal(t, TierExtreme, s.Tier)
}

func TestTierFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pct  float64
		want RiskTier
	}{
		{0, TierLow},
		{30, TierLow},
		{30.01, TierModerate},
		{50, TierModerate},
		{50.01, TierHigh},
		{70, TierHigh},
		{70.01, TierExtreme},
		{250, TierExtreme},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TierFor(tt.pct), "pct=%v", tt.pct)
	}
}

func TestParametersValidate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Defaults().Validate())

	tests := []struct {
		name   string
		mutate func(*Parameters)
	}{
		{"zero step", func(p *Parameters) { p.Step = 0 }},
		{"negative lot", func(p *Parameters) { p.LotSize = -0.1 }},
		{"too many levels", func(p *Parameters) { p.LevelCount = 201 }},
		{"zero leverage", func(p *Parameters) { p.Leverage = 0 }},
		{"zero start", func(p *Parameters) { p.StartPrice = 0 }},
		{"negative balance", func(p *Parameters) { p.Balance = -1 }},
		{"zero contract", func(p *Parameters) { p.ContractSize = 0 }},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := Defaults()
			tt.mutate(&p)
			assert.Error(t, p.Validate())
		})
	}
}
