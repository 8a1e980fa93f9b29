package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSampleCurveDefaults(t *testing.T) {
	t.Parallel()

	p := Defaults()
	levels := GenerateLadder(p)

	points := SampleCurve(levels, p, 60)
	assert.Len(t, points, 61)

	assert.InDelta(t, 2600.00, points[0].Price, 1e-9)
	assert.InDelta(t, 7250.00, points[0].Equity, 1e-9)
	assert.InDelta(t, 2503.14, points[60].Price, 0.02)

	for i := 1; i < len(points); i++ {
		assert.Less(t, points[i].Price, points[i-1].Price)
		assert.LessOrEqual(t, points[i].Equity, points[i-1].Equity)
	}
}

func TestSampleCurveNoMarginCall(t *testing.T) {
	t.Parallel()

	p := Defaults()
	p.Balance = 1e9
	levels := GenerateLadder(p)

	points := SampleCurve(levels, p, 10)
	assert.Len(t, points, 11)
	assert.Zero(t, points[10].Price)
}

func TestSampleCurveMinimumSteps(t *testing.T) {
	t.Parallel()

	p := Defaults()
	levels := GenerateLadder(p)

	points := SampleCurve(levels, p, 0)
	assert.Len(t, points, 2)
}

func TestSampleCurveFlatAboveLadder(t *testing.T) {
	t.Parallel()

	// Current price above the first rung: nothing triggered at the top of
	// the range, so the curve starts at a flat account.
	p := Defaults()
	p.CurrentPrice = 2700
	p.Balance = 1e9 // keep the floor at zero so high samples exist
	levels := GenerateLadder(p)

	points := SampleCurve(levels, p, 4)
	assert.InDelta(t, p.Balance, points[0].Equity, 1e-6)
	assert.Zero(t, points[0].UsedMargin)
}
