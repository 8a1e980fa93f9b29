package report

import (
	"testing"

	"github.com/hamzaelsherif03/Calculator/grid"
	"github.com/stretchr/testify/assert"
)

func TestBuildDefaults(t *testing.T) {
	t.Parallel()

	a, err := Build(grid.Defaults(), DefaultOptions())
	assert.NoError(t, err)

	assert.True(t, a.HasPosition)
	assert.Len(t, a.Ladder, 20)
	assert.Equal(t, 11, a.Snapshot.NumTriggered)
	assert.InDelta(t, 2625.00, a.Snapshot.AvgEntry, 1e-9)
	assert.InDelta(t, 2625.00, a.Snapshot.BreakEvenPrice, 1e-9)
	assert.InDelta(t, 2630.00, a.Snapshot.ProfitTargetPrice, 1e-9)
	assert.InDelta(t, 143.00, a.Snapshot.UsedMargin, 1e-9)
	assert.Equal(t, grid.TierLow, a.Snapshot.Tier)

	assert.Greater(t, a.MarginCallPrice, 0.0)
	assert.InDelta(t, a.Params.CurrentPrice-a.MarginCallPrice, a.MaxSafeDrop, 0.02)

	assert.Len(t, a.Targets, 3)
	for _, row := range a.Targets {
		assert.True(t, row.Reached)
	}
	assert.Len(t, a.Projections, 4)
	assert.Len(t, a.Curve, 51)
}

func TestBuildFlatAccount(t *testing.T) {
	t.Parallel()

	p := grid.Defaults()
	p.CurrentPrice = 2700

	a, err := Build(p, DefaultOptions())
	assert.NoError(t, err)

	assert.False(t, a.HasPosition)
	assert.Zero(t, a.Snapshot.NumTriggered)
	assert.Zero(t, a.Snapshot.UsedMargin)

	// First projection drops 25 to 2675, still above the ladder.
	assert.False(t, a.Projections[0].HasPosition)
	// A 100 drop lands at 2600 inside the ladder.
	assert.True(t, a.Projections[3].HasPosition)
	assert.Equal(t, 11, a.Projections[3].Snapshot.NumTriggered)
}

func TestBuildEmptyStrategy(t *testing.T) {
	t.Parallel()

	p := grid.Defaults()
	p.LevelCount = 0

	a, err := Build(p, DefaultOptions())
	assert.NoError(t, err)

	assert.False(t, a.HasPosition)
	assert.Empty(t, a.Ladder)
	assert.Zero(t, a.MarginCallPrice)
	assert.Zero(t, a.MaxSafeDrop)
	for _, row := range a.Targets {
		assert.False(t, row.Reached)
	}
	for _, row := range a.Projections {
		assert.False(t, row.HasPosition)
	}
	for _, cp := range a.Curve {
		assert.InDelta(t, p.Balance, cp.Equity, 1e-9)
	}
}

func TestBuildRejectsInvalidParams(t *testing.T) {
	t.Parallel()

	p := grid.Defaults()
	p.Step = 0

	_, err := Build(p, Options{})
	assert.Error(t, err)
}

func TestBuildFillsEmptyOptions(t *testing.T) {
	t.Parallel()

	a, err := Build(grid.Defaults(), Options{})
	assert.NoError(t, err)
	assert.Len(t, a.Targets, 3)
	assert.Len(t, a.Projections, 4)
	assert.Len(t, a.Curve, 51)
}

func TestBuildProjectionClampsPrice(t *testing.T) {
	t.Parallel()

	a, err := Build(grid.Defaults(), Options{Drops: []float64{99999}})
	assert.NoError(t, err)
	assert.Zero(t, a.Projections[0].Price)
	assert.True(t, a.Projections[0].HasPosition)
}
