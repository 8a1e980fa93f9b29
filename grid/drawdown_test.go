package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimulateDrop(t *testing.T) {
	t.Parallel()

	p := Defaults()
	levels := GenerateLadder(p)

	s, err := SimulateDrop(levels, p, 50)
	assert.NoError(t, err)
	assert.Equal(t, 20, s.NumTriggered)
	assert.InDelta(t, 2602.50, s.AvgEntry, 1e-9)
	assert.InDelta(t, -10500.00, s.FloatingPL, 1e-9)
	assert.InDelta(t, -500.00, s.Equity, 1e-9)
	assert.InDelta(t, 255.00, s.UsedMargin, 1e-9)
	assert.InDelta(t, 2.55, s.MarginPercent, 1e-9)
}

func TestSimulateDropClampsAtZero(t *testing.T) {
	t.Parallel()

	p := Defaults()
	levels := GenerateLadder(p)

	s, err := SimulateDrop(levels, p, 5000)
	assert.NoError(t, err)
	assert.Equal(t, 20, s.NumTriggered)
	// Price 0: the whole ladder is under water by its average entry.
	assert.InDelta(t, -520500.00, s.FloatingPL, 1e-6)
	assert.Zero(t, s.UsedMargin)
}

func TestMaxSafeDropDefaults(t *testing.T) {
	t.Parallel()

	p := Defaults()
	levels := GenerateLadder(p)

	assert.InDelta(t, 46.86, MaxSafeDrop(levels, p), 0.02)
}
