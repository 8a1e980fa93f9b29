package grid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundHalfAwayFromZero(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want float64
	}{
		{2.675, 2.68},
		{-2.675, -2.68},
		{2.674, 2.67},
		{1.005, 1.01},
		{-1.005, -1.01},
		{0, 0},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, Round2(tt.in), 1e-12, "Round2(%v)", tt.in)
	}
}

func TestRound4Lots(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 0.0001, Round4(0.00005), 1e-12)
	assert.InDelta(t, 1.1, Round4(0.1+0.2+0.8), 1e-12)
}

func TestRoundGuardsNonFinite(t *testing.T) {
	t.Parallel()

	assert.Zero(t, Round2(math.NaN()))
	assert.Zero(t, Round2(math.Inf(1)))
	assert.Zero(t, Round4(math.Inf(-1)))
}
