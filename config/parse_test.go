package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want float64
	}{
		{"2650", 2650},
		{" 2650.50 ", 2650.50},
		{"$10,000", 10000},
		{"0", 0},
		{"abc", 0},
		{"", 0},
		{"-5", 0},
		{"NaN", 0},
		{"Inf", 0},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, ParseAmount(tt.in), 1e-9, "input %q", tt.in)
	}
}

func TestParseLeverage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want int
	}{
		{"2000", 2000},
		{"1:500", 500},
		{"x100", 100},
		{"X100", 100},
		{" 30 ", 30},
		{"abc", 1},
		{"", 1},
		{"0", 1},
		{"-200", 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLeverage(tt.in), "input %q", tt.in)
	}
}
