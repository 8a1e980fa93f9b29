package grid

import (
	"math"

	"github.com/shopspring/decimal"
)

// Display rounding: prices and money carry 2 decimal places, lot sizes 4.
// decimal.Round rounds half away from zero, matching how rung prices and
// account statements are quoted.

func roundTo(v float64, places int32) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	f, _ := decimal.NewFromFloat(v).Round(places).Float64()
	return f
}

// Round2 rounds a price or monetary amount.
func Round2(v float64) float64 { return roundTo(v, 2) }

// Round4 rounds a lot size.
func Round4(v float64) float64 { return roundTo(v, 4) }
