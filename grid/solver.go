package grid

const (
	// stopOutFraction is the broker stop-out margin level: the margin call
	// fires once equity falls to 50% of used margin.
	stopOutFraction = 0.5

	// solverIterations bounds the bisection. 20 halvings of a quoted price
	// bracket resolve well past display precision.
	solverIterations = 20
)

// searchHighest bisects [0, hi] for the highest price at which cond holds.
// cond must be downward-closed on the bracket: true at low prices, false at
// high prices. Returns 0 when cond holds nowhere in the bracket.
func searchHighest(hi float64, cond func(price float64) bool) float64 {
	if hi <= 0 {
		return 0
	}
	lo := 0.0
	for i := 0; i < solverIterations; i++ {
		mid := (lo + hi) / 2
		if cond(mid) {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}

// MarginCallPrice solves for the highest price at which the account is at or
// past stop-out. Equity rises with price faster than the stop-out line does,
// so the condition is downward-closed and the bisection converges on the
// crossing. Returns 0 when no margin call exists in [0, current price].
func MarginCallPrice(levels []Level, p Parameters) float64 {
	price := searchHighest(p.CurrentPrice, func(price float64) bool {
		s, err := EvaluateAt(levels, p, price)
		if err != nil {
			return false
		}
		return s.Equity <= stopOutFraction*s.UsedMargin
	})
	return Round2(price)
}

// PriceAtEquityTarget solves for the highest price at which equity has fallen
// to fraction of the starting balance. Returns 0 when equity stays above the
// target everywhere in [0, current price]; returns roughly the current price
// when equity is already at or below the target.
func PriceAtEquityTarget(levels []Level, p Parameters, fraction float64) float64 {
	target := fraction * p.Balance
	price := searchHighest(p.CurrentPrice, func(price float64) bool {
		s, err := EvaluateAt(levels, p, price)
		if err != nil {
			return false
		}
		return s.Equity <= target
	})
	return Round2(price)
}
