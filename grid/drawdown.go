package grid

// SimulateDrop evaluates the ladder after the market falls drop below the
// current price. The simulated price clamps at zero.
func SimulateDrop(levels []Level, p Parameters, drop float64) (Snapshot, error) {
	price := p.CurrentPrice - drop
	if price < 0 {
		price = 0
	}
	return EvaluateAt(levels, p, price)
}

// MaxSafeDrop is how far price can fall from the current price before the
// margin call, or 0 when no margin call exists in the solve bracket.
func MaxSafeDrop(levels []Level, p Parameters) float64 {
	mc := MarginCallPrice(levels, p)
	if mc <= 0 {
		return 0
	}
	d := p.CurrentPrice - mc
	if d < 0 {
		return 0
	}
	return Round2(d)
}
