package grid

// curvePad extends the sampled range this far below the margin-call price so
// the stop-out crossing stays visible on a chart.
const curvePad = 50.0

// CurvePoint is one sample of the equity curve.
type CurvePoint struct {
	Price         float64 `json:"price"`
	Equity        float64 `json:"equity"`
	FloatingPL    float64 `json:"floating_pl"`
	UsedMargin    float64 `json:"used_margin"`
	MarginPercent float64 `json:"margin_percent"`
}

// SampleCurve samples equity at steps+1 evenly spaced prices, from the
// current price down to 50 below the margin-call price, or down to zero when
// no margin call exists. Samples above the top rung read as a flat account:
// equity equals balance with nothing on margin.
func SampleCurve(levels []Level, p Parameters, steps int) []CurvePoint {
	if steps < 1 {
		steps = 1
	}

	floor := 0.0
	if mc := MarginCallPrice(levels, p); mc > 0 {
		floor = mc - curvePad
		if floor < 0 {
			floor = 0
		}
	}
	top := p.CurrentPrice
	if top < floor {
		floor = top
	}
	span := top - floor

	points := make([]CurvePoint, 0, steps+1)
	for i := 0; i <= steps; i++ {
		price := top - span*float64(i)/float64(steps)
		cp := CurvePoint{Price: Round2(price)}
		if s, err := EvaluateAt(levels, p, price); err == nil {
			cp.Equity = s.Equity
			cp.FloatingPL = s.FloatingPL
			cp.UsedMargin = s.UsedMargin
			cp.MarginPercent = s.MarginPercent
		} else {
			cp.Equity = Round2(p.Balance)
		}
		points = append(points, cp)
	}
	return points
}
