package grid

// Level is one rung of the entry ladder. NotionalQuote is the rung's own
// commitment at its price; NotionalMinor restates it in minor currency units
// and MarginRequired is the margin that rung alone locks up.
type Level struct {
	Index           int     `json:"index"`
	Price           float64 `json:"price"`
	Lots            float64 `json:"lots"`
	CumulativeLots  float64 `json:"cumulative_lots"`
	CumulativeUnits float64 `json:"cumulative_units"`
	NotionalQuote   float64 `json:"notional_quote"`
	NotionalMinor   float64 `json:"notional_minor"`
	MarginRequired  float64 `json:"margin_required"`
	Triggered       bool    `json:"triggered"`
	PotentialProfit float64 `json:"potential_profit"`
}

// GenerateLadder builds the entry ladder for p: LevelCount rungs spaced Step
// apart walking down from StartPrice, each adding LotSize lots. A rung is
// triggered once the market trades at or below its price, so the triggered
// rungs always form a prefix of the ladder. PotentialProfit is the profit at
// that rung's cumulative size if price recovers by TakeProfit. A LevelCount
// of zero or less is an empty strategy and yields no rungs.
func GenerateLadder(p Parameters) []Level {
	if p.LevelCount <= 0 {
		return nil
	}
	lev := p.Leverage
	if lev < 1 {
		lev = 1
	}
	levels := make([]Level, 0, p.LevelCount)
	var cumLots, cumUnits float64
	for i := 0; i < p.LevelCount; i++ {
		price := Round2(p.StartPrice - float64(i)*p.Step)
		cumLots += p.LotSize
		cumUnits += p.UnitsPerLevel()
		notional := price * p.UnitsPerLevel()
		levels = append(levels, Level{
			Index:           i + 1,
			Price:           price,
			Lots:            Round4(p.LotSize),
			CumulativeLots:  Round4(cumLots),
			CumulativeUnits: Round4(cumUnits),
			NotionalQuote:   Round2(notional),
			NotionalMinor:   Round2(notional * 100),
			MarginRequired:  Round2(notional * 100 / float64(lev)),
			Triggered:       p.CurrentPrice <= price,
			PotentialProfit: Round2(cumUnits * p.TakeProfit * 100),
		})
	}
	return levels
}

// Retrigger refreshes the Triggered flags for a new market price without
// rebuilding the ladder. Rung prices decrease monotonically, so the flag
// flips at most once along the slice.
func Retrigger(levels []Level, price float64) {
	for i := range levels {
		levels[i].Triggered = price <= levels[i].Price
	}
}
