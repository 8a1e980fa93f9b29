package report

import (
	"encoding/csv"
	"io"
	"strconv"
)

// WriteLadderCSV renders the ladder in the layout the desktop export used:
// one row per rung, triggered rungs marked TRIGGERED, waiting rungs Waiting.
func WriteLadderCSV(w io.Writer, a *Analysis) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{
		"Level #", "Level Price", "Status", "Lots at Level",
		"Cumulative Lots", "Total Units", "Potential Profit",
	}); err != nil {
		return err
	}
	for _, lvl := range a.Ladder {
		status := "Waiting"
		if lvl.Triggered {
			status = "TRIGGERED"
		}
		if err := cw.Write([]string{
			strconv.Itoa(lvl.Index),
			money(lvl.Price),
			status,
			lots(lvl.Lots),
			lots(lvl.CumulativeLots),
			lots(lvl.CumulativeUnits),
			money(lvl.PotentialProfit),
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCurveCSV renders the sampled equity curve, one row per price.
func WriteCurveCSV(w io.Writer, a *Analysis) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"price", "equity", "floating_pl", "used_margin", "margin_percent"}); err != nil {
		return err
	}
	for _, cp := range a.Curve {
		if err := cw.Write([]string{
			money(cp.Price),
			money(cp.Equity),
			money(cp.FloatingPL),
			money(cp.UsedMargin),
			money(cp.MarginPercent),
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func money(x float64) string { return strconv.FormatFloat(x, 'f', 2, 64) }
func lots(x float64) string  { return strconv.FormatFloat(x, 'f', 4, 64) }
