package preset

import (
	"github.com/hamzaelsherif03/Calculator/grid"
	"github.com/hamzaelsherif03/Calculator/report"
)

// SessionFromAnalysis flattens an analysis into its storable summary. A flat
// account records as LOW risk with equity equal to the balance.
func SessionFromAnalysis(a *report.Analysis, presetName string) Session {
	snap := a.Snapshot
	if !a.HasPosition {
		snap.Tier = grid.TierLow
		snap.Equity = grid.Round2(a.Params.Balance)
	}
	return Session{
		PresetName:      presetName,
		Params:          a.Params,
		NumTriggered:    snap.NumTriggered,
		TotalLots:       snap.TotalLots,
		AvgEntry:        snap.AvgEntry,
		FloatingPL:      snap.FloatingPL,
		Equity:          snap.Equity,
		UsedMargin:      snap.UsedMargin,
		MarginPercent:   snap.MarginPercent,
		Tier:            snap.Tier,
		MarginCallPrice: a.MarginCallPrice,
	}
}
