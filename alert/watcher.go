package alert

import (
	"context"
	"fmt"
	"sync"

	"github.com/hamzaelsherif03/Calculator/grid"
)

// Watcher turns tier movements into alerts. The first observation sets the
// baseline silently; after that, escalations to HIGH raise a warning and to
// EXTREME a critical, while any de-escalation is informational. When the
// margin-call price closes within warnDistance of the market it raises one
// critical until the distance recovers.
type Watcher struct {
	manager      *Manager
	warnDistance float64

	mu       sync.Mutex
	seen     bool
	lastTier grid.RiskTier
	inDanger bool
}

func NewWatcher(m *Manager, warnDistance float64) *Watcher {
	return &Watcher{manager: m, warnDistance: warnDistance}
}

// Observe feeds one evaluation result to the watcher.
func (w *Watcher) Observe(ctx context.Context, s grid.Snapshot, marginCallPrice, currentPrice float64) {
	danger := w.warnDistance > 0 && marginCallPrice > 0 &&
		currentPrice-marginCallPrice <= w.warnDistance

	w.mu.Lock()
	prev, hadBaseline := w.lastTier, w.seen
	wasDanger := w.inDanger
	w.seen = true
	w.lastTier = s.Tier
	w.inDanger = danger
	w.mu.Unlock()

	if hadBaseline && prev != s.Tier {
		w.manager.Notify(ctx, tierChange(prev, s.Tier, s))
	}
	if danger && !wasDanger {
		w.manager.Notify(ctx, Payload{
			Level: LevelCritical,
			Title: "margin call in range",
			Message: fmt.Sprintf("margin call at %.2f is within %.2f of market %.2f",
				marginCallPrice, w.warnDistance, currentPrice),
			Tier:          s.Tier,
			MarginPercent: s.MarginPercent,
		})
	}
}

func tierChange(from, to grid.RiskTier, s grid.Snapshot) Payload {
	level := LevelInfo
	if tierRank(to) > tierRank(from) {
		switch to {
		case grid.TierExtreme:
			level = LevelCritical
		case grid.TierHigh:
			level = LevelWarning
		}
	}
	return Payload{
		Level:         level,
		Title:         fmt.Sprintf("risk tier %s", to),
		Message:       fmt.Sprintf("tier moved %s -> %s at %.2f%% margin usage", from, to, s.MarginPercent),
		Tier:          to,
		MarginPercent: s.MarginPercent,
	}
}

func tierRank(t grid.RiskTier) int {
	switch t {
	case grid.TierModerate:
		return 1
	case grid.TierHigh:
		return 2
	case grid.TierExtreme:
		return 3
	default:
		return 0
	}
}
