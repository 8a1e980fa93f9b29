package alert

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/hamzaelsherif03/Calculator/grid"
)

type collector struct {
	sent []Payload
	err  error
}

func (c *collector) Name() string { return "collector" }

func (c *collector) Send(_ context.Context, p Payload) error {
	c.sent = append(c.sent, p)
	return c.err
}

func snapshotWithTier(tier grid.RiskTier, pct float64) grid.Snapshot {
	return grid.Snapshot{Tier: tier, MarginPercent: pct}
}

func TestWatcherEscalation(t *testing.T) {
	t.Parallel()

	c := &collector{}
	w := NewWatcher(NewManager(zap.NewNop(), c), 0)
	ctx := context.Background()

	w.Observe(ctx, snapshotWithTier(grid.TierLow, 10), 0, 2600)
	assert.Empty(t, c.sent, "baseline observation must stay silent")

	w.Observe(ctx, snapshotWithTier(grid.TierLow, 12), 0, 2595)
	assert.Empty(t, c.sent, "unchanged tier must stay silent")

	w.Observe(ctx, snapshotWithTier(grid.TierHigh, 55), 0, 2500)
	assert.Len(t, c.sent, 1)
	assert.Equal(t, LevelWarning, c.sent[0].Level)
	assert.Equal(t, grid.TierHigh, c.sent[0].Tier)

	w.Observe(ctx, snapshotWithTier(grid.TierExtreme, 80), 0, 2400)
	assert.Len(t, c.sent, 2)
	assert.Equal(t, LevelCritical, c.sent[1].Level)

	w.Observe(ctx, snapshotWithTier(grid.TierModerate, 40), 0, 2550)
	assert.Len(t, c.sent, 3)
	assert.Equal(t, LevelInfo, c.sent[2].Level, "de-escalation is informational")
}

func TestWatcherMarginCallInRange(t *testing.T) {
	t.Parallel()

	c := &collector{}
	w := NewWatcher(NewManager(zap.NewNop(), c), 25)
	ctx := context.Background()

	w.Observe(ctx, snapshotWithTier(grid.TierLow, 10), 2500, 2600)
	assert.Empty(t, c.sent, "margin call 100 away is out of range")

	w.Observe(ctx, snapshotWithTier(grid.TierLow, 12), 2500, 2520)
	assert.Len(t, c.sent, 1)
	assert.Equal(t, LevelCritical, c.sent[0].Level)
	assert.Equal(t, "margin call in range", c.sent[0].Title)

	// Still in range: no repeat.
	w.Observe(ctx, snapshotWithTier(grid.TierLow, 12), 2500, 2515)
	assert.Len(t, c.sent, 1)

	// Recovered, then back in range: fires again.
	w.Observe(ctx, snapshotWithTier(grid.TierLow, 10), 2500, 2600)
	w.Observe(ctx, snapshotWithTier(grid.TierLow, 12), 2500, 2510)
	assert.Len(t, c.sent, 2)
}

func TestManagerContinuesPastFailedChannel(t *testing.T) {
	t.Parallel()

	failing := &collector{err: errors.New("smtp down")}
	ok := &collector{}
	m := NewManager(zap.NewNop(), failing, ok)

	m.Notify(context.Background(), Payload{Level: LevelWarning, Title: "t"})
	assert.Len(t, failing.sent, 1)
	assert.Len(t, ok.sent, 1)
	assert.False(t, ok.sent[0].At.IsZero())
}

func TestBellChannel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	b := NewBellChannel(&buf)
	ctx := context.Background()

	assert.NoError(t, b.Send(ctx, Payload{Level: LevelInfo}))
	assert.Zero(t, buf.Len())

	assert.NoError(t, b.Send(ctx, Payload{Level: LevelWarning}))
	assert.NoError(t, b.Send(ctx, Payload{Level: LevelCritical}))
	assert.Equal(t, "\a\a", buf.String())
}
