// Package replay walks a recorded price sequence through the calculator,
// journaling the equity curve and firing risk alerts along the way. Each row
// is a full re-analysis of the same ladder against that row's price; balance
// stays fixed, so the output is the floating-risk history of holding the
// ladder through the sequence.
package replay

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/hamzaelsherif03/Calculator/alert"
	"github.com/hamzaelsherif03/Calculator/grid"
)

// Sinks receives replay output. Any field may be nil.
type Sinks struct {
	Curve   io.Writer // equity history CSV, one row per tick
	Watcher *alert.Watcher
	Log     *zap.Logger
}

// Summary aggregates one replay run.
type Summary struct {
	Ticks         int           `json:"ticks"`
	FirstPrice    float64       `json:"first_price"`
	LastPrice     float64       `json:"last_price"`
	MinEquity     float64       `json:"min_equity"`
	MaxMarginPct  float64       `json:"max_margin_pct"`
	WorstTier     grid.RiskTier `json:"worst_tier"`
	StopOutTicks  int           `json:"stop_out_ticks"`
	NoPosition    int           `json:"no_position_ticks"`
}

// Run replays prices from r against the ladder described by p.
//
// CSV formats supported:
//
//  1. One price per row:
//     price
//
//  2. Timestamped rows (the timestamp is carried through, not parsed):
//     time,price
//
// A header row is detected by a "price" cell and skipped.
func Run(ctx context.Context, r io.Reader, p grid.Parameters, sinks Sinks) (Summary, error) {
	if err := p.Validate(); err != nil {
		return Summary{}, fmt.Errorf("invalid parameters: %w", err)
	}
	log := sinks.Log
	if log == nil {
		log = zap.NewNop()
	}

	levels := grid.GenerateLadder(p)

	var curve *csv.Writer
	if sinks.Curve != nil {
		curve = csv.NewWriter(sinks.Curve)
		if err := curve.Write([]string{"price", "equity", "floating_pl", "used_margin", "margin_percent"}); err != nil {
			return Summary{}, err
		}
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	// Read first row and detect header or data.
	firstRow, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Summary{}, fmt.Errorf("empty price sequence")
		}
		return Summary{}, err
	}

	priceCol := len(firstRow) - 1
	hasHeader := false
	for i, cell := range firstRow {
		if strings.EqualFold(strings.TrimSpace(cell), "price") {
			hasHeader = true
			priceCol = i
			break
		}
	}

	sum := Summary{MinEquity: p.Balance}
	if !hasHeader {
		if err := replayRow(ctx, firstRow, priceCol, levels, p, curve, sinks.Watcher, &sum); err != nil {
			return sum, err
		}
	}

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return sum, err
		}
		if len(row) == 0 {
			continue
		}
		if err := replayRow(ctx, row, priceCol, levels, p, curve, sinks.Watcher, &sum); err != nil {
			return sum, err
		}
	}

	if curve != nil {
		curve.Flush()
		if err := curve.Error(); err != nil {
			return sum, err
		}
	}

	log.Info("replay finished",
		zap.Int("ticks", sum.Ticks),
		zap.Float64("min_equity", sum.MinEquity),
		zap.String("worst_tier", string(sum.WorstTier)),
		zap.Int("stop_out_ticks", sum.StopOutTicks))
	return sum, nil
}

func replayRow(ctx context.Context, row []string, priceCol int, levels []grid.Level, p grid.Parameters, curve *csv.Writer, watcher *alert.Watcher, sum *Summary) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	col := priceCol
	if col >= len(row) {
		col = len(row) - 1
	}
	raw := strings.TrimSpace(row[col])
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("row %d: bad price %q: %w", sum.Ticks+1, raw, err)
	}
	if price < 0 {
		return fmt.Errorf("row %d: negative price %v", sum.Ticks+1, price)
	}

	s, evalErr := grid.EvaluateAt(levels, p, price)
	if evalErr != nil {
		// Above the ladder: a flat account at full balance.
		s = grid.Snapshot{Equity: grid.Round2(p.Balance), Tier: grid.TierLow}
		sum.NoPosition++
	}

	sum.Ticks++
	if sum.Ticks == 1 {
		sum.FirstPrice = price
	}
	sum.LastPrice = price
	if s.Equity < sum.MinEquity {
		sum.MinEquity = s.Equity
	}
	if s.MarginPercent > sum.MaxMarginPct {
		sum.MaxMarginPct = s.MarginPercent
	}
	sum.WorstTier = grid.TierFor(sum.MaxMarginPct)
	if evalErr == nil && s.Equity <= 0.5*s.UsedMargin {
		sum.StopOutTicks++
	}

	if curve != nil {
		if err := curve.Write([]string{
			strconv.FormatFloat(grid.Round2(price), 'f', 2, 64),
			strconv.FormatFloat(s.Equity, 'f', 2, 64),
			strconv.FormatFloat(s.FloatingPL, 'f', 2, 64),
			strconv.FormatFloat(s.UsedMargin, 'f', 2, 64),
			strconv.FormatFloat(s.MarginPercent, 'f', 2, 64),
		}); err != nil {
			return err
		}
	}

	if watcher != nil {
		pp := p
		pp.CurrentPrice = price
		mc := grid.MarginCallPrice(levels, pp)
		watcher.Observe(ctx, s, mc, price)
	}
	return nil
}
