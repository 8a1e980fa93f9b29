// Package alert fans risk-state changes out to notification channels.
package alert

import (
	"context"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/hamzaelsherif03/Calculator/grid"
)

// Level is the severity of a notification.
type Level string

const (
	LevelInfo     Level = "INFO"
	LevelWarning  Level = "WARNING"
	LevelCritical Level = "CRITICAL"
)

// Payload is one notification.
type Payload struct {
	Level         Level         `json:"level"`
	Title         string        `json:"title"`
	Message       string        `json:"message"`
	Tier          grid.RiskTier `json:"tier"`
	MarginPercent float64       `json:"margin_percent"`
	At            time.Time     `json:"at"`
}

// Channel delivers payloads to one destination.
type Channel interface {
	Send(ctx context.Context, p Payload) error
	Name() string
}

// Manager fans payloads out to every registered channel. Delivery errors are
// logged and do not stop the fan-out.
type Manager struct {
	log      *zap.Logger
	channels []Channel
}

func NewManager(log *zap.Logger, channels ...Channel) *Manager {
	return &Manager{log: log, channels: channels}
}

func (m *Manager) Register(c Channel) {
	m.channels = append(m.channels, c)
}

func (m *Manager) Notify(ctx context.Context, p Payload) {
	if p.At.IsZero() {
		p.At = time.Now().UTC()
	}
	for _, c := range m.channels {
		if err := c.Send(ctx, p); err != nil {
			m.log.Warn("alert delivery failed",
				zap.String("channel", c.Name()),
				zap.Error(err))
		}
	}
}

// LogChannel writes alerts to the structured log.
type LogChannel struct {
	log *zap.Logger
}

func NewLogChannel(log *zap.Logger) *LogChannel {
	return &LogChannel{log: log}
}

func (c *LogChannel) Name() string { return "log" }

func (c *LogChannel) Send(_ context.Context, p Payload) error {
	fields := []zap.Field{
		zap.String("tier", string(p.Tier)),
		zap.Float64("margin_percent", p.MarginPercent),
		zap.String("detail", p.Message),
	}
	switch p.Level {
	case LevelCritical:
		c.log.Error(p.Title, fields...)
	case LevelWarning:
		c.log.Warn(p.Title, fields...)
	default:
		c.log.Info(p.Title, fields...)
	}
	return nil
}

// BellChannel sounds the terminal bell for warning and critical alerts, the
// audible cue the desktop calculator played on risk escalation.
type BellChannel struct {
	w io.Writer
}

func NewBellChannel(w io.Writer) *BellChannel {
	return &BellChannel{w: w}
}

func (c *BellChannel) Name() string { return "bell" }

func (c *BellChannel) Send(_ context.Context, p Payload) error {
	if p.Level == LevelInfo {
		return nil
	}
	_, err := c.w.Write([]byte{'\a'})
	return err
}
