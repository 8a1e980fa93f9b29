// Package preset persists named parameter sets and saved analysis sessions
// in SQLite.
package preset

import (
	"errors"
	"time"

	"github.com/hamzaelsherif03/Calculator/grid"
)

// ErrNotFound reports a preset or session that does not exist in the store.
var ErrNotFound = errors.New("preset: not found")

// Preset is a named parameter set.
type Preset struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Params    grid.Parameters `json:"params"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Session records one analysis run: the inputs plus the headline figures,
// enough to compare runs later without re-solving.
type Session struct {
	ID              string          `json:"id"`
	PresetName      string          `json:"preset_name,omitempty"`
	Params          grid.Parameters `json:"params"`
	NumTriggered    int             `json:"num_triggered"`
	TotalLots       float64         `json:"total_lots"`
	AvgEntry        float64         `json:"avg_entry"`
	FloatingPL      float64         `json:"floating_pl"`
	Equity          float64         `json:"equity"`
	UsedMargin      float64         `json:"used_margin"`
	MarginPercent   float64         `json:"margin_percent"`
	Tier            grid.RiskTier   `json:"tier"`
	MarginCallPrice float64         `json:"margin_call_price"`
	CreatedAt       time.Time       `json:"created_at"`
}

// Store is what the CLI and the dashboard persist through.
type Store interface {
	SavePreset(name string, params grid.Parameters) (Preset, error)
	GetPreset(name string) (Preset, error)
	ListPresets() ([]Preset, error)
	DeletePreset(name string) error

	RecordSession(s Session) (Session, error)
	GetSession(id string) (Session, error)
	ListSessions(limit int) ([]Session, error)

	Close() error
}
