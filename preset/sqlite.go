package preset

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/hamzaelsherif03/Calculator/grid"
	"github.com/hamzaelsherif03/Calculator/pkg/id"
)

// SQLite implements Store on a local database file.
type SQLite struct {
	db *sql.DB
}

var _ Store = (*SQLite)(nil)

// NewSQLite opens (creating if needed) the store at path.
func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLite{db: db}, nil
}

// SavePreset inserts or replaces the named preset. The stored row keeps its
// original id and created_at across updates.
func (s *SQLite) SavePreset(name string, params grid.Parameters) (Preset, error) {
	if name == "" {
		return Preset{}, fmt.Errorf("preset name is required")
	}
	if err := params.Validate(); err != nil {
		return Preset{}, fmt.Errorf("preset %q: %w", name, err)
	}

	now := time.Now().UTC()
	_, err := s.db.Exec(`
		INSERT INTO presets
		(id, name, start_price, current_price, step, lot_size, level_count, take_profit, balance, leverage, contract_size, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			start_price = excluded.start_price,
			current_price = excluded.current_price,
			step = excluded.step,
			lot_size = excluded.lot_size,
			level_count = excluded.level_count,
			take_profit = excluded.take_profit,
			balance = excluded.balance,
			leverage = excluded.leverage,
			contract_size = excluded.contract_size,
			updated_at = excluded.updated_at`,
		id.New(), name,
		params.StartPrice, params.CurrentPrice, params.Step, params.LotSize,
		params.LevelCount, params.TakeProfit, params.Balance, params.Leverage,
		params.ContractSize, now, now,
	)
	if err != nil {
		return Preset{}, err
	}
	return s.GetPreset(name)
}

// GetPreset returns a preset by name.
func (s *SQLite) GetPreset(name string) (Preset, error) {
	row := s.db.QueryRow(`
		SELECT id, name, start_price, current_price, step, lot_size, level_count, take_profit, balance, leverage, contract_size, created_at, updated_at
		FROM presets
		WHERE name = ?`, name)

	p, err := scanPreset(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Preset{}, fmt.Errorf("preset %q: %w", name, ErrNotFound)
		}
		return Preset{}, err
	}
	return p, nil
}

// ListPresets returns all presets ordered by name.
func (s *SQLite) ListPresets() ([]Preset, error) {
	rows, err := s.db.Query(`
		SELECT id, name, start_price, current_price, step, lot_size, level_count, take_profit, balance, leverage, contract_size, created_at, updated_at
		FROM presets
		ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Preset
	for rows.Next() {
		p, err := scanPreset(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// DeletePreset removes a preset by name.
func (s *SQLite) DeletePreset(name string) error {
	res, err := s.db.Exec(`DELETE FROM presets WHERE name = ?`, name)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("preset %q: %w", name, ErrNotFound)
	}
	return nil
}

// RecordSession stores one analysis run and returns it with id and
// created_at filled in.
func (s *SQLite) RecordSession(sess Session) (Session, error) {
	sess.ID = id.New()
	sess.CreatedAt = time.Now().UTC()

	_, err := s.db.Exec(`
		INSERT INTO sessions
		(id, preset_name, start_price, current_price, step, lot_size, level_count, take_profit, balance, leverage, contract_size,
		 num_triggered, total_lots, avg_entry, floating_pl, equity, used_margin, margin_percent, tier, margin_call_price, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sess.ID, sess.PresetName,
		sess.Params.StartPrice, sess.Params.CurrentPrice, sess.Params.Step,
		sess.Params.LotSize, sess.Params.LevelCount, sess.Params.TakeProfit,
		sess.Params.Balance, sess.Params.Leverage, sess.Params.ContractSize,
		sess.NumTriggered, sess.TotalLots, sess.AvgEntry, sess.FloatingPL,
		sess.Equity, sess.UsedMargin, sess.MarginPercent, string(sess.Tier),
		sess.MarginCallPrice, sess.CreatedAt,
	)
	if err != nil {
		return Session{}, err
	}
	return sess, nil
}

// GetSession returns a single session by id.
func (s *SQLite) GetSession(sessID string) (Session, error) {
	row := s.db.QueryRow(sessionSelect+` WHERE id = ?`, sessID)

	sess, err := scanSession(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Session{}, fmt.Errorf("session %q: %w", sessID, ErrNotFound)
		}
		return Session{}, err
	}
	return sess, nil
}

// ListSessions returns the most recent sessions, newest first.
func (s *SQLite) ListSessions(limit int) ([]Session, error) {
	if limit < 1 {
		limit = 20
	}
	rows, err := s.db.Query(sessionSelect+` ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Session
	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, sess)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Close closes the underlying database.
func (s *SQLite) Close() error {
	return s.db.Close()
}

const sessionSelect = `
	SELECT id, preset_name, start_price, current_price, step, lot_size, level_count, take_profit, balance, leverage, contract_size,
	       num_triggered, total_lots, avg_entry, floating_pl, equity, used_margin, margin_percent, tier, margin_call_price, created_at
	FROM sessions`

type scanner interface {
	Scan(dest ...any) error
}

func scanPreset(sc scanner) (Preset, error) {
	var p Preset
	err := sc.Scan(
		&p.ID,
		&p.Name,
		&p.Params.StartPrice,
		&p.Params.CurrentPrice,
		&p.Params.Step,
		&p.Params.LotSize,
		&p.Params.LevelCount,
		&p.Params.TakeProfit,
		&p.Params.Balance,
		&p.Params.Leverage,
		&p.Params.ContractSize,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

func scanSession(sc scanner) (Session, error) {
	var (
		sess Session
		tier string
	)
	err := sc.Scan(
		&sess.ID,
		&sess.PresetName,
		&sess.Params.StartPrice,
		&sess.Params.CurrentPrice,
		&sess.Params.Step,
		&sess.Params.LotSize,
		&sess.Params.LevelCount,
		&sess.Params.TakeProfit,
		&sess.Params.Balance,
		&sess.Params.Leverage,
		&sess.Params.ContractSize,
		&sess.NumTriggered,
		&sess.TotalLots,
		&sess.AvgEntry,
		&sess.FloatingPL,
		&sess.Equity,
		&sess.UsedMargin,
		&sess.MarginPercent,
		&tier,
		&sess.MarginCallPrice,
		&sess.CreatedAt,
	)
	sess.Tier = grid.RiskTier(tier)
	return sess, err
}
