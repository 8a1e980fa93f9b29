package preset

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hamzaelsherif03/Calculator/grid"
	"github.com/hamzaelsherif03/Calculator/report"
)

func newTestStore(t *testing.T) *SQLite {
	t.Helper()

	s, err := NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSaveAndGetPreset(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	params := grid.Defaults()
	params.Balance = 50000

	saved, err := s.SavePreset("gold-conservative", params)
	assert.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, "gold-conservative", saved.Name)
	assert.InDelta(t, 50000.0, saved.Params.Balance, 1e-9)

	got, err := s.GetPreset("gold-conservative")
	assert.NoError(t, err)
	assert.Equal(t, saved.ID, got.ID)
	assert.Equal(t, 20, got.Params.LevelCount)
}

func TestSavePresetUpsertKeepsIdentity(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	first, err := s.SavePreset("scalp", grid.Defaults())
	require.NoError(t, err)

	params := grid.Defaults()
	params.Step = 2.5
	second, err := s.SavePreset("scalp", params)
	assert.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)
	assert.InDelta(t, 2.5, second.Params.Step, 1e-9)
}

func TestSavePresetRejectsInvalid(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	_, err := s.SavePreset("", grid.Defaults())
	assert.Error(t, err)

	bad := grid.Defaults()
	bad.Step = 0
	_, err = s.SavePreset("bad", bad)
	assert.Error(t, err)
}

func TestGetPresetNotFound(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	_, err := s.GetPreset("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListAndDeletePresets(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	_, err := s.SavePreset("bravo", grid.Defaults())
	require.NoError(t, err)
	_, err = s.SavePreset("alpha", grid.Defaults())
	require.NoError(t, err)

	list, err := s.ListPresets()
	assert.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "alpha", list[0].Name)
	assert.Equal(t, "bravo", list[1].Name)

	assert.NoError(t, s.DeletePreset("alpha"))
	assert.ErrorIs(t, s.DeletePreset("alpha"), ErrNotFound)

	list, err = s.ListPresets()
	assert.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestRecordAndListSessions(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	a, err := report.Build(grid.Defaults(), report.DefaultOptions())
	require.NoError(t, err)

	recorded, err := s.RecordSession(SessionFromAnalysis(a, "defaults"))
	assert.NoError(t, err)
	assert.NotEmpty(t, recorded.ID)
	assert.False(t, recorded.CreatedAt.IsZero())

	got, err := s.GetSession(recorded.ID)
	assert.NoError(t, err)
	assert.Equal(t, "defaults", got.PresetName)
	assert.Equal(t, 11, got.NumTriggered)
	assert.InDelta(t, 2625.00, got.AvgEntry, 1e-9)
	assert.Equal(t, grid.TierLow, got.Tier)
	assert.InDelta(t, a.MarginCallPrice, got.MarginCallPrice, 1e-9)

	list, err := s.ListSessions(10)
	assert.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestListSessionsNewestFirst(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	a, err := report.Build(grid.Defaults(), report.Options{CurveSteps: 5})
	require.NoError(t, err)

	var last Session
	for i := 0; i < 3; i++ {
		last, err = s.RecordSession(SessionFromAnalysis(a, ""))
		require.NoError(t, err)
	}

	list, err := s.ListSessions(2)
	assert.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, last.ID, list[0].ID)

	_, err = s.GetSession("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}
