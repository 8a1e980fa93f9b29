package report

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/hamzaelsherif03/Calculator/grid"
	"github.com/stretchr/testify/assert"
)

func TestWriteLadderCSV(t *testing.T) {
	t.Parallel()

	a, err := Build(grid.Defaults(), DefaultOptions())
	assert.NoError(t, err)

	var buf bytes.Buffer
	assert.NoError(t, WriteLadderCSV(&buf, a))

	rows, err := csv.NewReader(&buf).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, rows, 21)

	assert.Equal(t, []string{
		"Level #", "Level Price", "Status", "Lots at Level",
		"Cumulative Lots", "Total Units", "Potential Profit",
	}, rows[0])

	assert.Equal(t, []string{"1", "2650.00", "TRIGGERED", "0.1000", "0.1000", "0.1000", "50.00"}, rows[1])
	assert.Equal(t, "TRIGGERED", rows[11][2])
	assert.Equal(t, "Waiting", rows[12][2])
	assert.Equal(t, []string{"20", "2555.00", "Waiting", "0.1000", "2.0000", "2.0000", "1000.00"}, rows[20])
}

func TestWriteCurveCSV(t *testing.T) {
	t.Parallel()

	a, err := Build(grid.Defaults(), Options{CurveSteps: 10})
	assert.NoError(t, err)

	var buf bytes.Buffer
	assert.NoError(t, WriteCurveCSV(&buf, a))

	rows, err := csv.NewReader(&buf).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, rows, 12)
	assert.Equal(t, []string{"price", "equity", "floating_pl", "used_margin", "margin_percent"}, rows[0])
	assert.Equal(t, "2600.00", rows[1][0])
	assert.Equal(t, "7250.00", rows[1][1])
}
