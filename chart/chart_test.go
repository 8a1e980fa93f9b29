package chart

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hamzaelsherif03/Calculator/grid"
	"github.com/hamzaelsherif03/Calculator/report"
)

func TestRender(t *testing.T) {
	t.Parallel()

	a, err := report.Build(grid.Defaults(), report.Options{CurveSteps: 10})
	require.NoError(t, err)

	var buf bytes.Buffer
	assert.NoError(t, Render(&buf, a))

	html := buf.String()
	assert.Contains(t, html, "Equity")
	assert.Contains(t, html, "Stop-Out Level")
	assert.Contains(t, html, "margin call at")
}

func TestRenderFile(t *testing.T) {
	t.Parallel()

	a, err := report.Build(grid.Defaults(), report.Options{CurveSteps: 5})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "curve.html")
	assert.NoError(t, RenderFile(path, a))

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.NotEmpty(t, data)
}
