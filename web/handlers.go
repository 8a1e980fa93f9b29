package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hamzaelsherif03/Calculator/chart"
	"github.com/hamzaelsherif03/Calculator/config"
	"github.com/hamzaelsherif03/Calculator/grid"
	"github.com/hamzaelsherif03/Calculator/preset"
	"github.com/hamzaelsherif03/Calculator/report"
)

func (s *Server) handleAnalysis(c *gin.Context) {
	a, err := s.buildAnalysis()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, a)
}

func (s *Server) handleLadder(c *gin.Context) {
	p := s.currentParams()
	c.JSON(http.StatusOK, gin.H{
		"params": p,
		"ladder": grid.GenerateLadder(p),
	})
}

func (s *Server) handleLadderCSV(c *gin.Context) {
	a, err := s.buildAnalysis()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="grid_levels.csv"`)
	if err := report.WriteLadderCSV(c.Writer, a); err != nil {
		s.log.Warn("ladder csv write failed", zap.Error(err))
	}
}

func (s *Server) handleCurveCSV(c *gin.Context) {
	a, err := s.buildAnalysis()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="equity_curve.csv"`)
	if err := report.WriteCurveCSV(c.Writer, a); err != nil {
		s.log.Warn("curve csv write failed", zap.Error(err))
	}
}

func (s *Server) handleChart(c *gin.Context) {
	a, err := s.buildAnalysis()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := chart.Render(c.Writer, a); err != nil {
		s.log.Warn("chart render failed", zap.Error(err))
	}
}

func (s *Server) handleGetParams(c *gin.Context) {
	c.JSON(http.StatusOK, s.currentParams())
}

// handleUpdateParams merges the posted fields into the current parameter
// set. Fields may arrive as numbers or as form strings like "$10,000" and
// "1:2000"; unparseable amounts read as 0 and unparseable leverage as 1,
// then the merged set must still validate before it replaces the old one.
func (s *Server) handleUpdateParams(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}

	s.mu.Lock()
	p := s.params
	mergeParams(&p, body)
	if err := p.Validate(); err != nil {
		s.mu.Unlock()
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	s.params = p
	s.mu.Unlock()

	s.respondWithAnalysis(c)
}

func (s *Server) handleUpdatePrice(c *gin.Context) {
	var body struct {
		Price any `json:"price"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}

	s.mu.Lock()
	s.params.CurrentPrice = amountField(body.Price)
	s.mu.Unlock()

	s.respondWithAnalysis(c)
}

// respondWithAnalysis rebuilds after a mutation, feeds the watcher, and
// returns the fresh analysis.
func (s *Server) respondWithAnalysis(c *gin.Context) {
	a, err := s.buildAnalysis()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if s.watcher != nil {
		// Flat accounts observe as LOW risk at full balance, the same way
		// sessions record them.
		snap := a.Snapshot
		if !a.HasPosition {
			snap.Tier = grid.TierLow
			snap.Equity = grid.Round2(a.Params.Balance)
		}
		s.watcher.Observe(c.Request.Context(), snap, a.MarginCallPrice, a.Params.CurrentPrice)
	}
	c.JSON(http.StatusOK, a)
}

func (s *Server) handleListPresets(c *gin.Context) {
	presets, err := s.store.ListPresets()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"presets": presets})
}

func (s *Server) handleSavePreset(c *gin.Context) {
	var body struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "preset name required"})
		return
	}
	saved, err := s.store.SavePreset(body.Name, s.currentParams())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (s *Server) handleLoadPreset(c *gin.Context) {
	pre, err := s.store.GetPreset(c.Param("name"))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, preset.ErrNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	s.mu.Lock()
	s.params = pre.Params
	s.mu.Unlock()

	s.respondWithAnalysis(c)
}

func (s *Server) handleDeletePreset(c *gin.Context) {
	if err := s.store.DeletePreset(c.Param("name")); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, preset.ErrNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("name")})
}

func (s *Server) handleListSessions(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	sessions, err := s.store.ListSessions(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

func (s *Server) handleRecordSession(c *gin.Context) {
	var body struct {
		Preset string `json:"preset"`
	}
	// Body is optional; an empty POST records an unnamed session.
	_ = c.ShouldBindJSON(&body)

	a, err := s.buildAnalysis()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	sess, err := s.store.RecordSession(preset.SessionFromAnalysis(a, body.Preset))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sess)
}

// mergeParams applies posted fields over p, leaving absent fields alone.
func mergeParams(p *grid.Parameters, body map[string]any) {
	for key, raw := range body {
		switch key {
		case "start_price":
			p.StartPrice = amountField(raw)
		case "current_price":
			p.CurrentPrice = amountField(raw)
		case "step":
			p.Step = amountField(raw)
		case "lot_size":
			p.LotSize = amountField(raw)
		case "take_profit":
			p.TakeProfit = amountField(raw)
		case "balance":
			p.Balance = amountField(raw)
		case "contract_size":
			p.ContractSize = amountField(raw)
		case "leverage":
			p.Leverage = leverageField(raw)
		case "level_count":
			p.LevelCount = countField(raw)
		}
	}
}

func amountField(v any) float64 {
	switch t := v.(type) {
	case float64:
		return config.ParseAmount(strconv.FormatFloat(t, 'f', -1, 64))
	case string:
		return config.ParseAmount(t)
	default:
		return 0
	}
}

func leverageField(v any) int {
	switch t := v.(type) {
	case float64:
		return config.ParseLeverage(strconv.FormatFloat(t, 'f', -1, 64))
	case string:
		return config.ParseLeverage(t)
	default:
		return 1
	}
}

func countField(v any) int {
	switch t := v.(type) {
	case float64:
		return int(t)
	case string:
		n, err := strconv.Atoi(t)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}
