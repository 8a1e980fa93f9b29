package web

import (
	"fmt"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var dashboardTmpl = template.Must(template.New("dashboard").Funcs(template.FuncMap{
	"money": func(v float64) string { return fmt.Sprintf("%.2f", v) },
	"lots":  func(v float64) string { return fmt.Sprintf("%.4f", v) },
	"pct":   func(v float64) string { return fmt.Sprintf("%.2f%%", v) },
	"frac":  func(v float64) string { return fmt.Sprintf("%.0f%%", v*100) },
}).Parse(dashboardHTML))

func (s *Server) handleDashboard(c *gin.Context) {
	a, err := s.buildAnalysis()
	if err != nil {
		c.String(http.StatusInternalServerError, "analysis failed: %v", err)
		return
	}
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := dashboardTmpl.Execute(c.Writer, a); err != nil {
		s.log.Warn("dashboard render failed", zap.Error(err))
	}
}

const dashboardHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>gridcalc</title>
<style>
body { font-family: sans-serif; margin: 2em; color: #222; }
table { border-collapse: collapse; margin: 1em 0; }
th, td { border: 1px solid #ccc; padding: 4px 10px; text-align: right; }
th { background: #f4f4f4; }
td.left, th.left { text-align: left; }
.cards { display: flex; gap: 1em; margin: 1em 0; flex-wrap: wrap; }
.card { border: 1px solid #ccc; border-radius: 6px; padding: 0.8em 1.2em; min-width: 9em; }
.card strong { font-size: 1.3em; }
.tier-LOW { border-color: #2a8f2a; }
.tier-MODERATE { border-color: #c9a21a; }
.tier-HIGH { border-color: #d46a1a; }
.tier-EXTREME { border-color: #c22; }
.muted { color: #777; }
form#params { margin: 1em 0; }
form#params input { width: 7em; }
</style>
</head>
<body>
<h1>Grid risk dashboard</h1>
<p class="muted">start {{money .Params.StartPrice}} &middot; current {{money .Params.CurrentPrice}} &middot; step {{money .Params.Step}} &middot; {{lots .Params.LotSize}} lot &times; {{.Params.LevelCount}} levels &middot; leverage 1:{{.Params.Leverage}} &middot; balance {{money .Params.Balance}}</p>

<form id="params">
<label>Price <input name="current_price" value="{{money .Params.CurrentPrice}}"></label>
<label>Balance <input name="balance" value="{{money .Params.Balance}}"></label>
<label>Leverage <input name="leverage" value="1:{{.Params.Leverage}}"></label>
<button>Update</button>
<span id="params-err" class="muted"></span>
</form>

{{if .HasPosition}}
<div class="cards">
<div class="card tier-{{.Snapshot.Tier}}">Risk tier<br><strong>{{.Snapshot.Tier}}</strong></div>
<div class="card">Triggered<br><strong>{{.Snapshot.NumTriggered}}</strong></div>
<div class="card">Avg entry<br><strong>{{money .Snapshot.AvgEntry}}</strong></div>
<div class="card">Floating P/L<br><strong>{{money .Snapshot.FloatingPL}}</strong></div>
<div class="card">Equity<br><strong>{{money .Snapshot.Equity}}</strong></div>
<div class="card">Used margin<br><strong>{{money .Snapshot.UsedMargin}}</strong></div>
<div class="card">Margin usage<br><strong>{{pct .Snapshot.MarginPercent}}</strong></div>
</div>
{{else}}
<p>No level triggered at the current price; the account is flat.</p>
{{end}}

{{if .HasPosition}}
<p>Break even at <strong>{{money .Snapshot.BreakEvenPrice}}</strong>; the basket takes profit at <strong>{{money .Snapshot.ProfitTargetPrice}}</strong>.</p>
{{end}}
{{if gt .MarginCallPrice 0.0}}
<p>Margin call near <strong>{{money .MarginCallPrice}}</strong>, a further drop of <strong>{{money .MaxSafeDrop}}</strong> from here.</p>
{{else}}
<p>No margin call inside the analysed range.</p>
{{end}}

{{if .Targets}}
<h2>Equity targets</h2>
<table>
<tr><th class="left">Equity at</th><th>Price</th><th>Drop</th></tr>
{{range .Targets}}
<tr><td class="left">{{frac .Fraction}} of balance</td><td>{{if .Reached}}{{money .Price}}{{else}}&mdash;{{end}}</td><td>{{if .Reached}}{{money .Drop}}{{else}}&mdash;{{end}}</td></tr>
{{end}}
</table>
{{end}}

{{if .Projections}}
<h2>Drop scenarios</h2>
<table>
<tr><th>Drop</th><th>Price</th><th>Triggered</th><th>Equity</th><th>Margin usage</th><th class="left">Tier</th></tr>
{{range .Projections}}
<tr><td>{{money .Drop}}</td><td>{{money .Price}}</td>{{if .HasPosition}}<td>{{.Snapshot.NumTriggered}}</td><td>{{money .Snapshot.Equity}}</td><td>{{pct .Snapshot.MarginPercent}}</td><td class="left">{{.Snapshot.Tier}}</td>{{else}}<td>0</td><td colspan="3" class="left muted">flat</td>{{end}}</tr>
{{end}}
</table>
{{end}}

<h2>Ladder</h2>
<table>
<tr><th>#</th><th>Price</th><th class="left">Status</th><th>Lots</th><th>Cum. lots</th><th>Potential profit</th></tr>
{{range .Ladder}}
<tr><td>{{.Index}}</td><td>{{money .Price}}</td><td class="left">{{if .Triggered}}TRIGGERED{{else}}Waiting{{end}}</td><td>{{lots .Lots}}</td><td>{{lots .CumulativeLots}}</td><td>{{money .PotentialProfit}}</td></tr>
{{end}}
</table>

<p><a href="/api/ladder.csv">ladder csv</a> &middot; <a href="/api/curve.csv">curve csv</a> &middot; <a href="/api/chart">equity chart</a> &middot; <a href="/api/analysis">json</a></p>

<script>
document.getElementById("params").addEventListener("submit", function (e) {
	e.preventDefault();
	var body = {};
	new FormData(e.target).forEach(function (v, k) { body[k] = v; });
	fetch("/api/params", {
		method: "POST",
		headers: {"Content-Type": "application/json"},
		body: JSON.stringify(body)
	}).then(function (res) {
		if (res.ok) { location.reload(); return; }
		return res.json().then(function (j) {
			document.getElementById("params-err").textContent = j.error || res.statusText;
		});
	});
});
</script>
</body>
</html>
`
