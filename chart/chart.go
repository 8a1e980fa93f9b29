// Package chart renders an analysis as a standalone HTML equity chart.
package chart

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/hamzaelsherif03/Calculator/report"
)

// Render writes the equity curve for a as a self-contained HTML page. Four
// series share the price axis: equity, balance, used margin and the stop-out
// line (half of used margin); equity crossing the stop-out line is the
// margin call.
func Render(w io.Writer, a *report.Analysis) error {
	line := charts.NewLine()

	subtitle := "no margin call inside the analysed range"
	if a.MarginCallPrice > 0 {
		subtitle = fmt.Sprintf("margin call at %.2f, max safe drop %.2f",
			a.MarginCallPrice, a.MaxSafeDrop)
	}

	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Grid Equity Curve",
			Width:     "1100px",
			Height:    "560px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Equity vs Price",
			Subtitle: subtitle,
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "price"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "account", Scale: opts.Bool(true)}),
	)
	line.SetSeriesOptions(
		charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}),
	)

	xAxis := make([]string, 0, len(a.Curve))
	equity := make([]opts.LineData, 0, len(a.Curve))
	balance := make([]opts.LineData, 0, len(a.Curve))
	margin := make([]opts.LineData, 0, len(a.Curve))
	stopOut := make([]opts.LineData, 0, len(a.Curve))
	for _, cp := range a.Curve {
		xAxis = append(xAxis, strconv.FormatFloat(cp.Price, 'f', 2, 64))
		equity = append(equity, opts.LineData{Value: cp.Equity})
		balance = append(balance, opts.LineData{Value: a.Params.Balance})
		margin = append(margin, opts.LineData{Value: cp.UsedMargin})
		stopOut = append(stopOut, opts.LineData{Value: cp.UsedMargin * 0.5})
	}

	line.SetXAxis(xAxis)
	line.AddSeries("Equity", equity)
	line.AddSeries("Balance", balance)
	line.AddSeries("Used Margin", margin)
	line.AddSeries("Stop-Out Level", stopOut)

	page := components.NewPage()
	page.AddCharts(line)
	return page.Render(w)
}

// RenderFile renders the chart to path.
func RenderFile(path string, a *report.Analysis) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	if err := Render(f, a); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
