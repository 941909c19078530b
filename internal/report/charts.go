package report

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	apperrors "rxreport/internal/errors"
	"rxreport/internal/summary"
)

// greenPalette matches the workbook theme, darkest first.
var greenPalette = []drawing.Color{
	drawing.ColorFromHex("217346"),
	drawing.ColorFromHex("2E9B5F"),
	drawing.ColorFromHex("45B778"),
	drawing.ColorFromHex("6FCF97"),
	drawing.ColorFromHex("A8E6CF"),
}

var (
	savingsGreen = drawing.ColorFromHex("217346")
	increaseRed  = drawing.ColorFromHex("DC3545")
)

// ChartRenderer renders the fixed report charts to PNG files. Output is
// deterministic for identical input data.
type ChartRenderer struct {
	logger *slog.Logger
}

// NewChartRenderer creates a chart renderer.
func NewChartRenderer(logger *slog.Logger) *ChartRenderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ChartRenderer{logger: logger}
}

// RenderTopSpendBar renders the top-NDC-by-spend bar chart. The ranking is
// expected in descending spend order.
func (r *ChartRenderer) RenderTopSpendBar(path string, ranking []summary.DrugSpend) error {
	if len(ranking) == 0 {
		return apperrors.NewRenderError("top spend chart needs at least one drug", nil)
	}

	bars := make([]chart.Value, 0, len(ranking))
	for i, d := range ranking {
		bars = append(bars, chart.Value{
			Label: d.NDC,
			Value: d.Spend.InexactFloat64(),
			Style: barStyle(greenPalette[i%len(greenPalette)]),
		})
	}

	graph := chart.BarChart{
		Title:      fmt.Sprintf("Top %d NDC by Spend", len(ranking)),
		Background: chart.Style{Padding: chart.Box{Top: 40}},
		Width:      1024,
		Height:     640,
		BarWidth:   110,
		Bars:       bars,
		YAxis: chart.YAxis{
			ValueFormatter: dollarFormatter,
		},
	}

	return r.renderPNG(path, graph.Render)
}

// RenderSavingsBar renders the month-over-month savings bar chart. Months
// with positive savings are green, cost increases are red. The first month
// in range has no savings figure and is left out. When no month has a
// savings figure the chart is skipped entirely.
func (r *ChartRenderer) RenderSavingsBar(path string, summaries []summary.MonthlySummary) error {
	bars := make([]chart.Value, 0, len(summaries))
	var minValue, maxValue float64
	for _, s := range summaries {
		if s.Savings == nil {
			continue
		}

		value := s.Savings.Amount.InexactFloat64()
		color := savingsGreen
		if s.Savings.Amount.IsNegative() {
			color = increaseRed
		}
		bars = append(bars, chart.Value{
			Label: s.Month.String(),
			Value: value,
			Style: barStyle(color),
		})

		if value < minValue {
			minValue = value
		}
		if value > maxValue {
			maxValue = value
		}
	}

	if len(bars) == 0 {
		r.logger.Warn("savings chart skipped, not enough months", slog.String("path", path))
		return nil
	}

	if maxValue == minValue {
		// Keep the axis range non-degenerate when every month is flat.
		maxValue = minValue + 1
	}

	graph := chart.BarChart{
		Title:      "Monthly Savings vs Previous Period",
		Background: chart.Style{Padding: chart.Box{Top: 40}},
		Width:      1024,
		Height:     640,
		BarWidth:   90,
		Bars:       bars,
		YAxis: chart.YAxis{
			ValueFormatter: dollarFormatter,
			Range: &chart.ContinuousRange{
				Min: minValue * 1.1,
				Max: maxValue * 1.1,
			},
		},
	}

	return r.renderPNG(path, graph.Render)
}

// RenderSpendPie renders the top-NDC spend distribution pie chart.
func (r *ChartRenderer) RenderSpendPie(path string, ranking []summary.DrugSpend) error {
	if len(ranking) == 0 {
		return apperrors.NewRenderError("spend distribution chart needs at least one drug", nil)
	}

	values := make([]chart.Value, 0, len(ranking))
	for i, d := range ranking {
		values = append(values, chart.Value{
			Label: d.Drug,
			Value: d.Spend.InexactFloat64(),
			Style: chart.Style{FillColor: greenPalette[i%len(greenPalette)]},
		})
	}

	graph := chart.PieChart{
		Title:  fmt.Sprintf("Top %d NDC Spend Distribution", len(ranking)),
		Width:  800,
		Height: 800,
		Values: values,
	}

	return r.renderPNG(path, graph.Render)
}

// renderPNG renders a chart into memory and writes it out in one shot.
// Failures before the write are rendering errors, not I/O errors.
func (r *ChartRenderer) renderPNG(path string, render func(chart.RendererProvider, io.Writer) error) error {
	var buf bytes.Buffer
	if err := render(chart.PNG, &buf); err != nil {
		return apperrors.NewRenderError(fmt.Sprintf("render chart %s", path), err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("write chart %s", path), err)
	}

	r.logger.Info("chart written", slog.String("path", path), slog.Int("bytes", buf.Len()))
	return nil
}

func barStyle(fill drawing.Color) chart.Style {
	return chart.Style{
		FillColor:   fill,
		StrokeColor: fill,
		StrokeWidth: 0,
	}
}

func dollarFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return display.Sprintf("$%.0f", f)
	}
	return ""
}
