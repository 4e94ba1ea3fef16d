// Package chart renders dashboard charts as PNG.
package chart

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"go-dominance/internal/model"
)

// ErrNoData is returned for an empty series
var ErrNoData = errors.New("chart: no data")

const (
	defaultWidth  = 1024
	defaultHeight = 512
)

// Options sizes a chart; zero values use 1024x512.
type Options struct {
	Width  int
	Height int
}

func (o Options) size() (int, int) {
	w, h := o.Width, o.Height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	return w, h
}

func toDrawing(c model.Color) drawing.Color {
	if c == "" {
		return chart.ColorBlue
	}
	return drawing.ColorFromHex(c.Hex())
}

// Bar renders one bar per label, filled with the matching color.
func Bar(w io.Writer, title string, labels []string, values []float64, colors []model.Color, opts Options) error {
	if len(values) == 0 {
		return ErrNoData
	}
	if len(labels) != len(values) {
		return fmt.Errorf("chart: %d labels for %d values", len(labels), len(values))
	}

	maxVal := 0.0
	bars := make([]chart.Value, len(values))
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			v = 0
		}
		maxVal = math.Max(maxVal, v)

		var fill model.Color
		if i < len(colors) {
			fill = colors[i]
		}
		bars[i] = chart.Value{
			Label: labels[i],
			Value: v,
			Style: chart.Style{
				FillColor:   toDrawing(fill),
				StrokeColor: drawing.Color{R: 0, G: 0, B: 0, A: 20},
				StrokeWidth: 1,
			},
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	width, height := opts.size()
	barWidth := (width - 120) / (len(bars) * 2)
	if barWidth < 4 {
		barWidth = 4
	}
	if barWidth > 80 {
		barWidth = 80
	}

	graph := chart.BarChart{
		Title:      title,
		Width:      width,
		Height:     height,
		BarWidth:   barWidth,
		Background: chart.Style{Padding: chart.Box{Top: 48, Left: 16, Right: 12, Bottom: 16}},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: maxVal * 1.1},
		},
		Bars: bars,
	}
	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("chart: render bar: %w", err)
	}
	return nil
}

// Pie renders the share of each label. Non-positive values are left out.
func Pie(w io.Writer, title string, labels []string, values []float64, opts Options) error {
	if len(labels) != len(values) {
		return fmt.Errorf("chart: %d labels for %d values", len(labels), len(values))
	}

	var slices []chart.Value
	for i, v := range values {
		if math.IsNaN(v) || v <= 0 {
			continue
		}
		slices = append(slices, chart.Value{Label: labels[i], Value: v})
	}
	if len(slices) == 0 {
		return ErrNoData
	}

	width, height := opts.size()
	graph := chart.PieChart{
		Title:  title,
		Width:  width,
		Height: height,
		Values: slices,
	}
	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("chart: render pie: %w", err)
	}
	return nil
}

// DominantBar charts the dominant count of every entry.
func DominantBar(w io.Writer, title string, entries []model.DominantEntry, colors []model.Color, opts Options) error {
	labels := make([]string, len(entries))
	values := make([]float64, len(entries))
	for i, e := range entries {
		labels[i] = fmt.Sprintf("%s (%s)", e.GroupKey, e.DominantCategory)
		values[i] = float64(e.DominantCount)
	}
	return Bar(w, title, labels, values, colors, opts)
}

// BreakdownPie charts one group's category counts.
func BreakdownPie(w io.Writer, title string, rows []model.CategoryCount, opts Options) error {
	labels := make([]string, len(rows))
	values := make([]float64, len(rows))
	for i, r := range rows {
		labels[i] = r.Category
		values[i] = float64(r.Count)
	}
	return Pie(w, title, labels, values, opts)
}

// ProfileBar charts a wide-table profile with its precomputed colors.
func ProfileBar(w io.Writer, title string, p *model.Profile, opts Options) error {
	labels := make([]string, len(p.Values))
	values := make([]float64, len(p.Values))
	colors := make([]model.Color, len(p.Values))
	for i, v := range p.Values {
		labels[i], values[i], colors[i] = v.Label, v.Value, v.Color
	}
	return Bar(w, title, labels, values, colors, opts)
}

// RankingBar charts ranked rows with their precomputed colors.
func RankingBar(w io.Writer, title string, r *model.Ranking, opts Options) error {
	labels := make([]string, len(r.Rows))
	values := make([]float64, len(r.Rows))
	colors := make([]model.Color, len(r.Rows))
	for i, row := range r.Rows {
		labels[i], values[i], colors[i] = row.Label, row.Total, row.Color
	}
	return Bar(w, title, labels, values, colors, opts)
}
