// Package chart renders a yearly series as a bar-chart PNG.
// It implements pipeline.Renderer.
package chart

import (
	"context"
	"fmt"
	"image/color"
	"log/slog"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/couchcryptid/meteo-grid/internal/config"
	"github.com/couchcryptid/meteo-grid/internal/domain"
)

// Renderer draws twelve calendar-ordered bars for one year. Missing months
// get a zero-height bar marked with the missing label so they cannot be read
// as a true zero, which gets a "0" value label instead.
type Renderer struct {
	cfg    *config.Config
	logger *slog.Logger
}

// New creates a Renderer.
func New(cfg *config.Config, logger *slog.Logger) *Renderer {
	return &Renderer{cfg: cfg, logger: logger}
}

// Render writes the bar chart for series to path as a PNG.
func (r *Renderer) Render(ctx context.Context, series domain.Series, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	labels := domain.LabelsFor(r.cfg.Lang)

	p := plot.New()
	p.Title.Text = fmt.Sprintf(labels.TitleFormat, series.Variable, series.Year)
	p.X.Label.Text = labels.MonthsAxis
	p.Y.Label.Text = series.Variable

	values := make(plotter.Values, 12)
	for i, v := range series.Values {
		if v.Valid {
			values[i] = v.V
		}
	}

	bars, err := plotter.NewBarChart(values, vg.Points(24))
	if err != nil {
		return fmt.Errorf("build bar chart: %w", err)
	}
	bars.Color = color.RGBA{R: 70, G: 130, B: 180, A: 255}
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	p.Add(plotter.NewGrid())

	p.NominalX(labels.Months[:]...)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.YAlign = draw.YCenter
	p.X.Tick.Label.XAlign = draw.XRight

	if err := addValueLabels(p, series, labels.MissingMark); err != nil {
		return err
	}

	p.Y.Min = 0
	p.Y.Max = yMax(series)

	if err := p.Save(12*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("save chart: %w", err)
	}

	r.logger.Info("chart written", "path", path, "variable", series.Variable, "year", series.Year)
	return nil
}

// addValueLabels puts each present value above its bar and the missing mark
// at the baseline of absent months.
func addValueLabels(p *plot.Plot, series domain.Series, missingMark string) error {
	pad := yMax(series) * 0.02
	for i, v := range series.Values {
		text := missingMark
		y := pad
		if v.Valid {
			text = trimFloat(v.V)
			y = v.V + pad
		}
		label, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: float64(i), Y: y}},
			Labels: []string{text},
		})
		if err != nil {
			return fmt.Errorf("label month %d: %w", i+1, err)
		}
		p.Add(label)
	}
	return nil
}

// yMax leaves headroom above the tallest bar for its label. A series with no
// positive values still gets a visible axis.
func yMax(series domain.Series) float64 {
	maxVal := 0.0
	for _, v := range series.Values {
		if v.Valid && v.V > maxVal {
			maxVal = v.V
		}
	}
	if maxVal == 0 {
		return 1
	}
	return maxVal * 1.15
}

func trimFloat(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}
