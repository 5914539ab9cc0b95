// Package pipeline orchestrates the load-reshape-export flow behind the CLI.
package pipeline

import (
	"context"
	"log/slog"

	"github.com/couchcryptid/meteo-grid/internal/domain"
)

// Loader reads an agency CSV export into a domain table.
type Loader interface {
	Load(ctx context.Context, path string) (domain.Table, error)
}

// Exporter writes a reshaped grid to a spreadsheet file.
type Exporter interface {
	Export(ctx context.Context, grid domain.Grid, path string) error
}

// Renderer writes a yearly series to a chart file.
type Renderer interface {
	Render(ctx context.Context, series domain.Series, path string) error
}

// Converter wires the stages together. Each exported method is one single-shot
// user action: convert a file, render a chart, or list the available years.
type Converter struct {
	loader   Loader
	exporter Exporter
	renderer Renderer
	logger   *slog.Logger
}

// New creates a Converter with the given stages.
func New(loader Loader, exporter Exporter, renderer Renderer, logger *slog.Logger) *Converter {
	return &Converter{
		loader:   loader,
		exporter: exporter,
		renderer: renderer,
		logger:   logger,
	}
}

// Convert loads the export at in, reshapes it, and writes the grid to out.
// Nothing is written when loading fails, so a malformed input cannot produce
// a partial output file.
func (c *Converter) Convert(ctx context.Context, in, out string) error {
	grid, err := c.loadGrid(ctx, in)
	if err != nil {
		return err
	}
	return c.exporter.Export(ctx, grid, out)
}

// RenderChart loads the export at in and renders the bar chart for year to
// out. Returns domain.ErrYearNotFound (wrapped) when the year has no data;
// no file is written in that case.
func (c *Converter) RenderChart(ctx context.Context, in string, year int, out string) error {
	grid, err := c.loadGrid(ctx, in)
	if err != nil {
		return err
	}
	series, err := grid.SeriesFor(year)
	if err != nil {
		return err
	}
	return c.renderer.Render(ctx, series, out)
}

// Years lists the years available in the export at in, ascending.
func (c *Converter) Years(ctx context.Context, in string) ([]int, error) {
	grid, err := c.loadGrid(ctx, in)
	if err != nil {
		return nil, err
	}
	return grid.Years(), nil
}

func (c *Converter) loadGrid(ctx context.Context, in string) (domain.Grid, error) {
	table, err := c.loader.Load(ctx, in)
	if err != nil {
		return domain.Grid{}, err
	}

	grid, stats := domain.Reshape(table)
	if stats.Duplicates > 0 {
		c.logger.Warn("duplicate periods overwritten by later rows",
			"input", in, "duplicates", stats.Duplicates)
	}
	c.logger.Info("reshaped",
		"input", in,
		"variable", grid.Variable,
		"rows", stats.Rows,
		"years", stats.Years,
		"missing_cells", stats.Missing,
	)
	return grid, nil
}
