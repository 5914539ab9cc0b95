// Package spreadsheet writes reshaped grids as xlsx workbooks.
// It implements pipeline.Exporter.
package spreadsheet

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/couchcryptid/meteo-grid/internal/config"
	"github.com/couchcryptid/meteo-grid/internal/domain"
)

const (
	fallbackSheetName = "Datos"
	columnWidth       = 14
)

// Exporter serializes a grid into a single-sheet workbook: header row of
// month names, one row per year, summary row and column.
type Exporter struct {
	cfg    *config.Config
	logger *slog.Logger
}

// New creates an Exporter.
func New(cfg *config.Config, logger *slog.Logger) *Exporter {
	return &Exporter{cfg: cfg, logger: logger}
}

// Export writes the grid to path. The workbook is built in a temp file next
// to the destination and renamed into place on success, so a failed export
// never leaves a partial file that looks valid.
func (e *Exporter) Export(ctx context.Context, grid domain.Grid, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := sheetName(grid.Variable)
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("name sheet: %w", err)
	}

	labels := domain.LabelsFor(e.cfg.Lang)
	if err := e.writeSheet(f, sheet, grid, labels); err != nil {
		return err
	}

	_ = f.SetDocProps(&excelize.DocProperties{
		Creator: "meteo-grid",
		Created: domain.Now().UTC().Format(time.RFC3339),
	})

	if err := writeAtomic(f, path); err != nil {
		return err
	}

	e.logger.Info("spreadsheet written",
		"path", path,
		"variable", grid.Variable,
		"years", len(grid.Rows),
	)
	return nil
}

func (e *Exporter) writeSheet(f *excelize.File, sheet string, grid domain.Grid, labels domain.Labels) error {
	// Header: variable label in the corner, then the twelve months and the
	// annual-sum column.
	header := make([]any, 0, 14)
	header = append(header, headerLabel(grid.Variable))
	for _, m := range labels.Months {
		header = append(header, m)
	}
	header = append(header, labels.AnnualSum)
	if err := setRow(f, sheet, 1, header); err != nil {
		return err
	}

	for i, yearRow := range grid.Rows {
		row := make([]any, 0, 14)
		row = append(row, yearRow.Year)
		for _, v := range yearRow.Months {
			row = append(row, cell(v))
		}
		row = append(row, cell(yearRow.AnnualSum))
		if err := setRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}

	// Summary row: per-month means, mean of annual sums bottom-right.
	summary := make([]any, 0, 14)
	summary = append(summary, labels.MonthlyMean)
	for _, v := range grid.MonthlyMeans {
		summary = append(summary, cell(v))
	}
	summary = append(summary, cell(grid.MeanAnnualSum))
	if err := setRow(f, sheet, len(grid.Rows)+2, summary); err != nil {
		return err
	}

	return f.SetColWidth(sheet, "A", "N", columnWidth)
}

// setRow writes one row, skipping nil cells so missing values stay empty.
func setRow(f *excelize.File, sheet string, rowNum int, values []any) error {
	for col, v := range values {
		if v == nil {
			continue
		}
		ref, err := excelize.CoordinatesToCellName(col+1, rowNum)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, ref, v); err != nil {
			return fmt.Errorf("set cell %s: %w", ref, err)
		}
	}
	return nil
}

// cell maps a domain value to a spreadsheet cell; missing becomes an empty cell.
func cell(v domain.Value) any {
	if !v.Valid {
		return nil
	}
	return v.V
}

func headerLabel(variable string) string {
	if variable == "" {
		return fallbackSheetName
	}
	return variable
}

// sheetName sanitizes the variable into a legal sheet name: the characters
// :\/?*[] are forbidden and names cap at 31 characters.
func sheetName(variable string) string {
	name := strings.TrimSpace(variable)
	if name == "" {
		return fallbackSheetName
	}
	name = strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return '_'
		}
		return r
	}, name)
	if runes := []rune(name); len(runes) > 31 {
		name = string(runes[:31])
	}
	return name
}

// writeAtomic saves the workbook via a temp file in the destination
// directory plus rename, which is atomic on the same filesystem.
func writeAtomic(f *excelize.File, path string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".meteo-grid-*.xlsx")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := f.WriteTo(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write workbook: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename into place: %w", err)
	}
	return nil
}
