// Package agencycsv loads pre-2025 agency CSV exports into domain tables.
// It implements pipeline.Loader.
package agencycsv

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/couchcryptid/meteo-grid/internal/config"
	"github.com/couchcryptid/meteo-grid/internal/domain"
)

// Loader reads one agency CSV export per call. Files are small (a few
// thousand rows at most), so the whole file is read up front; that also lets
// the delimiter be sniffed from the header before the CSV reader is built.
type Loader struct {
	cfg    *config.Config
	logger *slog.Logger
}

// New creates a Loader.
func New(cfg *config.Config, logger *slog.Logger) *Loader {
	return &Loader{cfg: cfg, logger: logger}
}

// Load reads and parses the export at path. Any unparseable period label or
// reading aborts the load with a *domain.ParseError naming the line; rows are
// never silently skipped.
func (l *Loader) Load(ctx context.Context, path string) (domain.Table, error) {
	if err := ctx.Err(); err != nil {
		return domain.Table{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return domain.Table{}, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if l.cfg.Charset == config.CharsetLatin1 {
		r = transform.NewReader(f, charmap.ISO8859_1.NewDecoder())
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return domain.Table{}, fmt.Errorf("read input: %w", err)
	}

	delim, err := l.delimiter(data)
	if err != nil {
		return domain.Table{}, err
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delim
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return domain.Table{}, fmt.Errorf("empty input file: %w", domain.ErrMalformedInput)
	}
	if err != nil {
		return domain.Table{}, fmt.Errorf("read header: %w", err)
	}
	if len(header) < 2 {
		return domain.Table{}, fmt.Errorf("header has %d columns, need at least date and reading: %w",
			len(header), domain.ErrMalformedInput)
	}

	table := domain.Table{Variable: strings.TrimSpace(header[len(header)-1])}

	// Header is line 1; data rows follow. Agency exports have no quoted
	// newlines, so record index maps directly to file line.
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return domain.Table{}, fmt.Errorf("line %d: %v: %w", line, err, domain.ErrMalformedInput)
		}

		year, month, err := domain.ParsePeriod(record[0])
		if err != nil {
			return domain.Table{}, &domain.ParseError{
				Line: line, Field: "period", Value: record[0], Err: err,
			}
		}

		reading, err := l.parseReading(record[len(record)-1])
		if err != nil {
			return domain.Table{}, &domain.ParseError{
				Line: line, Field: "reading", Value: record[len(record)-1], Err: err,
			}
		}

		table.Observations = append(table.Observations, domain.Observation{
			Year: year, Month: month, Reading: reading,
		})
	}

	l.logger.Debug("loaded agency export",
		"path", path,
		"variable", table.Variable,
		"rows", len(table.Observations),
	)
	return table, nil
}

// delimiter picks the CSV separator: configured, or sniffed from the header
// row by whichever of ";" and "," occurs more often.
func (l *Loader) delimiter(data []byte) (rune, error) {
	switch l.cfg.Delimiter {
	case config.DelimiterSemicolon:
		return ';', nil
	case config.DelimiterComma:
		return ',', nil
	}

	head := data
	if i := bytes.IndexByte(head, '\n'); i >= 0 {
		head = head[:i]
	}
	semis := bytes.Count(head, []byte(";"))
	commas := bytes.Count(head, []byte(","))
	if semis == 0 && commas == 0 {
		return 0, fmt.Errorf("cannot detect delimiter in header row: %w", domain.ErrMalformedInput)
	}
	if semis >= commas {
		return ';', nil
	}
	return ',', nil
}

// parseReading converts a reading cell into a Value. The agency sentinel and
// the empty cell both mean missing. A decimal comma is normalized to a point;
// exports carry no thousands grouping, so a comma is never ambiguous.
func (l *Loader) parseReading(cell string) (domain.Value, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" || cell == l.cfg.MissingSentinel {
		return domain.Value{}, nil
	}

	normalized := cell
	if !strings.Contains(normalized, ".") {
		normalized = strings.ReplaceAll(normalized, ",", ".")
	}

	v, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return domain.Value{}, fmt.Errorf("reading %q is not numeric: %w", cell, domain.ErrMalformedInput)
	}
	return domain.Of(v), nil
}
