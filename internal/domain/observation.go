package domain

import "time"

// Value is a missing-aware numeric cell. The zero Value is missing; use Of
// for a present reading. Missing is distinct from zero everywhere: it exports
// as an empty spreadsheet cell and renders as a marked, zero-height bar.
type Value struct {
	V     float64
	Valid bool
}

// Of wraps a present reading.
func Of(v float64) Value {
	return Value{V: v, Valid: true}
}

// Observation is one input row after parsing: a (year, month) period and its
// reading, which may be missing.
type Observation struct {
	Year    int
	Month   time.Month
	Reading Value
}

// Table is a loaded input file: the variable name taken from the reading
// column's header cell, plus every observation row in file order.
type Table struct {
	Variable     string
	Observations []Observation
}

// YearRow is one row of the reshaped grid: twelve calendar-ordered monthly
// slots plus the sum of the present months. AnnualSum is missing only when
// all twelve months are missing.
type YearRow struct {
	Year      int
	Months    [12]Value
	AnnualSum Value
}

// Grid is the year-by-month table produced by Reshape. Rows are sorted by
// ascending year and each input year appears exactly once. MonthlyMeans holds
// the per-month mean across years and MeanAnnualSum the mean of the per-year
// sums; both skip missing cells.
type Grid struct {
	Variable      string
	Rows          []YearRow
	MonthlyMeans  [12]Value
	MeanAnnualSum Value
}

// Series is the chart view of one year: twelve values in calendar order,
// possibly missing.
type Series struct {
	Variable string
	Year     int
	Values   [12]Value
}

// Years lists the grid's years in ascending order.
func (g Grid) Years() []int {
	years := make([]int, len(g.Rows))
	for i, row := range g.Rows {
		years[i] = row.Year
	}
	return years
}

// SeriesFor extracts the chart series for one year. Returns ErrYearNotFound
// if the grid has no row for it.
func (g Grid) SeriesFor(year int) (Series, error) {
	for _, row := range g.Rows {
		if row.Year == year {
			return Series{Variable: g.Variable, Year: year, Values: row.Months}, nil
		}
	}
	return Series{}, &YearError{Year: year, Err: ErrYearNotFound}
}
