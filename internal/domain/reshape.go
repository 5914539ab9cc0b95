package domain

import "sort"

// ReshapeStats summarizes one reshape for logging.
type ReshapeStats struct {
	Rows       int // input observations consumed
	Years      int // distinct years in the grid
	Duplicates int // (year, month) pairs overwritten by a later row
	Missing    int // grid cells left missing (absent months + sentinel readings)
}

// Reshape pivots a loaded table into the year-by-month grid. Every distinct
// input year gets exactly one row; months absent from the input stay missing.
// A repeated (year, month) pair is overwritten by the later observation and
// counted in the stats.
func Reshape(table Table) (Grid, ReshapeStats) {
	byYear := make(map[int]*YearRow)
	// Bitmask of months already written per year. A slot's Valid flag is not
	// enough: a repeat of a missing-valued month is still a duplicate.
	filled := make(map[int]uint16)
	stats := ReshapeStats{Rows: len(table.Observations)}

	for _, obs := range table.Observations {
		row, ok := byYear[obs.Year]
		if !ok {
			row = &YearRow{Year: obs.Year}
			byYear[obs.Year] = row
		}
		slot := int(obs.Month) - 1
		if filled[obs.Year]&(1<<slot) != 0 {
			stats.Duplicates++
		}
		row.Months[slot] = obs.Reading
		filled[obs.Year] |= 1 << slot
	}

	grid := Grid{
		Variable: table.Variable,
		Rows:     make([]YearRow, 0, len(byYear)),
	}
	for _, row := range byYear {
		row.AnnualSum = sumPresent(row.Months)
		grid.Rows = append(grid.Rows, *row)
	}
	sort.Slice(grid.Rows, func(i, j int) bool {
		return grid.Rows[i].Year < grid.Rows[j].Year
	})

	grid.MonthlyMeans = monthlyMeans(grid.Rows)
	grid.MeanAnnualSum = meanAnnualSum(grid.Rows)

	stats.Years = len(grid.Rows)
	for _, row := range grid.Rows {
		for _, v := range row.Months {
			if !v.Valid {
				stats.Missing++
			}
		}
	}
	return grid, stats
}

// sumPresent sums the present months. Missing only when no month is present.
func sumPresent(months [12]Value) Value {
	var sum float64
	any := false
	for _, v := range months {
		if v.Valid {
			sum += v.V
			any = true
		}
	}
	if !any {
		return Value{}
	}
	return Of(sum)
}

// monthlyMeans computes the per-month mean across years, skipping missing cells.
func monthlyMeans(rows []YearRow) [12]Value {
	var means [12]Value
	for m := 0; m < 12; m++ {
		var sum float64
		n := 0
		for _, row := range rows {
			if row.Months[m].Valid {
				sum += row.Months[m].V
				n++
			}
		}
		if n > 0 {
			means[m] = Of(sum / float64(n))
		}
	}
	return means
}

// meanAnnualSum averages the per-year sums that are present.
func meanAnnualSum(rows []YearRow) Value {
	var sum float64
	n := 0
	for _, row := range rows {
		if row.AnnualSum.Valid {
			sum += row.AnnualSum.V
			n++
		}
	}
	if n == 0 {
		return Value{}
	}
	return Of(sum / float64(n))
}
