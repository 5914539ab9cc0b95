package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fullYear2010 is a complete year in calendar order.
var fullYear2010 = []float64{5.1, 5.9, 4.8, 3.2, 2.1, 0.9, 0.3, 0.5, 1.8, 3.7, 5.2, 4.2}

func obsYear(year int, values []float64) []Observation {
	obs := make([]Observation, len(values))
	for i, v := range values {
		obs[i] = Observation{Year: year, Month: time.Month(i + 1), Reading: Of(v)}
	}
	return obs
}

func TestReshape(t *testing.T) {
	t.Run("one row per distinct year", func(t *testing.T) {
		table := Table{Variable: "Chuvia"}
		table.Observations = append(table.Observations, obsYear(2010, fullYear2010)...)
		table.Observations = append(table.Observations, obsYear(2012, fullYear2010)...)
		table.Observations = append(table.Observations,
			Observation{Year: 2011, Month: time.June, Reading: Of(7.5)})

		grid, stats := Reshape(table)

		require.Len(t, grid.Rows, 3)
		assert.Equal(t, []int{2010, 2011, 2012}, grid.Years())
		assert.Equal(t, 3, stats.Years)
		assert.Equal(t, 0, stats.Duplicates)
	})

	t.Run("full year round-trips through series in calendar order", func(t *testing.T) {
		table := Table{Variable: "Chuvia", Observations: obsYear(2010, fullYear2010)}

		grid, _ := Reshape(table)
		series, err := grid.SeriesFor(2010)

		require.NoError(t, err)
		for i, want := range fullYear2010 {
			assert.True(t, series.Values[i].Valid, "month %d", i+1)
			assert.Equal(t, want, series.Values[i].V, "month %d", i+1)
		}
	})

	t.Run("absent month stays missing, not zero", func(t *testing.T) {
		// Year 2011 has no row for March.
		table := Table{Variable: "Chuvia"}
		for m := time.January; m <= time.December; m++ {
			if m == time.March {
				continue
			}
			table.Observations = append(table.Observations,
				Observation{Year: 2011, Month: m, Reading: Of(1.0)})
		}

		grid, stats := Reshape(table)

		require.Len(t, grid.Rows, 1)
		march := grid.Rows[0].Months[2]
		assert.False(t, march.Valid)
		assert.Equal(t, 1, stats.Missing)
	})

	t.Run("sentinel reading stays missing and skips aggregates", func(t *testing.T) {
		table := Table{Variable: "Chuvia", Observations: []Observation{
			{Year: 2011, Month: time.January, Reading: Of(2.0)},
			{Year: 2011, Month: time.February, Reading: Value{}}, // -9999 in the export
			{Year: 2011, Month: time.March, Reading: Of(4.0)},
		}}

		grid, _ := Reshape(table)

		row := grid.Rows[0]
		assert.False(t, row.Months[1].Valid)
		require.True(t, row.AnnualSum.Valid)
		assert.Equal(t, 6.0, row.AnnualSum.V)
	})

	t.Run("duplicate period is last-write-wins", func(t *testing.T) {
		table := Table{Variable: "Chuvia", Observations: []Observation{
			{Year: 2010, Month: time.May, Reading: Of(1.1)},
			{Year: 2010, Month: time.May, Reading: Of(9.9)},
		}}

		grid, stats := Reshape(table)

		assert.Equal(t, 1, stats.Duplicates)
		assert.Equal(t, 9.9, grid.Rows[0].Months[4].V)
	})

	t.Run("duplicate of a missing-valued month still counts", func(t *testing.T) {
		table := Table{Variable: "Chuvia", Observations: []Observation{
			{Year: 2010, Month: time.May, Reading: Value{}},
			{Year: 2010, Month: time.May, Reading: Of(3.0)},
		}}

		grid, stats := Reshape(table)

		assert.Equal(t, 1, stats.Duplicates)
		assert.Equal(t, 3.0, grid.Rows[0].Months[4].V)
	})

	t.Run("monthly means skip missing years", func(t *testing.T) {
		table := Table{Variable: "Chuvia", Observations: []Observation{
			{Year: 2010, Month: time.January, Reading: Of(2.0)},
			{Year: 2011, Month: time.January, Reading: Of(4.0)},
			{Year: 2012, Month: time.February, Reading: Of(8.0)},
		}}

		grid, _ := Reshape(table)

		require.True(t, grid.MonthlyMeans[0].Valid)
		assert.Equal(t, 3.0, grid.MonthlyMeans[0].V)
		require.True(t, grid.MonthlyMeans[1].Valid)
		assert.Equal(t, 8.0, grid.MonthlyMeans[1].V)
		assert.False(t, grid.MonthlyMeans[2].Valid)
	})

	t.Run("mean annual sum averages the per-year sums", func(t *testing.T) {
		table := Table{Variable: "Chuvia", Observations: []Observation{
			{Year: 2010, Month: time.January, Reading: Of(10.0)},
			{Year: 2011, Month: time.January, Reading: Of(30.0)},
		}}

		grid, _ := Reshape(table)

		require.True(t, grid.MeanAnnualSum.Valid)
		assert.Equal(t, 20.0, grid.MeanAnnualSum.V)
	})

	t.Run("all-missing year has missing annual sum", func(t *testing.T) {
		table := Table{Variable: "Chuvia", Observations: []Observation{
			{Year: 2010, Month: time.January, Reading: Value{}},
		}}

		grid, _ := Reshape(table)

		assert.False(t, grid.Rows[0].AnnualSum.Valid)
		assert.False(t, grid.MeanAnnualSum.Valid)
	})

	t.Run("empty table yields empty grid", func(t *testing.T) {
		grid, stats := Reshape(Table{Variable: "Chuvia"})

		assert.Empty(t, grid.Rows)
		assert.False(t, grid.MeanAnnualSum.Valid)
		assert.Equal(t, 0, stats.Rows)
	})
}

func TestGrid_SeriesFor_YearNotFound(t *testing.T) {
	grid, _ := Reshape(Table{Variable: "Chuvia", Observations: obsYear(2010, fullYear2010)})

	_, err := grid.SeriesFor(1999)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrYearNotFound)
	assert.Contains(t, err.Error(), "1999")
}

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		name      string
		label     string
		wantYear  int
		wantMonth time.Month
		wantErr   bool
	}{
		{"full ISO date", "2010-03-15", 2010, time.March, false},
		{"year-month", "2010-03", 2010, time.March, false},
		{"day-first slash date", "15/03/2010", 2010, time.March, false},
		{"month-slash-year", "03/2010", 2010, time.March, false},
		{"surrounding whitespace", " 2010-03 ", 2010, time.March, false},
		{"empty", "", 0, 0, true},
		{"free text", "marzo de 2010", 0, 0, true},
		{"month out of range", "2010-13", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			year, month, err := ParsePeriod(tt.label)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrMalformedInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantYear, year)
			assert.Equal(t, tt.wantMonth, month)
		})
	}
}

func TestLabelsFor(t *testing.T) {
	es := LabelsFor("es")
	assert.Equal(t, "Enero", es.Months[0])
	assert.Equal(t, "Suma Anual", es.AnnualSum)

	en := LabelsFor("en")
	assert.Equal(t, "January", en.Months[0])
	assert.Equal(t, "Annual Sum", en.AnnualSum)

	// Unknown languages fall back to the agency's Spanish.
	assert.Equal(t, es, LabelsFor("fr"))
}
