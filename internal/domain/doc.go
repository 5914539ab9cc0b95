// Package domain models monthly meteorological observations exported by the
// regional weather agency and the year-by-month grid derived from them.
//
// # Data Source
//
// Input files are the agency's historical CSV exports ("resultadoCSV"), one
// file per station and variable. The package targets the pre-2025 export
// layout only; the agency changed column semantics in 2025 and those files are
// rejected rather than misread. Pre-2025 layout:
//
//	- one header row
//	- first column: observation date
//	- last column: the numeric reading; its header cell names the variable
//	  (e.g. "Chuvia", "Horas de sol")
//	- any columns in between (station code, station name) are ignored
//
// # Agency Export Conventions
//
// Period labels:
//
//	The date cell encodes a year and month. Accepted layouts, tried in order:
//	"2006-01-02", "2006-01", "02/01/2006", "01/2006". The day-of-month, when
//	present, is ignored; observations are monthly aggregates.
//
// Readings:
//
//	Decimal comma ("12,5") and decimal point ("12.5") are both accepted.
//	Agency exports carry no thousands grouping, so a comma is always the
//	decimal separator.
//
// Missing values:
//
//	"-9999" is the agency sentinel for a month with no usable measurement.
//	An empty cell means the same thing. Both are preserved as missing and are
//	never coerced to zero; a zero reading is real data (0 mm of rain).
//
// Duplicates:
//
//	Some exports repeat a (year, month) pair after the agency reprocesses a
//	period. The later row wins; the reshape reports how many rows were
//	replaced so callers can log it.
//
// # Derived Summaries
//
// The reshaped grid carries the same summaries the agency spreadsheets use:
// a per-year sum of the present months ("Suma Anual"), a per-month mean
// across years ("Media Mensual"), and the mean of the per-year sums in the
// bottom-right cell. Missing months are excluded from every aggregate.
package domain
