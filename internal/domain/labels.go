package domain

// Labels holds the human-facing strings written into spreadsheets and charts.
// These are output data, mirroring the agency's own spreadsheets, not UI
// text: the grid header carries month names and the summary rows carry the
// agency's Spanish labels unless English output is requested.
type Labels struct {
	Months      [12]string
	AnnualSum   string
	MonthlyMean string
	MonthsAxis  string
	MissingMark string // rendered above a missing month's bar
	TitleFormat string // fmt verb order: variable, year
}

var labelsES = Labels{
	Months: [12]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	},
	AnnualSum:   "Suma Anual",
	MonthlyMean: "Media Mensual",
	MonthsAxis:  "Meses",
	MissingMark: "s/d",
	TitleFormat: "%s en el año %d",
}

var labelsEN = Labels{
	Months: [12]string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	},
	AnnualSum:   "Annual Sum",
	MonthlyMean: "Monthly Mean",
	MonthsAxis:  "Months",
	MissingMark: "n/d",
	TitleFormat: "%s in %d",
}

// LabelsFor returns the label set for a language code. Spanish is the
// default; only "en" switches to English.
func LabelsFor(lang string) Labels {
	if lang == "en" {
		return labelsEN
	}
	return labelsES
}
