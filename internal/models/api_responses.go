package models

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// YearsResponse lists the merged per-fiscal-year series
type YearsResponse struct {
	CutoffYear int                `json:"cutoff_year"`
	Years      []MergedYearRecord `json:"years"`
}

// AveragesResponse lists per-administration averages in first-appearance order
type AveragesResponse struct {
	Averages []PresidentAverage `json:"averages"`
}

// AttributionsResponse lists the fiscal attribution ranges used for the merge
type AttributionsResponse struct {
	Attributions []FiscalAttribution `json:"attributions"`
}

// WarningsResponse lists the non-fatal parse warnings of the run
type WarningsResponse struct {
	Warnings []Warning `json:"warnings"`
}
