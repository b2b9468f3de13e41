package models

// DeficitRecord is one row of the deficit series, keyed by fiscal year
type DeficitRecord struct {
	FiscalYear    int      `json:"fiscal_year"`
	DeficitPctGDP *float64 `json:"deficit_pct_gdp"` // nil when the source row has no value
}

// MergedYearRecord is a fiscal year of the deficit series attributed to a president
type MergedYearRecord struct {
	FiscalYear    int      `json:"fiscal_year"`
	DeficitPctGDP *float64 `json:"deficit_pct_gdp"`
	President     string   `json:"president"`
}

// PresidentAverage is the mean deficit over the fiscal years attributed to a president.
// Years counts only the fiscal years that carried a value.
type PresidentAverage struct {
	President     string  `json:"president"`
	DeficitPctGDP float64 `json:"deficit_pct_gdp"`
	Years         int     `json:"years"`
}

// Float64 returns a pointer to v, for building records with a value
func Float64(v float64) *float64 {
	return &v
}
