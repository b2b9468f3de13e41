package models

import (
	"time"
)

// PresidentTerm is a single term of office as published by the presidents source.
// A president serving non-consecutive terms appears once per term.
type PresidentTerm struct {
	Name       string     `json:"name"`
	TookOffice time.Time  `json:"took_office"`
	LeftOffice *time.Time `json:"left_office"` // nil when the source has no resolvable date
}

// FiscalAttribution is the fiscal-year range a president is held responsible for.
// The range is half-open: [StartFiscalYear, EndFiscalYearExclusive).
type FiscalAttribution struct {
	President              string `json:"president"`
	StartFiscalYear        int    `json:"start_fiscal_year"`
	EndFiscalYearExclusive int    `json:"end_fiscal_year_exclusive"`
}
