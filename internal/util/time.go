package util

import (
	"time"
)

// FiscalYearStartMonth is the first month of the federal fiscal year.
// Fiscal year N runs from October 1 of N-1 through September 30 of N.
const FiscalYearStartMonth = time.October

// FiscalYearOf returns the federal fiscal year containing t, named for the
// calendar year in which it ends.
func FiscalYearOf(t time.Time) int {
	if t.Month() >= FiscalYearStartMonth {
		return t.Year() + 1
	}
	return t.Year()
}

// ResponsibilityEndYear returns the last fiscal year attributed to a
// president who left office on left. A departure before October leaves the
// following fiscal year's budget with the outgoing president; a departure in
// October or later pushes it one year further.
func ResponsibilityEndYear(left time.Time) int {
	return FiscalYearOf(left) + 1
}

// EndFiscalYearExclusive returns the first fiscal year a president who left
// office on left is no longer responsible for.
func EndFiscalYearExclusive(left time.Time) int {
	return ResponsibilityEndYear(left) + 1
}
