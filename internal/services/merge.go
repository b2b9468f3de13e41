package services

import (
	"fmt"
	"sort"

	"github.com/epeers/deficits/internal/models"
)

type mergeOptions struct {
	forwardFill bool
}

// MergeOption configures MergeSeries
type MergeOption func(*mergeOptions)

// WithoutForwardFill attributes only the fiscal years that are boundary years.
// Every other year gets an empty president.
func WithoutForwardFill() MergeOption {
	return func(o *mergeOptions) {
		o.forwardFill = false
	}
}

type boundary struct {
	fiscalYear int
	president  string
}

// MergeSeries left-joins the deficit series against the attribution boundaries.
// Each attribution contributes one boundary at its start fiscal year. Fiscal
// years are walked in ascending order and the current president changes only
// when a boundary is reached, so years between boundaries carry the last
// president forward. Years after the last attribution's range are dropped.
// UnattributedLeadingYear is returned only when the first in-scope year
// precedes the earliest boundary; it need not be a boundary year itself.
func MergeSeries(deficits []models.DeficitRecord, attributions []models.FiscalAttribution, opts ...MergeOption) ([]models.MergedYearRecord, error) {
	o := mergeOptions{forwardFill: true}
	for _, opt := range opts {
		opt(&o)
	}

	if len(attributions) == 0 {
		return nil, ErrNoAttributions
	}

	bounds := make([]boundary, 0, len(attributions))
	byYear := make(map[int]string, len(attributions))
	lastYear := attributions[0].EndFiscalYearExclusive - 1
	for _, a := range attributions {
		if prev, exists := byYear[a.StartFiscalYear]; exists {
			return nil, fmt.Errorf("%w: FY%d claimed by %s and %s", ErrDuplicateBoundary, a.StartFiscalYear, prev, a.President)
		}
		byYear[a.StartFiscalYear] = a.President
		bounds = append(bounds, boundary{fiscalYear: a.StartFiscalYear, president: a.President})
		if a.EndFiscalYearExclusive-1 > lastYear {
			lastYear = a.EndFiscalYearExclusive - 1
		}
	}
	sort.Slice(bounds, func(i, j int) bool {
		return bounds[i].fiscalYear < bounds[j].fiscalYear
	})

	rows := make([]models.DeficitRecord, len(deficits))
	copy(rows, deficits)
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].FiscalYear < rows[j].FiscalYear
	})
	for i := 1; i < len(rows); i++ {
		if rows[i].FiscalYear == rows[i-1].FiscalYear {
			return nil, fmt.Errorf("%w: FY%d", ErrDuplicateFiscalYear, rows[i].FiscalYear)
		}
	}

	inScope := rows[:0]
	for _, r := range rows {
		if r.FiscalYear <= lastYear {
			inScope = append(inScope, r)
		}
	}
	if len(inScope) == 0 {
		return []models.MergedYearRecord{}, nil
	}

	if inScope[0].FiscalYear < bounds[0].fiscalYear {
		return nil, &UnattributedLeadingYear{FiscalYear: inScope[0].FiscalYear, EarliestBoundary: bounds[0].fiscalYear}
	}

	merged := make([]models.MergedYearRecord, 0, len(inScope))
	current := ""
	next := 0
	for _, r := range inScope {
		for next < len(bounds) && bounds[next].fiscalYear <= r.FiscalYear {
			current = bounds[next].president
			next++
		}

		president := current
		if !o.forwardFill {
			president = byYear[r.FiscalYear]
		}

		merged = append(merged, models.MergedYearRecord{
			FiscalYear:    r.FiscalYear,
			DeficitPctGDP: r.DeficitPctGDP,
			President:     president,
		})
	}

	return merged, nil
}
