package services

import (
	"fmt"
	"io"

	"github.com/epeers/deficits/internal/models"
	"github.com/shopspring/decimal"
)

// AverageByPresident computes the mean deficit over each president's attributed
// fiscal years, in first-appearance order. Years without a value are ignored.
// Sums run in decimal so the two-digit annotations do not drift.
func AverageByPresident(merged []models.MergedYearRecord) []models.PresidentAverage {
	type acc struct {
		sum   decimal.Decimal
		count int64
	}
	sums := make(map[string]*acc)
	for _, m := range merged {
		a, ok := sums[m.President]
		if !ok {
			a = &acc{sum: decimal.Zero}
			sums[m.President] = a
		}
		if m.DeficitPctGDP == nil {
			continue
		}
		a.sum = a.sum.Add(decimal.NewFromFloat(*m.DeficitPctGDP))
		a.count++
	}

	names := PresidentsInOrder(merged)
	averages := make([]models.PresidentAverage, 0, len(names))
	for _, name := range names {
		a := sums[name]
		avg := models.PresidentAverage{President: name, Years: int(a.count)}
		if a.count > 0 {
			avg.DeficitPctGDP = a.sum.Div(decimal.NewFromInt(a.count)).InexactFloat64()
		}
		averages = append(averages, avg)
	}
	return averages
}

// FormatPercent renders v with two decimals, the precision used for chart annotations
func FormatPercent(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// FormatTable writes the merged series as a fixed-width table
func FormatTable(w io.Writer, merged []models.MergedYearRecord) error {
	if _, err := fmt.Fprintf(w, "%-11s %8s  %s\n", "Fiscal year", "% GDP", "President"); err != nil {
		return err
	}
	for _, m := range merged {
		value := "NaN"
		if m.DeficitPctGDP != nil {
			value = FormatPercent(*m.DeficitPctGDP)
		}
		if _, err := fmt.Fprintf(w, "%-11d %8s  %s\n", m.FiscalYear, value, m.President); err != nil {
			return err
		}
	}
	return nil
}
