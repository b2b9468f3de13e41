package sources

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/epeers/deficits/internal/models"
	"github.com/epeers/deficits/internal/services"
)

// ParsePresidentsCSV parses the presidents file into terms, in file order.
// Required columns: President, Took office, Left office (headers are matched
// case-insensitively after trimming). Rows without a name or a parseable
// took-office date are skipped; an unparseable left-office date becomes absent.
func ParsePresidentsCSV(ctx context.Context, raw []byte) ([]models.PresidentTerm, error) {
	reader := csv.NewReader(bytes.NewReader(raw))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	colIdx := make(map[string]int)
	for i, col := range header {
		colIdx[strings.ToLower(strings.TrimSpace(col))] = i
	}
	for _, col := range []string{"president", "took office", "left office"} {
		if _, ok := colIdx[col]; !ok {
			return nil, fmt.Errorf("missing required column: %s", col)
		}
	}

	cell := func(record []string, col string) string {
		idx := colIdx[col]
		if idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	var terms []models.PresidentTerm
	rowNum := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		rowNum++
		if err != nil {
			services.Warnf(ctx, models.WarnPresidentRowSkipped, "presidents row %d: %v", rowNum, err)
			continue
		}

		name := cell(record, "president")
		if name == "" {
			services.Warnf(ctx, models.WarnPresidentRowSkipped, "presidents row %d: empty president name", rowNum)
			continue
		}

		took, err := models.ParseFlexibleDate(cell(record, "took office"))
		if err != nil {
			services.Warnf(ctx, models.WarnPresidentRowSkipped, "presidents row %d: %s: invalid took office: %v", rowNum, name, err)
			continue
		}

		t := models.PresidentTerm{Name: name, TookOffice: took}
		if leftStr := cell(record, "left office"); leftStr != "" {
			if left, err := models.ParseFlexibleDate(leftStr); err == nil {
				t.LeftOffice = &left
			} else {
				services.Warnf(ctx, models.WarnPresidentLeftUnknown, "presidents row %d: %s: left office %q is not a date", rowNum, name, leftStr)
			}
		}

		terms = append(terms, t)
	}

	return terms, nil
}

// ApplyLeftOfficeOverrides sets the left-office date of the latest term of
// each named president. Earlier terms of a president who served
// non-consecutive terms keep their own dates. The input slice is not modified.
func ApplyLeftOfficeOverrides(terms []models.PresidentTerm, overrides map[string]time.Time) []models.PresidentTerm {
	out := make([]models.PresidentTerm, len(terms))
	copy(out, terms)

	latest := make(map[string]int, len(overrides))
	for i, t := range out {
		if _, ok := overrides[t.Name]; !ok {
			continue
		}
		if j, seen := latest[t.Name]; !seen || !t.TookOffice.Before(out[j].TookOffice) {
			latest[t.Name] = i
		}
	}
	for name, i := range latest {
		left := overrides[name]
		out[i].LeftOffice = &left
	}
	return out
}
