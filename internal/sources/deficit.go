package sources

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/epeers/deficits/internal/models"
	"github.com/epeers/deficits/internal/services"
)

// trimDeficitFile drops the title line and the trailing notes, leaving the
// header row followed by the data rows.
func trimDeficitFile(raw []byte) []byte {
	text := strings.ReplaceAll(string(raw), "\r\n", "\n")
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")

	if len(lines) <= 1 {
		return nil
	}
	lines = lines[1:]

	if len(lines) > DeficitFooterLines {
		lines = lines[:len(lines)-DeficitFooterLines]
	} else {
		lines = lines[:1]
	}
	return []byte(strings.Join(lines, "\n") + "\n")
}

// ParseDeficitCSV parses the deficit file into records with FiscalYear <= maxFiscalYear.
// The first column is the fiscal year; only DeficitValueColumn is kept.
// Rows that cannot be parsed are skipped with a warning.
func ParseDeficitCSV(ctx context.Context, raw []byte, maxFiscalYear int) ([]models.DeficitRecord, error) {
	body := trimDeficitFile(raw)
	if len(body) == 0 {
		return nil, fmt.Errorf("deficit file has no header row")
	}

	reader := csv.NewReader(bytes.NewReader(body))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	valueIdx := -1
	for i, col := range header {
		if strings.TrimSpace(col) == DeficitValueColumn {
			valueIdx = i
			break
		}
	}
	if valueIdx < 0 {
		return nil, fmt.Errorf("missing required column: %s", DeficitValueColumn)
	}

	var records []models.DeficitRecord
	rowNum := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		rowNum++
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				services.Warnf(ctx, models.WarnDeficitRowSkipped, "deficit row %d: %v", rowNum, err)
				continue
			}
			return nil, fmt.Errorf("row %d: failed to read CSV record: %w", rowNum, err)
		}

		yearStr := strings.TrimSpace(record[0])
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			services.Warnf(ctx, models.WarnDeficitRowSkipped, "deficit row %d: invalid fiscal year %q", rowNum, yearStr)
			continue
		}
		if year > maxFiscalYear {
			continue
		}

		rec := models.DeficitRecord{FiscalYear: year}
		valueStr := ""
		if valueIdx < len(record) {
			valueStr = strings.TrimSpace(record[valueIdx])
		}
		if valueStr == "" {
			services.Warnf(ctx, models.WarnDeficitValueMissing, "deficit row %d: FY%d has no %s", rowNum, year, DeficitValueColumn)
			records = append(records, rec)
			continue
		}

		value, err := strconv.ParseFloat(strings.ReplaceAll(valueStr, ",", ""), 64)
		if err != nil {
			services.Warnf(ctx, models.WarnDeficitRowSkipped, "deficit row %d: invalid %s %q", rowNum, DeficitValueColumn, valueStr)
			continue
		}
		rec.DeficitPctGDP = &value
		records = append(records, rec)
	}

	return records, nil
}
