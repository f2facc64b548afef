package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ukaji3/scoresum-go/pkg/scoresum/models"
	"github.com/xuri/excelize/v2"
)

// ErrNotNumeric indicates a non-numeric value below a subtotal label.
var ErrNotNumeric = errors.New("value is not numeric")

// ScanLabels scans column col (1-based) of rows top to bottom. Whenever a cell
// equals labels[i], the cell directly below it is read as the i-th subtotal.
// Later matches overwrite earlier ones. Labels that never appear, or whose
// value cell is empty or beyond the last row, are Missing.
func ScanLabels(rows [][]string, col int, labels []string) ([]models.Subtotal, error) {
	result := make([]models.Subtotal, len(labels))
	if col < 1 {
		return nil, fmt.Errorf("invalid column %d", col)
	}

	for rowIdx, row := range rows {
		value := cellAt(row, col)
		if value == "" {
			continue
		}
		for i, label := range labels {
			if value != label {
				continue
			}
			var below string
			if rowIdx+1 < len(rows) {
				below = cellAt(rows[rowIdx+1], col)
			}
			subtotal, err := parseSubtotal(below)
			if err != nil {
				cellName, _ := excelize.CoordinatesToCellName(col, rowIdx+2)
				return nil, fmt.Errorf("%s value at %s: %w", label, cellName, err)
			}
			result[i] = subtotal
		}
	}

	return result, nil
}

// cellAt returns the value at 1-based column col, or "" past the end of row.
func cellAt(row []string, col int) string {
	if col > len(row) {
		return ""
	}
	return row[col-1]
}

// parseSubtotal parses a raw cell value. Empty values are Missing.
func parseSubtotal(s string) (models.Subtotal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return models.Missing(), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return models.Subtotal{}, fmt.Errorf("%w: %q", ErrNotNumeric, s)
	}
	return models.Found(f), nil
}
