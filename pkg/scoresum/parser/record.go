package parser

import (
	"errors"
	"fmt"

	"github.com/ukaji3/scoresum-go/pkg/scoresum/models"
	"github.com/xuri/excelize/v2"
)

// ErrNoActiveSheet indicates a workbook without a usable active sheet.
var ErrNoActiveSheet = errors.New("workbook has no active sheet")

// RecordParams holds the cell layout of a student workbook.
type RecordParams struct {
	// NameCell is the student name cell.
	NameCell string
	// StudentIDCells are tried in order; the first non-empty value wins.
	StudentIDCells []string
	// CColumn is the column holding the C1..C3 labels and values.
	CColumn string
	// DColumn is the column holding the D1..D6 labels and values.
	DColumn string
	// LabelSuffix follows the category code in every label, e.g. "D1总分".
	LabelSuffix string
}

// DefaultRecordParams returns the standard student workbook layout.
func DefaultRecordParams() RecordParams {
	return RecordParams{
		NameCell:       "E2",
		StudentIDCells: []string{"I2", "J2"},
		CColumn:        "L",
		DColumn:        "K",
		LabelSuffix:    "总分",
	}
}

// CLabels returns the C1..C3 label strings.
func (p RecordParams) CLabels() []string {
	return labels("C", 3, p.LabelSuffix)
}

// DLabels returns the D1..D6 label strings.
func (p RecordParams) DLabels() []string {
	return labels("D", 6, p.LabelSuffix)
}

func labels(prefix string, n int, suffix string) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%s%d%s", prefix, i+1, suffix)
	}
	return out
}

// ExtractRecord reads a student record from the active sheet of the workbook
// at path. Formula cells yield their cached results.
func ExtractRecord(path string, params RecordParams) (*models.StudentRecord, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheetName := f.GetSheetName(f.GetActiveSheetIndex())
	if sheetName == "" {
		return nil, ErrNoActiveSheet
	}
	return ReadRecord(f, sheetName, params)
}

// ReadRecord reads a student record from a sheet of an open workbook.
func ReadRecord(f *excelize.File, sheetName string, params RecordParams) (*models.StudentRecord, error) {
	raw := excelize.Options{RawCellValue: true}

	name, err := f.GetCellValue(sheetName, params.NameCell, raw)
	if err != nil {
		return nil, fmt.Errorf("name cell %s: %w", params.NameCell, err)
	}

	var studentID string
	for _, cell := range params.StudentIDCells {
		v, err := f.GetCellValue(sheetName, cell, raw)
		if err != nil {
			return nil, fmt.Errorf("student id cell %s: %w", cell, err)
		}
		if v != "" {
			studentID = v
			break
		}
	}

	rows, err := f.GetRows(sheetName, raw)
	if err != nil {
		return nil, err
	}

	record := &models.StudentRecord{
		Name:      name,
		StudentID: studentID,
	}

	c, err := scanColumn(rows, params.CColumn, params.CLabels())
	if err != nil {
		return nil, err
	}
	copy(record.C[:], c)

	d, err := scanColumn(rows, params.DColumn, params.DLabels())
	if err != nil {
		return nil, err
	}
	copy(record.D[:], d)

	return record, nil
}

func scanColumn(rows [][]string, column string, labels []string) ([]models.Subtotal, error) {
	col, err := excelize.ColumnNameToNumber(column)
	if err != nil {
		return nil, err
	}
	return ScanLabels(rows, col, labels)
}
