// Package summary reads and rewrites the master summary sheet.
package summary

import (
	"errors"
	"fmt"

	"github.com/ukaji3/scoresum-go/pkg/scoresum/models"
	"github.com/xuri/excelize/v2"
)

// ErrNoActiveSheet indicates a summary workbook without a usable active sheet.
var ErrNoActiveSheet = errors.New("summary workbook has no active sheet")

// Columns holds the 1-based column layout of the summary sheet.
type Columns struct {
	// FirstDataRow is the first row below the header.
	FirstDataRow int
	Name         int
	// StudentID is not written when 0.
	StudentID int
	C         [3]int
	CTotal    int
	D         [6]int
	DTotal    int
	S         int
	// Clear lists the columns emptied in every existing data row before writing.
	Clear []int
}

// DefaultColumns returns the standard summary layout.
func DefaultColumns() Columns {
	return Columns{
		FirstDataRow: 2,
		Name:         2,
		C:            [3]int{5, 6, 7},
		CTotal:       8,
		D:            [6]int{9, 10, 11, 12, 13, 14},
		DTotal:       15,
		S:            16,
		Clear:        []int{5, 6, 7, 8, 9, 10, 11, 12, 13, 14},
	}
}

// Entry is one successfully processed folder.
type Entry struct {
	Record *models.StudentRecord
	Scores models.Scores
}

// BuildRows assigns consecutive rows, starting at first, to entries in order.
func BuildRows(entries []Entry, first int) []models.SummaryRow {
	rows := make([]models.SummaryRow, len(entries))
	for i, e := range entries {
		row := models.SummaryRow{
			Row:       first + i,
			Name:      e.Record.Name,
			StudentID: e.Record.StudentID,
			CTotal:    e.Scores.C,
			DTotal:    e.Scores.D,
			S:         e.Scores.S,
		}
		for j, c := range e.Record.C {
			row.C[j] = c.OrZero()
		}
		for j, d := range e.Record.D {
			row.D[j] = d.OrZero()
		}
		rows[i] = row
	}
	return rows
}

// Sheet is the active sheet of an open summary workbook.
type Sheet struct {
	file *excelize.File
	name string
	cols Columns
}

// Open opens the summary workbook at path.
func Open(path string, cols Columns) (*Sheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}

	name := f.GetSheetName(f.GetActiveSheetIndex())
	if name == "" {
		f.Close()
		return nil, ErrNoActiveSheet
	}

	return &Sheet{file: f, name: name, cols: cols}, nil
}

// LastRow returns the last row holding any value, or 0 for an empty sheet.
func (s *Sheet) LastRow() (int, error) {
	rows, err := s.file.GetRows(s.name)
	if err != nil {
		return 0, err
	}
	return len(rows), nil
}

// Clear empties the clear columns of every existing data row.
func (s *Sheet) Clear() error {
	last, err := s.LastRow()
	if err != nil {
		return err
	}

	for row := s.cols.FirstDataRow; row <= last; row++ {
		for _, col := range s.cols.Clear {
			if err := s.set(col, row, nil); err != nil {
				return err
			}
		}
	}
	return nil
}

// Apply writes rows at their row indices.
func (s *Sheet) Apply(rows []models.SummaryRow) error {
	for _, r := range rows {
		if err := s.writeRow(r); err != nil {
			return fmt.Errorf("row %d: %w", r.Row, err)
		}
	}
	return nil
}

type cellValue struct {
	col   int
	value interface{}
}

func (s *Sheet) writeRow(r models.SummaryRow) error {
	cells := []cellValue{{s.cols.Name, optional(r.Name)}}
	if s.cols.StudentID > 0 {
		cells = append(cells, cellValue{s.cols.StudentID, optional(r.StudentID)})
	}
	for i, col := range s.cols.C {
		cells = append(cells, cellValue{col, r.C[i]})
	}
	cells = append(cells, cellValue{s.cols.CTotal, r.CTotal})
	for i, col := range s.cols.D {
		cells = append(cells, cellValue{col, r.D[i]})
	}
	cells = append(cells,
		cellValue{s.cols.DTotal, r.DTotal},
		cellValue{s.cols.S, r.S},
	)

	for _, c := range cells {
		if err := s.set(c.col, r.Row, c.value); err != nil {
			return err
		}
	}
	return nil
}

func (s *Sheet) set(col, row int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return s.file.SetCellValue(s.name, cell, value)
}

// Save writes the workbook back to the path it was opened from.
func (s *Sheet) Save() error {
	return s.file.Save()
}

// Close releases the workbook.
func (s *Sheet) Close() error {
	return s.file.Close()
}

// optional maps empty identity fields to an empty cell.
func optional(v string) interface{} {
	if v == "" {
		return nil
	}
	return v
}
