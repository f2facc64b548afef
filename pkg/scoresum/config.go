package scoresum

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ukaji3/scoresum-go/pkg/scoresum/parser"
	"github.com/ukaji3/scoresum-go/pkg/scoresum/scoring"
	"github.com/ukaji3/scoresum-go/pkg/scoresum/summary"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

// Layout describes where files and cells are found.
type Layout struct {
	// SummaryMarker is a substring of the summary workbook file name.
	SummaryMarker string `yaml:"summary_marker"`
	// ExcludedFolders are never treated as candidates.
	ExcludedFolders []string `yaml:"excluded_folders"`
	// Extension is the spreadsheet file extension.
	Extension string `yaml:"extension"`
	// LockPrefix marks editor lock files.
	LockPrefix string        `yaml:"lock_prefix"`
	Student    StudentLayout `yaml:"student"`
	Summary    SummaryLayout `yaml:"summary"`
}

// StudentLayout holds cell positions in a student workbook.
type StudentLayout struct {
	NameCell       string   `yaml:"name_cell"`
	StudentIDCells []string `yaml:"student_id_cells"`
	CColumn        string   `yaml:"c_column"`
	DColumn        string   `yaml:"d_column"`
	LabelSuffix    string   `yaml:"label_suffix"`
}

// SummaryLayout holds 1-based column positions in the summary sheet.
type SummaryLayout struct {
	FirstDataRow    int   `yaml:"first_data_row"`
	NameColumn      int   `yaml:"name_column"`
	StudentIDColumn int   `yaml:"student_id_column"`
	CColumns        []int `yaml:"c_columns"`
	CTotalColumn    int   `yaml:"c_total_column"`
	DColumns        []int `yaml:"d_columns"`
	DTotalColumn    int   `yaml:"d_total_column"`
	SColumn         int   `yaml:"s_column"`
	ClearColumns    []int `yaml:"clear_columns"`
}

// Config is the content of a configuration file.
type Config struct {
	Layout  Layout          `yaml:"layout"`
	Weights scoring.Weights `yaml:"weights"`
}

// DefaultLayout returns the standard layout.
func DefaultLayout() Layout {
	locate := parser.DefaultLocateParams()
	record := parser.DefaultRecordParams()
	cols := summary.DefaultColumns()

	return Layout{
		SummaryMarker:   "综测成绩汇总表",
		ExcludedFolders: []string{"env"},
		Extension:       locate.Extension,
		LockPrefix:      locate.LockPrefix,
		Student: StudentLayout{
			NameCell:       record.NameCell,
			StudentIDCells: record.StudentIDCells,
			CColumn:        record.CColumn,
			DColumn:        record.DColumn,
			LabelSuffix:    record.LabelSuffix,
		},
		Summary: SummaryLayout{
			FirstDataRow:    cols.FirstDataRow,
			NameColumn:      cols.Name,
			StudentIDColumn: cols.StudentID,
			CColumns:        cols.C[:],
			CTotalColumn:    cols.CTotal,
			DColumns:        cols.D[:],
			DTotalColumn:    cols.DTotal,
			SColumn:         cols.S,
			ClearColumns:    cols.Clear,
		},
	}
}

// DefaultConfig returns the default layout and weights.
func DefaultConfig() Config {
	return Config{
		Layout:  DefaultLayout(),
		Weights: scoring.DefaultWeights(),
	}
}

// LoadConfig reads a YAML configuration file. Keys absent from the file keep
// their default values; unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	return ParseConfig(data)
}

// ParseConfig parses YAML configuration data over the defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Layout.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that every cell reference and column in the layout is usable.
func (l Layout) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...interface{}) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(l.SummaryMarker != "", "summary_marker is empty")
	check(l.Extension != "", "extension is empty")

	cells := append([]string{l.Student.NameCell}, l.Student.StudentIDCells...)
	for _, cell := range cells {
		_, _, err := excelize.CellNameToCoordinates(cell)
		check(err == nil, "invalid cell %q", cell)
	}
	for _, col := range []string{l.Student.CColumn, l.Student.DColumn} {
		_, err := excelize.ColumnNameToNumber(col)
		check(err == nil, "invalid column %q", col)
	}

	s := l.Summary
	check(s.FirstDataRow >= 1, "first_data_row must be at least 1")
	check(len(s.CColumns) == 3, "c_columns needs 3 columns, got %d", len(s.CColumns))
	check(len(s.DColumns) == 6, "d_columns needs 6 columns, got %d", len(s.DColumns))
	check(s.StudentIDColumn >= 0, "student_id_column must not be negative")

	columns := []int{s.NameColumn, s.CTotalColumn, s.DTotalColumn, s.SColumn}
	columns = append(columns, s.CColumns...)
	columns = append(columns, s.DColumns...)
	columns = append(columns, s.ClearColumns...)
	for _, col := range columns {
		check(col >= 1 && col <= excelize.MaxColumns, "column %d out of range", col)
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid layout: %w", errors.Join(errs...))
	}
	return nil
}

func (l Layout) locateParams() parser.LocateParams {
	return parser.LocateParams{
		Extension:  l.Extension,
		LockPrefix: l.LockPrefix,
	}
}

func (l Layout) recordParams() parser.RecordParams {
	return parser.RecordParams{
		NameCell:       l.Student.NameCell,
		StudentIDCells: l.Student.StudentIDCells,
		CColumn:        l.Student.CColumn,
		DColumn:        l.Student.DColumn,
		LabelSuffix:    l.Student.LabelSuffix,
	}
}

// columns assumes a validated layout.
func (l Layout) columns() summary.Columns {
	s := l.Summary
	cols := summary.Columns{
		FirstDataRow: s.FirstDataRow,
		Name:         s.NameColumn,
		StudentID:    s.StudentIDColumn,
		CTotal:       s.CTotalColumn,
		DTotal:       s.DTotalColumn,
		S:            s.SColumn,
		Clear:        s.ClearColumns,
	}
	copy(cols.C[:], s.CColumns)
	copy(cols.D[:], s.DColumns)
	return cols
}
