package scoresum

import (
	"errors"
	"fmt"

	"github.com/ukaji3/scoresum-go/pkg/scoresum/models"
)

// ErrSummaryNotFound indicates no summary workbook in the root folder.
var ErrSummaryNotFound = errors.New("summary workbook not found")

// ErrAmbiguousSummary indicates more than one summary workbook in the root folder.
var ErrAmbiguousSummary = errors.New("more than one summary workbook")

// ErrInvalidFormat indicates a file that is not a valid xlsx container.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrNoWorkbook indicates a candidate folder without a spreadsheet.
var ErrNoWorkbook = errors.New("no spreadsheet found")

// ErrIncomplete indicates a run in which some folders were skipped.
var ErrIncomplete = errors.New("not every folder was processed")

// ExtractionError represents a per-folder failure. It never aborts a run.
type ExtractionError struct {
	Path  string
	Stage models.Stage
	Err   error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("%s failed for %s: %v", e.Stage, e.Path, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(path string, stage models.Stage, err error) *ExtractionError {
	return &ExtractionError{
		Path:  path,
		Stage: stage,
		Err:   err,
	}
}
