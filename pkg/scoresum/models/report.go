package models

// Stage is a step of the per-folder pipeline.
type Stage string

const (
	StageDiscover  Stage = "discover"
	StageValidate  Stage = "validate"
	StageExtract   Stage = "extract"
	StageAggregate Stage = "aggregate"
	StageWrite     Stage = "write"
)

// FolderOutcome records what happened to one candidate folder.
type FolderOutcome struct {
	// Folder is the folder name relative to the root.
	Folder string `json:"folder"`
	// File is the workbook path used, empty when none was found.
	File string `json:"file,omitempty"`
	// Stage is the last stage reached. StageWrite means the folder produced a row.
	Stage Stage `json:"stage"`
	// Skipped is true when the folder produced no row.
	Skipped bool `json:"skipped"`
	// Error is the failure description when Skipped.
	Error string `json:"error,omitempty"`
	// Row is the summary row written for the folder (nil when skipped).
	Row *SummaryRow `json:"row,omitempty"`
}

// Report represents the outcome of one batch run.
type Report struct {
	// SummaryFile is the summary workbook path.
	SummaryFile string `json:"summary_file"`
	// Saved is false for dry runs.
	Saved bool `json:"saved"`
	// Success is the number of folders that produced a row.
	Success int `json:"success"`
	// Total is the number of candidate folders considered.
	Total int `json:"total"`
	// Folders lists outcomes in processing order.
	Folders []FolderOutcome `json:"folders"`
}

// Complete reports whether every candidate folder produced a row.
func (r *Report) Complete() bool {
	return r.Success == r.Total
}
