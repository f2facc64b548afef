package scoresum

import (
	"fmt"
	"path/filepath"

	"github.com/ukaji3/scoresum-go/pkg/scoresum/models"
	"github.com/ukaji3/scoresum-go/pkg/scoresum/parser"
	"github.com/ukaji3/scoresum-go/pkg/scoresum/scoring"
	"github.com/ukaji3/scoresum-go/pkg/scoresum/summary"
	"go.uber.org/zap"
)

// Run processes every candidate folder under opts.Root and rewrites the
// summary workbook in place. Failures of individual folders are recorded in
// the report and never abort the run; only summary discovery, loading and
// saving errors are returned.
func Run(opts Options) (*models.Report, error) {
	log := opts.logger()
	root := opts.root()
	layout := opts.Layout

	if err := layout.Validate(); err != nil {
		return nil, err
	}

	summaryPath, err := FindSummary(root, layout)
	if err != nil {
		return nil, err
	}
	if err := parser.CheckArchive(summaryPath); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", summaryPath, ErrInvalidFormat, err)
	}

	cols := layout.columns()
	sheet, err := summary.Open(summaryPath, cols)
	if err != nil {
		return nil, fmt.Errorf("open summary %s: %w", summaryPath, err)
	}
	defer sheet.Close()

	folders, err := parser.ListCandidates(root, layout.ExcludedFolders)
	if err != nil {
		return nil, fmt.Errorf("list folders: %w", err)
	}

	report := &models.Report{
		SummaryFile: summaryPath,
		Total:       len(folders),
	}

	var entries []summary.Entry
	var written []int
	for _, folder := range folders {
		outcome, entry := processFolder(root, folder, opts, log)
		if entry != nil {
			written = append(written, len(report.Folders))
			entries = append(entries, *entry)
		}
		report.Folders = append(report.Folders, outcome)
	}

	rows := summary.BuildRows(entries, cols.FirstDataRow)
	for i, idx := range written {
		row := rows[i]
		report.Folders[idx].Row = &row
	}
	report.Success = len(rows)

	if err := sheet.Clear(); err != nil {
		return nil, fmt.Errorf("clear summary: %w", err)
	}
	if err := sheet.Apply(rows); err != nil {
		return nil, fmt.Errorf("write summary: %w", err)
	}

	if opts.DryRun {
		log.Info("dry run, summary not saved", zap.String("summary", summaryPath))
		return report, nil
	}
	if err := sheet.Save(); err != nil {
		return nil, fmt.Errorf("save summary %s: %w", summaryPath, err)
	}
	report.Saved = true

	log.Info("summary saved",
		zap.String("summary", summaryPath),
		zap.Int("success", report.Success),
		zap.Int("total", report.Total),
	)
	return report, nil
}

// FindSummary returns the single summary workbook directly under root.
func FindSummary(root string, layout Layout) (string, error) {
	paths, err := parser.FindSummaryFiles(root, layout.SummaryMarker, layout.locateParams())
	if err != nil {
		return "", err
	}
	switch len(paths) {
	case 0:
		return "", fmt.Errorf("%w: no %s file containing %q in %s",
			ErrSummaryNotFound, layout.Extension, layout.SummaryMarker, root)
	case 1:
		return paths[0], nil
	default:
		return "", fmt.Errorf("%w: %v", ErrAmbiguousSummary, paths)
	}
}

// processFolder runs discover, validate, extract and aggregate for one folder.
// The entry is nil when the folder is skipped.
func processFolder(root, folder string, opts Options, log *zap.Logger) (models.FolderOutcome, *summary.Entry) {
	outcome := models.FolderOutcome{Folder: folder, Stage: models.StageDiscover}
	dir := filepath.Join(root, folder)

	skip := func(err error) (models.FolderOutcome, *summary.Entry) {
		outcome.Skipped = true
		outcome.Error = err.Error()
		log.Warn("skipping folder",
			zap.String("folder", folder),
			zap.String("stage", string(outcome.Stage)),
			zap.Error(err),
		)
		return outcome, nil
	}

	path, err := parser.FindWorkbook(dir, opts.Layout.locateParams())
	if err != nil {
		return skip(NewExtractionError(dir, models.StageDiscover, err))
	}
	if path == "" {
		return skip(NewExtractionError(dir, models.StageDiscover, ErrNoWorkbook))
	}
	outcome.File = path
	log.Info("processing folder", zap.String("folder", folder), zap.String("file", path))

	outcome.Stage = models.StageValidate
	if err := parser.CheckArchive(path); err != nil {
		return skip(NewExtractionError(path, models.StageValidate, fmt.Errorf("%w: %v", ErrInvalidFormat, err)))
	}

	outcome.Stage = models.StageExtract
	rec, err := parser.ExtractRecord(path, opts.Layout.recordParams())
	if err != nil {
		return skip(NewExtractionError(path, models.StageExtract, err))
	}

	outcome.Stage = models.StageAggregate
	scores := scoring.Compute(rec, opts.Weights)
	log.Debug("aggregated",
		zap.String("folder", folder),
		zap.String("name", rec.Name),
		zap.String("student_id", rec.StudentID),
		zap.Float64("c", scores.C),
		zap.Float64("d", scores.D),
		zap.Float64("s", scores.S),
	)

	outcome.Stage = models.StageWrite
	return outcome, &summary.Entry{Record: rec, Scores: scores}
}
