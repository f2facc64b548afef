// Package output serializes run reports.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ukaji3/scoresum-go/pkg/scoresum/models"
)

// ReportToJSON serializes a report to JSON.
func ReportToJSON(report *models.Report, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(report, "", "  ")
	}
	return json.Marshal(report)
}

// WriteSummaryLine writes the one-line human summary of a run.
func WriteSummaryLine(w io.Writer, report *models.Report) error {
	verb := "saved"
	if !report.Saved {
		verb = "not saved (dry run)"
	}
	_, err := fmt.Fprintf(w, "%s %s: processed %d/%d folders\n",
		report.SummaryFile, verb, report.Success, report.Total)
	return err
}
