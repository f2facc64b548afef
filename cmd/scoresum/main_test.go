package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/scoresum-go/pkg/scoresum"
	"github.com/ukaji3/scoresum-go/pkg/scoresum/models"
	"github.com/xuri/excelize/v2"
)

func resetFlags() {
	configPath = ""
	dryRun = false
	jsonReport = false
	pretty = false
	verbose = false
}

func fixture(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	summary := excelize.NewFile()
	require.NoError(t, summary.SetCellValue("Sheet1", "B1", "姓名"))
	require.NoError(t, summary.SaveAs(filepath.Join(root, "综测成绩汇总表.xlsx")))
	require.NoError(t, summary.Close())

	require.NoError(t, os.Mkdir(filepath.Join(root, "stu"), 0755))
	student := excelize.NewFile()
	require.NoError(t, student.SetCellValue("Sheet1", "E2", "张三"))
	require.NoError(t, student.SetCellValue("Sheet1", "L1", "C1总分"))
	require.NoError(t, student.SetCellValue("Sheet1", "L2", 4))
	require.NoError(t, student.SaveAs(filepath.Join(root, "stu", "s.xlsx")))
	require.NoError(t, student.Close())

	return root
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()
	t.Cleanup(resetFlags)

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRunPrintsSummaryLine(t *testing.T) {
	root := fixture(t)

	out, err := execute(t, root)
	require.NoError(t, err)
	assert.Contains(t, out, "processed 1/1 folders")
}

func TestRunJSONReport(t *testing.T) {
	root := fixture(t)

	out, err := execute(t, root, "--json", "--dry-run")
	require.NoError(t, err)

	var report models.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.False(t, report.Saved)
	assert.Equal(t, 1, report.Success)
	require.Len(t, report.Folders, 1)
	assert.Equal(t, "张三", report.Folders[0].Row.Name)
	assert.Equal(t, 4.0, report.Folders[0].Row.CTotal)
}

func TestRunIncomplete(t *testing.T) {
	root := fixture(t)
	require.NoError(t, os.Mkdir(filepath.Join(root, "empty"), 0755))

	out, err := execute(t, root)
	assert.ErrorIs(t, err, scoresum.ErrIncomplete)
	assert.Contains(t, out, "processed 1/2 folders")
}

func TestRunWithConfig(t *testing.T) {
	root := fixture(t)
	cfg := filepath.Join(t.TempDir(), "layout.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("layout:\n  excluded_folders: [stu]\n"), 0644))

	out, err := execute(t, root, "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "processed 0/0 folders")
}

func TestRunMissingSummary(t *testing.T) {
	_, err := execute(t, t.TempDir())
	assert.ErrorIs(t, err, scoresum.ErrSummaryNotFound)
}

func TestRunTooManyArgs(t *testing.T) {
	_, err := execute(t, "a", "b")
	assert.Error(t, err)
}
