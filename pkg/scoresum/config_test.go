package scoresum

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLayoutCoordinates(t *testing.T) {
	l := DefaultLayout()
	require.NoError(t, l.Validate())

	assert.Equal(t, "综测成绩汇总表", l.SummaryMarker)
	assert.Equal(t, []string{"env"}, l.ExcludedFolders)
	assert.Equal(t, "E2", l.Student.NameCell)
	assert.Equal(t, []string{"I2", "J2"}, l.Student.StudentIDCells)
	assert.Equal(t, "L", l.Student.CColumn)
	assert.Equal(t, "K", l.Student.DColumn)

	cols := l.columns()
	assert.Equal(t, 2, cols.FirstDataRow)
	assert.Equal(t, 2, cols.Name)
	assert.Equal(t, [3]int{5, 6, 7}, cols.C)
	assert.Equal(t, 8, cols.CTotal)
	assert.Equal(t, [6]int{9, 10, 11, 12, 13, 14}, cols.D)
	assert.Equal(t, 15, cols.DTotal)
	assert.Equal(t, 16, cols.S)
	assert.Equal(t, []int{5, 6, 7, 8, 9, 10, 11, 12, 13, 14}, cols.Clear)
}

func TestParseConfigOverridesOnlyGivenKeys(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
layout:
  excluded_folders: [env, .git]
  student:
    name_cell: F3
weights:
  d: 0.1
`))
	require.NoError(t, err)

	assert.Equal(t, []string{"env", ".git"}, cfg.Layout.ExcludedFolders)
	assert.Equal(t, "F3", cfg.Layout.Student.NameCell)
	assert.Equal(t, "K", cfg.Layout.Student.DColumn)
	assert.Equal(t, 0.1, cfg.Weights.D)
	assert.Equal(t, 0.85, cfg.Weights.B)
}

func TestParseConfigEmpty(t *testing.T) {
	cfg, err := ParseConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestParseConfigRejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown key", "layout:\n  nope: 1\n"},
		{"bad cell", "layout:\n  student:\n    name_cell: '2E'\n"},
		{"bad column", "layout:\n  student:\n    c_column: '12'\n"},
		{"short c columns", "layout:\n  summary:\n    c_columns: [5, 6]\n"},
		{"zero column", "layout:\n  summary:\n    s_column: 0\n"},
		{"empty marker", "layout:\n  summary_marker: ''\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scoresum.yaml")
	require.NoError(t, os.WriteFile(path, []byte("layout:\n  summary_marker: 汇总\n"), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "汇总", cfg.Layout.SummaryMarker)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
