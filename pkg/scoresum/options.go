// Package scoresum collects per-student subtotals from many workbooks into
// one summary workbook.
package scoresum

import (
	"github.com/ukaji3/scoresum-go/pkg/scoresum/scoring"
	"go.uber.org/zap"
)

// Options configures a run.
type Options struct {
	// Root is the folder holding the summary workbook and the candidate folders.
	Root string
	// Layout describes file discovery and cell positions.
	Layout Layout
	// Weights are the S score weights.
	Weights scoring.Weights
	// DryRun processes everything but does not save the summary workbook.
	DryRun bool
	// Logger receives progress and per-folder diagnostics. Nil discards them.
	Logger *zap.Logger
}

// DefaultOptions returns options for a run in the current directory.
func DefaultOptions() Options {
	return Options{
		Root:    ".",
		Layout:  DefaultLayout(),
		Weights: scoring.DefaultWeights(),
	}
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

func (o Options) root() string {
	if o.Root == "" {
		return "."
	}
	return o.Root
}
