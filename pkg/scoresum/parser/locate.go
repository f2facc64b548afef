package parser

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// LocateParams holds parameters for workbook discovery.
type LocateParams struct {
	// Extension is the spreadsheet file extension, matched case-insensitively.
	Extension string
	// LockPrefix marks editor lock files, which are never picked.
	LockPrefix string
}

// DefaultLocateParams returns default discovery parameters.
func DefaultLocateParams() LocateParams {
	return LocateParams{
		Extension:  ".xlsx",
		LockPrefix: "~$",
	}
}

// IsWorkbookName reports whether a file name is a spreadsheet that is not a lock file.
func (p LocateParams) IsWorkbookName(name string) bool {
	if p.LockPrefix != "" && strings.HasPrefix(name, p.LockPrefix) {
		return false
	}
	ext := filepath.Ext(name)
	return ext != "" && strings.EqualFold(ext, p.Extension)
}

// FindWorkbook walks dir depth-first in lexical order and returns the path of
// the first spreadsheet file found. It returns "" when dir holds none.
// A symlinked dir is followed; the returned path stays under dir.
// Unreadable subdirectories are skipped.
func FindWorkbook(dir string, params LocateParams) (string, error) {
	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return "", err
	}

	var found string
	err = filepath.WalkDir(resolved, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == resolved {
				return err
			}
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if params.IsWorkbookName(d.Name()) {
			rel, err := filepath.Rel(resolved, path)
			if err != nil {
				return err
			}
			found = filepath.Join(dir, rel)
			return fs.SkipAll
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return found, nil
}

// ListCandidates returns the names of the directories directly under root,
// sorted, without the excluded names.
func ListCandidates(root string, excluded []string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if !isDir(root, e) || slices.Contains(excluded, e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

// FindSummaryFiles returns the spreadsheet files directly under root whose
// name contains marker, sorted by name.
func FindSummaryFiles(root, marker string, params LocateParams) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, e := range entries {
		if isDir(root, e) {
			continue
		}
		if strings.Contains(e.Name(), marker) && params.IsWorkbookName(e.Name()) {
			paths = append(paths, filepath.Join(root, e.Name()))
		}
	}
	return paths, nil
}

// isDir follows symlinks so that linked folders count as candidates.
func isDir(root string, e fs.DirEntry) bool {
	if e.IsDir() {
		return true
	}
	if e.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(root, e.Name()))
	return err == nil && info.IsDir()
}
