package parser

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
)

// contentTypesPart is present in every OOXML package.
const contentTypesPart = "[Content_Types].xml"

// ErrNotOOXML indicates a readable zip archive that is not an OOXML package.
var ErrNotOOXML = errors.New("archive has no " + contentTypesPart)

// CheckArchive verifies that path is a readable zip archive whose entries all
// decompress with matching CRC-32 checksums and that it is an OOXML package.
func CheckArchive(path string) error {
	r, err := zip.OpenReader(path)
	if err != nil {
		return err
	}
	defer r.Close()

	hasContentTypes := false
	for _, f := range r.File {
		if f.Name == contentTypesPart {
			hasContentTypes = true
		}
		if err := drainZipFile(f); err != nil {
			return fmt.Errorf("entry %s: %w", f.Name, err)
		}
	}
	if !hasContentTypes {
		return ErrNotOOXML
	}
	return nil
}

// drainZipFile reads an entry to EOF; archive/zip checks the CRC at EOF.
func drainZipFile(f *zip.File) error {
	if f.FileInfo().IsDir() {
		return nil
	}
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()
	_, err = io.Copy(io.Discard, rc)
	return err
}
