package table

import (
	"os"
	"path/filepath"
	"strings"

	apperr "github.com/matzehuels/tabchart/pkg/errors"
)

// Supported input extensions.
const (
	ExtCSV  = ".csv"
	ExtXLSX = ".xlsx"
)

// ReadFile loads a table from a .csv or .xlsx file.
func ReadFile(path string, opts Options) (*Table, error) {
	if err := apperr.ValidateFileExtension(path, ExtCSV, ExtXLSX); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, apperr.New(apperr.ErrCodeFileNotFound, "file not found: %s", path)
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()

	if strings.ToLower(filepath.Ext(path)) == ExtXLSX {
		return ReadXLSX(f, opts)
	}
	return ReadCSV(f, opts)
}
