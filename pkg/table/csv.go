package table

import (
	"encoding/csv"
	"io"

	apperr "github.com/matzehuels/tabchart/pkg/errors"
)

// ReadCSV parses comma-separated data whose first record is the header.
func ReadCSV(r io.Reader, opts Options) (*Table, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeInvalidTable, err, "read CSV")
	}
	if len(records) == 0 {
		return nil, apperr.New(apperr.ErrCodeInvalidTable, "CSV input is empty")
	}
	return FromRecords(records[0], records[1:], opts)
}
