package table

import (
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	apperr "github.com/matzehuels/tabchart/pkg/errors"
)

// ReadXLSX parses one worksheet of an Excel workbook. The first non-empty
// row of the sheet is the header.
//
// Cells carrying a date or time number format are read from their serial
// value rather than their display text, so they type as [Temporal].
func ReadXLSX(r io.Reader, opts Options) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeInvalidTable, err, "open workbook")
	}
	defer f.Close()

	sheet := opts.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, apperr.New(apperr.ErrCodeInvalidTable, "workbook has no sheets")
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeInvalidTable, err, "read sheet %q", sheet)
	}

	dates := dateCells{f: f, sheet: sheet, styles: map[int]bool{}}
	for r := range rows {
		for c := range rows[r] {
			if v, ok := dates.value(c+1, r+1); ok {
				rows[r][c] = v
			}
		}
	}

	for len(rows) > 0 && blank(rows[0]) {
		rows = rows[1:]
	}
	if len(rows) == 0 {
		return nil, apperr.New(apperr.ErrCodeInvalidTable, "sheet %q is empty", sheet)
	}
	return FromRecords(rows[0], rows[1:], opts)
}

// dateCells rewrites date-formatted cells as RFC 3339 text.
type dateCells struct {
	f      *excelize.File
	sheet  string
	styles map[int]bool
}

func (d dateCells) value(col, row int) (string, bool) {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return "", false
	}
	if typ, err := d.f.GetCellType(d.sheet, cell); err != nil ||
		(typ != excelize.CellTypeNumber && typ != excelize.CellTypeUnset) {
		return "", false
	}
	id, err := d.f.GetCellStyle(d.sheet, cell)
	if err != nil || !d.isDateStyle(id) {
		return "", false
	}
	raw, err := d.f.GetCellValue(d.sheet, cell, excelize.Options{RawCellValue: true})
	if err != nil {
		return "", false
	}
	serial, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return "", false
	}
	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return "", false
	}
	return t.UTC().Format(time.RFC3339), true
}

func (d dateCells) isDateStyle(id int) bool {
	if id == 0 {
		return false
	}
	if known, ok := d.styles[id]; ok {
		return known
	}
	isDate := false
	if style, err := d.f.GetStyle(id); err == nil && style != nil {
		isDate = isDateNumFmt(style.NumFmt)
		if style.CustomNumFmt != nil {
			isDate = isDateFormatCode(*style.CustomNumFmt)
		}
	}
	d.styles[id] = isDate
	return isDate
}

// isDateNumFmt reports whether a built-in number format id renders a date
// or time.
func isDateNumFmt(id int) bool {
	switch {
	case id >= 14 && id <= 22,
		id >= 27 && id <= 36,
		id >= 45 && id <= 47,
		id >= 50 && id <= 58:
		return true
	}
	return false
}

// isDateFormatCode reports whether a custom format code has date or time
// tokens outside quoted literals and bracketed sections.
func isDateFormatCode(code string) bool {
	var quoted, bracket, escaped bool
	for _, r := range strings.ToLower(code) {
		switch {
		case escaped:
			escaped = false
		case r == '\\':
			escaped = true
		case r == '"':
			quoted = !quoted
		case quoted:
		case r == '[':
			bracket = true
		case r == ']':
			bracket = false
		case bracket:
		case strings.ContainsRune("ymdhs", r):
			return true
		}
	}
	return false
}
