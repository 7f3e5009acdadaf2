package table

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	apperr "github.com/matzehuels/tabchart/pkg/errors"
)

const salesCSV = `day,visits,label
3,10,a
1,20,b
2,30,c
`

func TestReadCSV(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader(salesCSV), Options{})
	if err != nil {
		t.Fatalf("ReadCSV() error: %v", err)
	}

	idx := tbl.Index()
	if idx.Name != "day" || idx.Kind != Numeric {
		t.Errorf("index = %q (%v), want day (numeric)", idx.Name, idx.Kind)
	}
	if !reflect.DeepEqual(idx.Values, []any{int64(3), int64(1), int64(2)}) {
		t.Errorf("index values = %#v", idx.Values)
	}

	visits, _ := tbl.Column("visits")
	if visits.Kind != Numeric {
		t.Errorf("visits kind = %v, want numeric", visits.Kind)
	}
	label, _ := tbl.Column("label")
	if label.Kind != Categorical {
		t.Errorf("label kind = %v, want categorical", label.Kind)
	}
}

func TestReadCSVIndexColumn(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader(salesCSV), Options{IndexColumn: "label"})
	if err != nil {
		t.Fatalf("ReadCSV() error: %v", err)
	}
	if tbl.Index().Kind != Categorical {
		t.Errorf("index kind = %v, want categorical", tbl.Index().Kind)
	}
	if got := tbl.ColumnNames(); !reflect.DeepEqual(got, []string{"day", "visits"}) {
		t.Errorf("ColumnNames() = %v", got)
	}
}

func TestReadCSVErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		opts  Options
	}{
		{"empty", "", Options{}},
		{"ragged", "a,b\n1,2,3\n", Options{}},
		{"unknown index", salesCSV, Options{IndexColumn: "nope"}},
		{"duplicate header", "k,a,a\n1,2,3\n", Options{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(tt.input), tt.opts)
			if !apperr.Is(err, apperr.ErrCodeInvalidTable) {
				t.Errorf("ReadCSV() error = %v, want %v", err, apperr.ErrCodeInvalidTable)
			}
		})
	}
}

func TestFromRecordsPadsAndSkipsBlankRows(t *testing.T) {
	tbl, err := FromRecords(
		[]string{"k", "a", "b"},
		[][]string{{"x", "1"}, {"", "", ""}, {"y", "2", "3"}},
		Options{},
	)
	if err != nil {
		t.Fatalf("FromRecords() error: %v", err)
	}
	if tbl.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", tbl.Len())
	}
	b, _ := tbl.Column("b")
	if !reflect.DeepEqual(b.Values, []any{nil, int64(3)}) {
		t.Errorf("b values = %#v", b.Values)
	}
}

func TestReadXLSX(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	rows := [][]any{
		{"month", "sales", "region"},
		{"Feb", 20, "north"},
		{"Jan", 10, "south"},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatalf("SetSheetRow: %v", err)
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer: %v", err)
	}

	tbl, err := ReadXLSX(bytes.NewReader(buf.Bytes()), Options{})
	if err != nil {
		t.Fatalf("ReadXLSX() error: %v", err)
	}
	if tbl.Index().Name != "month" || tbl.Index().Kind != Categorical {
		t.Errorf("index = %+v", tbl.Index())
	}
	sales, _ := tbl.Column("sales")
	if sales.Kind != Numeric || !reflect.DeepEqual(sales.Values, []any{int64(20), int64(10)}) {
		t.Errorf("sales = %+v", sales)
	}
}

func TestReadXLSXDates(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	days := []time.Time{
		time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	dateStyle, err := f.NewStyle(&excelize.Style{NumFmt: 14})
	if err != nil {
		t.Fatalf("NewStyle: %v", err)
	}
	if err := f.SetSheetRow("Sheet1", "A1", &[]any{"day", "sales"}); err != nil {
		t.Fatalf("SetSheetRow: %v", err)
	}
	for i, day := range days {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetCellValue("Sheet1", cell, day); err != nil {
			t.Fatalf("SetCellValue: %v", err)
		}
		if err := f.SetCellStyle("Sheet1", cell, cell, dateStyle); err != nil {
			t.Fatalf("SetCellStyle: %v", err)
		}
		next, _ := excelize.CoordinatesToCellName(2, i+2)
		if err := f.SetCellValue("Sheet1", next, 10*(i+1)); err != nil {
			t.Fatalf("SetCellValue: %v", err)
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer: %v", err)
	}

	tbl, err := ReadXLSX(bytes.NewReader(buf.Bytes()), Options{})
	if err != nil {
		t.Fatalf("ReadXLSX() error: %v", err)
	}
	index := tbl.Index()
	if index.Kind != Temporal {
		t.Fatalf("index kind = %v, want %v (values %v)", index.Kind, Temporal, index.Values)
	}
	for i, want := range days {
		if got, ok := index.Values[i].(time.Time); !ok || !got.Equal(want) {
			t.Errorf("index[%d] = %v, want %v", i, index.Values[i], want)
		}
	}
	sales, _ := tbl.Column("sales")
	if sales.Kind != Numeric {
		t.Errorf("sales kind = %v, want %v", sales.Kind, Numeric)
	}
}

func TestIsDateFormatCode(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"yyyy-mm-dd", true},
		{"hh:mm", true},
		{"0.00", false},
		{"#,##0", false},
		{"[Red]0.00", false},
		{`0 "days"`, false},
		{"General", false},
	}
	for _, tt := range tests {
		if got := isDateFormatCode(tt.code); got != tt.want {
			t.Errorf("isDateFormatCode(%q) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sales.csv")
	if err := os.WriteFile(path, []byte(salesCSV), 0o644); err != nil {
		t.Fatal(err)
	}

	tbl, err := ReadFile(path, Options{})
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if tbl.Len() != 3 {
		t.Errorf("Len() = %d, want 3", tbl.Len())
	}

	if _, err := ReadFile(filepath.Join(dir, "missing.csv"), Options{}); !apperr.Is(err, apperr.ErrCodeFileNotFound) {
		t.Errorf("missing file error = %v, want %v", err, apperr.ErrCodeFileNotFound)
	}
	if _, err := ReadFile(filepath.Join(dir, "sales.txt"), Options{}); !apperr.Is(err, apperr.ErrCodeInvalidPath) {
		t.Errorf("bad extension error = %v, want %v", err, apperr.ErrCodeInvalidPath)
	}
}
