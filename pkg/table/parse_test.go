package table

import (
	"reflect"
	"testing"
	"time"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{"42", int64(42)},
		{" -7 ", int64(-7)},
		{"4.5", 4.5},
		{"1e3", 1000.0},
		{"", nil},
		{"   ", nil},
		{"TRUE", true},
		{"false", false},
		{"2024-01-15", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"2024-01-15 08:30:00", time.Date(2024, 1, 15, 8, 30, 0, 0, time.UTC)},
		{"Jan-2024", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"hello", "hello"},
		{"  padded  ", "padded"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseValue(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseValue(%q) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}

func TestInferStrings(t *testing.T) {
	tests := []struct {
		name     string
		cells    []string
		want     []any
		wantKind Kind
	}{
		{"ints", []string{"1", "2"}, []any{int64(1), int64(2)}, Numeric},
		{"ints and floats", []string{"1", "2.5", ""}, []any{1.0, 2.5, nil}, Numeric},
		{"bools", []string{"true", "false"}, []any{true, false}, Numeric},
		{
			"dates",
			[]string{"2024-01-01", "2024-01-02"},
			[]any{time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
			Temporal,
		},
		{"mixed stays text", []string{"1", "x", ""}, []any{"1", "x", nil}, Categorical},
		{"bool and int stays text", []string{"true", "1"}, []any{"true", "1"}, Categorical},
		{"all empty", []string{"", ""}, []any{nil, nil}, Categorical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, kind := InferStrings(tt.cells)
			if kind != tt.wantKind {
				t.Errorf("kind = %v, want %v", kind, tt.wantKind)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("values = %#v, want %#v", got, tt.want)
			}
		})
	}
}
