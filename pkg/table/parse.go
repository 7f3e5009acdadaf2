package table

import (
	"strconv"
	"strings"
	"time"
)

// dateLayouts are tried in order when parsing temporal cells.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"01/02/2006",
	"Jan-2006",
	"January 2006",
	"Jan 2, 2006",
	"2 Jan 2006",
}

// ParseValue converts a text cell into a typed value.
// Empty cells become nil; integers become int64, decimals float64,
// "true"/"false" bool and recognised dates time.Time. Anything else is
// returned as the trimmed string.
func ParseValue(s string) any {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	switch strings.ToLower(s) {
	case "true":
		return true
	case "false":
		return false
	}
	if t, ok := parseTime(s); ok {
		return t
	}
	return s
}

func parseTime(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

type family int

const (
	famNone family = iota
	famInt
	famFloat
	famBool
	famTime
	famString
)

func familyOf(v any) family {
	switch v.(type) {
	case nil:
		return famNone
	case int64:
		return famInt
	case float64:
		return famFloat
	case bool:
		return famBool
	case time.Time:
		return famTime
	default:
		return famString
	}
}

// InferStrings converts a column of text cells into typed values.
//
// The typed form is used only when every non-empty cell parses into the same
// family (integers and decimals mix into float64); otherwise every cell is
// kept as a string. Empty cells always become nil.
func InferStrings(cells []string) ([]any, Kind) {
	parsed := make([]any, len(cells))
	fam := famNone
	mixed := false
	for i, c := range cells {
		v := ParseValue(c)
		parsed[i] = v
		f := familyOf(v)
		switch {
		case f == famNone || mixed:
		case fam == famNone:
			fam = f
		case fam == f:
		case (fam == famInt && f == famFloat) || (fam == famFloat && f == famInt):
			fam = famFloat
		default:
			mixed = true
		}
	}

	if mixed || fam == famString || fam == famNone {
		out := make([]any, len(cells))
		for i, c := range cells {
			if s := strings.TrimSpace(c); s != "" {
				out[i] = s
			}
		}
		return out, Categorical
	}

	if fam == famFloat {
		for i, v := range parsed {
			if n, ok := v.(int64); ok {
				parsed[i] = float64(n)
			}
		}
	}
	if fam == famTime {
		return parsed, Temporal
	}
	return parsed, Numeric
}
