package table

import (
	"cmp"
	"fmt"
	"strings"
	"time"
)

// Kind classifies the element type of a column or index.
type Kind int

const (
	// Unknown marks a column whose kind has not been classified yet.
	// [New] replaces it with the result of [Classify].
	Unknown Kind = iota
	// Numeric covers booleans, integers, floats and complex numbers.
	Numeric
	// Temporal covers time.Time values.
	Temporal
	// Categorical covers strings and everything else.
	Categorical
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case Numeric:
		return "numeric"
	case Temporal:
		return "temporal"
	case Categorical:
		return "categorical"
	default:
		return "unknown"
	}
}

// Classify returns the kind shared by all non-nil values.
// Values that are all numeric yield [Numeric], values that are all time.Time
// yield [Temporal]; mixed or other values, and inputs without any non-nil
// value, yield [Categorical].
func Classify(values []any) Kind {
	kind := Unknown
	for _, v := range values {
		if v == nil {
			continue
		}
		k := kindOf(v)
		if kind == Unknown {
			kind = k
			continue
		}
		if k != kind {
			return Categorical
		}
	}
	if kind == Unknown {
		return Categorical
	}
	return kind
}

func kindOf(v any) Kind {
	switch v.(type) {
	case bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64,
		complex64, complex128:
		return Numeric
	case time.Time:
		return Temporal
	default:
		return Categorical
	}
}

// numericParts returns v as a real and imaginary part.
func numericParts(v any) (re, im float64, ok bool) {
	switch n := v.(type) {
	case bool:
		if n {
			return 1, 0, true
		}
		return 0, 0, true
	case int:
		return float64(n), 0, true
	case int8:
		return float64(n), 0, true
	case int16:
		return float64(n), 0, true
	case int32:
		return float64(n), 0, true
	case int64:
		return float64(n), 0, true
	case uint:
		return float64(n), 0, true
	case uint8:
		return float64(n), 0, true
	case uint16:
		return float64(n), 0, true
	case uint32:
		return float64(n), 0, true
	case uint64:
		return float64(n), 0, true
	case uintptr:
		return float64(n), 0, true
	case float32:
		return float64(n), 0, true
	case float64:
		return n, 0, true
	case complex64:
		return float64(real(n)), float64(imag(n)), true
	case complex128:
		return real(n), imag(n), true
	}
	return 0, 0, false
}

// Compare orders two values by their natural ordering and returns -1, 0 or +1.
//
// Values are ranked by kind first: nil, then numbers, then times, then
// everything else. Within a kind, numbers compare numerically (false < true,
// complex numbers by real then imaginary part), times chronologically and
// other values lexically by their string or fmt form. The result is a total
// order, so it is safe for sorting mixed columns.
func Compare(a, b any) int {
	ra, rb := compareRank(a), compareRank(b)
	if ra != rb {
		return cmp.Compare(ra, rb)
	}

	switch ra {
	case rankNil:
		return 0
	case rankNumber:
		are, aim, _ := numericParts(a)
		bre, bim, _ := numericParts(b)
		if c := cmp.Compare(are, bre); c != 0 {
			return c
		}
		return cmp.Compare(aim, bim)
	case rankTime:
		return a.(time.Time).Compare(b.(time.Time))
	}
	return strings.Compare(textForm(a), textForm(b))
}

const (
	rankNil = iota
	rankNumber
	rankTime
	rankText
)

func compareRank(v any) int {
	if v == nil {
		return rankNil
	}
	if _, _, ok := numericParts(v); ok {
		return rankNumber
	}
	if _, ok := v.(time.Time); ok {
		return rankTime
	}
	return rankText
}

func textForm(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
