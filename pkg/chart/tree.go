package chart

import (
	"encoding/json"
	"math"
	"time"
)

// Section is one mapping of the option tree.
type Section = map[string]any

// Tree is the complete Highcharts option tree. Field order is the key order
// of the encoded document.
type Tree struct {
	Chart  Section   `json:"chart"`
	Colors []string  `json:"colors"`
	Legend Section   `json:"legend"`
	Series []Series  `json:"series"`
	Title  Section   `json:"title"`
	XAxis  Section   `json:"xAxis"`
	YAxis  []Section `json:"yAxis"`
}

// Series is the entry for one numeric column. Type is only emitted for
// secondary series (YAxis 1), where it is always present.
type Series struct {
	Name  string
	YAxis int
	Data  []Point
	Type  string
}

type seriesJSON struct {
	Name  string  `json:"name"`
	YAxis int     `json:"yAxis"`
	Data  []Point `json:"data"`
	Type  *string `json:"type,omitempty"`
}

// IsSecondary reports whether the series is plotted on the secondary axis.
func (s Series) IsSecondary() bool {
	return s.YAxis == 1
}

// MarshalJSON implements json.Marshaler.
func (s Series) MarshalJSON() ([]byte, error) {
	out := seriesJSON{Name: s.Name, YAxis: s.YAxis, Data: s.Data}
	if s.IsSecondary() {
		out.Type = &s.Type
	}
	return json.Marshal(out)
}

// Point pairs an index value with a column value.
type Point struct {
	X any
	Y any
}

// MarshalJSON encodes the point as a two-element array. Times become epoch
// milliseconds, NaN and infinities become null and complex numbers become
// [real, imag].
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{jsonScalar(p.X), jsonScalar(p.Y)})
}

func jsonScalar(v any) any {
	switch x := v.(type) {
	case time.Time:
		return x.UnixMilli()
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil
		}
	case float32:
		if math.IsNaN(float64(x)) || math.IsInf(float64(x), 0) {
			return nil
		}
	case complex128:
		return [2]any{jsonScalar(real(x)), jsonScalar(imag(x))}
	case complex64:
		return [2]any{jsonScalar(float64(real(x))), jsonScalar(float64(imag(x)))}
	}
	return v
}

// Map returns the tree as plain nested maps and slices, keyed exactly as the
// encoded document. Sections are shared with the tree, not copied.
func (t *Tree) Map() map[string]any {
	series := make([]any, len(t.Series))
	for i, s := range t.Series {
		data := make([]any, len(s.Data))
		for j, p := range s.Data {
			data[j] = []any{p.X, p.Y}
		}
		entry := map[string]any{
			"name":  s.Name,
			"yAxis": s.YAxis,
			"data":  data,
		}
		if s.IsSecondary() {
			entry["type"] = s.Type
		}
		series[i] = entry
	}

	yAxis := make([]any, len(t.YAxis))
	for i, a := range t.YAxis {
		yAxis[i] = a
	}

	return map[string]any{
		"chart":  t.Chart,
		"colors": t.Colors,
		"legend": t.Legend,
		"series": series,
		"title":  t.Title,
		"xAxis":  t.XAxis,
		"yAxis":  yAxis,
	}
}
