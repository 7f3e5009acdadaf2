package chart

import (
	"slices"

	"github.com/mitchellh/copystructure"

	"github.com/matzehuels/tabchart/pkg/config"
	apperr "github.com/matzehuels/tabchart/pkg/errors"
	"github.com/matzehuels/tabchart/pkg/table"
)

// Chart types accepted in core.type.
const (
	TypeLine   = "line"
	TypeColumn = "column"
	TypeBar    = "bar"
)

// DefaultType is used when core.type is absent.
const DefaultType = TypeLine

// DefaultSecondaryType is the series type of secondary-axis columns when
// core.secondary_type is absent.
const DefaultSecondaryType = "spline"

// DefaultTitle is the placeholder chart title.
const DefaultTitle = "title of chart"

// ValidTypes is the set of supported chart types.
var ValidTypes = map[string]bool{
	TypeLine:   true,
	TypeColumn: true,
	TypeBar:    true,
}

var defaultColors = []string{
	"#7cb5ec",
	"#90ed7d",
	"#f7a35c",
	"#f15c80",
	"#2b908f",
	"#f45b5b",
	"#91e8e1",
	"#8085e9",
}

// DefaultColors returns a fresh copy of the default palette.
func DefaultColors() []string {
	return slices.Clone(defaultColors)
}

// ValidateType checks that a chart type is supported.
func ValidateType(chartType string) error {
	if !ValidTypes[chartType] {
		return apperr.New(apperr.ErrCodeUnsupportedChart,
			"chart type %q is not supported (must be one of: line, column, bar)", chartType)
	}
	return nil
}

func buildChart(cfg *config.Config) (Section, error) {
	out := Section{"alignTicks": false}

	if cfg.Core == nil {
		return nil, apperr.MissingField("core")
	}
	if cfg.Core.RenderTo == "" {
		return nil, apperr.MissingField("render_to")
	}
	out["renderTo"] = cfg.Core.RenderTo

	chartType := DefaultType
	if cfg.Core.Type != nil {
		chartType = *cfg.Core.Type
		if err := ValidateType(chartType); err != nil {
			return nil, err
		}
	}
	out["type"] = chartType

	if err := Merge(out, cfg.Chart); err != nil {
		return nil, err
	}
	return out, nil
}

func buildColors(cfg *config.Config) []string {
	if cfg.Colors != nil {
		return slices.Clone(cfg.Colors)
	}
	return DefaultColors()
}

func buildLegend(cfg *config.Config) (Section, error) {
	out := Section{"enabled": true}
	if err := Merge(out, cfg.Legend); err != nil {
		return nil, err
	}
	return out, nil
}

func buildSeries(t *table.Table, cfg *config.Config) []Series {
	if cfg.SortColumns {
		t = t.SortedByIndex()
	}

	index := t.Index().Values
	series := make([]Series, 0, len(t.Columns()))
	for _, col := range t.Columns() {
		if col.Kind != table.Numeric {
			continue
		}

		data := make([]Point, len(index))
		for i, x := range index {
			data[i] = Point{X: x, Y: col.Values[i]}
		}

		s := Series{Name: col.Name, Data: data}
		if cfg.IsSecondary(col.Name) {
			s.YAxis = 1
			s.Type = DefaultSecondaryType
			if cfg.Core.SecondaryType != nil {
				s.Type = *cfg.Core.SecondaryType
			}
		}
		series = append(series, s)
	}
	return series
}

func buildTitle(cfg *config.Config) (Section, error) {
	out := Section{"text": DefaultTitle}
	if err := Merge(out, cfg.Title); err != nil {
		return nil, err
	}
	return out, nil
}

func buildXAxis(t *table.Table, cfg *config.Config) (Section, error) {
	out := Section{}
	index := t.Index()

	if index.Name != "" {
		out["title"] = map[string]any{"text": index.Name}
	}

	switch index.Kind {
	case table.Temporal:
		out["type"] = "datetime"
	case table.Categorical:
		categories := append([]any{}, index.Values...)
		slices.SortStableFunc(categories, table.Compare)
		out["categories"] = categories
	}

	if err := Merge(out, cfg.XAxis); err != nil {
		return nil, err
	}
	return out, nil
}

func buildYAxis(cfg *config.Config) ([]Section, error) {
	primary := Section{"title": map[string]any{"text": ""}}
	if err := Merge(primary, cfg.YAxis); err != nil {
		return nil, err
	}
	axes := []Section{primary}

	if !cfg.HasSecondary() {
		return axes, nil
	}

	clone, err := copystructure.Copy(primary)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeInternal, err, "copy primary y axis")
	}
	secondary := clone.(map[string]any)
	secondary["opposite"] = true
	labels, ok := secondary["labels"].(map[string]any)
	if !ok {
		labels = map[string]any{}
		secondary["labels"] = labels
	}
	labels["format"] = "{value}%"
	secondary["max"] = 100
	secondary["gridLineWidth"] = 0

	return append(axes, secondary), nil
}
