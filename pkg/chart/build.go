package chart

import (
	"github.com/matzehuels/tabchart/pkg/config"
	apperr "github.com/matzehuels/tabchart/pkg/errors"
	"github.com/matzehuels/tabchart/pkg/table"
)

// Build runs the section builders in their fixed order (chart, colors,
// legend, series, title, xAxis, yAxis) against a private copy of t and
// returns the assembled tree.
//
// Build fails with MISSING_REQUIRED_FIELD when cfg.Core or its render_to is
// absent and with UNSUPPORTED_CHART_TYPE for chart types outside
// [ValidTypes]. No partial tree is returned on error. Build does not modify
// t or cfg and is safe to call concurrently.
func Build(t *table.Table, cfg *config.Config) (*Tree, error) {
	if t == nil {
		return nil, apperr.New(apperr.ErrCodeInvalidInput, "table is required")
	}
	if cfg == nil {
		cfg = &config.Config{}
	}

	work, err := t.Clone()
	if err != nil {
		return nil, err
	}

	var tree Tree
	if tree.Chart, err = buildChart(cfg); err != nil {
		return nil, err
	}
	tree.Colors = buildColors(cfg)
	if tree.Legend, err = buildLegend(cfg); err != nil {
		return nil, err
	}
	tree.Series = buildSeries(work, cfg)
	if tree.Title, err = buildTitle(cfg); err != nil {
		return nil, err
	}
	if tree.XAxis, err = buildXAxis(work, cfg); err != nil {
		return nil, err
	}
	if tree.YAxis, err = buildYAxis(cfg); err != nil {
		return nil, err
	}
	return &tree, nil
}
