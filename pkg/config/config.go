// Package config defines the declarative chart configuration and loads it
// from TOML, YAML or JSON documents.
//
// A configuration has one required section, core, naming the render target
// and chart type, plus optional partial overlays (chart, colors, legend,
// title, xAxis, yAxis) whose keys are copied over the generated defaults.
//
//	[core]
//	render_to = "container"
//	type = "column"
//	secondary_y = ["share"]
//
//	[legend]
//	align = "right"
package config

// Core holds the required chart settings.
type Core struct {
	// RenderTo is the id of the element the chart is drawn into. Required.
	RenderTo string `json:"render_to,omitempty" yaml:"render_to,omitempty" toml:"render_to,omitempty"`

	// Type is the chart type: line, column or bar. Nil means absent and
	// selects line; a present value, even "", must be supported.
	Type *string `json:"type,omitempty" yaml:"type,omitempty" toml:"type,omitempty"`

	// SecondaryY lists columns plotted against the secondary y axis.
	SecondaryY []string `json:"secondary_y,omitempty" yaml:"secondary_y,omitempty" toml:"secondary_y,omitempty"`

	// SecondaryType is the series type of secondary columns. Nil selects
	// spline; a present value is used verbatim.
	SecondaryType *string `json:"secondary_type,omitempty" yaml:"secondary_type,omitempty" toml:"secondary_type,omitempty"`
}

// String returns a pointer to s, for filling optional Core fields.
func String(s string) *string {
	return &s
}

// Config is a complete chart configuration. Nil sections are absent.
type Config struct {
	Core        *Core          `json:"core,omitempty" yaml:"core,omitempty" toml:"core,omitempty"`
	Chart       map[string]any `json:"chart,omitempty" yaml:"chart,omitempty" toml:"chart,omitempty"`
	Colors      []string       `json:"colors,omitempty" yaml:"colors,omitempty" toml:"colors,omitempty"`
	Legend      map[string]any `json:"legend,omitempty" yaml:"legend,omitempty" toml:"legend,omitempty"`
	Title       map[string]any `json:"title,omitempty" yaml:"title,omitempty" toml:"title,omitempty"`
	XAxis       map[string]any `json:"xAxis,omitempty" yaml:"xAxis,omitempty" toml:"xAxis,omitempty"`
	YAxis       map[string]any `json:"yAxis,omitempty" yaml:"yAxis,omitempty" toml:"yAxis,omitempty"`
	SortColumns Flag           `json:"sort_columns,omitempty" yaml:"sort_columns,omitempty" toml:"sort_columns,omitempty"`
}

// IsSecondary reports whether column is listed in core.secondary_y.
func (c *Config) IsSecondary(column string) bool {
	if c.Core == nil {
		return false
	}
	for _, name := range c.Core.SecondaryY {
		if name == column {
			return true
		}
	}
	return false
}

// HasSecondary reports whether any column is plotted on the secondary axis.
func (c *Config) HasSecondary() bool {
	return c.Core != nil && len(c.Core.SecondaryY) > 0
}
