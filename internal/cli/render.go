package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/tabchart/pkg/chart/sink"
	"github.com/matzehuels/tabchart/pkg/config"
	apperr "github.com/matzehuels/tabchart/pkg/errors"
	"github.com/matzehuels/tabchart/pkg/pipeline"
	"github.com/matzehuels/tabchart/pkg/table"
)

// renderOpts holds the command-line flags for the render command.
// Core flags override the matching fields of the config file.
type renderOpts struct {
	configPath    string   // chart config (.toml, .yaml, .yml, .json)
	output        string   // output kind: structured, text, templated (or dict, json, js)
	outFile       string   // write to this file instead of stdout
	pretty        bool     // indent JSON
	escapeHTML    bool     // escape <, > and & in strings
	index         string   // data column used as the index (default: first column)
	sheet         string   // XLSX sheet (default: first sheet)
	renderTo      string   // overrides core.render_to
	chartType     string   // overrides core.type
	secondary     []string // overrides core.secondary_y
	secondaryType string   // overrides core.secondary_type
	sort          bool     // forces sort_columns on
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{output: string(pipeline.DefaultOutput)}

	cmd := &cobra.Command{
		Use:   "render <data.csv|data.xlsx>",
		Short: "Render a table as Highcharts options",
		Long: `Render a CSV or XLSX table as Highcharts options.

The first column (or --index) becomes the x axis and every numeric column
becomes a series. Chart settings come from --config and can be overridden
with flags:

  tabchart render sales.csv --config chart.toml
  tabchart render sales.xlsx --render-to container --type column --output text --pretty`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "chart config file (toml, yaml, json)")
	cmd.Flags().StringVar(&opts.output, "output", opts.output, "output kind: templated (default), text, structured")
	cmd.Flags().StringVarP(&opts.outFile, "out", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&opts.pretty, "pretty", false, "indent JSON output")
	cmd.Flags().BoolVar(&opts.escapeHTML, "escape-html", false, "escape <, > and & so the output can be inlined in HTML")
	cmd.Flags().StringVar(&opts.index, "index", "", "column to use as the index (default: first column)")
	cmd.Flags().StringVar(&opts.sheet, "sheet", "", "XLSX sheet name (default: first sheet)")
	cmd.Flags().StringVar(&opts.renderTo, "render-to", "", "id of the target element (overrides core.render_to)")
	cmd.Flags().StringVarP(&opts.chartType, "type", "t", "", "chart type: line, column, bar (overrides core.type)")
	cmd.Flags().StringSliceVar(&opts.secondary, "secondary", nil, "columns on the secondary y axis (comma-separated)")
	cmd.Flags().StringVar(&opts.secondaryType, "secondary-type", "", "series type for secondary columns (default: spline)")
	cmd.Flags().BoolVar(&opts.sort, "sort", false, "sort rows by index before building series")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, path string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	kind, err := pipeline.ParseOutputKind(opts.output)
	if err != nil {
		return err
	}

	tbl, err := loadTable(ctx, path, table.Options{IndexColumn: opts.index, Sheet: opts.sheet})
	if err != nil {
		return err
	}
	cfg, err := loadConfig(ctx, opts.configPath)
	if err != nil {
		return err
	}
	applyOverrides(cfg, opts)

	result, err := c.newRunner().Execute(ctx, tbl, cfg, pipeline.Options{
		Output:     kind,
		Pretty:     opts.pretty,
		EscapeHTML: opts.escapeHTML,
		Logger:     logger,
	})
	if err != nil {
		return err
	}
	if result.Stats.SeriesCount == 0 {
		logger.Warn("no numeric columns, the chart has no series", "skipped", result.Stats.SkippedColumns)
	}

	data, err := encodeOutput(result.Output)
	if err != nil {
		return err
	}

	if opts.outFile == "" {
		_, err := c.out.Write(data)
		return err
	}
	if err := os.WriteFile(opts.outFile, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.outFile, err)
	}
	printSuccess(c.out, "Rendered %d series", result.Stats.SeriesCount)
	printFile(c.out, opts.outFile)
	return nil
}

// applyOverrides copies the core flags that were set onto cfg.
func applyOverrides(cfg *config.Config, opts *renderOpts) {
	if opts.renderTo != "" || opts.chartType != "" || len(opts.secondary) > 0 || opts.secondaryType != "" {
		if cfg.Core == nil {
			cfg.Core = &config.Core{}
		}
	}
	if opts.renderTo != "" {
		cfg.Core.RenderTo = opts.renderTo
	}
	if opts.chartType != "" {
		cfg.Core.Type = config.String(opts.chartType)
	}
	if len(opts.secondary) > 0 {
		cfg.Core.SecondaryY = opts.secondary
	}
	if opts.secondaryType != "" {
		cfg.Core.SecondaryType = config.String(opts.secondaryType)
	}
	if opts.sort {
		cfg.SortColumns = true
	}
}

// encodeOutput returns the bytes written for a rendered chart. Structured
// output has no canonical text form, so the CLI prints the tree as YAML.
func encodeOutput(out *pipeline.Rendered) ([]byte, error) {
	if out.Kind != pipeline.OutputStructured {
		return []byte(out.Text + "\n"), nil
	}

	m, err := sink.RenderMap(out.Tree)
	if err != nil {
		return nil, err
	}
	data, err := yaml.Marshal(m)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeInternal, err, "encode structured output")
	}
	return data, nil
}
