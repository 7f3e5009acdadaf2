package cli

import (
	"context"
	"path/filepath"

	"github.com/matzehuels/tabchart/pkg/config"
	"github.com/matzehuels/tabchart/pkg/observability"
	"github.com/matzehuels/tabchart/pkg/table"
)

// loadTable reads a CSV or XLSX data file and reports it to the load hooks.
func loadTable(ctx context.Context, path string, opts table.Options) (*table.Table, error) {
	prog := newProgress(loggerFromContext(ctx))

	tbl, err := table.ReadFile(path, opts)
	rows, cols := 0, 0
	if err == nil {
		rows, cols = tbl.Len(), len(tbl.Columns())
	}
	observability.Load().OnTableLoaded(ctx, path, rows, cols, prog.elapsed(), err)
	if err != nil {
		return nil, err
	}

	prog.done("loaded table",
		"file", filepath.Base(path),
		"rows", rows,
		"columns", cols,
		"index", tbl.Index().Kind)
	return tbl, nil
}

// loadConfig reads a chart config file. An empty path yields an empty
// config so that flags alone can describe the chart.
func loadConfig(ctx context.Context, path string) (*config.Config, error) {
	if path == "" {
		return &config.Config{}, nil
	}

	format, err := config.FormatFromPath(path)
	if err == nil {
		var cfg *config.Config
		cfg, err = config.Load(path)
		if err == nil {
			observability.Load().OnConfigLoaded(ctx, path, string(format), nil)
			loggerFromContext(ctx).Debug("loaded config", "file", filepath.Base(path), "format", format)
			return cfg, nil
		}
	}
	observability.Load().OnConfigLoaded(ctx, path, string(format), err)
	return nil, err
}
