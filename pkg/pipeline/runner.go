package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/tabchart/pkg/chart"
	"github.com/matzehuels/tabchart/pkg/config"
	apperr "github.com/matzehuels/tabchart/pkg/errors"
	"github.com/matzehuels/tabchart/pkg/observability"
	"github.com/matzehuels/tabchart/pkg/table"
)

// Runner wraps the pipeline with logging, observability hooks, and timing.
//
// The Runner is stateless except for the logger - it doesn't store pipeline
// results. Multiple goroutines can safely use the same Runner with different
// inputs.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete build → render pipeline.
//
// An already cancelled context is reported as ctx.Err() before any work
// starts; once building begins it runs to completion.
func (r *Runner) Execute(ctx context.Context, t *table.Table, cfg *config.Config, opts Options) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if t == nil {
		return nil, apperr.New(apperr.ErrCodeInvalidInput, "table is required")
	}

	hooks := observability.Pipeline()
	renderTo := renderTarget(cfg)
	result := &Result{}

	// Stage 1: Build
	hooks.OnBuildStart(ctx, renderTo, len(t.Columns()))
	buildStart := time.Now()
	tree, err := chart.Build(t, cfg)
	result.Stats.BuildTime = time.Since(buildStart)
	if err == nil {
		result.Stats.SeriesCount = len(tree.Series)
	}
	hooks.OnBuildComplete(ctx, renderTo, result.Stats.SeriesCount, result.Stats.BuildTime, err)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}

	result.Stats.SkippedColumns = skippedColumns(t)
	if len(result.Stats.SkippedColumns) > 0 {
		opts.Logger.Debug("skipped non-numeric columns", "columns", result.Stats.SkippedColumns)
	}
	opts.Logger.Info("built chart",
		"series", result.Stats.SeriesCount,
		"type", tree.Chart["type"],
		"duration", result.Stats.BuildTime)

	// Stage 2: Render
	kind := string(opts.Output)
	hooks.OnRenderStart(ctx, kind)
	renderStart := time.Now()
	out, err := Render(tree, opts)
	result.Stats.RenderTime = time.Since(renderStart)
	if err == nil {
		result.Stats.Bytes = len(out.Text)
	}
	hooks.OnRenderComplete(ctx, kind, result.Stats.Bytes, result.Stats.RenderTime, err)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Output = out

	opts.Logger.Info("rendered output",
		"kind", kind,
		"bytes", result.Stats.Bytes,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

func renderTarget(cfg *config.Config) string {
	if cfg == nil || cfg.Core == nil {
		return ""
	}
	return cfg.Core.RenderTo
}

func skippedColumns(t *table.Table) []string {
	var skipped []string
	for _, c := range t.Columns() {
		if c.Kind != table.Numeric {
			skipped = append(skipped, c.Name)
		}
	}
	return skipped
}
