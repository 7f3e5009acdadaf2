// Package pipeline turns a table and a chart config into Highcharts options.
//
// This package implements the complete build → render pipeline that is used
// by the library entry point and the CLI. By centralizing this logic, every
// entry point validates, builds, and encodes charts the same way.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Build: Run the section builders over a private copy of the table
//     ([chart.Build])
//  2. Render: Hand the option tree to the requested output adapter
//     ([sink.RenderMap], [sink.RenderJSON], [sink.RenderJS])
//
// # Usage
//
// One-shot conversion:
//
//	out, err := pipeline.Serialize(tbl, cfg, pipeline.OutputTemplated)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(out.Text)
//
// With logging, hooks, and statistics:
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, tbl, cfg, pipeline.Options{
//	    Output: pipeline.OutputText,
//	    Pretty: true,
//	})
//
// [chart.Build]: github.com/matzehuels/tabchart/pkg/chart.Build
// [sink.RenderMap]: github.com/matzehuels/tabchart/pkg/chart/sink.RenderMap
// [sink.RenderJSON]: github.com/matzehuels/tabchart/pkg/chart/sink.RenderJSON
// [sink.RenderJS]: github.com/matzehuels/tabchart/pkg/chart/sink.RenderJS
package pipeline

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/tabchart/pkg/chart"
	"github.com/matzehuels/tabchart/pkg/chart/sink"
	"github.com/matzehuels/tabchart/pkg/config"
	apperr "github.com/matzehuels/tabchart/pkg/errors"
	"github.com/matzehuels/tabchart/pkg/table"
)

// =============================================================================
// Output Kinds
// =============================================================================

// OutputKind selects the output adapter.
type OutputKind string

// Output kinds.
const (
	// OutputStructured returns the option tree itself.
	OutputStructured OutputKind = "structured"

	// OutputText returns the option tree as a JSON document.
	OutputText OutputKind = "text"

	// OutputTemplated returns a JavaScript chart constructor call.
	OutputTemplated OutputKind = "templated"
)

// DefaultOutput is the output kind used when none is requested.
const DefaultOutput = OutputTemplated

// PrettyIndent is the indentation used when Options.Pretty is set.
const PrettyIndent = "  "

// ValidOutputKinds is the set of supported output kinds.
var ValidOutputKinds = map[OutputKind]bool{
	OutputStructured: true,
	OutputText:       true,
	OutputTemplated:  true,
}

var outputAliases = map[string]OutputKind{
	"dict": OutputStructured,
	"json": OutputText,
	"js":   OutputTemplated,
}

// ValidateOutputKind checks that an output kind is supported.
func ValidateOutputKind(kind OutputKind) error {
	if !ValidOutputKinds[kind] {
		return apperr.New(apperr.ErrCodeUnsupportedOutput,
			"output kind %q is not supported (must be one of: structured, text, templated)", kind)
	}
	return nil
}

// ParseOutputKind resolves a user-supplied output name. The canonical names
// and the aliases dict, json, and js are accepted, case-insensitively.
func ParseOutputKind(s string) (OutputKind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if kind, ok := outputAliases[name]; ok {
		return kind, nil
	}
	kind := OutputKind(name)
	if err := ValidateOutputKind(kind); err != nil {
		return "", err
	}
	return kind, nil
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options controls how a built chart is rendered.
type Options struct {
	// Output selects the adapter. Defaults to [DefaultOutput].
	Output OutputKind `json:"output,omitempty"`

	// Pretty indents text and templated output.
	Pretty bool `json:"pretty,omitempty"`

	// EscapeHTML escapes <, > and & in text and templated output.
	EscapeHTML bool `json:"escape_html,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks the output kind and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Output == "" {
		o.Output = DefaultOutput
	}
	if err := ValidateOutputKind(o.Output); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

func (o *Options) jsonOptions() []sink.JSONOption {
	var opts []sink.JSONOption
	if o.Pretty {
		opts = append(opts, sink.WithIndent(PrettyIndent))
	}
	if o.EscapeHTML {
		opts = append(opts, sink.WithEscapeHTML())
	}
	return opts
}

// =============================================================================
// Results
// =============================================================================

// Rendered is the output of one adapter run.
type Rendered struct {
	// Kind is the adapter that produced the output.
	Kind OutputKind

	// Tree is the option tree. It is set for every kind.
	Tree *chart.Tree

	// Text is the encoded document for text and templated output.
	Text string
}

// Bytes returns the encoded output, or nil for structured output.
func (r *Rendered) Bytes() []byte {
	if r.Kind == OutputStructured {
		return nil
	}
	return []byte(r.Text)
}

// Result contains the outputs of a runner execution.
type Result struct {
	// Output is the rendered chart.
	Output *Rendered

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	SeriesCount    int
	SkippedColumns []string
	BuildTime      time.Duration
	RenderTime     time.Duration
	Bytes          int
}

// =============================================================================
// Entry Point
// =============================================================================

// Serialize converts t into Highcharts options using cfg and renders them
// with the adapter named by kind.
//
// An unsupported kind fails with UNSUPPORTED_OUTPUT_KIND before any building
// starts. Missing core or render_to fails with MISSING_REQUIRED_FIELD and an
// unknown chart type with UNSUPPORTED_CHART_TYPE. Neither t nor cfg is
// modified.
func Serialize(t *table.Table, cfg *config.Config, kind OutputKind) (*Rendered, error) {
	if err := ValidateOutputKind(kind); err != nil {
		return nil, err
	}
	tree, err := chart.Build(t, cfg)
	if err != nil {
		return nil, err
	}
	return Render(tree, Options{Output: kind})
}

// Render runs the output adapter selected by opts over an already built tree.
func Render(tree *chart.Tree, opts Options) (*Rendered, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	out := &Rendered{Kind: opts.Output, Tree: tree}
	switch opts.Output {
	case OutputStructured:
		if tree == nil {
			return nil, apperr.New(apperr.ErrCodeInvalidInput, "chart tree is required")
		}
	case OutputText:
		data, err := sink.RenderJSON(tree, opts.jsonOptions()...)
		if err != nil {
			return nil, err
		}
		out.Text = string(data)
	case OutputTemplated:
		text, err := sink.RenderJS(tree, opts.jsonOptions()...)
		if err != nil {
			return nil, err
		}
		out.Text = text
	}
	return out, nil
}
