package pipeline

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/matzehuels/tabchart/pkg/chart"
	"github.com/matzehuels/tabchart/pkg/config"
	apperr "github.com/matzehuels/tabchart/pkg/errors"
	"github.com/matzehuels/tabchart/pkg/table"
)

func sampleTable(t *testing.T) *table.Table {
	t.Helper()
	tbl, err := table.New(
		table.NewIndex("", []any{3, 1, 2}),
		table.NewColumn("x", []any{10, 20, 30}),
	)
	if err != nil {
		t.Fatalf("table.New() error: %v", err)
	}
	return tbl
}

func sampleConfig() *config.Config {
	return &config.Config{
		Core:        &config.Core{RenderTo: "div1"},
		SortColumns: true,
	}
}

func TestValidateOutputKind(t *testing.T) {
	tests := []struct {
		kind    OutputKind
		wantErr bool
	}{
		{"structured", false},
		{"text", false},
		{"templated", false},
		{"xml", true},
		{"Text", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateOutputKind(tt.kind)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateOutputKind(%q) error = %v, wantErr %v", tt.kind, err, tt.wantErr)
		}
		if err != nil && !apperr.Is(err, apperr.ErrCodeUnsupportedOutput) {
			t.Errorf("ValidateOutputKind(%q) code = %v", tt.kind, apperr.GetCode(err))
		}
	}
}

func TestParseOutputKind(t *testing.T) {
	tests := []struct {
		in      string
		want    OutputKind
		wantErr bool
	}{
		{"structured", OutputStructured, false},
		{"dict", OutputStructured, false},
		{"text", OutputText, false},
		{"JSON", OutputText, false},
		{"templated", OutputTemplated, false},
		{" js ", OutputTemplated, false},
		{"svg", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseOutputKind(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseOutputKind(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseOutputKind(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestOptionsDefaults(t *testing.T) {
	var opts Options
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error: %v", err)
	}
	if opts.Output != DefaultOutput {
		t.Errorf("Output = %q, want %q", opts.Output, DefaultOutput)
	}
	if opts.Logger == nil {
		t.Error("Logger should default to a discard logger")
	}

	// Idempotent
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Errorf("second ValidateAndSetDefaults() error: %v", err)
	}

	bad := Options{Output: "xml"}
	if err := bad.ValidateAndSetDefaults(); !apperr.Is(err, apperr.ErrCodeUnsupportedOutput) {
		t.Errorf("ValidateAndSetDefaults() error = %v, want %v", err, apperr.ErrCodeUnsupportedOutput)
	}
}

func TestSerializeScenario(t *testing.T) {
	out, err := Serialize(sampleTable(t), sampleConfig(), OutputText)
	if err != nil {
		t.Fatalf("Serialize() error: %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal([]byte(out.Text), &doc); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}

	series := doc["series"].([]any)
	if len(series) != 1 {
		t.Fatalf("series length = %d, want 1", len(series))
	}
	entry := series[0].(map[string]any)
	wantData := []any{
		[]any{1.0, 20.0},
		[]any{2.0, 30.0},
		[]any{3.0, 10.0},
	}
	if entry["name"] != "x" || entry["yAxis"] != 0.0 || !reflect.DeepEqual(entry["data"], wantData) {
		t.Errorf("series[0] = %v", entry)
	}
	if doc["chart"].(map[string]any)["type"] != "line" {
		t.Errorf("chart.type = %v, want line", doc["chart"])
	}
	if colors := doc["colors"].([]any); len(colors) != 8 || colors[0] != "#7cb5ec" {
		t.Errorf("colors = %v", colors)
	}
	if yAxis := doc["yAxis"].([]any); len(yAxis) != 1 {
		t.Errorf("yAxis length = %d, want 1", len(yAxis))
	}
}

func TestSerializeKinds(t *testing.T) {
	structured, err := Serialize(sampleTable(t), sampleConfig(), OutputStructured)
	if err != nil {
		t.Fatal(err)
	}
	if structured.Tree == nil || structured.Text != "" || structured.Bytes() != nil {
		t.Errorf("structured output = %+v", structured)
	}

	text, err := Serialize(sampleTable(t), sampleConfig(), OutputText)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(text.Text, `{"chart":`) {
		t.Errorf("text output = %s", text.Text)
	}

	js, err := Serialize(sampleTable(t), sampleConfig(), OutputTemplated)
	if err != nil {
		t.Fatal(err)
	}
	if js.Text != "new Highcharts.Chart("+text.Text+");" {
		t.Errorf("templated output = %s", js.Text)
	}
	if string(js.Bytes()) != js.Text {
		t.Error("Bytes() should return the encoded text")
	}
}

func TestSerializeUnsupportedOutputBeforeBuild(t *testing.T) {
	// The config is also invalid; the output kind must be reported first.
	_, err := Serialize(sampleTable(t), &config.Config{}, "xml")
	if !apperr.Is(err, apperr.ErrCodeUnsupportedOutput) {
		t.Errorf("Serialize() error = %v, want %v", err, apperr.ErrCodeUnsupportedOutput)
	}
}

func TestSerializeErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.Config
		code apperr.Code
	}{
		{"missing core", &config.Config{}, apperr.ErrCodeMissingField},
		{"missing render_to", &config.Config{Core: &config.Core{Type: config.String("bar")}}, apperr.ErrCodeMissingField},
		{"bad type", &config.Config{Core: &config.Core{RenderTo: "d", Type: config.String("pie")}}, apperr.ErrCodeUnsupportedChart},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Serialize(sampleTable(t), tt.cfg, OutputText)
			if out != nil {
				t.Error("Serialize() should not return partial output")
			}
			if !apperr.Is(err, tt.code) {
				t.Errorf("Serialize() error = %v, want %v", err, tt.code)
			}
		})
	}
}

func TestSerializeDoesNotMutateInputs(t *testing.T) {
	tbl := sampleTable(t)
	cfg := sampleConfig()
	cfg.Legend = map[string]any{"itemStyle": map[string]any{"color": "red"}}

	out, err := Serialize(tbl, cfg, OutputStructured)
	if err != nil {
		t.Fatal(err)
	}
	out.Tree.Legend["itemStyle"].(map[string]any)["color"] = "blue"
	out.Tree.Series[0].Data[0].X = 99

	if got := tbl.Index().Values; !reflect.DeepEqual(got, []any{3, 1, 2}) {
		t.Errorf("table index = %v, want [3 1 2]", got)
	}
	if cfg.Legend["itemStyle"].(map[string]any)["color"] != "red" {
		t.Error("config legend was mutated")
	}
}

func TestRenderPretty(t *testing.T) {
	out, err := Serialize(sampleTable(t), sampleConfig(), OutputStructured)
	if err != nil {
		t.Fatal(err)
	}

	pretty, err := Render(out.Tree, Options{Output: OutputText, Pretty: true})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(pretty.Text, "\n  \"chart\": {") {
		t.Errorf("pretty output not indented: %s", pretty.Text)
	}

	if _, err := Render(nil, Options{Output: OutputStructured}); !apperr.Is(err, apperr.ErrCodeInvalidInput) {
		t.Errorf("Render(nil) error = %v", err)
	}
}

func TestSerializePresentButEmptyCoreKeys(t *testing.T) {
	cfg, err := config.Parse([]byte(`{"core":{"render_to":"d","type":""}}`), config.FormatJSON)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Serialize(sampleTable(t), cfg, OutputText); !apperr.Is(err, apperr.ErrCodeUnsupportedChart) {
		t.Errorf("empty core.type error = %v, want %v", err, apperr.ErrCodeUnsupportedChart)
	}

	cfg, err = config.Parse([]byte(`{"core":{"render_to":"d","secondary_y":["x"],"secondary_type":""}}`), config.FormatJSON)
	if err != nil {
		t.Fatal(err)
	}
	out, err := Serialize(sampleTable(t), cfg, OutputText)
	if err != nil {
		t.Fatalf("Serialize() error: %v", err)
	}
	if !strings.Contains(out.Text, `"yAxis":1,"data":[[1,20],[2,30],[3,10]],"type":""`) {
		t.Errorf("empty secondary_type should be kept verbatim: %s", out.Text)
	}
}

func TestRenderTemplatedWrapsText(t *testing.T) {
	tbl, err := table.New(
		table.NewIndex("", []any{"<a>", "b & c"}),
		table.NewColumn("x<y", []any{1, 2}),
	)
	if err != nil {
		t.Fatal(err)
	}
	cfg := sampleConfig()
	cfg.Title = map[string]any{"text": "</script>"}
	tree, err := chart.Build(tbl, cfg)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name       string
		escapeHTML bool
		raw        bool
	}{
		{"default", false, true},
		{"escape html", true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := Render(tree, Options{Output: OutputText, EscapeHTML: tt.escapeHTML})
			if err != nil {
				t.Fatal(err)
			}
			js, err := Render(tree, Options{Output: OutputTemplated, EscapeHTML: tt.escapeHTML})
			if err != nil {
				t.Fatal(err)
			}
			if js.Text != "new Highcharts.Chart("+text.Text+");" {
				t.Errorf("templated = %s, text = %s", js.Text, text.Text)
			}
			if got := strings.Contains(text.Text, "</script>"); got != tt.raw {
				t.Errorf("raw markup in output = %v, want %v: %s", got, tt.raw, text.Text)
			}
		})
	}
}
