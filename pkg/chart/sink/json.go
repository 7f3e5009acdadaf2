package sink

import (
	"bytes"
	"encoding/json"

	"github.com/matzehuels/tabchart/pkg/chart"
	apperr "github.com/matzehuels/tabchart/pkg/errors"
)

// JSONOption configures JSON rendering via [RenderJSON] and [RenderJS].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	indent     string
	escapeHTML bool
}

// WithIndent pretty-prints the document using indent for each level.
func WithIndent(indent string) JSONOption { return func(r *jsonRenderer) { r.indent = indent } }

// WithEscapeHTML escapes <, > and & inside strings, which keeps the document
// safe to inline in an HTML script element.
func WithEscapeHTML() JSONOption { return func(r *jsonRenderer) { r.escapeHTML = true } }

// RenderJSON encodes the tree as a JSON document without a trailing newline.
func RenderJSON(tree *chart.Tree, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}
	return r.encode(tree)
}

func (r jsonRenderer) encode(tree *chart.Tree) ([]byte, error) {
	if tree == nil {
		return nil, apperr.New(apperr.ErrCodeInvalidInput, "chart tree is required")
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(r.escapeHTML)
	if r.indent != "" {
		enc.SetIndent("", r.indent)
	}
	if err := enc.Encode(tree); err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeInternal, err, "encode chart")
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
