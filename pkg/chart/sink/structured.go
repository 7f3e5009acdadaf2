package sink

import (
	"github.com/matzehuels/tabchart/pkg/chart"
	apperr "github.com/matzehuels/tabchart/pkg/errors"
)

// RenderMap returns the tree as plain nested maps, the structured output
// form for callers that post-process the options generically.
func RenderMap(tree *chart.Tree) (map[string]any, error) {
	if tree == nil {
		return nil, apperr.New(apperr.ErrCodeInvalidInput, "chart tree is required")
	}
	return tree.Map(), nil
}
