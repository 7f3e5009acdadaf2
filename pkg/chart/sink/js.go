package sink

import (
	"fmt"

	"github.com/matzehuels/tabchart/pkg/chart"
)

// JSTemplate wraps the JSON document into a chart constructor call.
const JSTemplate = "new Highcharts.Chart(%s);"

// RenderJS renders the tree as a JavaScript statement that constructs the
// chart, for example:
//
//	new Highcharts.Chart({"chart":{"alignTicks":false,...}});
//
// The embedded document is exactly what [RenderJSON] returns for the same
// opts. Pass [WithEscapeHTML] before pasting the result into a script element.
func RenderJS(tree *chart.Tree, opts ...JSONOption) (string, error) {
	doc, err := RenderJSON(tree, opts...)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(JSTemplate, doc), nil
}
