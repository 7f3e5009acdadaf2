package pipeline_test

import (
	"fmt"

	"github.com/matzehuels/tabchart/pkg/config"
	"github.com/matzehuels/tabchart/pkg/pipeline"
	"github.com/matzehuels/tabchart/pkg/table"
)

func ExampleSerialize() {
	tbl, _ := table.New(
		table.NewIndex("", []any{3, 1, 2}),
		table.NewColumn("x", []any{10, 20, 30}),
	)
	cfg := &config.Config{
		Core:        &config.Core{RenderTo: "div1"},
		Colors:      []string{"#333333"},
		SortColumns: true,
	}

	out, err := pipeline.Serialize(tbl, cfg, pipeline.OutputTemplated)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(out.Text)
	// Output:
	// new Highcharts.Chart({"chart":{"alignTicks":false,"renderTo":"div1","type":"line"},"colors":["#333333"],"legend":{"enabled":true},"series":[{"name":"x","yAxis":0,"data":[[1,20],[2,30],[3,10]]}],"title":{"text":"title of chart"},"xAxis":{},"yAxis":[{"title":{"text":""}}]});
}
