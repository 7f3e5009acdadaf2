package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tabchart/pkg/config"
	"github.com/matzehuels/tabchart/pkg/table"
)

type inspectOpts struct {
	configPath string
	index      string
	sheet      string
}

// inspectCommand creates the inspect command, which shows how each column of
// a data file would be charted.
func (c *CLI) inspectCommand() *cobra.Command {
	var opts inspectOpts

	cmd := &cobra.Command{
		Use:   "inspect <data.csv|data.xlsx>",
		Short: "Show column kinds and which columns become series",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "chart config file, used to mark secondary columns")
	cmd.Flags().StringVar(&opts.index, "index", "", "column to use as the index (default: first column)")
	cmd.Flags().StringVar(&opts.sheet, "sheet", "", "XLSX sheet name (default: first sheet)")

	return cmd
}

func (c *CLI) runInspect(ctx context.Context, path string, opts *inspectOpts) error {
	tbl, err := loadTable(ctx, path, table.Options{IndexColumn: opts.index, Sheet: opts.sheet})
	if err != nil {
		return err
	}
	cfg, err := loadConfig(ctx, opts.configPath)
	if err != nil {
		return err
	}

	rows := inspectRows(tbl, cfg)
	series := 0
	for _, r := range rows {
		if r.Role == roleSeries || r.Role == roleSecondary {
			series++
		}
	}

	fmt.Fprintln(c.out, StyleTitle.Render(path))
	printKeyValue(c.out, "rows", StyleNumber.Render(strconv.Itoa(tbl.Len())))
	printKeyValue(c.out, "series", StyleNumber.Render(strconv.Itoa(series)))
	fmt.Fprintln(c.out, renderColumnTable(rows))

	if series == 0 {
		printWarning(c.out, "no numeric columns; the chart would be empty")
	}
	return nil
}

// inspectRows lists the index followed by every column with its role.
func inspectRows(tbl *table.Table, cfg *config.Config) []columnRow {
	idx := tbl.Index()
	name := idx.Name
	if name == "" {
		name = "(unnamed)"
	}
	rows := []columnRow{{Name: name, Kind: idx.Kind.String(), Role: roleIndex}}

	for _, col := range tbl.Columns() {
		role := roleSkipped
		if col.Kind == table.Numeric {
			role = roleSeries
			if cfg.IsSecondary(col.Name) {
				role = roleSecondary
			}
		}
		rows = append(rows, columnRow{Name: col.Name, Kind: col.Kind.String(), Role: role})
	}
	return rows
}
