package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/tabchart/pkg/buildinfo"
)

// RootCommand creates the root cobra command with all subcommands registered.
//
// The logger is attached to the command context before any subcommand runs,
// so subcommands retrieve it with loggerFromContext.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Tabchart turns tables into Highcharts options",
		Long: `Tabchart converts a CSV or XLSX table and a small chart config (TOML, YAML or JSON)
into Highcharts options: a structured tree, a JSON document, or a ready-to-run
"new Highcharts.Chart(...)" statement.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.completionCommand())

	return root
}
