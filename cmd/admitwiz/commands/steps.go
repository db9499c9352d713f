package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/admitwiz/cmd/admitwiz/handlers"
)

// Steps returns the command that lists the steps of a flow.
func Steps() *cobra.Command {
	var (
		flowPath string
		output   string
	)

	cmd := &cobra.Command{
		Use:   "steps",
		Short: "List the steps of a flow",
		Long: `List the steps of the admission flow with their options.

Examples:
  # Show the built-in flow
  admitwiz steps

  # Print a custom flow with defaults filled in
  admitwiz steps -f flow.yaml -o yaml`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return handlers.Steps(flowPath, output)
		},
	}

	cmd.Flags().StringVarP(&flowPath, "flow", "f", "", "Path to flow file (default: built-in admission flow)")
	cmd.Flags().StringVarP(&output, "output", "o", handlers.OutputTable, "Output format: table or yaml")

	return cmd
}
