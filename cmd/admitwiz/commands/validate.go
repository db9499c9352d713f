package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/admitwiz/cmd/admitwiz/handlers"
)

// Validate returns the command that checks an application file.
func Validate() *cobra.Command {
	var flowPath string

	cmd := &cobra.Command{
		Use:   "validate FILE",
		Short: "Validate an application file",
		Long: `Validate an application YAML file against every step of a flow.

Both submitted applications and bare application files are accepted.
The command exits non-zero when a required step fails.

Examples:
  admitwiz validate application.yaml
  admitwiz validate -f flow.yaml applications/jane.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return handlers.Validate(args[0], flowPath)
		},
	}

	cmd.Flags().StringVarP(&flowPath, "flow", "f", "", "Path to flow file (default: built-in admission flow)")

	return cmd
}
