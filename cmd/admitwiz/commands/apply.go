package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/admitwiz/cmd/admitwiz/handlers"
)

// Apply returns the command that runs the admission wizard.
//
// Optional flags:
//
//	--flow, -f: Path to a flow YAML file (default: built-in admission flow)
//	--output, -o: Application output file (default: application.yaml)
//	--s3: Upload to s3://bucket[/prefix] instead of writing a file
//	--resume: Continue from a saved draft
//
// Environment variables:
//
//	AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY, AWS_REGION: S3 credentials when
//	--s3-access-key/--s3-secret-key are not given
func Apply() *cobra.Command {
	var opts handlers.ApplyOptions

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Fill in and submit an application",
		Long: `Fill in and submit a student admission application.

The wizard walks through personal information, academic background,
contact details, documents, program selection, financial information and
a final review. Each step is validated before moving on.

Keys:
  tab / shift+tab   move between fields
  left / right      change a selection
  space             toggle a checkbox
  ctrl+n, enter     next step (enter on the last field)
  ctrl+p            previous step
  alt+1..9          jump to a step
  ctrl+k            skip an optional step
  ctrl+s            save a draft
  esc, ctrl+c       quit

Examples:
  # Fill in the built-in admission flow
  admitwiz apply

  # Write the application to a specific file
  admitwiz apply -o applications/jane.yaml

  # Upload the finished application to S3
  admitwiz apply --s3 s3://admissions/2027

  # Continue a saved draft
  admitwiz apply --resume admitwiz-draft.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Apply(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.FlowPath, "flow", "f", "", "Path to flow file (default: built-in admission flow)")
	cmd.Flags().StringVarP(&opts.OutputPath, "output", "o", "", "Application output file (default: "+handlers.DefaultOutputPath+")")
	cmd.Flags().BoolVar(&opts.Force, "force", false, "Overwrite the output file without asking")
	cmd.Flags().StringVar(&opts.S3URL, "s3", "", "Upload to s3://bucket[/prefix] instead of writing a file")
	cmd.Flags().StringVar(&opts.S3.Endpoint, "s3-endpoint", "", "S3-compatible endpoint URL")
	cmd.Flags().StringVar(&opts.S3.Region, "s3-region", "", "S3 region (default: from AWS config)")
	cmd.Flags().StringVar(&opts.S3.AccessKey, "s3-access-key", "", "S3 access key (default: AWS credential chain)")
	cmd.Flags().StringVar(&opts.S3.SecretKey, "s3-secret-key", "", "S3 secret key (default: AWS credential chain)")
	cmd.Flags().BoolVar(&opts.S3.PathStyle, "s3-path-style", false, "Use path-style S3 addressing")
	cmd.Flags().StringVar(&opts.ResumePath, "resume", "", "Resume from a saved draft")
	cmd.Flags().StringVar(&opts.DraftPath, "draft", "", "Draft file written by ctrl+s (default: "+handlers.DefaultDraftPath+")")
	cmd.Flags().BoolVar(&opts.AllowSkip, "allow-skip", false, "Allow jumping forward past unvisited steps")
	cmd.Flags().BoolVar(&opts.NoBack, "no-back", false, "Disable going back to previous steps")
	cmd.Flags().StringVar(&opts.MetricsFile, "metrics-file", "", "Write navigation metrics in Prometheus textfile format")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Write debug logs")
	cmd.Flags().StringVar(&opts.LogFile, "log-file", "", "Debug log file (default: "+handlers.DefaultLogPath+")")

	cmd.MarkFlagsMutuallyExclusive("output", "s3")

	return cmd
}
