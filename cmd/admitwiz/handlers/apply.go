// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command definitions
// in the commands package. Handlers are framework-agnostic and can be tested
// independently of the CLI framework.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/go-logr/logr"
	"github.com/mattn/go-isatty"

	"github.com/imamik/admitwiz/internal/admission"
	"github.com/imamik/admitwiz/internal/config"
	"github.com/imamik/admitwiz/internal/metrics"
	"github.com/imamik/admitwiz/internal/platform/s3"
	"github.com/imamik/admitwiz/internal/submit"
	"github.com/imamik/admitwiz/internal/ui/tui"
	"github.com/imamik/admitwiz/internal/wizard"
)

const (
	// DefaultOutputPath is where applications are written without --output or --s3.
	DefaultOutputPath = "application.yaml"
	// DefaultDraftPath is where ctrl+s saves drafts without --draft.
	DefaultDraftPath = "admitwiz-draft.yaml"
	// DefaultLogPath receives verbose logs while the full-screen UI is running.
	DefaultLogPath = "admitwiz.log"
)

// ErrNotInteractive is returned when apply is run without a terminal.
var ErrNotInteractive = errors.New("apply needs an interactive terminal (use 'admitwiz validate' for files)")

// ApplyOptions configures the apply command.
type ApplyOptions struct {
	FlowPath   string
	OutputPath string
	Force      bool
	S3URL      string
	S3         s3.Config
	ResumePath string
	DraftPath  string
	AllowSkip  bool
	NoBack     bool

	MetricsFile string
	Verbose     bool
	LogFile     string
}

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// loadFlow loads the wizard flow (default flow for an empty path).
	loadFlow = config.Load

	// loadDraft reads a saved draft.
	loadDraft = submit.LoadDraft

	// saveDraft writes a draft.
	saveDraft = submit.SaveDraft

	// isInteractiveTTY reports whether stdout is a terminal.
	isInteractiveTTY = defaultIsInteractiveTTY

	// runProgram runs the wizard UI until the user submits or quits.
	runProgram = func(ctx context.Context, m tui.Model) (tui.Model, error) {
		return tui.Run(ctx, m)
	}

	// newS3Sink creates the S3 destination.
	newS3Sink = func(ctx context.Context, rawURL string, cfg s3.Config) (submit.Sink, error) {
		return submit.NewS3Sink(ctx, rawURL, cfg)
	}

	// newReceipt assigns the application reference.
	newReceipt = submit.NewReceipt
)

// Apply runs the admission wizard and submits the finished application.
//
// The flow is:
//  1. Load the flow file (or the built-in flow) and apply flag overrides
//  2. Resume a draft if requested
//  3. Prepare the destination so a bad S3 URL fails before any typing
//  4. Run the terminal UI with validation gates and metrics
//  5. Submit the application and print the reference number
func Apply(ctx context.Context, opts ApplyOptions) error {
	if !isInteractiveTTY() {
		return ErrNotInteractive
	}

	logger, closeLog, err := newLogger(opts.Verbose, opts.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	flow, err := loadFlow(opts.FlowPath)
	if err != nil {
		return fmt.Errorf("failed to load flow: %w", err)
	}

	app, start, err := resumeApplication(flow, opts.ResumePath, logger)
	if err != nil {
		return err
	}

	sink, err := newSink(ctx, opts)
	if err != nil {
		return err
	}

	ctrl, err := newController(flow, opts, app, logger)
	if err != nil {
		return err
	}
	if start > 0 {
		if err := ctrl.Restore(start); err != nil {
			return fmt.Errorf("failed to resume draft: %w", err)
		}
	}

	recorder := metrics.NewRecorder(flow.Name)
	ctrl.SetObserver(recorder)

	draftPath := opts.DraftPath
	if draftPath == "" {
		draftPath = DefaultDraftPath
	}
	model := tui.NewModel(flow.Name, ctrl, app).WithDraftSaver(draftSaver(flow.Name, draftPath))

	final, err := runProgram(ctx, model)
	if err != nil {
		return err
	}

	if final.Submitted() {
		recorder.RecordCompletion()
		logger.Info("wizard completed", "flow", flow.Name)
	}

	if opts.MetricsFile != "" {
		if err := recorder.WriteTextfile(opts.MetricsFile); err != nil {
			return err
		}
		logger.V(1).Info("metrics written", "path", opts.MetricsFile)
	}

	if !final.Submitted() {
		fmt.Println("Application not submitted.")
		if final.Aborted() {
			fmt.Println("Press ctrl+s inside the wizard to keep a draft, then resume with --resume.")
		}
		return nil
	}

	receipt := newReceipt(flow.Name)
	if err := sink.Submit(ctx, receipt, final.Application()); err != nil {
		return fmt.Errorf("failed to submit application: %w", err)
	}
	logger.Info("application submitted", "reference", receipt.Reference, "location", sink.Location(receipt))

	printSubmitSuccess(receipt, sink, final.Application())
	return nil
}

func newController(flow *config.Flow, opts ApplyOptions, app *admission.Application, logger logr.Logger) (*wizard.Controller, error) {
	wopts := flow.WizardOptions()
	if opts.AllowSkip {
		wopts.AllowSkipSteps = true
	}
	if opts.NoBack {
		wopts.AllowBackNavigation = false
	}

	ctrl, err := wizard.New(flow.WizardSteps(), wopts, func() {
		logger.V(1).Info("completion requested", "flow", flow.Name)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create wizard: %w", err)
	}
	ctrl.SetGate(admission.Gate(flow.StepIDs(), app))
	ctrl.SetLogger(logger.WithName("wizard"))
	return ctrl, nil
}

// resumeApplication returns the application to edit and the step to start on.
func resumeApplication(flow *config.Flow, path string, logger logr.Logger) (*admission.Application, int, error) {
	if path == "" {
		return &admission.Application{}, 0, nil
	}

	d, err := loadDraft(path)
	if err != nil {
		return nil, 0, err
	}
	if d.Flow != "" && d.Flow != flow.Name {
		logger.Info("draft was saved for a different flow", "draft", d.Flow, "flow", flow.Name)
	}
	return d.Application, d.StepIndex(flow.StepIDs()), nil
}

func newSink(ctx context.Context, opts ApplyOptions) (submit.Sink, error) {
	if opts.S3URL != "" {
		if opts.OutputPath != "" {
			return nil, fmt.Errorf("--output and --s3 are mutually exclusive")
		}
		sink, err := newS3Sink(ctx, opts.S3URL, opts.S3)
		if err != nil {
			return nil, fmt.Errorf("failed to prepare S3 destination: %w", err)
		}
		return sink, nil
	}

	path := opts.OutputPath
	if path == "" {
		path = DefaultOutputPath
	}
	return &submit.FileSink{Path: path, Force: opts.Force}, nil
}

func draftSaver(flowName, path string) tui.DraftSaver {
	return func(stepID string, app *admission.Application) (string, error) {
		err := saveDraft(path, &submit.Draft{
			Flow:        flowName,
			Step:        stepID,
			Application: app,
		})
		return path, err
	}
}

func printSubmitSuccess(r *submit.Receipt, sink submit.Sink, app *admission.Application) {
	fmt.Println()
	fmt.Println(titleStyle.Render("Application Submitted Successfully!"))
	fmt.Println()
	fmt.Printf("Thank you, %s. Your application has been received.\n", app.FullName())
	fmt.Printf("Reference number: %s\n", r.ShortReference())
	fmt.Printf("Saved to: %s\n", sink.Location(r))
	fmt.Println()
	fmt.Println(dimStyle.Render("You will receive a confirmation email shortly."))
}

func defaultIsInteractiveTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
