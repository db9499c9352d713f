package submit

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"

	"github.com/imamik/admitwiz/internal/admission"
)

// Function variable for dependency injection in tests.
var confirmOverwrite = defaultConfirmOverwrite

// FileSink writes the application to a local YAML file.
type FileSink struct {
	Path string
	// Force overwrites an existing file without asking.
	Force bool
}

// Submit writes the application document to Path.
func (s *FileSink) Submit(_ context.Context, r *Receipt, app *admission.Application) error {
	if !s.Force && fileExists(s.Path) {
		ok, err := confirmOverwrite(s.Path)
		if err != nil {
			return fmt.Errorf("failed to confirm overwrite: %w", err)
		}
		if !ok {
			return ErrOverwriteDeclined
		}
	}

	data, err := Encode(r, app)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(s.Path); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	if err := os.WriteFile(s.Path, data, 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// Location returns the output path.
func (s *FileSink) Location(_ *Receipt) string {
	return s.Path
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func defaultConfirmOverwrite(path string) (bool, error) {
	overwrite := false
	err := huh.NewConfirm().
		Title(fmt.Sprintf("%s already exists", path)).
		Description("Overwrite it with this application?").
		Affirmative("Overwrite").
		Negative("Keep").
		Value(&overwrite).
		Run()
	return overwrite, err
}
