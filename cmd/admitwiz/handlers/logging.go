package handlers

import (
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
)

// openLogFile opens the verbose log destination (for testing injection).
var openLogFile = func(path string) (io.WriteCloser, error) {
	// #nosec G304
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
}

// newLogger returns a discarding logger unless verbose is set. Verbose logs go
// to a file because the wizard owns the terminal while it runs.
func newLogger(verbose bool, path string) (logr.Logger, func(), error) {
	if !verbose {
		return logr.Discard(), func() {}, nil
	}
	if path == "" {
		path = DefaultLogPath
	}

	w, err := openLogFile(path)
	if err != nil {
		return logr.Discard(), func() {}, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := funcr.New(func(prefix, args string) {
		if prefix != "" {
			fmt.Fprintf(w, "%s: %s\n", prefix, args)
			return
		}
		fmt.Fprintln(w, args)
	}, funcr.Options{
		LogTimestamp: true,
		Verbosity:    1,
	})

	return logger.WithName("admitwiz"), func() { _ = w.Close() }, nil
}
