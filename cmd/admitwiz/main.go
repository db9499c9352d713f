// Package main is the entry point for the admitwiz CLI.
//
// admitwiz walks an applicant through a multi-step student admission form in
// the terminal, validates every step and submits the finished application to
// a local YAML file or an S3 bucket.
//
// Commands: apply, steps, validate, version, completion.
//
// For detailed usage information, run:
//
//	admitwiz --help
package main

import (
	"fmt"
	"os"

	"github.com/imamik/admitwiz/cmd/admitwiz/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
