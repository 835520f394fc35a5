// Package main provides the entry point for the roofline CLI tool.
package main

import (
	"context"
	"os"

	"github.com/estimatics/roofline/cmd/roofline/app"
	"github.com/estimatics/roofline/cmd/roofline/cmd"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	application, err := app.New(version, commit, date)
	if err != nil {
		app.ExitOnError(err)
	}

	// Context with signal handling for graceful shutdown
	ctx, cancel := app.ContextWithSignals(context.Background())
	defer cancel()

	root := cmd.New(application)
	if err := root.ExecuteContext(ctx); err != nil {
		app.ExitOnError(err)
	}

	_ = os.Stdout.Sync()
}
