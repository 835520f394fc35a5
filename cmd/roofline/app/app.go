// Package app wires configuration, logging, and process lifecycle for the
// roofline CLI.
package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/estimatics/roofline/pkg/errors"
	"github.com/estimatics/roofline/pkg/logging"
)

// App holds the assembled CLI dependencies.
type App struct {
	Config  *Config
	Version string
	Commit  string
	Date    string

	logger zerolog.Logger
}

// New loads configuration and builds the application.
func New(version, commit, date string) (*App, error) {
	config, err := LoadConfig()
	if err != nil {
		return nil, errors.NewConfigError("app", "failed to load configuration", err)
	}

	a := &App{
		Config:  config,
		Version: version,
		Commit:  commit,
		Date:    date,
	}
	a.ConfigureLogger()
	return a, nil
}

// ConfigureLogger rebuilds the logger from the current configuration and
// installs it as the process default. Call again after flag parsing so flag
// values take precedence.
func (a *App) ConfigureLogger() {
	a.logger = NewLogger(a.Config)
	logging.SetDefault(a.logger)
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return &a.logger
}

// ContextWithSignals returns a context cancelled on SIGINT or SIGTERM.
func ContextWithSignals(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
}

// ExitOnError prints an error to stderr and exits non-zero.
func ExitOnError(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
