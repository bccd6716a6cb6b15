package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"clockctl/internal/config"
	"clockctl/internal/control"
	"clockctl/internal/remote/clockify"
	"clockctl/internal/styling"
)

// timeNow is the clock handed to the controller; a variable so command-level
// tests can pin it.
var timeNow = time.Now

// newLogger creates the stderr logger commands report through.
func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}

// newController loads the configuration, verifies the preconditions every
// timer command shares (API token, workspace) and wires up the service
// client. The user id comes from the config if set, otherwise from the
// service's current-user endpoint.
func newController(ctx context.Context, log zerolog.Logger) (*control.Controller, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, cfg, err
	}
	if cfg.APIToken == "" {
		return nil, cfg, control.ErrNotAuthenticated
	}
	if cfg.Workspace == "" {
		return nil, cfg, control.ErrNoWorkspace
	}

	client := clockify.NewClient(cfg.BaseURL, cfg.APIToken, log)

	userID := cfg.User
	if userID == "" {
		user, err := client.CurrentUser(ctx)
		if err != nil {
			return nil, cfg, err
		}
		userID = user.ID
	}

	return &control.Controller{
		Service:   client,
		Workspace: cfg.Workspace,
		UserID:    userID,
		Log:       log,
		Now:       timeNow,
	}, cfg, nil
}

// printWarnings writes warnings to stderr so they survive stdout piping.
func printWarnings(warnings []string) {
	for _, warning := range warnings {
		fmt.Fprintln(os.Stderr, styling.Warning(warning))
	}
}

// parseBillable maps a --billable flag value onto the configured default.
func parseBillable(flag string, fallback bool) (bool, error) {
	if flag == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseBool(flag)
	if err != nil {
		return false, fmt.Errorf("billable must be a boolean, got %q", flag)
	}
	return parsed, nil
}
