package cli

import (
	"context"
	"fmt"

	"clockctl/internal/config"
	"clockctl/internal/control"
	"clockctl/internal/remote/clockify"
)

// WorkspacesCommand contains flags for the `workspaces` command line command,
// which lists the workspaces visible to the configured token. Handy for
// finding the id to put into 'config workspace'.
type WorkspacesCommand struct {
	Verbose bool `long:"verbose" description:"provide verbose output"`
}

// Execute executes the workspaces command.
func (command *WorkspacesCommand) Execute(args []string) error {
	ctx := context.Background()
	log := newLogger(command.Verbose)

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.APIToken == "" {
		return control.ErrNotAuthenticated
	}

	client := clockify.NewClient(cfg.BaseURL, cfg.APIToken, log)
	workspaces, err := client.Workspaces(ctx)
	if err != nil {
		return err
	}

	for _, workspace := range workspaces {
		fmt.Printf("%s  %s\n", workspace.ID, workspace.Name)
	}
	return nil
}
