package cli

import (
	"context"
	"fmt"

	"clockctl/internal/config"
	"clockctl/internal/control"
	"clockctl/internal/remote/clockify"
	"clockctl/internal/styling"
)

// ProjectsCommand contains flags for the `projects` command line command,
// which lists the configured workspace's projects.
type ProjectsCommand struct {
	Verbose bool `long:"verbose" description:"provide verbose output"`
}

// Execute executes the projects command.
func (command *ProjectsCommand) Execute(args []string) error {
	ctx := context.Background()
	log := newLogger(command.Verbose)

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.APIToken == "" {
		return control.ErrNotAuthenticated
	}
	if cfg.Workspace == "" {
		return control.ErrNoWorkspace
	}

	client := clockify.NewClient(cfg.BaseURL, cfg.APIToken, log)
	projects, err := client.Projects(ctx, cfg.Workspace)
	if err != nil {
		return err
	}

	if len(projects) == 0 {
		fmt.Println("no projects in this workspace")
		return nil
	}
	for _, project := range projects {
		fmt.Println(styling.Project(project))
	}
	return nil
}
