package cli

import (
	"context"
	"fmt"

	"clockctl/internal/control"
	"clockctl/internal/styling"
)

// StartCommand contains flags for the `start` command line command, for
// `go-flags` to parse command line args into.
type StartCommand struct {
	Description string `short:"d" long:"description" description:"what is being worked on" value-name:"<text>"`
	Project     string `short:"p" long:"project" description:"project to book the time on, by name or id; created if missing" value-name:"<name-or-id>"`
	Billable    string `short:"b" long:"billable" description:"override the configured default billable flag" choice:"true" choice:"false"`
	Verbose     bool   `long:"verbose" description:"provide verbose output"`
}

// Execute executes the start command.
// (This gets called by `go-flags` when `start` is provided on the command
// line)
func (command *StartCommand) Execute(args []string) error {
	ctx := context.Background()
	log := newLogger(command.Verbose)

	controller, cfg, err := newController(ctx, log)
	if err != nil {
		return err
	}
	billable, err := parseBillable(command.Billable, cfg.Billable)
	if err != nil {
		return err
	}

	result, err := controller.Start(ctx, control.StartOptions{
		Description: command.Description,
		Project:     command.Project,
		Billable:    billable,
	})
	if err != nil {
		return err
	}

	printWarnings(result.Warnings)
	if result.Created != nil {
		fmt.Printf("created project %q\n", result.Created.Name)
	}
	fmt.Println(styling.Running(result.Entry, 0))
	return nil
}
