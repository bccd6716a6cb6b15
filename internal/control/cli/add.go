package cli

import (
	"context"
	"fmt"

	"clockctl/internal/control"
	"clockctl/internal/styling"
)

// AddCommand contains flags for the `add` command line command, for
// `go-flags` to parse command line args into. It creates an already-closed
// entry from a duration, e.g. `add 1h30m -d "code review"`.
type AddCommand struct {
	Description string `short:"d" long:"description" description:"what was worked on" value-name:"<text>"`
	Project     string `short:"p" long:"project" description:"project to book the time on, by name or id" value-name:"<name-or-id>"`
	Billable    string `short:"b" long:"billable" description:"override the configured default billable flag" choice:"true" choice:"false"`
	StartTime   string `short:"s" long:"start-time" description:"when the work started; without it the entry ends now" value-name:"<HH:MM|datetime>"`
	Verbose     bool   `long:"verbose" description:"provide verbose output"`

	Args struct {
		Duration string `positional-arg-name:"<duration>" description:"how long the work took, e.g. 1h30m, 45m or 90"`
	} `positional-args:"true" required:"true"`
}

// Execute executes the add command.
func (command *AddCommand) Execute(args []string) error {
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

	result, err := controller.Add(ctx, command.Args.Duration, control.AddOptions{
		Description: command.Description,
		Project:     command.Project,
		Billable:    billable,
		StartText:   command.StartTime,
	})
	if err != nil {
		return err
	}

	printWarnings(result.Warnings)
	fmt.Println(styling.Entry(result.Entry))
	return nil
}
