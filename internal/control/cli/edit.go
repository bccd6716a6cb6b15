package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"clockctl/internal/control"
	"clockctl/internal/styling"
)

// EditCommand contains flags for the `edit` command line command, for
// `go-flags` to parse command line args into. Flags are pointers so that an
// unset flag is distinguishable from an explicitly supplied empty value.
type EditCommand struct {
	Description *string `short:"d" long:"description" description:"new description" value-name:"<text>"`
	Billable    string  `short:"b" long:"billable" description:"new billable flag" choice:"true" choice:"false"`
	Project     *string `short:"p" long:"project" description:"new project, by name or id" value-name:"<name-or-id>"`
	StartTime   *string `short:"s" long:"start-time" description:"new start time" value-name:"<HH:MM|datetime>"`
	EndTime     *string `short:"e" long:"end-time" description:"new end time" value-name:"<HH:MM|datetime>"`
	Verbose     bool    `long:"verbose" description:"provide verbose output"`

	Args struct {
		Entry string `positional-arg-name:"<entry-id|last>" description:"the entry to edit, by id, or 'last' for the most recently ended one"`
	} `positional-args:"true" required:"true"`
}

// Execute executes the edit command.
func (command *EditCommand) Execute(args []string) error {
	ctx := context.Background()
	log := newLogger(command.Verbose)

	controller, _, err := newController(ctx, log)
	if err != nil {
		return err
	}

	overrides := control.EntryOverrides{
		Description: command.Description,
		Project:     command.Project,
		StartText:   command.StartTime,
		EndText:     command.EndTime,
	}
	if command.Billable != "" {
		billable := command.Billable == "true"
		overrides.Billable = &billable
	}

	result, err := controller.Edit(ctx, command.Args.Entry, overrides)
	if errors.Is(err, control.ErrNoChanges) {
		fmt.Println("nothing to change")
		return nil
	}
	if err != nil {
		return err
	}

	printWarnings(result.Warnings)
	if len(result.Changed) > 0 {
		fmt.Printf("changed %s\n", strings.Join(result.Changed, ", "))
	}
	fmt.Println(styling.Entry(result.Entry))
	return nil
}
