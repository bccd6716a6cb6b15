package cli

import (
	"context"
	"fmt"

	"clockctl/internal/styling"
)

// StatusCommand contains flags for the `status` command line command, for
// `go-flags` to parse command line args into.
type StatusCommand struct {
	Verbose bool `long:"verbose" description:"provide verbose output"`
}

// Execute executes the status command.
func (command *StatusCommand) Execute(args []string) error {
	ctx := context.Background()
	log := newLogger(command.Verbose)

	controller, _, err := newController(ctx, log)
	if err != nil {
		return err
	}

	result, err := controller.Status(ctx)
	if err != nil {
		return err
	}

	if result.Running != nil {
		fmt.Println(styling.Running(*result.Running, result.ElapsedMinutes))
		return nil
	}
	fmt.Println(styling.Idle(result.DayMinutes, result.DayEntries))
	return nil
}
