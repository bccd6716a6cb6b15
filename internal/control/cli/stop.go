package cli

import (
	"context"
	"fmt"

	"clockctl/internal/model"
	"clockctl/internal/styling"
)

// StopCommand contains flags for the `stop` command line command, for
// `go-flags` to parse command line args into.
type StopCommand struct {
	Verbose bool `long:"verbose" description:"provide verbose output"`
}

// Execute executes the stop command.
func (command *StopCommand) Execute(args []string) error {
	ctx := context.Background()
	log := newLogger(command.Verbose)

	controller, _, err := newController(ctx, log)
	if err != nil {
		return err
	}

	result, err := controller.Stop(ctx)
	if err != nil {
		return err
	}
	if !result.Stopped {
		fmt.Println("nothing to stop")
		return nil
	}

	fmt.Printf("stopped after %s\n", model.FormatDuration(result.Minutes))
	fmt.Println(styling.Entry(result.Entry))
	return nil
}
