package cli

import (
	"fmt"
	"os"
)

// PauseCommand is accepted but not implemented.
type PauseCommand struct{}

// ResumeCommand is accepted but not implemented.
type ResumeCommand struct{}

// DeleteCommand is accepted but not implemented.
type DeleteCommand struct {
	Args struct {
		Entry string `positional-arg-name:"<entry-id>"`
	} `positional-args:"true" required:"true"`
}

// Execute executes the pause command.
func (command *PauseCommand) Execute(args []string) error {
	return notImplemented("pause")
}

// Execute executes the resume command.
func (command *ResumeCommand) Execute(args []string) error {
	return notImplemented("resume")
}

// Execute executes the delete command.
func (command *DeleteCommand) Execute(args []string) error {
	return notImplemented("delete")
}

func notImplemented(name string) error {
	fmt.Fprintf(os.Stderr, "'%s' is not implemented yet\n", name)
	return nil
}
