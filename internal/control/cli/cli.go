// Package cli provides the command-line interface for clockctl.
package cli

type CommandLineOpts struct {
	Version bool `short:"v" long:"version" description:"Show the program version"`

	StartCommand      StartCommand      `command:"start" subcommands-optional:"true"`
	StopCommand       StopCommand       `command:"stop" subcommands-optional:"true"`
	StatusCommand     StatusCommand     `command:"status" subcommands-optional:"true"`
	AddCommand        AddCommand        `command:"add" subcommands-optional:"true"`
	EditCommand       EditCommand       `command:"edit" subcommands-optional:"true"`
	PauseCommand      PauseCommand      `command:"pause" subcommands-optional:"true"`
	ResumeCommand     ResumeCommand     `command:"resume" subcommands-optional:"true"`
	DeleteCommand     DeleteCommand     `command:"delete" subcommands-optional:"true"`
	ProjectsCommand   ProjectsCommand   `command:"projects" subcommands-optional:"true"`
	WorkspacesCommand WorkspacesCommand `command:"workspaces" subcommands-optional:"true"`
	ConfigCommand     ConfigCommand     `command:"config" subcommands-optional:"true"`
	VersionCommand    VersionCommand    `command:"version" subcommands-optional:"true"`
}

var Opts CommandLineOpts
